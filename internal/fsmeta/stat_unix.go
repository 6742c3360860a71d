//go:build !windows && !plan9 && !js && !wasip1

package fsmeta

import (
	"io/fs"
	"syscall"
)

func platformMetadata(info fs.FileInfo) Metadata {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return Metadata{}
	}
	return Metadata{
		Identity: Identity{
			Device: uint64(stat.Dev),
			Number: uint64(stat.Ino),
		},
		Links:     uint64(stat.Nlink),
		Blocks:    uint64(stat.Blocks),
		Available: true,
	}
}
