//go:build windows || plan9 || js || wasip1

package fsmeta

import "io/fs"

func platformMetadata(fs.FileInfo) Metadata {
	return Metadata{}
}
