// Package fsmeta extracts platform metadata (inode identity, hard-link count and
// allocated blocks) from file information. Platforms that do not expose these
// values produce a Metadata with Available set to false.
package fsmeta

import "io/fs"

// BlockSize is the unit in which allocated blocks are reported.
const BlockSize = 512

// Identity names the physical storage behind a directory entry.
type Identity struct {
	Device uint64
	Number uint64
}

// Metadata carries the optional platform fields of an entry.
type Metadata struct {
	Identity  Identity
	Links     uint64
	Blocks    uint64
	Available bool
}

// Inode returns the identity and link count when the platform provides them.
func (metadata Metadata) Inode() (Identity, uint64, bool) {
	if !metadata.Available {
		return Identity{}, 0, false
	}
	return metadata.Identity, metadata.Links, true
}

// IsHardLinked reports whether more than one directory entry refers to the storage.
func (metadata Metadata) IsHardLinked() bool {
	return metadata.Available && metadata.Links > 1
}

// PhysicalBytes returns the allocated size, falling back to the logical size.
func (metadata Metadata) PhysicalBytes(logicalBytes int64) int64 {
	if !metadata.Available {
		return logicalBytes
	}
	return int64(metadata.Blocks) * BlockSize
}

// FromFileInfo reads platform metadata from info.
func FromFileInfo(info fs.FileInfo) Metadata {
	if info == nil {
		return Metadata{}
	}
	return platformMetadata(info)
}
