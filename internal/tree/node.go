package tree

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/fsmeta"
	"github.com/temirov/dirtree/internal/units"
	"github.com/temirov/dirtree/internal/walk"
)

// Kind classifies a node.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
)

func (kind Kind) String() string {
	switch kind {
	case KindDir:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// Node is one filesystem object held by an Arena.
type Node struct {
	path          string
	name          string
	depth         int
	kind          Kind
	mode          fs.FileMode
	modTime       time.Time
	symlinkTarget string
	metadata      fsmeta.Metadata
	fileSize      *units.FileSize
}

// NewNode converts a walk entry into a node. Non-directories receive a file size
// measured according to settings; directories receive theirs during assembly.
func NewNode(entry walk.Entry, settings *config.Context) *Node {
	node := &Node{
		path:  entry.Path,
		name:  entry.Name,
		depth: entry.Depth,
		kind:  kindOf(entry),
	}
	if entry.Info == nil {
		return node
	}
	node.mode = entry.Info.Mode()
	node.modTime = entry.Info.ModTime()
	node.metadata = fsmeta.FromFileInfo(entry.Info)
	if node.kind == KindSymlink {
		if target, readError := os.Readlink(entry.Path); readError == nil {
			node.symlinkTarget = target
		}
	}
	if node.kind != KindDir {
		bytes := entry.Info.Size()
		if settings.DiskUsage == units.DiskUsagePhysical {
			bytes = node.metadata.PhysicalBytes(bytes)
		}
		fileSize := units.NewFileSize(bytes, settings.DiskUsage, settings.Human, settings.Unit)
		fileSize.PrecomputeUnpaddedDisplay()
		node.fileSize = &fileSize
	}
	return node
}

func kindOf(entry walk.Entry) Kind {
	switch {
	case entry.IsSymlink:
		return KindSymlink
	case entry.IsDir():
		return KindDir
	default:
		return KindFile
	}
}

// Path returns the full path of the entry.
func (node *Node) Path() string { return node.path }

// Name returns the final path element.
func (node *Node) Name() string { return node.name }

// Depth returns the distance from the root, which has depth zero.
func (node *Node) Depth() int { return node.depth }

// Kind returns the classification of the node.
func (node *Node) Kind() Kind { return node.kind }

// IsDir reports whether the node is a directory.
func (node *Node) IsDir() bool { return node.kind == KindDir }

// IsSymlink reports whether the node is an unfollowed symbolic link.
func (node *Node) IsSymlink() bool { return node.kind == KindSymlink }

// Mode returns the file mode bits.
func (node *Node) Mode() fs.FileMode { return node.mode }

// ModTime returns the modification time.
func (node *Node) ModTime() time.Time { return node.modTime }

// SymlinkTarget returns the link target of a symlink node.
func (node *Node) SymlinkTarget() string { return node.symlinkTarget }

// Metadata returns the platform metadata of the node.
func (node *Node) Metadata() fsmeta.Metadata { return node.metadata }

// FileSize returns the size of the node when one has been recorded.
func (node *Node) FileSize() (units.FileSize, bool) {
	if node.fileSize == nil {
		return units.FileSize{}, false
	}
	return *node.fileSize, true
}

// SetFileSize records the size of the node.
func (node *Node) SetFileSize(fileSize units.FileSize) {
	node.fileSize = &fileSize
}

// Ino returns the inode number when the platform provides it.
func (node *Node) Ino() (uint64, bool) {
	identity, _, available := node.metadata.Inode()
	return identity.Number, available
}

// Nlink returns the hard-link count when the platform provides it.
func (node *Node) Nlink() (uint64, bool) {
	return node.metadata.Links, node.metadata.Available
}

// Blocks returns the allocated block count when the platform provides it.
func (node *Node) Blocks() (uint64, bool) {
	return node.metadata.Blocks, node.metadata.Available
}

// ParentPath returns the directory containing the node. The root and entries
// whose path has no parent component report false.
func (node *Node) ParentPath() (string, bool) {
	if node.depth == 0 {
		return "", false
	}
	parentPath := filepath.Dir(node.path)
	if parentPath == node.path || parentPath == "." {
		return "", false
	}
	return parentPath, true
}
