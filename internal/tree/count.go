package tree

// FileCount tallies entries by kind.
type FileCount struct {
	Directories int
	Files       int
	Symlinks    int
}

// Update counts node.
func (count *FileCount) Update(node *Node) {
	switch node.Kind() {
	case KindDir:
		count.Directories++
	case KindSymlink:
		count.Symlinks++
	default:
		count.Files++
	}
}

// Add merges other into the receiver.
func (count *FileCount) Add(other FileCount) {
	count.Directories += other.Directories
	count.Files += other.Files
	count.Symlinks += other.Symlinks
}

// computeFileCount counts the direct children of id without descending further.
func computeFileCount(arena *Arena, id NodeID) FileCount {
	var count FileCount
	for _, childID := range arena.Children(id) {
		count.Update(arena.Get(childID))
	}
	return count
}
