package tree

import (
	"cmp"
	"strings"

	"github.com/temirov/dirtree/internal/config"
)

// Comparator orders two sibling nodes, returning a negative number when a sorts first.
type Comparator func(a, b *Node) int

// NewComparator builds the sibling ordering for a sort type and directory order.
// Every ordering other than none falls back to name and then path, so siblings
// never compare equal.
func NewComparator(sortType config.SortType, dirOrder config.DirOrder) Comparator {
	primary := primaryComparator(sortType)
	return func(a, b *Node) int {
		if ordering := compareDirOrder(dirOrder, a, b); ordering != 0 {
			return ordering
		}
		if primary == nil {
			return 0
		}
		if ordering := primary(a, b); ordering != 0 {
			return ordering
		}
		if ordering := compareNames(a, b); ordering != 0 {
			return ordering
		}
		return strings.Compare(a.Path(), b.Path())
	}
}

func primaryComparator(sortType config.SortType) Comparator {
	switch sortType {
	case config.SortName:
		return compareNames
	case config.SortNameReverse:
		return reverse(compareNames)
	case config.SortSize:
		return compareSizes
	case config.SortSizeReverse:
		return reverse(compareSizes)
	case config.SortTime:
		return reverse(compareModTimes)
	case config.SortTimeReverse:
		return compareModTimes
	default:
		return nil
	}
}

func reverse(comparator Comparator) Comparator {
	return func(a, b *Node) int {
		return comparator(b, a)
	}
}

func compareNames(a, b *Node) int {
	return strings.Compare(a.Name(), b.Name())
}

func compareSizes(a, b *Node) int {
	return cmp.Compare(sizeOf(a), sizeOf(b))
}

func compareModTimes(a, b *Node) int {
	return a.ModTime().Compare(b.ModTime())
}

func compareDirOrder(dirOrder config.DirOrder, a, b *Node) int {
	if a.IsDir() == b.IsDir() {
		return 0
	}
	switch dirOrder {
	case config.DirOrderFirst:
		if a.IsDir() {
			return -1
		}
		return 1
	case config.DirOrderLast:
		if a.IsDir() {
			return 1
		}
		return -1
	default:
		return 0
	}
}

func sizeOf(node *Node) int64 {
	fileSize, hasSize := node.FileSize()
	if !hasSize {
		return 0
	}
	return fileSize.Bytes
}
