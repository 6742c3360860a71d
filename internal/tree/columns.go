package tree

import "github.com/temirov/dirtree/internal/config"

// updateColumnProperties widens columns to fit node. Inode, link and block
// columns are only tracked for long listings and only when the platform
// reports them.
func updateColumnProperties(columns *config.ColumnProperties, node *Node, long bool) {
	if fileSize, hasSize := node.FileSize(); hasSize && fileSize.SizeColumns > columns.MaxSizeWidth {
		columns.MaxSizeWidth = fileSize.SizeColumns
	}
	if !long {
		return
	}
	if ino, available := node.Ino(); available {
		columns.MaxInoWidth = max(columns.MaxInoWidth, numIntegral(ino))
	}
	if nlink, available := node.Nlink(); available {
		columns.MaxNlinkWidth = max(columns.MaxNlinkWidth, numIntegral(nlink))
	}
	if blocks, available := node.Blocks(); available {
		columns.MaxBlockWidth = max(columns.MaxBlockWidth, numIntegral(blocks))
	}
}

// numIntegral returns the number of decimal digits in value.
func numIntegral(value uint64) int {
	digits := 1
	for value >= 10 {
		value /= 10
		digits++
	}
	return digits
}
