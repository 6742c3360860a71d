// Package tree turns the unordered stream of entries produced by parallel
// walker workers into a single sorted tree with aggregated directory sizes.
//
// Workers send TraversalState values over a buffered channel to one assembler
// goroutine. The assembler stores nodes in an Arena and files each handle under
// its parent's path in a branch map. Once Done arrives it folds the branch map
// bottom-up from the root, summing sizes, skipping already-counted hard links,
// sorting siblings and tracking column widths. Filtering and pruning then run
// on the assembled arena.
package tree

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/dirtree/internal/config"
)

const (
	logMessagePruned    = "pruned empty directories"
	logMessageFiltered  = "detached non-directory entries"
	logMessageUnmatched = "removed directories without matches"
	logFieldCount       = "count"
)

// Tree owns an assembled arena, its root handle and the resolved configuration.
type Tree struct {
	arena    *Arena
	rootID   NodeID
	settings config.Context
}

// New wraps an already assembled arena.
func New(arena *Arena, rootID NodeID, settings config.Context) *Tree {
	return &Tree{arena: arena, rootID: rootID, settings: settings}
}

// TryInit scans settings.Dir() and assembles the tree. It fails with
// ErrNoMatches when nothing besides the root survives.
func TryInit(ctx context.Context, settings config.Context, logger *zap.Logger) (*Tree, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var columns config.ColumnProperties

	arena, rootID, traverseError := traverse(ctx, &settings, &columns, logger)
	if traverseError != nil {
		return nil, traverseError
	}

	settings.UpdateColumnProperties(columns)
	if settings.Truncate {
		settings.SetWindowWidth()
	}

	assembled := New(arena, rootID, settings)
	if assembled.IsStump() {
		return nil, ErrNoMatches
	}
	return assembled, nil
}

// traverse runs the walker workers and the assembler concurrently. Done is sent
// only after Visit has joined every worker.
func traverse(ctx context.Context, settings *config.Context, columns *config.ColumnProperties, logger *zap.Logger) (*Arena, NodeID, error) {
	walker, walkerError := newWalker(settings, logger)
	if walkerError != nil {
		return nil, NoNode, walkerError
	}
	matchDirectory, matcherError := settings.DirectoryMatcher()
	if matcherError != nil {
		return nil, NoNode, matcherError
	}

	states := make(chan TraversalState, traversalBufferSize)
	group, groupContext := errgroup.WithContext(ctx)

	var arena *Arena
	rootID := NoNode

	group.Go(func() error {
		assembledArena, assembledRootID, assembleError := newAssembler(settings, columns, logger).run(groupContext, states)
		if assembleError != nil {
			return assembleError
		}
		if matchDirectory != nil {
			if removed := retainMatchingDirectories(assembledArena, assembledRootID, matchDirectory); removed > 0 {
				logger.Debug(logMessageUnmatched, zap.Int(logFieldCount, removed))
			}
		}
		if settings.ShouldPrune() {
			if removed := pruneDirectories(assembledArena, assembledRootID); removed > 0 {
				logger.Debug(logMessagePruned, zap.Int(logFieldCount, removed))
			}
		}
		if settings.DirsOnly {
			if detached := filterDirectories(assembledArena, assembledRootID); detached > 0 {
				logger.Debug(logMessageFiltered, zap.Int(logFieldCount, detached))
			}
		}
		arena = assembledArena
		rootID = assembledRootID
		return nil
	})

	group.Go(func() error {
		builder := newBranchVisitorBuilder(groupContext, settings, states)
		if visitError := walker.Visit(groupContext, builder); visitError != nil {
			return visitError
		}
		return sendState(groupContext, states, Done())
	})

	if waitError := group.Wait(); waitError != nil {
		return nil, NoNode, waitError
	}
	return arena, rootID, nil
}

// IsStump reports whether the tree has no entries besides the root.
func (tree *Tree) IsStump() bool {
	return !tree.arena.HasChildren(tree.rootID)
}

// Context returns the resolved configuration, including final column widths.
func (tree *Tree) Context() *config.Context {
	return &tree.settings
}

// ColumnProperties returns the widest value of each numeric column.
func (tree *Tree) ColumnProperties() config.ColumnProperties {
	return tree.settings.Columns
}

// RootID returns the handle of the root directory.
func (tree *Tree) RootID() NodeID {
	return tree.rootID
}

// Arena returns the node store.
func (tree *Tree) Arena() *Arena {
	return tree.arena
}

// Root returns the root node.
func (tree *Tree) Root() *Node {
	return tree.arena.Get(tree.rootID)
}

// Children returns the ordered children of id.
func (tree *Tree) Children(id NodeID) []NodeID {
	return tree.arena.Children(id)
}

// Node returns the node behind id.
func (tree *Tree) Node(id NodeID) *Node {
	return tree.arena.Get(id)
}

// FileCount counts the direct children of id by kind.
func (tree *Tree) FileCount(id NodeID) FileCount {
	return computeFileCount(tree.arena, id)
}

// TotalFileCount counts every entry reachable from the root, excluding the root.
func (tree *Tree) TotalFileCount() FileCount {
	var total FileCount
	for _, nodeID := range tree.arena.Descendants(tree.rootID) {
		if tree.arena.HasChildren(nodeID) {
			total.Add(computeFileCount(tree.arena, nodeID))
		}
	}
	return total
}
