package tree

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/fsmeta"
	"github.com/temirov/dirtree/internal/units"
)

const (
	errorExpectedParentFormat = "%w: %s"

	logMessageAssembled  = "assembled tree"
	logFieldEntries      = "entries"
	logFieldHardLinks    = "deduplicated_hard_links"
	logFieldPendingLists = "unattached_branches"
)

// assembler is the single consumer of traversal states. It owns the arena, the
// branch map and the hard-link set; nothing else touches them while it runs.
type assembler struct {
	settings   *config.Context
	columns    *config.ColumnProperties
	comparator Comparator
	logger     *zap.Logger

	arena    *Arena
	branches map[string][]NodeID
	inodes   map[fsmeta.Identity]struct{}

	entries          int
	skippedHardLinks int
}

func newAssembler(settings *config.Context, columns *config.ColumnProperties, logger *zap.Logger) *assembler {
	return &assembler{
		settings:   settings,
		columns:    columns,
		comparator: NewComparator(settings.Sort, settings.DirOrder),
		logger:     logger,
		arena:      NewArena(),
		branches:   map[string][]NodeID{},
		inodes:     map[fsmeta.Identity]struct{}{},
	}
}

// run consumes states until Done and folds the result into a sorted tree.
func (assembler *assembler) run(ctx context.Context, states <-chan TraversalState) (*Arena, NodeID, error) {
	rootID := NoNode
	for {
		var state TraversalState
		select {
		case <-ctx.Done():
			return nil, NoNode, ctx.Err()
		case state = <-states:
		}
		if state.IsDone() {
			break
		}
		nodeID, isRoot, insertError := assembler.insert(state.Node())
		if insertError != nil {
			return nil, NoNode, insertError
		}
		if isRoot {
			rootID = nodeID
		}
	}

	if rootID == NoNode {
		return nil, NoNode, ErrMissingRoot
	}

	assembler.fold(rootID)

	assembler.logger.Debug(logMessageAssembled,
		zap.Int(logFieldEntries, assembler.entries),
		zap.Int(logFieldHardLinks, assembler.skippedHardLinks),
		zap.Int(logFieldPendingLists, len(assembler.branches)),
	)
	return assembler.arena, rootID, nil
}

// insert stores node in the arena and files it under its parent's branch list.
// Every directory gets a branch list, even one that never receives children.
func (assembler *assembler) insert(node *Node) (NodeID, bool, error) {
	assembler.entries++
	if node.IsDir() {
		if _, exists := assembler.branches[node.Path()]; !exists {
			assembler.branches[node.Path()] = nil
		}
		if node.Depth() == 0 {
			return assembler.arena.NewNode(node), true, nil
		}
	}

	parentPath, hasParent := node.ParentPath()
	if !hasParent {
		return NoNode, false, fmt.Errorf(errorExpectedParentFormat, ErrExpectedParent, node.Path())
	}
	nodeID := assembler.arena.NewNode(node)
	assembler.branches[parentPath] = append(assembler.branches[parentPath], nodeID)
	return nodeID, false, nil
}

// foldFrame is one directory on the explicit post-order stack.
type foldFrame struct {
	id        NodeID
	children  []NodeID
	next      int
	descended bool
	size      units.FileSize
}

func (assembler *assembler) openFrame(id NodeID) *foldFrame {
	path := assembler.arena.Get(id).Path()
	children := assembler.branches[path]
	delete(assembler.branches, path)
	return &foldFrame{
		id:       id,
		children: children,
		size:     units.NewFileSize(0, assembler.settings.DiskUsage, assembler.settings.Human, assembler.settings.Unit),
	}
}

// fold attaches every branch list beneath its directory, children first, so a
// directory's size is complete before its parent adds it.
func (assembler *assembler) fold(rootID NodeID) {
	stack := []*foldFrame{assembler.openFrame(rootID)}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		if frame.next < len(frame.children) {
			childID := frame.children[frame.next]
			child := assembler.arena.Get(childID)
			if child.IsDir() && !frame.descended {
				frame.descended = true
				stack = append(stack, assembler.openFrame(childID))
				continue
			}
			assembler.accumulate(frame, child)
			frame.next++
			frame.descended = false
			continue
		}
		assembler.close(frame)
		stack = stack[:len(stack)-1]
	}
}

// accumulate adds child to the running total of its directory. A hard-linked
// entry whose storage was already counted anywhere in the tree adds nothing.
func (assembler *assembler) accumulate(frame *foldFrame, child *Node) {
	updateColumnProperties(assembler.columns, child, assembler.settings.Long)

	if child.Metadata().IsHardLinked() {
		identity := child.Metadata().Identity
		if _, seen := assembler.inodes[identity]; seen {
			assembler.skippedHardLinks++
			return
		}
		assembler.inodes[identity] = struct{}{}
	}

	if fileSize, hasSize := child.FileSize(); hasSize {
		frame.size.Add(fileSize)
	}
}

// close records the directory size, sorts the children and attaches them.
func (assembler *assembler) close(frame *foldFrame) {
	directory := assembler.arena.Get(frame.id)
	if frame.size.Bytes > 0 {
		frame.size.PrecomputeUnpaddedDisplay()
		directory.SetFileSize(frame.size)
	}
	updateColumnProperties(assembler.columns, directory, assembler.settings.Long)

	slices.SortStableFunc(frame.children, func(a, b NodeID) int {
		return assembler.comparator(assembler.arena.Get(a), assembler.arena.Get(b))
	})
	for _, childID := range frame.children {
		assembler.arena.Append(frame.id, childID)
	}
}
