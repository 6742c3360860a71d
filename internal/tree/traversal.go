package tree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/walk"
)

// traversalBufferSize keeps worker sends from blocking on the assembler in practice.
const traversalBufferSize = 4096

const (
	errorDirNotFoundFormat  = "%w: %s: %w"
	errorNotDirectoryFormat = "%w: %s is not a directory"
	errorCreateWalkerFormat = "create walker for %s: %w"
)

// TraversalState is one message from the walker workers to the assembler:
// either an ongoing entry or the terminal done signal.
type TraversalState struct {
	node *Node
	done bool
}

// Ongoing wraps a discovered node.
func Ongoing(node *Node) TraversalState {
	return TraversalState{node: node}
}

// Done is sent exactly once, after every worker has exited.
func Done() TraversalState {
	return TraversalState{done: true}
}

// IsDone reports whether the state is the terminal signal.
func (state TraversalState) IsDone() bool {
	return state.done
}

// Node returns the node carried by an ongoing state.
func (state TraversalState) Node() *Node {
	return state.node
}

// sendState delivers state unless ctx is cancelled first.
func sendState(ctx context.Context, states chan<- TraversalState, state TraversalState) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case states <- state:
		return nil
	}
}

// branchVisitorBuilder hands each worker its own visitor sharing the send side of the channel.
type branchVisitorBuilder struct {
	ctx      context.Context
	settings *config.Context
	states   chan<- TraversalState
}

func newBranchVisitorBuilder(ctx context.Context, settings *config.Context, states chan<- TraversalState) *branchVisitorBuilder {
	return &branchVisitorBuilder{ctx: ctx, settings: settings, states: states}
}

// Build implements walk.VisitorBuilder.
func (builder *branchVisitorBuilder) Build() walk.Visitor {
	return &branchVisitor{ctx: builder.ctx, settings: builder.settings, states: builder.states}
}

type branchVisitor struct {
	ctx      context.Context
	settings *config.Context
	states   chan<- TraversalState
}

// Visit implements walk.Visitor.
func (visitor *branchVisitor) Visit(entry walk.Entry) error {
	return sendState(visitor.ctx, visitor.states, Ongoing(NewNode(entry, visitor.settings)))
}

// newWalker resolves the root and the entry predicate and returns a walker
// that has not started any workers.
func newWalker(settings *config.Context, logger *zap.Logger) (*walk.Walker, error) {
	requestedDirectory := settings.Dir()
	absoluteDirectory, absoluteError := filepath.Abs(requestedDirectory)
	if absoluteError != nil {
		return nil, fmt.Errorf(errorDirNotFoundFormat, ErrDirNotFound, requestedDirectory, absoluteError)
	}
	canonicalDirectory, canonicalError := filepath.EvalSymlinks(absoluteDirectory)
	if canonicalError != nil {
		return nil, fmt.Errorf(errorDirNotFoundFormat, ErrDirNotFound, requestedDirectory, canonicalError)
	}
	rootInfo, statError := os.Stat(canonicalDirectory)
	if statError != nil {
		return nil, fmt.Errorf(errorDirNotFoundFormat, ErrDirNotFound, canonicalDirectory, statError)
	}
	if !rootInfo.IsDir() {
		return nil, fmt.Errorf(errorNotDirectoryFormat, ErrDirNotFound, canonicalDirectory)
	}

	predicate, predicateError := settings.EntryPredicate()
	if predicateError != nil {
		return nil, predicateError
	}

	walker, walkerError := walk.New(walk.Options{
		Root:           canonicalDirectory,
		FollowLinks:    settings.FollowLinks,
		UseIgnoreFiles: !settings.NoIgnore,
		IncludeHidden:  settings.Hidden,
		Threads:        settings.Threads,
		Filter:         predicate,
		Logger:         logger,
	})
	if walkerError != nil {
		return nil, fmt.Errorf(errorCreateWalkerFormat, canonicalDirectory, walkerError)
	}
	return walker, nil
}
