package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedNode(name string, kind Kind) *Node {
	return &Node{path: "/" + name, name: name, kind: kind, depth: 1}
}

func TestArenaAppendDetachAndRemove(t *testing.T) {
	t.Parallel()

	arena := NewArena()
	rootID := arena.NewNode(namedNode("root", KindDir))
	firstID := arena.NewNode(namedNode("first", KindDir))
	secondID := arena.NewNode(namedNode("second", KindFile))
	nestedID := arena.NewNode(namedNode("nested", KindFile))

	arena.Append(rootID, firstID)
	arena.Append(rootID, secondID)
	arena.Append(firstID, nestedID)

	assert.Equal(t, []NodeID{firstID, secondID}, arena.Children(rootID))
	assert.Equal(t, []NodeID{rootID, firstID, nestedID, secondID}, arena.Descendants(rootID))
	assert.Equal(t, firstID, arena.Parent(nestedID))
	assert.Equal(t, 4, arena.Len())

	arena.Detach(secondID)
	assert.Equal(t, []NodeID{firstID}, arena.Children(rootID))
	assert.Equal(t, NoNode, arena.Parent(secondID))
	require.NotNil(t, arena.Get(secondID), "detached nodes stay in the arena")

	arena.RemoveSubtree(firstID)
	assert.False(t, arena.HasChildren(rootID))
	assert.Nil(t, arena.Get(firstID))
	assert.Nil(t, arena.Get(nestedID))
	assert.True(t, arena.IsRemoved(nestedID))
	assert.Equal(t, 2, arena.Len())
}

func TestArenaAppendMovesChildBetweenParents(t *testing.T) {
	t.Parallel()

	arena := NewArena()
	leftID := arena.NewNode(namedNode("left", KindDir))
	rightID := arena.NewNode(namedNode("right", KindDir))
	childIDs := []NodeID{
		arena.NewNode(namedNode("a", KindFile)),
		arena.NewNode(namedNode("b", KindFile)),
		arena.NewNode(namedNode("c", KindFile)),
	}
	for _, childID := range childIDs {
		arena.Append(leftID, childID)
	}

	arena.Append(rightID, childIDs[1])

	assert.Equal(t, []NodeID{childIDs[0], childIDs[2]}, arena.Children(leftID))
	assert.Equal(t, []NodeID{childIDs[1]}, arena.Children(rightID))
	assert.Equal(t, rightID, arena.Parent(childIDs[1]))
}

func TestArenaIgnoresUnknownHandles(t *testing.T) {
	t.Parallel()

	arena := NewArena()
	assert.Nil(t, arena.Get(NoNode))
	assert.Nil(t, arena.Get(NodeID(7)))
	assert.Nil(t, arena.Children(NodeID(7)))
	assert.Nil(t, arena.Descendants(NoNode))
	arena.Detach(NodeID(3))
	arena.RemoveSubtree(NodeID(3))
	assert.Equal(t, 0, arena.Len())
}
