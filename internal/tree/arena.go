package tree

// NodeID is a stable handle to a node stored in an Arena.
type NodeID int

// NoNode marks the absence of a relation.
const NoNode NodeID = -1

type arenaSlot struct {
	node            *Node
	parent          NodeID
	firstChild      NodeID
	lastChild       NodeID
	previousSibling NodeID
	nextSibling     NodeID
	removed         bool
}

// Arena stores nodes in a flat slice and records tree edges by handle. Handles
// stay valid after other nodes are detached or removed.
type Arena struct {
	slots []arenaSlot
	live  int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewNode stores node without attaching it and returns its handle.
func (arena *Arena) NewNode(node *Node) NodeID {
	arena.slots = append(arena.slots, arenaSlot{
		node:            node,
		parent:          NoNode,
		firstChild:      NoNode,
		lastChild:       NoNode,
		previousSibling: NoNode,
		nextSibling:     NoNode,
	})
	arena.live++
	return NodeID(len(arena.slots) - 1)
}

// Len returns the number of nodes that have not been removed.
func (arena *Arena) Len() int {
	return arena.live
}

func (arena *Arena) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(arena.slots) && !arena.slots[id].removed
}

// Get returns the node behind id, or nil when id is unknown or removed.
func (arena *Arena) Get(id NodeID) *Node {
	if !arena.valid(id) {
		return nil
	}
	return arena.slots[id].node
}

// IsRemoved reports whether id was deleted by RemoveSubtree.
func (arena *Arena) IsRemoved(id NodeID) bool {
	return id >= 0 && int(id) < len(arena.slots) && arena.slots[id].removed
}

// Parent returns the parent of id, or NoNode.
func (arena *Arena) Parent(id NodeID) NodeID {
	if !arena.valid(id) {
		return NoNode
	}
	return arena.slots[id].parent
}

// Append attaches child as the last child of parent, detaching it first if needed.
func (arena *Arena) Append(parent NodeID, child NodeID) {
	if !arena.valid(parent) || !arena.valid(child) || parent == child {
		return
	}
	arena.Detach(child)
	childSlot := &arena.slots[child]
	parentSlot := &arena.slots[parent]
	childSlot.parent = parent
	childSlot.previousSibling = parentSlot.lastChild
	if parentSlot.lastChild != NoNode {
		arena.slots[parentSlot.lastChild].nextSibling = child
	} else {
		parentSlot.firstChild = child
	}
	parentSlot.lastChild = child
}

// Detach unlinks id from its parent and siblings. Its own children stay attached to it.
func (arena *Arena) Detach(id NodeID) {
	if !arena.valid(id) {
		return
	}
	slot := &arena.slots[id]
	if slot.parent == NoNode {
		return
	}
	parentSlot := &arena.slots[slot.parent]
	if slot.previousSibling != NoNode {
		arena.slots[slot.previousSibling].nextSibling = slot.nextSibling
	} else {
		parentSlot.firstChild = slot.nextSibling
	}
	if slot.nextSibling != NoNode {
		arena.slots[slot.nextSibling].previousSibling = slot.previousSibling
	} else {
		parentSlot.lastChild = slot.previousSibling
	}
	slot.parent = NoNode
	slot.previousSibling = NoNode
	slot.nextSibling = NoNode
}

// RemoveSubtree detaches id and deletes it together with all of its descendants.
func (arena *Arena) RemoveSubtree(id NodeID) {
	if !arena.valid(id) {
		return
	}
	arena.Detach(id)
	for _, descendantID := range arena.Descendants(id) {
		slot := &arena.slots[descendantID]
		slot.removed = true
		slot.node = nil
		arena.live--
	}
}

// Children returns the attached children of id in order.
func (arena *Arena) Children(id NodeID) []NodeID {
	if !arena.valid(id) {
		return nil
	}
	var children []NodeID
	for childID := arena.slots[id].firstChild; childID != NoNode; childID = arena.slots[childID].nextSibling {
		children = append(children, childID)
	}
	return children
}

// HasChildren reports whether id has at least one attached child.
func (arena *Arena) HasChildren(id NodeID) bool {
	return arena.valid(id) && arena.slots[id].firstChild != NoNode
}

// Descendants returns id followed by every node beneath it in pre-order.
func (arena *Arena) Descendants(id NodeID) []NodeID {
	if !arena.valid(id) {
		return nil
	}
	var ordered []NodeID
	pending := []NodeID{id}
	for len(pending) > 0 {
		lastIndex := len(pending) - 1
		currentID := pending[lastIndex]
		pending = pending[:lastIndex]
		ordered = append(ordered, currentID)
		for childID := arena.slots[currentID].lastChild; childID != NoNode; childID = arena.slots[childID].previousSibling {
			pending = append(pending, childID)
		}
	}
	return ordered
}
