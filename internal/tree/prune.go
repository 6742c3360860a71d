package tree

// pruneDirectories removes childless directories beneath rootID until none
// remain, since removing one can leave its parent empty. It returns the number
// of directories removed.
func pruneDirectories(arena *Arena, rootID NodeID) int {
	removed := 0
	for {
		var emptyDirectories []NodeID
		for _, nodeID := range arena.Descendants(rootID)[1:] {
			if arena.Get(nodeID).IsDir() && !arena.HasChildren(nodeID) {
				emptyDirectories = append(emptyDirectories, nodeID)
			}
		}
		if len(emptyDirectories) == 0 {
			return removed
		}
		for _, nodeID := range emptyDirectories {
			arena.RemoveSubtree(nodeID)
		}
		removed += len(emptyDirectories)
	}
}

// filterDirectories detaches every non-directory beneath rootID. Detached nodes
// stay in the arena but are no longer reachable from the root.
func filterDirectories(arena *Arena, rootID NodeID) int {
	var detached []NodeID
	for _, nodeID := range arena.Descendants(rootID)[1:] {
		if !arena.Get(nodeID).IsDir() {
			detached = append(detached, nodeID)
		}
	}
	for _, nodeID := range detached {
		arena.Detach(nodeID)
	}
	return len(detached)
}

// retainMatchingDirectories removes every subtree beneath rootID that holds no
// node satisfying matchName, keeping matches together with their ancestors.
// It returns the number of subtrees removed.
func retainMatchingDirectories(arena *Arena, rootID NodeID, matchName func(name string) bool) int {
	descendants := arena.Descendants(rootID)
	retained := map[NodeID]bool{rootID: true}
	for index := len(descendants) - 1; index > 0; index-- {
		nodeID := descendants[index]
		if retained[nodeID] || matchName(arena.Get(nodeID).Name()) {
			retained[nodeID] = true
			retained[arena.Parent(nodeID)] = true
		}
	}

	var discarded []NodeID
	for _, nodeID := range descendants[1:] {
		if !retained[nodeID] && retained[arena.Parent(nodeID)] {
			discarded = append(discarded, nodeID)
		}
	}
	for _, nodeID := range discarded {
		arena.RemoveSubtree(nodeID)
	}
	return len(discarded)
}
