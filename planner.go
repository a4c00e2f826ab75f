// Copyright (c) 2025 Petr Shko
// SPDX-License-Identifier: MIT

package lodtree

// PrepareUpdate computes the deltas needed to make the tree resolve to
// depth d in a neighbourhood of each target, where the neighbourhood
// grows as detail grows, pruning anywhere no target is interested.
//
// It clears and refills ToAdd/ToRemove/ToActivate/ToDeactivate (the
// to_delete list from a prior cycle is left untouched — it belongs to
// the caller until CompleteUpdate runs). It converges one level per
// call: the caller is expected to invoke PrepareUpdate and DoUpdate
// alternately until PrepareUpdate returns false. PrepareUpdate returns
// true if either ToAdd or ToRemove is non-empty, i.e. whether DoUpdate
// has anything to apply.
func (t *Tree[C, L]) PrepareUpdate(targets []L, detail uint32, factory ChunkFactory[C, L]) bool {
	t.toAdd = t.toAdd[:0]
	t.toRemove = t.toRemove[:0]
	t.toActivate = t.toActivate[:0]
	t.toDeactivate = t.toDeactivate[:0]

	if len(t.nodes) == 0 {
		var zero L
		root := zero.Root()
		chunk := t.getFromCacheOrCreate(root, factory)
		t.toAdd = append(t.toAdd, ToAdd[C, L]{Chunk: chunk, Position: root, parentNodeIndex: 0})
		return true
	}

	var zero L
	t.processingQueue = append(t.processingQueue[:0], queueItem[L]{position: zero.Root(), nodeIndex: 0})

	for len(t.processingQueue) > 0 {
		last := len(t.processingQueue) - 1
		item := t.processingQueue[last]
		t.processingQueue = t.processingQueue[:last]

		pos, nodeIdx := item.position, item.nodeIndex
		n := t.nodes[nodeIdx]

		canSubdivide := false
		for _, target := range targets {
			if target.CanSubdivide(pos, detail) {
				canSubdivide = true
				break
			}
		}

		switch {
		case canSubdivide && !n.hasChildren():
			for i := 0; i < pos.NumChildren(); i++ {
				childPos := pos.GetChild(i)
				chunk := t.getFromCacheOrCreate(childPos, factory)
				t.toAdd = append(t.toAdd, ToAdd[C, L]{Chunk: chunk, Position: childPos, parentNodeIndex: nodeIdx})
			}
			t.toDeactivate = append(t.toDeactivate, nodeIdx)

		case n.hasChildren():
			g := n.childGroupStart()
			allChildrenLeaves := true
			for i := 0; i < pos.NumChildren(); i++ {
				if t.nodes[g+uint32(i)].hasChildren() {
					allChildrenLeaves = false
					break
				}
			}

			if !canSubdivide && allChildrenLeaves {
				t.toActivate = append(t.toActivate, nodeIdx)
				for i := 0; i < pos.NumChildren(); i++ {
					t.toRemove = append(t.toRemove, toRemove{chunkNode: g + uint32(i), parent: nodeIdx})
				}
			} else {
				for i := 0; i < pos.NumChildren(); i++ {
					t.processingQueue = append(t.processingQueue, queueItem[L]{
						position:  pos.GetChild(i),
						nodeIndex: g + uint32(i),
					})
				}
			}
		}
		// leaf with !canSubdivide: no output.
	}

	return len(t.toAdd) > 0 || len(t.toRemove) > 0
}

// PrepareInsert computes the deltas needed to carve depth down to each
// target, leaving intermediate nodes populated. Unlike PrepareUpdate, it
// subdivides any leaf it visits regardless of detail, and never plans
// removals. When it reaches an internal node, it descends into a child
// only if some target exactly equals that child's position (in which case
// the child's chunk is overwritten in place via factory, with no
// structural change and no delta entry) or some target's CanSubdivide
// permits descending further.
//
// Like PrepareUpdate, it converges one level per call and returns true
// iff ToAdd is non-empty.
func (t *Tree[C, L]) PrepareInsert(targets []L, detail uint32, factory ChunkFactory[C, L]) bool {
	t.toAdd = t.toAdd[:0]
	t.toRemove = t.toRemove[:0]
	t.toActivate = t.toActivate[:0]
	t.toDeactivate = t.toDeactivate[:0]

	if len(t.nodes) == 0 {
		var zero L
		root := zero.Root()
		chunk := t.getFromCacheOrCreate(root, factory)
		t.toAdd = append(t.toAdd, ToAdd[C, L]{Chunk: chunk, Position: root, parentNodeIndex: 0})
		return true
	}

	var zero L
	t.processingQueue = append(t.processingQueue[:0], queueItem[L]{position: zero.Root(), nodeIndex: 0})

	for len(t.processingQueue) > 0 {
		last := len(t.processingQueue) - 1
		item := t.processingQueue[last]
		t.processingQueue = t.processingQueue[:last]

		pos, nodeIdx := item.position, item.nodeIndex
		n := t.nodes[nodeIdx]

		if !n.hasChildren() {
			for i := 0; i < pos.NumChildren(); i++ {
				childPos := pos.GetChild(i)
				chunk := t.getFromCacheOrCreate(childPos, factory)
				t.toAdd = append(t.toAdd, ToAdd[C, L]{Chunk: chunk, Position: childPos, parentNodeIndex: nodeIdx})
			}
			t.toDeactivate = append(t.toDeactivate, nodeIdx)
			continue
		}

		g := n.childGroupStart()
		for i := 0; i < pos.NumChildren(); i++ {
			childPos := pos.GetChild(i)

			for _, target := range targets {
				if target == childPos {
					t.chunks[t.nodes[g+uint32(i)].chunk].chunk = factory(childPos)
					continue
				}
				if target.CanSubdivide(childPos, detail) {
					t.processingQueue = append(t.processingQueue, queueItem[L]{
						position:  childPos,
						nodeIndex: g + uint32(i),
					})
					break
				}
			}
		}
	}

	return len(t.toAdd) > 0
}
