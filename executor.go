// Copyright (c) 2025 Petr Shko
// SPDX-License-Identifier: MIT

package lodtree

// DoUpdate applies the deltas computed by the most recent
// PrepareUpdate/PrepareInsert call. Removals and additions are drained
// together: for each queued removal, a still-pending addition is fused
// into the vacated slot instead of performing a separate swap-remove and
// append, avoiding a chunk copy. Any remaining additions (once removals
// run out, or if there were none) are then appended, reusing freed node
// slots before growing the node arena.
//
// DoUpdate assumes the caller has already handled ToActivate/ToDeactivate
// manually (the tree does not mutate activation state itself) and that
// every entry in ToAdd was properly initialized. After DoUpdate, the
// caller must inspect ToDeleteSlice and then call CompleteUpdate.
//
// Calling DoUpdate with empty delta vectors (i.e. without a prior
// PrepareUpdate/PrepareInsert call that found work to do) is a safe
// no-op.
func (t *Tree[C, L]) DoUpdate() {
	var zeroL L
	numChildren := uint32(zeroL.NumChildren())

	addIdx := 0
	numAdds := len(t.toAdd)

	for _, rm := range t.toRemove {
		nodeIdx, parentIdx := rm.chunkNode, rm.parent

		t.nodes[parentIdx].children = 0
		t.freeList = append(t.freeList, nodeIdx)

		c := t.nodes[nodeIdx].chunk

		if addIdx < numAdds {
			add := t.toAdd[addIdx]
			addIdx++

			// A free index is guaranteed: we just pushed nodeIdx above.
			x := t.freeList[0]
			t.freeList = t.freeList[1:]

			t.nodes[x] = node{children: 0, chunk: c}

			old := t.chunks[c]
			t.chunks[c] = chunkContainer[C, L]{index: x, chunk: add.Chunk, position: add.Position}
			t.offerToCache(old.position, old.chunk)

			if x >= numChildren {
				t.nodes[add.parentNodeIndex].children = x - (numChildren - 1)
			}
		} else {
			old := t.chunks[c]
			last := len(t.chunks) - 1
			t.chunks[c] = t.chunks[last]
			t.chunks = t.chunks[:last]
			t.offerToCache(old.position, old.chunk)

			// If the swap displaced another chunk, repair its node's
			// back-pointer; if c was already the last element, there is
			// nothing left to fix up.
			if int(c) < len(t.chunks) {
				t.nodes[t.chunks[c].index].chunk = c
			}
		}
	}

	for ; addIdx < numAdds; addIdx++ {
		add := t.toAdd[addIdx]

		var x uint32
		if len(t.freeList) > 0 {
			x = t.freeList[0]
			t.freeList = t.freeList[1:]
			t.nodes[x] = node{children: 0, chunk: uint32(len(t.chunks))}
		} else {
			t.nodes = append(t.nodes, node{children: 0, chunk: uint32(len(t.chunks))})
			x = uint32(len(t.nodes) - 1)
		}
		t.chunks = append(t.chunks, chunkContainer[C, L]{index: x, chunk: add.Chunk, position: add.Position})

		if x >= numChildren {
			t.nodes[add.parentNodeIndex].children = x - (numChildren - 1)
		}
	}

	// If only the root chunk is left, nothing else is reachable: drop
	// every free slot and truncate the node arena.
	if len(t.chunks) == 1 {
		t.freeList = t.freeList[:0]
		t.nodes = t.nodes[:1]
	}

	t.toAdd = t.toAdd[:0]
	t.toRemove = t.toRemove[:0]
	t.toActivate = t.toActivate[:0]
	t.toDeactivate = t.toDeactivate[:0]
}
