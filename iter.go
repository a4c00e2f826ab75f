// Copyright (c) 2025 Petr Shko
// SPDX-License-Identifier: MIT

package lodtree

// Chunks returns an iterator over every chunk currently in the tree,
// together with its position. Like every iterator in this package, it is
// invalidated by DoUpdate or Clear and must not be held across such
// calls.
func (t *Tree[C, L]) Chunks() func(yield func(L, C) bool) {
	return func(yield func(L, C) bool) {
		for i := range t.chunks {
			if !yield(t.chunks[i].position, t.chunks[i].chunk) {
				return
			}
		}
	}
}

// ToAdd returns an iterator over the chunks pending insertion, in
// planner order.
func (t *Tree[C, L]) ToAdd() func(yield func(L, C) bool) {
	return func(yield func(L, C) bool) {
		for i := range t.toAdd {
			if !yield(t.toAdd[i].Position, t.toAdd[i].Chunk) {
				return
			}
		}
	}
}

// ToRemove returns an iterator over the chunks pending removal.
func (t *Tree[C, L]) ToRemove() func(yield func(L, C) bool) {
	return func(yield func(L, C) bool) {
		for i := range t.toRemove {
			c := t.chunks[t.nodes[t.toRemove[i].chunkNode].chunk]
			if !yield(c.position, c.chunk) {
				return
			}
		}
	}
}

// ToActivate returns an iterator over the chunks of nodes pending
// activation.
func (t *Tree[C, L]) ToActivate() func(yield func(L, C) bool) {
	return func(yield func(L, C) bool) {
		for i := range t.toActivate {
			c := t.chunks[t.nodes[t.toActivate[i]].chunk]
			if !yield(c.position, c.chunk) {
				return
			}
		}
	}
}

// ToDeactivate returns an iterator over the chunks of nodes pending
// deactivation.
func (t *Tree[C, L]) ToDeactivate() func(yield func(L, C) bool) {
	return func(yield func(L, C) bool) {
		for i := range t.toDeactivate {
			c := t.chunks[t.nodes[t.toDeactivate[i]].chunk]
			if !yield(c.position, c.chunk) {
				return
			}
		}
	}
}

// ToDelete returns an iterator over the chunks pending permanent
// deletion.
func (t *Tree[C, L]) ToDelete() func(yield func(L, C) bool) {
	return func(yield func(L, C) bool) {
		for i := range t.toDelete {
			if !yield(t.toDelete[i].Position, t.toDelete[i].Chunk) {
				return
			}
		}
	}
}

// BoundsIterator is a stateful cursor over every position that would be
// affected by an axis-aligned box edit — not just positions currently
// held by a tree. It is independent of any [Tree] instance: it never
// reads node or chunk state, only [Coord] geometry.
type BoundsIterator[L Coord[L]] struct {
	min, max L
	maxDepth uint8
	stack    []L
}

// NewBoundsIterator creates a cursor that yields the root first, then
// every descendant position whose cell overlaps [min, max], in pre-order.
// For [QuadVec] and [OctVec], positions deeper than min(maxDepth,
// min's depth) are not yielded.
func NewBoundsIterator[L Coord[L]](min, max L, maxDepth uint8) *BoundsIterator[L] {
	var zero L
	return &BoundsIterator[L]{
		min:      min,
		max:      max,
		maxDepth: maxDepth,
		stack:    []L{zero.Root()},
	}
}

// Next advances the cursor, returning the next position and true, or the
// zero value and false once exhausted.
func (b *BoundsIterator[L]) Next() (L, bool) {
	if len(b.stack) == 0 {
		var zero L
		return zero, false
	}

	last := len(b.stack) - 1
	pos := b.stack[last]
	b.stack = b.stack[:last]

	for i := 0; i < pos.NumChildren(); i++ {
		child := pos.GetChild(i)
		if child.IsInsideBounds(b.min, b.max, b.maxDepth) {
			b.stack = append(b.stack, child)
		}
	}

	return pos, true
}

// All drains the remaining cursor as a push iterator, for use in a
// range-over-func loop.
func (b *BoundsIterator[L]) All() func(yield func(L) bool) {
	return func(yield func(L) bool) {
		for {
			pos, ok := b.Next()
			if !ok {
				return
			}
			if !yield(pos) {
				return
			}
		}
	}
}
