// Copyright (c) 2025 Petr Shko
// SPDX-License-Identifier: MIT

package lodtree

// node is a slot in the tree's flat node arena.
//
// children is zero for a leaf; otherwise it is the index of the first of
// NumChildren contiguous sibling nodes. Node 0 is always the root and can
// never be a child, so the zero value of children doubles as "no
// children" without an extra discriminant — the same trick the original
// used with Option<NonZeroU32>.
type node struct {
	children uint32
	chunk    uint32
}

// hasChildren reports whether this node is internal.
func (n node) hasChildren() bool { return n.children != 0 }

// childGroupStart returns the index of the first of this node's
// contiguous children. Only valid when hasChildren is true.
func (n node) childGroupStart() uint32 { return n.children }

// chunkContainer holds a chunk payload together with the back-reference
// to the node that owns it, so that a swap-remove in the chunk array can
// repair the displaced node's chunk field in O(1).
type chunkContainer[C any, L comparable] struct {
	chunk    C
	index    uint32 // index of the node that owns this chunk
	position L
}
