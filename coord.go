// Copyright (c) 2025 Petr Shko
// SPDX-License-Identifier: MIT

package lodtree

// Coord is the capability set a hierarchical coordinate type must provide
// to be used as the position type of a [Tree]. It is the sole source of
// geometric semantics the tree relies on; the tree itself never inspects
// lattice coordinates or depth directly.
//
// Self must be the implementing type itself (the curiously-recurring
// generic pattern), since Go has no native way to express "the type
// implementing this interface" otherwise. Self must be comparable so that
// positions can key the chunk cache and the delta vectors' position
// lookups.
//
// Two concrete implementations ship with this package: [QuadVec] (4
// children, 2D lattice) and [OctVec] (8 children, 3D lattice).
type Coord[Self any] interface {
	comparable

	// NumChildren returns the branching factor: 4 for a quadtree position,
	// 8 for an octree position. It must be constant for all values of Self.
	NumChildren() int

	// Root returns the unique position at depth 0.
	Root() Self

	// GetChild returns the i-th child position, for 0 <= i < NumChildren().
	// GetChild must be total (defined for every i in range) and
	// deterministic.
	GetChild(i int) Self

	// ContainsChildNode reports whether other lies within the subtree
	// rooted at this position. It requires other.Depth() >= this depth.
	ContainsChildNode(other Self) bool

	// IsInsideBounds reports whether this position's bounding box overlaps
	// the axis-aligned box [min, max], restricted to positions at or above
	// maxDepth.
	IsInsideBounds(min, max Self, maxDepth uint8) bool

	// CanSubdivide reports whether other is close enough to this position,
	// at this position's depth, that refining other is warranted. detail
	// is the caller-chosen refinement radius in chunks.
	CanSubdivide(other Self, detail uint32) bool
}
