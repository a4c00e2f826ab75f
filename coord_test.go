// Copyright (c) 2025 Petr Shko
// SPDX-License-Identifier: MIT

package lodtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadVecGetChildOrdering(t *testing.T) {
	p := NewQuadVec(3, 5, 1)

	assert.Equal(t, NewQuadVec(6, 10, 2), p.GetChild(0))
	assert.Equal(t, NewQuadVec(7, 10, 2), p.GetChild(1))
	assert.Equal(t, NewQuadVec(6, 11, 2), p.GetChild(2))
	assert.Equal(t, NewQuadVec(7, 11, 2), p.GetChild(3))
}

func TestQuadVecContainsChildNode(t *testing.T) {
	p := NewQuadVec(1, 1, 1)

	assert.True(t, p.ContainsChildNode(p))
	assert.True(t, p.ContainsChildNode(NewQuadVec(2, 3, 2)))
	assert.True(t, p.ContainsChildNode(NewQuadVec(3, 2, 2)))
	assert.False(t, p.ContainsChildNode(NewQuadVec(0, 0, 2)))
	assert.False(t, p.ContainsChildNode(NewQuadVec(0, 0, 0)), "other.Depth < p.Depth")
}

func TestQuadVecCanSubdivideRequiresShallowerOther(t *testing.T) {
	p := NewQuadVec(1, 1, 2)

	assert.False(t, p.CanSubdivide(NewQuadVec(1, 1, 2), 0), "equal depth never subdivides")
	assert.False(t, p.CanSubdivide(NewQuadVec(0, 0, 3), 0), "deeper other never subdivides")
}

func TestQuadVecCanSubdivideDistance(t *testing.T) {
	target := NewQuadVec(1, 1, 2)

	// (0,0,1) projects to the box [0,1]x[0,1] at depth 2, which contains
	// the target: distance 0.
	assert.True(t, target.CanSubdivide(NewQuadVec(0, 0, 1), 0))

	// (1,0,1) projects to [2,3]x[0,1]: one chunk away on X.
	assert.False(t, target.CanSubdivide(NewQuadVec(1, 0, 1), 0))
	assert.True(t, target.CanSubdivide(NewQuadVec(1, 0, 1), 1))
}

func TestQuadVecIsInsideBoundsRootAlwaysInside(t *testing.T) {
	root := QuadVec{}
	min, max := NewQuadVec(5, 5, 3), NewQuadVec(5, 5, 3)
	assert.True(t, root.IsInsideBounds(min, max, 8))
}

func TestQuadVecIsInsideBoundsCapsAtBoundsDepth(t *testing.T) {
	min, max := NewQuadVec(1, 1, 4), NewQuadVec(7, 7, 4)

	// A position deeper than the bound's own depth is never inside, even
	// though maxDepth alone would have allowed it.
	deep := NewQuadVec(2, 2, 5)
	assert.False(t, deep.IsInsideBounds(min, max, 8))

	shallow := NewQuadVec(0, 0, 1)
	assert.True(t, shallow.IsInsideBounds(min, max, 8), "its cell [0,7]x[0,7] overlaps [1,7]x[1,7]")

	outside := NewQuadVec(3, 0, 1)
	assert.False(t, outside.IsInsideBounds(min, max, 8), "its cell [24,31]x[0,7] misses [1,7]x[1,7]")
}

func TestOctVecGetChildOrdering(t *testing.T) {
	p := NewOctVec(1, 1, 1, 0)

	assert.Equal(t, NewOctVec(2, 2, 2, 1), p.GetChild(0))
	assert.Equal(t, NewOctVec(3, 2, 2, 1), p.GetChild(1))
	assert.Equal(t, NewOctVec(2, 3, 2, 1), p.GetChild(2))
	assert.Equal(t, NewOctVec(2, 2, 3, 1), p.GetChild(4))
	assert.Equal(t, NewOctVec(3, 3, 3, 1), p.GetChild(7))
}

func TestOctVecContainsChildNode(t *testing.T) {
	p := NewOctVec(1, 1, 1, 1)
	assert.True(t, p.ContainsChildNode(NewOctVec(2, 3, 2, 2)))
	assert.False(t, p.ContainsChildNode(NewOctVec(0, 0, 0, 2)))
}

func TestOctVecCanSubdivideDistance(t *testing.T) {
	target := NewOctVec(1, 1, 1, 2)

	assert.True(t, target.CanSubdivide(NewOctVec(0, 0, 0, 1), 0))
	assert.False(t, target.CanSubdivide(NewOctVec(1, 0, 0, 1), 0), "one chunk away on X")
	assert.True(t, target.CanSubdivide(NewOctVec(1, 0, 0, 1), 1))
}
