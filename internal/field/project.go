package field

import (
	"cmp"
	"slices"
)

// Projected is a node mapped to screen space for one frame. Index points back
// into the pool.
type Projected struct {
	X, Y  float64
	S     float64
	Z     float64
	Index int
}

// Scale is the perspective factor fov/(fov+z); 1 at z=0, shrinking with depth.
func Scale(z, fov float64) float64 {
	return fov / (fov + z)
}

func Project(n Node, cx, cy, fov float64) Projected {
	s := Scale(n.Z, fov)
	return Projected{
		X: cx + n.X*s,
		Y: cy + n.Y*s,
		S: s,
		Z: n.Z,
	}
}

// ProjectAll projects every node into dst, reusing its storage, and returns
// the result sorted far to near.
func (f *Field) ProjectAll(dst []Projected, cx, cy, fov float64) []Projected {
	dst = dst[:0]
	for i, n := range f.nodes {
		p := Project(n, cx, cy, fov)
		p.Index = i
		dst = append(dst, p)
	}
	SortByDepth(dst)
	return dst
}

// SortByDepth orders points farthest first so nearer ones overdraw them.
func SortByDepth(ps []Projected) {
	slices.SortStableFunc(ps, func(a, b Projected) int {
		return cmp.Compare(b.Z, a.Z)
	})
}
