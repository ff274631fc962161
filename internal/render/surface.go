// Package render defines the immediate-mode 2D drawing surface the animation
// draws on, together with the colour and stroke vocabulary shared by every
// backend.
package render

// Point is a 2D position in logical units.
type Point struct {
	X, Y float64
}

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinBevel
)

// Stroke describes one pass over a path. Alpha multiplies the colour's own
// alpha, the way a global opacity would.
type Stroke struct {
	Color  Color
	Width  float64
	Alpha  float64
	Shadow Color
	Blur   float64
	Join   LineJoin
}

// Surface is an immediate-mode drawing target. Coordinates are logical units;
// the transform set by SetTransform maps them onto the backing store.
type Surface interface {
	// SetBackingSize resizes the pixel store. Implementations may drop
	// previous contents.
	SetBackingSize(w, h int)
	// SetTransform replaces the current affine transform
	// (x' = a*x + c*y + e, y' = b*x + d*y + f).
	SetTransform(a, b, c, d, e, f float64)
	SetHidden(hidden bool)
	ClearRect(x, y, w, h float64)
	StrokePath(path []Point, st Stroke)
	// FillRadial fills the square of half-size r around (x, y) with a radial
	// gradient from inner at the centre to outer at radius r.
	FillRadial(x, y, r float64, inner, outer Color)
	FillCircle(x, y, r float64, c Color)
}
