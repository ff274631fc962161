package render

type OpKind int

const (
	OpBacking OpKind = iota
	OpTransform
	OpHidden
	OpClear
	OpStroke
	OpRadial
	OpCircle
)

func (k OpKind) String() string {
	switch k {
	case OpBacking:
		return "backing"
	case OpTransform:
		return "transform"
	case OpHidden:
		return "hidden"
	case OpClear:
		return "clear"
	case OpStroke:
		return "stroke"
	case OpRadial:
		return "radial"
	case OpCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Op is one recorded surface call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Path   []Point
	Stroke Stroke
	X, Y   float64
	W, H   float64
	R      float64
	Colors [2]Color
	Matrix [6]float64
	Hidden bool
}

// Recorder is a Surface that keeps every call in order. It backs the
// engine tests and dry runs.
type Recorder struct {
	Ops []Op

	BackingW, BackingH int
	Transform          [6]float64
	Hidden             bool
}

func (r *Recorder) SetBackingSize(w, h int) {
	r.BackingW, r.BackingH = w, h
	r.Ops = append(r.Ops, Op{Kind: OpBacking, W: float64(w), H: float64(h)})
}

func (r *Recorder) SetTransform(a, b, c, d, e, f float64) {
	r.Transform = [6]float64{a, b, c, d, e, f}
	r.Ops = append(r.Ops, Op{Kind: OpTransform, Matrix: r.Transform})
}

func (r *Recorder) SetHidden(hidden bool) {
	r.Hidden = hidden
	r.Ops = append(r.Ops, Op{Kind: OpHidden, Hidden: hidden})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) StrokePath(path []Point, st Stroke) {
	// callers reuse their path buffers
	cp := make([]Point, len(path))
	copy(cp, path)
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Path: cp, Stroke: st})
}

func (r *Recorder) FillRadial(x, y, radius float64, inner, outer Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRadial, X: x, Y: y, R: radius, Colors: [2]Color{inner, outer}})
}

func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: radius, Colors: [2]Color{c}})
}

// DrawCalls counts the calls that put pixels on the surface.
func (r *Recorder) DrawCalls() int {
	n := 0
	for _, op := range r.Ops {
		switch op.Kind {
		case OpClear, OpStroke, OpRadial, OpCircle:
			n++
		}
	}
	return n
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
