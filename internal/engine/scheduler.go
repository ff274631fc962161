package engine

// Scheduler is a one-shot frame callback primitive: a requested callback runs
// once, before the next presented frame, and must request again to keep
// going.
type Scheduler interface {
	RequestFrame(cb func(ts float64)) int
	CancelFrame(handle int)
}

// FrameQueue is a Scheduler driven by its host: the host calls Fire once per
// display refresh (ebiten's Draw, or a headless loop).
type FrameQueue struct {
	next    int
	handle  int
	pending func(float64)
}

func (q *FrameQueue) RequestFrame(cb func(ts float64)) int {
	q.next++
	q.handle = q.next
	q.pending = cb
	return q.handle
}

// CancelFrame drops the pending callback if handle still identifies it.
func (q *FrameQueue) CancelFrame(handle int) {
	if handle == q.handle {
		q.pending = nil
	}
}

func (q *FrameQueue) Pending() bool { return q.pending != nil }

// Fire runs the pending callback, if any, with timestamp ts in milliseconds.
func (q *FrameQueue) Fire(ts float64) bool {
	cb := q.pending
	if cb == nil {
		return false
	}
	q.pending = nil
	cb(ts)
	return true
}
