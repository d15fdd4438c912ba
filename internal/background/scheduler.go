package background

// FrameID identifies a scheduled frame callback. Zero is never issued.
type FrameID uint64

// Scheduler runs callbacks on the host's next display frame.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler driven by calling Tick once per host frame.
// It is not safe for concurrent use; hosts call it from their main loop.
type FrameQueue struct {
	nextID  FrameID
	order   []FrameID
	pending map[FrameID]func()
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: map[FrameID]func(){}}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.nextID++
	q.pending[q.nextID] = fn
	q.order = append(q.order, q.nextID)
	return q.nextID
}

// CancelFrame drops a pending callback. Unknown, already run or already
// cancelled IDs are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Pending reports how many callbacks will run on the next Tick.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Tick runs the callbacks requested before this call, in request order.
// Callbacks requested while ticking wait for the next Tick.
func (q *FrameQueue) Tick() int {
	batch := q.order
	q.order = nil

	ran := 0
	for _, id := range batch {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn()
		ran++
	}
	return ran
}
