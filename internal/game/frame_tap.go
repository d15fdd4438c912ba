package game

// frameTap records the link count of the last N frames into a ring buffer
// so the HUD can draw a history line.
type frameTap struct {
	buffer    []int
	nextIndex int
	filled    bool
}

func newFrameTap(ringSize int) *frameTap {
	return &frameTap{buffer: make([]int, ringSize)}
}

func (t *frameTap) record(links int) {
	t.buffer[t.nextIndex] = links
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
		t.filled = true
	}
}

func (t *frameTap) len() int {
	if t.filled {
		return len(t.buffer)
	}
	return t.nextIndex
}

// snapshot returns up to the last n values, oldest first.
func (t *frameTap) snapshot(n int) []int {
	n = min(n, t.len())
	out := make([]int, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
