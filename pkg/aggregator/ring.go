package aggregator

// RecentFieldGoalCap is the number of field goal attempts kept for fixed-count windows
const RecentFieldGoalCap = 10

// pointsRing is a fixed-capacity history that evicts its oldest entry on overflow
type pointsRing struct {
	buf   []int
	start int
	size  int
}

func newPointsRing(capacity int) *pointsRing {
	if capacity < 1 {
		capacity = 1
	}
	return &pointsRing{buf: make([]int, capacity)}
}

// Push appends v, dropping the oldest entry when full
func (r *pointsRing) Push(v int) {
	if r.size < len(r.buf) {
		r.buf[(r.start+r.size)%len(r.buf)] = v
		r.size++
		return
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
}

// Values returns the retained entries, oldest first
func (r *pointsRing) Values() []int {
	out := make([]int, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[(r.start+i)%len(r.buf)]
	}
	return out
}

// SumLast sums the n newest entries, or all entries when fewer than n are retained
func (r *pointsRing) SumLast(n int) int {
	if n > r.size {
		n = r.size
	}
	sum := 0
	for i := r.size - n; i < r.size; i++ {
		sum += r.buf[(r.start+i)%len(r.buf)]
	}
	return sum
}
