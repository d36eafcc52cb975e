package shared

// Seating is the table order for a match, held as a ring of canonical player
// positions. Rotating it never moves the player records themselves.
type Seating struct {
	seats []int
}

// NewSeating creates a seating of n players in canonical order 0..n-1.
func NewSeating(n int) *Seating {
	s := &Seating{seats: make([]int, n)}
	s.Reset()
	return s
}

// Reset restores the canonical order.
func (s *Seating) Reset() {
	for i := range s.seats {
		s.seats[i] = i
	}
}

// Len returns the number of seats.
func (s *Seating) Len() int {
	return len(s.seats)
}

// At returns the canonical position of the player sitting at seat i.
func (s *Seating) At(i int) int {
	return s.seats[i]
}

// Index returns the seat currently held by the player at canonical position pos, or -1.
func (s *Seating) Index(pos int) int {
	for i, p := range s.seats {
		if p == pos {
			return i
		}
	}
	return -1
}

// Order returns a copy of the current seat order.
func (s *Seating) Order() []int {
	out := make([]int, len(s.seats))
	copy(out, s.seats)
	return out
}

// RotateLeft moves every player n seats towards the front; the player at seat n
// ends up at seat 0.
func (s *Seating) RotateLeft(n int) {
	if len(s.seats) == 0 {
		return
	}
	n %= len(s.seats)
	if n < 0 {
		n += len(s.seats)
	}
	rotated := append(append(make([]int, 0, len(s.seats)), s.seats[n:]...), s.seats[:n]...)
	copy(s.seats, rotated)
}
