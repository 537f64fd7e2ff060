package game

// Snake is an ordered body with the head at index 0, a facing direction and
// the growth/death flags consumed by Step.
type Snake struct {
	body      []Point // Head at index 0, never empty
	direction Direction
	growing   bool // If true, don't remove tail on next step
	dead      bool
}

// NewSnake builds a snake of tailLength+1 segments. The tail trails behind the
// head along the reverse of dir. Bounds are not checked here.
func NewSnake(head Point, tailLength int, dir Direction) *Snake {
	if tailLength < 0 {
		tailLength = 0
	}

	body := make([]Point, 0, tailLength+1)
	body = append(body, head)

	back := dir.Opposite().Delta()
	seg := head
	for range tailLength {
		seg = seg.Add(back)
		body = append(body, seg)
	}

	return &Snake{
		body:      body,
		direction: dir,
	}
}

// Head returns the front segment.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current facing.
func (s *Snake) Direction() Direction {
	return s.direction
}

// IsDead reports whether the snake ran into itself.
func (s *Snake) IsDead() bool {
	return s.dead
}

// IsGrowing reports whether the next Step keeps the tail.
func (s *Snake) IsGrowing() bool {
	return s.growing
}

// Grow makes the next Step extend the body by one segment.
func (s *Snake) Grow() {
	s.growing = true
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Turn changes the facing unless d would fold the head back into the neck.
// Rejected turns are silently ignored.
func (s *Snake) Turn(d Direction) {
	if !d.Valid() || d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Step advances the head one cell. Running into the body marks the snake dead
// and leaves the body untouched. The tail end only counts as an obstacle while
// growing, since otherwise it is vacated on this same step.
func (s *Snake) Step() {
	if s.dead {
		return
	}

	newHead := s.Head().Add(s.direction.Delta())

	checkLen := len(s.body)
	if !s.growing {
		checkLen-- // Tail will be removed
	}
	for i := range checkLen {
		if s.body[i] == newHead {
			s.dead = true
			return
		}
	}

	if s.growing {
		s.growing = false
		s.body = append(s.body, Point{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
}
