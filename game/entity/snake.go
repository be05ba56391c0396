package entity

import (
	"errors"

	"snaker/game/types"
)

// ErrLastSegment is returned when an operation would leave the snake without segments.
var ErrLastSegment = errors.New("snake must keep at least one segment")

const minCapacity = 16

// Snake is the ordered chain of body segments, head first.
// Segments live in a ring buffer so pushing and popping at either end is O(1).
type Snake struct {
	buf   []types.Segment
	head  int
	count int
	Color types.Color
}

func NewSnake(start types.Segment, color types.Color) *Snake {
	s := &Snake{
		buf:   make([]types.Segment, minCapacity),
		Color: color,
	}
	s.buf[0] = start
	s.count = 1
	return s
}

func (s *Snake) Len() int {
	return s.count
}

// At returns the i-th segment counting from the head.
func (s *Snake) At(i int) types.Segment {
	return s.buf[(s.head+i)%len(s.buf)]
}

func (s *Snake) GetHead() types.Segment {
	return s.buf[s.head]
}

func (s *Snake) GetTail() types.Segment {
	return s.At(s.count - 1)
}

// SetHead overwrites the head segment in place.
func (s *Snake) SetHead(seg types.Segment) {
	s.buf[s.head] = seg
}

// PushFront makes seg the new head.
func (s *Snake) PushFront(seg types.Segment) {
	s.grow()
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = seg
	s.count++
}

// PushBack makes seg the new tail.
func (s *Snake) PushBack(seg types.Segment) {
	s.grow()
	s.buf[(s.head+s.count)%len(s.buf)] = seg
	s.count++
}

// PopBack removes and returns the tail. The last remaining segment cannot be popped.
func (s *Snake) PopBack() (types.Segment, error) {
	if s.count <= 1 {
		return types.Segment{}, ErrLastSegment
	}
	idx := (s.head + s.count - 1) % len(s.buf)
	seg := s.buf[idx]
	s.buf[idx] = types.Segment{}
	s.count--
	return seg, nil
}

// Segments copies the chain into a slice, head first.
func (s *Snake) Segments() []types.Segment {
	out := make([]types.Segment, s.count)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

func (s *Snake) grow() {
	if s.count < len(s.buf) {
		return
	}
	next := make([]types.Segment, len(s.buf)*2)
	for i := 0; i < s.count; i++ {
		next[i] = s.At(i)
	}
	s.buf = next
	s.head = 0
}
