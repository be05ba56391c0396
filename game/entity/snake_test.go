package entity

import (
	"errors"
	"testing"

	"snaker/game/types"
)

func seg(x, y float32) types.Segment {
	return types.Segment{Position: types.Vector{X: x, Y: y}, Size: 20}
}

func TestNewSnakeHasOneSegment(t *testing.T) {
	s := NewSnake(seg(400, 300), types.Color{B: 255})
	if s.Len() != 1 {
		t.Fatalf("Expected length 1, got %d", s.Len())
	}
	if s.GetHead() != s.GetTail() {
		t.Errorf("Expected head and tail to be the same segment")
	}
}

func TestPopBackRejectsLastSegment(t *testing.T) {
	s := NewSnake(seg(0, 0), types.Color{})
	if _, err := s.PopBack(); !errors.Is(err, ErrLastSegment) {
		t.Fatalf("Expected ErrLastSegment, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Expected length to stay 1, got %d", s.Len())
	}
}

func TestPushAndPopOrder(t *testing.T) {
	s := NewSnake(seg(0, 0), types.Color{})
	s.PushBack(seg(1, 0))
	s.PushFront(seg(-1, 0))

	want := []types.Segment{seg(-1, 0), seg(0, 0), seg(1, 0)}
	got := s.Segments()
	if len(got) != len(want) {
		t.Fatalf("Expected %d segments, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: got %v, want %v", i, got[i], want[i])
		}
	}

	tail, err := s.PopBack()
	if err != nil {
		t.Fatalf("PopBack: %v", err)
	}
	if tail != seg(1, 0) {
		t.Errorf("Expected popped tail %v, got %v", seg(1, 0), tail)
	}
	if s.GetTail() != seg(0, 0) {
		t.Errorf("Expected new tail %v, got %v", seg(0, 0), s.GetTail())
	}
}

func TestRingBufferGrowsAndWraps(t *testing.T) {
	s := NewSnake(seg(0, 0), types.Color{})
	const n = minCapacity*3 + 5
	for i := 1; i < n; i++ {
		s.PushFront(seg(float32(i), 0))
	}
	if s.Len() != n {
		t.Fatalf("Expected length %d, got %d", n, s.Len())
	}
	for i := 0; i < n; i++ {
		want := float32(n - 1 - i)
		if got := s.At(i).Position.X; got != want {
			t.Fatalf("segment %d: got x=%v, want %v", i, got, want)
		}
	}

	// Recycle the tail to the front many times; order must stay consistent.
	for i := 0; i < n*2; i++ {
		tail, err := s.PopBack()
		if err != nil {
			t.Fatalf("PopBack: %v", err)
		}
		tail.Position.X = float32(n + i)
		s.PushFront(tail)
	}
	if s.Len() != n {
		t.Errorf("Expected length %d after recycling, got %d", n, s.Len())
	}
	if got, want := s.GetHead().Position.X, float32(n*3-1); got != want {
		t.Errorf("head x: got %v, want %v", got, want)
	}
	if got, want := s.GetTail().Position.X, float32(n*2); got != want {
		t.Errorf("tail x: got %v, want %v", got, want)
	}
}

func TestSetHead(t *testing.T) {
	s := NewSnake(seg(0, 0), types.Color{})
	s.PushBack(seg(5, 5))
	s.SetHead(seg(9, 9))
	if s.GetHead() != seg(9, 9) {
		t.Errorf("Expected head %v, got %v", seg(9, 9), s.GetHead())
	}
	if s.Len() != 2 {
		t.Errorf("Expected length 2, got %d", s.Len())
	}
}
