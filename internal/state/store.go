package state

import (
	"errors"
	"iter"

	"github.com/google/uuid"
)

var ErrNonFinite = errors.New("segment has non-finite coordinates")

// Source is the read-only view of a Store used for replay.
type Source interface {
	ForEach(visit func(Segment) bool)
	Len() int
}

// Store is the ordered, append-only, clearable list of segments.
// Append order is draw order. It is owned by a single goroutine.
type Store struct {
	segments []Segment
	strokes  map[string]int
}

var _ Source = (*Store)(nil)

func NewStore() *Store {
	return &Store{strokes: make(map[string]int)}
}

// NewStrokeID returns a fresh identifier for one drag.
func NewStrokeID() string {
	return uuid.NewString()
}

// Append adds seg on top of everything already stored.
func (s *Store) Append(seg Segment) error {
	if !seg.Finite() {
		return ErrNonFinite
	}
	s.segments = append(s.segments, seg)
	if seg.Stroke != "" {
		s.strokes[seg.Stroke]++
	}
	return nil
}

// Clear drops every segment at once.
func (s *Store) Clear() {
	s.segments = nil
	s.strokes = make(map[string]int)
}

// ForEach visits segments in insertion order until visit returns false.
func (s *Store) ForEach(visit func(Segment) bool) {
	for _, seg := range s.segments {
		if !visit(seg) {
			return
		}
	}
}

// All returns an iterator over the segments in insertion order.
func (s *Store) All() iter.Seq[Segment] {
	return s.ForEach
}

func (s *Store) Len() int {
	return len(s.segments)
}

// Strokes returns the number of distinct drags with at least one segment.
func (s *Store) Strokes() int {
	return len(s.strokes)
}

// StrokeLen returns how many segments the drag with the given ID produced.
func (s *Store) StrokeLen(id string) int {
	return s.strokes[id]
}
