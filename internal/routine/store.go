// Package routine tracks the position within a linear list of exercises.
package routine

import "github.com/akyairhashvil/morning-stretch/internal/models"

// Store is the playlist of a routine: which exercise is current and whether
// the routine is paused.
type Store struct {
	exercises []models.Exercise
	index     int
	paused    bool
}

func NewStore(exercises []models.Exercise) *Store {
	return &Store{exercises: exercises}
}

// Current returns the active exercise, or false for an empty routine.
func (s *Store) Current() (models.Exercise, bool) {
	if s.index < 0 || s.index >= len(s.exercises) {
		return models.Exercise{}, false
	}
	return s.exercises[s.index], true
}

func (s *Store) HasNext() bool {
	return s.index < len(s.exercises)-1
}

// Next moves to the following exercise. It is a no-op on the last one.
func (s *Store) Next() bool {
	if !s.HasNext() {
		return false
	}
	s.index++
	return true
}

func (s *Store) Reset() {
	s.index = 0
	s.paused = false
}

func (s *Store) Pause()       { s.paused = true }
func (s *Store) Resume()      { s.paused = false }
func (s *Store) Paused() bool { return s.paused }
func (s *Store) Index() int   { return s.index }
func (s *Store) Len() int     { return len(s.exercises) }

func (s *Store) Exercises() []models.Exercise {
	return s.exercises
}

// Progress is the share of exercises before the current one.
func (s *Store) Progress() float64 {
	if len(s.exercises) == 0 {
		return 0
	}
	return float64(s.index) / float64(len(s.exercises))
}
