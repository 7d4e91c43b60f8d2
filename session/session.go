// Package session drives endpoint selection and step-through of a route
// search, independently of how the selections are made (mouse clicks,
// command-line arguments, key presses).
//
// A Session cycles through four modes:
//
//	ModeAwaitStart → ModeAwaitGoal → ModeSearching → ModeDone → ModeAwaitStart
//
// Select records endpoints; Advance and Finish step the search; the first
// Select after a finished run only clears it. The session only talks to the
// engine through the Searcher interface.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/katalvlaran/terrainpath/astar"
	"github.com/katalvlaran/terrainpath/terrain"
)

// Sentinel errors returned by Session methods.
var (
	// ErrNilSearcher indicates New was called without an engine.
	ErrNilSearcher = errors.New("session: searcher is nil")

	// ErrNotSearching indicates Advance or Finish outside ModeSearching.
	ErrNotSearching = errors.New("session: no search in progress")

	// ErrNotDone indicates Result before the run finished.
	ErrNotDone = errors.New("session: run has not finished")

	// ErrBadStepCount indicates a non-positive Advance count.
	ErrBadStepCount = errors.New("session: step count must be positive")
)

// Mode is the selection/search phase of a Session.
type Mode int

const (
	// ModeAwaitStart waits for the start cell.
	ModeAwaitStart Mode = iota
	// ModeAwaitGoal waits for the goal cell.
	ModeAwaitGoal
	// ModeSearching steps the engine on each Advance (or Select).
	ModeSearching
	// ModeDone holds the result until the next Select clears it.
	ModeDone
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeAwaitStart:
		return "await-start"
	case ModeAwaitGoal:
		return "await-goal"
	case ModeSearching:
		return "searching"
	case ModeDone:
		return "done"
	}
	return "unknown"
}

// Searcher is the engine surface a Session needs. *astar.Engine implements it.
type Searcher interface {
	Begin(start, goal terrain.Cell) error
	Step() astar.State
	Result() (astar.Result, error)
}

// Config holds the collaborators of a Session.
type Config struct {
	Searcher Searcher
	Logger   *log.Logger // nil discards
}

// Session is a single-user endpoint-selection state machine.
// It is not safe for concurrent use.
type Session struct {
	searcher Searcher
	logger   *log.Logger

	mode        Mode
	start, goal terrain.Cell
	runID       uuid.UUID
	steps       int
	result      astar.Result
}

// New returns a Session in ModeAwaitStart.
func New(c *Config) (*Session, error) {
	if c == nil || c.Searcher == nil {
		return nil, ErrNilSearcher
	}
	logger := c.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{searcher: c.Searcher, logger: logger}, nil
}

// Select feeds a chosen cell to the session:
//   - ModeAwaitStart: c becomes the start.
//   - ModeAwaitGoal: c becomes the goal and the search begins. A rejected
//     Begin returns the error and falls back to ModeAwaitStart.
//   - ModeSearching: advances the search by one step.
//   - ModeDone: discards the previous run; c is not recorded and the
//     next Select picks the start.
func (s *Session) Select(c terrain.Cell) (Mode, error) {
	switch s.mode {
	case ModeAwaitStart:
		s.start = c
		s.mode = ModeAwaitGoal
		s.logger.Printf("[SESSION] [INFO] start selected at %v", c)

	case ModeAwaitGoal:
		s.goal = c
		if err := s.searcher.Begin(s.start, s.goal); err != nil {
			s.logger.Printf("[SESSION] [ERROR] begin %v → %v: %v", s.start, s.goal, err)
			s.Reset()
			return s.mode, fmt.Errorf("session: begin: %w", err)
		}
		s.runID = uuid.New()
		s.steps = 0
		s.result = astar.Result{}
		s.mode = ModeSearching
		s.logger.Printf("[SESSION] [INFO] run %s searching %v → %v", s.runID, s.start, s.goal)

	case ModeSearching:
		if _, err := s.Advance(1); err != nil {
			return s.mode, err
		}

	case ModeDone:
		s.logger.Printf("[SESSION] [INFO] run %s cleared", s.runID)
		s.Reset()
	}

	return s.mode, nil
}

// Advance steps the search up to n times, stopping early on a terminal state.
// Interactive drivers call Advance(1) per trigger.
func (s *Session) Advance(n int) (astar.State, error) {
	if s.mode != ModeSearching {
		return astar.StateInit, ErrNotSearching
	}
	if n <= 0 {
		return astar.StateRunning, fmt.Errorf("%w: %d", ErrBadStepCount, n)
	}

	st := astar.StateRunning
	for i := 0; i < n && st == astar.StateRunning; i++ {
		st = s.searcher.Step()
		s.steps++
	}
	if !st.Terminal() {
		return st, nil
	}

	return st, s.complete(st)
}

// Finish runs the search to a terminal state and returns its result.
func (s *Session) Finish() (astar.Result, error) {
	if s.mode != ModeSearching {
		return astar.Result{}, ErrNotSearching
	}
	for {
		st := s.searcher.Step()
		s.steps++
		if st.Terminal() {
			if err := s.complete(st); err != nil {
				return astar.Result{}, err
			}
			return s.result, nil
		}
	}
}

// complete stores the engine result and enters ModeDone.
func (s *Session) complete(st astar.State) error {
	res, err := s.searcher.Result()
	if err != nil {
		s.logger.Printf("[SESSION] [ERROR] run %s result: %v", s.runID, err)
		s.Reset()
		return fmt.Errorf("session: result: %w", err)
	}
	s.result = res
	s.mode = ModeDone
	switch {
	case res.Found:
		s.logger.Printf("[SESSION] [INFO] run %s %v in %d steps: %d cells, cost %.4f",
			s.runID, st, s.steps, len(res.Path), res.Cost)
	case res.Capped:
		s.logger.Printf("[SESSION] [INFO] run %s stopped at the expansion cap after %d steps", s.runID, s.steps)
	default:
		s.logger.Printf("[SESSION] [INFO] run %s %v in %d steps: no path", s.runID, st, s.steps)
	}
	return nil
}

// Result returns the outcome of the last finished run.
func (s *Session) Result() (astar.Result, error) {
	if s.mode != ModeDone {
		return astar.Result{}, ErrNotDone
	}
	return s.result, nil
}

// Reset abandons any run in progress and returns to ModeAwaitStart.
func (s *Session) Reset() {
	s.mode = ModeAwaitStart
	s.start, s.goal = terrain.Cell{}, terrain.Cell{}
	s.runID = uuid.Nil
	s.steps = 0
	s.result = astar.Result{}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Start returns the selected start cell.
func (s *Session) Start() terrain.Cell { return s.start }

// Goal returns the selected goal cell.
func (s *Session) Goal() terrain.Cell { return s.goal }

// RunID identifies the current or last run; uuid.Nil before the first Begin.
func (s *Session) RunID() uuid.UUID { return s.runID }

// Steps returns the number of Step calls made in the current run.
func (s *Session) Steps() int { return s.steps }
