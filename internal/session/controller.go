// Package session drives a typing round: it records key presses, recomputes
// progress, and decides when the round ends.
package session

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/monclitype/internal/engine"
)

// State is the controller's phase.
type State int

const (
	// Playing accepts key presses.
	Playing State = iota
	// Finished ignores further input.
	Finished
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Reason explains why a round finished.
type Reason int

const (
	// ReasonNone is used while the round is still playing.
	ReasonNone Reason = iota
	// UserExit means the user pressed Escape.
	UserExit
	// Overflow means more words were typed than the target contains.
	Overflow
	// Completed means the last target word was typed to its full length.
	Completed
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case UserExit:
		return "user-exit"
	case Overflow:
		return "overflow"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// PressKind distinguishes key presses from releases and repeats.
type PressKind int

const (
	// Press is a key going down.
	Press PressKind = iota
	// Repeat is an auto-repeat report without a fresh press.
	Repeat
	// Release is a key going up.
	Release
)

// KeyInput is one input reported by the terminal host.
type KeyInput struct {
	Symbol engine.KeySymbol
	Kind   PressKind
}

// Frame is the render payload handed back to the terminal host after a tick.
type Frame struct {
	Status engine.GameStatus
	State  State
	Reason Reason
}

// Finished reports whether the round is over.
func (f Frame) Finished() bool {
	return f.State == Finished
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used to timestamp key events.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithLogger sets the logger for tick and transition events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller owns the event log of one round.
type Controller struct {
	id     ulid.ULID
	target string
	log    engine.EventLog
	state  State
	reason Reason
	status engine.GameStatus
	now    func() time.Time
	logger zerolog.Logger
}

// New starts a round for target in the Playing state.
func New(target string, opts ...Option) *Controller {
	c := &Controller{
		target: target,
		state:  Playing,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	entropy := rand.New(rand.NewSource(c.now().UnixNano()))
	c.id = ulid.MustNew(ulid.Timestamp(c.now()), entropy)
	c.logger = c.logger.With().Str("session", c.id.String()).Logger()

	status, err := engine.CurrentStatus(nil, target)
	if err == nil {
		c.status = status
	}
	c.logger.Info().Int("target_words", len(strings.Split(target, " "))).Msg("round started")
	return c
}

// ID returns the round's identifier.
func (c *Controller) ID() string {
	return c.id.String()
}

// Target returns the phrase being typed.
func (c *Controller) Target() string {
	return c.target
}

// Events returns a copy of the recorded key events.
func (c *Controller) Events() []engine.KeyEvent {
	return c.log.Events()
}

// Frame returns the current render payload.
func (c *Controller) Frame() Frame {
	return Frame{Status: c.status, State: c.state, Reason: c.reason}
}

// Handle processes one input and returns the resulting frame.
func (c *Controller) Handle(in KeyInput) Frame {
	if c.state == Finished || in.Kind != Press {
		return c.Frame()
	}
	if in.Symbol.Kind == engine.KeyEscape {
		c.finish(UserExit)
		return c.Frame()
	}

	c.log.Append(engine.KeyEvent{Symbol: in.Symbol, Timestamp: c.now()})
	status, err := engine.CurrentStatus(c.log.Events(), c.target)
	if errors.Is(err, engine.ErrGameFinished) {
		c.finish(Overflow)
		return c.Frame()
	}
	c.status = status
	c.logger.Debug().
		Stringer("key", in.Symbol).
		Int("events", c.log.Len()).
		Int("completed_words", len(status.CompletedWords)).
		Msg("tick")

	if !status.HasRemaining() && status.CurrentWord.Exact() {
		c.finish(Completed)
	}
	return c.Frame()
}

func (c *Controller) finish(reason Reason) {
	c.state = Finished
	c.reason = reason
	c.logger.Info().
		Stringer("reason", reason).
		Int("events", c.log.Len()).
		Msg("round finished")
}
