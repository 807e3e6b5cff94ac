// Package engine runs the real-time loop that drives the simulation.
//
// Two cadences are kept independently: a slow simulation tick that calls
// Advance and a fast render interval that hands snapshots to the renderer.
// Between them the loop waits for input with a timeout bounded by whichever
// deadline is nearer, so it never busy-waits and never blocks indefinitely.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termidle/internal/core"
	"github.com/vovakirdan/termidle/internal/games/termidle"
)

// ErrInvalidInterval is returned by NewLoop for unusable cadences.
var ErrInvalidInterval = errors.New("engine: invalid interval")

// Simulation is the state machine advanced once per tick.
type Simulation interface {
	Advance()
	Status() termidle.Status
	Snapshot() termidle.Snapshot
}

// Renderer consumes a read-only snapshot once per frame.
type Renderer interface {
	Render(snap termidle.Snapshot) error
}

// InputSource is a poll-then-read pair. Read is only called after Poll
// reported that an event is ready.
type InputSource interface {
	Poll(timeout time.Duration) (bool, error)
	Read() (core.KeyEvent, error)
}

// Config holds loop settings. Zero-valued optional fields get defaults.
type Config struct {
	Runtime    core.RuntimeConfig
	Dispatcher *Dispatcher // Default key bindings if nil
	Clock      Clock       // WallClock if nil
	Logger     *log.Logger // Discards if nil

	// OnFinish is called once, right after the tick on which the
	// simulation first reaches a terminal status.
	OnFinish func(snap termidle.Snapshot)
}

// Loop owns the timers and the stop flag for one session.
type Loop struct {
	sim        Simulation
	renderer   Renderer
	input      InputSource
	dispatcher *Dispatcher
	clock      Clock
	logger     *log.Logger
	onFinish   func(snap termidle.Snapshot)

	tickInterval   time.Duration
	renderInterval time.Duration
	lastTick       time.Time
	lastRender     time.Time

	stop     bool
	finished bool
	ticks    uint64
	frames   uint64
}

// NewLoop creates a loop. The render interval must be positive and strictly
// shorter than the tick interval.
func NewLoop(sim Simulation, renderer Renderer, input InputSource, cfg Config) (*Loop, error) {
	rt := cfg.Runtime
	if rt.TickInterval <= 0 || rt.RenderInterval <= 0 {
		return nil, fmt.Errorf("%w: tick=%v render=%v", ErrInvalidInterval, rt.TickInterval, rt.RenderInterval)
	}
	if rt.RenderInterval >= rt.TickInterval {
		return nil, fmt.Errorf("%w: render interval %v must be shorter than tick interval %v",
			ErrInvalidInterval, rt.RenderInterval, rt.TickInterval)
	}

	l := &Loop{
		sim:            sim,
		renderer:       renderer,
		input:          input,
		dispatcher:     cfg.Dispatcher,
		clock:          cfg.Clock,
		logger:         cfg.Logger,
		onFinish:       cfg.OnFinish,
		tickInterval:   rt.TickInterval,
		renderInterval: rt.RenderInterval,
	}
	if l.dispatcher == nil {
		l.dispatcher = NewDispatcher(DefaultKeyMap())
	}
	if l.clock == nil {
		l.clock = WallClock{}
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l, nil
}

// Run iterates until a quit command sets the stop flag or an I/O error occurs.
// The first frame is drawn immediately; the first tick happens one tick
// interval after Run starts.
func (l *Loop) Run() error {
	now := l.clock.Now()
	l.lastTick = now
	l.lastRender = now.Add(-l.renderInterval)

	l.logger.Info("loop started", "tick", l.tickInterval, "render", l.renderInterval)
	for !l.stop {
		if err := l.step(); err != nil {
			l.logger.Error("loop stopped", "error", err)
			return err
		}
	}
	l.logger.Info("loop stopped", "ticks", l.ticks, "frames", l.frames)
	return nil
}

// step performs one iteration: render if due, wait for input up to the
// nearer deadline, dispatch, then tick if due.
func (l *Loop) step() error {
	if l.clock.Now().Sub(l.lastRender) >= l.renderInterval {
		if err := l.render(); err != nil {
			return err
		}
	}

	ready, err := l.input.Poll(l.PollTimeout())
	if err != nil {
		return fmt.Errorf("engine: poll input: %w", err)
	}
	if ready {
		ev, err := l.input.Read()
		if err != nil {
			return fmt.Errorf("engine: read input: %w", err)
		}
		l.apply(l.dispatcher.Dispatch(ev))
	}

	if l.clock.Now().Sub(l.lastTick) >= l.tickInterval {
		l.tick()
	}
	return nil
}

// PollTimeout returns how long the next poll may wait: the time left until
// the next tick or the next frame, whichever is sooner, never negative.
func (l *Loop) PollTimeout() time.Duration {
	now := l.clock.Now()
	return core.MinDuration(
		core.Remaining(l.tickInterval, now.Sub(l.lastTick)),
		core.Remaining(l.renderInterval, now.Sub(l.lastRender)),
	)
}

func (l *Loop) render() error {
	if err := l.renderer.Render(l.sim.Snapshot()); err != nil {
		return fmt.Errorf("engine: render: %w", err)
	}
	l.frames++
	l.lastRender = l.clock.Now()
	return nil
}

func (l *Loop) tick() {
	l.sim.Advance()
	l.ticks++
	l.lastTick = l.clock.Now()

	status := l.sim.Status()
	l.logger.Debug("tick", "n", l.ticks, "status", status)
	if l.finished || !status.Terminal() {
		return
	}

	l.finished = true
	snap := l.sim.Snapshot()
	l.logger.Info("session finished", "status", snap.Status, "level", snap.Level, "health", snap.Health)
	if l.onFinish != nil {
		l.onFinish(snap)
	}
}

// apply executes a dispatched command.
func (l *Loop) apply(action core.Action) {
	switch action {
	case core.ActionQuit:
		l.logger.Info("quit requested")
		l.Stop()
	}
}

// Stop sets the stop flag. The loop exits at the top of its next iteration.
func (l *Loop) Stop() {
	l.stop = true
}

// Ticks returns how many ticks the loop has run.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Frames returns how many frames the loop has rendered.
func (l *Loop) Frames() uint64 {
	return l.frames
}
