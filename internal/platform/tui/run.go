package tui

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/termidle/internal/core"
	"github.com/vovakirdan/termidle/internal/engine"
	"github.com/vovakirdan/termidle/internal/games/termidle"
	"github.com/vovakirdan/termidle/internal/storage"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("tui: not a terminal")

// EnsureTerminal fails with ErrNotTerminal unless both descriptors are terminals.
func EnsureTerminal(in, out uintptr) error {
	if !term.IsTerminal(int(in)) || !term.IsTerminal(int(out)) {
		return ErrNotTerminal
	}
	return nil
}

// TerminalSize returns the size of the terminal on fd, or 80x24 if unknown.
func TerminalSize(fd uintptr) (width, height int) {
	w, h, err := term.GetSize(int(fd))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// RunRecorder stores the outcome of a finished session.
type RunRecorder interface {
	SaveRun(run storage.RunRecord) (int64, error)
}

// Options configures a session.
type Options struct {
	Runtime  core.RuntimeConfig
	Keys     engine.KeyMap
	Logger   *log.Logger // Discards if nil
	Recorder RunRecorder // Nothing is recorded if nil
	Width    int
	Height   int

	// ProgramOptions are appended after tea.WithAltScreen.
	ProgramOptions []tea.ProgramOption
}

// Run plays one session: the engine loop runs on the calling goroutine and
// a Bubble Tea program draws its frames. It returns when the player quits or
// the terminal program exits.
func Run(game *termidle.Game, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = engine.DefaultKeyMap()
	}

	bridge := NewBridge()
	loop, err := engine.NewLoop(game, bridge, bridge, engine.Config{
		Runtime:    opts.Runtime,
		Dispatcher: engine.NewDispatcher(keys),
		Logger:     logger,
		OnFinish:   recordRun(opts.Recorder, logger, time.Now(), time.Now),
	})
	if err != nil {
		return err
	}

	model := NewModel(bridge, keys, opts.Width, opts.Height)
	programOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, opts.ProgramOptions...)
	p := tea.NewProgram(model, programOpts...)
	bridge.Attach(p)

	logger.Info("program started", "width", opts.Width, "height", opts.Height)
	programDone := make(chan error, 1)
	go func() {
		_, err := p.Run()
		bridge.Close(err)
		programDone <- err
	}()

	loopErr := loop.Run()
	bridge.Stop()
	programErr := <-programDone
	logger.Info("program stopped", "error", programErr)

	switch {
	case errors.Is(loopErr, ErrInputClosed):
		// The program went away on its own; its error (if any) is the cause.
		return programErr
	case loopErr != nil:
		return loopErr
	default:
		return programErr
	}
}

// recordRun returns an OnFinish hook that saves the outcome to rec.
// Save failures are logged and never end the session.
func recordRun(rec RunRecorder, logger *log.Logger, started time.Time, now func() time.Time) func(termidle.Snapshot) {
	return func(snap termidle.Snapshot) {
		if rec == nil {
			return
		}

		run := storage.RunRecord{
			Status:   snap.Status.String(),
			Level:    snap.Level,
			Health:   snap.Health,
			Attack:   snap.Attack,
			Ticks:    snap.Ticks,
			Duration: now().Sub(started),
		}
		id, err := rec.SaveRun(run)
		if err != nil {
			logger.Warn("failed to save run", "error", err)
			return
		}
		logger.Info("run saved", "id", id, "status", run.Status, "level", run.Level)
	}
}
