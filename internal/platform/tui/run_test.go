package tui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termidle/internal/core"
	"github.com/vovakirdan/termidle/internal/engine"
	"github.com/vovakirdan/termidle/internal/games/termidle"
	"github.com/vovakirdan/termidle/internal/storage"
)

type fakeRecorder struct {
	runs []storage.RunRecord
	err  error
}

func (f *fakeRecorder) SaveRun(run storage.RunRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, run)
	return int64(len(f.runs)), nil
}

func TestRecordRun(t *testing.T) {
	game := termidle.New(1, 1, 1)
	game.Advance()

	started := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return started.Add(3 * time.Second) }

	rec := &fakeRecorder{}
	recordRun(rec, log.New(io.Discard), started, now)(game.Snapshot())

	if len(rec.runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(rec.runs))
	}
	want := storage.RunRecord{
		Status:   "game_over",
		Level:    1,
		Health:   0,
		Attack:   1,
		Ticks:    1,
		Duration: 3 * time.Second,
	}
	if got := rec.runs[0]; got != want {
		t.Errorf("saved %+v, want %+v", got, want)
	}
}

func TestRecordRunWithoutRecorder(t *testing.T) {
	// Must not panic.
	recordRun(nil, log.New(io.Discard), time.Now(), time.Now)(termidle.Snapshot{})
}

func TestRecordRunSaveErrorIsLogged(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	recordRun(rec, log.New(io.Discard), time.Now(), time.Now)(termidle.Snapshot{})

	if len(rec.runs) != 0 {
		t.Error("nothing should be stored on error")
	}
}

func TestRunRejectsInvalidIntervals(t *testing.T) {
	err := Run(termidle.New(1, 100, 10), Options{
		Runtime: core.RuntimeConfig{TickInterval: time.Second, RenderInterval: time.Second},
		Keys:    engine.DefaultKeyMap(),
	})
	if !errors.Is(err, engine.ErrInvalidInterval) {
		t.Errorf("Run = %v, want ErrInvalidInterval", err)
	}
}

func TestEnsureTerminalRejectsFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	if err := EnsureTerminal(f.Fd(), f.Fd()); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("EnsureTerminal = %v, want ErrNotTerminal", err)
	}
}

func TestTerminalSizeFallback(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	if w, h := TerminalSize(f.Fd()); w != 80 || h != 24 {
		t.Errorf("TerminalSize = %dx%d, want 80x24", w, h)
	}
}

func TestRunQuitsOnKeyPress(t *testing.T) {
	in, keys := io.Pipe()
	defer keys.Close()
	go func() {
		time.Sleep(500 * time.Millisecond)
		keys.Write([]byte("q"))
	}()

	game := termidle.New(1, 100, 10)
	rec := &fakeRecorder{}
	done := make(chan error, 1)
	go func() {
		done <- Run(game, Options{
			Runtime:  core.RuntimeConfig{TickInterval: 200 * time.Millisecond, RenderInterval: 20 * time.Millisecond},
			Keys:     engine.DefaultKeyMap(),
			Recorder: rec,
			Width:    80,
			Height:   24,
			ProgramOptions: []tea.ProgramOption{
				tea.WithInput(in),
				tea.WithOutput(io.Discard),
				tea.WithoutSignalHandler(),
			},
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after q")
	}

	if game.Status() != termidle.StatusPlaying {
		t.Errorf("Status = %v, want playing when quitting early", game.Status())
	}
	if game.Ticks() == 0 {
		t.Error("no tick ran before quitting")
	}
	if len(rec.runs) != 0 {
		t.Errorf("unfinished session recorded %d runs", len(rec.runs))
	}
}
