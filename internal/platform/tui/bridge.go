package tui

import (
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termidle/internal/core"
	"github.com/vovakirdan/termidle/internal/games/termidle"
)

// keyBuffer is how many unread key presses are kept before new ones are dropped.
const keyBuffer = 64

var (
	// ErrInputClosed is returned once the terminal program has exited.
	ErrInputClosed = errors.New("tui: input closed")

	// ErrNoKey is returned by Read when Poll did not report a ready key.
	ErrNoKey = errors.New("tui: no key ready")

	// ErrNotAttached is returned by Render before a program is attached.
	ErrNotAttached = errors.New("tui: no program attached")
)

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// Bridge connects the engine loop to a Bubble Tea program. It is the loop's
// Renderer (snapshots go to the program as FrameMsg) and its InputSource
// (key presses seen by the model are queued for Poll/Read).
//
// Poll and Read must be called from a single goroutine; PushKey and Close
// may be called from the program's goroutines.
type Bridge struct {
	keys    chan core.KeyEvent
	pending *core.KeyEvent

	mu      sync.Mutex
	program sender

	done    chan struct{}
	once    sync.Once
	exitErr error
}

// NewBridge creates an unattached bridge.
func NewBridge() *Bridge {
	return &Bridge{
		keys: make(chan core.KeyEvent, keyBuffer),
		done: make(chan struct{}),
	}
}

// Attach sets the program that receives frames.
func (b *Bridge) Attach(p sender) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

// PushKey queues a key press without blocking.
// Returns false if the queue is full and the key was dropped.
func (b *Bridge) PushKey(ev core.KeyEvent) bool {
	select {
	case b.keys <- ev:
		return true
	default:
		return false
	}
}

// Close marks the program as exited. err is the program's exit error, if any.
// Only the first call has an effect.
func (b *Bridge) Close(err error) {
	b.once.Do(func() {
		b.exitErr = err
		close(b.done)
	})
}

// Done is closed once the program has exited.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

// closedErr reports why the bridge is closed: the program's error, or
// ErrInputClosed for a clean exit. Only valid after done is closed.
func (b *Bridge) closedErr() error {
	if b.exitErr != nil {
		return b.exitErr
	}
	return ErrInputClosed
}

// Poll waits up to timeout for a key press. It returns an error once the
// program has exited and no queued key is left.
func (b *Bridge) Poll(timeout time.Duration) (bool, error) {
	if b.pending != nil {
		return true, nil
	}

	select {
	case ev := <-b.keys:
		b.pending = &ev
		return true, nil
	default:
	}

	select {
	case <-b.done:
		return false, b.closedErr()
	default:
	}

	if timeout <= 0 {
		return false, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-b.keys:
		b.pending = &ev
		return true, nil
	case <-timer.C:
		return false, nil
	case <-b.done:
		return false, b.closedErr()
	}
}

// Read returns the key press found by the last successful Poll.
func (b *Bridge) Read() (core.KeyEvent, error) {
	if b.pending == nil {
		return core.KeyEvent{}, ErrNoKey
	}
	ev := *b.pending
	b.pending = nil
	return ev, nil
}

// Render hands a snapshot to the program. The snapshot is already a copy, so
// the model never shares memory with the game.
func (b *Bridge) Render(snap termidle.Snapshot) error {
	select {
	case <-b.done:
		return b.closedErr()
	default:
	}

	b.mu.Lock()
	p := b.program
	b.mu.Unlock()
	if p == nil {
		return ErrNotAttached
	}

	p.Send(FrameMsg(snap))
	return nil
}

// Stop asks the program to exit. It is a no-op if the program already has.
func (b *Bridge) Stop() {
	select {
	case <-b.done:
		return
	default:
	}

	b.mu.Lock()
	p := b.program
	b.mu.Unlock()
	if p != nil {
		p.Send(stopMsg{})
	}
}
