package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termidle/internal/core"
	"github.com/vovakirdan/termidle/internal/games/termidle"
)

type recordingSender struct {
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.msgs = append(r.msgs, msg)
}

func TestBridgePollTimesOut(t *testing.T) {
	b := NewBridge()

	start := time.Now()
	ready, err := b.Poll(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if ready {
		t.Error("Poll reported a key with an empty queue")
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("Poll returned after %v, want it to wait for the timeout", elapsed)
	}
}

func TestBridgePollZeroTimeoutDoesNotBlock(t *testing.T) {
	b := NewBridge()

	ready, err := b.Poll(0)
	if err != nil || ready {
		t.Errorf("Poll(0) = %v, %v; want false, nil", ready, err)
	}
}

func TestBridgePollThenRead(t *testing.T) {
	b := NewBridge()
	b.PushKey(core.NewKeyPress("x"))
	b.PushKey(core.NewKeyPress("q"))

	for _, want := range []string{"x", "q"} {
		ready, err := b.Poll(time.Second)
		if err != nil || !ready {
			t.Fatalf("Poll = %v, %v; want true, nil", ready, err)
		}
		// A second poll without a read keeps the same key pending.
		if ready, _ := b.Poll(0); !ready {
			t.Fatal("pending key lost by repeated Poll")
		}
		ev, err := b.Read()
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if ev.Key != want || ev.Kind != core.KeyPress {
			t.Errorf("Read = %+v, want press of %q", ev, want)
		}
	}

	if _, err := b.Read(); !errors.Is(err, ErrNoKey) {
		t.Errorf("Read with nothing pending = %v, want ErrNoKey", err)
	}
}

func TestBridgePollWakesOnKey(t *testing.T) {
	b := NewBridge()
	go func() {
		time.Sleep(10 * time.Millisecond)
		b.PushKey(core.NewKeyPress("q"))
	}()

	ready, err := b.Poll(5 * time.Second)
	if err != nil || !ready {
		t.Fatalf("Poll = %v, %v; want true, nil", ready, err)
	}
}

func TestBridgePushKeyDropsWhenFull(t *testing.T) {
	b := NewBridge()
	for i := 0; i < keyBuffer; i++ {
		if !b.PushKey(core.NewKeyPress("a")) {
			t.Fatalf("PushKey %d dropped before the buffer was full", i)
		}
	}
	if b.PushKey(core.NewKeyPress("a")) {
		t.Error("PushKey accepted a key beyond the buffer")
	}
}

func TestBridgeClose(t *testing.T) {
	t.Run("clean exit", func(t *testing.T) {
		b := NewBridge()
		b.Close(nil)

		if _, err := b.Poll(time.Second); !errors.Is(err, ErrInputClosed) {
			t.Errorf("Poll after Close(nil) = %v, want ErrInputClosed", err)
		}
	})

	t.Run("program error", func(t *testing.T) {
		boom := errors.New("boom")
		b := NewBridge()
		b.Close(boom)
		b.Close(nil) // Ignored

		if _, err := b.Poll(0); !errors.Is(err, boom) {
			t.Errorf("Poll = %v, want program error", err)
		}
		if err := b.Render(termidle.Snapshot{}); !errors.Is(err, boom) {
			t.Errorf("Render = %v, want program error", err)
		}
	})

	t.Run("queued keys drain first", func(t *testing.T) {
		b := NewBridge()
		b.PushKey(core.NewKeyPress("q"))
		b.Close(nil)

		ready, err := b.Poll(0)
		if err != nil || !ready {
			t.Fatalf("Poll = %v, %v; want queued key", ready, err)
		}
	})

	t.Run("wakes a blocked poll", func(t *testing.T) {
		b := NewBridge()
		go func() {
			time.Sleep(10 * time.Millisecond)
			b.Close(nil)
		}()

		if _, err := b.Poll(5 * time.Second); !errors.Is(err, ErrInputClosed) {
			t.Errorf("Poll = %v, want ErrInputClosed", err)
		}
	})
}

func TestBridgeRender(t *testing.T) {
	b := NewBridge()
	game := termidle.New(1, 100, 10)

	if err := b.Render(game.Snapshot()); !errors.Is(err, ErrNotAttached) {
		t.Errorf("Render before Attach = %v, want ErrNotAttached", err)
	}

	rec := &recordingSender{}
	b.Attach(rec)
	if err := b.Render(game.Snapshot()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(rec.msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(rec.msgs))
	}
	frame, ok := rec.msgs[0].(FrameMsg)
	if !ok {
		t.Fatalf("sent %T, want FrameMsg", rec.msgs[0])
	}
	if frame.Level != 1 || frame.Health != 100 || len(frame.Logs) != 1 {
		t.Errorf("frame = %+v", frame)
	}
}

func TestBridgeStop(t *testing.T) {
	b := NewBridge()
	rec := &recordingSender{}
	b.Attach(rec)

	b.Stop()
	if len(rec.msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(rec.msgs))
	}
	if _, ok := rec.msgs[0].(stopMsg); !ok {
		t.Errorf("sent %T, want stopMsg", rec.msgs[0])
	}

	b.Close(nil)
	b.Stop()
	if len(rec.msgs) != 1 {
		t.Error("Stop sent a message after the program exited")
	}
}
