package prompt

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/go-mclib/guikit/memory"
	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/plugin"
)

func setup(t *testing.T) (*plugin.Plugin, *Module) {
	t.Helper()
	p := plugin.New("prompt-test", memory.NewHost("1.21.4"), plugin.DefaultConfig())
	p.SetLogger(log.New(io.Discard, "", 0))
	m := New()
	p.Register(m)
	return p, m
}

func TestAskAndAnswer(t *testing.T) {
	p, m := setup(t)
	ctx := context.Background()
	v := memory.NewPlayer("steve")

	var got string
	m.Ask(v, "Name?", func(_ context.Context, _ gui.Viewer, line string) error {
		got = line
		return nil
	})
	if len(v.Messages()) != 2 {
		t.Errorf("messages = %v, want question and hint", v.Messages())
	}

	if p.HandleChat(ctx, memory.NewPlayer("alex"), "hello") {
		t.Error("line from a player without a prompt was consumed")
	}
	if !p.HandleChat(ctx, v, " Bob ") {
		t.Fatal("answer not consumed")
	}
	if got != "Bob" {
		t.Errorf("answer = %q, want Bob", got)
	}
	if m.Pending(v) {
		t.Error("prompt still pending after answer")
	}
}

func TestAnswerErrorKeepsPrompt(t *testing.T) {
	p, m := setup(t)
	ctx := context.Background()
	v := memory.NewPlayer("steve")

	tries := 0
	m.Ask(v, "Number?", func(context.Context, gui.Viewer, string) error {
		tries++
		if tries == 1 {
			return errors.New("not a number")
		}
		return nil
	})

	p.HandleChat(ctx, v, "abc")
	if !m.Pending(v) {
		t.Fatal("prompt closed after a rejected answer")
	}
	p.HandleChat(ctx, v, "12")
	if m.Pending(v) || tries != 2 {
		t.Errorf("pending = %v, tries = %d", m.Pending(v), tries)
	}
}

func TestCancel(t *testing.T) {
	p, m := setup(t)
	ctx := context.Background()
	v := memory.NewPlayer("steve")

	cancelled := 0
	answered := false
	ask := func() {
		m.Ask(v, "Name?", func(context.Context, gui.Viewer, string) error {
			answered = true
			return nil
		}).OnCancel(func() { cancelled++ })
	}

	ask()
	p.HandleChat(ctx, v, "Cancel")
	if answered || cancelled != 1 || m.Pending(v) {
		t.Errorf("typed cancel: answered = %v, cancelled = %d", answered, cancelled)
	}

	ask()
	if !m.Cancel(v) || cancelled != 2 {
		t.Error("Cancel() did not abort the prompt")
	}
	if m.Cancel(v) {
		t.Error("Cancel() with nothing pending = true")
	}

	ask()
	ask()
	if cancelled != 3 {
		t.Errorf("re-asking did not cancel the first prompt, cancelled = %d", cancelled)
	}
	_ = m.Disable(ctx)
	if cancelled != 4 || m.Pending(v) {
		t.Errorf("Disable left prompts open, cancelled = %d", cancelled)
	}
}

func TestFrom(t *testing.T) {
	p, m := setup(t)
	if From(p) != m {
		t.Error("From() did not return the registered module")
	}
}
