// Package prompt asks players a question in chat and hands the next line
// they type to a callback.
package prompt

import (
	"context"
	"strings"
	"sync"

	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/plugin"
)

const ModuleName = "prompt"

// Answer receives the line a player typed. A returned error is shown to
// the player and the question stays open.
type Answer func(ctx context.Context, v gui.Viewer, line string) error

// Request is an open question.
type Request struct {
	question string
	answer   Answer
	onCancel []func()
}

func (r *Request) Question() string { return r.question }

// OnCancel adds a callback run when the question is aborted.
func (r *Request) OnCancel(cb func()) *Request {
	r.onCancel = append(r.onCancel, cb)
	return r
}

type Module struct {
	plugin *plugin.Plugin

	mu      sync.Mutex
	pending map[string]*Request
}

func New() *Module {
	return &Module{pending: make(map[string]*Request)}
}

func (m *Module) Name() string { return ModuleName }

func (m *Module) Init(p *plugin.Plugin) { m.plugin = p }

// From retrieves the prompt module from a plugin.
func From(p *plugin.Plugin) *Module {
	mod := p.Module(ModuleName)
	if mod == nil {
		return nil
	}
	return mod.(*Module)
}

// Ask sends question to v and waits for their next chat line. An open
// question for v is cancelled first.
func (m *Module) Ask(v gui.Viewer, question string, answer Answer) *Request {
	m.Cancel(v)

	r := &Request{question: question, answer: answer}
	m.mu.Lock()
	m.pending[v.Name()] = r
	m.mu.Unlock()

	m.plugin.Send(v, question)
	m.plugin.Send(v, "&7Type &e"+m.plugin.Config.CancelWord+" &7to abort.")
	return r
}

// Pending reports whether v has an open question.
func (m *Module) Pending(v gui.Viewer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[v.Name()]
	return ok
}

// Cancel aborts v's open question, reporting whether there was one.
func (m *Module) Cancel(v gui.Viewer) bool {
	m.mu.Lock()
	r, ok := m.pending[v.Name()]
	delete(m.pending, v.Name())
	m.mu.Unlock()
	if !ok {
		return false
	}
	for _, cb := range r.onCancel {
		cb()
	}
	return true
}

// HandleChat consumes the line of a player with an open question.
func (m *Module) HandleChat(ctx context.Context, v gui.Viewer, msg string) bool {
	m.mu.Lock()
	r, ok := m.pending[v.Name()]
	if ok {
		delete(m.pending, v.Name())
	}
	m.mu.Unlock()
	if !ok {
		return false
	}

	line := strings.TrimSpace(msg)
	if strings.EqualFold(line, m.plugin.Config.CancelWord) {
		for _, cb := range r.onCancel {
			cb()
		}
		m.plugin.Send(v, "&7Cancelled.")
		return true
	}

	if err := r.answer(ctx, v, line); err != nil {
		m.plugin.Send(v, "&c"+err.Error())
		m.mu.Lock()
		if _, asked := m.pending[v.Name()]; !asked {
			m.pending[v.Name()] = r
		}
		m.mu.Unlock()
	}
	return true
}

// Disable aborts every open question.
func (m *Module) Disable(ctx context.Context) error {
	m.mu.Lock()
	pending := m.pending
	m.pending = make(map[string]*Request)
	m.mu.Unlock()

	for _, r := range pending {
		for _, cb := range r.onCancel {
			cb()
		}
	}
	if len(pending) > 0 {
		m.plugin.Logger.Printf("prompt: aborted %d open question(s)", len(pending))
	}
	return nil
}
