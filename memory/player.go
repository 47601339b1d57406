package memory

import (
	"fmt"
	"slices"
	"sync"
)

// Player is a viewer that records the messages sent to it.
type Player struct {
	name string

	mu       sync.Mutex
	messages []string
	onMsg    func(msg string)
}

func NewPlayer(name string) *Player {
	return &Player{name: name}
}

func (p *Player) Name() string { return p.name }

func (p *Player) SendMessage(msg string) {
	p.mu.Lock()
	p.messages = append(p.messages, msg)
	fn := p.onMsg
	p.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

// OnMessage registers a callback run for every message after it is recorded.
func (p *Player) OnMessage(fn func(msg string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onMsg = fn
}

// Messages returns every message received so far.
func (p *Player) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.messages)
}

// LastMessage returns the most recent message, or "".
func (p *Player) LastMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[len(p.messages)-1]
}

// Entity is a mob with boolean AI fields.
type Entity struct {
	Type string

	mu     sync.Mutex
	fields map[string]bool
}

// NewEntity creates an entity exposing the named fields, all false.
func NewEntity(typ string, fields ...string) *Entity {
	e := &Entity{Type: typ, fields: make(map[string]bool, len(fields))}
	for _, f := range fields {
		e.fields[f] = false
	}
	return e
}

func (e *Entity) SetBool(field string, v bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.fields[field]; !ok {
		return fmt.Errorf("memory: %s has no field %q", e.Type, field)
	}
	e.fields[field] = v
	return nil
}

func (e *Entity) Bool(field string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.fields[field]
	if !ok {
		return false, fmt.Errorf("memory: %s has no field %q", e.Type, field)
	}
	return v, nil
}
