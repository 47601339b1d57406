// Package plugin wires a host to the GUI router and hosts modules and
// chat commands around it.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/go-mclib/guikit/pkg/compat"
	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/text"
)

// ErrUnknownCommand is returned by HandleCommand for unregistered names.
var ErrUnknownCommand = errors.New("unknown command")

// Host is the server binding a plugin runs on.
type Host interface {
	gui.Host
	compat.Probe
}

type Plugin struct {
	Name   string
	Logger *log.Logger
	Config Config

	Host   Host
	Router *gui.Router

	// Capabilities is filled by Enable.
	Capabilities compat.Capabilities

	// modules
	modules       []Module
	modulesByName map[string]Module

	mu       sync.RWMutex
	commands map[string]Command
	enabled  bool
}

// New creates a plugin on host. Register modules before calling Enable.
func New(name string, host Host, cfg Config) *Plugin {
	logger := log.New(os.Stdout, "", log.LstdFlags)
	return &Plugin{
		Name:          name,
		Logger:        logger,
		Config:        cfg,
		Host:          host,
		Router:        gui.NewRouter(host, logger),
		modulesByName: make(map[string]Module),
		commands:      make(map[string]Command),
	}
}

// SetLogger replaces the logger of the plugin and its router.
func (p *Plugin) SetLogger(l *log.Logger) {
	p.Logger = l
	p.Router.SetLogger(l)
}

// Register adds a module to the plugin. Panics on duplicate name.
func (p *Plugin) Register(m Module) {
	if _, exists := p.modulesByName[m.Name()]; exists {
		panic("module already registered: " + m.Name())
	}
	p.modules = append(p.modules, m)
	p.modulesByName[m.Name()] = m
	m.Init(p)
}

// Module returns a registered module by name, or nil.
func (p *Plugin) Module(name string) Module {
	return p.modulesByName[name]
}

// RegisterCommand binds a chat command. Panics on duplicate name.
func (p *Plugin) RegisterCommand(name string, cmd Command) {
	p.mu.Lock()
	defer p.mu.Unlock()
	name = strings.ToLower(name)
	if _, exists := p.commands[name]; exists {
		panic("command already registered: " + name)
	}
	p.commands[name] = cmd
}

// Commands returns the registered command names, sorted.
func (p *Plugin) Commands() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.commands))
	for name := range p.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HandleCommand runs a command line such as "/shop open 2".
func (p *Plugin) HandleCommand(ctx context.Context, v gui.Viewer, line string) error {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(fields) == 0 {
		return ErrUnknownCommand
	}
	name := strings.ToLower(fields[0])

	p.mu.RLock()
	cmd, ok := p.commands[name]
	p.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if p.Config.Verbose {
		p.Logger.Printf("plugin: %s ran /%s", v.Name(), strings.Join(fields, " "))
	}
	return cmd(ctx, v, fields[1:])
}

// Enable probes the host and enables every module in registration order.
func (p *Plugin) Enable(ctx context.Context) error {
	p.Capabilities = compat.Detect(p.Host, p.Logger)
	p.Logger.Printf("plugin: %s enabling on %s", p.Name, p.Capabilities.Version)

	for _, m := range p.modules {
		if e, ok := m.(Enabler); ok {
			if err := e.Enable(ctx); err != nil {
				return fmt.Errorf("enable %s: %w", m.Name(), err)
			}
		}
	}

	p.mu.Lock()
	p.enabled = true
	p.mu.Unlock()
	return nil
}

// Disable closes every open window, saving persistent ones, then
// disables modules in reverse order. All errors are returned together.
func (p *Plugin) Disable(ctx context.Context) error {
	var errs []error
	if err := p.Router.CloseAll(ctx); err != nil {
		errs = append(errs, err)
	}
	for _, m := range slices.Backward(p.modules) {
		if d, ok := m.(Disabler); ok {
			if err := d.Disable(ctx); err != nil {
				errs = append(errs, fmt.Errorf("disable %s: %w", m.Name(), err))
			}
		}
	}

	p.mu.Lock()
	p.enabled = false
	p.mu.Unlock()
	p.Logger.Printf("plugin: %s disabled", p.Name)
	return errors.Join(errs...)
}

func (p *Plugin) Enabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.enabled
}

// HandleEvent forwards a host event to the router.
func (p *Plugin) HandleEvent(ctx context.Context, e gui.Event) error {
	return p.Router.Dispatch(ctx, e)
}

// HandleChat offers a chat line to modules in order. Lines starting with
// "/" run as commands. It reports whether the line was consumed.
func (p *Plugin) HandleChat(ctx context.Context, v gui.Viewer, msg string) bool {
	for _, m := range p.modules {
		if h, ok := m.(ChatHandler); ok && h.HandleChat(ctx, v, msg) {
			return true
		}
	}
	if strings.HasPrefix(msg, "/") {
		if err := p.HandleCommand(ctx, v, msg); err != nil {
			p.Send(v, "&c"+err.Error())
		}
		return true
	}
	return false
}

// Send messages v with the configured prefix. & colour codes are
// translated.
func (p *Plugin) Send(v gui.Viewer, msg string) {
	v.SendMessage(text.ParseLegacy(p.Config.Prefix + msg).Legacy())
}
