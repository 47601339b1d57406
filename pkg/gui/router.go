package gui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

// Router owns the handle-to-window registry and runs the bound actions
// of every event the host delivers.
type Router struct {
	host   Host
	logger *log.Logger

	mu      sync.RWMutex
	windows map[Handle]window
}

// NewRouter creates a router rendering into host. A nil logger discards.
func NewRouter(host Host, logger *log.Logger) *Router {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Router{
		host:    host,
		logger:  logger,
		windows: make(map[Handle]window),
	}
}

func (r *Router) Host() Host { return r.host }

// SetLogger replaces the logger. A nil logger discards.
func (r *Router) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
}

func (r *Router) register(w window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[w.base().handle] = w
}

func (r *Router) unregister(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, h)
}

// Owner returns the window registered for a host inventory.
func (r *Router) Owner(h Handle) (Window, bool) {
	w, ok := r.owner(h)
	if !ok {
		return nil, false
	}
	return w, true
}

func (r *Router) owner(h Handle) (window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[h]
	return w, ok
}

// Len returns the number of registered windows.
func (r *Router) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.windows)
}

// Dispatch routes a host event to the window owning its inventory. Events
// for unknown inventories are ignored. The first action error stops the
// chain and is returned as is.
func (r *Router) Dispatch(ctx context.Context, e Event) error {
	w, ok := r.owner(e.Inventory())
	if !ok {
		return nil
	}

	switch e := e.(type) {
	case *ClickEvent:
		return r.click(w, e)
	case *DragEvent:
		return r.drag(w, e)
	case *OpenEvent:
		return r.open(w, e)
	case *CloseEvent:
		return r.close(ctx, w, e)
	default:
		return fmt.Errorf("gui: unknown event kind %s", e.Kind())
	}
}

func (r *Router) click(w window, e *ClickEvent) error {
	g := w.base()
	if e.Region == RegionOutside {
		return run(g.actions.click[ClickOutside], e)
	}

	top := e.Region == RegionTop
	if g.interactionsDisabled && (top || e.Click.IsShift() || e.Click == ClickDoubleClick) {
		e.Cancel()
	}

	var chain []ClickAction
	if top {
		chain = append(chain, g.actions.click[ClickDefaultTop])
	} else {
		chain = append(chain, g.actions.click[ClickPlayerInventory])
	}
	chain = append(chain, g.actions.click[ClickDefault])
	if top {
		chain = append(chain, g.actions.slot[e.Slot])
	}
	if item := w.clickedItem(e.Slot); item != nil && IsItemEqual(e.Current, item) {
		chain = append(chain, item.action)
	}

	for _, a := range chain {
		if err := run(a, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) drag(w window, e *DragEvent) error {
	g := w.base()
	if g.interactionsDisabled && e.TouchesTop(g.Size()) {
		e.Cancel()
	}
	return run(g.actions.drag, e)
}

func (r *Router) open(w window, e *OpenEvent) error {
	g := w.base()
	if g.updating {
		return nil
	}
	return run(g.actions.open, e)
}

// saver is implemented by windows that persist their contents on close.
type saver interface {
	savePage(ctx context.Context) error
}

func (r *Router) close(ctx context.Context, w window, e *CloseEvent) error {
	g := w.base()
	if s, ok := w.(saver); ok {
		if err := s.savePage(ctx); err != nil {
			return err
		}
	}

	var err error
	if !g.updating && g.runCloseAction {
		err = run(g.actions.close, e)
	}
	h := e.Inventory()
	reopening := g.opening && h == g.handle
	if !g.updating && !reopening && len(g.host.Viewers(h)) == 0 {
		r.unregister(h)
		r.logger.Printf("gui: released %q (handle %d)", g.title, h)
	}
	return err
}

// CloseAll closes every viewer of every registered window, running close
// actions and saving persistent windows.
func (r *Router) CloseAll(ctx context.Context) error {
	r.mu.RLock()
	open := make([]window, 0, len(r.windows))
	for _, w := range r.windows {
		open = append(open, w)
	}
	r.mu.RUnlock()

	var errs []error
	for _, w := range open {
		g := w.base()
		for _, v := range g.Viewers() {
			if err := g.Close(ctx, v, true); err != nil {
				errs = append(errs, fmt.Errorf("close %q for %s: %w", g.title, v.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}
