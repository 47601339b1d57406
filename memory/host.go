// Package memory is an in-process host for GUIs: it keeps inventories,
// player inventories and cursors in memory and delivers events to a
// dispatcher synchronously, as a server's event thread would.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-mclib/guikit/pkg/compat"
	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/stack"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

// Dispatcher receives every event the host produces, normally
// (*gui.Router).Dispatch.
type Dispatcher func(ctx context.Context, e gui.Event) error

type inventory struct {
	menu  gui.MenuType
	title string
	slots []*stack.Stack
}

type viewerState struct {
	viewer gui.Viewer
	open   gui.Handle
	cursor *stack.Stack
	slots  [gui.PlayerInvSlots]*stack.Stack
}

// Host implements gui.Host and compat.Probe.
type Host struct {
	mu          sync.RWMutex
	dispatch    Dispatcher
	version     string
	missing     map[string]bool
	next        gui.Handle
	inventories map[gui.Handle]*inventory
	viewers     map[string]*viewerState
}

// NewHost creates a host reporting the given game version with every
// internal available.
func NewHost(version string) *Host {
	return &Host{
		version:     version,
		missing:     make(map[string]bool),
		inventories: make(map[gui.Handle]*inventory),
		viewers:     make(map[string]*viewerState),
	}
}

// SetDispatcher sets where events go. Without one, events are dropped.
func (h *Host) SetDispatcher(d Dispatcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dispatch = d
}

func (h *Host) emit(ctx context.Context, e gui.Event) error {
	h.mu.RLock()
	d := h.dispatch
	h.mu.RUnlock()
	if d == nil {
		return nil
	}
	return d(ctx, e)
}

// probe

func (h *Host) ServerVersion() string { return h.version }

func (h *Host) HasInternal(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return !h.missing[name]
}

// RemoveInternal makes HasInternal report name as unavailable.
func (h *Host) RemoveInternal(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.missing[name] = true
}

var _ compat.Probe = (*Host)(nil)
var _ gui.Host = (*Host)(nil)

// inventories

func (h *Host) CreateInventory(menu gui.MenuType, size int, title string) gui.Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.inventories[h.next] = &inventory{menu: menu, title: title, slots: make([]*stack.Stack, size)}
	return h.next
}

func (h *Host) SetSlot(handle gui.Handle, slot int, s *stack.Stack) {
	h.mu.Lock()
	defer h.mu.Unlock()
	inv, ok := h.inventories[handle]
	if !ok || slot < 0 || slot >= len(inv.slots) {
		return
	}
	inv.slots[slot] = s.Clone()
}

// SetRawSlot renders a slot as received in a container slot packet.
func (h *Host) SetRawSlot(handle gui.Handle, slot int, raw ns.Slot) error {
	s, err := stack.FromSlot(raw)
	if err != nil {
		return fmt.Errorf("memory: slot %d of inventory %d: %w", slot, handle, err)
	}
	h.SetSlot(handle, slot, s)
	return nil
}

func (h *Host) Slot(handle gui.Handle, slot int) *stack.Stack {
	h.mu.RLock()
	defer h.mu.RUnlock()
	inv, ok := h.inventories[handle]
	if !ok || slot < 0 || slot >= len(inv.slots) {
		return nil
	}
	return inv.slots[slot].Clone()
}

func (h *Host) Clear(handle gui.Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if inv, ok := h.inventories[handle]; ok {
		clear(inv.slots)
	}
}

// Contents returns a copy of every slot of an inventory.
func (h *Host) Contents(handle gui.Handle) []*stack.Stack {
	h.mu.RLock()
	defer h.mu.RUnlock()
	inv, ok := h.inventories[handle]
	if !ok {
		return nil
	}
	out := make([]*stack.Stack, len(inv.slots))
	for i, s := range inv.slots {
		out[i] = s.Clone()
	}
	return out
}

// Title returns the title an inventory was created with.
func (h *Host) Title(handle gui.Handle) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if inv, ok := h.inventories[handle]; ok {
		return inv.title
	}
	return ""
}

// Menu returns the menu type of an inventory, or -1.
func (h *Host) Menu(handle gui.Handle) gui.MenuType {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if inv, ok := h.inventories[handle]; ok {
		return inv.menu
	}
	return -1
}

// viewers

func (h *Host) state(v gui.Viewer) *viewerState {
	st, ok := h.viewers[v.Name()]
	if !ok {
		st = &viewerState{viewer: v}
		h.viewers[v.Name()] = st
	}
	return st
}

// Open shows handle to v, closing v's current inventory first. A
// cancelled open event leaves v with nothing open.
func (h *Host) Open(ctx context.Context, handle gui.Handle, v gui.Viewer) error {
	h.mu.RLock()
	_, ok := h.inventories[handle]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("memory: no inventory %d", handle)
	}

	if err := h.Close(ctx, v); err != nil {
		return err
	}

	h.mu.Lock()
	h.state(v).open = handle
	h.mu.Unlock()

	e := gui.NewOpenEvent(handle, v)
	err := h.emit(ctx, e)
	if e.Cancelled() {
		h.mu.Lock()
		h.state(v).open = gui.NoHandle
		h.mu.Unlock()
	}
	return err
}

// Close closes v's inventory. The close event is delivered after v has
// left the viewer list.
func (h *Host) Close(ctx context.Context, v gui.Viewer) error {
	h.mu.Lock()
	st := h.state(v)
	handle := st.open
	st.open = gui.NoHandle
	h.mu.Unlock()

	if handle == gui.NoHandle {
		return nil
	}
	return h.emit(ctx, gui.NewCloseEvent(handle, v))
}

func (h *Host) Viewers(handle gui.Handle) []gui.Viewer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []gui.Viewer
	for _, st := range h.viewers {
		if st.open == handle && handle != gui.NoHandle {
			out = append(out, st.viewer)
		}
	}
	slices.SortFunc(out, func(a, b gui.Viewer) int { return strings.Compare(a.Name(), b.Name()) })
	return out
}

// OpenInventory returns what v is looking at.
func (h *Host) OpenInventory(v gui.Viewer) (gui.Handle, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	st, ok := h.viewers[v.Name()]
	if !ok || st.open == gui.NoHandle {
		return gui.NoHandle, false
	}
	return st.open, true
}

// player inventory

// PlayerSlot returns a copy of v's inventory slot (hotbar 0-8, main 9-35).
func (h *Host) PlayerSlot(v gui.Viewer, slot int) *stack.Stack {
	h.mu.RLock()
	defer h.mu.RUnlock()
	st, ok := h.viewers[v.Name()]
	if !ok || slot < 0 || slot >= gui.PlayerInvSlots {
		return nil
	}
	return st.slots[slot].Clone()
}

func (h *Host) SetPlayerSlot(v gui.Viewer, slot int, s *stack.Stack) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if slot < 0 || slot >= gui.PlayerInvSlots {
		return
	}
	h.state(v).slots[slot] = s.Clone()
}

func (h *Host) Cursor(v gui.Viewer) *stack.Stack {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if st, ok := h.viewers[v.Name()]; ok {
		return st.cursor.Clone()
	}
	return nil
}

func (h *Host) SetCursor(v gui.Viewer, s *stack.Stack) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state(v).cursor = s.Clone()
}
