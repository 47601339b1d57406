package memory

import (
	"context"
	"fmt"

	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/stack"
)

// viewSlot returns a pointer to the stack at an absolute view index.
// Must be called under h.mu lock.
func (h *Host) viewSlot(st *viewerState, raw int) **stack.Stack {
	inv := h.inventories[st.open]
	region, slot := gui.ResolveViewSlot(raw, len(inv.slots))
	switch region {
	case gui.RegionTop:
		return &inv.slots[slot]
	case gui.RegionPlayer:
		return &st.slots[slot]
	default:
		return nil
	}
}

func (h *Host) openState(v gui.Viewer) (*viewerState, int, error) {
	st, ok := h.viewers[v.Name()]
	if !ok || st.open == gui.NoHandle {
		return nil, 0, fmt.Errorf("memory: %s has no inventory open", v.Name())
	}
	return st, len(h.inventories[st.open].slots), nil
}

// Click simulates v clicking an absolute view index of their open
// inventory. Unless an action cancels it, a left or right click swaps
// the cursor with the slot and a shift click moves the stack to the first
// empty slot of the other region.
func (h *Host) Click(ctx context.Context, v gui.Viewer, raw int, click gui.ClickType) (*gui.ClickEvent, error) {
	h.mu.RLock()
	st, topSize, err := h.openState(v)
	if err != nil {
		h.mu.RUnlock()
		return nil, err
	}
	var current *stack.Stack
	if p := h.viewSlot(st, raw); p != nil {
		current = (*p).Clone()
	}
	handle := st.open
	h.mu.RUnlock()

	e := gui.NewClickEvent(handle, v, raw, topSize, click, current)
	if err := h.emit(ctx, e); err != nil {
		return e, err
	}
	if e.Cancelled() || e.Region == gui.RegionOutside {
		return e, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if st.open != handle {
		return e, nil
	}
	p := h.viewSlot(st, raw)
	switch {
	case click.IsShift():
		h.moveToOther(st, raw, topSize, p)
	case click == gui.ClickLeft || click == gui.ClickRight:
		*p, st.cursor = st.cursor, *p
	}
	return e, nil
}

// ClickOutside simulates a click outside the window.
func (h *Host) ClickOutside(ctx context.Context, v gui.Viewer) (*gui.ClickEvent, error) {
	return h.Click(ctx, v, gui.OutsideSlot, gui.ClickLeft)
}

// moveToOther must be called under h.mu lock.
func (h *Host) moveToOther(st *viewerState, raw, topSize int, p **stack.Stack) {
	if (*p).IsEmpty() {
		return
	}
	from, to := topSize, topSize+gui.PlayerInvSlots
	if raw >= topSize {
		from, to = 0, topSize
	}
	for i := from; i < to; i++ {
		if dst := h.viewSlot(st, i); (*dst).IsEmpty() {
			*dst, *p = *p, nil
			return
		}
	}
}

// Drag simulates v spreading the cursor over view slots. Unless
// cancelled, the cursor is split evenly over the empty slots and the
// remainder stays on the cursor.
func (h *Host) Drag(ctx context.Context, v gui.Viewer, rawSlots []int) (*gui.DragEvent, error) {
	h.mu.RLock()
	st, _, err := h.openState(v)
	if err != nil {
		h.mu.RUnlock()
		return nil, err
	}
	handle, cursor := st.open, st.cursor.Clone()
	h.mu.RUnlock()

	e := gui.NewDragEvent(handle, v, rawSlots, cursor)
	if err := h.emit(ctx, e); err != nil {
		return e, err
	}
	if e.Cancelled() || cursor.IsEmpty() {
		return e, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if st.open != handle {
		return e, nil
	}
	var targets []**stack.Stack
	for _, raw := range rawSlots {
		if p := h.viewSlot(st, raw); p != nil && (*p).IsEmpty() {
			targets = append(targets, p)
		}
	}
	if len(targets) == 0 {
		return e, nil
	}
	each := st.cursor.Count / int32(len(targets))
	if each == 0 {
		return e, nil
	}
	for _, p := range targets {
		s := st.cursor.Clone()
		s.Count = each
		*p = s
	}
	st.cursor.Count -= each * int32(len(targets))
	if st.cursor.Count <= 0 {
		st.cursor = nil
	}
	return e, nil
}

// Place puts a stack into a view slot of v's open inventory without an
// event, as if the player had moved it there.
func (h *Host) Place(v gui.Viewer, raw int, s *stack.Stack) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	st, _, err := h.openState(v)
	if err != nil {
		return err
	}
	p := h.viewSlot(st, raw)
	if p == nil {
		return fmt.Errorf("memory: view slot %d out of range", raw)
	}
	*p = s.Clone()
	return nil
}
