package gui

import "github.com/go-mclib/guikit/pkg/stack"

// EventKind tags the event variants.
type EventKind uint8

const (
	KindClick EventKind = iota + 1
	KindDrag
	KindOpen
	KindClose
)

func (k EventKind) String() string {
	switch k {
	case KindClick:
		return "click"
	case KindDrag:
		return "drag"
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is an inventory interaction delivered by the host. It is one of
// *ClickEvent, *DragEvent, *OpenEvent or *CloseEvent.
type Event interface {
	Kind() EventKind
	// Inventory is the top inventory the event belongs to.
	Inventory() Handle
	Viewer() Viewer
	sealed()
}

type header struct {
	handle Handle
	viewer Viewer
}

func (h header) Inventory() Handle { return h.handle }
func (h header) Viewer() Viewer    { return h.viewer }
func (header) sealed()             {}

// cancellable is embedded by events whose default host behaviour can be
// suppressed.
type cancellable struct {
	cancelled bool
}

// Cancel stops the host from applying the interaction.
func (c *cancellable) Cancel() { c.cancelled = true }

// SetCancelled sets or clears cancellation.
func (c *cancellable) SetCancelled(v bool) { c.cancelled = v }

// Cancelled reports whether an action cancelled the interaction.
func (c *cancellable) Cancelled() bool { return c.cancelled }

// ClickType is how the slot was clicked.
type ClickType uint8

const (
	ClickLeft ClickType = iota
	ClickRight
	ClickShiftLeft
	ClickShiftRight
	ClickMiddle
	ClickNumberKey
	ClickDoubleClick
	ClickDrop
	ClickControlDrop
)

// IsShift reports whether the click moves items between regions.
func (c ClickType) IsShift() bool { return c == ClickShiftLeft || c == ClickShiftRight }

// ClickEvent is a click inside or outside a window.
type ClickEvent struct {
	header
	cancellable
	Region Region
	// Slot is the index within Region.
	Slot int
	// RawSlot is the absolute container view index.
	RawSlot int
	Click   ClickType
	// HotbarButton is the number key pressed for ClickNumberKey.
	HotbarButton int
	// Current is the host's copy of the clicked slot's contents.
	Current *stack.Stack
}

// NewClickEvent builds a click from a raw view index.
func NewClickEvent(h Handle, v Viewer, raw, topSize int, click ClickType, current *stack.Stack) *ClickEvent {
	region, slot := ResolveViewSlot(raw, topSize)
	return &ClickEvent{
		header:  header{handle: h, viewer: v},
		Region:  region,
		Slot:    slot,
		RawSlot: raw,
		Click:   click,
		Current: current,
	}
}

func (*ClickEvent) Kind() EventKind { return KindClick }

// DragEvent is an item drag over one or more slots.
type DragEvent struct {
	header
	cancellable
	// RawSlots are the absolute view indexes covered by the drag.
	RawSlots []int
	Cursor   *stack.Stack
}

func NewDragEvent(h Handle, v Viewer, rawSlots []int, cursor *stack.Stack) *DragEvent {
	return &DragEvent{header: header{handle: h, viewer: v}, RawSlots: rawSlots, Cursor: cursor}
}

func (*DragEvent) Kind() EventKind { return KindDrag }

// TouchesTop reports whether any dragged slot is in the top inventory.
func (e *DragEvent) TouchesTop(topSize int) bool {
	for _, raw := range e.RawSlots {
		if raw >= 0 && raw < topSize {
			return true
		}
	}
	return false
}

// OpenEvent fires when a viewer opens the inventory.
type OpenEvent struct {
	header
	cancellable
}

func NewOpenEvent(h Handle, v Viewer) *OpenEvent {
	return &OpenEvent{header: header{handle: h, viewer: v}}
}

func (*OpenEvent) Kind() EventKind { return KindOpen }

// CloseEvent fires when a viewer closes the inventory.
type CloseEvent struct {
	header
}

func NewCloseEvent(h Handle, v Viewer) *CloseEvent {
	return &CloseEvent{header: header{handle: h, viewer: v}}
}

func (*CloseEvent) Kind() EventKind { return KindClose }
