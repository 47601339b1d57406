package gui

import (
	"context"

	"github.com/go-mclib/guikit/pkg/stack"
)

// Handle identifies a live inventory on the host.
type Handle int32

// NoHandle is never returned by a host.
const NoHandle Handle = 0

// Viewer is a player that can look at an inventory.
type Viewer interface {
	Name() string
	SendMessage(msg string)
}

// Host is the server-side inventory subsystem the GUI core renders into.
// Hosts deliver interaction events to Router.Dispatch in the order they
// happen, on a single goroutine.
type Host interface {
	// CreateInventory allocates a new top inventory.
	CreateInventory(menu MenuType, size int, title string) Handle
	// SetSlot renders a stack into a slot; nil clears it. The host keeps
	// its own copy.
	SetSlot(h Handle, slot int, s *stack.Stack)
	// Slot returns the host's current copy of a slot.
	Slot(h Handle, slot int) *stack.Stack
	// Clear empties every slot.
	Clear(h Handle)
	// Open shows the inventory to v, closing whatever v had open first.
	Open(ctx context.Context, h Handle, v Viewer) error
	// Close closes v's open inventory.
	Close(ctx context.Context, v Viewer) error
	// Viewers returns who is looking at h. During a close dispatch the
	// closing viewer is no longer listed.
	Viewers(h Handle) []Viewer
}
