package gui

import (
	"context"
	"fmt"
	"maps"

	"github.com/go-mclib/guikit/pkg/stack"
)

// Window is a GUI the router can dispatch to: *Gui, *PaginatedGui or
// *PersistentPaginatedGui.
type Window interface {
	base() *Gui
}

// window is the per-variant behaviour behind a Gui.
type window interface {
	Window
	populate()
	clickedItem(slot int) *Item
}

// Gui is a single inventory window with static items and action bindings.
type Gui struct {
	router *Router
	host   Host
	self   window

	handle Handle
	menu   MenuType
	rows   int
	cols   int
	title  string

	items   map[int]*Item
	actions actions

	updating             bool
	opening              bool
	runCloseAction       bool
	interactionsDisabled bool
}

// New creates a chest GUI. rows is clamped to [1, 6].
func New(r *Router, rows int, title string) *Gui {
	rows = min(max(rows, 1), MaxChestRows)
	return newGui(r, chestMenu(rows), title)
}

// NewTyped creates a GUI for a non-chest menu such as MenuHopper.
func NewTyped(r *Router, menu MenuType, title string) *Gui {
	return newGui(r, menu, title)
}

func newGui(r *Router, menu MenuType, title string) *Gui {
	rows, cols := dimensions(menu)
	g := &Gui{
		router:         r,
		host:           r.host,
		menu:           menu,
		rows:           rows,
		cols:           cols,
		title:          title,
		items:          make(map[int]*Item),
		actions:        newActions(),
		runCloseAction: true,
	}
	g.self = g
	g.handle = r.host.CreateInventory(menu, g.Size(), title)
	return g
}

func (g *Gui) base() *Gui { return g }

func (g *Gui) Handle() Handle { return g.handle }
func (g *Gui) Menu() MenuType { return g.menu }
func (g *Gui) Rows() int      { return g.rows }
func (g *Gui) Cols() int      { return g.cols }
func (g *Gui) Size() int      { return g.rows * g.cols }
func (g *Gui) Title() string  { return g.title }

// IsUpdating reports whether the window is being re-rendered. Open and
// close actions do not run meanwhile.
func (g *Gui) IsUpdating() bool { return g.updating }

// ShouldRunCloseAction is false only during Close(ctx, v, false).
func (g *Gui) ShouldRunCloseAction() bool { return g.runCloseAction }

// Viewers returns who has the window open.
func (g *Gui) Viewers() []Viewer { return g.host.Viewers(g.handle) }

// items

// SetItem places item in slot, replacing whatever was there. A nil item
// clears the slot.
func (g *Gui) SetItem(slot int, item *Item) error {
	if err := checkSlot(slot, g.Size()); err != nil {
		return err
	}
	if item == nil {
		delete(g.items, slot)
		return nil
	}
	g.items[slot] = item
	return nil
}

// SetItemAt places item at a 1-based row and column.
func (g *Gui) SetItemAt(row, col int, item *Item) error {
	if row < 1 || row > g.rows || col < 1 || col > g.cols {
		return &OutOfBoundsError{What: "slot", Index: SlotFromRowCol(row, col, g.cols), Limit: g.Size()}
	}
	return g.SetItem(SlotFromRowCol(row, col, g.cols), item)
}

// AddItem puts items into the first empty slots. Nil items are skipped.
// Items that do not fit are dropped and ErrGuiFull is returned.
func (g *Gui) AddItem(items ...*Item) error {
	slot := 0
	for _, item := range items {
		if item == nil {
			continue
		}
		for slot < g.Size() && g.items[slot] != nil {
			slot++
		}
		if slot >= g.Size() {
			return ErrGuiFull
		}
		g.items[slot] = item
	}
	return nil
}

// RemoveItem clears a slot.
func (g *Gui) RemoveItem(slot int) error {
	if err := checkSlot(slot, g.Size()); err != nil {
		return err
	}
	delete(g.items, slot)
	return nil
}

// GuiItem returns the static item in slot, or nil.
func (g *Gui) GuiItem(slot int) *Item { return g.items[slot] }

// Items returns a copy of the static slot mapping.
func (g *Gui) Items() map[int]*Item { return maps.Clone(g.items) }

// UpdateItem changes the stack shown in one slot without a full update.
// An empty slot gets a new item without an action.
func (g *Gui) UpdateItem(slot int, s *stack.Stack) error {
	if err := checkSlot(slot, g.Size()); err != nil {
		return err
	}
	if item := g.items[slot]; item != nil {
		item.SetStack(s)
	} else {
		g.items[slot] = NewItem(s, nil)
	}
	g.host.SetSlot(g.handle, slot, s)
	return nil
}

// actions

// SetClickAction binds the window-wide click action of a category.
func (g *Gui) SetClickAction(category ClickCategory, a ClickAction) {
	if category >= clickCategoryCount {
		return
	}
	g.actions.click[category] = a
}

// ClickAction returns the binding of a category, or nil.
func (g *Gui) ClickAction(category ClickCategory) ClickAction {
	if category >= clickCategoryCount {
		return nil
	}
	return g.actions.click[category]
}

// SetSlotAction binds a click action to a slot regardless of its item.
// A nil action removes the binding.
func (g *Gui) SetSlotAction(slot int, a ClickAction) error {
	if err := checkSlot(slot, g.Size()); err != nil {
		return err
	}
	if a == nil {
		delete(g.actions.slot, slot)
		return nil
	}
	g.actions.slot[slot] = a
	return nil
}

// SlotAction returns the action bound to slot, or nil.
func (g *Gui) SlotAction(slot int) ClickAction { return g.actions.slot[slot] }

func (g *Gui) SetDragAction(a DragAction)   { g.actions.drag = a }
func (g *Gui) SetOpenAction(a OpenAction)   { g.actions.open = a }
func (g *Gui) SetCloseAction(a CloseAction) { g.actions.close = a }

// DisableAllInteractions cancels every click and drag touching the
// window's own inventory before any action runs.
func (g *Gui) DisableAllInteractions() { g.interactionsDisabled = true }

func (g *Gui) EnableAllInteractions() { g.interactionsDisabled = false }

func (g *Gui) InteractionsDisabled() bool { return g.interactionsDisabled }

// lifecycle

// Open renders the window and shows it to v. The open action runs when
// the host reports the open, unless the window is updating. Reopening for
// a viewer who already has the window open keeps it registered.
func (g *Gui) Open(ctx context.Context, v Viewer) error {
	g.router.register(g.self)
	if len(g.Viewers()) == 0 {
		g.render()
	}
	g.opening = true
	defer func() { g.opening = false }()
	if err := g.host.Open(ctx, g.handle, v); err != nil {
		return fmt.Errorf("open %q for %s: %w", g.title, v.Name(), err)
	}
	return nil
}

// Close closes v's view. With runCloseAction false the close action is
// skipped for this close only.
func (g *Gui) Close(ctx context.Context, v Viewer, runCloseAction bool) error {
	g.runCloseAction = runCloseAction
	defer func() { g.runCloseAction = true }()
	return g.host.Close(ctx, v)
}

// Update re-renders every slot from the current state without reopening.
func (g *Gui) Update() {
	defer g.markUpdating()()
	g.render()
}

// UpdateTitle reopens the window under a new title for every viewer.
// Open and close actions are suppressed while viewers move over. If a
// viewer cannot be moved the old inventory stays registered until its
// last viewer closes it.
func (g *Gui) UpdateTitle(ctx context.Context, title string) error {
	defer g.markUpdating()()

	viewers := g.Viewers()
	old := g.handle
	g.title = title
	g.handle = g.host.CreateInventory(g.menu, g.Size(), title)
	if _, ok := g.router.owner(old); ok || len(viewers) > 0 {
		g.router.register(g.self)
	}

	g.render()
	for _, v := range viewers {
		if err := g.host.Open(ctx, g.handle, v); err != nil {
			return fmt.Errorf("reopen %q for %s: %w", title, v.Name(), err)
		}
	}
	g.router.unregister(old)
	return nil
}

// markUpdating sets the updating flag and returns a func restoring the
// previous value, so nested updates leave an outer one in effect.
func (g *Gui) markUpdating() func() {
	prev := g.updating
	g.updating = true
	return func() { g.updating = prev }
}

func (g *Gui) render() {
	g.host.Clear(g.handle)
	g.self.populate()
}

func (g *Gui) populate() {
	for slot, item := range g.items {
		g.host.SetSlot(g.handle, slot, item.Stack())
	}
}

func (g *Gui) clickedItem(slot int) *Item { return g.items[slot] }
