package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/stack"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

func newHost(t *testing.T) (*Host, *[]gui.Event) {
	t.Helper()
	h := NewHost("1.21.4")
	var events []gui.Event
	h.SetDispatcher(func(_ context.Context, e gui.Event) error {
		events = append(events, e)
		return nil
	})
	return h, &events
}

func TestOpenClosesPrevious(t *testing.T) {
	h, events := newHost(t)
	ctx := context.Background()
	v := NewPlayer("steve")

	a := h.CreateInventory(gui.MenuGeneric9x1, 9, "a")
	b := h.CreateInventory(gui.MenuGeneric9x1, 9, "b")
	_ = h.Open(ctx, a, v)
	_ = h.Open(ctx, b, v)

	kinds := make([]gui.EventKind, 0, len(*events))
	for _, e := range *events {
		kinds = append(kinds, e.Kind())
	}
	want := []gui.EventKind{gui.KindOpen, gui.KindClose, gui.KindOpen}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, kinds[i], want[i])
		}
	}
	if got, _ := h.OpenInventory(v); got != b {
		t.Errorf("open = %d, want %d", got, b)
	}
	if len(h.Viewers(a)) != 0 || len(h.Viewers(b)) != 1 {
		t.Error("viewer lists not updated")
	}
}

func TestCancelledOpen(t *testing.T) {
	h := NewHost("1.21.4")
	h.SetDispatcher(func(_ context.Context, e gui.Event) error {
		if o, ok := e.(*gui.OpenEvent); ok {
			o.Cancel()
		}
		return nil
	})
	v := NewPlayer("steve")
	inv := h.CreateInventory(gui.MenuGeneric9x1, 9, "x")

	_ = h.Open(context.Background(), inv, v)
	if _, open := h.OpenInventory(v); open {
		t.Error("cancelled open left the inventory open")
	}
}

func TestClickSwapsCursor(t *testing.T) {
	h, _ := newHost(t)
	ctx := context.Background()
	v := NewPlayer("steve")
	inv := h.CreateInventory(gui.MenuGeneric9x1, 9, "x")
	h.SetSlot(inv, 2, stack.MustOf("diamond", 4))
	_ = h.Open(ctx, inv, v)

	e, err := h.Click(ctx, v, 2, gui.ClickLeft)
	if err != nil {
		t.Fatal(err)
	}
	if e.Region != gui.RegionTop || e.Slot != 2 || e.Current.Count != 4 {
		t.Errorf("event = %+v", e)
	}
	if !h.Slot(inv, 2).IsEmpty() || h.Cursor(v).Count != 4 {
		t.Error("stack not picked up")
	}
}

func TestShiftClickMovesToPlayer(t *testing.T) {
	h, _ := newHost(t)
	ctx := context.Background()
	v := NewPlayer("steve")
	inv := h.CreateInventory(gui.MenuGeneric9x1, 9, "x")
	h.SetSlot(inv, 0, stack.MustOf("emerald", 1))
	_ = h.Open(ctx, inv, v)

	_, _ = h.Click(ctx, v, 0, gui.ClickShiftLeft)
	// first player view slot is main inventory slot 9
	if h.PlayerSlot(v, 9).IsEmpty() || !h.Slot(inv, 0).IsEmpty() {
		t.Error("shift click did not move the stack")
	}
}

func TestCancelledClickLeavesSlots(t *testing.T) {
	h := NewHost("1.21.4")
	h.SetDispatcher(func(_ context.Context, e gui.Event) error {
		if c, ok := e.(*gui.ClickEvent); ok {
			c.Cancel()
		}
		return nil
	})
	ctx := context.Background()
	v := NewPlayer("steve")
	inv := h.CreateInventory(gui.MenuGeneric9x1, 9, "x")
	h.SetSlot(inv, 1, stack.MustOf("stone", 1))
	_ = h.Open(ctx, inv, v)

	_, _ = h.Click(ctx, v, 1, gui.ClickLeft)
	if h.Slot(inv, 1).IsEmpty() || !h.Cursor(v).IsEmpty() {
		t.Error("cancelled click moved items")
	}
}

func TestDragSplitsCursor(t *testing.T) {
	h, _ := newHost(t)
	ctx := context.Background()
	v := NewPlayer("steve")
	inv := h.CreateInventory(gui.MenuGeneric9x1, 9, "x")
	_ = h.Open(ctx, inv, v)
	h.SetCursor(v, stack.MustOf("torch", 7))

	if _, err := h.Drag(ctx, v, []int{0, 1, 2}); err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		if got := h.Slot(inv, i); got.Count != 2 {
			t.Errorf("slot %d = %v, want 2 torches", i, got)
		}
	}
	if h.Cursor(v).Count != 1 {
		t.Errorf("cursor = %v, want 1 left", h.Cursor(v))
	}
}

func TestClickWithoutOpenInventory(t *testing.T) {
	h, _ := newHost(t)
	if _, err := h.Click(context.Background(), NewPlayer("steve"), 0, gui.ClickLeft); err == nil {
		t.Error("click without an open inventory succeeded")
	}
}

func TestDispatchErrorReturned(t *testing.T) {
	h := NewHost("1.21.4")
	boom := errors.New("boom")
	h.SetDispatcher(func(context.Context, gui.Event) error { return boom })
	inv := h.CreateInventory(gui.MenuGeneric9x1, 9, "x")
	if err := h.Open(context.Background(), inv, NewPlayer("steve")); !errors.Is(err, boom) {
		t.Errorf("Open() = %v, want boom", err)
	}
}

func TestPlayerMessages(t *testing.T) {
	p := NewPlayer("steve")
	var hooked []string
	p.OnMessage(func(m string) { hooked = append(hooked, m) })
	p.SendMessage("a")
	p.SendMessage("b")
	if p.LastMessage() != "b" || len(p.Messages()) != 2 || len(hooked) != 2 {
		t.Errorf("messages = %v, hooked = %v", p.Messages(), hooked)
	}
}

func TestEntityFields(t *testing.T) {
	e := NewEntity("ZOMBIE", "aware")
	if err := e.SetBool("aware", true); err != nil {
		t.Fatal(err)
	}
	if v, _ := e.Bool("aware"); !v {
		t.Error("aware not stored")
	}
	if err := e.SetBool("missing", true); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestSetRawSlotEmptyClears(t *testing.T) {
	h, _ := newHost(t)
	inv := h.CreateInventory(gui.MenuGeneric9x1, 9, "x")
	h.SetSlot(inv, 3, stack.MustOf("diamond", 2))

	if err := h.SetRawSlot(inv, 3, ns.Slot{}); err != nil {
		t.Fatal(err)
	}
	if !h.Slot(inv, 3).IsEmpty() {
		t.Errorf("slot 3 = %+v after an empty raw slot, want empty", h.Slot(inv, 3))
	}
}
