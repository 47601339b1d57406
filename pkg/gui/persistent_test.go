package gui_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/stack"
	"github.com/go-mclib/guikit/pkg/store"
)

type failingStore struct{ err error }

func (f failingStore) SavePage(context.Context, string, int, store.Page) error { return f.err }
func (f failingStore) LoadPages(context.Context, string) (map[int]store.Page, error) {
	return nil, f.err
}

func TestPersistentSavesBeforeCloseAction(t *testing.T) {
	host, r, v := setup(t)
	ctx := context.Background()
	ms := store.NewMemoryStore()
	p := gui.NewPersistent(r, ms, "vault", 1, "vault", 1)

	var seen *stack.Stack
	p.SetCloseAction(func(*gui.CloseEvent) error {
		seen = ms.Page("vault", 0)[4]
		return nil
	})

	_ = p.Open(ctx, v)
	if err := host.Place(v, 4, st(7)); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(ctx, v, true); err != nil {
		t.Fatal(err)
	}
	if !stack.Equal(seen, st(7)) {
		t.Errorf("close action saw %+v, want the just-placed stack", seen)
	}
	if !stack.Equal(p.PageItem(4).Stack(), st(7)) {
		t.Error("placed stack not captured into the page")
	}
}

func TestPersistentSkipsUnchangedWrites(t *testing.T) {
	host, r, v := setup(t)
	ctx := context.Background()
	ms := store.NewMemoryStore()
	p := gui.NewPersistent(r, ms, "chest", 1, "chest", 1)

	_ = p.Open(ctx, v)
	_ = host.Place(v, 0, st(1))
	_ = p.Close(ctx, v, true)
	if n := ms.SaveCount("chest"); n != 1 {
		t.Fatalf("SaveCount = %d after first close, want 1", n)
	}

	_ = p.Open(ctx, v)
	_ = p.Close(ctx, v, true)
	if n := ms.SaveCount("chest"); n != 1 {
		t.Errorf("SaveCount = %d after unchanged close, want 1", n)
	}

	_ = p.Open(ctx, v)
	_ = host.Place(v, 1, st(2))
	_ = p.Close(ctx, v, true)
	if n := ms.SaveCount("chest"); n != 2 {
		t.Errorf("SaveCount = %d after change, want 2", n)
	}
	if len(ms.Page("chest", 0)) != 2 {
		t.Errorf("stored page = %v", ms.Page("chest", 0))
	}
}

func TestPersistentNavigationKeepsEdits(t *testing.T) {
	host, r, v := setup(t)
	ctx := context.Background()
	ms := store.NewMemoryStore()
	p := gui.NewPersistent(r, ms, "backpack", 1, "backpack", 2)
	_ = p.SetPageArea(0, 1, 2, 3, 4, 5, 6, 7)
	_ = p.SetItem(8, gui.NewItem(st(99), nil))

	_ = p.Open(ctx, v)
	_ = host.Place(v, 0, st(1))
	if !p.Next() {
		t.Fatal("Next() = false")
	}
	if !p.Dirty(0) {
		t.Error("page 0 not marked dirty after navigation")
	}
	if !host.Slot(p.Handle(), 0).IsEmpty() {
		t.Error("page 1 shows page 0 contents")
	}
	_ = host.Place(v, 2, st(3))

	_ = p.Close(ctx, v, true)
	if !stack.Equal(ms.Page("backpack", 0)[0], st(1)) {
		t.Errorf("page 0 stored %v", ms.Page("backpack", 0))
	}
	if !stack.Equal(ms.Page("backpack", 1)[2], st(3)) {
		t.Errorf("page 1 stored %v", ms.Page("backpack", 1))
	}
	if _, ok := ms.Page("backpack", 1)[8]; ok {
		t.Error("static item persisted as page content")
	}
}

func TestPersistentLoad(t *testing.T) {
	host, r, v := setup(t)
	ctx := context.Background()
	ms := store.NewMemoryStore()
	_ = ms.SavePage(ctx, "loaded", 0, store.Page{3: st(5)})
	_ = ms.SavePage(ctx, "loaded", 2, store.Page{1: st(6)})

	p := gui.NewPersistent(r, ms, "loaded", 1, "loaded", 1)
	if err := p.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if p.PageCount() != 3 {
		t.Errorf("PageCount() = %d, want 3", p.PageCount())
	}

	_ = p.Open(ctx, v)
	if !stack.Equal(host.Slot(p.Handle(), 3), st(5)) {
		t.Error("loaded page 0 not rendered")
	}

	before := ms.SaveCount("loaded")
	_ = p.Close(ctx, v, true)
	if ms.SaveCount("loaded") != before {
		t.Error("unchanged loaded page was written again")
	}
}

func TestPersistentSaveFailure(t *testing.T) {
	_, r, v := setup(t)
	ctx := context.Background()
	boom := errors.New("disk full")
	p := gui.NewPersistent(r, failingStore{err: boom}, "broken", 1, "broken", 1)

	ran := false
	p.SetCloseAction(func(*gui.CloseEvent) error { ran = true; return nil })
	_ = p.Open(ctx, v)

	if err := p.Close(ctx, v, true); !errors.Is(err, boom) {
		t.Errorf("Close() error = %v, want %v", err, boom)
	}
	if ran {
		t.Error("close action ran after a failed save")
	}
	if err := p.Load(ctx); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want %v", err, boom)
	}
}

func TestPersistentReopenStillSaves(t *testing.T) {
	host, r, v := setup(t)
	ctx := context.Background()
	ms := store.NewMemoryStore()
	p := gui.NewPersistent(r, ms, "reopened", 1, "reopened", 1)

	_ = p.Open(ctx, v)
	_ = p.Open(ctx, v)
	if _, ok := r.Owner(p.Handle()); !ok {
		t.Fatal("window released while reopening")
	}
	_ = host.Place(v, 2, st(4))
	if err := p.Close(ctx, v, true); err != nil {
		t.Fatal(err)
	}
	if !stack.Equal(ms.Page("reopened", 0)[2], st(4)) {
		t.Errorf("stored page = %v, want the placed stack in slot 2", ms.Page("reopened", 0))
	}
}

func TestPersistentLoadRejectsHugePageIndex(t *testing.T) {
	_, r, _ := setup(t)
	ctx := context.Background()
	ms := store.NewMemoryStore()
	_ = ms.SavePage(ctx, "huge", 0, store.Page{0: st(1)})
	_ = ms.SavePage(ctx, "huge", 1<<30, store.Page{0: st(2)})

	p := gui.NewPersistent(r, ms, "huge", 1, "huge", 1)
	err := p.Load(ctx)
	var oob *gui.OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Load() error = %v, want *OutOfBoundsError", err)
	}
	if oob.Index != 1<<30 || oob.Limit != gui.MaxPages {
		t.Errorf("Load() error = %+v", oob)
	}
	if p.PageCount() != 1 {
		t.Errorf("PageCount() = %d after a rejected load, want 1", p.PageCount())
	}
	if p.PageItem(0) != nil {
		t.Error("rejected load still restored page 0")
	}
}
