package gui

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/go-mclib/guikit/pkg/store"
)

// PersistentPaginatedGui is a paginated window whose page contents can be
// edited by viewers and are written to a PageStore when a viewer closes
// it. Pages left through navigation are written at the same time.
type PersistentPaginatedGui struct {
	*PaginatedGui

	store store.PageStore
	key   string

	saved map[int]store.Page
	dirty map[int]bool
}

// NewPersistent creates a persistent GUI stored under key. Call Load to
// restore earlier contents.
func NewPersistent(r *Router, st store.PageStore, key string, rows int, title string, pages int) *PersistentPaginatedGui {
	p := &PersistentPaginatedGui{
		PaginatedGui: NewPaginated(r, rows, title, pages),
		store:        st,
		key:          key,
		saved:        make(map[int]store.Page),
		dirty:        make(map[int]bool),
	}
	p.self = p
	return p
}

func (p *PersistentPaginatedGui) Key() string { return p.key }

// MaxPages bounds how many pages Load will create for stored contents.
const MaxPages = 1024

// Load replaces page contents with what the store holds, adding pages as
// needed. Restored items have no action. A stored page index at or past
// MaxPages fails the load before anything changes.
func (p *PersistentPaginatedGui) Load(ctx context.Context) error {
	pages, err := p.store.LoadPages(ctx, p.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", p.key, err)
	}
	for index := range pages {
		if index >= MaxPages {
			return fmt.Errorf("load %s: %w", p.key, &OutOfBoundsError{What: "page", Index: index, Limit: MaxPages})
		}
	}
	for index, page := range pages {
		if index < 0 {
			continue
		}
		for index >= len(p.pages) {
			p.AddPage()
		}
		items := make(map[int]*Item, len(page))
		for slot, s := range page {
			if slot < 0 || slot >= p.Size() || s.IsEmpty() {
				continue
			}
			items[slot] = NewItem(s, nil)
		}
		p.pages[index] = items
		p.saved[index] = page.Clone()
		delete(p.dirty, index)
	}
	if len(p.Viewers()) > 0 {
		p.Update()
	}
	return nil
}

// SetPage keeps what viewers left on the current page, then switches.
func (p *PersistentPaginatedGui) SetPage(index int) error {
	if index < 0 || index >= len(p.pages) {
		return &OutOfBoundsError{What: "page", Index: index, Limit: len(p.pages)}
	}
	if len(p.Viewers()) > 0 {
		p.capture()
	}
	return p.PaginatedGui.SetPage(index)
}

func (p *PersistentPaginatedGui) Next() bool     { return p.SetPage(p.current+1) == nil }
func (p *PersistentPaginatedGui) Previous() bool { return p.SetPage(p.current-1) == nil }

// UpdateTitle keeps what viewers left on the current page before moving
// them to the retitled inventory.
func (p *PersistentPaginatedGui) UpdateTitle(ctx context.Context, title string) error {
	if len(p.Viewers()) > 0 {
		p.capture()
	}
	return p.PaginatedGui.UpdateTitle(ctx, title)
}

// Dirty reports whether page index has contents not yet written.
func (p *PersistentPaginatedGui) Dirty(index int) bool { return p.dirty[index] }

// capture reads the host contents of the current page area back into the
// page. Stacks that still match a page item keep that item and its action.
func (p *PersistentPaginatedGui) capture() {
	page := p.pages[p.current]
	for _, slot := range p.area {
		if p.items[slot] != nil {
			continue
		}
		s := p.host.Slot(p.handle, slot)
		switch {
		case s.IsEmpty():
			delete(page, slot)
		case IsItemEqual(s, page[slot]):
			// unchanged
		default:
			page[slot] = NewItem(s.Clone(), nil)
		}
	}
	p.dirty[p.current] = true
}

func (p *PersistentPaginatedGui) snapshot(index int) store.Page {
	out := make(store.Page, len(p.pages[index]))
	for slot, item := range p.pages[index] {
		if s := item.Stack(); !s.IsEmpty() {
			out[slot] = s.Clone()
		}
	}
	return out
}

// savePage captures the current page and writes every page that changed
// since it was last written. The router calls it before the close action.
func (p *PersistentPaginatedGui) savePage(ctx context.Context) error {
	p.capture()
	for _, index := range slices.Sorted(maps.Keys(p.dirty)) {
		page := p.snapshot(index)
		if prev, ok := p.saved[index]; ok && prev.Equal(page) {
			delete(p.dirty, index)
			continue
		}
		if err := p.store.SavePage(ctx, p.key, index, page); err != nil {
			return fmt.Errorf("save %s page %d: %w", p.key, index, err)
		}
		p.saved[index] = page
		delete(p.dirty, index)
	}
	return nil
}
