package gui

import (
	"maps"
	"slices"
)

// PaginatedGui is a window whose item area shows one of several pages.
// Static items set through the embedded Gui stay on every page and win
// over page items at the same slot.
type PaginatedGui struct {
	*Gui

	area    []int
	pages   []map[int]*Item
	current int
}

// NewPaginated creates a chest GUI with the given number of pages, at
// least one. The item area defaults to the whole grid.
func NewPaginated(r *Router, rows int, title string, pages int) *PaginatedGui {
	p := &PaginatedGui{Gui: New(r, rows, title)}
	p.self = p
	p.area = make([]int, p.Size())
	for slot := range p.area {
		p.area[slot] = slot
	}
	for range max(pages, 1) {
		p.pages = append(p.pages, make(map[int]*Item))
	}
	return p
}

// AddPage appends an empty page and returns its index.
func (p *PaginatedGui) AddPage() int {
	p.pages = append(p.pages, make(map[int]*Item))
	return len(p.pages) - 1
}

func (p *PaginatedGui) PageCount() int   { return len(p.pages) }
func (p *PaginatedGui) CurrentPage() int { return p.current }

// SetPage switches to page index and updates the window. On error the
// current page is unchanged.
func (p *PaginatedGui) SetPage(index int) error {
	if index < 0 || index >= len(p.pages) {
		return &OutOfBoundsError{What: "page", Index: index, Limit: len(p.pages)}
	}
	p.current = index
	p.Update()
	return nil
}

// Next moves to the following page, reporting whether there was one.
func (p *PaginatedGui) Next() bool {
	return p.SetPage(p.current+1) == nil
}

// Previous moves to the preceding page, reporting whether there was one.
func (p *PaginatedGui) Previous() bool {
	return p.SetPage(p.current-1) == nil
}

// SetPageArea designates the slots page items are placed in, in fill
// order. Duplicates are dropped.
func (p *PaginatedGui) SetPageArea(slots ...int) error {
	area := make([]int, 0, len(slots))
	for _, slot := range slots {
		if err := checkSlot(slot, p.Size()); err != nil {
			return err
		}
		if !slices.Contains(area, slot) {
			area = append(area, slot)
		}
	}
	p.area = area
	return nil
}

// PageArea returns the page item slots in fill order.
func (p *PaginatedGui) PageArea() []int { return slices.Clone(p.area) }

func (p *PaginatedGui) inArea(slot int) bool { return slices.Contains(p.area, slot) }

// AddPageItem puts item into the first free slot of the current page's
// area, skipping slots that hold a static item. A nil item is ignored.
func (p *PaginatedGui) AddPageItem(item *Item) error {
	if item == nil {
		return nil
	}
	page := p.pages[p.current]
	for _, slot := range p.area {
		if p.items[slot] != nil || page[slot] != nil {
			continue
		}
		page[slot] = item
		return nil
	}
	return &PageFullError{Page: p.current, Capacity: len(p.area)}
}

// SetPageItem places item on the current page. A nil item clears the slot.
func (p *PaginatedGui) SetPageItem(slot int, item *Item) error {
	if err := checkSlot(slot, p.Size()); err != nil {
		return err
	}
	if item == nil {
		delete(p.pages[p.current], slot)
		return nil
	}
	p.pages[p.current][slot] = item
	return nil
}

func (p *PaginatedGui) RemovePageItem(slot int) error {
	return p.SetPageItem(slot, nil)
}

// PageItem returns the current page's item in slot, or nil.
func (p *PaginatedGui) PageItem(slot int) *Item { return p.pages[p.current][slot] }

// PageItems returns a copy of a page's slot mapping.
func (p *PaginatedGui) PageItems(index int) (map[int]*Item, error) {
	if index < 0 || index >= len(p.pages) {
		return nil, &OutOfBoundsError{What: "page", Index: index, Limit: len(p.pages)}
	}
	return maps.Clone(p.pages[index]), nil
}

func (p *PaginatedGui) populate() {
	p.Gui.populate()
	for slot, item := range p.pages[p.current] {
		if p.items[slot] == nil {
			p.host.SetSlot(p.handle, slot, item.Stack())
		}
	}
}

func (p *PaginatedGui) clickedItem(slot int) *Item {
	if item := p.GuiItem(slot); item != nil {
		return item
	}
	return p.PageItem(slot)
}
