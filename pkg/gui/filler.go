package gui

import "slices"

// Filler places decoration items into the empty slots of a window.
// Multiple items are used in rotation.
type Filler struct {
	g *Gui
}

// Filler returns the window's filler.
func (g *Gui) Filler() Filler { return Filler{g: g} }

// Fill fills every empty slot.
func (f Filler) Fill(items ...*Item) {
	slots := make([]int, 0, f.g.Size())
	for slot := 0; slot < f.g.Size(); slot++ {
		slots = append(slots, slot)
	}
	f.fillSlots(slots, items)
}

// FillTop fills the empty slots of the first row.
func (f Filler) FillTop(items ...*Item) {
	f.fillSlots(f.rowSlots(1), items)
}

// FillBottom fills the empty slots of the last row.
func (f Filler) FillBottom(items ...*Item) {
	f.fillSlots(f.rowSlots(f.g.rows), items)
}

// FillBorder fills the empty slots of the outer ring.
func (f Filler) FillBorder(items ...*Item) {
	var slots []int
	for slot := 0; slot < f.g.Size(); slot++ {
		row, col := slot/f.g.cols+1, slot%f.g.cols+1
		if row == 1 || row == f.g.rows || col == 1 || col == f.g.cols {
			slots = append(slots, slot)
		}
	}
	f.fillSlots(slots, items)
}

// FillBetween fills the empty slots of the rectangle spanned by two
// 1-based corners, inclusive.
func (f Filler) FillBetween(rowFrom, colFrom, rowTo, colTo int, items ...*Item) error {
	if rowFrom > rowTo {
		rowFrom, rowTo = rowTo, rowFrom
	}
	if colFrom > colTo {
		colFrom, colTo = colTo, colFrom
	}
	if rowFrom < 1 || rowTo > f.g.rows || colFrom < 1 || colTo > f.g.cols {
		return &OutOfBoundsError{What: "slot", Index: SlotFromRowCol(rowTo, colTo, f.g.cols), Limit: f.g.Size()}
	}

	var slots []int
	for row := rowFrom; row <= rowTo; row++ {
		for col := colFrom; col <= colTo; col++ {
			slots = append(slots, SlotFromRowCol(row, col, f.g.cols))
		}
	}
	f.fillSlots(slots, items)
	return nil
}

func (f Filler) rowSlots(row int) []int {
	slots := make([]int, 0, f.g.cols)
	for col := 1; col <= f.g.cols; col++ {
		slots = append(slots, SlotFromRowCol(row, col, f.g.cols))
	}
	return slots
}

func (f Filler) fillSlots(slots []int, items []*Item) {
	items = slices.DeleteFunc(slices.Clone(items), func(it *Item) bool { return it == nil })
	if len(items) == 0 {
		return
	}
	n := 0
	for _, slot := range slots {
		if f.g.items[slot] != nil {
			continue
		}
		f.g.items[slot] = items[n%len(items)]
		n++
	}
}
