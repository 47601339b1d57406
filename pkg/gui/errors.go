package gui

import (
	"errors"
	"fmt"
)

// ErrGuiFull is returned by AddItem when every slot is taken.
var ErrGuiFull = errors.New("gui: no free slot")

// OutOfBoundsError reports a slot or page index outside its valid range.
type OutOfBoundsError struct {
	What  string // "slot" or "page"
	Index int
	Limit int // valid range is [0, Limit)
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("gui: %s %d out of bounds [0, %d)", e.What, e.Index, e.Limit)
}

// PageFullError reports that the current page has no free slot in its
// item area. The caller decides whether to add a page.
type PageFullError struct {
	Page     int
	Capacity int
}

func (e *PageFullError) Error() string {
	return fmt.Sprintf("gui: page %d is full (%d slots)", e.Page, e.Capacity)
}

func checkSlot(slot, size int) error {
	if slot < 0 || slot >= size {
		return &OutOfBoundsError{What: "slot", Index: slot, Limit: size}
	}
	return nil
}
