package gui

import "github.com/go-mclib/guikit/pkg/stack"

// Item is a stack placed in a window with an optional click action.
type Item struct {
	stack  *stack.Stack
	action ClickAction
}

// NewItem wraps a stack. action may be nil.
func NewItem(s *stack.Stack, action ClickAction) *Item {
	return &Item{stack: s, action: action}
}

// Stack returns the item's rendered form.
func (i *Item) Stack() *stack.Stack { return i.stack }

// SetStack replaces the rendered form. Call Gui.Update or Gui.UpdateItem
// to show it.
func (i *Item) SetStack(s *stack.Stack) { i.stack = s }

// Action returns the bound click action, or nil.
func (i *Item) Action() ClickAction { return i.action }

// SetAction binds or clears the click action.
func (i *Item) SetAction(a ClickAction) { i.action = a }

// IsItemEqual reports whether the stack a host shows in a slot still
// renders the same as item. Matching is by rendered state, not identity.
func IsItemEqual(candidate *stack.Stack, item *Item) bool {
	if item == nil {
		return false
	}
	return stack.Equal(candidate, item.stack)
}
