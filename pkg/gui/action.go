package gui

// Action is a callback bound to a window, slot or item. A returned error
// stops the remaining actions for the event and is handed back to the host.
type Action[E Event] func(e E) error

type (
	ClickAction = Action[*ClickEvent]
	DragAction  = Action[*DragEvent]
	OpenAction  = Action[*OpenEvent]
	CloseAction = Action[*CloseEvent]
)

// ClickCategory selects a window-wide click binding.
type ClickCategory uint8

const (
	// ClickOutside fires for clicks outside the window, and nothing else does.
	ClickOutside ClickCategory = iota
	// ClickDefaultTop fires for every click in the window's own inventory.
	ClickDefaultTop
	// ClickPlayerInventory fires for every click in the viewer's inventory.
	ClickPlayerInventory
	// ClickDefault fires for every click inside the view.
	ClickDefault

	clickCategoryCount
)

func (c ClickCategory) String() string {
	switch c {
	case ClickOutside:
		return "outside"
	case ClickDefaultTop:
		return "default-top"
	case ClickPlayerInventory:
		return "player-inventory"
	case ClickDefault:
		return "default"
	default:
		return "unknown"
	}
}

// actions holds the category and slot bindings of one window.
type actions struct {
	click [clickCategoryCount]ClickAction
	slot  map[int]ClickAction
	drag  DragAction
	open  OpenAction
	close CloseAction
}

func newActions() actions {
	return actions{slot: make(map[int]ClickAction)}
}

// run invokes a if bound.
func run[E Event](a Action[E], e E) error {
	if a == nil {
		return nil
	}
	return a(e)
}
