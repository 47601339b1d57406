package gui

// MenuType is a container type from the minecraft:menu registry.
type MenuType int32

const (
	MenuGeneric9x1 MenuType = 0
	MenuGeneric9x2 MenuType = 1
	MenuGeneric9x3 MenuType = 2 // single chest
	MenuGeneric9x4 MenuType = 3
	MenuGeneric9x5 MenuType = 4
	MenuGeneric9x6 MenuType = 5 // double chest
	MenuGeneric3x3 MenuType = 6 // dispenser, dropper
	MenuHopper     MenuType = 16
)

const (
	ChestColumns = 9
	MaxChestRows = 6

	// PlayerInvSlots is the player's main inventory (27) plus hotbar (9),
	// appended after the top slots in every container view.
	PlayerInvSlots = 36
	PlayerMainSize = 27
	PlayerMainBase = 9

	// OutsideSlot is the raw index the client sends for clicks outside
	// the window.
	OutsideSlot = -999
)

// chestMenu returns the generic menu for a chest with the given rows.
func chestMenu(rows int) MenuType {
	return MenuGeneric9x1 + MenuType(rows-1)
}

// dimensions returns rows and columns for a menu type.
func dimensions(menu MenuType) (rows, cols int) {
	switch menu {
	case MenuGeneric3x3:
		return 3, 3
	case MenuHopper:
		return 1, 5
	default:
		if menu >= MenuGeneric9x1 && menu <= MenuGeneric9x6 {
			return int(menu-MenuGeneric9x1) + 1, ChestColumns
		}
		return 1, ChestColumns
	}
}

// Columns returns how many slots a row of the menu holds.
func (m MenuType) Columns() int {
	_, cols := dimensions(m)
	return cols
}

// Region is the part of a container view a click landed in.
type Region uint8

const (
	RegionOutside Region = iota
	// RegionTop is the GUI's own inventory.
	RegionTop
	// RegionPlayer is the viewer's personal inventory under it.
	RegionPlayer
)

func (r Region) String() string {
	switch r {
	case RegionTop:
		return "top"
	case RegionPlayer:
		return "player"
	default:
		return "outside"
	}
}

// ResolveViewSlot maps an absolute container view index to the region and
// the slot within it. Player slots use inventory numbering: hotbar 0-8,
// main inventory 9-35.
func ResolveViewSlot(raw, topSize int) (Region, int) {
	switch {
	case raw < 0:
		return RegionOutside, raw
	case raw < topSize:
		return RegionTop, raw
	}
	i := raw - topSize
	switch {
	case i < PlayerMainSize:
		return RegionPlayer, PlayerMainBase + i
	case i < PlayerInvSlots:
		return RegionPlayer, i - PlayerMainSize
	default:
		return RegionOutside, raw
	}
}

// ViewSlot is the inverse of ResolveViewSlot.
func ViewSlot(region Region, slot, topSize int) int {
	switch region {
	case RegionTop:
		return slot
	case RegionPlayer:
		if slot < PlayerMainBase {
			return topSize + PlayerMainSize + slot
		}
		return topSize + slot - PlayerMainBase
	default:
		return OutsideSlot
	}
}

// SlotFromRowCol converts 1-based row/column to a slot index.
func SlotFromRowCol(row, col, cols int) int {
	return (row-1)*cols + (col - 1)
}
