package stack

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-mclib/data/pkg/data/items"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

// Flag hides parts of an item's tooltip.
type Flag uint16

const (
	HideEnchants Flag = 1 << iota
	HideAttributes
	HideUnbreakable
	HideDestroys
	HidePlacedOn
	HideAdditionalTooltip
	HideDye
)

// Color is a dye colour for leather armour.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Tag is a single custom data value. Exactly one field is set.
type Tag struct {
	String *string `json:"s,omitempty"`
	Bool   *bool   `json:"b,omitempty"`
	Int    *int32  `json:"i,omitempty"`
}

func (t Tag) equal(o Tag) bool {
	return ptrEqual(t.String, o.String) && ptrEqual(t.Bool, o.Bool) && ptrEqual(t.Int, o.Int)
}

// Stack is the rendered form of an item as shown in a slot. Name and Lore
// hold serialized text (JSON components, or legacy text when the host has
// no rich text support).
type Stack struct {
	ID           int32          `json:"id"`
	Count        int32          `json:"count"`
	Name         string         `json:"name,omitempty"`
	Lore         []string       `json:"lore,omitempty"`
	Enchantments map[string]int `json:"enchantments,omitempty"`
	Flags        Flag           `json:"flags,omitempty"`
	Color        *Color         `json:"color,omitempty"`
	Tags         map[string]Tag `json:"tags,omitempty"`
}

// Of returns a stack of count items of the named material
// (e.g. "diamond_sword" or "minecraft:diamond_sword").
func Of(name string, count int32) (*Stack, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.Contains(name, ":") {
		name = "minecraft:" + name
	}
	id := items.ItemID(name)
	if id < 0 {
		return nil, fmt.Errorf("unknown item %q", name)
	}
	return &Stack{ID: id, Count: count}, nil
}

// MustOf is like Of but panics on unknown materials. Meant for constants in
// menus built at startup.
func MustOf(name string, count int32) *Stack {
	s, err := Of(name, count)
	if err != nil {
		panic(err)
	}
	return s
}

// FromItemStack converts a decoded protocol stack. Empty stacks become nil.
func FromItemStack(is *items.ItemStack) *Stack {
	if is == nil || is.IsEmpty() {
		return nil
	}
	return &Stack{ID: is.ID, Count: int32(is.Count)}
}

// FromSlot decodes a raw protocol slot. An empty slot decodes to nil.
func FromSlot(raw ns.Slot) (*Stack, error) {
	if raw.IsEmpty() {
		return nil, nil
	}
	is, err := items.FromSlot(raw)
	if err != nil {
		return nil, fmt.Errorf("decode slot: %w", err)
	}
	return FromItemStack(is), nil
}

// MaterialName returns the registry name of the stack's material.
func (s *Stack) MaterialName() string {
	if s == nil {
		return "minecraft:air"
	}
	return items.ItemName(s.ID)
}

// IsEmpty reports whether the stack renders as an empty slot.
func (s *Stack) IsEmpty() bool {
	return s == nil || s.Count <= 0
}

// Clone returns a deep copy.
func (s *Stack) Clone() *Stack {
	if s == nil {
		return nil
	}
	c := *s
	c.Lore = slices.Clone(s.Lore)
	c.Enchantments = maps.Clone(s.Enchantments)
	c.Tags = maps.Clone(s.Tags)
	if s.Color != nil {
		col := *s.Color
		c.Color = &col
	}
	return &c
}

// Equal reports whether a and b render identically. Nil and empty stacks
// are equal to each other.
func Equal(a, b *Stack) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	if a.ID != b.ID || a.Count != b.Count || a.Name != b.Name || a.Flags != b.Flags {
		return false
	}
	if !slices.Equal(a.Lore, b.Lore) || !maps.Equal(a.Enchantments, b.Enchantments) {
		return false
	}
	if !ptrEqual(a.Color, b.Color) {
		return false
	}
	return maps.EqualFunc(a.Tags, b.Tags, Tag.equal)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
