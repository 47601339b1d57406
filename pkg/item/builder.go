// Package item builds the stacks shown in GUIs. Operations that depend on
// host features missing from the detected capabilities do nothing.
package item

import (
	"strings"

	"github.com/go-mclib/guikit/pkg/compat"
	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/stack"
	"github.com/go-mclib/guikit/pkg/text"
)

// MaxAmount is the largest stack size a client renders.
const MaxAmount = 99

// Builder edits a copy of a stack.
type Builder struct {
	caps  compat.Capabilities
	stack *stack.Stack

	name *text.Component
	lore []text.Component
}

// New starts from a copy of s. A nil or empty s becomes a single item.
func New(caps compat.Capabilities, s *stack.Stack) *Builder {
	c := s.Clone()
	if c == nil {
		c = &stack.Stack{Count: 1}
	}
	if c.Count <= 0 {
		c.Count = 1
	}
	return &Builder{caps: caps, stack: c}
}

// Of starts from one item of the named material.
func Of(caps compat.Capabilities, material string) (*Builder, error) {
	s, err := stack.Of(material, 1)
	if err != nil {
		return nil, err
	}
	return New(caps, s), nil
}

// Name sets the display name. Item names are not italic unless the
// component says so.
func (b *Builder) Name(c text.Component) *Builder {
	b.name = &c
	b.stack.Name = b.render(c)
	return b
}

// Lore replaces the description lines.
func (b *Builder) Lore(lines ...text.Component) *Builder {
	b.lore = append([]text.Component(nil), lines...)
	b.renderLore()
	return b
}

// AddLore appends description lines.
func (b *Builder) AddLore(lines ...text.Component) *Builder {
	b.lore = append(b.lore, lines...)
	b.renderLore()
	return b
}

func (b *Builder) renderLore() {
	if len(b.lore) == 0 {
		b.stack.Lore = nil
		return
	}
	b.stack.Lore = make([]string, len(b.lore))
	for i, l := range b.lore {
		b.stack.Lore[i] = b.render(l)
	}
}

// render serializes c as JSON when the host takes rich text and as
// legacy section-sign text otherwise.
func (b *Builder) render(c text.Component) string {
	c = c.WithFallbackItalic(false)
	if b.caps.RichText {
		return c.JSON()
	}
	if !b.caps.HexColors {
		c = downgradeHex(c)
	}
	return c.Legacy()
}

// downgradeHex drops #rrggbb colours the host cannot show.
func downgradeHex(c text.Component) text.Component {
	if strings.HasPrefix(c.Color, "#") {
		c.Color = ""
	}
	if len(c.Extra) > 0 {
		extra := make([]text.Component, len(c.Extra))
		for i, e := range c.Extra {
			extra[i] = downgradeHex(e)
		}
		c.Extra = extra
	}
	return c
}

// Amount sets the stack size, clamped to [1, MaxAmount].
func (b *Builder) Amount(n int32) *Builder {
	b.stack.Count = min(max(n, 1), MaxAmount)
	return b
}

func enchantKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.Contains(name, ":") {
		name = "minecraft:" + name
	}
	return name
}

// Enchant adds or replaces an enchantment. Levels below 1 remove it.
func (b *Builder) Enchant(name string, level int) *Builder {
	if level < 1 {
		return b.Disenchant(name)
	}
	if b.stack.Enchantments == nil {
		b.stack.Enchantments = make(map[string]int)
	}
	b.stack.Enchantments[enchantKey(name)] = level
	return b
}

// EnchantAll applies every enchantment in m.
func (b *Builder) EnchantAll(m map[string]int) *Builder {
	for name, level := range m {
		b.Enchant(name, level)
	}
	return b
}

func (b *Builder) Disenchant(name string) *Builder {
	delete(b.stack.Enchantments, enchantKey(name))
	if len(b.stack.Enchantments) == 0 {
		b.stack.Enchantments = nil
	}
	return b
}

// Flags hides tooltip parts.
func (b *Builder) Flags(flags ...stack.Flag) *Builder {
	for _, f := range flags {
		b.stack.Flags |= f
	}
	return b
}

// ClearFlags shows tooltip parts again.
func (b *Builder) ClearFlags(flags ...stack.Flag) *Builder {
	for _, f := range flags {
		b.stack.Flags &^= f
	}
	return b
}

// Glow adds the enchantment shimmer without showing an enchantment.
// Glow(false) removes every enchantment.
func (b *Builder) Glow(on bool) *Builder {
	if on {
		return b.Enchant("lure", 1).Flags(stack.HideEnchants)
	}
	b.stack.Enchantments = nil
	return b.ClearFlags(stack.HideEnchants)
}

// Color dyes leather armour. Other materials are left unchanged.
func (b *Builder) Color(c stack.Color) *Builder {
	if !strings.HasPrefix(b.stack.MaterialName(), "minecraft:leather_") {
		return b
	}
	b.stack.Color = &c
	return b
}

// SetNBT stores a custom value. v must be a string, bool or integer;
// other types are ignored. Without NBT support this does nothing.
func (b *Builder) SetNBT(key string, v any) *Builder {
	if !b.caps.NBT {
		return b
	}
	var tag stack.Tag
	switch v := v.(type) {
	case string:
		tag.String = &v
	case bool:
		tag.Bool = &v
	case int:
		i := int32(v)
		tag.Int = &i
	case int32:
		tag.Int = &v
	default:
		return b
	}
	if b.stack.Tags == nil {
		b.stack.Tags = make(map[string]stack.Tag)
	}
	b.stack.Tags[key] = tag
	return b
}

func (b *Builder) RemoveNBT(key string) *Builder {
	if !b.caps.NBT {
		return b
	}
	delete(b.stack.Tags, key)
	if len(b.stack.Tags) == 0 {
		b.stack.Tags = nil
	}
	return b
}

// NBT returns a custom value set with SetNBT.
func (b *Builder) NBT(key string) (stack.Tag, bool) {
	t, ok := b.stack.Tags[key]
	return t, ok
}

// NameComponent returns the name set with Name.
func (b *Builder) NameComponent() (text.Component, bool) {
	if b.name == nil {
		return text.Component{}, false
	}
	return *b.name, true
}

// LoreComponents returns a copy of the lore set with Lore and AddLore.
func (b *Builder) LoreComponents() []text.Component {
	return append([]text.Component(nil), b.lore...)
}

// Build returns a copy of the current stack.
func (b *Builder) Build() *stack.Stack { return b.stack.Clone() }

// AsGuiItem wraps the built stack for a window.
func (b *Builder) AsGuiItem(action gui.ClickAction) *gui.Item {
	return gui.NewItem(b.Build(), action)
}
