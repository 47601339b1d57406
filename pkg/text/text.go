// Package text builds chat/item text components and converts between the
// JSON form and the legacy section-sign format used by older hosts.
package text

import (
	"encoding/json"
	"strings"

	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

// Component is a JSON text component. Nil style pointers mean "inherit".
type Component struct {
	Text          string      `json:"text"`
	Color         string      `json:"color,omitempty"`
	Bold          *bool       `json:"bold,omitempty"`
	Italic        *bool       `json:"italic,omitempty"`
	Underlined    *bool       `json:"underlined,omitempty"`
	Strikethrough *bool       `json:"strikethrough,omitempty"`
	Obfuscated    *bool       `json:"obfuscated,omitempty"`
	Extra         []Component `json:"extra,omitempty"`
}

// Text returns an unstyled component.
func Text(s string) Component {
	return Component{Text: s}
}

// Colored returns a component with a named or #rrggbb colour.
func Colored(s, color string) Component {
	return Component{Text: s, Color: color}
}

// Append adds children and returns the component.
func (c Component) Append(children ...Component) Component {
	c.Extra = append(append([]Component(nil), c.Extra...), children...)
	return c
}

// WithFallbackItalic sets italic on the root when it is not set explicitly.
// Item names and lore render italic by default; menus pass false.
func (c Component) WithFallbackItalic(italic bool) Component {
	if c.Italic == nil {
		c.Italic = &italic
	}
	return c
}

// JSON serializes the component.
func (c Component) JSON() string {
	b, err := json.Marshal(c)
	if err != nil {
		// only plain strings and bools are marshalled
		return `{"text":""}`
	}
	return string(b)
}

// String returns the plain text with styles dropped.
func (c Component) String() string {
	var sb strings.Builder
	c.writePlain(&sb)
	return sb.String()
}

func (c Component) writePlain(sb *strings.Builder) {
	sb.WriteString(c.Text)
	for _, e := range c.Extra {
		e.writePlain(sb)
	}
}

// Decode parses a serialized JSON component. Input that is not JSON is
// read as legacy text.
func Decode(s string) Component {
	var c Component
	if strings.HasPrefix(strings.TrimSpace(s), "{") && json.Unmarshal([]byte(s), &c) == nil {
		return c
	}
	return ParseLegacy(s)
}

// Plain converts a serialized component (JSON or legacy) to plain text
// using the protocol's own component decoder.
func Plain(s string) string {
	var tc ns.TextComponent
	if json.Unmarshal([]byte(s), &tc) == nil {
		return tc.String()
	}
	return ParseLegacy(s).String()
}

func boolp(b bool) *bool { return &b }
