package text

import (
	"fmt"
	"strings"
)

const (
	// SectionChar is the formatting prefix understood by clients.
	SectionChar = '§'
	// AmpersandChar is the prefix used in configuration files.
	AmpersandChar = '&'
)

var legacyColors = []string{
	"black", "dark_blue", "dark_green", "dark_aqua",
	"dark_red", "dark_purple", "gold", "gray",
	"dark_gray", "blue", "green", "aqua",
	"red", "light_purple", "yellow", "white",
}

const hexDigits = "0123456789abcdef"

func colorForCode(code rune) (string, bool) {
	i := strings.IndexRune(hexDigits, code)
	if i < 0 {
		return "", false
	}
	return legacyColors[i], true
}

func codeForColor(color string) (rune, bool) {
	for i, name := range legacyColors {
		if name == color {
			return rune(hexDigits[i]), true
		}
	}
	return 0, false
}

type legacyStyle struct {
	color                            string
	bold, italic, under, strike, obf bool
}

func (s legacyStyle) component(text string) Component {
	c := Component{Text: text, Color: s.color}
	if s.bold {
		c.Bold = boolp(true)
	}
	if s.italic {
		c.Italic = boolp(true)
	}
	if s.under {
		c.Underlined = boolp(true)
	}
	if s.strike {
		c.Strikethrough = boolp(true)
	}
	if s.obf {
		c.Obfuscated = boolp(true)
	}
	return c
}

// ParseLegacy reads text with & or § codes. Hex colours use the repeated
// form &x&r&r&g&g&b&b. A colour code resets decorations, as clients do.
func ParseLegacy(s string) Component {
	runes := []rune(s)
	var (
		parts []Component
		style legacyStyle
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		parts = append(parts, style.component(buf.String()))
		buf.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if (r != SectionChar && r != AmpersandChar) || i+1 >= len(runes) {
			buf.WriteRune(r)
			continue
		}
		code := toLower(runes[i+1])

		if code == 'x' {
			if hex, ok := readRepeatedHex(runes, i+2); ok {
				flush()
				style = legacyStyle{color: "#" + hex}
				i += 1 + 12
				continue
			}
		}
		if color, ok := colorForCode(code); ok {
			flush()
			style = legacyStyle{color: color}
			i++
			continue
		}
		switch code {
		case 'l', 'o', 'n', 'm', 'k', 'r':
			flush()
			switch code {
			case 'l':
				style.bold = true
			case 'o':
				style.italic = true
			case 'n':
				style.under = true
			case 'm':
				style.strike = true
			case 'k':
				style.obf = true
			case 'r':
				style = legacyStyle{}
			}
			i++
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	switch len(parts) {
	case 0:
		return Component{}
	case 1:
		return parts[0]
	default:
		return Component{Extra: parts}
	}
}

// readRepeatedHex reads six "&d" pairs starting at runes[i].
func readRepeatedHex(runes []rune, i int) (string, bool) {
	if i+12 > len(runes) {
		return "", false
	}
	var sb strings.Builder
	for j := 0; j < 6; j++ {
		p, d := runes[i+2*j], toLower(runes[i+2*j+1])
		if (p != SectionChar && p != AmpersandChar) || !strings.ContainsRune(hexDigits, d) {
			return "", false
		}
		sb.WriteRune(d)
	}
	return sb.String(), true
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Legacy renders the component with § codes. Hex colours are written in
// the repeated form; children inherit their parent's style.
func (c Component) Legacy() string {
	var sb strings.Builder
	c.writeLegacy(&sb, legacyStyle{})
	return sb.String()
}

func (c Component) writeLegacy(sb *strings.Builder, parent legacyStyle) {
	st := parent
	if c.Color != "" {
		st = legacyStyle{color: c.Color}
		st.bold, st.italic, st.under, st.strike, st.obf = parent.bold, parent.italic, parent.under, parent.strike, parent.obf
	}
	st.bold = override(st.bold, c.Bold)
	st.italic = override(st.italic, c.Italic)
	st.under = override(st.under, c.Underlined)
	st.strike = override(st.strike, c.Strikethrough)
	st.obf = override(st.obf, c.Obfuscated)

	if c.Text != "" {
		writeStyle(sb, st)
		sb.WriteString(c.Text)
	}
	for _, e := range c.Extra {
		e.writeLegacy(sb, st)
	}
}

func override(v bool, p *bool) bool {
	if p == nil {
		return v
	}
	return *p
}

func writeStyle(sb *strings.Builder, st legacyStyle) {
	switch {
	case strings.HasPrefix(st.color, "#") && len(st.color) == 7:
		sb.WriteRune(SectionChar)
		sb.WriteRune('x')
		for _, d := range strings.ToLower(st.color[1:]) {
			sb.WriteRune(SectionChar)
			sb.WriteRune(d)
		}
	case st.color != "":
		if code, ok := codeForColor(st.color); ok {
			sb.WriteRune(SectionChar)
			sb.WriteRune(code)
		}
	case sb.Len() > 0:
		sb.WriteRune(SectionChar)
		sb.WriteRune('r')
	}
	for _, d := range []struct {
		on   bool
		code rune
	}{{st.bold, 'l'}, {st.italic, 'o'}, {st.under, 'n'}, {st.strike, 'm'}, {st.obf, 'k'}} {
		if d.on {
			sb.WriteRune(SectionChar)
			sb.WriteRune(d.code)
		}
	}
}

// HexColor formats r, g, b as #rrggbb.
func HexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
