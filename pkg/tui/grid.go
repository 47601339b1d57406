package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/stack"
	"github.com/go-mclib/guikit/pkg/text"
)

var (
	cellStyle     = lipgloss.NewStyle().Width(6).Foreground(lipgloss.Color("252"))
	emptyStyle    = cellStyle.Foreground(lipgloss.Color("238"))
	selectedStyle = cellStyle.Reverse(true)
	dragStyle     = cellStyle.Foreground(lipgloss.Color("214"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// grid lays out raw view indices the way the client draws them: the top
// inventory, then the main player inventory, then the hotbar.
type grid struct {
	rows    [][]int
	topRows int
	topSize int
}

func newGrid(v View, open bool) grid {
	if !open {
		return grid{}
	}
	g := grid{topSize: len(v.Top)}
	cols := max(v.Cols, 1)
	for start := 0; start < len(v.Top); start += cols {
		g.rows = append(g.rows, rawRange(start, min(start+cols, len(v.Top))))
		g.topRows++
	}
	for r := range gui.PlayerMainSize / gui.ChestColumns {
		start := g.topSize + r*gui.ChestColumns
		g.rows = append(g.rows, rawRange(start, start+gui.ChestColumns))
	}
	hotbar := g.topSize + gui.PlayerMainSize
	g.rows = append(g.rows, rawRange(hotbar, hotbar+gui.ChestColumns))
	return g
}

func rawRange(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

// stack returns what is shown at raw.
func (g grid) stack(v View, raw int) *stack.Stack {
	region, slot := gui.ResolveViewSlot(raw, g.topSize)
	switch region {
	case gui.RegionTop:
		return v.Top[slot]
	case gui.RegionPlayer:
		if slot < len(v.Player) {
			return v.Player[slot]
		}
	}
	return nil
}

func (g grid) render(v View, selected int, drag []int) string {
	if len(g.rows) == 0 {
		return labelStyle.Render("(no window open)")
	}

	var sb strings.Builder
	for i, row := range g.rows {
		if i == g.topRows {
			sb.WriteString(labelStyle.Render("-- inventory --"))
			sb.WriteByte('\n')
		}
		if i == len(g.rows)-1 {
			sb.WriteString(labelStyle.Render("-- hotbar --"))
			sb.WriteByte('\n')
		}
		cells := make([]string, 0, len(row))
		for _, raw := range row {
			s := g.stack(v, raw)
			style := cellStyle
			switch {
			case raw == selected:
				style = selectedStyle
			case slices.Contains(drag, raw):
				style = dragStyle
			case s.IsEmpty():
				style = emptyStyle
			}
			cells = append(cells, style.Render(cell(s)))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		sb.WriteByte('\n')
	}
	sb.WriteString(labelStyle.Render("cursor: " + describe(v.Cursor)))
	return sb.String()
}

// cell is a short label: the first letters of the material and the count.
func cell(s *stack.Stack) string {
	if s.IsEmpty() {
		return "  .  "
	}
	name := strings.TrimPrefix(s.MaterialName(), "minecraft:")
	if len(name) > 3 {
		name = name[:3]
	}
	return fmt.Sprintf("%-3s%2d", name, s.Count)
}

// describe is the status line for a stack.
func describe(s *stack.Stack) string {
	if s.IsEmpty() {
		return "empty"
	}
	out := fmt.Sprintf("%dx %s", s.Count, strings.TrimPrefix(s.MaterialName(), "minecraft:"))
	if s.Name != "" {
		out += fmt.Sprintf(" %q", text.Plain(s.Name))
	}
	if n := len(s.Lore); n > 0 {
		out += fmt.Sprintf(" (%d lore)", n)
	}
	return out
}
