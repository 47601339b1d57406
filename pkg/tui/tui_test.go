package tui

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/stack"
)

type fakeSession struct {
	view   View
	open   bool
	clicks []int
	types  []gui.ClickType
	drags  [][]int
	chat   []string
	closed bool
}

func (f *fakeSession) Name() string       { return "steve" }
func (f *fakeSession) View() (View, bool) { return f.view, f.open }
func (f *fakeSession) MaxLogLines() int   { return 3 }

func (f *fakeSession) Click(raw int, c gui.ClickType) error {
	f.clicks = append(f.clicks, raw)
	f.types = append(f.types, c)
	return nil
}

func (f *fakeSession) Drag(raws []int) error {
	f.drags = append(f.drags, raws)
	return nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	f.open = false
	return nil
}

func (f *fakeSession) Chat(line string) error {
	f.chat = append(f.chat, line)
	return nil
}

func newSession() *fakeSession {
	top := make([]*stack.Stack, 9)
	top[4] = stack.MustOf("diamond", 3)
	return &fakeSession{
		view: View{Title: "Shop", Cols: 9, Top: top, Player: make([]*stack.Stack, 36)},
		open: true,
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGridLayout(t *testing.T) {
	s := newSession()
	g := newGrid(s.view, true)

	// one top row, three main rows, hotbar
	if len(g.rows) != 5 || g.topRows != 1 {
		t.Fatalf("rows = %d, topRows = %d", len(g.rows), g.topRows)
	}
	if g.rows[1][0] != 9 || g.rows[4][0] != 9+27 {
		t.Errorf("first main raw = %d, first hotbar raw = %d", g.rows[1][0], g.rows[4][0])
	}
	if got := g.stack(s.view, 4); got.MaterialName() != "minecraft:diamond" {
		t.Errorf("stack(4) = %v", got)
	}
	if len(newGrid(s.view, false).rows) != 0 {
		t.Error("grid without an open window has rows")
	}
}

func TestKeysDriveSession(t *testing.T) {
	s := newSession()
	m := New(s)

	for _, k := range []string{"right", "right", "enter", "s", "down", "r", "o"} {
		m.Update(key(k))
	}
	if !slices.Equal(s.clicks, []int{2, 2, 11, gui.OutsideSlot}) {
		t.Errorf("clicks = %v", s.clicks)
	}
	if !slices.Equal(s.types, []gui.ClickType{gui.ClickLeft, gui.ClickShiftLeft, gui.ClickRight, gui.ClickLeft}) {
		t.Errorf("click types = %v", s.types)
	}

	m.Update(key("d"))
	m.Update(key("right"))
	m.Update(key("d"))
	m.Update(key("g"))
	if len(s.drags) != 1 || !slices.Equal(s.drags[0], []int{11, 12}) {
		t.Errorf("drags = %v", s.drags)
	}

	m.Update(key("x"))
	if !s.closed || m.Selected() != gui.OutsideSlot {
		t.Error("close did not reset the grid")
	}
}

func TestChatInput(t *testing.T) {
	s := newSession()
	m := New(s)

	m.Update(key("tab"))
	m.Update(key("/shop"))
	m.Update(key("enter"))
	if !slices.Equal(s.chat, []string{"/shop"}) {
		t.Errorf("chat = %v", s.chat)
	}

	// grid keys are plain text while chatting
	m.Update(key("x"))
	if s.closed {
		t.Error("x closed the window while chatting")
	}
}

func TestLogTrim(t *testing.T) {
	m := New(newSession())
	for _, l := range []string{"a", "b", "c", "d"} {
		m.Update(LogMsg(l))
	}
	if got := m.renderLogs(); got != "b\nc\nd" {
		t.Errorf("logs = %q", got)
	}
}

func TestDescribe(t *testing.T) {
	s := stack.MustOf("diamond_sword", 1)
	s.Name = `{"text":"Blade"}`
	s.Lore = []string{"a", "b"}
	if got := describe(s); !strings.Contains(got, `"Blade"`) || !strings.Contains(got, "2 lore") {
		t.Errorf("describe() = %q", got)
	}
	if describe(nil) != "empty" {
		t.Error("describe(nil) != empty")
	}
}
