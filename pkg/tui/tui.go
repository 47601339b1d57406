// Package tui is a terminal inspector for GUIs running on the in-memory
// host: it draws the open window and the player inventory, sends clicks,
// drags and chat, and shows the plugin log.
package tui

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/stack"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View is what the viewer currently sees.
type View struct {
	Title string
	Cols  int
	Top   []*stack.Stack
	// Player uses inventory numbering: hotbar 0-8, main 9-35.
	Player []*stack.Stack
	Cursor *stack.Stack
}

// Session is the player the inspector acts as.
type Session interface {
	Name() string
	// View returns the open window, or false when nothing is open.
	View() (View, bool)
	Click(raw int, click gui.ClickType) error
	Drag(raws []int) error
	Close() error
	Chat(line string) error
	MaxLogLines() int
}

// TUI is the inspector model.
type TUI struct {
	session   Session
	viewport  viewport.Model
	textInput textinput.Model
	logs      []string
	logMutex  sync.Mutex
	ready     bool
	chatting  bool
	width     int
	height    int

	grid   grid
	view   View
	open   bool
	row    int
	col    int
	drag   []int
	status string
}

// New creates a new inspector for s.
func New(s Session) *TUI {
	ti := textinput.New()
	ti.Placeholder = "Type a message or /command..."
	ti.Blur() // grid has focus first
	ti.CharLimit = 256
	ti.Width = 50

	t := &TUI{
		session:   s,
		textInput: ti,
		logs:      []string{},
	}
	t.refresh()
	return t
}

// Init initializes the TUI
func (t *TUI) Init() tea.Cmd {
	return textinput.Blink
}

// refresh reloads the view and keeps the cursor inside the grid.
func (t *TUI) refresh() {
	t.view, t.open = t.session.View()
	t.grid = newGrid(t.view, t.open)
	t.row = min(t.row, len(t.grid.rows)-1)
	t.row = max(t.row, 0)
	if len(t.grid.rows) > 0 {
		t.col = min(t.col, len(t.grid.rows[t.row])-1)
	}
	if !t.open {
		t.drag = nil
	}
}

// Selected returns the raw view index under the cursor.
func (t *TUI) Selected() int {
	if len(t.grid.rows) == 0 {
		return gui.OutsideSlot
	}
	return t.grid.rows[t.row][t.col]
}

// Update handles TUI updates
func (t *TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return t, tea.Quit
		case tea.KeyTab:
			t.chatting = !t.chatting
			if t.chatting {
				t.textInput.Focus()
			} else {
				t.textInput.Blur()
			}
			return t, nil
		}
		if t.chatting {
			if msg.Type == tea.KeyEnter {
				t.sendChat()
				return t, nil
			}
			break
		}
		if msg.Type == tea.KeyEsc {
			return t, tea.Quit
		}
		t.handleGridKey(msg.String())
		return t, nil

	case tea.WindowSizeMsg:
		logHeight := max(msg.Height-t.gridHeight()-4, 3)
		if !t.ready {
			t.viewport = viewport.New(msg.Width, logHeight)
			t.viewport.SetContent(t.renderLogs())
			t.ready = true
		} else {
			t.viewport.Width = msg.Width
			t.viewport.Height = logHeight
		}
		t.width = msg.Width
		t.height = msg.Height
		t.textInput.Width = msg.Width - 2

	case LogMsg:
		t.AddLog(string(msg))
		t.refresh()
		if t.ready {
			// do not scroll if not at bottom, to prevent flickering
			wasAtBottom := t.viewport.AtBottom()
			t.viewport.SetContent(t.renderLogs())
			if wasAtBottom {
				t.viewport.GotoBottom()
			}
		}
		return t, nil
	}

	// update viewport
	if t.ready {
		t.viewport, cmd = t.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	// update text input (only while chatting)
	if t.chatting {
		t.textInput, cmd = t.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return t, tea.Batch(cmds...)
}

func (t *TUI) handleGridKey(key string) {
	switch key {
	case "up", "k":
		t.move(-1, 0)
	case "down", "j":
		t.move(1, 0)
	case "left", "h":
		t.move(0, -1)
	case "right", "l":
		t.move(0, 1)
	case "enter", " ":
		t.click(gui.ClickLeft)
	case "r":
		t.click(gui.ClickRight)
	case "s":
		t.click(gui.ClickShiftLeft)
	case "o":
		t.act("click outside", t.session.Click(gui.OutsideSlot, gui.ClickLeft))
	case "d":
		raw := t.Selected()
		if i := slices.Index(t.drag, raw); i >= 0 {
			t.drag = slices.Delete(t.drag, i, i+1)
		} else {
			t.drag = append(t.drag, raw)
		}
		t.status = fmt.Sprintf("drag over %v", t.drag)
	case "g":
		if len(t.drag) > 0 {
			raws := t.drag
			t.drag = nil
			t.act(fmt.Sprintf("drag %v", raws), t.session.Drag(raws))
		}
	case "x":
		t.act("close", t.session.Close())
	}
}

func (t *TUI) move(dr, dc int) {
	if len(t.grid.rows) == 0 {
		return
	}
	t.row = min(max(t.row+dr, 0), len(t.grid.rows)-1)
	t.col = min(max(t.col+dc, 0), len(t.grid.rows[t.row])-1)
	t.status = describe(t.grid.stack(t.view, t.Selected()))
}

func (t *TUI) click(c gui.ClickType) {
	if !t.open {
		return
	}
	raw := t.Selected()
	t.act(fmt.Sprintf("click %d", raw), t.session.Click(raw, c))
}

func (t *TUI) act(what string, err error) {
	if err != nil {
		t.status = fmt.Sprintf("%s: %v", what, err)
		t.AddLog(t.status)
	} else {
		t.status = what
	}
	t.refresh()
}

func (t *TUI) sendChat() {
	input := strings.TrimSpace(t.textInput.Value())
	if input == "" {
		return
	}
	if err := t.session.Chat(input); err != nil {
		t.AddLog(fmt.Sprintf("Error sending message: %v", err))
	} else {
		t.AddLog(fmt.Sprintf("chat > %s", input))
	}
	t.textInput.SetValue("")
	t.refresh()
}

func (t *TUI) gridHeight() int {
	return len(t.grid.rows) + 2
}

// View renders the TUI
func (t *TUI) View() string {
	if !t.ready {
		return "Initializing..."
	}

	title := "nothing open"
	if t.open {
		title = t.view.Title
	}
	header := titleStyle.Render(fmt.Sprintf("GUI Inspector - %s: %s", t.session.Name(), title))

	help := "arrows: move • enter/r/s: click • d/g: drag • o: outside • x: close • tab: chat • esc: quit"
	if t.chatting {
		help = "enter: send • tab: back to grid • ctrl+c: quit"
	}

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s\n%s\n%s",
		header,
		t.grid.render(t.view, t.Selected(), t.drag),
		helpStyle.Render(t.status),
		t.viewport.View(),
		inputStyle.Render("> "+t.textInput.View()),
		helpStyle.Render(help),
	)
}

// AddLog adds a log message to the TUI
func (t *TUI) AddLog(msg string) {
	t.logMutex.Lock()
	defer t.logMutex.Unlock()
	t.logs = append(t.logs, msg)

	// trim logs
	maxLines := t.session.MaxLogLines()
	if maxLines > 0 && len(t.logs) > maxLines {
		t.logs = t.logs[len(t.logs)-maxLines:]
	}
}

func (t *TUI) renderLogs() string {
	t.logMutex.Lock()
	defer t.logMutex.Unlock()
	return strings.Join(t.logs, "\n")
}

// LogMsg is a message type for logging
type LogMsg string

// Writer is an io.Writer that sends output to the TUI. Lines are queued
// and forwarded from their own goroutine, so writing from inside Update
// does not block the event loop.
type Writer struct {
	program *tea.Program
	lines   chan string
	once    sync.Once
}

// NewWriter creates a new TUI Writer
func NewWriter(program *tea.Program) *Writer {
	return &Writer{program: program, lines: make(chan string, 1024)}
}

// Write implements io.Writer
func (w *Writer) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg == "" {
		return len(p), nil
	}
	w.once.Do(func() {
		go func() {
			for line := range w.lines {
				w.program.Send(LogMsg(line))
			}
		}()
	})
	w.lines <- msg
	return len(p), nil
}

// Start creates a new TUI program, returning the program and a writer for logging
func Start(s Session) (*tea.Program, io.Writer) {
	t := New(s)
	p := tea.NewProgram(t, tea.WithAltScreen())
	writer := NewWriter(p)
	return p, writer
}
