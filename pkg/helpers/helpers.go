// Package helpers wires a plugin onto the in-memory host for the example
// programs: flags, config, page store, and a session to drive GUIs from the
// terminal.
package helpers

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-mclib/guikit/memory"
	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/plugin"
	"github.com/go-mclib/guikit/pkg/prompt"
	"github.com/go-mclib/guikit/pkg/stack"
	"github.com/go-mclib/guikit/pkg/store"
	"github.com/go-mclib/guikit/pkg/store/sqlite"
	"github.com/go-mclib/guikit/pkg/text"
	"github.com/go-mclib/guikit/pkg/tui"
)

// Flags holds common CLI flags for example plugins. Set flags override
// plugin.yaml and the environment.
type Flags struct {
	ConfigDir   string
	Player      string
	Version     string
	Store       string
	StorePath   string
	Verbose     bool
	Interactive bool
	LogLines    int
}

// RegisterFlags registers the standard CLI flags on the default flag set.
func RegisterFlags(f *Flags) {
	flag.StringVar(&f.ConfigDir, "c", ".", "directory holding plugin.yaml")
	flag.StringVar(&f.Player, "p", "Steve", "name of the player to act as")
	flag.StringVar(&f.Version, "version", "", "server version the host reports (overrides config)")
	flag.StringVar(&f.Store, "store", "", "page store: memory or sqlite (overrides config)")
	flag.StringVar(&f.StorePath, "db", "", "sqlite database path (overrides config)")
	flag.BoolVar(&f.Verbose, "v", false, "verbose logging")
	flag.BoolVar(&f.Interactive, "i", false, "open the terminal inspector")
	flag.IntVar(&f.LogLines, "log-lines", 500, "log lines kept by the inspector")
}

// Config loads the plugin config from f.ConfigDir and applies the flags.
func (f Flags) Config() (plugin.Config, error) {
	cfg, err := plugin.LoadConfig(f.ConfigDir)
	if err != nil {
		return plugin.Config{}, err
	}
	if f.Version != "" {
		cfg.ServerVersion = f.Version
	}
	if f.Store != "" {
		cfg.Store = strings.ToLower(f.Store)
	}
	if f.StorePath != "" {
		cfg.StorePath = f.StorePath
	}
	cfg.Verbose = cfg.Verbose || f.Verbose
	return cfg, nil
}

// NewPlugin creates a plugin on a fresh in-memory host with the prompt
// module registered.
func NewPlugin(name string, f Flags) (*plugin.Plugin, *memory.Host, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, nil, err
	}
	host := memory.NewHost(cfg.ServerVersion)
	p := plugin.New(name, host, cfg)
	host.SetDispatcher(p.HandleEvent)
	p.Register(prompt.New())
	return p, host, nil
}

// OpenStore opens the page store cfg selects. The returned func closes it.
func OpenStore(cfg plugin.Config) (store.PageStore, func() error, error) {
	switch cfg.Store {
	case "sqlite":
		s, err := sqlite.Open(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "memory", "":
		return store.NewMemoryStore(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Session is a player on the in-memory host. It satisfies tui.Session.
type Session struct {
	Plugin   *plugin.Plugin
	Host     *memory.Host
	Player   *memory.Player
	LogLines int
}

var _ tui.Session = (*Session)(nil)

// NewSession creates a session for a new player called name.
func NewSession(p *plugin.Plugin, host *memory.Host, name string) *Session {
	return &Session{Plugin: p, Host: host, Player: memory.NewPlayer(name), LogLines: 500}
}

func (s *Session) Name() string     { return s.Player.Name() }
func (s *Session) MaxLogLines() int { return s.LogLines }

// View returns what the player currently sees.
func (s *Session) View() (tui.View, bool) {
	h, open := s.Host.OpenInventory(s.Player)
	if !open {
		return tui.View{}, false
	}
	player := make([]*stack.Stack, gui.PlayerInvSlots)
	for i := range player {
		player[i] = s.Host.PlayerSlot(s.Player, i)
	}
	return tui.View{
		Title:  text.Plain(s.Host.Title(h)),
		Cols:   s.Host.Menu(h).Columns(),
		Top:    s.Host.Contents(h),
		Player: player,
		Cursor: s.Host.Cursor(s.Player),
	}, true
}

// Click clicks a raw view slot, or outside the window for gui.OutsideSlot.
func (s *Session) Click(raw int, click gui.ClickType) error {
	ctx := context.Background()
	if raw == gui.OutsideSlot {
		_, err := s.Host.ClickOutside(ctx, s.Player)
		return err
	}
	_, err := s.Host.Click(ctx, s.Player, raw, click)
	return err
}

// Drag spreads the cursor over raw view slots.
func (s *Session) Drag(raws []int) error {
	_, err := s.Host.Drag(context.Background(), s.Player, raws)
	return err
}

// Close closes the open window.
func (s *Session) Close() error {
	return s.Host.Close(context.Background(), s.Player)
}

// Chat sends a chat line. Unhandled lines are echoed back as server chat.
func (s *Session) Chat(line string) error {
	if !s.Plugin.HandleChat(context.Background(), s.Player, line) {
		s.Plugin.Logger.Printf("<%s> %s", s.Player.Name(), line)
	}
	return nil
}

// Run enables the plugin and drives the session until the inspector quits
// or, without -i, until stdin is exhausted. The plugin is disabled on exit.
func Run(ctx context.Context, s *Session, f Flags) error {
	p := s.Plugin
	s.LogLines = f.LogLines

	var program *tea.Program
	if f.Interactive {
		prog, writer := tui.Start(s)
		program = prog
		p.SetLogger(log.New(writer, "", log.LstdFlags))
	}
	s.Player.OnMessage(func(msg string) {
		p.Logger.Printf("[to %s] %s", s.Player.Name(), text.Plain(msg))
	})

	if program == nil {
		if err := p.Enable(ctx); err != nil {
			return err
		}
		return errors.Join(RunScript(ctx, s, os.Stdin, os.Stdout), p.Disable(ctx))
	}

	tuiDone := make(chan error, 1)
	go func() {
		_, err := program.Run()
		tuiDone <- err
	}()
	if err := p.Enable(ctx); err != nil {
		program.Quit()
		<-tuiDone
		return err
	}

	var runErr error
	select {
	case runErr = <-tuiDone:
	case <-ctx.Done():
		program.Quit()
		<-tuiDone
		runErr = ctx.Err()
	}
	return errors.Join(runErr, p.Disable(context.WithoutCancel(ctx)))
}

// RunScript reads lines from r. Lines starting with ':' drive the
// session (":click 12 [right|shift]", ":drag 10 11 12", ":outside",
// ":close", ":show"); anything else is chat.
func RunScript(ctx context.Context, s *Session, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			_ = s.Chat(line)
			continue
		}
		if err := runCommand(s, strings.Fields(line[1:]), w); err != nil {
			fmt.Fprintf(w, "%s: %v\n", line, err)
		}
	}
	return sc.Err()
}

func runCommand(s *Session, fields []string, w io.Writer) error {
	if len(fields) == 0 {
		return errors.New("empty command")
	}
	switch fields[0] {
	case "click":
		if len(fields) < 2 {
			return errors.New("usage: :click <slot> [right|shift]")
		}
		raw, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		click := gui.ClickLeft
		if len(fields) > 2 {
			switch fields[2] {
			case "right":
				click = gui.ClickRight
			case "shift":
				click = gui.ClickShiftLeft
			default:
				return fmt.Errorf("unknown click %q", fields[2])
			}
		}
		return s.Click(raw, click)
	case "drag":
		raws := make([]int, 0, len(fields)-1)
		for _, f := range fields[1:] {
			raw, err := strconv.Atoi(f)
			if err != nil {
				return err
			}
			raws = append(raws, raw)
		}
		return s.Drag(raws)
	case "outside":
		return s.Click(gui.OutsideSlot, gui.ClickLeft)
	case "close":
		return s.Close()
	case "show":
		v, open := s.View()
		if !open {
			fmt.Fprintln(w, "nothing open")
			return nil
		}
		fmt.Fprintf(w, "%s\n", v.Title)
		for i, st := range v.Top {
			if !st.IsEmpty() {
				fmt.Fprintf(w, "  %2d: %dx %s %s\n", i, st.Count, st.MaterialName(), text.Plain(st.Name))
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}
