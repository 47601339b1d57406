package lootables

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-mclib/guikit/pkg/entity"
	"github.com/go-mclib/guikit/pkg/gui"
	"github.com/go-mclib/guikit/pkg/item"
	"github.com/go-mclib/guikit/pkg/plugin"
	"github.com/go-mclib/guikit/pkg/prompt"
	"github.com/go-mclib/guikit/pkg/stack"
	"github.com/go-mclib/guikit/pkg/text"
)

// Editor slots.
const (
	SlotBack   = 0
	SlotList   = 2
	SlotAdd    = 4
	SlotRemove = 6
)

// ListSource is a string list property edited by a ListEditor.
type ListSource interface {
	Lines() []string
	SetLines(lines []string)
	// Validate turns typed input into a list entry or rejects it.
	Validate(line string) (string, error)
}

// Opener is a window the editor returns to.
type Opener interface {
	Open(ctx context.Context, v gui.Viewer) error
}

// ListEditor is a one-row menu showing a list with buttons to add an
// entry through chat and to remove the last one.
type ListEditor struct {
	*gui.Gui

	plugin *plugin.Plugin
	prompt *prompt.Module
	src    ListSource
	back   Opener
}

// NewListEditor builds an editor over src. back may be nil, in which case
// the back button closes the menu. The prompt module must be registered.
func NewListEditor(p *plugin.Plugin, title string, src ListSource, back Opener) (*ListEditor, error) {
	pm := prompt.From(p)
	if pm == nil {
		return nil, errors.New("lootables: prompt module not registered")
	}

	e := &ListEditor{
		Gui:    gui.New(p.Router, 1, title),
		plugin: p,
		prompt: pm,
		src:    src,
		back:   back,
	}
	e.DisableAllInteractions()

	buttons := []struct {
		slot     int
		material string
		name     text.Component
		action   gui.ClickAction
	}{
		{SlotBack, "oak_door", text.Colored("Back", "gray"), e.goBack},
		{SlotAdd, "lime_dye", text.Colored("Add entry", "green"), e.add},
		{SlotRemove, "red_dye", text.Colored("Remove last entry", "red"), e.removeLast},
	}
	for _, b := range buttons {
		ib, err := item.Of(p.Capabilities, b.material)
		if err != nil {
			return nil, fmt.Errorf("lootables: %w", err)
		}
		if err := e.SetItem(b.slot, ib.Name(b.name).AsGuiItem(b.action)); err != nil {
			return nil, err
		}
	}
	e.refresh()
	return e, nil
}

// refresh rebuilds the list item and redraws the menu.
func (e *ListEditor) refresh() {
	lines := e.src.Lines()
	lore := make([]text.Component, 0, len(lines)+1)
	if len(lines) == 0 {
		lore = append(lore, text.Colored("(empty)", "dark_gray"))
	}
	for _, l := range lines {
		lore = append(lore, text.Text("- ").Append(text.ParseLegacy(l)))
	}

	b, err := item.Of(e.plugin.Capabilities, "writable_book")
	if err != nil {
		b = item.New(e.plugin.Capabilities, &stack.Stack{Count: 1})
	}
	b.Name(text.Colored("Entries", "gold")).Lore(lore...)
	_ = e.SetItem(SlotList, b.AsGuiItem(nil))
	e.Update()
}

func (e *ListEditor) goBack(ev *gui.ClickEvent) error {
	if e.back != nil {
		return e.back.Open(context.Background(), ev.Viewer())
	}
	return e.Close(context.Background(), ev.Viewer(), true)
}

func (e *ListEditor) add(ev *gui.ClickEvent) error {
	v := ev.Viewer()
	if err := e.Close(context.Background(), v, false); err != nil {
		return err
	}
	e.prompt.Ask(v, "Type the entry to add.", func(ctx context.Context, v gui.Viewer, line string) error {
		entry, err := e.src.Validate(line)
		if err != nil {
			return err
		}
		e.src.SetLines(append(e.src.Lines(), entry))
		e.refresh()
		return e.Open(ctx, v)
	}).OnCancel(func() {
		_ = e.Open(context.Background(), v)
	})
	return nil
}

func (e *ListEditor) removeLast(*gui.ClickEvent) error {
	lines := e.src.Lines()
	if len(lines) == 0 {
		return nil
	}
	e.src.SetLines(lines[:len(lines)-1])
	e.refresh()
	return nil
}

type loreSource struct{ loot *Loot }

func (s loreSource) Lines() []string         { return slices.Clone(s.loot.Lore) }
func (s loreSource) SetLines(lines []string) { s.loot.Lore = lines }

func (s loreSource) Validate(line string) (string, error) {
	return strings.TrimSpace(line), nil
}

// NewLoreEditor edits the lore lines of loot.
func NewLoreEditor(p *plugin.Plugin, loot *Loot, back Opener) (*ListEditor, error) {
	return NewListEditor(p, "Lore Editor", loreSource{loot}, back)
}

type entitySource struct{ loot *Loot }

func (s entitySource) Lines() []string         { return slices.Clone(s.loot.OnlyDropFor) }
func (s entitySource) SetLines(lines []string) { s.loot.OnlyDropFor = lines }

func (s entitySource) Validate(line string) (string, error) {
	t := entity.Normalize(line)
	if entity.Valid(t) {
		return t, nil
	}
	if near := entity.Suggest(line, 3); len(near) > 0 {
		return "", fmt.Errorf("unknown entity type %q, did you mean %s?", line, strings.Join(near, ", "))
	}
	return "", fmt.Errorf("unknown entity type %q", line)
}

// NewEntityEditor edits the entity types loot is limited to.
func NewEntityEditor(p *plugin.Plugin, loot *Loot, back Opener) (*ListEditor, error) {
	return NewListEditor(p, "Entity Editor", entitySource{loot}, back)
}
