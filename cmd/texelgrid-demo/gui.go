// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelgrid-demo/gui.go
// Summary: Builds the demo containers: a paged gem list beside a sword scrollbar.
// Usage: buildGUI(host, cfg, notify) then gui.main.Open(viewer).

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgrid/config"
	"github.com/framegrace/texelgrid/grid"
	"github.com/framegrace/texelgrid/grid/component"
	"github.com/framegrace/texelgrid/grid/itembuilder"
	"github.com/framegrace/texelgrid/grid/scheme"
)

var mainMasks = []string{
	"U X X X X X X X X",
	"S X I I I I I I X",
	"S X I I I I I I X",
	"S X I I I I I I X",
	"D X B P X N X X C",
}

const mainSize = 45

type gui struct {
	main      *grid.Container
	stash     *grid.Container
	scrollbar *component.Scrollbar
}

func buildGUI(host grid.Host, cfg config.Config, notify func(string)) (*gui, error) {
	paged, err := grid.New(host, mainSize, grid.WithTitle(cfg.UI.Title), grid.Paginated())
	if err != nil {
		return nil, fmt.Errorf("main container: %w", err)
	}
	stash, err := grid.New(host, cfg.UI.Rows*grid.RowWidth, grid.WithTitle("Stash"))
	if err != nil {
		return nil, fmt.Errorf("stash container: %w", err)
	}
	g := &gui{main: paged, stash: stash, scrollbar: component.NewScrollbar()}

	for i := 1; i <= cfg.Demo.Items; i++ {
		name := fmt.Sprintf("Fancy Sword %d", i)
		err := itembuilder.New('/').
			Name(name).
			Foreground(tcell.ColorSilver).
			Handler(func(*grid.ClickEvent) { g.stashItem(notify, grid.NewItem('/', name)) }).
			Add(g.scrollbar)
		if err != nil {
			return nil, err
		}
	}
	if err := paged.AddComponent(g.scrollbar); err != nil {
		return nil, fmt.Errorf("scrollbar: %w", err)
	}

	gems := []tcell.Color{tcell.ColorRed, tcell.ColorGreen, tcell.ColorBlue, tcell.ColorYellow}
	for i := 1; i <= cfg.Demo.Content; i++ {
		name := fmt.Sprintf("Gem %d", i)
		err := itembuilder.New('◆').
			Name(name).
			Lore(fmt.Sprintf("worth %d coins", i*10)).
			Foreground(gems[i%len(gems)]).
			Handler(func(e *grid.ClickEvent) { notify(fmt.Sprintf("%s (%s click)", name, e.Kind)) }).
			AddContent(paged)
		if err != nil {
			return nil, err
		}
	}

	pager := paged.Pager()
	pager.SetNextPageIcon(func(dest int) *grid.Item {
		return itembuilder.New('»').Name(fmt.Sprintf("Next Page (%d)", dest)).Build()
	})
	pager.SetPreviousPageIcon(func(dest int) *grid.Item {
		return itembuilder.New('«').Name(fmt.Sprintf("Previous Page (%d)", dest)).Build()
	})
	pager.AddPageChangeHandler(func(page int) {
		notify(fmt.Sprintf("page %d/%d", page, pager.LastPage()))
	})

	filler := itembuilder.New('░').Foreground(tcell.ColorDarkGray)
	s := scheme.New().
		Masks(mainMasks...).
		BindPagination('I').
		BindPagination('P').
		BindNextPage('N').
		BindPreviousPage('B').
		BindComponent('S', component.ScrollbarTag)
	filler.Bind(s, 'X')
	itembuilder.New('↑').Name("Scroll Up").
		Handler(func(*grid.ClickEvent) { g.scroll(notify, (*component.Scrollbar).ScrollUp) }).
		Bind(s, 'U')
	itembuilder.New('↓').Name("Scroll Down").
		Handler(func(*grid.ClickEvent) { g.scroll(notify, (*component.Scrollbar).ScrollDown) }).
		Bind(s, 'D')
	itembuilder.New('▣').Name("Open Stash").
		Handler(func(e *grid.ClickEvent) {
			if err := stash.Open(e.Viewer); err != nil {
				notify(err.Error())
			}
		}).
		Bind(s, 'C')
	if err := s.Apply(paged); err != nil {
		return nil, fmt.Errorf("apply scheme: %w", err)
	}

	border := itembuilder.New('▒').Foreground(tcell.ColorGray).Build()
	if err := stash.SetItems(stash.Borders(), border, nil); err != nil {
		return nil, err
	}
	stash.AddCloseHandler(func(*grid.CloseEvent) { notify("stash closed") })
	return g, nil
}

func (g *gui) scroll(notify func(string), move func(*component.Scrollbar) error) {
	sb, ok := grid.ComponentOf[*component.Scrollbar](g.main, component.ScrollbarTag)
	if !ok {
		return
	}
	if err := move(sb); err != nil {
		notify(err.Error())
		return
	}
	n := sb.Content().Len()
	if n == 0 {
		notify("no swords")
		return
	}
	first, last := sb.Window()
	if last >= n {
		last = n - 1
	}
	notify(fmt.Sprintf("swords %d-%d of %d", first+1, last+1, n))
}

// stashItem copies it into the first free stash cell.
func (g *gui) stashItem(notify func(string), it *grid.Item) {
	if g.stash.FirstEmpty() < 0 {
		notify("stash is full")
		return
	}
	_ = g.stash.AddItem(it, func(e *grid.ClickEvent) {
		_ = g.stash.RemoveItem(e.Slot)
		notify(it.Name + " removed from stash")
	})
	notify(it.Name + " stashed")
}
