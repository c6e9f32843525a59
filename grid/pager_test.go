// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/pager_test.go
// Summary: Exercises page clamping, page rendering and navigation buttons.
// Usage: Executed during `go test` to guard against regressions.

package grid_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/framegrace/texelgrid/grid"
	"github.com/framegrace/texelgrid/grid/gridtest"
)

func newPaged(t *testing.T, size int) (*grid.Container, *grid.Pager, *gridtest.Surface) {
	t.Helper()
	host := gridtest.NewHost()
	c, err := grid.New(host, size, grid.Paginated())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, c.Pager(), host.Surfaces[0]
}

func numbered(n int) []*grid.Item {
	out := make([]*grid.Item, n)
	for i := range out {
		out[i] = item(fmt.Sprintf("c%d", i))
	}
	return out
}

func TestDefaultContentSlots(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{9, 9},
		{18, 9},
		{27, 18},
		{54, 45},
	}
	for _, tc := range cases {
		_, p, _ := newPaged(t, tc.size)
		if got := len(p.ContentSlots()); got != tc.want {
			t.Fatalf("size %d: expected %d content slots, got %d", tc.size, tc.want, got)
		}
	}

	host := gridtest.NewHost()
	c, err := grid.NewShaped(host, grid.ShapeHopper, grid.Paginated())
	if err != nil {
		t.Fatalf("NewShaped: %v", err)
	}
	if got := len(c.Pager().ContentSlots()); got != 5 {
		t.Fatalf("hopper: expected content slots clamped to 5, got %d", got)
	}
}

func TestLastPage(t *testing.T) {
	c, p, _ := newPaged(t, 27) // 18 content slots
	cases := []struct {
		content int
		want    int
	}{
		{0, 1},
		{1, 1},
		{18, 1},
		{19, 2},
		{36, 2},
		{40, 3},
	}
	for _, tc := range cases {
		if err := c.ReplaceContent(numbered(tc.content), nil); err != nil {
			t.Fatalf("ReplaceContent: %v", err)
		}
		if got := p.LastPage(); got != tc.want {
			t.Fatalf("%d items: expected last page %d, got %d", tc.content, tc.want, got)
		}
	}

	if err := p.SetContentSlots(nil); err != nil {
		t.Fatalf("SetContentSlots: %v", err)
	}
	if p.LastPage() != 1 {
		t.Fatalf("no content slots should yield a single page")
	}
}

func TestOpenPageClamps(t *testing.T) {
	c, p, _ := newPaged(t, 27)
	_ = c.AddContents(numbered(40), nil)
	for _, tc := range []struct{ req, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 3}, {4, 3}, {100, 3},
	} {
		p.OpenPage(tc.req)
		if p.CurrentPage() != tc.want {
			t.Fatalf("OpenPage(%d): expected %d, got %d", tc.req, tc.want, p.CurrentPage())
		}
	}
	p.OpenPage(1)
	if !p.IsFirstPage() || p.IsLastPage() {
		t.Fatalf("page 1 of 3 flags wrong")
	}
	p.OpenNext()
	p.OpenNext()
	p.OpenNext()
	if p.CurrentPage() != 3 || !p.IsLastPage() {
		t.Fatalf("expected to stop at last page, got %d", p.CurrentPage())
	}
	p.OpenPrevious()
	if p.CurrentPage() != 2 {
		t.Fatalf("expected page 2, got %d", p.CurrentPage())
	}
}

func TestLastPageRendersTailAndClearsRest(t *testing.T) {
	c, p, s := newPaged(t, 27)
	handlers := make([]grid.ClickHandler, 40)
	hits := make([]int, 40)
	for i := range handlers {
		i := i
		handlers[i] = func(*grid.ClickEvent) { hits[i]++ }
	}
	if err := c.AddContents(numbered(40), handlers); err != nil {
		t.Fatalf("AddContents: %v", err)
	}
	// Pre-fill so clearing is observable.
	_ = c.SetItemRange(0, 18, item("stale"), nil)

	p.OpenPage(3)
	names := s.Names()
	for i := 0; i < 4; i++ {
		if want := fmt.Sprintf("c%d", 36+i); names[i] != want {
			t.Fatalf("slot %d: got %q want %q", i, names[i], want)
		}
	}
	for i := 4; i < 18; i++ {
		if names[i] != "" {
			t.Fatalf("slot %d should be cleared, got %q", i, names[i])
		}
		if c.Handler(i) != nil {
			t.Fatalf("slot %d kept a handler", i)
		}
	}
	c.Handler(2)(nil)
	if hits[38] != 1 {
		t.Fatalf("expected handler of entry 38 on slot 2")
	}
}

func TestNavigationButtonsUseDestinationPage(t *testing.T) {
	c, p, s := newPaged(t, 27)
	_ = c.AddContents(numbered(40), nil)
	icon := func(page int) *grid.Item { return item(fmt.Sprintf("go %d", page)) }
	if err := p.SetPreviousPageItem(18, icon); err != nil {
		t.Fatalf("SetPreviousPageItem: %v", err)
	}
	if err := p.SetNextPageItem(26, icon); err != nil {
		t.Fatalf("SetNextPageItem: %v", err)
	}

	p.OpenPage(1)
	if s.Names()[18] != "" {
		t.Fatalf("previous button shown on first page")
	}
	if s.Names()[26] != "go 2" {
		t.Fatalf("next button label %q", s.Names()[26])
	}

	// Clicking the next button navigates.
	c.Handler(26)(nil)
	if p.CurrentPage() != 2 {
		t.Fatalf("next button did not navigate, page %d", p.CurrentPage())
	}
	if s.Names()[18] != "go 1" || s.Names()[26] != "go 3" {
		t.Fatalf("page 2 buttons %q %q", s.Names()[18], s.Names()[26])
	}

	p.OpenPage(3)
	if s.Names()[26] != "" || c.Handler(26) != nil {
		t.Fatalf("next button shown on last page")
	}
	c.Handler(18)(nil)
	if p.CurrentPage() != 2 {
		t.Fatalf("previous button did not navigate")
	}
}

func TestNavigationSlotsAreIndependent(t *testing.T) {
	c, p, s := newPaged(t, 27)
	_ = c.AddContents(numbered(40), nil)
	p.SetPreviousPageIcon(grid.StaticIcon(item("prev")))
	p.SetNextPageIcon(grid.StaticIcon(item("next")))
	if err := p.SetNextPageSlot(26); err != nil {
		t.Fatalf("SetNextPageSlot: %v", err)
	}
	if err := p.SetPreviousPageSlot(18); err != nil {
		t.Fatalf("SetPreviousPageSlot: %v", err)
	}
	if p.NextPageSlot() != 26 || p.PreviousPageSlot() != 18 {
		t.Fatalf("slots %d/%d", p.PreviousPageSlot(), p.NextPageSlot())
	}
	p.OpenPage(2)
	if s.Names()[18] != "prev" || s.Names()[26] != "next" {
		t.Fatalf("buttons %q %q", s.Names()[18], s.Names()[26])
	}

	if err := p.SetNextPageSlot(27); !errors.Is(err, grid.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if err := p.SetContentSlots([]int{0, 30}); !errors.Is(err, grid.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
}

func TestNoIconClearsNavigationCell(t *testing.T) {
	c, p, s := newPaged(t, 27)
	_ = c.AddContents(numbered(40), nil)
	_ = p.SetNextPageSlot(26)
	_ = c.SetItem(26, item("decor"), nil)
	p.OpenPage(1)
	if s.Names()[26] != "" {
		t.Fatalf("next cell without icon should be cleared, got %q", s.Names()[26])
	}
}

func TestContentBufferOperations(t *testing.T) {
	c, p, _ := newPaged(t, 9)
	_ = c.AddContent(item("a"), nil)
	_ = c.AddContents([]*grid.Item{item("b"), item("c")}, nil)
	got := p.Content().Items()
	if len(got) != 3 || got[0].Name != "a" || got[2].Name != "c" {
		t.Fatalf("append order broken: %v", got)
	}

	err := c.AddContents([]*grid.Item{item("d"), item("e")}, []grid.ClickHandler{nil})
	if !errors.Is(err, grid.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if p.Content().Len() != 3 {
		t.Fatalf("mismatched AddContents mutated the buffer")
	}
	if err := c.ReplaceContent([]*grid.Item{item("x")}, []grid.ClickHandler{nil, nil}); !errors.Is(err, grid.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if p.Content().Len() != 3 {
		t.Fatalf("mismatched ReplaceContent mutated the buffer")
	}

	if err := c.SetContent(1, item("B"), nil); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	if err := c.SetContent(3, item("D"), nil); !errors.Is(err, grid.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}

	list := []*grid.Item{item("p"), item("q"), item("r")}
	if err := c.ReplaceContent(list, nil); err != nil {
		t.Fatalf("ReplaceContent: %v", err)
	}
	got = p.Content().Items()
	if len(got) != len(list) {
		t.Fatalf("ReplaceContent length %d", len(got))
	}
	for i := range list {
		if got[i] != list[i] {
			t.Fatalf("ReplaceContent order broken at %d", i)
		}
	}

	if err := c.ClearContent(); err != nil {
		t.Fatalf("ClearContent: %v", err)
	}
	if p.Content().Len() != 0 {
		t.Fatalf("ClearContent left entries")
	}
}

func TestOpenRendersCurrentPageIdempotently(t *testing.T) {
	host := gridtest.NewHost()
	c, err := grid.New(host, 18, grid.Paginated())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = c.AddContents(numbered(20), nil)
	p := c.Pager()
	p.OpenPage(3)
	_ = c.ClearContent()
	_ = c.AddContents(numbered(5), nil)

	pages := 0
	p.AddPageChangeHandler(func(int) { pages++ })
	v := grid.NewViewer("steve")
	for i := 0; i < 2; i++ {
		if err := c.Open(v); err != nil {
			t.Fatalf("Open: %v", err)
		}
	}
	if p.CurrentPage() != 1 {
		t.Fatalf("Open should clamp stale page, got %d", p.CurrentPage())
	}
	if pages != 2 {
		t.Fatalf("expected a page change per open, got %d", pages)
	}
	names := host.Surfaces[0].Names()
	if names[4] != "c4" || names[5] != "" {
		t.Fatalf("unexpected render %v", names)
	}
	if len(host.Opens) != 2 || host.Opens[1].Viewer.Name != "steve" {
		t.Fatalf("host opens %v", host.Opens)
	}
}
