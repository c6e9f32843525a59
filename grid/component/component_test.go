// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/component/component_test.go
// Summary: Exercises component projection, registry lookup and scrolling.
// Usage: Executed during `go test` to guard against regressions.

package component_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/framegrace/texelgrid/grid"
	"github.com/framegrace/texelgrid/grid/component"
	"github.com/framegrace/texelgrid/grid/gridtest"
)

func setup(t *testing.T) (*grid.Container, *gridtest.Surface) {
	t.Helper()
	host := gridtest.NewHost()
	c, err := grid.New(host, 45)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, host.Surfaces[0]
}

func fill(t *testing.T, b grid.ButtonContainer, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := b.AddItem(grid.NewItem('/', fmt.Sprintf("sword %d", i)), nil); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}
}

// Column 0 of rows 1..3, as in a mask with S in the first column.
var column = []int{9, 18, 27}

func TestPanelProjection(t *testing.T) {
	c, s := setup(t)
	p := component.NewPanel("tools", 0, 1, 2)
	fill(t, p, 2)
	_ = c.SetItem(2, grid.NewItem('x', "stale"), nil)

	if err := c.AddComponent(p); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	names := s.Names()
	if names[0] != "sword 0" || names[1] != "sword 1" || names[2] != "" {
		t.Fatalf("unexpected projection %v", names[:3])
	}

	// Content changes do not show until the component re-projects.
	fill(t, p, 1)
	if s.Names()[2] != "" {
		t.Fatalf("content mutation re-projected implicitly")
	}
	if err := p.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if s.Names()[2] != "sword 0" {
		t.Fatalf("Refresh did not project, got %q", s.Names()[2])
	}
}

func TestPanelRefreshBeforeAttach(t *testing.T) {
	p := component.NewPanel("tools", 0)
	if err := p.Refresh(); !errors.Is(err, grid.ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
}

func TestAddComponentRejectsOutOfRangeSlots(t *testing.T) {
	c, s := setup(t)
	p := component.NewPanel("tools", 0, 45)
	fill(t, p, 2)
	if err := c.AddComponent(p); !errors.Is(err, grid.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if _, ok := c.Component("tools"); ok {
		t.Fatalf("failed AddComponent left a registration")
	}
	if s.Writes != 0 {
		t.Fatalf("failed AddComponent wrote cells")
	}
	if p.Attached() {
		t.Fatalf("failed AddComponent attached the panel")
	}
}

func TestRegistryOneInstancePerTag(t *testing.T) {
	c, _ := setup(t)
	first := component.NewScrollbar(column...)
	second := component.NewScrollbar(column...)
	if err := c.AddComponent(first); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	if err := c.AddComponent(second); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	got, ok := grid.ComponentOf[*component.Scrollbar](c, component.ScrollbarTag)
	if !ok || got != second {
		t.Fatalf("expected the latest scrollbar under its tag")
	}
	if _, ok := grid.ComponentOf[*component.Panel](c, component.ScrollbarTag); ok {
		t.Fatalf("type mismatch should not resolve")
	}
	if !c.RemoveComponent(component.ScrollbarTag) || c.RemoveComponent(component.ScrollbarTag) {
		t.Fatalf("RemoveComponent mismatch")
	}
}

func TestReplacedComponentIsDetached(t *testing.T) {
	c, s := setup(t)
	old := component.NewScrollbar(column...)
	fill(t, old, 5)
	if err := c.AddComponent(old); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	replacement := component.NewScrollbar(column...)
	for i := 0; i < 5; i++ {
		_ = replacement.AddItem(grid.NewItem('a', fmt.Sprintf("axe %d", i)), nil)
	}
	if err := c.AddComponent(replacement); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	if old.Attached() {
		t.Fatalf("replaced scrollbar still attached")
	}
	writes := s.Writes
	if err := old.ScrollDown(); !errors.Is(err, grid.ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
	if s.Writes != writes || s.Names()[9] != "axe 0" {
		t.Fatalf("replaced scrollbar wrote into its old container: %v", s.Names()[9])
	}
}

func TestComponentBelongsToOneContainer(t *testing.T) {
	a, as := setup(t)
	b, bs := setup(t)
	sb := component.NewScrollbar(column...)
	fill(t, sb, 5)
	if err := a.AddComponent(sb); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	if err := b.AddComponent(sb); !errors.Is(err, grid.ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
	if _, ok := b.Component(component.ScrollbarTag); ok {
		t.Fatalf("rejected component left registered")
	}
	if sb.Parent() != a || bs.Writes != 0 {
		t.Fatalf("second container touched: parent changed or %d writes", bs.Writes)
	}
	if err := sb.ScrollDown(); err != nil {
		t.Fatalf("ScrollDown: %v", err)
	}
	if as.Names()[9] != "sword 1" {
		t.Fatalf("scroll did not reach the owning container, got %q", as.Names()[9])
	}
}

func TestRemoveComponentDetaches(t *testing.T) {
	c, _ := setup(t)
	p := component.NewPanel("tools", 0, 1)
	fill(t, p, 2)
	if err := c.AddComponent(p); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	c.RemoveComponent("tools")
	if err := p.Refresh(); !errors.Is(err, grid.ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState after removal, got %v", err)
	}
	other, s := setup(t)
	if err := other.AddComponent(p); err != nil {
		t.Fatalf("re-adding a removed component: %v", err)
	}
	if s.Names()[0] != "sword 0" {
		t.Fatalf("re-added panel did not project, got %q", s.Names()[0])
	}
}

func TestScrollbarRequiresAttachment(t *testing.T) {
	sb := component.NewScrollbar(column...)
	fill(t, sb, 5)
	if err := sb.ScrollDown(); !errors.Is(err, grid.ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
	if err := sb.ScrollUp(); !errors.Is(err, grid.ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
	// SetSlots before attachment only records the slots.
	if err := sb.SetSlots([]int{100}); err != nil {
		t.Fatalf("SetSlots before attach: %v", err)
	}
}

func TestScrollbarScrolling(t *testing.T) {
	c, s := setup(t)
	sb := component.NewScrollbar(column...)
	fill(t, sb, 5)
	if err := c.AddComponent(sb); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	shown := func() []string {
		n := s.Names()
		return []string{n[9], n[18], n[27]}
	}
	if got := shown(); got[0] != "sword 0" || got[2] != "sword 2" {
		t.Fatalf("initial window %v", got)
	}

	// ScrollUp at the top changes nothing and does not re-render.
	writes := s.Writes
	if err := sb.ScrollUp(); err != nil {
		t.Fatalf("ScrollUp: %v", err)
	}
	if s.Writes != writes {
		t.Fatalf("no-op ScrollUp re-rendered")
	}

	before := sb.Mapping()
	if err := sb.ScrollDown(); err != nil {
		t.Fatalf("ScrollDown: %v", err)
	}
	after := sb.Mapping()
	for k, slot := range before {
		if after[k+1] != slot {
			t.Fatalf("content index %d should move to %d on slot %d, mapping %v", k, k+1, slot, after)
		}
	}
	if got := shown(); got[0] != "sword 1" || got[2] != "sword 3" {
		t.Fatalf("window after one scroll %v", got)
	}

	_ = sb.ScrollDown()
	first, last := sb.Window()
	if first != 2 || last != 4 {
		t.Fatalf("expected window [2,4], got [%d,%d]", first, last)
	}
	writes = s.Writes
	_ = sb.ScrollDown()
	if f, l := sb.Window(); f != 2 || l != 4 {
		t.Fatalf("ScrollDown past the end moved the window to [%d,%d]", f, l)
	}
	if s.Writes != writes {
		t.Fatalf("no-op ScrollDown re-rendered")
	}

	_ = sb.ScrollUp()
	if got := shown(); got[0] != "sword 1" {
		t.Fatalf("ScrollUp window %v", got)
	}
}

func TestScrollbarShortContentClearsTrailingSlots(t *testing.T) {
	c, s := setup(t)
	for _, slot := range column {
		_ = c.SetItem(slot, grid.NewItem('x', "stale"), nil)
	}
	sb := component.NewScrollbar(column...)
	fill(t, sb, 2)
	if err := c.AddComponent(sb); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	if s.Names()[27] != "" {
		t.Fatalf("slot past content should be cleared, got %q", s.Names()[27])
	}
	if sb.CanScrollDown() || sb.CanScrollUp() {
		t.Fatalf("short content should not scroll")
	}
}

func TestScrollbarEmptyContentDoesNotScroll(t *testing.T) {
	c, _ := setup(t)
	sb := component.NewScrollbar(column...)
	if err := c.AddComponent(sb); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	_ = sb.ScrollDown()
	if f, l := sb.Window(); f != 0 || l != 2 {
		t.Fatalf("empty content moved the window to [%d,%d]", f, l)
	}
}

func TestScrollbarSetSlotsRewindsAndProjects(t *testing.T) {
	c, s := setup(t)
	sb := component.NewScrollbar(column...)
	fill(t, sb, 6)
	_ = c.AddComponent(sb)
	_ = sb.ScrollDown()

	if err := sb.SetSlots([]int{36, 37}); err != nil {
		t.Fatalf("SetSlots: %v", err)
	}
	if f, l := sb.Window(); f != 0 || l != 1 {
		t.Fatalf("SetSlots should rewind to [0,1], got [%d,%d]", f, l)
	}
	if s.Names()[36] != "sword 0" || s.Names()[37] != "sword 1" {
		t.Fatalf("SetSlots did not project")
	}
	if err := sb.SetSlots([]int{99}); !errors.Is(err, grid.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if got := sb.Slots(); len(got) != 2 || got[0] != 36 {
		t.Fatalf("failed SetSlots replaced slots: %v", got)
	}
}

func TestBaseContentAddressing(t *testing.T) {
	p := component.NewPanel("p")
	fill(t, p, 4)
	if err := p.SetItem(1, grid.NewItem('x', "one"), nil); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	if err := p.SetItemRange(2, 5, grid.NewItem('x', "y"), nil); !errors.Is(err, grid.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
	if err := p.SetItemRange(9, 3, grid.NewItem('x', "y"), nil); !errors.Is(err, grid.ErrInvalidIndex) {
		t.Fatalf("empty range with out-of-range bound: got %v", err)
	}
	if err := p.SetItemRange(4, 4, grid.NewItem('x', "y"), nil); err != nil {
		t.Fatalf("empty range at the end should be a no-op, got %v", err)
	}
	if err := p.RemoveItems(0, 2); err != nil {
		t.Fatalf("RemoveItems: %v", err)
	}
	items := p.Content().Items()
	if len(items) != 2 || items[0].Name != "one" || items[1].Name != "sword 3" {
		t.Fatalf("unexpected content %v", items)
	}
	if !p.RemoveMatching(grid.NewItem('/', "sword 3")) {
		t.Fatalf("RemoveMatching did not find equal item")
	}
	if err := p.AddContents([]*grid.Item{grid.NewItem('a', "a")}, []grid.ClickHandler{nil, nil}); !errors.Is(err, grid.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	p.ClearItems()
	if p.Content().Len() != 0 {
		t.Fatalf("ClearItems left content")
	}
}
