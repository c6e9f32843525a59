// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/component/scrollbar.go
// Summary: Scrolling component that slides a content window over its slots.

package component

import (
	"fmt"
	"math"
	"sort"

	"github.com/framegrace/texelgrid/grid"
)

// ScrollbarTag is the registry tag of Scrollbar.
const ScrollbarTag = "scrollbar"

// Scrollbar shows a contiguous window of its content, one entry per slot.
type Scrollbar struct {
	Base
	// window maps content index to parent cell.
	window map[int]int
}

// NewScrollbar creates a scrollbar over slots, showing content [0, len(slots)).
func NewScrollbar(slots ...int) *Scrollbar {
	s := &Scrollbar{}
	s.slots = append([]int(nil), slots...)
	s.resetWindow()
	return s
}

func (s *Scrollbar) Tag() string { return ScrollbarTag }

func (s *Scrollbar) resetWindow() {
	s.window = make(map[int]int, len(s.slots))
	for i, slot := range s.slots {
		s.window[i] = slot
	}
}

// SetSlots replaces the slot list, rewinds the window to the top and
// re-projects when attached.
func (s *Scrollbar) SetSlots(slots []int) error {
	if err := s.replaceSlots(slots); err != nil {
		return err
	}
	s.resetWindow()
	if s.parent != nil {
		s.project()
	}
	return nil
}

// Apply attaches the scrollbar to c and projects the current window.
func (s *Scrollbar) Apply(c *grid.Container) error {
	if err := s.attach(c); err != nil {
		return err
	}
	s.project()
	return nil
}

// Refresh re-projects into the attached parent.
func (s *Scrollbar) Refresh() error {
	if s.parent == nil {
		return s.detachedErr("Refresh")
	}
	s.project()
	return nil
}

func (s *Scrollbar) project() {
	keys := make([]int, 0, len(s.window))
	for k := range s.window {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		it, h, _ := s.content.Entry(k)
		s.parent.Project(s.window[k], it, h)
	}
}

func (s *Scrollbar) detachedErr(op string) error {
	return fmt.Errorf("%w: scrollbar %s before it was applied to a container", grid.ErrIllegalState, op)
}

// ScrollDown moves the window one entry towards the end of the content.
// It is a no-op once the last entry is visible.
func (s *Scrollbar) ScrollDown() error {
	if s.parent == nil {
		return s.detachedErr("ScrollDown")
	}
	if !s.CanScrollDown() {
		return nil
	}
	s.shift(1)
	return nil
}

// ScrollUp moves the window one entry towards the start of the content.
// It is a no-op once entry 0 is visible.
func (s *Scrollbar) ScrollUp() error {
	if s.parent == nil {
		return s.detachedErr("ScrollUp")
	}
	if !s.CanScrollUp() {
		return nil
	}
	s.shift(-1)
	return nil
}

func (s *Scrollbar) shift(delta int) {
	next := make(map[int]int, len(s.window))
	for k, slot := range s.window {
		next[k+delta] = slot
	}
	s.window = next
	s.project()
}

// CanScrollDown reports whether ScrollDown would move the window.
func (s *Scrollbar) CanScrollDown() bool {
	n := s.content.Len()
	// Empty content never scrolls, so the window cannot drift past entry 0
	// and an empty scrollbar stays a no-op in both directions.
	if n == 0 {
		return false
	}
	_, visible := s.window[n-1]
	return !visible
}

// CanScrollUp reports whether ScrollUp would move the window.
func (s *Scrollbar) CanScrollUp() bool {
	_, visible := s.window[0]
	return !visible && len(s.window) > 0
}

// Window returns the first and last content index currently mapped.
// An empty window yields (0, -1).
func (s *Scrollbar) Window() (first, last int) {
	if len(s.window) == 0 {
		return 0, -1
	}
	first, last = math.MaxInt, math.MinInt
	for k := range s.window {
		if k < first {
			first = k
		}
		if k > last {
			last = k
		}
	}
	return first, last
}

// Mapping returns a copy of the content-index to cell mapping.
func (s *Scrollbar) Mapping() map[int]int {
	out := make(map[int]int, len(s.window))
	for k, v := range s.window {
		out[k] = v
	}
	return out
}

var (
	_ grid.Component       = (*Scrollbar)(nil)
	_ grid.ButtonContainer = (*Scrollbar)(nil)
)
