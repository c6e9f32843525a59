// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/gridtest/host.go
// Summary: In-memory grid.Host for tests.
// Usage: Shared by grid, scheme and component tests; drives notifications by hand.

package gridtest

import (
	"fmt"

	"github.com/framegrace/texelgrid/grid"
	"github.com/framegrace/texelgrid/internal/tick"
)

// Surface is a plain slice-backed grid.Surface.
type Surface struct {
	owner grid.Holder
	title string
	cells []*grid.Item
	shape *grid.Shape
	// Writes counts SetItem and Clear calls, for render-count assertions.
	Writes int
}

func (s *Surface) Owner() grid.Holder { return s.owner }
func (s *Surface) Size() int          { return len(s.cells) }
func (s *Surface) Title() string      { return s.title }
func (s *Surface) Item(slot int) *grid.Item {
	return s.cells[slot]
}
func (s *Surface) SetItem(slot int, it *grid.Item) {
	s.Writes++
	s.cells[slot] = it
}
func (s *Surface) Clear(slot int) {
	s.Writes++
	s.cells[slot] = nil
}
func (s *Surface) ClearAll() {
	for i := range s.cells {
		s.cells[i] = nil
	}
}

// Shape returns the preset shape, if the surface was created from one.
func (s *Surface) Shape() (grid.Shape, bool) {
	if s.shape == nil {
		return 0, false
	}
	return *s.shape, true
}

// Names returns the item name per cell, "" for empty cells.
func (s *Surface) Names() []string {
	out := make([]string, len(s.cells))
	for i, it := range s.cells {
		if it != nil {
			out[i] = it.Name
		}
	}
	return out
}

// Opened records one Host.Open call.
type Opened struct {
	Viewer  grid.Viewer
	Surface grid.Surface
}

// Host records surfaces and opens, and queues scheduled tasks until Tick.
type Host struct {
	Surfaces []*Surface
	Opens    []Opened

	// OwnerOverride makes CreateSurface report a different owner.
	OwnerOverride grid.Holder

	listeners []grid.Listener
	queue     tick.Queue
}

// NewHost returns an empty fake host.
func NewHost() *Host { return &Host{} }

func (h *Host) CreateSurface(owner grid.Holder, size int, title string) (grid.Surface, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gridtest: bad size %d", size)
	}
	if h.OwnerOverride != nil {
		owner = h.OwnerOverride
	}
	s := &Surface{owner: owner, title: title, cells: make([]*grid.Item, size)}
	h.Surfaces = append(h.Surfaces, s)
	return s, nil
}

func (h *Host) CreateShapedSurface(owner grid.Holder, shape grid.Shape, title string) (grid.Surface, error) {
	sf, err := h.CreateSurface(owner, shape.Size(), title)
	if err != nil {
		return nil, err
	}
	s := sf.(*Surface)
	s.shape = &shape
	return s, nil
}

func (h *Host) Open(v grid.Viewer, s grid.Surface) error {
	h.Opens = append(h.Opens, Opened{Viewer: v, Surface: s})
	for _, l := range h.listeners {
		l.OnOpen(&grid.OpenEvent{Surface: s, Viewer: v})
	}
	return nil
}

func (h *Host) Schedule(task func()) { h.queue.Schedule(task) }

// Tick runs tasks scheduled before the call.
func (h *Host) Tick() int { return h.queue.Tick() }

// Pending returns the number of scheduled tasks.
func (h *Host) Pending() int { return h.queue.Len() }

func (h *Host) Subscribe(l grid.Listener) { h.listeners = append(h.listeners, l) }

func (h *Host) Unsubscribe(l grid.Listener) {
	for i, cur := range h.listeners {
		if cur == l {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of subscribed listeners.
func (h *Host) Listeners() int { return len(h.listeners) }

// Click delivers a primary click on slot.
func (h *Host) Click(s grid.Surface, v grid.Viewer, slot int, cancelled bool) *grid.ClickEvent {
	e := grid.NewClickEvent(s, v, slot, grid.ClickPrimary, cancelled)
	for _, l := range h.listeners {
		l.OnClick(e)
	}
	return e
}

// Drag delivers a drag across slots.
func (h *Host) Drag(s grid.Surface, v grid.Viewer, slots []int, cancelled bool) *grid.DragEvent {
	e := grid.NewDragEvent(s, v, slots, cancelled)
	for _, l := range h.listeners {
		l.OnDrag(e)
	}
	return e
}

// Close delivers a close notification.
func (h *Host) Close(s grid.Surface, v grid.Viewer) {
	e := &grid.CloseEvent{Surface: s, Viewer: v}
	for _, l := range h.listeners {
		l.OnClose(e)
	}
}
