// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/event.go
// Summary: Notifications delivered by the host for open, close, click and drag.
// Usage: Hosts construct these values and hand them to a Listener; containers
// pass them to registered handlers.

package grid

import (
	"sort"

	"github.com/google/uuid"
)

// Viewer identifies whoever is looking at a surface.
type Viewer struct {
	ID   uuid.UUID
	Name string
}

// NewViewer returns a viewer with a freshly generated ID.
func NewViewer(name string) Viewer {
	return Viewer{ID: uuid.New(), Name: name}
}

// ClickKind distinguishes the gesture behind a click.
type ClickKind int

const (
	ClickPrimary ClickKind = iota
	ClickSecondary
	ClickMiddle
	ClickShiftPrimary
)

func (k ClickKind) String() string {
	switch k {
	case ClickPrimary:
		return "primary"
	case ClickSecondary:
		return "secondary"
	case ClickMiddle:
		return "middle"
	case ClickShiftPrimary:
		return "shift-primary"
	}
	return "unknown"
}

// OpenEvent is delivered when a surface is shown to a viewer.
type OpenEvent struct {
	Surface Surface
	Viewer  Viewer
}

// CloseEvent is delivered when a viewer closes a surface.
type CloseEvent struct {
	Surface Surface
	Viewer  Viewer
}

// ClickEvent is delivered when a viewer clicks a cell. Slot is the raw cell
// index; it may fall outside the container when the host reports clicks on
// its own chrome.
type ClickEvent struct {
	Surface   Surface
	Viewer    Viewer
	Slot      int
	Kind      ClickKind
	cancelled bool
}

// NewClickEvent builds a click notification. cancelled carries any veto the
// host already established before the engine runs.
func NewClickEvent(s Surface, v Viewer, slot int, kind ClickKind, cancelled bool) *ClickEvent {
	return &ClickEvent{Surface: s, Viewer: v, Slot: slot, Kind: kind, cancelled: cancelled}
}

// Cancelled reports whether the host's native effect is suppressed.
func (e *ClickEvent) Cancelled() bool { return e.cancelled }

// SetCancelled suppresses (true) or allows (false) the native effect.
func (e *ClickEvent) SetCancelled(c bool) { e.cancelled = c }

// DragEvent is delivered when a viewer drags across one or more cells.
type DragEvent struct {
	Surface   Surface
	Viewer    Viewer
	Slots     []int
	cancelled bool
}

// NewDragEvent builds a drag notification. Slots are sorted and deduplicated.
func NewDragEvent(s Surface, v Viewer, slots []int, cancelled bool) *DragEvent {
	uniq := make([]int, 0, len(slots))
	seen := make(map[int]struct{}, len(slots))
	for _, slot := range slots {
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		uniq = append(uniq, slot)
	}
	sort.Ints(uniq)
	return &DragEvent{Surface: s, Viewer: v, Slots: uniq, cancelled: cancelled}
}

func (e *DragEvent) Cancelled() bool     { return e.cancelled }
func (e *DragEvent) SetCancelled(c bool) { e.cancelled = c }

// Touches reports whether the drag covers the given slot.
func (e *DragEvent) Touches(slot int) bool {
	i := sort.SearchInts(e.Slots, slot)
	return i < len(e.Slots) && e.Slots[i] == slot
}

// ClickHandler reacts to a click on a single cell.
type ClickHandler func(*ClickEvent)

type (
	OpenHandler  func(*OpenEvent)
	CloseHandler func(*CloseEvent)
	DragHandler  func(*DragEvent)
)
