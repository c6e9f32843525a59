// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/termhost/run.go
// Summary: Event loop translating terminal input into grid notifications.
// Usage: Call Run from the goroutine that owns the host; it returns on q,
// Ctrl-C, or context cancellation.

package termhost

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgrid/grid"
)

// press tracks a held mouse button until release.
type press struct {
	surface *Surface
	kind    grid.ClickKind
	slots   []int
}

// Run draws, then services input and ticks until quit or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 32)
	go func() {
		defer close(events)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.opts.TickInterval)
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Tick()
		}
		h.Draw()
	}
}

// HandleEvent applies one terminal event and reports whether the user asked
// to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.dirty = true
	case *tcell.EventInterrupt:
		h.dirty = true
	case *tcell.EventKey:
		return h.handleKey(tev)
	case *tcell.EventMouse:
		h.handleMouse(tev)
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		h.press = nil
		h.CloseActive()
		return false
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true
		}
		return false
	}

	s := h.Active()
	if s == nil {
		return false
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		h.moveCursor(s, -1)
	case tcell.KeyRight:
		h.moveCursor(s, 1)
	case tcell.KeyUp:
		h.moveCursor(s, -s.columns)
	case tcell.KeyDown:
		h.moveCursor(s, s.columns)
	case tcell.KeyEnter:
		kind := grid.ClickPrimary
		if ev.Modifiers()&tcell.ModShift != 0 {
			kind = grid.ClickShiftPrimary
		}
		h.click(s, h.cursor, kind)
	}
	return false
}

func (h *Host) moveCursor(s *Surface, delta int) {
	next := h.cursor + delta
	if next < 0 || next >= s.Size() {
		return
	}
	h.cursor = next
	h.status = ""
	h.dirty = true
}

func clickKind(buttons tcell.ButtonMask, mods tcell.ModMask) grid.ClickKind {
	switch {
	case buttons&tcell.Button2 != 0:
		return grid.ClickSecondary
	case buttons&tcell.Button3 != 0:
		return grid.ClickMiddle
	case mods&tcell.ModShift != 0:
		return grid.ClickShiftPrimary
	}
	return grid.ClickPrimary
}

const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// handleMouse turns a press/release pair into a click, or into a drag when
// the pointer crossed more than one cell while held.
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	s := h.Active()
	if s == nil {
		h.press = nil
		return
	}
	x, y := ev.Position()
	slot := h.slotAt(s, x, y)
	buttons := ev.Buttons()

	if buttons&clickButtons != 0 {
		if h.press == nil {
			if slot < 0 {
				return
			}
			h.press = &press{surface: s, kind: clickKind(buttons, ev.Modifiers()), slots: []int{slot}}
			h.cursor = slot
			h.status = ""
			h.dirty = true
			return
		}
		if slot >= 0 && h.press.surface == s && h.press.slots[len(h.press.slots)-1] != slot {
			h.press.slots = append(h.press.slots, slot)
		}
		return
	}

	if h.press == nil {
		if slot >= 0 && slot != h.cursor {
			h.cursor = slot
			h.status = ""
			h.dirty = true
		}
		return
	}
	p := h.press
	h.press = nil
	if p.surface != s {
		return
	}
	if distinct(p.slots) > 1 {
		h.drag(s, p.slots)
		return
	}
	h.click(s, p.slots[0], p.kind)
}

func distinct(slots []int) int {
	seen := make(map[int]struct{}, len(slots))
	for _, slot := range slots {
		seen[slot] = struct{}{}
	}
	return len(seen)
}

// SetStatus shows msg on the status line until the cursor moves.
func (h *Host) SetStatus(msg string) {
	h.status = msg
	h.dirty = true
}
