// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/termhost/draw.go
// Summary: Paints the active surface, its frame, and a status line.
// Notes: Geometry is shared with hit testing through cellOrigin and slotAt.

package termhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	originX = 1
	originY = 1
)

var (
	frameStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	helpStyle   = tcell.StyleDefault.Dim(true)
)

const helpText = "click/enter: select  shift: shift-click  right: secondary  esc: close  q: quit"

// cellOrigin returns the top-left screen position of slot.
func (h *Host) cellOrigin(s *Surface, slot int) (int, int) {
	col := slot % s.columns
	row := slot / s.columns
	return originX + 1 + col*h.opts.CellWidth, originY + 1 + row
}

// slotAt maps a screen position to a slot of s, or -1.
func (h *Host) slotAt(s *Surface, x, y int) int {
	innerW := s.columns * h.opts.CellWidth
	if x < originX+1 || x >= originX+1+innerW || y < originY+1 || y >= originY+1+s.Rows() {
		return -1
	}
	slot := (y-originY-1)*s.columns + (x-originX-1)/h.opts.CellWidth
	if slot >= s.Size() {
		return -1
	}
	return slot
}

// Draw repaints the screen if anything changed since the last call.
func (h *Host) Draw() {
	if !h.dirty {
		return
	}
	h.dirty = false
	h.screen.Clear()
	width, _ := h.screen.Size()

	s := h.Active()
	if s == nil {
		drawText(h.screen, originX, originY, "no open container", helpStyle, width-originX)
		h.screen.Show()
		return
	}

	innerW := s.columns * h.opts.CellWidth
	rows := s.Rows()
	drawFrame(h.screen, originX, originY, innerW+2, rows+2)
	drawText(h.screen, originX+2, originY, " "+s.title+" ", titleStyle, innerW-2)

	for slot := 0; slot < s.Size(); slot++ {
		x, y := h.cellOrigin(s, slot)
		style := tcell.StyleDefault
		if it := s.cells[slot]; it != nil {
			style = it.Style
		}
		if slot == h.cursor {
			style = style.Reverse(true)
		}
		for i := 0; i < h.opts.CellWidth; i++ {
			h.screen.SetContent(x+i, y, ' ', nil, style)
		}
		if it := s.cells[slot]; it != nil {
			pad := (h.opts.CellWidth - it.Width()) / 2
			h.screen.SetContent(x+pad, y, it.Glyph, nil, style)
		}
	}

	statusY := originY + rows + 2
	drawText(h.screen, originX, statusY, h.statusLine(s), statusStyle, width-originX)
	drawText(h.screen, originX, statusY+1, helpText, helpStyle, width-originX)
	h.screen.Show()
}

// statusLine describes the item under the cursor, or the last message.
func (h *Host) statusLine(s *Surface) string {
	if h.status != "" {
		return h.status
	}
	if h.cursor < 0 || h.cursor >= s.Size() {
		return ""
	}
	it := s.cells[h.cursor]
	if it == nil {
		return ""
	}
	line := it.Name
	if len(it.Lore) > 0 {
		line += ": " + it.Lore[0]
	}
	return line
}

// Redraw forces a full repaint on the next Draw.
func (h *Host) Redraw() { h.dirty = true }

func drawFrame(screen tcell.Screen, x, y, w, h int) {
	for i := 1; i < w-1; i++ {
		screen.SetContent(x+i, y, tcell.RuneHLine, nil, frameStyle)
		screen.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, frameStyle)
	}
	for j := 1; j < h-1; j++ {
		screen.SetContent(x, y+j, tcell.RuneVLine, nil, frameStyle)
		screen.SetContent(x+w-1, y+j, tcell.RuneVLine, nil, frameStyle)
	}
	screen.SetContent(x, y, tcell.RuneULCorner, nil, frameStyle)
	screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, frameStyle)
	screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, frameStyle)
	screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, frameStyle)
}

// drawText writes text truncated to maxWidth display columns.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style, maxWidth int) {
	if maxWidth <= 0 {
		return
	}
	text = runewidth.Truncate(text, maxWidth, "…")
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
