// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/termhost/surface.go
// Summary: Cell storage for one terminal container.

package termhost

import "github.com/framegrace/texelgrid/grid"

// Surface stores the items of one container. Writes mark the host for redraw.
type Surface struct {
	host    *Host
	owner   grid.Holder
	title   string
	columns int
	cells   []*grid.Item
}

func (s *Surface) Owner() grid.Holder { return s.owner }
func (s *Surface) Size() int          { return len(s.cells) }
func (s *Surface) Title() string      { return s.title }

// Columns returns the number of cells per display row.
func (s *Surface) Columns() int { return s.columns }

// Rows returns the number of display rows.
func (s *Surface) Rows() int {
	return (len(s.cells) + s.columns - 1) / s.columns
}

func (s *Surface) Item(slot int) *grid.Item { return s.cells[slot] }

func (s *Surface) SetItem(slot int, it *grid.Item) {
	s.cells[slot] = it
	s.host.dirty = true
}

func (s *Surface) Clear(slot int) {
	s.cells[slot] = nil
	s.host.dirty = true
}

func (s *Surface) ClearAll() {
	for i := range s.cells {
		s.cells[i] = nil
	}
	s.host.dirty = true
}

var _ grid.Surface = (*Surface)(nil)
