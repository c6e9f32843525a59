// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/item.go
// Summary: Rendered item value stored in grid cells and content buffers.

package grid

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Item is the rendered value a cell can hold. A nil *Item means the cell is
// empty. Items are treated as immutable once placed; share them freely.
type Item struct {
	Glyph rune
	Style tcell.Style
	Name  string
	Lore  []string
}

// NewItem returns an item showing glyph with the default style.
func NewItem(glyph rune, name string) *Item {
	return &Item{Glyph: glyph, Style: tcell.StyleDefault, Name: name}
}

// Width reports how many terminal columns the glyph occupies.
func (it *Item) Width() int {
	if it == nil {
		return 0
	}
	w := runewidth.RuneWidth(it.Glyph)
	if w < 1 {
		return 1
	}
	return w
}

// Equal reports whether two items render identically.
func (it *Item) Equal(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	if it.Glyph != other.Glyph || it.Style != other.Style || it.Name != other.Name {
		return false
	}
	if len(it.Lore) != len(other.Lore) {
		return false
	}
	for i := range it.Lore {
		if it.Lore[i] != other.Lore[i] {
			return false
		}
	}
	return true
}

// WithName returns a copy of the item carrying a different name.
func (it *Item) WithName(name string) *Item {
	if it == nil {
		return nil
	}
	cp := *it
	cp.Name = name
	if it.Lore != nil {
		cp.Lore = append([]string(nil), it.Lore...)
	}
	return &cp
}
