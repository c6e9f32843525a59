// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/layout.go
// Summary: Slot helpers for common decorative layouts.

package grid

// Borders returns the outer ring of a 9-wide grid. Containers smaller than
// three rows are all border.
func (c *Container) Borders() []int {
	size := c.Size()
	var out []int
	for i := 0; i < size; i++ {
		if size < 3*RowWidth || i < RowWidth || i%RowWidth == 0 || (i-8)%RowWidth == 0 || i > size-RowWidth {
			out = append(out, i)
		}
	}
	return out
}

// Corners returns the L-shaped corner groups of a 9-wide grid.
func (c *Container) Corners() []int {
	size := c.Size()
	var out []int
	for i := 0; i < size; i++ {
		if i < 2 || (i > 6 && i < 10) || i == 17 || i == size-18 ||
			(i > size-11 && i < size-7) || i > size-3 {
			out = append(out, i)
		}
	}
	return out
}

// RowSlots returns the slots of a mask row: row*RowWidth + [0, RowWidth).
func RowSlots(row int) []int {
	out := make([]int, RowWidth)
	for i := range out {
		out[i] = row*RowWidth + i
	}
	return out
}
