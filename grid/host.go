// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/host.go
// Summary: Contract the engine expects from the host's container primitive.
// Usage: Implemented by host/termhost; tests use an in-memory fake.
// Notes: The engine never draws. Surfaces only store which item sits where.

package grid

import "fmt"

// RowWidth is the number of cells per mask row.
const RowWidth = 9

// Shape is a named preset container shape.
type Shape int

const (
	ShapeHopper Shape = iota
	ShapeDispenser
	ShapeChest
	ShapeLargeChest
)

// Size returns the number of cells the shape holds.
func (s Shape) Size() int {
	switch s {
	case ShapeHopper:
		return 5
	case ShapeDispenser:
		return 9
	case ShapeChest:
		return 27
	case ShapeLargeChest:
		return 54
	}
	return 0
}

// Columns returns how many cells one display row holds.
func (s Shape) Columns() int {
	if s == ShapeHopper {
		return 5
	}
	return RowWidth
}

func (s Shape) String() string {
	switch s {
	case ShapeHopper:
		return "hopper"
	case ShapeDispenser:
		return "dispenser"
	case ShapeChest:
		return "chest"
	case ShapeLargeChest:
		return "large_chest"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape resolves a shape name as printed by String.
func ParseShape(name string) (Shape, bool) {
	for _, s := range []Shape{ShapeHopper, ShapeDispenser, ShapeChest, ShapeLargeChest} {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// ValidSize reports whether size is a positive multiple of RowWidth.
func ValidSize(size int) bool {
	return size > 0 && size%RowWidth == 0
}

// Holder is whatever controls a surface. Hosts route notifications for a
// surface to its holder.
type Holder interface {
	Surface() Surface
}

// Surface is the host's visual container: a fixed array of item cells.
// Implementations need not validate indices; the engine validates first.
type Surface interface {
	Owner() Holder
	Size() int
	Title() string
	Item(slot int) *Item
	SetItem(slot int, it *Item)
	Clear(slot int)
	ClearAll()
}

// Listener receives host notifications.
type Listener interface {
	OnOpen(*OpenEvent)
	OnClose(*CloseEvent)
	OnClick(*ClickEvent)
	OnDrag(*DragEvent)
}

// Host creates surfaces, shows them, delivers notifications and runs
// deferred tasks on its cooperative scheduler.
type Host interface {
	CreateSurface(owner Holder, size int, title string) (Surface, error)
	CreateShapedSurface(owner Holder, shape Shape, title string) (Surface, error)
	Open(viewer Viewer, s Surface) error
	// Schedule runs task on the host's loop at the next tick, never inline.
	Schedule(task func())
	Subscribe(l Listener)
	Unsubscribe(l Listener)
}
