// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/component.go
// Summary: Tag-keyed registry of reusable sub-widgets projected into a container.
// Usage: Concrete components live in grid/component.

package grid

import "log"

// Component is a reusable sub-widget that owns a content buffer and a slot
// list, and projects itself into a parent container.
type Component interface {
	// Tag is stable for the component type. A container holds at most one
	// component per tag.
	Tag() string
	Slots() []int
	// SetSlots replaces the slot list and re-projects when attached.
	SetSlots(slots []int) error
	Content() *ContentBuffer
	// Apply attaches the component to c and projects its visible window.
	// A component attached to another container returns ErrIllegalState.
	Apply(c *Container) error
	// Detach drops the link to the parent container. Cells already written
	// are left as they are.
	Detach()
}

// AddComponent registers comp under its tag, replacing any earlier instance
// with the same tag, and projects it. The replaced instance is detached.
// Registration is rolled back when the projection fails.
func (c *Container) AddComponent(comp Component) error {
	tag := comp.Tag()
	prev, hadPrev := c.components[tag]
	c.components[tag] = comp
	if err := comp.Apply(c); err != nil {
		if hadPrev {
			c.components[tag] = prev
		} else {
			delete(c.components, tag)
		}
		return err
	}
	if hadPrev && prev != comp {
		prev.Detach()
		log.Printf("Grid: component %q replaced", tag)
	}
	return nil
}

// Component returns the component registered under tag.
func (c *Container) Component(tag string) (Component, bool) {
	comp, ok := c.components[tag]
	return comp, ok
}

// RemoveComponent unregisters and detaches the component under tag. Cells it
// wrote are left as they are.
func (c *Container) RemoveComponent(tag string) bool {
	comp, ok := c.components[tag]
	if !ok {
		return false
	}
	delete(c.components, tag)
	comp.Detach()
	return true
}

// ComponentOf looks up the component under tag and asserts its type.
func ComponentOf[T Component](c *Container, tag string) (T, bool) {
	var zero T
	comp, ok := c.components[tag]
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// ValidateSlots checks slots against the container capacity without
// touching any cell. Components call it before projecting.
func (c *Container) ValidateSlots(slots []int) error {
	return c.checkSlots(slots)
}

// Project writes it and h into a slot already checked with ValidateSlots.
// A nil item with a nil handler empties the cell.
func (c *Container) Project(slot int, it *Item, h ClickHandler) {
	c.put(slot, it, h)
}
