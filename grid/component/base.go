// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/component/base.go
// Summary: Shared state for components: own content buffer, slot list, parent.
// Usage: Embed Base in concrete components; see Panel and Scrollbar.
// Notes: Content mutations never re-project on their own. Call Refresh (or
// the component's own convenience operations) when the change must show.

package component

import (
	"fmt"

	"github.com/framegrace/texelgrid/grid"
)

// Base owns a content buffer and an ordered slot list. Its cell-level
// methods address content indices, not parent cells.
type Base struct {
	slots   []int
	content grid.ContentBuffer
	parent  *grid.Container
}

// Slots returns a copy of the assigned parent cells.
func (b *Base) Slots() []int { return append([]int(nil), b.slots...) }

// Content exposes the component's buffer.
func (b *Base) Content() *grid.ContentBuffer { return &b.content }

// Parent returns the container the component was applied to, if any.
func (b *Base) Parent() *grid.Container { return b.parent }

// Attached reports whether the component has a projection target.
func (b *Base) Attached() bool { return b.parent != nil }

func (b *Base) replaceSlots(slots []int) error {
	if b.parent != nil {
		if err := b.parent.ValidateSlots(slots); err != nil {
			return err
		}
	}
	b.slots = append([]int(nil), slots...)
	return nil
}

func (b *Base) attach(c *grid.Container) error {
	if c == nil {
		return fmt.Errorf("%w: nil container", grid.ErrIllegalState)
	}
	if b.parent != nil && b.parent != c {
		return fmt.Errorf("%w: component already belongs to another container", grid.ErrIllegalState)
	}
	if err := c.ValidateSlots(b.slots); err != nil {
		return err
	}
	b.parent = c
	return nil
}

// Detach forgets the parent. Projection calls fail until the next Apply.
func (b *Base) Detach() { b.parent = nil }

// project writes content entry i into slot i, clearing slots past the end
// of the buffer.
func (b *Base) project() {
	for i, slot := range b.slots {
		it, h, _ := b.content.Entry(i)
		b.parent.Project(slot, it, h)
	}
}

func (b *Base) AddItem(it *grid.Item, h grid.ClickHandler) error {
	return b.AddContent(it, h)
}

// SetItem overwrites the content entry at index.
func (b *Base) SetItem(index int, it *grid.Item, h grid.ClickHandler) error {
	return b.SetContent(index, it, h)
}

// SetItemRange overwrites content entries [from, to). Both bounds must lie
// in [0, Len()]; an empty range is then a no-op.
func (b *Base) SetItemRange(from, to int, it *grid.Item, h grid.ClickHandler) error {
	n := b.content.Len()
	if from < 0 || from > n || to < 0 || to > n {
		return fmt.Errorf("%w: range [%d, %d) (len %d)", grid.ErrInvalidIndex, from, to, n)
	}
	for i := from; i < to; i++ {
		_ = b.content.Set(i, it, h)
	}
	return nil
}

// SetItems overwrites the listed content entries.
func (b *Base) SetItems(indices []int, it *grid.Item, h grid.ClickHandler) error {
	for _, i := range indices {
		if i < 0 || i >= b.content.Len() {
			return fmt.Errorf("%w: %d (len %d)", grid.ErrInvalidIndex, i, b.content.Len())
		}
	}
	for _, i := range indices {
		_ = b.content.Set(i, it, h)
	}
	return nil
}

// RemoveItem deletes the content entry at index.
func (b *Base) RemoveItem(index int) error {
	return b.content.Remove(index)
}

// RemoveItems deletes the listed content entries.
func (b *Base) RemoveItems(indices ...int) error {
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= b.content.Len() {
			return fmt.Errorf("%w: %d (len %d)", grid.ErrInvalidIndex, i, b.content.Len())
		}
		seen[i] = true
	}
	// Highest first so earlier removals do not shift later ones.
	for i := b.content.Len() - 1; i >= 0; i-- {
		if seen[i] {
			_ = b.content.Remove(i)
		}
	}
	return nil
}

// RemoveMatching deletes the first entry whose item equals it.
func (b *Base) RemoveMatching(it *grid.Item) bool {
	return b.content.RemoveItem(it)
}

func (b *Base) ClearItems() { b.content.Clear() }

func (b *Base) AddContent(it *grid.Item, h grid.ClickHandler) error {
	b.content.Add(it, h)
	return nil
}

func (b *Base) AddContents(items []*grid.Item, handlers []grid.ClickHandler) error {
	return b.content.AddAll(items, handlers)
}

func (b *Base) SetContent(index int, it *grid.Item, h grid.ClickHandler) error {
	return b.content.Set(index, it, h)
}

func (b *Base) ReplaceContent(items []*grid.Item, handlers []grid.ClickHandler) error {
	return b.content.Replace(items, handlers)
}

func (b *Base) ClearContent() error {
	b.content.Clear()
	return nil
}

// Panel is a plain component: content entry i shows in slot i.
type Panel struct {
	Base
	tag string
}

// NewPanel creates a panel registered under tag.
func NewPanel(tag string, slots ...int) *Panel {
	p := &Panel{tag: tag}
	p.slots = append([]int(nil), slots...)
	return p
}

func (p *Panel) Tag() string { return p.tag }

// SetSlots replaces the slot list and re-projects when attached.
func (p *Panel) SetSlots(slots []int) error {
	if err := p.replaceSlots(slots); err != nil {
		return err
	}
	if p.parent != nil {
		p.project()
	}
	return nil
}

// Apply attaches the panel to c and projects it.
func (p *Panel) Apply(c *grid.Container) error {
	if err := p.attach(c); err != nil {
		return err
	}
	p.project()
	return nil
}

// Refresh re-projects into the attached parent.
func (p *Panel) Refresh() error {
	if p.parent == nil {
		return fmt.Errorf("%w: panel %q is not attached", grid.ErrIllegalState, p.tag)
	}
	p.project()
	return nil
}

var (
	_ grid.Component       = (*Panel)(nil)
	_ grid.ButtonContainer = (*Panel)(nil)
)
