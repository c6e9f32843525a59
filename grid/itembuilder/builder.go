// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/itembuilder/builder.go
// Summary: Fluent construction of items and their click handlers.
// Usage: itembuilder.New('/').Name("Sword").Handler(fn).Add(container)

package itembuilder

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgrid/grid"
	"github.com/framegrace/texelgrid/grid/scheme"
)

// Builder accumulates an item and an optional handler.
type Builder struct {
	item    grid.Item
	handler grid.ClickHandler
}

// New starts a builder for glyph with the default style.
func New(glyph rune) *Builder {
	return &Builder{item: grid.Item{Glyph: glyph, Style: tcell.StyleDefault}}
}

// From starts a builder from a copy of it.
func From(it *grid.Item) *Builder {
	b := &Builder{}
	if it != nil {
		b.item = *it
		b.item.Lore = append([]string(nil), it.Lore...)
	}
	return b
}

func (b *Builder) Name(name string) *Builder {
	b.item.Name = name
	return b
}

// Lore appends description lines.
func (b *Builder) Lore(lines ...string) *Builder {
	b.item.Lore = append(b.item.Lore, lines...)
	return b
}

func (b *Builder) Style(st tcell.Style) *Builder {
	b.item.Style = st
	return b
}

// Foreground is shorthand for Style(style.Foreground(c)).
func (b *Builder) Foreground(c tcell.Color) *Builder {
	b.item.Style = b.item.Style.Foreground(c)
	return b
}

func (b *Builder) Handler(h grid.ClickHandler) *Builder {
	b.handler = h
	return b
}

// Build returns a fresh item; later builder calls do not affect it.
func (b *Builder) Build() *grid.Item {
	it := b.item
	it.Lore = append([]string(nil), b.item.Lore...)
	return &it
}

// Bind binds the built item and handler to r in s.
func (b *Builder) Bind(s *scheme.Scheme, r rune) *scheme.Scheme {
	return s.BindItem(r, b.Build(), b.handler)
}

// Add appends the built item to c: the first empty cell of a container, or
// the end of a component's or pager's content.
func (b *Builder) Add(c grid.ButtonContainer) error {
	return c.AddItem(b.Build(), b.handler)
}

// AddContent appends the built item to c's content buffer.
func (b *Builder) AddContent(c grid.ButtonContainer) error {
	return c.AddContent(b.Build(), b.handler)
}

// Set places the built item at slot (or content index for components).
func (b *Builder) Set(c grid.ButtonContainer, slot int) error {
	return c.SetItem(slot, b.Build(), b.handler)
}
