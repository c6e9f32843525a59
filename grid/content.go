// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/content.go
// Summary: Ordered (item, handler) buffer shared by pagers and components.

package grid

import "fmt"

// ContentBuffer is an ordered list of items with a parallel handler list.
// Both lists always have the same length.
type ContentBuffer struct {
	items    []*Item
	handlers []ClickHandler
}

// Len returns the number of entries.
func (b *ContentBuffer) Len() int { return len(b.items) }

// Entry returns the item and handler stored at index.
func (b *ContentBuffer) Entry(index int) (*Item, ClickHandler, bool) {
	if index < 0 || index >= len(b.items) {
		return nil, nil, false
	}
	return b.items[index], b.handlers[index], true
}

// Items returns a copy of the item list.
func (b *ContentBuffer) Items() []*Item {
	return append([]*Item(nil), b.items...)
}

// Add appends one entry.
func (b *ContentBuffer) Add(it *Item, h ClickHandler) {
	b.items = append(b.items, it)
	b.handlers = append(b.handlers, h)
}

// AddAll appends items in order. handlers may be nil, meaning no handler for
// any of the items; otherwise it must match items in length.
func (b *ContentBuffer) AddAll(items []*Item, handlers []ClickHandler) error {
	if err := checkParallel(items, handlers); err != nil {
		return err
	}
	b.items = append(b.items, items...)
	if handlers == nil {
		b.handlers = append(b.handlers, make([]ClickHandler, len(items))...)
	} else {
		b.handlers = append(b.handlers, handlers...)
	}
	return nil
}

// Set overwrites the entry at index.
func (b *ContentBuffer) Set(index int, it *Item, h ClickHandler) error {
	if index < 0 || index >= len(b.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrInvalidIndex, index, len(b.items))
	}
	b.items[index] = it
	b.handlers[index] = h
	return nil
}

// Replace clears the buffer and appends items. The buffer is left untouched
// when the lists do not match.
func (b *ContentBuffer) Replace(items []*Item, handlers []ClickHandler) error {
	if err := checkParallel(items, handlers); err != nil {
		return err
	}
	b.Clear()
	return b.AddAll(items, handlers)
}

// Remove deletes the entry at index, shifting later entries down.
func (b *ContentBuffer) Remove(index int) error {
	if index < 0 || index >= len(b.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrInvalidIndex, index, len(b.items))
	}
	b.items = append(b.items[:index], b.items[index+1:]...)
	b.handlers = append(b.handlers[:index], b.handlers[index+1:]...)
	return nil
}

// RemoveItem deletes the first entry whose item equals it.
func (b *ContentBuffer) RemoveItem(it *Item) bool {
	for i, cur := range b.items {
		if cur.Equal(it) {
			_ = b.Remove(i)
			return true
		}
	}
	return false
}

// Clear drops every entry.
func (b *ContentBuffer) Clear() {
	b.items = nil
	b.handlers = nil
}

func checkParallel(items []*Item, handlers []ClickHandler) error {
	if handlers != nil && len(items) != len(handlers) {
		return fmt.Errorf("%w: %d items, %d handlers", ErrConfiguration, len(items), len(handlers))
	}
	return nil
}
