// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/scheme/scheme.go
// Summary: Mask compiler that assigns cell roles declaratively.
// Usage: Build with New().Masks(...).Bind*(...), then Apply to a container.
// Notes: Role priority is pagination > next page > previous page > component
// > literal item. Apply validates the whole plan before touching any cell.

package scheme

import (
	"log"
	"strings"

	"github.com/framegrace/texelgrid/grid"
)

// Scheme is an ordered list of row masks plus rune bindings.
type Scheme struct {
	masks      []string
	items      map[rune]*grid.Item
	handlers   map[rune]grid.ClickHandler
	pagination map[rune]bool
	components map[rune]string

	nextPage, previousPage       rune
	hasNextPage, hasPreviousPage bool
}

// New returns an empty scheme.
func New() *Scheme {
	return &Scheme{
		items:      make(map[rune]*grid.Item),
		handlers:   make(map[rune]grid.ClickHandler),
		pagination: make(map[rune]bool),
		components: make(map[rune]string),
	}
}

// Mask appends one row. Spaces are stripped and rows are cut to RowWidth runes.
func (s *Scheme) Mask(mask string) *Scheme {
	mask = strings.ReplaceAll(mask, " ", "")
	if runes := []rune(mask); len(runes) > grid.RowWidth {
		mask = string(runes[:grid.RowWidth])
	}
	s.masks = append(s.masks, mask)
	return s
}

// Masks appends several rows in order.
func (s *Scheme) Masks(masks ...string) *Scheme {
	for _, m := range masks {
		s.Mask(m)
	}
	return s
}

// Rows returns a copy of the normalised masks.
func (s *Scheme) Rows() []string {
	return append([]string(nil), s.masks...)
}

// BindItem places it (with h, which may be nil) on every cell marked r.
// Rebinding replaces both item and handler. A nil item unbinds r.
func (s *Scheme) BindItem(r rune, it *grid.Item, h grid.ClickHandler) *Scheme {
	if it == nil {
		return s.UnbindItem(r)
	}
	s.items[r] = it
	if h != nil {
		s.handlers[r] = h
	} else {
		delete(s.handlers, r)
	}
	return s
}

// UnbindItem removes the literal item and handler bound to r.
func (s *Scheme) UnbindItem(r rune) *Scheme {
	delete(s.items, r)
	delete(s.handlers, r)
	return s
}

// BindPagination marks r as a content slot. Several runes may be bound.
func (s *Scheme) BindPagination(r rune) *Scheme {
	s.pagination[r] = true
	return s
}

// BindNextPage marks r as the next-page button cell.
func (s *Scheme) BindNextPage(r rune) *Scheme {
	s.nextPage, s.hasNextPage = r, true
	return s
}

// BindPreviousPage marks r as the previous-page button cell.
func (s *Scheme) BindPreviousPage(r rune) *Scheme {
	s.previousPage, s.hasPreviousPage = r, true
	return s
}

// BindComponent marks r as a slot of the component registered under tag.
func (s *Scheme) BindComponent(r rune, tag string) *Scheme {
	s.components[r] = tag
	return s
}

type literal struct {
	slot int
	item *grid.Item
	h    grid.ClickHandler
}

// plan is the outcome of one pass over the masks.
type plan struct {
	literals   []literal
	pagination []int
	next, prev int
	tags       []string
	components map[string][]int
}

func (s *Scheme) compile() plan {
	p := plan{next: -1, prev: -1, components: make(map[string][]int)}
	for row, mask := range s.masks {
		for col, r := range []rune(mask) {
			slot := row*grid.RowWidth + col
			switch {
			case s.pagination[r]:
				p.pagination = append(p.pagination, slot)
			case s.hasNextPage && r == s.nextPage:
				p.next = slot
			case s.hasPreviousPage && r == s.previousPage:
				p.prev = slot
			default:
				if tag, ok := s.components[r]; ok {
					if _, seen := p.components[tag]; !seen {
						p.tags = append(p.tags, tag)
					}
					p.components[tag] = append(p.components[tag], slot)
					continue
				}
				if it, ok := s.items[r]; ok {
					p.literals = append(p.literals, literal{slot: slot, item: it, h: s.handlers[r]})
				}
			}
		}
	}
	return p
}

// Apply compiles the masks onto c. Pagination and navigation roles are
// ignored on containers without a pager. Component slots for tags with no
// registered component are discarded. Slots are validated before anything is
// written, so a validation error leaves c unchanged. Components are updated
// first; one that rejects its slots stops Apply before pagination or literal
// cells change.
func (s *Scheme) Apply(c *grid.Container) error {
	p := s.compile()
	pager := c.Pager()

	check := make([]int, 0, len(p.literals))
	for _, l := range p.literals {
		check = append(check, l.slot)
	}
	if pager != nil {
		check = append(check, p.pagination...)
		if p.next >= 0 {
			check = append(check, p.next)
		}
		if p.prev >= 0 {
			check = append(check, p.prev)
		}
	}
	for _, tag := range p.tags {
		if _, ok := c.Component(tag); ok {
			check = append(check, p.components[tag]...)
		}
	}
	if err := c.ValidateSlots(check); err != nil {
		return err
	}

	for _, tag := range p.tags {
		comp, ok := c.Component(tag)
		if !ok {
			log.Printf("Scheme: no component registered for %q, discarding %d slots", tag, len(p.components[tag]))
			continue
		}
		if err := comp.SetSlots(p.components[tag]); err != nil {
			return err
		}
	}

	if pager != nil {
		if len(p.pagination) > 0 {
			if err := pager.SetContentSlots(p.pagination); err != nil {
				return err
			}
		}
		if p.next >= 0 {
			if err := pager.SetNextPageSlot(p.next); err != nil {
				return err
			}
		}
		if p.prev >= 0 {
			if err := pager.SetPreviousPageSlot(p.prev); err != nil {
				return err
			}
		}
	}

	for _, l := range p.literals {
		c.Project(l.slot, l.item, l.h)
	}
	return nil
}
