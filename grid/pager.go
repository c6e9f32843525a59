// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/pager.go
// Summary: Pagination capability layered on a Container.
// Usage: Obtained through Container.Pager on containers built with Paginated().
// Notes: Pages are 1-based and recomputed on every navigation call.

package grid

// IconFunc renders a navigation button for the page it leads to.
type IconFunc func(destination int) *Item

// StaticIcon returns an IconFunc that always yields it.
func StaticIcon(it *Item) IconFunc {
	return func(int) *Item { return it }
}

// Pager windows a ContentBuffer onto the container's content slots.
type Pager struct {
	c       *Container
	content ContentBuffer
	slots   []int
	page    int

	prevIcon IconFunc
	nextIcon IconFunc
	prevSlot int
	nextSlot int

	pageHandlers []func(page int)
}

func newPager(c *Container) *Pager {
	n := c.Size() - RowWidth
	if n < RowWidth {
		n = RowWidth
	}
	if n > c.Size() {
		n = c.Size()
	}
	slots := make([]int, n)
	for i := range slots {
		slots[i] = i
	}
	return &Pager{c: c, slots: slots, page: 1, prevSlot: -1, nextSlot: -1}
}

// Content exposes the paginated buffer.
func (p *Pager) Content() *ContentBuffer { return &p.content }

// ContentSlots returns a copy of the content slot list.
func (p *Pager) ContentSlots() []int { return append([]int(nil), p.slots...) }

// SetContentSlots replaces the cells that display a page. It does not
// re-render; call OpenPage or Container.Open.
func (p *Pager) SetContentSlots(slots []int) error {
	if err := p.c.checkSlots(slots); err != nil {
		return err
	}
	p.slots = append([]int(nil), slots...)
	return nil
}

// CurrentPage returns the 1-based current page.
func (p *Pager) CurrentPage() int { return p.page }

// LastPage returns max(1, ceil(len(content)/len(slots))).
func (p *Pager) LastPage() int {
	per := len(p.slots)
	if per == 0 {
		return 1
	}
	last := (p.content.Len() + per - 1) / per
	if last < 1 {
		return 1
	}
	return last
}

func (p *Pager) IsFirstPage() bool { return p.page == 1 }
func (p *Pager) IsLastPage() bool  { return p.page == p.LastPage() }

// OpenPage clamps page into [1, LastPage] and renders it.
func (p *Pager) OpenPage(page int) {
	last := p.LastPage()
	if page > last {
		page = last
	}
	if page < 1 {
		page = 1
	}
	p.page = page
	p.render()
	for _, h := range p.pageHandlers {
		h(p.page)
	}
}

// OpenNext opens the page after the current one.
func (p *Pager) OpenNext() { p.OpenPage(p.page + 1) }

// OpenPrevious opens the page before the current one.
func (p *Pager) OpenPrevious() { p.OpenPage(p.page - 1) }

// AddPageChangeHandler registers h to run after every OpenPage.
func (p *Pager) AddPageChangeHandler(h func(page int)) {
	p.pageHandlers = append(p.pageHandlers, h)
}

// SetPreviousPageItem places the previous-page button at slot.
func (p *Pager) SetPreviousPageItem(slot int, icon IconFunc) error {
	if err := p.c.checkSlot(slot); err != nil {
		return err
	}
	p.prevSlot = slot
	p.prevIcon = icon
	return nil
}

// SetNextPageItem places the next-page button at slot.
func (p *Pager) SetNextPageItem(slot int, icon IconFunc) error {
	if err := p.c.checkSlot(slot); err != nil {
		return err
	}
	p.nextSlot = slot
	p.nextIcon = icon
	return nil
}

// SetPreviousPageIcon sets the previous-page button without moving it.
func (p *Pager) SetPreviousPageIcon(icon IconFunc) { p.prevIcon = icon }

// SetNextPageIcon sets the next-page button without moving it.
func (p *Pager) SetNextPageIcon(icon IconFunc) { p.nextIcon = icon }

// SetPreviousPageSlot moves the previous-page button.
func (p *Pager) SetPreviousPageSlot(slot int) error {
	if err := p.c.checkSlot(slot); err != nil {
		return err
	}
	p.prevSlot = slot
	return nil
}

// SetNextPageSlot moves the next-page button.
func (p *Pager) SetNextPageSlot(slot int) error {
	if err := p.c.checkSlot(slot); err != nil {
		return err
	}
	p.nextSlot = slot
	return nil
}

// PreviousPageSlot returns the previous-page cell, -1 when unset.
func (p *Pager) PreviousPageSlot() int { return p.prevSlot }

// NextPageSlot returns the next-page cell, -1 when unset.
func (p *Pager) NextPageSlot() int { return p.nextSlot }

// render writes the current page into the content slots and refreshes the
// navigation buttons.
func (p *Pager) render() {
	last := p.LastPage()
	index := (p.page - 1) * len(p.slots)
	for _, slot := range p.slots {
		if it, h, ok := p.content.Entry(index); ok {
			p.c.put(slot, it, h)
		} else {
			p.c.clear(slot)
		}
		index++
	}

	if p.page > 1 && p.prevIcon != nil && p.prevSlot >= 0 {
		p.c.put(p.prevSlot, p.prevIcon(p.page-1), func(*ClickEvent) { p.OpenPrevious() })
	} else if p.prevSlot >= 0 {
		p.c.clear(p.prevSlot)
	}

	if p.page < last && p.nextIcon != nil && p.nextSlot >= 0 {
		p.c.put(p.nextSlot, p.nextIcon(p.page+1), func(*ClickEvent) { p.OpenNext() })
	} else if p.nextSlot >= 0 {
		p.c.clear(p.nextSlot)
	}
}
