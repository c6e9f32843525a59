// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/container.go
// Summary: CellContainer: direct per-cell addressing with attached click handlers.
// Usage: Create with New/NewShaped; pass Paginated() to get a container whose
// content-level operations page a ContentBuffer across content slots.
// Notes: Not safe for concurrent use. All calls belong on the host's loop.

package grid

import "fmt"

// ButtonContainer is the addressing contract shared by containers and
// components. Cell-level calls address cells; content-level calls address the
// content buffer. The two coordinate spaces are never mixed.
type ButtonContainer interface {
	AddItem(it *Item, h ClickHandler) error
	SetItem(slot int, it *Item, h ClickHandler) error
	SetItemRange(from, to int, it *Item, h ClickHandler) error
	SetItems(slots []int, it *Item, h ClickHandler) error
	RemoveItem(slot int) error
	RemoveItems(slots ...int) error
	ClearItems()

	AddContent(it *Item, h ClickHandler) error
	AddContents(items []*Item, handlers []ClickHandler) error
	SetContent(index int, it *Item, h ClickHandler) error
	ReplaceContent(items []*Item, handlers []ClickHandler) error
	ClearContent() error
}

// Kind tags the container variant.
type Kind int

const (
	KindBase Kind = iota
	KindPaginated
)

func (k Kind) String() string {
	if k == KindPaginated {
		return "paginated"
	}
	return "base"
}

// Option configures a container at construction.
type Option func(*options)

type options struct {
	title     string
	paginated bool
}

// WithTitle sets the surface title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// Paginated attaches a Pager to the container.
func Paginated() Option {
	return func(o *options) { o.paginated = true }
}

// Container owns a fixed array of cells on a host surface.
type Container struct {
	host       Host
	surface    Surface
	handlers   map[int]ClickHandler
	components map[string]Component
	pager      *Pager

	openHandlers  []OpenHandler
	closeHandlers []CloseHandler
	clickHandlers []ClickHandler
	dragHandlers  []DragHandler
	closeFilter   func(Viewer) bool
}

// New creates a container of size cells. size must be a positive multiple
// of RowWidth.
func New(host Host, size int, opts ...Option) (*Container, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("%w: %d is not a positive multiple of %d", ErrInvalidSize, size, RowWidth)
	}
	o := buildOptions(opts)
	c := newContainer(host)
	s, err := host.CreateSurface(c, size, o.title)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	return c.bind(s, o)
}

// NewShaped creates a container from a preset shape.
func NewShaped(host Host, shape Shape, opts ...Option) (*Container, error) {
	if shape.Size() == 0 {
		return nil, fmt.Errorf("%w: unknown shape %v", ErrInvalidSize, shape)
	}
	o := buildOptions(opts)
	c := newContainer(host)
	s, err := host.CreateShapedSurface(c, shape, o.title)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	return c.bind(s, o)
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func newContainer(host Host) *Container {
	return &Container{
		host:       host,
		handlers:   make(map[int]ClickHandler),
		components: make(map[string]Component),
	}
}

func (c *Container) bind(s Surface, o options) (*Container, error) {
	if s == nil || s.Owner() != Holder(c) {
		return nil, ErrForeignSurface
	}
	c.surface = s
	if o.paginated {
		c.pager = newPager(c)
	}
	return c, nil
}

// Surface returns the host surface backing the container.
func (c *Container) Surface() Surface { return c.surface }

// Host returns the host the container was created on.
func (c *Container) Host() Host { return c.host }

// Size returns the cell capacity.
func (c *Container) Size() int { return c.surface.Size() }

// Title returns the surface title.
func (c *Container) Title() string { return c.surface.Title() }

// Kind reports whether the container supports pagination.
func (c *Container) Kind() Kind {
	if c.pager != nil {
		return KindPaginated
	}
	return KindBase
}

// Pager returns the pagination capability, or nil for base containers.
func (c *Container) Pager() *Pager { return c.pager }

func (c *Container) checkSlot(slot int) error {
	if slot < 0 || slot >= c.Size() {
		return fmt.Errorf("%w: %d (size %d)", ErrInvalidSlot, slot, c.Size())
	}
	return nil
}

func (c *Container) checkSlots(slots []int) error {
	for _, slot := range slots {
		if err := c.checkSlot(slot); err != nil {
			return err
		}
	}
	return nil
}

// put writes a validated slot.
func (c *Container) put(slot int, it *Item, h ClickHandler) {
	if it == nil {
		c.surface.Clear(slot)
	} else {
		c.surface.SetItem(slot, it)
	}
	if h != nil {
		c.handlers[slot] = h
	} else {
		delete(c.handlers, slot)
	}
}

// clear empties a validated slot.
func (c *Container) clear(slot int) {
	c.surface.Clear(slot)
	delete(c.handlers, slot)
}

// Item returns the item at slot, nil when empty.
func (c *Container) Item(slot int) (*Item, error) {
	if err := c.checkSlot(slot); err != nil {
		return nil, err
	}
	return c.surface.Item(slot), nil
}

// Handler returns the click handler bound to slot, if any.
func (c *Container) Handler(slot int) ClickHandler {
	return c.handlers[slot]
}

// FirstEmpty returns the lowest empty slot or -1 when full.
func (c *Container) FirstEmpty() int {
	for i := 0; i < c.Size(); i++ {
		if c.surface.Item(i) == nil {
			return i
		}
	}
	return -1
}

// AddItem places it in the first empty cell. A full container is left as is.
func (c *Container) AddItem(it *Item, h ClickHandler) error {
	if slot := c.FirstEmpty(); slot >= 0 {
		c.put(slot, it, h)
	}
	return nil
}

// SetItem places it at slot. A nil handler drops any handler on that cell.
func (c *Container) SetItem(slot int, it *Item, h ClickHandler) error {
	if err := c.checkSlot(slot); err != nil {
		return err
	}
	c.put(slot, it, h)
	return nil
}

// SetItemRange places it in every slot of [from, to). Both bounds must lie
// in [0, Size()]; an empty range is then a no-op.
func (c *Container) SetItemRange(from, to int, it *Item, h ClickHandler) error {
	for _, bound := range []int{from, to} {
		if bound < 0 || bound > c.Size() {
			return fmt.Errorf("%w: range [%d, %d) (size %d)", ErrInvalidSlot, from, to, c.Size())
		}
	}
	if from >= to {
		return nil
	}
	for slot := from; slot < to; slot++ {
		c.put(slot, it, h)
	}
	return nil
}

// SetItems places it in every listed slot.
func (c *Container) SetItems(slots []int, it *Item, h ClickHandler) error {
	if err := c.checkSlots(slots); err != nil {
		return err
	}
	for _, slot := range slots {
		c.put(slot, it, h)
	}
	return nil
}

// RemoveItem clears the item and handler at slot.
func (c *Container) RemoveItem(slot int) error {
	if err := c.checkSlot(slot); err != nil {
		return err
	}
	c.clear(slot)
	return nil
}

// RemoveItems clears every listed slot.
func (c *Container) RemoveItems(slots ...int) error {
	if err := c.checkSlots(slots); err != nil {
		return err
	}
	for _, slot := range slots {
		c.clear(slot)
	}
	return nil
}

// ClearItems empties every cell and drops every handler.
func (c *Container) ClearItems() {
	c.surface.ClearAll()
	c.handlers = make(map[int]ClickHandler)
}

func (c *Container) unsupported(op string) error {
	return fmt.Errorf("%w: %s on %s container", ErrUnsupported, op, c.Kind())
}

// AddContent appends to the paginated content.
func (c *Container) AddContent(it *Item, h ClickHandler) error {
	if c.pager == nil {
		return c.unsupported("AddContent")
	}
	c.pager.content.Add(it, h)
	return nil
}

// AddContents appends items to the paginated content. handlers may be nil.
func (c *Container) AddContents(items []*Item, handlers []ClickHandler) error {
	if c.pager == nil {
		return c.unsupported("AddContents")
	}
	return c.pager.content.AddAll(items, handlers)
}

// SetContent overwrites the content entry at index.
func (c *Container) SetContent(index int, it *Item, h ClickHandler) error {
	if c.pager == nil {
		return c.unsupported("SetContent")
	}
	return c.pager.content.Set(index, it, h)
}

// ReplaceContent clears the content and appends items.
func (c *Container) ReplaceContent(items []*Item, handlers []ClickHandler) error {
	if c.pager == nil {
		return c.unsupported("ReplaceContent")
	}
	return c.pager.content.Replace(items, handlers)
}

// ClearContent drops all paginated content.
func (c *Container) ClearContent() error {
	if c.pager == nil {
		return c.unsupported("ClearContent")
	}
	c.pager.content.Clear()
	return nil
}

// AddOpenHandler registers h to run when the container is opened.
func (c *Container) AddOpenHandler(h OpenHandler) { c.openHandlers = append(c.openHandlers, h) }

// AddCloseHandler registers h to run when the container is closed.
func (c *Container) AddCloseHandler(h CloseHandler) { c.closeHandlers = append(c.closeHandlers, h) }

// AddClickHandler registers h to run on every click, before cell handlers.
func (c *Container) AddClickHandler(h ClickHandler) { c.clickHandlers = append(c.clickHandlers, h) }

// AddDragHandler registers h to run on every drag.
func (c *Container) AddDragHandler(h DragHandler) { c.dragHandlers = append(c.dragHandlers, h) }

// SetCloseFilter installs a predicate that vetoes closing. Returning true
// keeps the container open for that viewer.
func (c *Container) SetCloseFilter(f func(Viewer) bool) { c.closeFilter = f }

// Open renders the current page (if paginated) and shows the container.
// Safe to call repeatedly.
func (c *Container) Open(v Viewer) error {
	if c.pager != nil {
		c.pager.OpenPage(c.pager.page)
	}
	return c.host.Open(v, c.surface)
}

func (c *Container) handleOpen(e *OpenEvent) {
	for _, h := range c.openHandlers {
		h(e)
	}
}

// handleClose reports whether the close should be vetoed.
func (c *Container) handleClose(e *CloseEvent) bool {
	for _, h := range c.closeHandlers {
		h(e)
	}
	return c.closeFilter != nil && c.closeFilter(e.Viewer)
}

func (c *Container) handleClick(e *ClickEvent) {
	for _, h := range c.clickHandlers {
		h(e)
	}
	if h := c.handlers[e.Slot]; h != nil {
		h(e)
	}
}

func (c *Container) handleDrag(e *DragEvent) {
	for _, h := range c.dragHandlers {
		h(e)
	}
}
