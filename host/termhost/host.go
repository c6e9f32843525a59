// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/termhost/host.go
// Summary: tcell-backed grid.Host: surfaces, open stack, listeners and scheduler.
// Usage: h, _ := termhost.New(opts); grid.Register(h); build containers; h.Run(ctx).
// Notes: Everything except Schedule must be called from the goroutine running
// Run (or before Run starts). Handlers execute on that goroutine.

package termhost

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgrid/grid"
	"github.com/framegrace/texelgrid/internal/tick"
)

// ErrForeignSurface is returned when Open receives a surface created elsewhere.
var ErrForeignSurface = errors.New("termhost: surface not created by this host")

// Options tune the terminal host.
type Options struct {
	// CellWidth is the number of columns one cell occupies.
	CellWidth int
	// TickInterval paces the scheduler.
	TickInterval time.Duration
	// ViewerName names the local viewer.
	ViewerName string
}

const (
	defaultCellWidth    = 3
	minCellWidth        = 2
	defaultTickInterval = 50 * time.Millisecond
)

func (o Options) normalised() Options {
	if o.CellWidth == 0 {
		o.CellWidth = defaultCellWidth
	}
	if o.CellWidth < minCellWidth {
		o.CellWidth = minCellWidth
	}
	if o.TickInterval <= 0 {
		o.TickInterval = defaultTickInterval
	}
	if o.ViewerName == "" {
		o.ViewerName = "local"
	}
	return o
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by New. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Host shows one surface at a time on a terminal screen. Opened surfaces
// form a stack; closing the top one reveals the previous.
type Host struct {
	screen tcell.Screen
	opts   Options
	viewer grid.Viewer

	surfaces  []*Surface
	open      []*Surface
	listeners []grid.Listener
	queue     tick.Queue

	cursor int
	status string
	press  *press
	dirty  bool
}

// New initialises a screen from the current factory and enables mouse input.
func New(opts Options) (*Host, error) {
	screen, err := screenFactory()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	opts = opts.normalised()
	return &Host{
		screen: screen,
		opts:   opts,
		viewer: grid.NewViewer(opts.ViewerName),
		dirty:  true,
	}, nil
}

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.DisableMouse()
	h.screen.Fini()
}

// Screen exposes the underlying tcell screen.
func (h *Host) Screen() tcell.Screen { return h.screen }

// Viewer returns the local viewer that all notifications carry.
func (h *Host) Viewer() grid.Viewer { return h.viewer }

// Active returns the surface on top of the open stack, or nil.
func (h *Host) Active() *Surface {
	if len(h.open) == 0 {
		return nil
	}
	return h.open[len(h.open)-1]
}

func (h *Host) CreateSurface(owner grid.Holder, size int, title string) (grid.Surface, error) {
	if !grid.ValidSize(size) {
		return nil, fmt.Errorf("%w: %d", grid.ErrInvalidSize, size)
	}
	return h.newSurface(owner, size, grid.RowWidth, title), nil
}

func (h *Host) CreateShapedSurface(owner grid.Holder, shape grid.Shape, title string) (grid.Surface, error) {
	if shape.Size() == 0 {
		return nil, fmt.Errorf("%w: unknown shape %s", grid.ErrInvalidSize, shape)
	}
	return h.newSurface(owner, shape.Size(), shape.Columns(), title), nil
}

func (h *Host) newSurface(owner grid.Holder, size, columns int, title string) *Surface {
	s := &Surface{
		host:    h,
		owner:   owner,
		title:   title,
		columns: columns,
		cells:   make([]*grid.Item, size),
	}
	h.surfaces = append(h.surfaces, s)
	return s
}

// Open pushes s onto the open stack (moving it to the top if already open)
// and notifies listeners.
func (h *Host) Open(v grid.Viewer, gs grid.Surface) error {
	s, ok := gs.(*Surface)
	if !ok || s.host != h {
		return ErrForeignSurface
	}
	h.removeOpen(s)
	h.open = append(h.open, s)
	if h.cursor >= s.Size() {
		h.cursor = 0
	}
	h.dirty = true
	e := &grid.OpenEvent{Surface: s, Viewer: v}
	for _, l := range h.snapshotListeners() {
		l.OnOpen(e)
	}
	return nil
}

// CloseActive pops the top surface and notifies listeners. It reports
// whether a surface was open.
func (h *Host) CloseActive() bool {
	s := h.Active()
	if s == nil {
		return false
	}
	h.removeOpen(s)
	h.cursor = 0
	h.dirty = true
	e := &grid.CloseEvent{Surface: s, Viewer: h.viewer}
	for _, l := range h.snapshotListeners() {
		l.OnClose(e)
	}
	return true
}

func (h *Host) removeOpen(s *Surface) {
	for i, cur := range h.open {
		if cur == s {
			h.open = append(h.open[:i], h.open[i+1:]...)
			return
		}
	}
}

// Schedule defers task to the next tick. Safe from any goroutine.
func (h *Host) Schedule(task func()) { h.queue.Schedule(task) }

// Tick runs due tasks and reports how many ran.
func (h *Host) Tick() int {
	n := h.queue.Tick()
	if n > 0 {
		h.dirty = true
	}
	return n
}

func (h *Host) Subscribe(l grid.Listener) {
	h.listeners = append(h.listeners, l)
}

func (h *Host) Unsubscribe(l grid.Listener) {
	for i, cur := range h.listeners {
		if cur == l {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Listeners may unsubscribe while a notification is being delivered.
func (h *Host) snapshotListeners() []grid.Listener {
	return append([]grid.Listener(nil), h.listeners...)
}

func (h *Host) click(s *Surface, slot int, kind grid.ClickKind) {
	e := grid.NewClickEvent(s, h.viewer, slot, kind, false)
	for _, l := range h.snapshotListeners() {
		l.OnClick(e)
	}
	if !e.Cancelled() {
		log.Printf("Termhost: click on slot %d of %q was not cancelled", slot, s.title)
	}
	h.dirty = true
}

func (h *Host) drag(s *Surface, slots []int) {
	e := grid.NewDragEvent(s, h.viewer, slots, false)
	for _, l := range h.snapshotListeners() {
		l.OnDrag(e)
	}
	h.dirty = true
}

var _ grid.Host = (*Host)(nil)
