// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/manager.go
// Summary: Routes host notifications to the container that owns a surface.
// Usage: Call Register once per host before opening containers.
// Notes: Clicks and drags on managed surfaces are suppressed by default.

package grid

import (
	"log"
	"sync"
)

var (
	registryMu sync.Mutex
	registered = make(map[Host]*Manager)
)

// Manager is the Listener that dispatches host notifications to containers.
type Manager struct {
	host Host
}

// Register subscribes a new Manager to host. A host accepts one Manager.
func Register(host Host) (*Manager, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registered[host]; ok {
		return nil, ErrAlreadyRegistered
	}
	m := &Manager{host: host}
	registered[host] = m
	host.Subscribe(m)
	log.Printf("Grid: manager registered")
	return m, nil
}

// Unregister detaches the manager from its host.
func (m *Manager) Unregister() {
	registryMu.Lock()
	defer registryMu.Unlock()
	if registered[m.host] != m {
		return
	}
	delete(registered, m.host)
	m.host.Unsubscribe(m)
}

func ownerOf(s Surface) (*Container, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.Owner().(*Container)
	return c, ok && c != nil
}

func (m *Manager) OnOpen(e *OpenEvent) {
	if c, ok := ownerOf(e.Surface); ok {
		c.handleOpen(e)
	}
}

// OnClose runs close handlers and, on veto, reopens the container on the
// next host tick.
func (m *Manager) OnClose(e *CloseEvent) {
	c, ok := ownerOf(e.Surface)
	if !ok {
		return
	}
	if c.handleClose(e) {
		viewer := e.Viewer
		m.host.Schedule(func() {
			if err := c.Open(viewer); err != nil {
				log.Printf("Grid: reopen after vetoed close failed: %v", err)
			}
		})
	}
}

func (m *Manager) OnClick(e *ClickEvent) {
	c, ok := ownerOf(e.Surface)
	if !ok {
		return
	}
	wasCancelled := e.Cancelled()
	e.SetCancelled(true)
	c.handleClick(e)
	// An external veto survives whatever the handlers did.
	if wasCancelled {
		e.SetCancelled(true)
	}
}

func (m *Manager) OnDrag(e *DragEvent) {
	c, ok := ownerOf(e.Surface)
	if !ok {
		return
	}
	wasCancelled := e.Cancelled()
	e.SetCancelled(true)
	c.handleDrag(e)
	if wasCancelled {
		e.SetCancelled(true)
	}
}
