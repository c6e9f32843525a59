// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/errors.go
// Summary: Sentinel errors returned by the grid engine.

package grid

import "errors"

var (
	// ErrConfiguration reports mismatched bulk content and handler lists.
	ErrConfiguration = errors.New("grid: content and handlers must have the same size")
	// ErrInvalidSlot reports a cell index outside [0, capacity).
	ErrInvalidSlot = errors.New("grid: invalid slot")
	// ErrInvalidIndex reports a content index outside the content buffer.
	ErrInvalidIndex = errors.New("grid: invalid content index")
	// ErrUnsupported reports a content-level call on a container without pagination.
	ErrUnsupported = errors.New("grid: operation not supported by this container")
	// ErrIllegalState reports an operation that needs an attached container.
	ErrIllegalState = errors.New("grid: illegal state")
	// ErrInvalidSize reports a capacity that is not a positive multiple of RowWidth.
	ErrInvalidSize = errors.New("grid: invalid container size")
	// ErrForeignSurface reports a host surface that is not owned by the container.
	ErrForeignSurface = errors.New("grid: surface owner is not this container")
	// ErrAlreadyRegistered reports a second Manager registration on one host.
	ErrAlreadyRegistered = errors.New("grid: manager already registered on this host")
)
