// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"errors"
	"fmt"
)

// Package sentinel errors.
var (
	// ErrNilDevice is returned when Build is called with a nil device.
	ErrNilDevice = errors.New("dx12: device is nil")

	// ErrReleased is returned when a pipeline state is used after its last
	// reference was released.
	ErrReleased = errors.New("dx12: pipeline state already released")
)

// CreationError reports that the device rejected an assembled pipeline
// descriptor. The core performs no retry and no recovery; the native
// status is carried through for the caller to inspect.
type CreationError struct {
	// Kind is "graphics" or "compute".
	Kind string

	// Status is the native status returned by the device.
	Status Status
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("dx12: %s pipeline state creation failed: status %s", e.Kind, e.Status)
}

// CacheError reports a failed cached-blob query. This is a normal,
// non-fatal outcome: a pipeline state may simply have no cached
// representation yet, and the caller can rebuild from scratch.
type CacheError struct {
	// Status is the native status returned by the cache query.
	Status Status
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("dx12: cached blob retrieval failed: status %s", e.Status)
}
