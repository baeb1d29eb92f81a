// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"sync"
	"unsafe"
)

// Resource is one reference to a device-owned, reference-counted object,
// following COM IUnknown semantics. AddRef and Release return the new
// reference count. When Release drops the count to zero the underlying
// object is destroyed and the reference must not be used again.
//
// Implementations come from a device backend (backend/d3d12 on Windows) or
// from test doubles; the core only moves references around, it never
// fabricates them.
type Resource interface {
	AddRef() uint32
	Release() uint32
}

// NativeResource is implemented by resources backed by a native COM object.
// Pointer returns the raw interface pointer placed into flat descriptors.
type NativeResource interface {
	Resource
	Pointer() unsafe.Pointer
}

// SharedHandle owns exactly one reference to a Resource and guarantees that
// reference is released at most once. Shared ownership is explicit: Clone
// acquires an additional reference and returns a new owner for it, so each
// owner releases independently and the object is destroyed when the last
// one does.
//
// SharedHandle is safe for concurrent use: Clone, Release and Resource
// may race freely on one handle. The mutex makes Clone's check-and-AddRef
// atomic against Release, so a clone can never acquire a reference after
// the handle's own reference was given up.
type SharedHandle struct {
	mu       sync.Mutex
	res      Resource
	released bool
}

// NewSharedHandle takes ownership of one existing reference to res.
// It does not call AddRef; the reference being handed over is the one the
// handle will eventually release.
func NewSharedHandle(res Resource) *SharedHandle {
	return &SharedHandle{res: res}
}

// Clone acquires an additional reference and returns a new owner for it.
// Clone on a released handle returns nil.
func (h *SharedHandle) Clone() *SharedHandle {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return nil
	}
	h.res.AddRef()
	return &SharedHandle{res: h.res}
}

// Release drops the owned reference. Further calls are no-ops.
func (h *SharedHandle) Release() {
	if h == nil || h.res == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.released {
		h.released = true
		h.res.Release()
	}
}

// Resource returns the underlying reference, or nil after Release.
func (h *SharedHandle) Resource() Resource {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return nil
	}
	return h.res
}
