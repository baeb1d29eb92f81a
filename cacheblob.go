// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"unsafe"

	"github.com/gogpu/dx12/raw"
)

// CacheBlob wraps an opaque cached-pipeline-state buffer.
//
// A blob comes from a previous build via PipelineState.Cached, or from
// outside (for example loaded from disk) via NewCacheBlob. Its binary
// layout is defined entirely by the device; dx12 passes the bytes through
// untouched. Assigning a blob to a builder's Cache field seeds the next
// build, which may reuse the compiled form or fall back to a full
// compilation if the blob is stale — that policy belongs to the device.
type CacheBlob struct {
	data  []byte
	owner *SharedHandle
}

// NewCacheBlob wraps an externally supplied buffer. The buffer is
// borrowed, not copied; it must stay alive and unmodified while the blob
// is in use.
func NewCacheBlob(data []byte) *CacheBlob {
	return &CacheBlob{data: data}
}

// newDeviceCacheBlob wraps a device-owned blob, taking ownership of the
// reference the device handed over.
func newDeviceCacheBlob(b Blob) *CacheBlob {
	return &CacheBlob{data: b.Bytes(), owner: NewSharedHandle(b)}
}

// Bytes returns the blob contents. Nil-safe: a nil blob has no bytes.
func (b *CacheBlob) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the blob length in bytes.
func (b *CacheBlob) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Release drops the device reference backing the blob, if any. Blobs over
// external buffers are unaffected. After Release the contents must not be
// read.
func (b *CacheBlob) Release() {
	if b == nil {
		return
	}
	b.owner.Release()
	b.data = nil
}

// toRaw produces the flat cached-pipeline-state fragment. A nil or empty
// blob yields the zero fragment, meaning "no cache hint".
func (b *CacheBlob) toRaw() raw.CachedPipelineState {
	if b == nil || len(b.data) == 0 {
		return raw.CachedPipelineState{}
	}
	return raw.CachedPipelineState{
		CachedBlob:            unsafe.Pointer(&b.data[0]),
		CachedBlobSizeInBytes: uintptr(len(b.data)),
	}
}
