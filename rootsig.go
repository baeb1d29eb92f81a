// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import "unsafe"

// RootSignature is a borrowed, non-owning reference to an externally-owned
// root signature. The owner must keep it alive for the duration of every
// Build call that uses it; dx12 never takes a reference of its own.
type RootSignature struct {
	ptr unsafe.Pointer
}

// RootSignatureFromPointer wraps a native root-signature interface pointer
// (ID3D12RootSignature*). The pointer is stored as-is and placed into flat
// descriptors without interpretation.
func RootSignatureFromPointer(p unsafe.Pointer) *RootSignature {
	return &RootSignature{ptr: p}
}

// RootSignatureFromResource wraps a native resource. Ownership stays with
// the caller.
func RootSignatureFromResource(res NativeResource) *RootSignature {
	if res == nil {
		return &RootSignature{}
	}
	return &RootSignature{ptr: res.Pointer()}
}

// Pointer returns the native interface pointer, or nil for the zero value.
func (rs *RootSignature) Pointer() unsafe.Pointer {
	if rs == nil {
		return nil
	}
	return rs.ptr
}
