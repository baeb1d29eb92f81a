// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package d3d12

import (
	"syscall"
	"unsafe"

	"github.com/gogpu/dx12"
	"github.com/gogpu/dx12/raw"
)

// Device adapts a native ID3D12Device to the dx12.Device capability.
//
// Key principle: the host application owns the device. Device borrows the
// interface pointer and never calls AddRef or Release on it; the host must
// keep the device alive for the lifetime of this wrapper.
type Device struct {
	dev *iD3D12Device
}

// NewDevice wraps an existing ID3D12Device interface pointer.
func NewDevice(ptr unsafe.Pointer) *Device {
	return &Device{dev: (*iD3D12Device)(ptr)}
}

// CreateGraphicsPipelineState dispatches ID3D12Device::CreateGraphicsPipelineState.
func (d *Device) CreateGraphicsPipelineState(desc *raw.GraphicsPipelineStateDesc) (dx12.PipelineResource, dx12.Status) {
	var out *iD3D12PipelineState
	hr, _, _ := syscall.SyscallN(
		d.dev.vtbl.CreateGraphicsPipelineState,
		uintptr(unsafe.Pointer(d.dev)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&iidID3D12PipelineState)),
		uintptr(unsafe.Pointer(&out)),
	)
	st := dx12.Status(int32(uint32(hr)))
	if !st.Ok() {
		return nil, st
	}
	return &pipelineState{ptr: out}, st
}

// CreateComputePipelineState dispatches ID3D12Device::CreateComputePipelineState.
func (d *Device) CreateComputePipelineState(desc *raw.ComputePipelineStateDesc) (dx12.PipelineResource, dx12.Status) {
	var out *iD3D12PipelineState
	hr, _, _ := syscall.SyscallN(
		d.dev.vtbl.CreateComputePipelineState,
		uintptr(unsafe.Pointer(d.dev)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&iidID3D12PipelineState)),
		uintptr(unsafe.Pointer(&out)),
	)
	st := dx12.Status(int32(uint32(hr)))
	if !st.Ok() {
		return nil, st
	}
	return &pipelineState{ptr: out}, st
}

// pipelineState is a dx12.PipelineResource over ID3D12PipelineState.
type pipelineState struct {
	ptr *iD3D12PipelineState
}

func (p *pipelineState) AddRef() uint32 {
	n, _, _ := syscall.SyscallN(p.ptr.vtbl.AddRef, uintptr(unsafe.Pointer(p.ptr)))
	return uint32(n)
}

func (p *pipelineState) Release() uint32 {
	n, _, _ := syscall.SyscallN(p.ptr.vtbl.Release, uintptr(unsafe.Pointer(p.ptr)))
	return uint32(n)
}

// Pointer returns the raw ID3D12PipelineState interface pointer.
func (p *pipelineState) Pointer() unsafe.Pointer {
	return unsafe.Pointer(p.ptr)
}

// CachedBlob dispatches ID3D12PipelineState::GetCachedBlob.
func (p *pipelineState) CachedBlob() (dx12.Blob, dx12.Status) {
	var out *iD3DBlob
	hr, _, _ := syscall.SyscallN(
		p.ptr.vtbl.GetCachedBlob,
		uintptr(unsafe.Pointer(p.ptr)),
		uintptr(unsafe.Pointer(&out)),
	)
	st := dx12.Status(int32(uint32(hr)))
	if !st.Ok() {
		return nil, st
	}
	return &blob{ptr: out}, st
}

// blob is a dx12.Blob over ID3DBlob.
type blob struct {
	ptr *iD3DBlob
}

func (b *blob) AddRef() uint32 {
	n, _, _ := syscall.SyscallN(b.ptr.vtbl.AddRef, uintptr(unsafe.Pointer(b.ptr)))
	return uint32(n)
}

func (b *blob) Release() uint32 {
	n, _, _ := syscall.SyscallN(b.ptr.vtbl.Release, uintptr(unsafe.Pointer(b.ptr)))
	return uint32(n)
}

// Bytes returns a view of the blob contents. The view is valid while a
// reference to the blob is held.
func (b *blob) Bytes() []byte {
	p, _, _ := syscall.SyscallN(b.ptr.vtbl.GetBufferPointer, uintptr(unsafe.Pointer(b.ptr)))
	n, _, _ := syscall.SyscallN(b.ptr.vtbl.GetBufferSize, uintptr(unsafe.Pointer(b.ptr)))
	if p == 0 || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}
