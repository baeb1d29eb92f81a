// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import "github.com/gogpu/dx12/raw"

// Device is the pipeline-state creation capability of a D3D12 device.
//
// Key principle: dx12 RECEIVES the device from the host, it does NOT create
// one. The Windows implementation in backend/d3d12 wraps an existing
// ID3D12Device; tests substitute an in-process double.
//
// Both creation calls follow the same ownership contract: on success
// (status.Ok()) the returned resource carries exactly one reference, owned
// by the caller; on failure the resource is nil and nothing was created, so
// there is never a half-constructed reference to clean up.
//
// Thread safety of creation is the device's own contract (ID3D12Device
// object creation is free-threaded); the builders add no synchronization.
type Device interface {
	CreateGraphicsPipelineState(desc *raw.GraphicsPipelineStateDesc) (PipelineResource, Status)
	CreateComputePipelineState(desc *raw.ComputePipelineStateDesc) (PipelineResource, Status)
}

// PipelineResource is a device pipeline-state object (ID3D12PipelineState).
type PipelineResource interface {
	Resource

	// CachedBlob queries the cached binary representation of the pipeline
	// state. On success the blob carries one reference owned by the caller.
	CachedBlob() (Blob, Status)
}

// Blob is a device-owned byte buffer (ID3DBlob). Bytes returns a view of
// the buffer contents; the view is valid while a reference is held.
type Blob interface {
	Resource
	Bytes() []byte
}
