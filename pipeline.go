// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

// PipelineStateFlags modify pipeline-state creation
// (D3D12_PIPELINE_STATE_FLAGS). Bits combine with bitwise OR.
type PipelineStateFlags uint32

const (
	PipelineStateFlagNone      PipelineStateFlags = 0
	PipelineStateFlagToolDebug PipelineStateFlags = 0x1
)

// SampleDesc describes multisampling (DXGI_SAMPLE_DESC).
type SampleDesc struct {
	Count   uint32
	Quality uint32
}

// DefaultSampleDesc returns single-sample rendering.
func DefaultSampleDesc() SampleDesc {
	return SampleDesc{Count: 1}
}

// PipelineState is an immutable, reference-counted pipeline-state object.
// Both kinds (graphics and compute) satisfy it; the cached-blob query is
// one shared code path rather than two.
type PipelineState interface {
	// Cached queries the device for the cached binary representation of
	// this pipeline state. Failure is a normal outcome (*CacheError); a
	// successful zero-length blob is also possible and valid.
	Cached() (*CacheBlob, error)

	// Handle returns the shared handle owning the device resource. Clone
	// it to share ownership across components.
	Handle() *SharedHandle

	// Release drops this owner's reference. The device object is
	// destroyed when the last owner releases.
	Release()
}

// GraphicsPipelineState is a pipeline-state object created by a
// GraphicsPipelineStateBuilder. Immutable after creation; only a new
// build produces a different state.
type GraphicsPipelineState struct {
	res    PipelineResource
	handle *SharedHandle
}

func newGraphicsPipelineState(res PipelineResource) *GraphicsPipelineState {
	return &GraphicsPipelineState{res: res, handle: NewSharedHandle(res)}
}

// Handle returns the shared handle owning the device resource.
func (p *GraphicsPipelineState) Handle() *SharedHandle { return p.handle }

// Cached queries the device for the cached blob of this pipeline state.
func (p *GraphicsPipelineState) Cached() (*CacheBlob, error) {
	return queryCached(p.res, p.handle)
}

// Clone acquires an additional reference and returns a new owner.
func (p *GraphicsPipelineState) Clone() *GraphicsPipelineState {
	h := p.handle.Clone()
	if h == nil {
		return nil
	}
	return &GraphicsPipelineState{res: p.res, handle: h}
}

// Release drops this owner's reference.
func (p *GraphicsPipelineState) Release() { p.handle.Release() }

// ComputePipelineState is a pipeline-state object created by a
// ComputePipelineStateBuilder.
type ComputePipelineState struct {
	res    PipelineResource
	handle *SharedHandle
}

func newComputePipelineState(res PipelineResource) *ComputePipelineState {
	return &ComputePipelineState{res: res, handle: NewSharedHandle(res)}
}

// Handle returns the shared handle owning the device resource.
func (p *ComputePipelineState) Handle() *SharedHandle { return p.handle }

// Cached queries the device for the cached blob of this pipeline state.
func (p *ComputePipelineState) Cached() (*CacheBlob, error) {
	return queryCached(p.res, p.handle)
}

// Clone acquires an additional reference and returns a new owner.
func (p *ComputePipelineState) Clone() *ComputePipelineState {
	h := p.handle.Clone()
	if h == nil {
		return nil
	}
	return &ComputePipelineState{res: p.res, handle: h}
}

// Release drops this owner's reference.
func (p *ComputePipelineState) Release() { p.handle.Release() }

// queryCached is the single cache-extraction path shared by both state
// kinds. It maps a failed query to *CacheError and wraps a successful one
// in a CacheBlob owning the returned reference.
func queryCached(res PipelineResource, h *SharedHandle) (*CacheBlob, error) {
	if h.Resource() == nil {
		return nil, ErrReleased
	}
	blob, st := res.CachedBlob()
	if !st.Ok() {
		Logger().Warn("dx12: cached blob query failed", "status", st.String())
		return nil, &CacheError{Status: st}
	}
	return newDeviceCacheBlob(blob), nil
}
