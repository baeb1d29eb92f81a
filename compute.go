// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"runtime"

	"github.com/gogpu/dx12/raw"
)

// ComputePipelineStateBuilder is the reduced-surface counterpart of
// GraphicsPipelineStateBuilder: one shader stage, no fixed-function
// sub-descriptors. Same contract otherwise — public mutable fields,
// validation deferred to the device.
type ComputePipelineStateBuilder struct {
	// RootSignature is borrowed; its owner must keep it alive across
	// every Build call.
	RootSignature *RootSignature

	// CS is the compute shader. Leaving it nil produces a zero-length
	// bytecode field, which the device rejects (missing required stage).
	CS *ComputeShader

	NodeMask uint32

	// Cache optionally seeds creation with a blob from a previous build.
	Cache *CacheBlob

	Flags PipelineStateFlags
}

// NewComputePipelineStateBuilder returns a builder with defaults: no
// shader, node mask zero, no cache hint, no flags.
func NewComputePipelineStateBuilder(rootSignature *RootSignature) *ComputePipelineStateBuilder {
	return &ComputePipelineStateBuilder{RootSignature: rootSignature}
}

// Build assembles the minimal flat descriptor and asks the device to
// create the compute pipeline state.
func (b *ComputePipelineStateBuilder) Build(dev Device) (*ComputePipelineState, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}

	var desc raw.ComputePipelineStateDesc
	desc.RootSignature = b.RootSignature.Pointer()
	csLen := 0
	if b.CS != nil {
		desc.CS = b.CS.toRaw()
		csLen = b.CS.Len()
	}
	desc.NodeMask = b.NodeMask
	desc.CachedPSO = b.Cache.toRaw()
	desc.Flags = uint32(b.Flags)

	Logger().Debug("dx12: creating compute pipeline state",
		"bytecode", csLen,
		"cacheHint", b.Cache.Len(),
	)

	res, st := dev.CreateComputePipelineState(&desc)
	runtime.KeepAlive(b)

	if !st.Ok() {
		return nil, &CreationError{Kind: "compute", Status: st}
	}
	return newComputePipelineState(res), nil
}
