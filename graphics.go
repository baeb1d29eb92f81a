// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"runtime"

	"github.com/gogpu/dx12/raw"
)

// MaxRenderTargets is the render-target-format table capacity of a
// graphics pipeline descriptor.
const MaxRenderTargets = 8

// GraphicsPipelineStateBuilder aggregates everything a graphics pipeline
// descriptor needs. Fields are public and freely mutable; Build reads the
// current configuration, so a single builder can produce any number of
// distinct pipeline states from evolving configuration.
//
// The builder performs no semantic validation: invalid combinations are
// deferred to the device's own validation and come back as *CreationError.
type GraphicsPipelineStateBuilder struct {
	// RootSignature is borrowed; its owner must keep it alive across
	// every Build call.
	RootSignature *RootSignature

	// Shader stages. A nil slot contributes a zeroed bytecode field,
	// never a stale pointer.
	VS *VertexShader
	PS *PixelShader
	DS *DomainShader
	HS *HullShader
	GS *GeometryShader

	StreamOutput      StreamOutputDescBuilder
	BlendState        BlendDesc
	SampleMask        uint32
	RasterizerState   RasterizerDesc
	DepthStencilState DepthStencilDesc
	InputLayout       InputLayoutBuilder

	StripCutValue         StripCutValue
	PrimitiveTopologyType PrimitiveTopologyType

	// NumRenderTargets must not exceed MaxRenderTargets; the device
	// rejects larger values. Formats beyond the count stay zeroed.
	NumRenderTargets uint32
	RTVFormats       [MaxRenderTargets]Format
	DSVFormat        Format

	SampleDesc SampleDesc
	NodeMask   uint32

	// Cache optionally seeds creation with a blob from a previous build.
	Cache *CacheBlob

	Flags PipelineStateFlags
}

// NewGraphicsPipelineStateBuilder returns a builder with the documented
// defaults: sample mask all ones, one render target of unknown format,
// D24_UNORM_S8_UINT depth-stencil, triangle topology, single sampling, no
// shader stages, no cache hint.
func NewGraphicsPipelineStateBuilder(rootSignature *RootSignature) *GraphicsPipelineStateBuilder {
	return &GraphicsPipelineStateBuilder{
		RootSignature:         rootSignature,
		BlendState:            DefaultBlendDesc(),
		SampleMask:            0xFFFFFFFF,
		RasterizerState:       DefaultRasterizerDesc(),
		DepthStencilState:     DefaultDepthStencilDesc(),
		PrimitiveTopologyType: PrimitiveTopologyTriangle,
		NumRenderTargets:      1,
		DSVFormat:             FormatD24UnormS8Uint,
		SampleDesc:            DefaultSampleDesc(),
	}
}

// Build assembles the flat descriptor from the current configuration and
// asks the device to create the pipeline state. The flat descriptor lives
// only inside this call; backing storage for pointer-bearing fragments is
// pinned until the device returns.
func (b *GraphicsPipelineStateBuilder) Build(dev Device) (*GraphicsPipelineState, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}

	var desc raw.GraphicsPipelineStateDesc
	desc.RootSignature = b.RootSignature.Pointer()
	if b.VS != nil {
		desc.VS = b.VS.toRaw()
	}
	if b.PS != nil {
		desc.PS = b.PS.toRaw()
	}
	if b.DS != nil {
		desc.DS = b.DS.toRaw()
	}
	if b.HS != nil {
		desc.HS = b.HS.toRaw()
	}
	if b.GS != nil {
		desc.GS = b.GS.toRaw()
	}

	so := b.StreamOutput.prepare()
	desc.StreamOutput = so.desc
	desc.BlendState = b.BlendState.ToRaw()
	desc.SampleMask = b.SampleMask
	desc.RasterizerState = b.RasterizerState.ToRaw()
	desc.DepthStencilState = b.DepthStencilState.ToRaw()
	il := b.InputLayout.prepare()
	desc.InputLayout = il.desc
	desc.IBStripCutValue = uint32(b.StripCutValue)
	desc.PrimitiveTopologyType = uint32(b.PrimitiveTopologyType)
	desc.NumRenderTargets = b.NumRenderTargets
	for i, f := range b.RTVFormats {
		desc.RTVFormats[i] = uint32(f)
	}
	desc.DSVFormat = uint32(b.DSVFormat)
	desc.SampleDesc = raw.SampleDesc{Count: b.SampleDesc.Count, Quality: b.SampleDesc.Quality}
	desc.NodeMask = b.NodeMask
	desc.CachedPSO = b.Cache.toRaw()
	desc.Flags = uint32(b.Flags)

	Logger().Debug("dx12: creating graphics pipeline state",
		"renderTargets", b.NumRenderTargets,
		"inputElements", len(b.InputLayout.Elements),
		"cacheHint", b.Cache.Len(),
	)

	res, st := dev.CreateGraphicsPipelineState(&desc)

	// Pin every buffer the descriptor pointed into until the device call
	// has returned.
	so.keepAlive()
	il.keepAlive()
	runtime.KeepAlive(b)

	if !st.Ok() {
		return nil, &CreationError{Kind: "graphics", Status: st}
	}
	return newGraphicsPipelineState(res), nil
}
