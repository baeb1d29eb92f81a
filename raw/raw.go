// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raw defines the flat binary descriptor layouts consumed by the
// Direct3D 12 pipeline-state creation ABI.
//
// Every struct here matches the field order, size and alignment of its
// D3D12_* counterpart, so a pointer to it can be handed to the native
// CreateGraphicsPipelineState / CreateComputePipelineState entry points
// unchanged. The friendly value types in package dx12 convert into these
// layouts through explicit field-by-field code rather than memory
// reinterpretation, so any drift between the two representations shows up
// in a reviewable diff instead of silent descriptor corruption.
//
// Pointer fields reference storage owned by the caller. They are valid
// only for the duration of the single device call the descriptor was
// assembled for; nothing in this package retains them.
package raw

import "unsafe"

// ShaderBytecode mirrors D3D12_SHADER_BYTECODE. A zero value means the
// shader stage is absent.
type ShaderBytecode struct {
	ShaderBytecode unsafe.Pointer
	BytecodeLength uintptr
}

// SODeclarationEntry mirrors D3D12_SO_DECLARATION_ENTRY.
// SemanticName points at a NUL-terminated byte string.
type SODeclarationEntry struct {
	Stream         uint32
	SemanticName   *byte
	SemanticIndex  uint32
	StartComponent uint8
	ComponentCount uint8
	OutputSlot     uint8
}

// StreamOutputDesc mirrors D3D12_STREAM_OUTPUT_DESC.
type StreamOutputDesc struct {
	SODeclaration    *SODeclarationEntry
	NumEntries       uint32
	BufferStrides    *uint32
	NumStrides       uint32
	RasterizedStream uint32
}

// RenderTargetBlendDesc mirrors D3D12_RENDER_TARGET_BLEND_DESC.
// BOOL fields are uint32 per the Windows ABI.
type RenderTargetBlendDesc struct {
	BlendEnable           uint32
	LogicOpEnable         uint32
	SrcBlend              uint32
	DestBlend             uint32
	BlendOp               uint32
	SrcBlendAlpha         uint32
	DestBlendAlpha        uint32
	BlendOpAlpha          uint32
	LogicOp               uint32
	RenderTargetWriteMask uint8
}

// BlendDesc mirrors D3D12_BLEND_DESC.
type BlendDesc struct {
	AlphaToCoverageEnable  uint32
	IndependentBlendEnable uint32
	RenderTarget           [8]RenderTargetBlendDesc
}

// RasterizerDesc mirrors D3D12_RASTERIZER_DESC.
type RasterizerDesc struct {
	FillMode              uint32
	CullMode              uint32
	FrontCounterClockwise uint32
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       uint32
	MultisampleEnable     uint32
	AntialiasedLineEnable uint32
	ForcedSampleCount     uint32
	ConservativeRaster    uint32
}

// StencilOpDesc mirrors D3D12_DEPTH_STENCILOP_DESC.
type StencilOpDesc struct {
	StencilFailOp      uint32
	StencilDepthFailOp uint32
	StencilPassOp      uint32
	StencilFunc        uint32
}

// DepthStencilDesc mirrors D3D12_DEPTH_STENCIL_DESC.
type DepthStencilDesc struct {
	DepthEnable      uint32
	DepthWriteMask   uint32
	DepthFunc        uint32
	StencilEnable    uint32
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        StencilOpDesc
	BackFace         StencilOpDesc
}

// InputElementDesc mirrors D3D12_INPUT_ELEMENT_DESC.
// SemanticName points at a NUL-terminated byte string.
type InputElementDesc struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               uint32
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       uint32
	InstanceDataStepRate uint32
}

// InputLayoutDesc mirrors D3D12_INPUT_LAYOUT_DESC.
type InputLayoutDesc struct {
	InputElementDescs *InputElementDesc
	NumElements       uint32
}

// CachedPipelineState mirrors D3D12_CACHED_PIPELINE_STATE. A zero value
// means no cache hint.
type CachedPipelineState struct {
	CachedBlob            unsafe.Pointer
	CachedBlobSizeInBytes uintptr
}

// SampleDesc mirrors DXGI_SAMPLE_DESC.
type SampleDesc struct {
	Count   uint32
	Quality uint32
}

// GraphicsPipelineStateDesc mirrors D3D12_GRAPHICS_PIPELINE_STATE_DESC.
type GraphicsPipelineStateDesc struct {
	RootSignature         unsafe.Pointer
	VS                    ShaderBytecode
	PS                    ShaderBytecode
	DS                    ShaderBytecode
	HS                    ShaderBytecode
	GS                    ShaderBytecode
	StreamOutput          StreamOutputDesc
	BlendState            BlendDesc
	SampleMask            uint32
	RasterizerState       RasterizerDesc
	DepthStencilState     DepthStencilDesc
	InputLayout           InputLayoutDesc
	IBStripCutValue       uint32
	PrimitiveTopologyType uint32
	NumRenderTargets      uint32
	RTVFormats            [8]uint32
	DSVFormat             uint32
	SampleDesc            SampleDesc
	NodeMask              uint32
	CachedPSO             CachedPipelineState
	Flags                 uint32
}

// ComputePipelineStateDesc mirrors D3D12_COMPUTE_PIPELINE_STATE_DESC.
type ComputePipelineStateDesc struct {
	RootSignature unsafe.Pointer
	CS            ShaderBytecode
	NodeMask      uint32
	CachedPSO     CachedPipelineState
	Flags         uint32
}

// SamplerDesc mirrors D3D12_SAMPLER_DESC.
type SamplerDesc struct {
	Filter         uint32
	AddressU       uint32
	AddressV       uint32
	AddressW       uint32
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc uint32
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}
