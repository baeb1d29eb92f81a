// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import "github.com/gogpu/dx12/raw"

// Blend is a blend factor (D3D12_BLEND).
type Blend uint32

const (
	BlendZero           Blend = 1
	BlendOne            Blend = 2
	BlendSrcColor       Blend = 3
	BlendInvSrcColor    Blend = 4
	BlendSrcAlpha       Blend = 5
	BlendInvSrcAlpha    Blend = 6
	BlendDestAlpha      Blend = 7
	BlendInvDestAlpha   Blend = 8
	BlendDestColor      Blend = 9
	BlendInvDestColor   Blend = 10
	BlendSrcAlphaSat    Blend = 11
	BlendBlendFactor    Blend = 14
	BlendInvBlendFactor Blend = 15
	BlendSrc1Color      Blend = 16
	BlendInvSrc1Color   Blend = 17
	BlendSrc1Alpha      Blend = 18
	BlendInvSrc1Alpha   Blend = 19
)

// BlendOp combines the source and destination terms (D3D12_BLEND_OP).
type BlendOp uint32

const (
	BlendOpAdd         BlendOp = 1
	BlendOpSubtract    BlendOp = 2
	BlendOpRevSubtract BlendOp = 3
	BlendOpMin         BlendOp = 4
	BlendOpMax         BlendOp = 5
)

// LogicOp is a render-target logical operation (D3D12_LOGIC_OP).
type LogicOp uint32

const (
	LogicOpClear LogicOp = iota
	LogicOpSet
	LogicOpCopy
	LogicOpCopyInverted
	LogicOpNoop
	LogicOpInvert
	LogicOpAnd
	LogicOpNand
	LogicOpOr
	LogicOpNor
	LogicOpXor
	LogicOpEquiv
	LogicOpAndReverse
	LogicOpAndInverted
	LogicOpOrReverse
	LogicOpOrInverted
)

// ColorWriteEnable selects which channels a render target writes
// (D3D12_COLOR_WRITE_ENABLE). Bits combine with bitwise OR.
type ColorWriteEnable uint8

const (
	ColorWriteEnableRed   ColorWriteEnable = 1
	ColorWriteEnableGreen ColorWriteEnable = 2
	ColorWriteEnableBlue  ColorWriteEnable = 4
	ColorWriteEnableAlpha ColorWriteEnable = 8
	ColorWriteEnableAll   ColorWriteEnable = ColorWriteEnableRed | ColorWriteEnableGreen | ColorWriteEnableBlue | ColorWriteEnableAlpha
)

// RenderTargetBlendDesc describes blending for one render target.
type RenderTargetBlendDesc struct {
	BlendEnable           bool
	LogicOpEnable         bool
	SrcBlend              Blend
	DestBlend             Blend
	BlendOp               BlendOp
	SrcBlendAlpha         Blend
	DestBlendAlpha        Blend
	BlendOpAlpha          BlendOp
	LogicOp               LogicOp
	RenderTargetWriteMask ColorWriteEnable
}

// DefaultRenderTargetBlendDesc returns the D3D12 default render-target
// blend state: blending and logic ops disabled, pass-through equations,
// all channels writable.
func DefaultRenderTargetBlendDesc() RenderTargetBlendDesc {
	return RenderTargetBlendDesc{
		SrcBlend:              BlendOne,
		DestBlend:             BlendZero,
		BlendOp:               BlendOpAdd,
		SrcBlendAlpha:         BlendOne,
		DestBlendAlpha:        BlendZero,
		BlendOpAlpha:          BlendOpAdd,
		LogicOp:               LogicOpNoop,
		RenderTargetWriteMask: ColorWriteEnableAll,
	}
}

func (d RenderTargetBlendDesc) toRaw() raw.RenderTargetBlendDesc {
	return raw.RenderTargetBlendDesc{
		BlendEnable:           boolToBOOL(d.BlendEnable),
		LogicOpEnable:         boolToBOOL(d.LogicOpEnable),
		SrcBlend:              uint32(d.SrcBlend),
		DestBlend:             uint32(d.DestBlend),
		BlendOp:               uint32(d.BlendOp),
		SrcBlendAlpha:         uint32(d.SrcBlendAlpha),
		DestBlendAlpha:        uint32(d.DestBlendAlpha),
		BlendOpAlpha:          uint32(d.BlendOpAlpha),
		LogicOp:               uint32(d.LogicOp),
		RenderTargetWriteMask: uint8(d.RenderTargetWriteMask),
	}
}

// BlendDesc describes the output-merger blend stage.
type BlendDesc struct {
	AlphaToCoverageEnable  bool
	IndependentBlendEnable bool

	// RenderTarget holds per-target blend equations. When
	// IndependentBlendEnable is false only entry 0 is honored by the
	// device, but all eight entries are carried into the flat descriptor.
	RenderTarget [8]RenderTargetBlendDesc
}

// DefaultBlendDesc returns the D3D12 default blend state.
func DefaultBlendDesc() BlendDesc {
	var d BlendDesc
	for i := range d.RenderTarget {
		d.RenderTarget[i] = DefaultRenderTargetBlendDesc()
	}
	return d
}

// ToRaw converts into the flat D3D12_BLEND_DESC layout, field by field.
func (d BlendDesc) ToRaw() raw.BlendDesc {
	out := raw.BlendDesc{
		AlphaToCoverageEnable:  boolToBOOL(d.AlphaToCoverageEnable),
		IndependentBlendEnable: boolToBOOL(d.IndependentBlendEnable),
	}
	for i, rt := range d.RenderTarget {
		out.RenderTarget[i] = rt.toRaw()
	}
	return out
}

// boolToBOOL converts a Go bool into a Windows BOOL.
func boolToBOOL(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
