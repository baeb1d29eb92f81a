// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import "github.com/gogpu/gputypes"

// Conversions from the portable gputypes vocabulary used across the gogpu
// ecosystem into the D3D12 value types consumed by the builders. They let
// WebGPU-style state descriptions seed a pipeline descriptor without the
// caller speaking DXGI.
//
// The mappings are partial by nature: gputypes formats with no DXGI
// equivalent report ok == false and must be handled by the caller.

// FormatFromGPUTypes maps a gputypes texture format onto its DXGI
// equivalent.
func FormatFromGPUTypes(f gputypes.TextureFormat) (format Format, ok bool) {
	switch f {
	case gputypes.TextureFormatUndefined:
		return FormatUnknown, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatR8G8B8A8Unorm, true
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatB8G8R8A8Unorm, true
	case gputypes.TextureFormatR8Unorm:
		return FormatR8Unorm, true
	case gputypes.TextureFormatDepth24PlusStencil8:
		return FormatD24UnormS8Uint, true
	default:
		return FormatUnknown, false
	}
}

// ComparisonFuncFromGPUTypes maps a gputypes compare function onto the
// D3D12 enumeration.
func ComparisonFuncFromGPUTypes(f gputypes.CompareFunction) (fn ComparisonFunc, ok bool) {
	switch f {
	case gputypes.CompareFunctionNever:
		return ComparisonNever, true
	case gputypes.CompareFunctionLess:
		return ComparisonLess, true
	case gputypes.CompareFunctionEqual:
		return ComparisonEqual, true
	case gputypes.CompareFunctionLessEqual:
		return ComparisonLessEqual, true
	case gputypes.CompareFunctionGreater:
		return ComparisonGreater, true
	case gputypes.CompareFunctionNotEqual:
		return ComparisonNotEqual, true
	case gputypes.CompareFunctionGreaterEqual:
		return ComparisonGreaterEqual, true
	case gputypes.CompareFunctionAlways:
		return ComparisonAlways, true
	default:
		return 0, false
	}
}

// CullModeFromGPUTypes maps a gputypes cull mode. Unknown values fall
// back to no culling.
func CullModeFromGPUTypes(m gputypes.CullMode) CullMode {
	switch m {
	case gputypes.CullModeFront:
		return CullModeFront
	case gputypes.CullModeBack:
		return CullModeBack
	default:
		return CullModeNone
	}
}

// PrimitiveTopologyTypeFromGPUTypes maps a gputypes topology onto the
// coarser D3D12 topology class used by pipeline descriptors.
func PrimitiveTopologyTypeFromGPUTypes(t gputypes.PrimitiveTopology) PrimitiveTopologyType {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return PrimitiveTopologyPoint
	case gputypes.PrimitiveTopologyLineList, gputypes.PrimitiveTopologyLineStrip:
		return PrimitiveTopologyLine
	case gputypes.PrimitiveTopologyTriangleList, gputypes.PrimitiveTopologyTriangleStrip:
		return PrimitiveTopologyTriangle
	default:
		return PrimitiveTopologyUndefined
	}
}

// BlendFromGPUTypes maps a gputypes blend factor. Dual-source factors
// have no gputypes counterpart, so every gputypes factor maps.
func BlendFromGPUTypes(f gputypes.BlendFactor) (blend Blend, ok bool) {
	switch f {
	case gputypes.BlendFactorZero:
		return BlendZero, true
	case gputypes.BlendFactorOne:
		return BlendOne, true
	case gputypes.BlendFactorSrc:
		return BlendSrcColor, true
	case gputypes.BlendFactorOneMinusSrc:
		return BlendInvSrcColor, true
	case gputypes.BlendFactorSrcAlpha:
		return BlendSrcAlpha, true
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return BlendInvSrcAlpha, true
	case gputypes.BlendFactorDst:
		return BlendDestColor, true
	case gputypes.BlendFactorOneMinusDst:
		return BlendInvDestColor, true
	case gputypes.BlendFactorDstAlpha:
		return BlendDestAlpha, true
	case gputypes.BlendFactorOneMinusDstAlpha:
		return BlendInvDestAlpha, true
	case gputypes.BlendFactorSrcAlphaSaturated:
		return BlendSrcAlphaSat, true
	case gputypes.BlendFactorConstant:
		return BlendBlendFactor, true
	case gputypes.BlendFactorOneMinusConstant:
		return BlendInvBlendFactor, true
	default:
		return 0, false
	}
}

// BlendOpFromGPUTypes maps a gputypes blend operation.
func BlendOpFromGPUTypes(op gputypes.BlendOperation) (blendOp BlendOp, ok bool) {
	switch op {
	case gputypes.BlendOperationAdd:
		return BlendOpAdd, true
	case gputypes.BlendOperationSubtract:
		return BlendOpSubtract, true
	case gputypes.BlendOperationReverseSubtract:
		return BlendOpRevSubtract, true
	case gputypes.BlendOperationMin:
		return BlendOpMin, true
	case gputypes.BlendOperationMax:
		return BlendOpMax, true
	default:
		return 0, false
	}
}

// RenderTargetBlendFromGPUTypes converts a gputypes color-target state
// into a per-render-target blend descriptor. A nil Blend leaves blending
// disabled; the write mask carries over bit for bit (both APIs use
// red=1, green=2, blue=4, alpha=8).
func RenderTargetBlendFromGPUTypes(target gputypes.ColorTargetState) (desc RenderTargetBlendDesc, ok bool) {
	d := DefaultRenderTargetBlendDesc()
	d.RenderTargetWriteMask = ColorWriteEnable(target.WriteMask)
	if target.Blend == nil {
		return d, true
	}
	d.BlendEnable = true
	if d.SrcBlend, ok = BlendFromGPUTypes(target.Blend.Color.SrcFactor); !ok {
		return d, false
	}
	if d.DestBlend, ok = BlendFromGPUTypes(target.Blend.Color.DstFactor); !ok {
		return d, false
	}
	if d.BlendOp, ok = BlendOpFromGPUTypes(target.Blend.Color.Operation); !ok {
		return d, false
	}
	if d.SrcBlendAlpha, ok = BlendFromGPUTypes(target.Blend.Alpha.SrcFactor); !ok {
		return d, false
	}
	if d.DestBlendAlpha, ok = BlendFromGPUTypes(target.Blend.Alpha.DstFactor); !ok {
		return d, false
	}
	if d.BlendOpAlpha, ok = BlendOpFromGPUTypes(target.Blend.Alpha.Operation); !ok {
		return d, false
	}
	return d, true
}
