// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import "github.com/gogpu/dx12/raw"

// ComparisonFunc specifies under which circumstance a comparison passes
// (D3D12_COMPARISON_FUNC). Used by depth-stencil tests and sampler
// comparison filtering.
type ComparisonFunc uint32

const (
	ComparisonNever        ComparisonFunc = 1
	ComparisonLess         ComparisonFunc = 2
	ComparisonEqual        ComparisonFunc = 3
	ComparisonLessEqual    ComparisonFunc = 4
	ComparisonGreater      ComparisonFunc = 5
	ComparisonNotEqual     ComparisonFunc = 6
	ComparisonGreaterEqual ComparisonFunc = 7
	ComparisonAlways       ComparisonFunc = 8
)

// String returns the D3D12 name of the comparison function.
func (f ComparisonFunc) String() string {
	switch f {
	case ComparisonNever:
		return "NEVER"
	case ComparisonLess:
		return "LESS"
	case ComparisonEqual:
		return "EQUAL"
	case ComparisonLessEqual:
		return "LESS_EQUAL"
	case ComparisonGreater:
		return "GREATER"
	case ComparisonNotEqual:
		return "NOT_EQUAL"
	case ComparisonGreaterEqual:
		return "GREATER_EQUAL"
	case ComparisonAlways:
		return "ALWAYS"
	default:
		return "UNDEFINED"
	}
}

// DepthWriteMask enables or disables depth writes (D3D12_DEPTH_WRITE_MASK).
type DepthWriteMask uint32

const (
	DepthWriteMaskZero DepthWriteMask = 0
	DepthWriteMaskAll  DepthWriteMask = 1
)

// StencilOp is a stencil-buffer operation (D3D12_STENCIL_OP).
type StencilOp uint32

const (
	StencilOpKeep    StencilOp = 1
	StencilOpZero    StencilOp = 2
	StencilOpReplace StencilOp = 3
	StencilOpIncrSat StencilOp = 4
	StencilOpDecrSat StencilOp = 5
	StencilOpInvert  StencilOp = 6
	StencilOpIncr    StencilOp = 7
	StencilOpDecr    StencilOp = 8
)

// StencilOpDesc describes stencil behavior for one triangle facing.
type StencilOpDesc struct {
	StencilFailOp      StencilOp
	StencilDepthFailOp StencilOp
	StencilPassOp      StencilOp
	StencilFunc        ComparisonFunc
}

// DefaultStencilOpDesc returns the D3D12 default: keep on every outcome,
// comparison always passes.
func DefaultStencilOpDesc() StencilOpDesc {
	return StencilOpDesc{
		StencilFailOp:      StencilOpKeep,
		StencilDepthFailOp: StencilOpKeep,
		StencilPassOp:      StencilOpKeep,
		StencilFunc:        ComparisonAlways,
	}
}

func (d StencilOpDesc) toRaw() raw.StencilOpDesc {
	return raw.StencilOpDesc{
		StencilFailOp:      uint32(d.StencilFailOp),
		StencilDepthFailOp: uint32(d.StencilDepthFailOp),
		StencilPassOp:      uint32(d.StencilPassOp),
		StencilFunc:        uint32(d.StencilFunc),
	}
}

// DepthStencilDesc describes the depth-stencil stage.
type DepthStencilDesc struct {
	DepthEnable      bool
	DepthWriteMask   DepthWriteMask
	DepthFunc        ComparisonFunc
	StencilEnable    bool
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        StencilOpDesc
	BackFace         StencilOpDesc
}

// DefaultDepthStencilDesc returns the D3D12 default depth-stencil state:
// depth test on with LESS, stencil off with full masks.
func DefaultDepthStencilDesc() DepthStencilDesc {
	return DepthStencilDesc{
		DepthEnable:      true,
		DepthWriteMask:   DepthWriteMaskAll,
		DepthFunc:        ComparisonLess,
		StencilReadMask:  0xFF,
		StencilWriteMask: 0xFF,
		FrontFace:        DefaultStencilOpDesc(),
		BackFace:         DefaultStencilOpDesc(),
	}
}

// ToRaw converts into the flat D3D12_DEPTH_STENCIL_DESC layout, field by
// field.
func (d DepthStencilDesc) ToRaw() raw.DepthStencilDesc {
	return raw.DepthStencilDesc{
		DepthEnable:      boolToBOOL(d.DepthEnable),
		DepthWriteMask:   uint32(d.DepthWriteMask),
		DepthFunc:        uint32(d.DepthFunc),
		StencilEnable:    boolToBOOL(d.StencilEnable),
		StencilReadMask:  d.StencilReadMask,
		StencilWriteMask: d.StencilWriteMask,
		FrontFace:        d.FrontFace.toRaw(),
		BackFace:         d.BackFace.toRaw(),
	}
}
