// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import "github.com/gogpu/dx12/raw"

// FillMode selects how triangles are rendered (D3D12_FILL_MODE).
type FillMode uint32

const (
	FillModeWireframe FillMode = 2
	FillModeSolid     FillMode = 3
)

// CullMode selects which triangle facings are discarded (D3D12_CULL_MODE).
type CullMode uint32

const (
	CullModeNone  CullMode = 1
	CullModeFront CullMode = 2
	CullModeBack  CullMode = 3
)

// ConservativeRasterMode toggles conservative rasterization
// (D3D12_CONSERVATIVE_RASTERIZATION_MODE).
type ConservativeRasterMode uint32

const (
	ConservativeRasterOff ConservativeRasterMode = 0
	ConservativeRasterOn  ConservativeRasterMode = 1
)

// RasterizerDesc describes the fixed-function rasterizer stage.
type RasterizerDesc struct {
	FillMode              FillMode
	CullMode              CullMode
	FrontCounterClockwise bool
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       bool
	MultisampleEnable     bool
	AntialiasedLineEnable bool
	ForcedSampleCount     uint32
	ConservativeRaster    ConservativeRasterMode
}

// DefaultRasterizerDesc returns the D3D12 default rasterizer state:
// solid fill, back-face culling, clockwise front faces, no bias, depth
// clipping on.
func DefaultRasterizerDesc() RasterizerDesc {
	return RasterizerDesc{
		FillMode:        FillModeSolid,
		CullMode:        CullModeBack,
		DepthClipEnable: true,
	}
}

// ToRaw converts into the flat D3D12_RASTERIZER_DESC layout, field by field.
func (d RasterizerDesc) ToRaw() raw.RasterizerDesc {
	return raw.RasterizerDesc{
		FillMode:              uint32(d.FillMode),
		CullMode:              uint32(d.CullMode),
		FrontCounterClockwise: boolToBOOL(d.FrontCounterClockwise),
		DepthBias:             d.DepthBias,
		DepthBiasClamp:        d.DepthBiasClamp,
		SlopeScaledDepthBias:  d.SlopeScaledDepthBias,
		DepthClipEnable:       boolToBOOL(d.DepthClipEnable),
		MultisampleEnable:     boolToBOOL(d.MultisampleEnable),
		AntialiasedLineEnable: boolToBOOL(d.AntialiasedLineEnable),
		ForcedSampleCount:     d.ForcedSampleCount,
		ConservativeRaster:    uint32(d.ConservativeRaster),
	}
}
