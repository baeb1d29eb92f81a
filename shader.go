// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"unsafe"

	"github.com/gogpu/dx12/raw"
)

// bytecode is the shared storage behind the typed shader-stage slots.
// The bytes are opaque: dx12 never inspects or validates DXBC contents.
type bytecode struct {
	code []byte
}

// Bytecode returns the raw shader bytes.
func (b *bytecode) Bytecode() []byte { return b.code }

// Len returns the bytecode length in bytes.
func (b *bytecode) Len() int { return len(b.code) }

// toRaw produces the flat (pointer, length) view. The returned pointer
// references the slot's own storage, which must stay alive for the device
// call consuming it.
func (b *bytecode) toRaw() raw.ShaderBytecode {
	if len(b.code) == 0 {
		return raw.ShaderBytecode{}
	}
	return raw.ShaderBytecode{
		ShaderBytecode: unsafe.Pointer(&b.code[0]),
		BytecodeLength: uintptr(len(b.code)),
	}
}

// The six stage slots are distinct types so a pixel shader cannot be
// assigned to a vertex slot by accident. All of them borrow the provided
// byte slice without copying. The unexported bytes accessors are nil-safe
// so absent slots read as empty.

// VertexShader holds vertex-stage bytecode.
type VertexShader struct{ bytecode }

// NewVertexShader wraps compiled vertex-stage bytecode.
func NewVertexShader(code []byte) *VertexShader { return &VertexShader{bytecode{code}} }

func (s *VertexShader) bytes() []byte {
	if s == nil {
		return nil
	}
	return s.code
}

// PixelShader holds pixel-stage bytecode.
type PixelShader struct{ bytecode }

// NewPixelShader wraps compiled pixel-stage bytecode.
func NewPixelShader(code []byte) *PixelShader { return &PixelShader{bytecode{code}} }

func (s *PixelShader) bytes() []byte {
	if s == nil {
		return nil
	}
	return s.code
}

// DomainShader holds domain-stage bytecode.
type DomainShader struct{ bytecode }

// NewDomainShader wraps compiled domain-stage bytecode.
func NewDomainShader(code []byte) *DomainShader { return &DomainShader{bytecode{code}} }

func (s *DomainShader) bytes() []byte {
	if s == nil {
		return nil
	}
	return s.code
}

// HullShader holds hull-stage bytecode.
type HullShader struct{ bytecode }

// NewHullShader wraps compiled hull-stage bytecode.
func NewHullShader(code []byte) *HullShader { return &HullShader{bytecode{code}} }

func (s *HullShader) bytes() []byte {
	if s == nil {
		return nil
	}
	return s.code
}

// GeometryShader holds geometry-stage bytecode.
type GeometryShader struct{ bytecode }

// NewGeometryShader wraps compiled geometry-stage bytecode.
func NewGeometryShader(code []byte) *GeometryShader { return &GeometryShader{bytecode{code}} }

func (s *GeometryShader) bytes() []byte {
	if s == nil {
		return nil
	}
	return s.code
}

// ComputeShader holds compute-stage bytecode.
type ComputeShader struct{ bytecode }

// NewComputeShader wraps compiled compute-stage bytecode.
func NewComputeShader(code []byte) *ComputeShader { return &ComputeShader{bytecode{code}} }

func (s *ComputeShader) bytes() []byte {
	if s == nil {
		return nil
	}
	return s.code
}
