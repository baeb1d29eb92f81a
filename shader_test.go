// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"testing"
	"unsafe"
)

func TestShaderSlots(t *testing.T) {
	code := []byte{0x44, 0x58, 0x42, 0x43} // DXBC magic
	vs := NewVertexShader(code)

	if vs.Len() != 4 {
		t.Errorf("Len() = %d, want 4", vs.Len())
	}
	if &vs.Bytecode()[0] != &code[0] {
		t.Error("bytecode should be borrowed, not copied")
	}

	r := vs.toRaw()
	if r.ShaderBytecode != unsafe.Pointer(&code[0]) {
		t.Error("toRaw() does not point at the bytecode")
	}
	if r.BytecodeLength != 4 {
		t.Errorf("BytecodeLength = %d, want 4", r.BytecodeLength)
	}
}

func TestShaderSlotEmpty(t *testing.T) {
	ps := NewPixelShader(nil)
	if r := ps.toRaw(); r.ShaderBytecode != nil || r.BytecodeLength != 0 {
		t.Errorf("empty slot toRaw() = %+v, want zero", r)
	}
}

func TestShaderSlotNilBytes(t *testing.T) {
	var vs *VertexShader
	var cs *ComputeShader
	var gs *GeometryShader
	if vs.bytes() != nil || cs.bytes() != nil || gs.bytes() != nil {
		t.Error("nil slots should read as empty")
	}
}
