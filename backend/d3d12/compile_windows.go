// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package d3d12

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gogpu/dx12"
)

// ErrEmptySource is returned when CompileHLSL is called with no source.
var ErrEmptySource = errors.New("d3d12: empty HLSL source")

var (
	d3dcompiler47 = windows.NewLazySystemDLL("d3dcompiler_47.dll")

	procD3DCompile = d3dcompiler47.NewProc("D3DCompile")
)

// CompileHLSL compiles HLSL source into DXBC bytecode using the system
// d3dcompiler_47. target is a profile string such as "vs_5_1", "ps_5_1"
// or "cs_5_1"; the result feeds the shader slots of package dx12.
//
// Compiler diagnostics, when present, become part of the returned error.
func CompileHLSL(src []byte, entryPoint, target string) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptySource
	}
	if err := procD3DCompile.Find(); err != nil {
		return nil, fmt.Errorf("d3d12: d3dcompiler_47 unavailable: %w", err)
	}

	var code, diags *iD3DBlob
	entry0 := append([]byte(entryPoint), 0)
	target0 := append([]byte(target), 0)
	hr, _, _ := procD3DCompile.Call(
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(len(src)),
		0, // pSourceName
		0, // pDefines
		0, // pInclude
		uintptr(unsafe.Pointer(&entry0[0])),
		uintptr(unsafe.Pointer(&target0[0])),
		0, // Flags1
		0, // Flags2
		uintptr(unsafe.Pointer(&code)),
		uintptr(unsafe.Pointer(&diags)),
	)

	var diagText string
	if diags != nil {
		b := blob{ptr: diags}
		diagText = string(b.Bytes())
		b.Release()
	}

	st := dx12.Status(int32(uint32(hr)))
	if !st.Ok() {
		if diagText != "" {
			return nil, fmt.Errorf("d3d12: HLSL compilation failed (status %s): %s", st, diagText)
		}
		return nil, fmt.Errorf("d3d12: HLSL compilation failed: status %s", st)
	}

	// Copy out and drop the compiler blob; callers keep plain Go bytes.
	b := blob{ptr: code}
	out := append([]byte(nil), b.Bytes()...)
	b.Release()

	if diagText != "" {
		dx12.Logger().Warn("d3d12: HLSL compiled with diagnostics", "target", target, "diagnostics", diagText)
	}
	return out, nil
}
