// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package d3d12 implements the dx12.Device capability over the real
// Direct3D 12 COM ABI.
//
// The package wraps an existing ID3D12Device supplied by the host
// application; it never creates a device of its own. All COM calls go
// through hand-written vtables and syscall dispatch, so there is no cgo
// involved. It also exposes CompileHLSL, a thin wrapper over
// d3dcompiler_47 that turns HLSL source into the DXBC bytecode consumed
// by the shader slots in package dx12.
//
// Everything except this file is compiled for Windows only.
package d3d12
