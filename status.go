// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import "fmt"

// Status is an HRESULT-style status code returned by the device capability.
// Non-negative values are success (S_OK is 0, S_FALSE is 1); negative
// values are failures.
type Status int32

// Success statuses.
const (
	StatusOK    Status = 0
	StatusFalse Status = 1
)

// Failure statuses commonly surfaced by pipeline-state creation and
// cached-blob queries. Any other negative value is a driver- or
// runtime-specific failure and is carried through unchanged.
const (
	// StatusFail is E_FAIL (0x80004005).
	StatusFail Status = -0x7FFFBFFB
	// StatusInvalidArg is E_INVALIDARG (0x80070057), the usual rejection
	// for an invalid descriptor combination.
	StatusInvalidArg Status = -0x7FF8FFA9
	// StatusOutOfMemory is E_OUTOFMEMORY (0x8007000E).
	StatusOutOfMemory Status = -0x7FF8FFF2
	// StatusNotFound is DXGI_ERROR_NOT_FOUND (0x887A0002), returned when a
	// pipeline state has no cached blob available.
	StatusNotFound Status = -0x7785FFFE
)

// Ok reports whether the status denotes success.
func (s Status) Ok() bool { return s >= 0 }

// String formats the status the way Windows tooling prints HRESULTs.
func (s Status) String() string {
	return fmt.Sprintf("0x%08X", uint32(s))
}
