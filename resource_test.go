// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"sync"
	"testing"
)

func TestSharedHandleReleaseOnce(t *testing.T) {
	res := &fakeResource{}
	res.refs.Store(1)

	h := NewSharedHandle(res)
	if h.Resource() != res {
		t.Error("Resource() should return the wrapped reference")
	}

	h.Release()
	if !res.destroyed() {
		t.Fatal("Release did not drop the owned reference")
	}
	if h.Resource() != nil {
		t.Error("Resource() after Release should return nil")
	}

	// A second Release must not reach the resource again; fakeResource
	// panics on a release below zero.
	h.Release()
}

func TestSharedHandleClone(t *testing.T) {
	res := &fakeResource{}
	res.refs.Store(1)

	h := NewSharedHandle(res)
	clone := h.Clone()
	if clone == nil {
		t.Fatal("Clone() returned nil on a live handle")
	}
	if res.refs.Load() != 2 {
		t.Fatalf("refs after Clone = %d, want 2", res.refs.Load())
	}

	h.Release()
	if res.destroyed() {
		t.Fatal("resource destroyed while a clone is live")
	}
	clone.Release()
	if !res.destroyed() {
		t.Fatal("resource not destroyed after last owner released")
	}
}

func TestSharedHandleCloneAfterRelease(t *testing.T) {
	res := &fakeResource{}
	res.refs.Store(1)

	h := NewSharedHandle(res)
	h.Release()
	if clone := h.Clone(); clone != nil {
		t.Error("Clone() after Release should return nil")
	}
}

func TestSharedHandleNil(t *testing.T) {
	var h *SharedHandle
	h.Release()
	if h.Clone() != nil {
		t.Error("nil handle Clone() should return nil")
	}
	if h.Resource() != nil {
		t.Error("nil handle Resource() should return nil")
	}
}

func TestSharedHandleConcurrentCloneRelease(t *testing.T) {
	res := &fakeResource{}
	res.refs.Store(1)

	h := NewSharedHandle(res)

	// Clones racing the handle's own Release either acquire a reference
	// before it or observe the released handle and get nil; a clone must
	// never AddRef after the final Release. Every acquired reference is
	// released afterwards, so the count has to come back to zero.
	clones := make([]*SharedHandle, 16)
	var wg sync.WaitGroup
	for i := range clones {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clones[i] = h.Clone()
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.Release()
	}()
	wg.Wait()

	for _, c := range clones {
		c.Release()
	}
	if res.refs.Load() != 0 {
		t.Errorf("refs after all owners released = %d, want 0", res.refs.Load())
	}
}

func TestSharedHandleConcurrentRelease(t *testing.T) {
	res := &fakeResource{}
	res.refs.Store(1)

	h := NewSharedHandle(res)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Release()
		}()
	}
	wg.Wait()

	if res.refs.Load() != 0 {
		t.Errorf("refs after concurrent Release = %d, want 0", res.refs.Load())
	}
}
