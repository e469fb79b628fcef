// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"testing"

	"github.com/vulkangpu/gpu/native/fake"
)

func newTestCommandPool(t *testing.T) *CommandPool {
	t.Helper()
	fd := fake.NewDevice()
	natPool, err := fd.NewCommandPool(0)
	if err != nil {
		t.Fatalf("NewCommandPool: %v", err)
	}
	return newCommandPool(natPool, fd)
}

func TestCommandPool_AcquireReusesReturnedBufferWhenAvailable(t *testing.T) {
	p := newTestCommandPool(t)

	cb, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	p.Return(cb)

	// The buffer's fence starts at 0 and cb.fenceExpected defaults to
	// 0, so the returned buffer is immediately available for reuse.
	cb2, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire after Return: %v", err)
	}
	if cb2 != cb {
		t.Error("Acquire should reuse the returned buffer when its fence is already satisfied")
	}
}

func TestCommandPool_AcquireGrowsPoolWhenNoneReturned(t *testing.T) {
	p := newTestCommandPool(t)

	cb1, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	cb2, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if cb1 == cb2 {
		t.Error("two Acquires with nothing Returned should yield distinct buffers")
	}
}

func TestCommandPool_AcquireSkipsUnavailableReturnedBuffer(t *testing.T) {
	p := newTestCommandPool(t)

	cb, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	// Simulate an in-flight submission: bump fenceExpected above the
	// fence's current value so IsAvailable() is false.
	cb.fenceExpected = 1
	p.Return(cb)

	cb2, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if cb2 == cb {
		t.Error("Acquire should not reuse a returned buffer whose fence has not been satisfied")
	}
}

func TestCommandPool_BeginEndRecordingRoundTrip(t *testing.T) {
	p := newTestCommandPool(t)
	cb, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := cb.BeginRecording(); err != nil {
		t.Fatalf("BeginRecording: %v", err)
	}
	if err := cb.BeginRecording(); !IsKind(err, InvalidOperation) {
		t.Fatalf("nested BeginRecording: err = %v, want InvalidOperation", err)
	}
	if err := cb.EndRecording(); err != nil {
		t.Fatalf("EndRecording: %v", err)
	}
	if err := cb.EndRecording(); !IsKind(err, InvalidOperation) {
		t.Fatalf("EndRecording without BeginRecording: err = %v, want InvalidOperation", err)
	}
}
