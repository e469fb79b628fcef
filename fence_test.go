// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import "testing"

func TestFence_SignalDescendingValueRejected(t *testing.T) {
	d := newTestDevice(t)
	f, err := d.CreateFence(5)
	if err != nil {
		t.Fatalf("CreateFence: %v", err)
	}
	if err := f.Signal(5); !IsKind(err, InvalidArgument) {
		t.Fatalf("Signal(5) with current==5: err = %v, want InvalidArgument", err)
	}
	if err := f.Signal(3); !IsKind(err, InvalidArgument) {
		t.Fatalf("Signal(3) with current==5: err = %v, want InvalidArgument", err)
	}
}

func TestFence_SignalAscending(t *testing.T) {
	d := newTestDevice(t)
	f, err := d.CreateFence(0)
	if err != nil {
		t.Fatalf("CreateFence: %v", err)
	}
	if err := f.Signal(1); err != nil {
		t.Fatalf("Signal(1): %v", err)
	}
	if got := f.GetCurrent(); got != 1 {
		t.Errorf("GetCurrent() = %d, want 1", got)
	}
	if err := f.Signal(7); err != nil {
		t.Fatalf("Signal(7): %v", err)
	}
	if got := f.GetCurrent(); got != 7 {
		t.Errorf("GetCurrent() = %d, want 7", got)
	}
}

func TestFence_IsSatisfied(t *testing.T) {
	d := newTestDevice(t)
	f, err := d.CreateFence(0)
	if err != nil {
		t.Fatalf("CreateFence: %v", err)
	}
	if f.IsSatisfied(1) {
		t.Error("IsSatisfied(1) on a fresh fence at 0 should be false")
	}
	if err := f.Signal(2); err != nil {
		t.Fatalf("Signal: %v", err)
	}
	if !f.IsSatisfied(1) {
		t.Error("IsSatisfied(1) after Signal(2) should be true")
	}
	if !f.IsSatisfied(2) {
		t.Error("IsSatisfied(2) after Signal(2) should be true")
	}
	if f.IsSatisfied(3) {
		t.Error("IsSatisfied(3) after Signal(2) should be false")
	}
}

func TestFence_WaitAlwaysSucceedsOnFakeBackend(t *testing.T) {
	d := newTestDevice(t)
	f, err := d.CreateFence(0)
	if err != nil {
		t.Fatalf("CreateFence: %v", err)
	}
	if err := f.Signal(4); err != nil {
		t.Fatalf("Signal: %v", err)
	}
	// The fake backend resolves all submissions synchronously, so Wait
	// on an already-reached value must never block or fail.
	if err := f.Wait(4); err != nil {
		t.Errorf("Wait(4) = %v, want nil", err)
	}
	if err := f.Wait(0); err != nil {
		t.Errorf("Wait(0) = %v, want nil", err)
	}
}
