// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		InvalidArgument:  "invalid argument",
		InvalidOperation: "invalid operation",
		OutOfMemory:      "out of memory",
		External:         "external",
		Kind(99):         "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := newErr(InvalidArgument, "Test.Op", nil)
	if !IsKind(err, InvalidArgument) {
		t.Error("IsKind(err, InvalidArgument) = false, want true")
	}
	if IsKind(err, OutOfMemory) {
		t.Error("IsKind(err, OutOfMemory) = true, want false")
	}
}

func TestIsKind_WrappedError(t *testing.T) {
	inner := newErr(OutOfMemory, "Inner.Op", nil)
	wrapped := errors.New("context: " + inner.Error())
	if IsKind(wrapped, OutOfMemory) {
		t.Error("IsKind on a plain errors.New wrapper should not match: fmt-wrapped strings are not *Error chains")
	}

	// A wrapper whose Unwrap returns the *Error (the same shape
	// fmt.Errorf with %w produces) preserves the chain, so IsKind must
	// still find the *Error through it.
	realWrap := fmtErrorfW(inner)
	if !IsKind(realWrap, OutOfMemory) {
		t.Error("IsKind should find the *Error through an %w-wrapped error")
	}
}

func TestIsKind_NilError(t *testing.T) {
	if IsKind(nil, InvalidArgument) {
		t.Error("IsKind(nil, ...) = true, want false")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("driver failure")
	err := newErr(External, "Device.WaitIdle", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestErrorMessage(t *testing.T) {
	err := newErr(InvalidOperation, "DeviceContext.Draw", nil)
	want := "gpu: DeviceContext.Draw: invalid operation"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("boom")
	withCause := newErr(External, "Queue.Submit", cause)
	want2 := "gpu: Queue.Submit: external: boom"
	if got := withCause.Error(); got != want2 {
		t.Errorf("Error() = %q, want %q", got, want2)
	}
}

func fmtErrorfW(err error) error {
	return &wrapErr{err}
}

type wrapErr struct{ err error }

func (w *wrapErr) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapErr) Unwrap() error { return w.err }
