package bounce

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorWrapping(t *testing.T) {
	err := NewError(KindAsset, "load wav", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the cause")
	}
	if !IsKind(err, KindAsset) || IsKind(err, KindSetup) {
		t.Errorf("IsKind mismatch for %v", err)
	}
	if got, want := err.Error(), "asset: load wav: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("run: %w", err)
	if !IsKind(wrapped, KindAsset) {
		t.Error("IsKind should look through fmt.Errorf wrapping")
	}
}

func TestNewErrorKeepsInnerKind(t *testing.T) {
	inner := NewError(KindAsset, "load image", errors.New("bad"))
	outer := NewError(KindSetup, "load sprite", inner)
	if outer != inner {
		t.Errorf("NewError rewrapped an *Error: %v", outer)
	}
}

func TestErrorWithoutCause(t *testing.T) {
	err := &Error{Kind: KindRuntime, Op: "present"}
	if err.Error() != "runtime: present" {
		t.Errorf("Error() = %q", err.Error())
	}
	if IsKind(nil, KindRuntime) {
		t.Error("nil is not an *Error")
	}
}

func TestErrorKindString(t *testing.T) {
	for kind, want := range map[ErrorKind]string{
		KindSetup:     "setup",
		KindAsset:     "asset",
		KindRuntime:   "runtime",
		ErrorKind(42): "ErrorKind(42)",
	} {
		if kind.String() != want {
			t.Errorf("%d.String() = %q, want %q", kind, kind.String(), want)
		}
	}
}
