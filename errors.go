package bounce

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure by the phase it happened in.
type ErrorKind uint8

const (
	KindSetup   ErrorKind = iota // window, renderer, audio device creation
	KindAsset                    // missing or malformed media file or script
	KindRuntime                  // render or audio call failed mid-loop
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindSetup:
		return "setup"
	case KindAsset:
		return "asset"
	case KindRuntime:
		return "runtime"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Error is the error type returned by the driver, the loaders and the hosts.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind and the operation that failed. If err is
// already an *Error it is returned unchanged.
func NewError(kind ErrorKind, op string, err error) error {
	var be *Error
	if errors.As(err, &be) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == kind
}

func setupError(op string, err error) error   { return NewError(KindSetup, op, err) }
func assetError(op string, err error) error   { return NewError(KindAsset, op, err) }
func runtimeError(op string, err error) error { return NewError(KindRuntime, op, err) }
