package vsrtl

import "github.com/pkg/errors"

// Sentinel error values for the engine's error taxonomy. Use errors.Cause
// (or errors.Is against these values) to recover the underlying kind from
// a wrapped error returned by Verify or Initialize.
var (
	// ErrUnconnectedInput: an input port has no source after construction.
	ErrUnconnectedInput = errors.New("unconnected input port")
	// ErrZeroWidth: a port's width was never set.
	ErrZeroWidth = errors.New("port width not set")
	// ErrWidthMismatch: an input's width differs from its source's.
	ErrWidthMismatch = errors.New("port width mismatch")
	// ErrCombinationalCycle: invariant 3 violated.
	ErrCombinationalCycle = errors.New("combinational cycle detected")
	// ErrIndexOutOfRange: multiplexer Get(idx) with idx >= N, or an unbound
	// enum selector value.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrReverseUnderflow: reverse() called with an empty stack somewhere.
	// Never returned to callers of Reverse (it is a silent no-op there);
	// exposed for callers that want to pre-check with CanReverse.
	ErrReverseUnderflow = errors.New("reverse stack empty")
)
