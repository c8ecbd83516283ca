// Package vaccelerr distinguishes the five error classes that cross the
// boundary between the client stub, the transport and the agent:
// transport failures, protocol framing failures, entity-lookup failures,
// native-runtime failures and bridge-internal failures. Native-runtime
// failures returned by data-producing ops travel as data
// inside an RPC response (a VaccelError message), never as a gRPC status,
// so they get their own type rather than reusing status.Error.
package vaccelerr

import (
	"fmt"

	"github.com/pingcap/errors"
)

// TransportError reports a failure to dial, accept, read or write on the
// underlying connection, before any vaccel framing is involved.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NewTransportError wraps err with pingcap/errors stack context and
// classifies it as a TransportError.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: errors.Trace(err)}
}

// ProtocolError reports malformed or out-of-sequence wire data: bad
// fragment bookkeeping, an unexpected part_no, a truncated message.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol: %s", e.Reason)
}

// NewProtocolError builds a ProtocolError from a formatted reason.
func NewProtocolError(format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Reason: fmt.Sprintf(format, args...)}
}

// LookupError reports a reference to a session or resource id that the
// agent does not hold, or that a concurrent destroy has already removed.
type LookupError struct {
	Kind string // "session" or "resource"
	ID   int64
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup: unknown %s id %d", e.Kind, e.ID)
}

// NewLookupError builds a LookupError for the given entity kind and id.
func NewLookupError(kind string, id int64) *LookupError {
	return &LookupError{Kind: kind, ID: id}
}

// NativeError wraps a status code and message returned by the native
// runtime itself, as opposed to a bridge-side failure. Code follows the
// native runtime's own error code space, not a gRPC status code.
type NativeError struct {
	Code    int64
	Message string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("native: code=%d: %s", e.Code, e.Message)
}

// NewNativeError builds a NativeError.
func NewNativeError(code int64, message string) *NativeError {
	return &NativeError{Code: code, Message: message}
}

// InternalError reports a bridge-side invariant violation: double
// registration of a session id already live in the store, destroying an
// already-removed entry observed mid-teardown, and similar conditions
// that indicate a bug rather than bad client input.
type InternalError struct {
	Reason string
	Err    error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("internal: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("internal: %s", e.Reason)
}

func (e *InternalError) Unwrap() error { return e.Err }

// NewInternalError wraps err with pingcap/errors stack context and
// classifies it as an InternalError.
func NewInternalError(reason string, err error) *InternalError {
	if err != nil {
		err = errors.Trace(err)
	}
	return &InternalError{Reason: reason, Err: err}
}

// Is reports whether err is classified as one of the five vaccelerr
// error kinds.
func Is(err error) bool {
	switch err.(type) {
	case *TransportError, *ProtocolError, *LookupError, *NativeError, *InternalError:
		return true
	default:
		return false
	}
}
