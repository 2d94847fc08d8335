package domain

import "fmt"

// ValidationError rejects caller-supplied input before any ledger write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StateConflictError means the requested transition is illegal from the
// current status, or the actor has no power over it. Surfaced as a denial,
// not a crash.
type StateConflictError struct {
	Current   DeliverableStatus
	Operation string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s a deliverable in status %s", e.Operation, e.Current)
}

// GatewayError wraps a failed or timed-out processor call. The escrow
// coordinator converts it into a FAILURE ledger record; the operation is
// fully retryable.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("payment gateway: %s", e.Message)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ConsistencyError is a data-integrity bug, such as a missing escrow hold
// record. It propagates uncaught to abort the enclosing transaction.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string {
	return "consistency violation: " + e.Detail
}

func NewConsistencyError(format string, args ...any) *ConsistencyError {
	return &ConsistencyError{Detail: fmt.Sprintf(format, args...)}
}
