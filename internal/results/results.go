// Package results carries the success-or-failure envelope service operations
// return. Business failures travel as typed payloads rather than Go errors so
// callers can distinguish "handled, but didn't happen" from infrastructure
// breakage.
package results

// OperationResult holds at most one of a success or failure payload.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// IsSuccess reports whether a success payload is present.
func (r OperationResult[S, F]) IsSuccess() bool { return r.Success != nil }

// IsFailure reports whether a failure payload is present.
func (r OperationResult[S, F]) IsFailure() bool { return r.Failure != nil }

// SuccessResult wraps a success payload.
func SuccessResult[S any, F any](payload S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &payload}
}

// FailureResult wraps a failure payload.
func FailureResult[S any, F any](payload F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &payload}
}
