// Copyright 2025 BestBox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package protocol

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures across the runtime. Kinds map onto HTTP
// statuses at the API boundary and onto tool-result error fields inside a
// turn.
type ErrorKind string

const (
	KindPermissionDenied     ErrorKind = "permission_denied"
	KindContextOverflow      ErrorKind = "context_overflow"
	KindBackendUnavailable   ErrorKind = "backend_unavailable"
	KindBackendError         ErrorKind = "backend_error"
	KindOperationUnsupported ErrorKind = "operation_unsupported"
	KindResourceBusy         ErrorKind = "resource_busy"
	KindCheckpointConflict   ErrorKind = "checkpoint_conflict"
	KindDeadlineExceeded     ErrorKind = "deadline_exceeded"
	KindUpstreamUnavailable  ErrorKind = "upstream_unavailable"
	KindInternal             ErrorKind = "internal"
)

// Error carries a kind plus an optional wrapped cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a kinded error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError builds a kinded error around a cause.
func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from any error in the chain, defaulting to
// internal.
func KindOf(err error) ErrorKind {
	var kinded *Error
	if errors.As(err, &kinded) {
		return kinded.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to the API status code.
func HTTPStatus(kind ErrorKind) int {
	switch kind {
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindContextOverflow:
		return http.StatusBadRequest
	case KindOperationUnsupported:
		return http.StatusBadRequest
	case KindResourceBusy:
		return http.StatusTooManyRequests
	case KindDeadlineExceeded:
		return http.StatusRequestTimeout
	case KindBackendUnavailable, KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case KindBackendError, KindCheckpointConflict, KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
