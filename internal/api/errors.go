package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed request.
type Kind int

const (
	// KindNetwork covers transport failures: dial errors, resets, timeouts.
	KindNetwork Kind = iota + 1
	// KindStatus is a response outside the 2xx range.
	KindStatus
	// KindDecode is a 2xx response whose body could not be decoded.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against an *Error of KindStatus.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrNotFound         = errors.New("resource not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrUnprocessable    = errors.New("unprocessable")
)

// Error is returned by every Client method on failure.
type Error struct {
	Kind       Kind
	Op         string // e.g. "GET /questions"
	StatusCode int    // set for KindStatus
	Message    string // backend-provided message, if any
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		msg := e.Message
		if msg == "" {
			msg = http.StatusText(e.StatusCode)
		}
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, msg)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
		}
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is maps status codes onto the package sentinels.
func (e *Error) Is(target error) bool {
	if e.Kind != KindStatus {
		return false
	}
	switch target {
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrMethodNotAllowed:
		return e.StatusCode == http.StatusMethodNotAllowed
	case ErrUnprocessable:
		return e.StatusCode == http.StatusUnprocessableEntity
	}
	return false
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}
