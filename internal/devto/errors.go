package devto

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned when an operation needs the credential and none is configured.
var ErrNoAPIKey = errors.New("no API key configured: set DEVTO_API_KEY")

// ErrorKind classifies a failed remote operation.
type ErrorKind string

const (
	// KindConfig is a local precondition failure; nothing was sent over the wire.
	KindConfig ErrorKind = "config"

	// KindTransport covers connection, timeout and response decoding failures.
	KindTransport ErrorKind = "transport"

	// KindPlatform is an unexpected HTTP status returned by the platform.
	KindPlatform ErrorKind = "platform"
)

// Error is the structured failure carried by a Result or returned by the
// raw operations.
type Error struct {
	Kind ErrorKind

	// Code is the HTTP status for platform errors, zero otherwise.
	Code int

	// Message is the raw response body for platform errors and the
	// underlying failure text otherwise.
	Message string

	Cause error
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s error %d: %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func configError() *Error {
	return &Error{Kind: KindConfig, Message: ErrNoAPIKey.Error(), Cause: ErrNoAPIKey}
}

// MissingKeyError returns the config error operations report when no
// credential is set, for callers that check HasAPIKey up front.
func MissingKeyError() *Error {
	return configError()
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), Cause: err}
}

func platformError(code int, body []byte) *Error {
	return &Error{Kind: KindPlatform, Code: code, Message: string(body)}
}

// IsConfig reports whether err is a missing-credential error.
func IsConfig(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConfig
}
