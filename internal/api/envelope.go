// Package api provides typed resource clients for the recruitment platform
// backend. Every remote operation returns an Envelope rather than an error:
// transport failures, non-2xx statuses and decode failures are normalized to
// {Success: false, Error: message}, so callers branch on Success instead of
// handling exceptions. A 404 on "find one" style endpoints is an empty result,
// not a failure.
package api

// Envelope is the uniform wrapper around every remote call's outcome.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Ok wraps data in a successful envelope.
func Ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// Fail wraps an error message in a failed envelope.
func Fail[T any](msg string) Envelope[T] {
	return Envelope[T]{Success: false, Error: msg}
}
