// Package common defines sentinel errors shared by the client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrStaleSession   = errors.New("session rejected by server")
	ErrInvalidSession = errors.New("partial session")

	// Transport errors.
	ErrTransport = errors.New("server unavailable")
)
