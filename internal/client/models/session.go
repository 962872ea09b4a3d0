// Package models defines the client-side view of the camera service's
// resources and the authenticated session they are fetched under.
package models

// Session is the authenticated identity sent with every request.
//
// Both fields are set or the session is treated as logged out; a value with
// only one of them is never valid.
type Session struct {
	Username string
	Token    string
}

// Valid reports whether both fields are present.
func (s Session) Valid() bool {
	return s.Username != "" && s.Token != ""
}
