// Package failures turns classified api results into user-facing failure
// kinds. It is the single status-to-meaning table for every call site: the
// login form, the feed and the settings view all read their inline messages
// from here.
package failures

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/facecam/internal/client/api"
	"github.com/dmitrijs2005/facecam/internal/common"
)

type Kind int

const (
	KindUnknown Kind = iota

	// Authentication form.
	KindMissingCredentials
	KindWrongPassword
	KindUnknownUser
	KindUserExists

	// Camera enrollment.
	KindCameraNotFound
	KindCameraAlreadyLinked
	KindCameraLinkedElsewhere

	// Saving a frame as a face.
	KindNoFacesInFrame
	KindFaceNameTaken
	KindFaceAlreadyKnown

	KindStaleSession
	KindTransport
)

// Category groups kinds by how the client reacts to them.
type Category int

const (
	CategoryValidation Category = iota
	CategoryAuth
	CategoryStaleSession
	CategoryTransport
)

var messages = map[Kind]string{
	KindUnknown:               "Something went wrong",
	KindMissingCredentials:    "Username or password missing",
	KindWrongPassword:         "Wrong password",
	KindUnknownUser:           "Username does not exist",
	KindUserExists:            "Username already exists",
	KindCameraNotFound:        "Camera id does not exist",
	KindCameraAlreadyLinked:   "Camera already linked",
	KindCameraLinkedElsewhere: "Camera linked to other account",
	KindNoFacesInFrame:        "No faces in frame",
	KindFaceNameTaken:         "Name already exists",
	KindFaceAlreadyKnown:      "Face already exists",
	KindStaleSession:          "Session expired, please log in again",
	KindTransport:             "Server unavailable, try again",
}

func (k Kind) Message() string {
	if m, ok := messages[k]; ok {
		return m
	}
	return messages[KindUnknown]
}

func (k Kind) Category() Category {
	switch k {
	case KindMissingCredentials, KindWrongPassword, KindUnknownUser, KindUserExists:
		return CategoryAuth
	case KindStaleSession:
		return CategoryStaleSession
	case KindTransport:
		return CategoryTransport
	default:
		return CategoryValidation
	}
}

// statusKinds maps (operation, status) to a kind. A 401 on an operation that
// does not list it means the session was rejected.
var statusKinds = map[api.Operation]map[int]Kind{
	api.OpLogin: {
		http.StatusBadRequest:   KindMissingCredentials,
		http.StatusUnauthorized: KindWrongPassword,
		http.StatusNotFound:     KindUnknownUser,
	},
	api.OpRegister: {
		http.StatusBadRequest: KindMissingCredentials,
		http.StatusConflict:   KindUserExists,
	},
	api.OpEnroll: {
		http.StatusUnauthorized: KindCameraNotFound,
		http.StatusConflict:     KindCameraAlreadyLinked,
		http.StatusSeeOther:     KindCameraLinkedElsewhere,
	},
	api.OpSave: {
		http.StatusBadRequest: KindNoFacesInFrame,
		http.StatusConflict:   KindFaceNameTaken,
		http.StatusSeeOther:   KindFaceAlreadyKnown,
	},
}

// Failure is a classified unsuccessful outcome of one operation.
type Failure struct {
	Op     api.Operation
	Kind   Kind
	Status int
	// Detail is the service's own error text, when it sent one.
	Detail string
	Err    error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Op, f.Kind.Message(), f.Err)
	}
	if f.Detail != "" {
		return fmt.Sprintf("%s (%d): %s: %s", f.Op, f.Status, f.Kind.Message(), f.Detail)
	}
	return fmt.Sprintf("%s (%d): %s", f.Op, f.Status, f.Kind.Message())
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func (f *Failure) Message() string {
	return f.Kind.Message()
}

// Classify returns nil for a successful result.
func Classify(op api.Operation, res api.Result) *Failure {
	switch res.Kind {
	case api.KindSuccess:
		return nil
	case api.KindTransportFailure:
		return &Failure{Op: op, Kind: KindTransport, Err: res.Err}
	}

	f := &Failure{Op: op, Status: res.Status, Kind: KindUnknown}
	if res.Body != nil {
		f.Detail = res.Body.Error
	}
	if k, ok := statusKinds[op][res.Status]; ok {
		f.Kind = k
	} else if res.Status == http.StatusUnauthorized {
		f.Kind = KindStaleSession
		f.Err = common.ErrStaleSession
	}
	return f
}
