package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindSuccess Kind = iota
	KindDomainFailure
	KindTransportFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindDomainFailure:
		return "domain failure"
	case KindTransportFailure:
		return "transport failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrorBody is the error payload the service attaches to failures.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Result is the classified outcome of one request.
type Result struct {
	Kind Kind
	// Status is the HTTP status; zero for transport failures.
	Status int
	// Body is set on domain failures that carried a JSON error payload.
	Body *ErrorBody
	// Err is the cause of a transport failure.
	Err error
}

func Success(status int) Result {
	return Result{Kind: KindSuccess, Status: status}
}

func DomainFailure(status int, body *ErrorBody) Result {
	return Result{Kind: KindDomainFailure, Status: status, Body: body}
}

func TransportFailure(err error) Result {
	return Result{Kind: KindTransportFailure, Err: err}
}

func (r Result) OK() bool {
	return r.Kind == KindSuccess
}

// Unauthorized reports a 401 domain failure.
func (r Result) Unauthorized() bool {
	return r.Kind == KindDomainFailure && r.Status == http.StatusUnauthorized
}

func (r Result) String() string {
	switch r.Kind {
	case KindSuccess:
		return fmt.Sprintf("success (%d)", r.Status)
	case KindDomainFailure:
		if r.Body != nil && r.Body.Error != "" {
			return fmt.Sprintf("failure (%d): %s", r.Status, r.Body.Error)
		}
		return fmt.Sprintf("failure (%d)", r.Status)
	default:
		return fmt.Sprintf("transport failure: %v", r.Err)
	}
}

// Decoder consumes a successful response body.
type Decoder func(data []byte) error

// JSON returns a Decoder that unmarshals into v.
func JSON(v any) Decoder {
	return func(data []byte) error {
		return json.Unmarshal(data, v)
	}
}
