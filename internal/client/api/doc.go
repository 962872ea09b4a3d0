// Package api executes single requests against the camera service and
// classifies what came back.
//
// # Wire format
//
// Every operation is a POST to baseURL + "/" + operation with an
// application/x-www-form-urlencoded body. Authenticated operations always
// carry the username and session_token fields of the Session the Client was
// built with; callers never pass them. Responses are JSON.
//
// # Outcomes
//
// Do and Authenticate never return a Go error. They return a Result whose
// Kind is one of:
//
//   - KindSuccess: 2xx status, payload decoded if a Decoder was given.
//   - KindDomainFailure: any non-2xx status. Body holds the decoded
//     {"error": "..."} payload when the service sent one.
//   - KindTransportFailure: the request never produced a usable response
//     (network error, unreadable or undecodable body). Err holds the cause.
//
// Requests are sent once. There is no retry and no deadline beyond what the
// caller's context and the underlying http.Client impose. Redirect statuses
// are reported as they are; the service uses 303 as a domain status.
package api
