// Package resources keeps the local snapshot of the camera service's
// collections in step with the server.
//
// Reads are refreshes: RefreshFrames and RefreshSettings replace their part
// of the snapshot wholesale and may run concurrently with anything; the
// response that lands last wins. Writes are mutations: each sends one
// request and, only if the server accepted it, invalidates the collections
// listed for that operation in the effects table. Nothing is applied to the
// snapshot optimistically.
//
// A 401 that the failure table does not claim for the operation means the
// session was rejected; the SessionGate is told to drop it.
package resources
