// Package api contains the HTTP transport for the Splits backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     every backend operation: login/register, group listing and detail,
//     expenses, membership changes and settlements.
//  2. A concrete HTTP implementation (see HTTPClient) that shares one
//     http.Client, attaches the bearer token read from the persisted session
//     store at send time, and maps backend responses to errors.
//
// # Authorization
//
// Every request carries "Authorization: Bearer <token>" when the injected
// TokenSource yields a token; otherwise the request goes out unauthenticated.
// A 401 response invokes the single registered expiry handler (see
// SetExpiryHandler) before ErrUnauthorized is returned to the caller. The
// transport itself never touches the session store — the handler owns all
// state mutation.
//
// # Error Handling
//
// Callers can match sentinel errors with errors.Is: ErrUnauthorized,
// ErrUnavailable. Other 4xx/5xx responses surface as *APIError carrying the
// backend's message (or a generic fallback) so the UI can show it verbatim.
package api
