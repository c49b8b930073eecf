// Package http exposes the application's REST surface on a chi router.
//
// Every response body is JSON; errors and simple confirmations use the
// {"message": ...} envelope. Session state rides on an HttpOnly cookie
// managed by internal/session, and mutating routes sit behind both a CSRF
// check and the requireAdmin guard.
package http
