// Package errs defines the error shape every API failure is rendered with.
//
// HTTPError carries a machine-friendly code, a message, the HTTP status and
// optional field errors, so clients receive consistent, actionable responses.
package errs
