// Package http implements the HTTP transport layer of the application: the
// request admission pipeline every inbound request traverses before reaching
// a resource handler.
//
// The pipeline stages run in a fixed order: panic recovery, trace id,
// request logging, security headers, cross-origin validation, rate limiting,
// body size capping, and path normalization, followed by prefix-based
// routing to the resource handlers. Unmatched routes and handler failures
// terminate in the structured error/404 responder; nothing propagates past
// it.
package http
