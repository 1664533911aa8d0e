// Package http contains the HTTP transport layer: the chi router, the
// analysis query handlers and the health endpoints.
package http
