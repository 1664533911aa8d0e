// Package app assembles the HTTP application: configuration, logging,
// filesystem paths, analysis services, the router and the server
// lifecycle. The cmd/server binary is a thin wrapper around this
// package.
package app
