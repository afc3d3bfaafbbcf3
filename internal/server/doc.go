// Package server runs the admin HTTP server of a devconf process.
//
// It owns the listener lifecycle: binding the address up front so a busy
// port is reported at start-up, serving until a stop signal arrives, and
// shutting down gracefully.
package server
