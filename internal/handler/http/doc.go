// Package http implements the admin REST API of a device-control process.
//
// The API exposes the resolved configuration and lets an operator persist
// the simulation flag for the next start. Requests pass through trace-id,
// access-log and panic-recovery middleware before reaching the handlers.
package http
