// Package orb prepares the process argument vector for the CORBA transport
// used by the device-control middleware.
//
// The middleware consumes argv once during its own initialization, so
// [FixEndpoint] must run before that call.
package orb

import (
	"slices"
	"strings"
)

const (
	// EndpointFlag binds the ORB to an explicit GIOP endpoint. Without it
	// the ORB may publish an unreachable address and clients stall in the
	// connection handshake.
	EndpointFlag = "-ORBendPoint"

	// DefaultEndpoint lets the ORB pick the port on every interface.
	DefaultEndpoint = "giop:tcp::"
)

// FixEndpoint returns a copy of args with the ORB endpoint flag and its value
// appended. An empty endpoint selects [DefaultEndpoint]. If args already
// carry the flag, either as "-ORBendPoint value" or "-ORBendPoint=value",
// the copy is returned unchanged so repeated calls never duplicate it.
//
// args itself is never modified; the caller owns the returned slice and must
// keep it for as long as the middleware uses it.
func FixEndpoint(args []string, endpoint string) []string {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	fixed := slices.Clone(args)
	if HasEndpoint(fixed) {
		return fixed
	}

	return append(fixed, EndpointFlag, endpoint)
}

// HasEndpoint reports whether args, excluding the program name, already set
// the ORB endpoint. Flag names are matched case-insensitively.
func HasEndpoint(args []string) bool {
	if len(args) < 2 {
		return false
	}

	for _, arg := range args[1:] {
		name, _, _ := strings.Cut(arg, "=")
		if strings.EqualFold(name, EndpointFlag) {
			return true
		}
	}
	return false
}
