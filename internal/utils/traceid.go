// Package utils holds small helpers shared by the admin API server and its
// client.
package utils

import "github.com/google/uuid"

// TraceIDHeader carries the request trace id between the admin client, the
// admin API and their logs.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the v7 generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
