// Package cache provides verdict caching for the validation service.
//
// Rule data changes rarely, so a verdict for a given sort code and
// account number pair is stable until the next rule table release. The
// TTL bounds staleness across releases.
package cache

import (
	"context"

	"sortcheck/internal/modulus"
)

// Entry is a cached validation outcome.
type Entry struct {
	Verdict  modulus.Verdict      `json:"verdict"`
	Attempts int                  `json:"attempts"`
	Trace    []modulus.TraceEntry `json:"trace,omitempty"`
}

// Cache stores validation outcomes keyed by normalized input.
// Get returns ok=false on a miss; lookup errors are returned so the
// caller can decide whether to treat them as misses.
type Cache interface {
	Get(ctx context.Context, sortCode, account string) (Entry, bool, error)
	Set(ctx context.Context, sortCode, account string, entry Entry) error
}

func key(sortCode, account string) string {
	return "modcheck:" + sortCode + ":" + account
}
