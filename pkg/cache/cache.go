// Package cache stores computed results so repeated evaluations of the same
// scenario skip the calculator.
//
// Three backends implement [Cache]:
//   - [FileCache] keeps entries as files under a directory (CLI default)
//   - [RedisCache] shares entries between server replicas
//   - [NullCache] stores nothing (--no-cache)
//
// Keys come from a [Keyer], which hashes the scenario content together with
// everything else that changes the answer (pixel dimensions, explicit count,
// sweep range). [ScopedKeyer] adds a namespace so the HTTP server and the CLI
// never read each other's entries.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long results stay cached when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Keyer builds cache keys.
type Keyer interface {
	ResultKey(scenarioHash string, opts ResultKeyOpts) string
	SweepKey(scenarioHash string, opts SweepKeyOpts) string
}

// ResultKeyOpts are the inputs besides the scenario that change a result.
type ResultKeyOpts struct {
	DividerHeight float64 `json:"divider_height"`
	GapHeight     float64 `json:"gap_height"`
	Count         *int    `json:"count,omitempty"`
}

// SweepKeyOpts identify one budget sweep over a scenario.
type SweepKeyOpts struct {
	DividerHeight float64 `json:"divider_height"`
	GapHeight     float64 `json:"gap_height"`
	From          float64 `json:"from"`
	To            float64 `json:"to"`
	Step          float64 `json:"step"`
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey returns "result:<sha256>".
func (DefaultKeyer) ResultKey(scenarioHash string, opts ResultKeyOpts) string {
	return hashKey("result", scenarioHash, opts)
}

// SweepKey returns "sweep:<sha256>".
func (DefaultKeyer) SweepKey(scenarioHash string, opts SweepKeyOpts) string {
	return hashKey("sweep", scenarioHash, opts)
}
