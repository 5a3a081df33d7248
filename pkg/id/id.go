// Package id mints trade identifiers. ULIDs sort lexicographically by
// creation time, so journal listings and the sqlite primary key follow
// insertion order without an extra sequence column.
package id

import (
	cryptorand "crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	once    sync.Once
	entropy *ulid.MonotonicEntropy
)

// New returns the ULID for a freshly recorded trade. Entropy comes straight
// from crypto/rand; the monotonic wrapper keeps IDs minted within the same
// millisecond strictly increasing.
func New() string {
	once.Do(func() {
		entropy = ulid.Monotonic(cryptorand.Reader, 0)
	})

	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}

// Valid reports whether s parses as a trade ID.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
