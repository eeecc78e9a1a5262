// Package id hands out the identifiers of journal runs.
package id

import (
	cryptoRand "crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunID identifies one pipeline run in a journal. It is a ULID, so run
// ids sort in the order the runs started.
type RunID string

func (r RunID) String() string { return string(r) }

// Time returns the start time encoded in the id.
func (r RunID) Time() (time.Time, error) {
	u, err := ulid.ParseStrict(string(r))
	if err != nil {
		return time.Time{}, fmt.Errorf("run id %q: %w", string(r), err)
	}
	return ulid.Time(u.Time()).UTC(), nil
}

// ParseRunID validates s and returns it in canonical upper case form.
func ParseRunID(s string) (RunID, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return "", fmt.Errorf("run id %q: %w", s, err)
	}
	return RunID(u.String()), nil
}

// Generator issues strictly increasing run ids, including for runs
// started within the same millisecond.
type Generator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

// NewGenerator returns a generator reading the clock from now and
// randomness from entropy. Nil arguments select time.Now and crypto/rand.
func NewGenerator(now func() time.Time, entropy io.Reader) *Generator {
	if now == nil {
		now = time.Now
	}
	if entropy == nil {
		entropy = cryptoRand.Reader
	}
	return &Generator{now: now, entropy: ulid.Monotonic(entropy, 0)}
}

// Next returns a new run id stamped with the current time.
func (g *Generator) Next() (RunID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, err := ulid.New(ulid.Timestamp(g.now().UTC()), g.entropy)
	if err != nil {
		return "", fmt.Errorf("new run id: %w", err)
	}
	return RunID(u.String()), nil
}

var runs = NewGenerator(nil, nil)

// NewRun returns a run id from the process wide generator.
func NewRun() (RunID, error) {
	return runs.Next()
}
