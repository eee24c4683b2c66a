package sortition

import (
	"time"

	"github.com/tamirms/sortition/entropy"
)

// defaultEntropyBytes is the number of fresh entropy bytes mixed into each
// seed when entropy inclusion is enabled.
const defaultEntropyBytes = 32

// Option is a functional option for configuring an Rng.
type Option func(*rngConfig)

type rngConfig struct {
	includeTimestamp bool
	includeEntropy   bool
	entropyBytes     int
	source           entropy.Source
	now              func() time.Time
}

func defaultRngConfig() *rngConfig {
	return &rngConfig{
		includeTimestamp: true,
		includeEntropy:   true,
		entropyBytes:     defaultEntropyBytes,
		source:           entropy.System(),
		now:              time.Now,
	}
}

// WithoutTimestamp excludes the call timestamp from the seed. The result
// timestamp is still populated; this only controls what enters the hash.
func WithoutTimestamp() Option {
	return func(c *rngConfig) {
		c.includeTimestamp = false
	}
}

// WithoutEntropy excludes fresh entropy bytes from the seed. Combined with
// WithoutTimestamp, draws become a pure function of (intention, max).
func WithoutEntropy() Option {
	return func(c *rngConfig) {
		c.includeEntropy = false
	}
}

// WithEntropySource substitutes the entropy backend. The default is the
// process-wide system source; tests can inject entropy.Fixed or a failing
// source, and high-volume callers can inject an entropy.ChaCha.
func WithEntropySource(src entropy.Source) Option {
	return func(c *rngConfig) {
		if src != nil {
			c.source = src
		}
	}
}

// WithEntropyBytes sets how many entropy bytes are fetched per draw.
// Values below 1 are ignored.
func WithEntropyBytes(n int) Option {
	return func(c *rngConfig) {
		if n > 0 {
			c.entropyBytes = n
		}
	}
}

// WithNow substitutes the clock used for timestamps. Intended for tests that
// exercise the timestamp-in-seed path deterministically.
func WithNow(now func() time.Time) Option {
	return func(c *rngConfig) {
		if now != nil {
			c.now = now
		}
	}
}
