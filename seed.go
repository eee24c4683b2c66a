package sortition

import (
	"encoding/hex"
	"strings"
	"time"
)

// seedDelimiter joins seed components. It is also used to derive per-position
// sub-intentions in multi-draws, so it must never change without changing
// every historical deterministic output.
const seedDelimiter = "::"

// timestampLayout is ISO-8601 with millisecond precision. Timestamps are
// rendered in UTC, so the zone suffix is always "Z".
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// formatTimestamp renders t for both seed material and result fields.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// buildSeed assembles the joined seed string for one draw. Component order is
// fixed and significant: intention first, then the timestamp when enabled,
// then hex-encoded entropy when enabled. Entropy is fetched fresh on every
// call and never reused across draws.
//
// The returned string is hashed by the caller and then discarded; nothing in
// the library retains it.
func (r *Rng) buildSeed(intention string, at time.Time) (string, error) {
	parts := make([]string, 1, 3)
	parts[0] = intention
	if r.cfg.includeTimestamp {
		parts = append(parts, formatTimestamp(at))
	}
	if r.cfg.includeEntropy {
		b, err := r.cfg.source.Bytes(r.cfg.entropyBytes)
		if err != nil {
			return "", err
		}
		parts = append(parts, hex.EncodeToString(b))
	}
	return strings.Join(parts, seedDelimiter), nil
}
