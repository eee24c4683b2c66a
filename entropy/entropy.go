// Package entropy supplies cryptographically strong random bytes from an
// ordered list of platform providers.
//
// The provider list is probed exactly once per process, on first use. The
// native kernel interface is tried first (getrandom on Linux, getentropy on
// Darwin), then the portable crypto/rand reader. If every probe fails the
// failure is cached and all subsequent reads return ErrNoEntropySource; a
// non-cryptographic generator is never substituted.
//
// The probe is safe under concurrent first access: all callers converge on
// the same provider choice.
package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	sorterrors "github.com/tamirms/sortition/errors"
)

// Source supplies cryptographically strong random bytes.
//
// Implementations must be safe for concurrent use. Bytes returns exactly n
// fresh random bytes or an error; it never returns a short buffer.
type Source interface {
	Bytes(n int) ([]byte, error)
}

// provider is one candidate entropy backend in the probe order.
type provider struct {
	name string
	read func(b []byte) error
}

// cryptoRandProvider reads from crypto/rand.Reader. It is the portable
// fallback and sits last in every platform's probe order.
func cryptoRandProvider() provider {
	return provider{
		name: "crypto/rand",
		read: func(b []byte) error {
			_, err := io.ReadFull(rand.Reader, b)
			return err
		},
	}
}

// systemSource is the process-wide source backed by the first working
// provider. The zero value is ready for use; the probe runs on first read.
type systemSource struct {
	once     sync.Once
	selected *provider
	probeErr error
}

var system systemSource

// System returns the shared process-wide entropy source. The backend probe
// runs on the first call to Bytes and its outcome, success or failure, is
// cached for the process lifetime.
func System() Source {
	return &system
}

// probe walks the platform's provider order and selects the first backend
// that can produce bytes. Called exactly once via sync.Once.
func (s *systemSource) probe() {
	for i := range platformProviders {
		p := &platformProviders[i]
		var scratch [1]byte
		if err := p.read(scratch[:]); err == nil {
			s.selected = p
			return
		}
	}
	s.probeErr = fmt.Errorf("%w: all providers failed probe", sorterrors.ErrNoEntropySource)
}

func (s *systemSource) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("entropy: invalid byte count %d", n)
	}
	s.once.Do(s.probe)
	if s.probeErr != nil {
		return nil, s.probeErr
	}
	b := make([]byte, n)
	if err := s.selected.read(b); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sorterrors.ErrNoEntropySource, s.selected.name, err)
	}
	return b, nil
}

// Backend reports the name of the selected provider, probing if necessary.
// It returns an error when no provider is available.
func Backend() (string, error) {
	system.once.Do(system.probe)
	if system.probeErr != nil {
		return "", system.probeErr
	}
	return system.selected.name, nil
}

// Fixed returns a deterministic Source that repeats the given seed to fill
// every request. It is intended for tests that need reproducible "entropy";
// it is not cryptographically secure.
func Fixed(seed []byte) Source {
	cp := append([]byte(nil), seed...)
	return fixedSource{seed: cp}
}

type fixedSource struct {
	seed []byte
}

func (f fixedSource) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("entropy: invalid byte count %d", n)
	}
	if len(f.seed) == 0 {
		return nil, fmt.Errorf("%w: fixed source has empty seed", sorterrors.ErrNoEntropySource)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = f.seed[i%len(f.seed)]
	}
	return b, nil
}
