package entropy

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/chacha20"
)

const (
	// chachaMaxRead caps the keystream bytes produced per seeding before a
	// reseed is forced.
	chachaMaxRead = 4 * 1024 * 1024

	// chachaMaxAge caps the wall-clock lifetime of a seeding.
	chachaMaxAge = 20 * time.Second
)

// ChaCha is a userspace entropy source that stretches kernel entropy through
// a ChaCha20 keystream, reseeding from the backing source after a bounded
// amount of output or elapsed time. It amortizes kernel round-trips for
// callers performing high-volume draws while remaining a CSPRNG.
//
// ChaCha is safe for concurrent use.
type ChaCha struct {
	mu      sync.Mutex
	backing Source
	cipher  *chacha20.Cipher
	read    int
	expiry  time.Time
	counter uint64
}

// NewChaCha returns a ChaCha source seeded from backing. A nil backing uses
// the process-wide system source. The constructor fails if the backing source
// cannot supply the initial key, so a successfully constructed ChaCha always
// has a healthy keystream.
func NewChaCha(backing Source) (*ChaCha, error) {
	if backing == nil {
		backing = System()
	}
	c := &ChaCha{backing: backing}
	if err := c.reseed(); err != nil {
		return nil, err
	}
	return c, nil
}

// reseed replaces the keystream with one keyed by fresh backing entropy.
// Callers must hold c.mu (or be the constructor).
func (c *ChaCha) reseed() error {
	key, err := c.backing.Bytes(chacha20.KeySize)
	if err != nil {
		return err
	}
	// Old keystream output is folded into the new key so a momentary key
	// compromise does not expose prior output.
	if c.cipher != nil {
		c.cipher.XORKeyStream(key, key)
	}
	var nonce [chacha20.NonceSize]byte
	for i := 0; i < 8; i++ {
		nonce[i] = byte(c.counter >> (8 * i))
	}
	c.counter++
	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		return fmt.Errorf("entropy: chacha20 init: %w", err)
	}
	c.cipher = cipher
	c.read = 0
	c.expiry = time.Now().Add(chachaMaxAge)
	return nil
}

// Bytes returns n fresh keystream bytes, reseeding first when the current
// seeding has aged out or produced its output budget.
func (c *ChaCha) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("entropy: invalid byte count %d", n)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.read+n > chachaMaxRead || time.Now().After(c.expiry) {
		if err := c.reseed(); err != nil {
			return nil, err
		}
	}
	b := make([]byte, n)
	c.cipher.XORKeyStream(b, b)
	c.read += n
	return b, nil
}
