//go:build darwin

package entropy

import "golang.org/x/sys/unix"

// platformProviders is the probe order on Darwin: the getentropy(2) syscall
// first, then the portable crypto/rand reader. getentropy caps requests at
// 256 bytes, so larger reads are chunked.
var platformProviders = []provider{
	{
		name: "getentropy",
		read: func(b []byte) error {
			const maxChunk = 256
			for len(b) > 0 {
				n := min(len(b), maxChunk)
				if err := unix.Getentropy(b[:n]); err != nil {
					return err
				}
				b = b[n:]
			}
			return nil
		},
	},
	cryptoRandProvider(),
}
