//go:build linux

package entropy

import "golang.org/x/sys/unix"

// platformProviders is the probe order on Linux: the getrandom(2) syscall
// first, then the portable crypto/rand reader.
var platformProviders = []provider{
	{
		name: "getrandom",
		read: func(b []byte) error {
			for len(b) > 0 {
				n, err := unix.Getrandom(b, 0)
				if err != nil {
					return err
				}
				b = b[n:]
			}
			return nil
		},
	},
	cryptoRandProvider(),
}
