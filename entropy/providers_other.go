//go:build !linux && !darwin

package entropy

// platformProviders on platforms without a wired native syscall is just the
// portable crypto/rand reader, which routes to the OS secure RNG anyway.
var platformProviders = []provider{
	cryptoRandProvider(),
}
