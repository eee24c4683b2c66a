// Package sortition maps a caller-supplied text ("intention") onto a
// uniformly distributed integer index in [0, max), using SHA-256 as the
// mixing function.
//
// Each draw assembles a seed from the intention plus, by default, a
// millisecond-precision timestamp and fresh bytes from a cryptographically
// secure entropy source, hashes it once, and folds the digest into the
// requested range. With the timestamp and entropy disabled the draw is a pure
// function of its inputs, which is the mode reproducible consumers and tests
// should use.
//
// # Basic Usage
//
// Drawing a single index:
//
//	rng := sortition.New()
//	res, err := rng.Draw("what should I focus on", 78)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("index %d at %s\n", res.Index, res.Timestamp)
//
// Drawing several distinct indices:
//
//	multi, err := rng.DrawUnique("weekly spread", 78, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(multi.Indices)
//
// Reproducible draws:
//
//	rng := sortition.New(sortition.WithoutTimestamp(), sortition.WithoutEntropy())
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: rng.go (New, Draw, DrawMultiple, DrawUnique), result.go
//   - Configuration: rng_options.go (Option, With* functions)
//   - Seed assembly and mixing: seed.go, digest.go
//   - Logging wrapper: logged.go (Logged, content-free draw audit)
//   - Entropy backends: entropy/ (provider probe, platform files, ChaCha20)
//   - Error sentinels: errors/
//
// The seed string exists only for the duration of a single call; intentions
// are never logged, cached, or otherwise retained.
package sortition
