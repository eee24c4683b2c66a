// Drawbench measures sortition draw throughput and index-frequency spread.
//
// Usage:
//
//	go run ./cmd/drawbench -draws 1000000 -max 78 -mode chacha -workers 4
//
// Flags:
//
//	-draws     Number of draws to perform (default: 1,000,000)
//	-max       Draw range upper bound (default: 78)
//	-mode      Seed mode: deterministic, system, or chacha (default: system)
//	-workers   Number of parallel draw workers (default: 1)
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tamirms/sortition"
	"github.com/tamirms/sortition/entropy"
)

func newRng(mode string) (*sortition.Rng, error) {
	switch mode {
	case "deterministic":
		return sortition.New(sortition.WithoutTimestamp(), sortition.WithoutEntropy()), nil
	case "system":
		return sortition.New(), nil
	case "chacha":
		src, err := entropy.NewChaCha(nil)
		if err != nil {
			return nil, err
		}
		return sortition.New(sortition.WithEntropySource(src)), nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

func main() {
	drawsFlag := flag.Int("draws", 1_000_000, "number of draws")
	maxFlag := flag.Int("max", 78, "draw range upper bound")
	modeFlag := flag.String("mode", "system", "seed mode: deterministic, system, or chacha")
	workersFlag := flag.Int("workers", 1, "number of parallel draw workers")
	flag.Parse()

	rng, err := newRng(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	draws := *drawsFlag
	max := *maxFlag
	workers := *workersFlag
	if workers < 1 {
		workers = 1
	}

	if backend, err := entropy.Backend(); err == nil {
		fmt.Printf("Entropy backend: %s\n", backend)
	}
	fmt.Printf("Mode: %s, draws: %d, max: %d, workers: %d\n", *modeFlag, draws, max, workers)

	var mu sync.Mutex
	counts := make([]int, max)

	start := time.Now()
	var g errgroup.Group
	per := draws / workers
	for w := 0; w < workers; w++ {
		w := w
		n := per
		if w == workers-1 {
			n = draws - per*(workers-1)
		}
		g.Go(func() error {
			local := make([]int, max)
			for i := 0; i < n; i++ {
				res, err := rng.Draw(fmt.Sprintf("bench-%d-%d", w, i), max)
				if err != nil {
					return err
				}
				local[res.Index]++
			}
			mu.Lock()
			for i, c := range local {
				counts[i] += c
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	lo, hi := counts[0], counts[0]
	for _, c := range counts[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	mean := float64(draws) / float64(max)

	fmt.Printf("Elapsed: %s (%.0f draws/sec)\n", elapsed, float64(draws)/elapsed.Seconds())
	fmt.Printf("Frequency spread: min %d, mean %.1f, max %d\n", lo, mean, hi)
}
