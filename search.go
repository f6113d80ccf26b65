package aes256bf

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
)

// totalCounters is 2^32, the size of the counter space spec.md §4.4
// requires be swept, inclusive of math.MaxUint32.
const totalCounters = uint64(1) << 32

// Run sweeps every counter in [0, 2^32) — inclusive of math.MaxUint32 —
// partitioned across a pool of worker goroutines (spec.md §5), deriving and
// masking each candidate key, decrypting cfg.Ciphertext, and reporting every
// key whose decryption is the all-zero block to sink.
//
// Run does not stop at the first hit: the entire space is swept, since
// near-collisions are not assumed impossible and distinct derivation paths
// may legitimately produce the same decrypting key (spec.md §4.4
// "Reporting").
func Run(ctx context.Context, cfg SearchConfig, sink Sink) error {
	if sink == nil {
		return ErrNilSink
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	runID := uuid.New()
	start := time.Now()
	slog.Info("search starting",
		"run_id", runID,
		"mode", cfg.Mode,
		"mask", cfg.UseMask,
		"workers", numWorkers,
		"cpu_aes_hardware", cpuHasHardwareAES())

	chunk := totalCounters / uint64(numWorkers)
	if chunk == 0 {
		chunk = 1
		numWorkers = int(totalCounters)
	}

	var wg sync.WaitGroup
	errs := make(chan error, numWorkers)

	for w := 0; w < numWorkers; w++ {
		lo := uint64(w) * chunk
		hi := lo + chunk
		if w == numWorkers-1 {
			hi = totalCounters // last worker absorbs any remainder, reaching UINT32_MAX
		}
		if lo >= totalCounters {
			break
		}

		wg.Add(1)
		go func(lo, hi uint64) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs <- fmt.Errorf("panic in search worker [%d,%d): %v", lo, hi, r)
				}
			}()
			sweepRange(ctx, cfg, sink, lo, hi, errs)
		}(lo, hi)
	}

	wg.Wait()
	close(errs)

	var firstErr error
	for err := range errs {
		if firstErr == nil {
			firstErr = err
		}
	}

	slog.Info("search finished",
		"run_id", runID,
		"elapsed", time.Since(start),
		"error", firstErr)

	return firstErr
}

// sweepRange evaluates every counter in [lo, hi) (a sub-range of the full
// uint32 space, widened to uint64 so the final chunk can include
// math.MaxUint32 without overflowing the loop bound). Enumeration order
// within the range is ascending, per spec.md §5; no state is shared across
// counters except cfg and sink, both already safe for concurrent read/use.
func sweepRange(ctx context.Context, cfg SearchConfig, sink Sink, lo, hi uint64, errs chan<- error) {
	states := 1
	if cfg.UseMask {
		states = 255
	}

	for c := lo; c < hi; c++ {
		if c%(1<<20) == 0 {
			select {
			case <-ctx.Done():
				return
			default:
			}
		}

		counter := uint32(c)
		base := Derive(cfg.Mode, counter, cfg.LCG)

		for state := 0; state < states; state++ {
			candidate := Mask(base, state, cfg.UseMask)
			schedule := ScheduleFull(candidate)
			plain := DecryptBlock(&schedule, cfg.Ciphertext)

			if plain == (Block{}) {
				if err := sink.Report(Hit{Key: candidate, Counter: counter, State: state}); err != nil {
					errs <- err
					return
				}
			}
		}
	}
}
