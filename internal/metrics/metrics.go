// Package metrics is a purpose-built descendant of cesium's alamos
// (generic Experiment/Metric tree) and kfs.Metrics (a handful of named
// Duration gauges, each wrapped around an operation with a Stopwatch).
//
// The generic Experiment/sub-experiment tree in alamos exists to let
// cesium compose metrics across many storage subsystems at once; this
// engine has exactly one mutex-guarded operation table, so the tree is
// flattened into a fixed struct of counters and duration gauges, one
// per spec.md §4.3 operation family that the testable properties in
// §8 and the exclusion protocol in §5 actually care about.
package metrics

import (
	"sync/atomic"
	"time"
)

// Duration is a minimal stand-in for alamos.Duration: a named gauge
// that records how long each call to an operation took, plus a
// running count. Stopwatch() returns a handle good for exactly one
// Start/Stop pair, mirroring kfs.Metrics's "fs.metrics.Acquire.
// Stopwatch(); sw.Start(); defer sw.Stop()" call pattern.
type Duration struct {
	count atomic.Int64
	total atomic.Int64 // nanoseconds
}

// Stopwatch begins timing one call. Call Stop on the result when the
// call completes.
func (d *Duration) Stopwatch() *stopwatch {
	return &stopwatch{d: d}
}

// Count returns the number of completed calls recorded so far.
func (d *Duration) Count() int64 { return d.count.Load() }

// Mean returns the average recorded duration, or 0 if none have been
// recorded yet.
func (d *Duration) Mean() time.Duration {
	n := d.count.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(d.total.Load() / n)
}

type stopwatch struct {
	d     *Duration
	start time.Time
}

func (s *stopwatch) Start() { s.start = time.Now() }

func (s *stopwatch) Stop() time.Duration {
	elapsed := time.Since(s.start)
	s.d.count.Add(1)
	s.d.total.Add(int64(elapsed))
	return elapsed
}

// Counter is a simple atomic event counter, used for the gate
// rejections spec.md §5/§7 describe (busy, too-many-open-files) that
// have no meaningful duration to measure.
type Counter struct {
	value atomic.Int64
}

func (c *Counter) Inc()         { c.value.Add(1) }
func (c *Counter) Value() int64 { return c.value.Load() }

// Engine collects every metric the operation engine records. A zero
// Engine is ready to use.
type Engine struct {
	Open   Duration
	Close  Duration
	Read   Duration
	Write  Duration
	Unlink Duration
	Attach Duration
	Detach Duration

	BusyRejections     Counter
	TooManyOpenFiles   Counter
	NotFoundRejections Counter
}
