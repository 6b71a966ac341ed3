package rc

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

// Result is the outcome of one timed workload run.
type Result struct {
	Name               string
	Elapsed            time.Duration
	Frames             int
	OperationsPerFrame int
	Operations         int // clone and release pairs performed
}

// NsPerOp returns the average cost of one clone, read and release cycle.
func (r Result) NsPerOp() float64 {
	if r.Operations == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Operations)
}

// Harness runs workloads and writes a human-readable report to Out. A nil
// Logger means the default logger.
type Harness struct {
	Out    io.Writer
	Logger *slog.Logger
}

// NewHarness returns a Harness reporting to out and logging to the default
// logger.
func NewHarness(out io.Writer) *Harness {
	return &Harness{Out: out, Logger: slog.Default()}
}

// WarmUp runs one complete, untimed workload so later runs start with warm
// caches and a grown Go heap.
func WarmUp[P Shared[Entity, P]](h *Harness, factory Factory[Entity, P], cfg Config) {
	fmt.Fprintln(h.Out, "Warming up...")
	g := NewGame(factory, cfg)
	h.reportProgress(g.Events())
	g.Setup()
	g.Run()
	g.Close()
	fmt.Fprint(h.Out, "Warm-up completed.\n\n")
}

// Benchmark times setup plus run of one workload and reports it under name.
// Teardown of the collection happens after the clock stops.
func Benchmark[P Shared[Entity, P]](h *Harness, name string, factory Factory[Entity, P], cfg Config) Result {
	fmt.Fprintf(h.Out, "Benchmarking %s...\n", name)
	g := NewGame(factory, cfg)
	h.reportProgress(g.Events())
	start := time.Now()
	g.Setup()
	g.Run()
	elapsed := time.Since(start)
	r := Result{
		Name:               name,
		Elapsed:            elapsed,
		Frames:             cfg.Frames,
		OperationsPerFrame: cfg.OperationsPerFrame,
		Operations:         g.Ops(),
	}
	g.Close()
	fmt.Fprintf(h.Out, "%s completed in %v (%d frames, %d operations/frame)\n\n",
		name, elapsed, cfg.Frames, cfg.OperationsPerFrame)
	h.logger().Debug("benchmark finished",
		"name", name,
		"operations", humanize.Comma(int64(r.Operations)),
		"nsPerOp", r.NsPerOp(),
	)
	return r
}

// Summary writes one line per result with its operation count and average
// cost, followed by each result's time relative to the first one.
func (h *Harness) Summary(results ...Result) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintln(h.Out, "Summary:")
	base := results[0]
	for _, r := range results {
		fmt.Fprintf(h.Out, "  %-10s %s ops, %.2f ns/op, %.2fx\n",
			r.Name, humanize.Comma(int64(r.Operations)), r.NsPerOp(), Compare(r, base))
	}
}

// Compare returns a's elapsed time as a multiple of b's. It returns 0 when
// b took no measurable time.
func Compare(a, b Result) float64 {
	if b.Elapsed <= 0 {
		return 0
	}
	return float64(a.Elapsed) / float64(b.Elapsed)
}

func (h *Harness) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

func (h *Harness) reportProgress(bus *EventBus) {
	Subscribe(bus, func(e FrameCompleted) {
		fmt.Fprintf(h.Out, "Completed frame %d/%d\n", e.Frame, e.Frames)
	})
}
