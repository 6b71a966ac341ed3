package rc

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHarness() (*Harness, *bytes.Buffer) {
	var buf bytes.Buffer
	h := &Harness{
		Out:    &buf,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return h, &buf
}

func TestBenchmark(t *testing.T) {
	cfg := Config{Entities: 4, Frames: 3, OperationsPerFrame: 2}

	t.Run("reports a custom pointer run", func(t *testing.T) {
		h, buf := newTestHarness()
		heap := NewHeap[Entity](cfg.Entities)
		r := Benchmark[Rc[Entity]](h, "Rc", heap, cfg)
		assert.Equal(t, "Rc", r.Name)
		assert.Equal(t, 3, r.Frames)
		assert.Equal(t, 2, r.OperationsPerFrame)
		assert.Equal(t, 24, r.Operations)
		assert.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
		assert.Zero(t, heap.Stats().Live)

		out := buf.String()
		assert.Contains(t, out, "Benchmarking Rc...\n")
		assert.Contains(t, out, "Completed frame 0/3\n")
		assert.Contains(t, out, "Completed frame 1/3\n")
		assert.Contains(t, out, "Completed frame 2/3\n")
		assert.Contains(t, out, "(3 frames, 2 operations/frame)\n")
		assert.Regexp(t, `Rc completed in \S+ `, out)
	})

	t.Run("reports a reference pointer run", func(t *testing.T) {
		h, buf := newTestHarness()
		r := Benchmark[Ref[Entity]](h, "Ref", RefFactory[Entity]{}, cfg)
		assert.Equal(t, 24, r.Operations)
		assert.Contains(t, buf.String(), "Benchmarking Ref...\n")
	})
}

func TestBenchmarkWithoutLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Harness{Out: &buf}
	var r Result
	require.NotPanics(t, func() {
		r = Benchmark[Ref[Entity]](h, "Ref", RefFactory[Entity]{}, Config{Entities: 2, Frames: 1, OperationsPerFrame: 1})
	})
	assert.Equal(t, 2, r.Operations)
	assert.Same(t, slog.Default(), h.logger())
	assert.Contains(t, buf.String(), "Ref completed in ")
}

func TestWarmUp(t *testing.T) {
	h, buf := newTestHarness()
	WarmUp[Ref[Entity]](h, RefFactory[Entity]{}, Config{Entities: 2, Frames: 1, OperationsPerFrame: 1})
	assert.Equal(t, "Warming up...\nCompleted frame 0/1\nWarm-up completed.\n\n", buf.String())
}

func TestResult(t *testing.T) {
	t.Run("ns per op", func(t *testing.T) {
		r := Result{Elapsed: 100 * time.Nanosecond, Operations: 50}
		assert.Equal(t, 2.0, r.NsPerOp())
	})
	t.Run("ns per op without operations", func(t *testing.T) {
		assert.Zero(t, Result{Elapsed: time.Second}.NsPerOp())
	})
	t.Run("compare", func(t *testing.T) {
		a := Result{Elapsed: 3 * time.Second}
		b := Result{Elapsed: 2 * time.Second}
		assert.Equal(t, 1.5, Compare(a, b))
		assert.Zero(t, Compare(a, Result{}))
	})
}

func TestSummary(t *testing.T) {
	h, buf := newTestHarness()
	h.Summary(
		Result{Name: "Ref", Elapsed: 2 * time.Second, Operations: 1_000_000},
		Result{Name: "Rc", Elapsed: time.Second, Operations: 1_000_000},
	)
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "Summary:", string(lines[0]))
	assert.Contains(t, string(lines[1]), "1,000,000 ops, 2000.00 ns/op, 1.00x")
	assert.Contains(t, string(lines[2]), "1,000,000 ops, 1000.00 ns/op, 0.50x")

	t.Run("nothing to summarize", func(t *testing.T) {
		h, buf := newTestHarness()
		h.Summary()
		assert.Empty(t, buf.String())
	})
}
