// Command rcbench compares the custom reference-counted pointer against a
// garbage-collected pointer on the same entity workload.
//
// The run size is fixed at compile time, see rc.DefaultConfig.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	rc "github.com/skyne98/rc-playground"
)

// Names the two pointer kinds are reported under.
const (
	refName = "Ref"
	rcName  = "Rc"
)

var levelFlag logLevelFlag

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	if err := run(os.Stdout, slog.Default(), rc.DefaultConfig()); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, logger *slog.Logger, cfg rc.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h := &rc.Harness{Out: out, Logger: logger}
	rc.WarmUp[rc.Ref[rc.Entity]](h, rc.RefFactory[rc.Entity]{}, cfg)
	ref := rc.Benchmark[rc.Ref[rc.Entity]](h, refName, rc.RefFactory[rc.Entity]{}, cfg)
	heap := rc.NewHeap[rc.Entity](cfg.Entities)
	heap.SetLogger(logger)
	custom := rc.Benchmark[rc.Rc[rc.Entity]](h, rcName, heap, cfg)
	h.Summary(ref, custom)
	return nil
}
