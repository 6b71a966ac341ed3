// Profiling:
// go build ./profile/clone
// ./clone -impl rc -mode cpu
// go tool pprof -http=":8000" -nodefraction=0.001 ./clone cpu.pprof

package main

import (
	"flag"
	"log"

	"github.com/pkg/profile"

	rc "github.com/skyne98/rc-playground"
)

var (
	implFlag = flag.String("impl", "rc", "pointer implementation to profile: rc or ref")
	modeFlag = flag.String("mode", "cpu", "profile kind: cpu or mem")
)

func main() {
	flag.Parse()
	cfg := rc.Config{
		Entities:           25_000,
		Frames:             10,
		OperationsPerFrame: 1_000,
	}
	var mode func(*profile.Profile)
	switch *modeFlag {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileAllocs
	default:
		log.Fatalf("unknown profile mode: %s", *modeFlag)
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook)
	switch *implFlag {
	case "rc":
		run[rc.Rc[rc.Entity]](rc.NewHeap[rc.Entity](cfg.Entities), cfg)
	case "ref":
		run[rc.Ref[rc.Entity]](rc.RefFactory[rc.Entity]{}, cfg)
	default:
		p.Stop()
		log.Fatalf("unknown implementation: %s", *implFlag)
	}
	p.Stop()
}

func run[P rc.Shared[rc.Entity, P]](factory rc.Factory[rc.Entity, P], cfg rc.Config) {
	g := rc.NewGame(factory, cfg)
	g.Setup()
	g.Run()
	g.Close()
}
