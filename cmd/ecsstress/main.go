// Profiling:
// go build ./cmd/ecsstress
// ./ecsstress -mode mem -entities 10000
// go tool pprof -http=":8000" -nodefraction=0.001 ./ecsstress mem.pprof

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

type pos struct {
	X, Y float64
}

type vel struct {
	X, Y float64
}

type hp struct {
	V int
}

func main() {
	var (
		entities = flag.Int("entities", 10000, "entities spawned per round")
		rounds   = flag.Int("rounds", 50, "spawn/query/destroy rounds")
		iters    = flag.Int("iters", 20, "query passes per round")
		mode     = flag.String("mode", "", "profile mode: cpu, mem or empty for none")
	)
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var p interface{ Stop() }
	switch *mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	case "":
	default:
		log.Fatal("unknown profile mode", zap.String("mode", *mode))
	}

	run(log, *rounds, *iters, *entities)

	if p != nil {
		p.Stop()
	}
}

func run(log *zap.Logger, rounds, iters, n int) {
	w := ecs.NewWorld(ecs.WithCapacity(n, n))
	var spawn, query, destroy time.Duration
	for r := 0; r < rounds; r++ {
		start := time.Now()
		for i := 0; i < n; i++ {
			b := w.Spawn().Insert(ecs.C(pos{}), ecs.C(vel{X: 1, Y: float64(i % 3)}))
			if i%4 == 0 {
				b.Insert(ecs.C(hp{V: 100})).Tag("tough")
			}
		}
		spawn += time.Since(start)

		start = time.Now()
		for it := 0; it < iters; it++ {
			ecs.Select2[pos, vel](w).Each(func(_ ecs.Entity, p *pos, v *vel) {
				p.X += v.X
				p.Y += v.Y
			})
			ecs.Select2[hp, pos](w).Tagged("tough").Each(func(e ecs.Entity, h *hp, _ *pos) {
				h.V--
				if h.V <= 0 {
					w.DeferDestroy(e)
				}
			})
			w.Flush()
		}
		query += time.Since(start)

		start = time.Now()
		for _, e := range w.Entities() {
			w.Destroy(e)
		}
		destroy += time.Since(start)
	}
	log.Info("stress done",
		zap.Int("rounds", rounds),
		zap.Int("entities", n),
		zap.Duration("spawn", spawn),
		zap.Duration("query", query),
		zap.Duration("destroy", destroy),
		zap.Int("id_slots", w.Pool().Cap()),
	)
}
