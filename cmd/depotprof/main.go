// Profiling:
// go build ./cmd/depotprof
// ./depotprof -mode=cpu -entities=100000 -iters=2000
// go tool pprof -http=":8000" -nodefraction=0.001 ./depotprof cpu.pprof

package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/TheBitDrifter/depot"
	"github.com/pkg/profile"
)

func main() {
	mode := flag.String("mode", "cpu", "profile mode: cpu, mem or none")
	path := flag.String("path", ".", "directory for profile output")
	rounds := flag.Int("rounds", 10, "number of fresh worlds to build")
	iters := flag.Int("iters", 1000, "query passes per round")
	entities := flag.Int("entities", 100000, "entities per world")
	churn := flag.Float64("churn", 0.01, "fraction of entities toggled between passes")
	flag.Parse()

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*path), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(*path), profile.NoShutdownHook).Stop()
	case "none":
	default:
		log.Fatalf("unknown profile mode %q", *mode)
	}

	start := time.Now()
	matched, err := run(*rounds, *iters, *entities, *churn)
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}
	log.Printf("rounds=%d iters=%d entities=%d matched=%d elapsed=%s",
		*rounds, *iters, *entities, matched, time.Since(start))
}

func run(rounds, iters, numEntities int, churn float64) (int, error) {
	rng := rand.New(rand.NewPCG(1, 2))
	matched := 0
	for range rounds {
		w := depot.Factory.NewWorld()
		err := w.DefineComponents(
			depot.Define("Position", depot.FactoryNewField[float64]("x"), depot.FactoryNewField[float64]("y")),
			depot.Define("Velocity", depot.FactoryNewField[float64]("x"), depot.FactoryNewField[float64]("y")),
			depot.Define("Frozen"),
		)
		if err != nil {
			return 0, err
		}

		ids := make([]depot.EntityID, numEntities)
		for i := range ids {
			ids[i] = w.CreateEntity()
			if err := w.AddComponent(ids[i], "Position", depot.Data{"x": 0.0, "y": 0.0}); err != nil {
				return 0, err
			}
			if i%2 == 0 {
				if err := w.AddComponent(ids[i], "Velocity", depot.Data{"x": 1.0, "y": 0.5}); err != nil {
					return 0, err
				}
			}
		}

		posX := depot.FactoryNewAccessor[float64]("Position", "x")
		posY := depot.FactoryNewAccessor[float64]("Position", "y")
		velX := depot.FactoryNewAccessor[float64]("Velocity", "x")
		velY := depot.FactoryNewAccessor[float64]("Velocity", "y")
		moving := depot.Factory.NewQuery()
		moving.And("Position", "Velocity", moving.Not("Frozen"))

		toggles := int(float64(numEntities) * churn)
		for range iters {
			cursor, err := w.Filter(moving)
			if err != nil {
				return 0, err
			}
			for cursor.Next() {
				*posX.GetFromCursor(cursor) += *velX.GetFromCursor(cursor)
				*posY.GetFromCursor(cursor) += *velY.GetFromCursor(cursor)
				matched++
			}

			for range toggles {
				e := ids[rng.IntN(len(ids))]
				frozen, err := w.HasComponent(e, "Frozen")
				if err != nil {
					return 0, err
				}
				if frozen {
					err = w.RemoveComponent(e, "Frozen")
				} else {
					err = w.AddComponent(e, "Frozen", nil)
				}
				if err != nil {
					return 0, err
				}
			}
		}
	}
	return matched, nil
}
