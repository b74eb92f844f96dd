package bench

import (
	"testing"

	"github.com/TheBitDrifter/depot"
)

// go test -bench=. ./bench -benchmem -cpuprofile=depot.prof

const (
	nPos    = 9000
	nPosVel = 1000
)

func newDepotWorld(b *testing.B) depot.World {
	world := depot.Factory.NewWorld()
	err := world.DefineComponents(
		depot.Define("Position", depot.FactoryNewField[float64]("x"), depot.FactoryNewField[float64]("y")),
		depot.Define("Velocity", depot.FactoryNewField[float64]("x"), depot.FactoryNewField[float64]("y")),
	)
	if err != nil {
		b.Fatal(err)
	}
	return world
}

func BenchmarkIterDepotAccessor(b *testing.B) {
	b.StopTimer()
	world := newDepotWorld(b)
	zero := depot.Data{"x": 0.0, "y": 0.0}
	for i := 0; i < nPos+nPosVel; i++ {
		e := world.CreateEntity()
		world.AddComponent(e, "Position", zero)
		if i < nPosVel {
			world.AddComponent(e, "Velocity", depot.Data{"x": 1.0, "y": 1.0})
		}
	}

	posX := depot.FactoryNewAccessor[float64]("Position", "x")
	posY := depot.FactoryNewAccessor[float64]("Position", "y")
	velX := depot.FactoryNewAccessor[float64]("Velocity", "x")
	velY := depot.FactoryNewAccessor[float64]("Velocity", "y")
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		cursor, _ := world.Query("Position", "Velocity")
		for cursor.Next() {
			*posX.GetFromCursor(cursor) += *velX.GetFromCursor(cursor)
			*posY.GetFromCursor(cursor) += *velY.GetFromCursor(cursor)
		}
	}
}

func BenchmarkIterDepotColumns(b *testing.B) {
	b.StopTimer()
	world := newDepotWorld(b)
	for i := 0; i < nPos+nPosVel; i++ {
		e := world.CreateEntity()
		world.AddComponent(e, "Position", depot.Data{"x": 0.0, "y": 0.0})
		if i < nPosVel {
			world.AddComponent(e, "Velocity", depot.Data{"x": 1.0, "y": 1.0})
		}
	}

	posStore, _ := world.Store("Position")
	velStore, _ := world.Store("Velocity")
	px, _ := depot.ColumnOf[float64](posStore, "x")
	py, _ := depot.ColumnOf[float64](posStore, "y")
	vx, _ := depot.ColumnOf[float64](velStore, "x")
	vy, _ := depot.ColumnOf[float64](velStore, "y")
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		cursor, _ := world.Query("Position", "Velocity")
		for cursor.Next() {
			m := cursor.Match()
			p, v := m.At(0), m.At(1)
			*px.At(p) += vx.Values()[v]
			*py.At(p) += vy.Values()[v]
		}
	}
}

func BenchmarkChurnDepot(b *testing.B) {
	b.StopTimer()
	world := newDepotWorld(b)
	entities := make([]depot.EntityID, 0, nPos)
	for i := 0; i < nPos; i++ {
		e := world.CreateEntity()
		world.AddComponent(e, "Position", depot.Data{"x": 0.0, "y": 0.0})
		entities = append(entities, e)
	}
	vel := depot.Data{"x": 1.0, "y": 1.0}
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for _, e := range entities {
			world.AddComponent(e, "Velocity", vel)
		}
		for _, e := range entities {
			world.RemoveComponent(e, "Velocity")
		}
	}
}
