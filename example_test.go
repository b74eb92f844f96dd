package depot_test

import (
	"fmt"

	"github.com/TheBitDrifter/depot"
)

// Example shows basic depot usage with entity creation and queries
func Example_basic() {
	world := depot.Factory.NewWorld()
	err := world.DefineComponents(
		depot.Define("Position",
			depot.FactoryNewField[float64]("x"),
			depot.FactoryNewField[float64]("y"),
		),
		depot.Define("Velocity",
			depot.FactoryNewField[float64]("x"),
			depot.FactoryNewField[float64]("y"),
		),
		depot.Define("Name", depot.FactoryNewField[string]("value")),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Five still entities and three moving ones
	for range 5 {
		e := world.CreateEntity()
		world.AddComponent(e, "Position", depot.Data{"x": 0.0, "y": 0.0})
	}
	for range 3 {
		e := world.CreateEntity()
		world.AddComponent(e, "Position", depot.Data{"x": 0.0, "y": 0.0})
		world.AddComponent(e, "Velocity", depot.Data{"x": 1.0, "y": 1.0})
	}

	player := world.CreateEntity()
	world.AddComponent(player, "Position", depot.Data{"x": 10.0, "y": 20.0})
	world.AddComponent(player, "Velocity", depot.Data{"x": 1.0, "y": 2.0})
	world.AddComponent(player, "Name", depot.Data{"value": "Player"})

	posX := depot.FactoryNewAccessor[float64]("Position", "x")
	posY := depot.FactoryNewAccessor[float64]("Position", "y")
	velX := depot.FactoryNewAccessor[float64]("Velocity", "x")
	velY := depot.FactoryNewAccessor[float64]("Velocity", "y")

	cursor, _ := world.Query("Position", "Velocity")
	matchCount := 0
	for cursor.Next() {
		*posX.GetFromCursor(cursor) += *velX.GetFromCursor(cursor)
		*posY.GetFromCursor(cursor) += *velY.GetFromCursor(cursor)
		matchCount++
	}
	fmt.Printf("Found %d entities with position and velocity\n", matchCount)

	name := depot.FactoryNewAccessor[string]("Name", "value")
	named, _ := world.Query("Name", "Position")
	for named.Next() {
		fmt.Printf("%s at (%.0f, %.0f)\n", *name.GetFromCursor(named), *posX.GetFromCursor(named), *posY.GetFromCursor(named))
	}

	// Output:
	// Found 4 entities with position and velocity
	// Player at (11, 22)
}

// Example_rows shows reading columns directly by the row indices a query yields
func Example_rows() {
	world := depot.Factory.NewWorld()
	world.DefineComponents(depot.Define("Position",
		depot.FactoryNewField[int]("x"),
		depot.FactoryNewField[int]("y"),
	))

	a := world.CreateEntity()
	b := world.CreateEntity()
	world.AddComponent(a, "Position", depot.Data{"x": 1, "y": 1})
	world.AddComponent(b, "Position", depot.Data{"x": 2, "y": 2})

	// Removing a moves b's row into slot 0
	world.DestroyEntity(a)

	store, _ := world.Store("Position")
	xs, _ := depot.ColumnOf[int](store, "x")

	cursor, _ := world.Query("Position")
	for m := range cursor.All() {
		row, _ := m.Row("Position")
		fmt.Printf("entity %d row %d x=%d\n", m.Entity, row, xs.Values()[row])
	}

	// Output:
	// entity 1 row 0 x=2
}

// Example_locking shows deferring membership changes while systems iterate
func Example_locking() {
	world := depot.Factory.NewWorld()
	world.DefineComponents(
		depot.Define("Health", depot.FactoryNewField[int]("hp")),
		depot.Define("Dead"),
	)
	for hp := range 4 {
		e := world.CreateEntity()
		world.AddComponent(e, "Health", depot.Data{"hp": hp})
	}

	const damageSystem = 1
	hp := depot.FactoryNewAccessor[int]("Health", "hp")

	if err := world.AddLock(damageSystem); err != nil {
		fmt.Println(err)
		return
	}
	cursor, _ := world.Query("Health")
	for cursor.Next() {
		if *hp.GetFromCursor(cursor) == 0 {
			world.EnqueueAddComponent(cursor.Entity(), "Dead", nil)
		}
	}
	if err := world.RemoveLock(damageSystem); err != nil {
		fmt.Println(err)
	}

	dead, _ := world.Query("Dead")
	fmt.Println("dead:", len(dead.Collect()))

	// Output:
	// dead: 1
}
