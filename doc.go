/*
Package depot provides a sparse-set Entity-Component-System (ECS) store for games and simulations.

Depot keeps every component type in its own structure-of-arrays store. Each
declared field lives in a dense, typed column whose rows line up with the
store's sparse set, so iterating a component touches contiguous memory and
adding or removing one is O(1).

Core Concepts:

  - Entity: A recyclable integer ID. The most recently destroyed ID is reused first.
  - Component: A named, declared set of typed fields attached to entities.
  - Mask: A per-entity bitset recording which components the entity carries.
  - Query: A lazy cursor over entities carrying a set of components.

Basic Usage:

	world := depot.Factory.NewWorld()
	world.DefineComponents(
		depot.Define("Position",
			depot.FactoryNewField[float64]("x"),
			depot.FactoryNewField[float64]("y"),
		),
		depot.Define("Velocity",
			depot.FactoryNewField[float64]("x"),
			depot.FactoryNewField[float64]("y"),
		),
	)

	e := world.CreateEntity()
	world.AddComponent(e, "Position", depot.Data{"x": 0.0, "y": 0.0})
	world.AddComponent(e, "Velocity", depot.Data{"x": 1.0, "y": 2.0})

	posX := depot.FactoryNewAccessor[float64]("Position", "x")
	velX := depot.FactoryNewAccessor[float64]("Velocity", "x")

	cursor, _ := world.Query("Position", "Velocity")
	for cursor.Next() {
		*posX.GetFromCursor(cursor) += *velX.GetFromCursor(cursor)
	}

Queries read live state. Do not add or remove components or entities while a
cursor is being consumed; lock the world with AddLock and use the Enqueue
operations, which are applied when the last lock is released.

A World is not safe for concurrent use.
*/
package depot
