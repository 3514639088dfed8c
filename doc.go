/*
Package artyecs provides sparse-set entity/component storage for games and simulations.

Components are plain data values stored per type in dense, contiguous arrays,
keyed by generational entity handles. Worlds are isolated storage namespaces
with their own entity pool and component tables, and queries compose
With/Without predicates over one World's tables.

Core Concepts:

  - Entity: a generational handle (id + generation) identifying a logical record.
  - Component: a data value attached to an entity, stored in a per-type dense table.
  - World: an isolated namespace owning an entity pool and component tables.
  - Query: a With/Without composition evaluated against one World.

Basic Usage:

	// Create the registry and grab the default world
	worlds := artyecs.Factory.NewWorlds()
	world := worlds.GetOrCreate("")

	// Define components
	position := artyecs.FactoryNewComponent[Position]()
	velocity := artyecs.FactoryNewComponent[Velocity]()

	// Create an entity and attach data
	player := world.CreateEntity()
	position.Add(world, player, Position{X: 10, Y: 20})
	velocity.Add(world, player, Velocity{X: 1, Y: 2})

	// Query entities and process them
	query := artyecs.Factory.NewQuery().With(position, velocity)
	cursor := artyecs.Factory.NewCursor(query, world)

	for cursor.Next() {
		pos, _ := position.Get(world, cursor.Entity())
		vel, _ := velocity.Get(world, cursor.Entity())
		pos.X += vel.X
		pos.Y += vel.Y
	}

Removal uses swap-and-pop compaction, so iteration order within a table is
insertion order until the first removal and arbitrary afterwards. The package
is single-threaded per World; only registry-level lookups are safe for
concurrent readers.
*/
package artyecs
