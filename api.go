package artyecs

// store is the type-erased view of one componentTable[T], enough for the
// world registry, destruction sweeps, and query evaluation. Typed access
// goes through ComponentType[T], which downcasts at the call boundary.
type store interface {
	component() Component
	hasEntity(Entity) bool
	removeEntity(Entity) bool
	entities() []Entity
	length() int
	isLocked() bool
}

// Linker is the external identity-linking collaborator binding entities to
// host-engine objects. The storage core only calls UnlinkEntity, as part of
// World.DestroyEntity; everything else is for the host's own use.
type Linker interface {
	LinkEntityToExternalObject(e Entity, obj any) error
	UnlinkEntity(e Entity) bool
	ResolveObject(e Entity) (any, bool)
	ResolveEntity(obj any) (Entity, bool)
}

// Callback is an entry in a World's update or fixed-update registration
// queue. The external scheduler enumerates and invokes; it never touches
// storage internals.
type Callback func(w *World)
