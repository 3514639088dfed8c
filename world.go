package artyecs

import (
	"github.com/TheBitDrifter/table"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// World is an isolated storage namespace: one entity pool plus component
// tables keyed by component type through the world's own schema. The same
// Entity value in two Worlds refers to two unrelated records.
//
// A World is owned by whichever thread drives its frame loop; its methods
// are not safe for concurrent mutation. Registry-level lookups on Worlds
// are the concurrent-read surface.
type World struct {
	name      string
	id        uuid.UUID
	schema    table.Schema
	stores    []store
	pool      *entityPool
	linker    Linker
	log       *zap.Logger
	destroyed bool
	nextRegID uint64
	update    callbackList
	fixed     callbackList
}

func newWorld(name string, log *zap.Logger) *World {
	id := uuid.New()
	return &World{
		name:   name,
		id:     id,
		schema: table.Factory.NewSchema(),
		pool:   newEntityPool(),
		log:    log.With(zap.String("world", name), zap.String("world_id", id.String())),
	}
}

// Name returns the registry name the World was created under.
func (w *World) Name() string {
	return w.name
}

// ID returns the instance id, unique per creation. Two Worlds created under
// the same name at different times have distinct IDs.
func (w *World) ID() uuid.UUID {
	return w.id
}

// CreateEntity allocates a fresh entity handle from the World's pool.
func (w *World) CreateEntity() Entity {
	return w.pool.Allocate()
}

// DestroyEntity removes e's entry from every component table, unlinks it
// from the external identity service when one is set, and releases the
// handle. Returns false when e is not live (including double destroys).
//
// The sweep visits every table because there is no per-entity index of
// memberships; tables locked by an open modifiable collection are skipped
// with a warning, since mutating them mid-borrow is a usage error.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.pool.IsLive(e) {
		return false
	}
	for _, st := range w.stores {
		if st == nil {
			continue
		}
		if st.isLocked() {
			if st.hasEntity(e) {
				w.log.Warn("destroy sweep skipped locked component table",
					zap.String("component", componentName(st.component())),
					zap.Stringer("entity", e))
			}
			continue
		}
		st.removeEntity(e)
	}
	if w.linker != nil {
		w.linker.UnlinkEntity(e)
	}
	w.pool.Release(e)
	return true
}

// IsLive reports whether e is a currently allocated handle of this World.
func (w *World) IsLive(e Entity) bool {
	return w.pool.IsLive(e)
}

// AllEntities returns the deduplicated union of every entity appearing in
// any of this World's component tables, in arbitrary order. An entity with
// zero components is invisible here even though it is still live; there is
// no component-free entity index.
func (w *World) AllEntities() []Entity {
	seen := make(map[Entity]struct{})
	out := make([]Entity, 0)
	for _, st := range w.stores {
		if st == nil {
			continue
		}
		for _, e := range st.entities() {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// SetLinker installs the external identity-linking collaborator. Passing
// nil detaches it.
func (w *World) SetLinker(l Linker) {
	w.linker = l
}

// rowIndex resolves (registering on first use) the schema row index keying
// c's table slot in this World.
func (w *World) rowIndex(c Component) uint32 {
	w.schema.Register(c)
	return w.schema.RowIndexFor(c)
}

// storeFor returns the type-erased table for c, or nil when no component of
// that type was ever added to this World.
func (w *World) storeFor(c Component) store {
	idx := w.rowIndex(c)
	if int(idx) >= len(w.stores) {
		return nil
	}
	return w.stores[idx]
}

// tableFor resolves (optionally creating) the typed table backing c in w.
// This is the single downcast point between the type-erased registry and
// the generic accessors.
func tableFor[T any](w *World, c ComponentType[T], create bool) *componentTable[T] {
	idx := w.rowIndex(c.Component)
	if int(idx) >= len(w.stores) {
		if !create {
			return nil
		}
		grown := make([]store, idx+1)
		copy(grown, w.stores)
		w.stores = grown
	}
	st := w.stores[idx]
	if st == nil {
		if !create {
			return nil
		}
		tbl := newComponentTable[T](c.Component)
		w.stores[idx] = tbl
		w.log.Debug("component table created",
			zap.String("component", componentName(c.Component)),
			zap.Uint32("row", idx))
		return tbl
	}
	return st.(*componentTable[T])
}
