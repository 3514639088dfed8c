package artyecs

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultWorldName is the reserved name of the default World. GetOrCreate
// resolves both it and the empty string to the same instance, and Destroy
// always refuses it.
const DefaultWorldName = "default"

// Worlds is the registry scoping World instances by name. It replaces a
// process-wide singleton: whoever bootstraps the process owns a Worlds
// value and threads it (or individual Worlds) explicitly.
//
// Structural changes (create/destroy) and lookups are guarded by a
// read-write mutex so background tooling may poll Exists/Get/Names while
// the simulation thread mutates individual Worlds.
type Worlds struct {
	mu     sync.RWMutex
	log    *zap.Logger
	byName map[string]*World
}

// WorldsOption configures a Worlds registry at construction.
type WorldsOption func(*Worlds)

// WithLogger installs a structured logger; without it the registry and its
// Worlds are silent.
func WithLogger(log *zap.Logger) WorldsOption {
	return func(r *Worlds) {
		r.log = log
	}
}

func newWorlds(opts ...WorldsOption) *Worlds {
	r := &Worlds{
		log:    zap.NewNop(),
		byName: make(map[string]*World),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetOrCreate resolves name to its World, creating it on first use. The
// empty string and DefaultWorldName both resolve to the lazily created
// default World. The same name yields the same instance until destroyed.
func (r *Worlds) GetOrCreate(name string) *World {
	if name == "" {
		name = DefaultWorldName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.byName[name]; ok {
		return w
	}
	w := newWorld(name, r.log)
	r.byName[name] = w
	r.log.Info("world created",
		zap.String("world", name),
		zap.String("world_id", w.id.String()))
	return w
}

// Get returns the World registered under name without creating one.
func (r *Worlds) Get(name string) (*World, bool) {
	if name == "" {
		name = DefaultWorldName
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.byName[name]
	return w, ok
}

// Exists reports whether a World is currently registered under name.
func (r *Worlds) Exists(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns a snapshot of the registered World names, in arbitrary
// order.
func (r *Worlds) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}

// Destroy releases w's component tables and entity pool and removes it from
// the registry. Returns false for the default World, an already-destroyed
// World, or a World this registry does not own. Other Worlds are
// unaffected.
func (r *Worlds) Destroy(w *World) bool {
	if w == nil || w.name == DefaultWorldName {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byName[w.name]
	if !ok || current != w || w.destroyed {
		return false
	}
	delete(r.byName, w.name)
	w.destroyed = true
	w.stores = nil
	w.pool = newEntityPool()
	w.update = callbackList{}
	w.fixed = callbackList{}
	r.log.Info("world destroyed",
		zap.String("world", w.name),
		zap.String("world_id", w.id.String()))
	return true
}
