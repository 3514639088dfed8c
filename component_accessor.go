package artyecs

import "go.uber.org/zap"

// Add attaches value to e in w. Fails with InvalidEntityError when e is not
// live, ComponentExistsError when e already holds this component type, and
// LockedTableError while a modifiable collection holds the table.
func (c ComponentType[T]) Add(w *World, e Entity, value T) error {
	if !w.pool.IsLive(e) {
		return InvalidEntityError{Entity: e}
	}
	return tableFor(w, c, true).insert(e, value)
}

// Get returns a pointer to e's component value. Fails with
// InvalidEntityError for dead handles and ComponentNotFoundError when the
// component is absent. The pointer is valid until the next structural
// change on the table.
func (c ComponentType[T]) Get(w *World, e Entity) (*T, error) {
	if !w.pool.IsLive(e) {
		return nil, InvalidEntityError{Entity: e}
	}
	tbl := tableFor(w, c, false)
	if tbl == nil {
		return nil, ComponentNotFoundError{Component: c.Component}
	}
	value, ok := tbl.get(e)
	if !ok {
		return nil, ComponentNotFoundError{Component: c.Component}
	}
	return value, nil
}

// GetSafe is the non-throwing accessor: absence (or a dead handle) is an
// ordinary boolean outcome.
func (c ComponentType[T]) GetSafe(w *World, e Entity) (*T, bool) {
	tbl := tableFor(w, c, false)
	if tbl == nil {
		return nil, false
	}
	return tbl.get(e)
}

// Has reports whether e currently holds this component type in w.
func (c ComponentType[T]) Has(w *World, e Entity) bool {
	tbl := tableFor(w, c, false)
	return tbl != nil && tbl.hasEntity(e)
}

// Remove detaches the component from e using swap-and-pop compaction.
// Returns false when e has no entry. Removal while a modifiable collection
// holds the table is refused.
func (c ComponentType[T]) Remove(w *World, e Entity) bool {
	tbl := tableFor(w, c, false)
	if tbl == nil {
		return false
	}
	if tbl.locked {
		w.log.Warn("remove refused on locked component table",
			zap.String("component", componentName(c.Component)),
			zap.Stringer("entity", e))
		return false
	}
	return tbl.remove(e)
}

// All returns the zero-copy read-only view of the dense array at call time.
// Its length equals the live component count.
func (c ComponentType[T]) All(w *World) []T {
	tbl := tableFor(w, c, false)
	if tbl == nil {
		return nil
	}
	return tbl.all()
}

// Count returns the number of entities holding this component type in w.
func (c ComponentType[T]) Count(w *World) int {
	tbl := tableFor(w, c, false)
	if tbl == nil {
		return 0
	}
	return tbl.length()
}
