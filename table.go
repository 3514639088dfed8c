package artyecs

var _ store = &componentTable[int]{}

// componentTable is the dense storage for one component type within one
// World: a gap-free value array plus the entity<->index mappings that keep
// swap-removal O(1). The array and mappings are owned exclusively by the
// table; only its own methods mutate them.
type componentTable[T any] struct {
	comp    Component
	dense   []T
	owners  []Entity       // index -> owning entity
	indices map[Entity]int // entity -> index
	locked  bool
}

func newComponentTable[T any](comp Component) *componentTable[T] {
	return &componentTable[T]{
		comp:    comp,
		dense:   make([]T, 0, Config.initialTableCapacity),
		owners:  make([]Entity, 0, Config.initialTableCapacity),
		indices: make(map[Entity]int, Config.initialTableCapacity),
	}
}

func (t *componentTable[T]) insert(e Entity, value T) error {
	if t.locked {
		return LockedTableError{}
	}
	if _, exists := t.indices[e]; exists {
		return ComponentExistsError{Component: t.comp}
	}
	t.indices[e] = len(t.dense)
	t.dense = append(t.dense, value)
	t.owners = append(t.owners, e)
	return nil
}

// remove swaps e's entry with the last entry, updates the displaced owner's
// mapping, and shrinks by one. The swap is skipped when e already occupies
// the last index, so single-element and tail removals cannot corrupt the
// mapping.
func (t *componentTable[T]) remove(e Entity) bool {
	idx, exists := t.indices[e]
	if !exists {
		return false
	}
	last := len(t.dense) - 1
	if idx != last {
		t.dense[idx] = t.dense[last]
		moved := t.owners[last]
		t.owners[idx] = moved
		t.indices[moved] = idx
	}
	var zero T
	t.dense[last] = zero
	t.dense = t.dense[:last]
	t.owners = t.owners[:last]
	delete(t.indices, e)
	return true
}

func (t *componentTable[T]) get(e Entity) (*T, bool) {
	idx, exists := t.indices[e]
	if !exists {
		return nil, false
	}
	return &t.dense[idx], true
}

// all is the zero-copy view of the dense array: live components only, in
// the table's current iteration order. Callers must treat it as read-only.
func (t *componentTable[T]) all() []T {
	return t.dense
}

func (t *componentTable[T]) component() Component {
	return t.comp
}

func (t *componentTable[T]) hasEntity(e Entity) bool {
	_, exists := t.indices[e]
	return exists
}

func (t *componentTable[T]) removeEntity(e Entity) bool {
	return t.remove(e)
}

func (t *componentTable[T]) entities() []Entity {
	return t.owners
}

func (t *componentTable[T]) length() int {
	return len(t.dense)
}

func (t *componentTable[T]) isLocked() bool {
	return t.locked
}
