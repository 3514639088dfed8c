package artyecs

// Modifiable is a scoped borrow over one component table's dense array: a
// working copy of the values at acquisition time, indexable in the table's
// iteration order, with no entity identity exposed. Edits land in the copy
// and become visible through the normal Get path only when Apply commits
// them; a collection that is never applied is simply discarded.
//
// While a Modifiable is open it holds the table's lock, so structural
// changes (Add, Remove, the destroy sweep) on the same table are refused
// rather than left undefined.
type Modifiable[T any] struct {
	tbl    *componentTable[T]
	buf    []T
	closed bool
}

// GetModifiable acquires an unscoped collection over the table's current
// members. The caller must finish with Apply or Discard; until Apply, reads
// through Get observe the pre-edit values. Fails with LockedTableError when
// another collection already holds the table.
func (c ComponentType[T]) GetModifiable(w *World) (*Modifiable[T], error) {
	tbl := tableFor(w, c, true)
	if tbl.locked {
		return nil, LockedTableError{}
	}
	tbl.locked = true
	buf := make([]T, len(tbl.dense))
	copy(buf, tbl.dense)
	return &Modifiable[T]{tbl: tbl, buf: buf}, nil
}

// Modify is the scoped form: fn edits the collection and the edits are
// committed when Modify returns, on normal exit or panic.
func (c ComponentType[T]) Modify(w *World, fn func(*Modifiable[T])) error {
	m, err := c.GetModifiable(w)
	if err != nil {
		return err
	}
	defer func() {
		if !m.closed {
			_ = m.Apply()
		}
	}()
	fn(m)
	return m.Apply()
}

// Count returns the number of entries captured at acquisition time.
func (m *Modifiable[T]) Count() int {
	return len(m.buf)
}

// At returns a mutable pointer to entry i, for i in [0, Count). The index
// corresponds to the table's iteration order at acquisition time.
func (m *Modifiable[T]) At(i int) *T {
	return &m.buf[i]
}

// Apply commits the working copy back into the table in one batch and
// releases the table's lock. A second Apply (or Apply after Discard) fails
// with ModifiableClosedError.
func (m *Modifiable[T]) Apply() error {
	if m.closed {
		return ModifiableClosedError{}
	}
	copy(m.tbl.dense, m.buf)
	m.close()
	return nil
}

// Discard abandons the working copy and releases the table's lock. Safe to
// call more than once.
func (m *Modifiable[T]) Discard() {
	if m.closed {
		return
	}
	m.close()
}

func (m *Modifiable[T]) close() {
	m.tbl.locked = false
	m.closed = true
}
