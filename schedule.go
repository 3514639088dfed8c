package artyecs

// registration pairs a callback with the id handed back at registration, so
// funcs (which are not comparable) can still be removed.
type registration struct {
	id uint64
	fn Callback
}

// callbackList is an ordered registration list consumed by the external
// scheduler. Order is registration order; removal preserves it.
type callbackList struct {
	entries []registration
}

func (l *callbackList) add(id uint64, fn Callback) {
	l.entries = append(l.entries, registration{id: id, fn: fn})
}

func (l *callbackList) remove(id uint64) bool {
	for i, entry := range l.entries {
		if entry.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (l *callbackList) snapshot() []Callback {
	out := make([]Callback, len(l.entries))
	for i, entry := range l.entries {
		out[i] = entry.fn
	}
	return out
}

// AddToUpdateQueue registers fn on the per-frame update list and returns a
// registration id for later removal. Ids are unique per World across both
// queues.
func (w *World) AddToUpdateQueue(fn Callback) uint64 {
	w.nextRegID++
	w.update.add(w.nextRegID, fn)
	return w.nextRegID
}

// RemoveFromUpdateQueue removes a registration by id, preserving the order
// of the remaining entries.
func (w *World) RemoveFromUpdateQueue(id uint64) bool {
	return w.update.remove(id)
}

// UpdateQueue returns the ordered update callbacks as a snapshot.
func (w *World) UpdateQueue() []Callback {
	return w.update.snapshot()
}

// AddToFixedUpdateQueue registers fn on the fixed-timestep list and returns
// a registration id for later removal.
func (w *World) AddToFixedUpdateQueue(fn Callback) uint64 {
	w.nextRegID++
	w.fixed.add(w.nextRegID, fn)
	return w.nextRegID
}

// RemoveFromFixedUpdateQueue removes a registration by id.
func (w *World) RemoveFromFixedUpdateQueue(id uint64) bool {
	return w.fixed.remove(id)
}

// FixedUpdateQueue returns the ordered fixed-update callbacks as a snapshot.
func (w *World) FixedUpdateQueue() []Callback {
	return w.fixed.snapshot()
}
