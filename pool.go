package artyecs

// retiredGeneration marks a slot whose counter wrapped. It is reserved and
// never handed out, so stale handles cannot alias a reused slot.
const retiredGeneration = ^uint32(0)

// entityPool owns the authoritative id -> generation mapping plus a free
// list of reusable ids. For an allocated id exactly one generation is live;
// every other generation for that id must fail IsLive.
type entityPool struct {
	generations []uint32
	alive       []bool
	free        []int32
}

func newEntityPool() *entityPool {
	return &entityPool{
		generations: make([]uint32, 0, Config.initialPoolCapacity),
		alive:       make([]bool, 0, Config.initialPoolCapacity),
		free:        make([]int32, 0, Config.initialPoolCapacity),
	}
}

// Allocate returns a live entity, reusing a released id when one is
// available and appending a fresh slot otherwise. Never returns Invalid.
func (p *entityPool) Allocate() Entity {
	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		p.alive[id] = true
		return Entity{ID: id, Generation: p.generations[id]}
	}
	id := int32(len(p.generations))
	p.generations = append(p.generations, 0)
	p.alive = append(p.alive, true)
	return Entity{ID: id, Generation: 0}
}

// Release invalidates e and returns its id to the free list. Returns false
// for Invalid, unknown ids, stale generations, and double releases.
func (p *entityPool) Release(e Entity) bool {
	if !p.IsLive(e) {
		return false
	}
	p.alive[e.ID] = false
	next := p.generations[e.ID] + 1
	if next == retiredGeneration {
		// Counter exhausted: retire the slot instead of recycling it.
		p.generations[e.ID] = retiredGeneration
		return true
	}
	p.generations[e.ID] = next
	p.free = append(p.free, e.ID)
	return true
}

// IsLive reports whether e.ID is currently allocated with a matching
// generation.
func (p *entityPool) IsLive(e Entity) bool {
	if e.ID < 0 || int(e.ID) >= len(p.generations) {
		return false
	}
	return p.alive[e.ID] && p.generations[e.ID] == e.Generation
}
