package artyecs

import "github.com/TheBitDrifter/mask"

// Query is a conjunction of With ("must have") and Without ("must not
// have") predicates evaluated against one World. It is a value: With and
// Without return derived copies, so building on a copy never affects the
// original. Repeated predicates for the same component type are idempotent.
//
// An empty query returns an empty result, not all entities; that asymmetry
// with World.AllEntities is deliberate.
type Query struct {
	with    []Component
	without []Component
}

// With adds "must have" predicates for the given component types.
func (q Query) With(comps ...Component) Query {
	out := q
	out.with = appendPredicates(q.with, comps)
	return out
}

// Without adds "must not have" predicates for the given component types.
func (q Query) Without(comps ...Component) Query {
	out := q
	out.without = appendPredicates(q.without, comps)
	return out
}

// appendPredicates clones before appending so derived queries never share
// backing arrays, and drops components already present.
func appendPredicates(existing []Component, comps []Component) []Component {
	out := make([]Component, len(existing), len(existing)+len(comps))
	copy(out, existing)
	for _, c := range comps {
		if c == nil || containsComponent(out, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsComponent(comps []Component, c Component) bool {
	for _, existing := range comps {
		if existing == c {
			return true
		}
	}
	return false
}

// Run evaluates the query against w and accumulates the matches. Result
// order is unspecified.
//
// Candidates are seeded from the smallest-cardinality With table and
// verified against every other predicate; with no With predicates the seed
// is w.AllEntities(). Predicate masks are built against w's schema at run
// time, since row indices are per-World.
func (q Query) Run(w *World) []Entity {
	if len(q.with) == 0 && len(q.without) == 0 {
		return nil
	}

	var withMask, withoutMask mask.Mask
	for _, c := range q.with {
		withMask.Mark(w.rowIndex(c))
	}
	for _, c := range q.without {
		withoutMask.Mark(w.rowIndex(c))
	}
	// A component required and excluded at once can never match.
	if withMask.ContainsAny(withoutMask) {
		return nil
	}

	var seed store
	rest := make([]store, 0, len(q.with))
	for _, c := range q.with {
		st := w.storeFor(c)
		if st == nil {
			// The type was never added in this World: nothing can match.
			return nil
		}
		if seed == nil {
			seed = st
			continue
		}
		if st.length() < seed.length() {
			rest = append(rest, seed)
			seed = st
		} else {
			rest = append(rest, st)
		}
	}

	exclude := make([]store, 0, len(q.without))
	for _, c := range q.without {
		if st := w.storeFor(c); st != nil {
			exclude = append(exclude, st)
		}
	}

	candidates := w.AllEntities()
	if seed != nil {
		candidates = seed.entities()
	}

	out := make([]Entity, 0, len(candidates))
candidateLoop:
	for _, e := range candidates {
		for _, st := range rest {
			if !st.hasEntity(e) {
				continue candidateLoop
			}
		}
		for _, st := range exclude {
			if st.hasEntity(e) {
				continue candidateLoop
			}
		}
		out = append(out, e)
	}
	return out
}
