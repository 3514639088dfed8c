package artyecs

import "iter"

// Cursor iterates the matches of one query against one World. Results are
// materialized on first advance; Reset re-evaluates against the World's
// current state.
type Cursor struct {
	query Query
	world *World

	// Current iteration state
	matched     []Entity
	entityIndex int

	// Initialization state
	initialized bool
}

func newCursor(query Query, world *World) *Cursor {
	return &Cursor{
		query: query,
		world: world,
	}
}

// Next advances the cursor, reporting whether a match is available through
// Entity.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.entityIndex < len(c.matched) {
		c.entityIndex++
		return true
	}
	c.Reset()
	return false
}

// Entity returns the match at the cursor position. Only valid after a Next
// that returned true.
func (c *Cursor) Entity() Entity {
	return c.matched[c.entityIndex-1]
}

// Entities iterates the matches as a range-over-func sequence.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		c.initialize()
		for c.entityIndex < len(c.matched) {
			e := c.matched[c.entityIndex]
			c.entityIndex++
			if !yield(e) {
				c.Reset()
				return
			}
		}
		c.Reset()
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.matched = c.query.Run(c.world)
	c.entityIndex = 0
	c.initialized = true
}

// Reset clears iteration state so the next advance re-runs the query.
func (c *Cursor) Reset() {
	c.matched = nil
	c.entityIndex = 0
	c.initialized = false
}

// TotalMatched returns the number of matches for the current evaluation.
func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	return len(c.matched)
}
