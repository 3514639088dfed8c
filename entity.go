package artyecs

import "fmt"

// Entity is a generational handle identifying a logical record within one
// World. It is a plain value: cheap to copy, compared with ==, and owns no
// pool internals. The pool is the sole arbiter of liveness.
type Entity struct {
	ID         int32
	Generation uint32
}

// Invalid is the sentinel entity. It is never produced by allocation and
// fails every liveness check.
var Invalid = Entity{ID: -1, Generation: 0}

// Valid reports whether e is structurally valid (not the Invalid sentinel).
// It says nothing about liveness; see World.IsLive.
func (e Entity) Valid() bool {
	return e.ID >= 0
}

func (e Entity) String() string {
	if !e.Valid() {
		return "Entity(invalid)"
	}
	return fmt.Sprintf("Entity(%d:%d)", e.ID, e.Generation)
}
