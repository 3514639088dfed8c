package artyecs

import (
	"fmt"

	"github.com/TheBitDrifter/table"
)

// Component identifies a component type. One identity is created per
// concrete type via FactoryNewComponent and shared across Worlds; each World
// assigns it a row index through its own schema.
type Component interface {
	table.ElementType
}

// ComponentType pairs a Component identity with typed accessors over a
// World's matching table. Instances are created once with
// FactoryNewComponent and reused everywhere, including across Worlds.
type ComponentType[T any] struct {
	Component
}

func componentName(c Component) string {
	return fmt.Sprintf("%T", c)
}
