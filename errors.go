package artyecs

import "fmt"

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity: %T", e.Component)
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %T", e.Component)
}

type InvalidEntityError struct {
	Entity Entity
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity is not live: %v", e.Entity)
}

type LockedTableError struct{}

func (e LockedTableError) Error() string {
	return "component table is currently locked"
}

type ModifiableClosedError struct{}

func (e ModifiableClosedError) Error() string {
	return "modifiable collection already applied or discarded"
}
