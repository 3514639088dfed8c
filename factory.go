package artyecs

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewWorlds(opts ...WorldsOption) *Worlds {
	return newWorlds(opts...)
}

func (f factory) NewQuery() Query {
	return Query{}
}

func (f factory) NewCursor(query Query, world *World) *Cursor {
	return newCursor(query, world)
}

func FactoryNewComponent[T any]() ComponentType[T] {
	return ComponentType[T]{
		Component: table.FactoryNewElementType[T](),
	}
}
