package artyecs

import (
	"errors"
	"testing"
)

func TestComponentAddGet(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	world := newTestWorld(t)

	e := world.CreateEntity()
	if err := posComp.Add(world, e, Position{X: 1, Y: 2}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, err := posComp.Get(world, e)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.X != 1 || got.Y != 2 {
		t.Errorf("Get() = %+v, want {1 2}", *got)
	}

	// Duplicate insertion must fail, leaving the first value in place.
	err = posComp.Add(world, e, Position{X: 9, Y: 9})
	var exists ComponentExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("duplicate Add() error = %v, want ComponentExistsError", err)
	}
	got, _ = posComp.Get(world, e)
	if got.X != 1 || got.Y != 2 {
		t.Errorf("value after rejected duplicate = %+v, want {1 2}", *got)
	}
}

func TestComponentGetErrors(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	world := newTestWorld(t)

	live := world.CreateEntity()
	if err := posComp.Add(world, live, Position{}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	dead := world.CreateEntity()
	world.DestroyEntity(dead)

	tests := []struct {
		name    string
		entity  Entity
		get     func(Entity) error
		wantErr any
	}{
		{
			name:   "Missing component",
			entity: live,
			get: func(e Entity) error {
				_, err := velComp.Get(world, e)
				return err
			},
			wantErr: &ComponentNotFoundError{},
		},
		{
			name:   "Dead entity",
			entity: dead,
			get: func(e Entity) error {
				_, err := posComp.Get(world, e)
				return err
			},
			wantErr: &InvalidEntityError{},
		},
		{
			name:   "Invalid sentinel",
			entity: Invalid,
			get: func(e Entity) error {
				_, err := posComp.Get(world, e)
				return err
			},
			wantErr: &InvalidEntityError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.get(tt.entity)
			if err == nil {
				t.Fatalf("Get() error = nil, want %T", tt.wantErr)
			}
			if !errors.As(err, tt.wantErr) {
				t.Errorf("Get() error = %v, want %T", err, tt.wantErr)
			}
		})
	}
}

func TestSwapRemoveInvariant(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		removeIndex int
	}{
		{"Remove first", 5, 0},
		{"Remove middle", 5, 2},
		{"Remove last", 5, 4},
		{"Single element", 1, 0},
		{"Two elements remove head", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			healthComp := FactoryNewComponent[Health]()
			world := newTestWorld(t)

			entities := make([]Entity, tt.count)
			for i := range entities {
				entities[i] = world.CreateEntity()
				if err := healthComp.Add(world, entities[i], Health{Amount: i * 10}); err != nil {
					t.Fatalf("Add() error = %v", err)
				}
			}

			removed := entities[tt.removeIndex]
			if !healthComp.Remove(world, removed) {
				t.Fatalf("Remove(%v) = false", removed)
			}

			if got := healthComp.Count(world); got != tt.count-1 {
				t.Errorf("Count() = %d, want %d", got, tt.count-1)
			}
			if healthComp.Has(world, removed) {
				t.Errorf("Has(%v) = true after removal", removed)
			}

			// Every survivor keeps its original value.
			for i, e := range entities {
				if i == tt.removeIndex {
					continue
				}
				got, err := healthComp.Get(world, e)
				if err != nil {
					t.Fatalf("Get(%v) error = %v", e, err)
				}
				if got.Amount != i*10 {
					t.Errorf("Get(%v).Amount = %d, want %d", e, got.Amount, i*10)
				}
			}
		})
	}
}

func TestRemoveThenReinsert(t *testing.T) {
	healthComp := FactoryNewComponent[Health]()
	world := newTestWorld(t)

	e := world.CreateEntity()
	if err := healthComp.Add(world, e, Health{Amount: 1}); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	if !healthComp.Remove(world, e) {
		t.Fatalf("Remove() = false")
	}
	if err := healthComp.Add(world, e, Health{Amount: 2}); err != nil {
		t.Fatalf("second Add() error = %v, want nil", err)
	}
	got, err := healthComp.Get(world, e)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Amount != 2 {
		t.Errorf("Get().Amount = %d, want 2", got.Amount)
	}
}

func TestRemoveAbsent(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	world := newTestWorld(t)

	e := world.CreateEntity()
	if posComp.Remove(world, e) {
		t.Errorf("Remove() = true for entity without the component")
	}
	if posComp.Remove(world, Invalid) {
		t.Errorf("Remove(Invalid) = true")
	}
}

func TestAllValuesView(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	world := newTestWorld(t)

	if view := posComp.All(world); len(view) != 0 {
		t.Fatalf("All() on empty table has length %d", len(view))
	}

	for i := 0; i < 4; i++ {
		e := world.CreateEntity()
		if err := posComp.Add(world, e, Position{X: float64(i)}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	view := posComp.All(world)
	if len(view) != 4 {
		t.Fatalf("All() length = %d, want 4", len(view))
	}
	// Insertion order holds until the first removal.
	for i, v := range view {
		if v.X != float64(i) {
			t.Errorf("All()[%d].X = %v, want %v", i, v.X, float64(i))
		}
	}
}

func TestGetSafe(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	world := newTestWorld(t)

	e := world.CreateEntity()
	if _, ok := posComp.GetSafe(world, e); ok {
		t.Errorf("GetSafe() = ok for absent component")
	}
	if err := posComp.Add(world, e, Position{X: 3}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	got, ok := posComp.GetSafe(world, e)
	if !ok {
		t.Fatalf("GetSafe() = !ok for present component")
	}
	if got.X != 3 {
		t.Errorf("GetSafe().X = %v, want 3", got.X)
	}
}
