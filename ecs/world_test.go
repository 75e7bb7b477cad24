package ecs_test

import (
	"testing"

	"github.com/edwinsyarief/tiltboard/ecs"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Health struct{ Current, Max int }
type Marker struct{}

// go test -run ^TestCreateEntity$ ./ecs -count 1
func TestCreateEntity(t *testing.T) {
	w := ecs.NewWorld(4)
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	if e1.ID != 0 {
		t.Errorf("Expected first entity ID to be 0, got %d", e1.ID)
	}
	if e1.Version != 1 {
		t.Errorf("Expected first entity version to be 1, got %d", e1.Version)
	}
	if e2.ID != 1 {
		t.Errorf("Expected second entity ID to be 1, got %d", e2.ID)
	}
	if w.Len() != 2 {
		t.Errorf("Expected 2 live entities, got %d", w.Len())
	}
}

// go test -run ^TestWorldExpands$ ./ecs -count 1
func TestWorldExpands(t *testing.T) {
	w := ecs.NewWorld(1)
	ents := make([]ecs.Entity, 0, 10)
	for range 10 {
		ents = append(ents, w.CreateEntity())
	}
	for _, e := range ents {
		if !w.IsValid(e) {
			t.Fatalf("entity %+v should be valid", e)
		}
	}
	if w.Len() != 10 {
		t.Errorf("Expected 10 live entities, got %d", w.Len())
	}
}

// go test -run ^TestRemoveEntityRecyclesID$ ./ecs -count 1
func TestRemoveEntityRecyclesID(t *testing.T) {
	w := ecs.NewWorld(4)
	e := w.CreateEntity()
	w.RemoveEntity(e)
	if w.IsValid(e) {
		t.Fatal("removed entity should be invalid")
	}
	reused := w.CreateEntity()
	if reused.ID != e.ID {
		t.Errorf("Expected recycled ID %d, got %d", e.ID, reused.ID)
	}
	if reused.Version == e.Version {
		t.Error("Recycled entity must get a new version")
	}
	// removing the stale handle must not touch the new entity
	w.RemoveEntity(e)
	if !w.IsValid(reused) {
		t.Error("stale removal invalidated the recycled entity")
	}
}

// go test -run ^TestSetComponent$ ./ecs -count 1
func TestSetComponent(t *testing.T) {
	w := ecs.NewWorld(4)
	e := w.CreateEntity()

	t.Run("AddNewComponent", func(t *testing.T) {
		ecs.SetComponent(w, e, Position{X: 100, Y: 200})
		p := ecs.GetComponent[Position](w, e)
		if p == nil || p.X != 100 || p.Y != 200 {
			t.Fatalf("unexpected position %+v", p)
		}
	})

	t.Run("UpdateExistingComponent", func(t *testing.T) {
		ecs.SetComponent(w, e, Position{X: 1, Y: 2})
		p := ecs.GetComponent[Position](w, e)
		if p.X != 1 || p.Y != 2 {
			t.Fatalf("unexpected position %+v", p)
		}
	})

	t.Run("AddSecondComponentKeepsFirst", func(t *testing.T) {
		ecs.SetComponent(w, e, Velocity{VX: 3, VY: 4})
		p := ecs.GetComponent[Position](w, e)
		v := ecs.GetComponent[Velocity](w, e)
		if p == nil || p.X != 1 || p.Y != 2 {
			t.Fatalf("position lost after archetype move: %+v", p)
		}
		if v == nil || v.VX != 3 || v.VY != 4 {
			t.Fatalf("unexpected velocity %+v", v)
		}
	})

	t.Run("InvalidEntityIgnored", func(t *testing.T) {
		ghost := ecs.Entity{ID: 3, Version: 99}
		ecs.SetComponent(w, ghost, Position{})
		if ecs.GetComponent[Position](w, ghost) != nil {
			t.Fatal("invalid entity must not gain components")
		}
	})
}

// go test -run ^TestRemoveComponent$ ./ecs -count 1
func TestRemoveComponent(t *testing.T) {
	w := ecs.NewWorld(4)
	e := w.CreateEntity()
	ecs.SetComponent(w, e, Position{X: 5})
	ecs.SetComponent(w, e, Health{Current: 7, Max: 10})

	ecs.RemoveComponent[Position](w, e)
	if ecs.HasComponent[Position](w, e) {
		t.Fatal("position should be removed")
	}
	h := ecs.GetComponent[Health](w, e)
	if h == nil || h.Current != 7 || h.Max != 10 {
		t.Fatalf("health should survive the move, got %+v", h)
	}
	// removing a missing component is a no-op
	ecs.RemoveComponent[Velocity](w, e)
	if !w.IsValid(e) {
		t.Fatal("entity should still be valid")
	}
}

// go test -run ^TestSwapRemoveKeepsOthers$ ./ecs -count 1
func TestSwapRemoveKeepsOthers(t *testing.T) {
	w := ecs.NewWorld(8)
	b := ecs.NewBuilder[Health](w)
	ents := make([]ecs.Entity, 5)
	for i := range ents {
		ents[i] = b.NewEntityWith(Health{Current: i, Max: 10})
	}
	w.RemoveEntity(ents[1])
	for i, e := range ents {
		if i == 1 {
			continue
		}
		h := b.Get(e)
		if h == nil || h.Current != i {
			t.Errorf("entity %d: expected health %d, got %+v", i, i, h)
		}
	}
}

// go test -run ^TestPointerComponentPanics$ ./ecs -count 1
func TestPointerComponentPanics(t *testing.T) {
	type named struct{ Name string }
	w := ecs.NewWorld(1)
	e := w.CreateEntity()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for pointer-holding component")
		}
	}()
	ecs.SetComponent(w, e, named{Name: "x"})
}

// go test -run ^TestClearEntities$ ./ecs -count 1
func TestClearEntities(t *testing.T) {
	w := ecs.NewWorld(4)
	b := ecs.NewBuilder[Position](w)
	e := b.NewEntity()
	w.Tag(e, 3)
	w.ClearEntities()
	if w.IsValid(e) {
		t.Error("entity should be gone")
	}
	if w.Len() != 0 {
		t.Errorf("expected empty world, got %d", w.Len())
	}
	if len(w.Tagged(3)) != 0 {
		t.Error("tags should be cleared")
	}
	f := ecs.NewFilter[Position](w)
	if f.Next() {
		t.Error("filter should be empty after clear")
	}
}
