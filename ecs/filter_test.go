package ecs_test

import (
	"testing"

	"github.com/edwinsyarief/tiltboard/ecs"
)

// go test -run ^TestFilter$ ./ecs -count 1
func TestFilter(t *testing.T) {
	w := ecs.NewWorld(16)
	pos := ecs.NewBuilder[Position](w)
	for i := range 3 {
		pos.NewEntityWith(Position{X: float32(i)})
	}
	withVel := pos.NewEntityWith(Position{X: 10})
	ecs.SetComponent(w, withVel, Velocity{VX: 1})
	w.CreateEntity()

	f := ecs.NewFilter[Position](w)
	sum := float32(0)
	n := 0
	for f.Next() {
		sum += f.Get().X
		n++
	}
	if n != 4 {
		t.Errorf("expected 4 matches, got %d", n)
	}
	if sum != 13 {
		t.Errorf("expected sum 13, got %v", sum)
	}
	if f.Len() != 4 {
		t.Errorf("expected Len 4, got %d", f.Len())
	}

	f2 := ecs.NewFilter2[Position, Velocity](w)
	n = 0
	for f2.Next() {
		p, v := f2.Get()
		p.X += v.VX
		if f2.Entity() != withVel {
			t.Errorf("unexpected entity %+v", f2.Entity())
		}
		n++
	}
	if n != 1 {
		t.Errorf("expected 1 match, got %d", n)
	}
	if got := ecs.GetComponent[Position](w, withVel).X; got != 11 {
		t.Errorf("write through filter lost, got %v", got)
	}
}

// go test -run ^TestFilterSeesNewArchetypes$ ./ecs -count 1
func TestFilterSeesNewArchetypes(t *testing.T) {
	w := ecs.NewWorld(4)
	f := ecs.NewFilter[Velocity](w)
	if f.Next() {
		t.Fatal("expected no entities")
	}
	e := w.CreateEntity()
	ecs.SetComponent(w, e, Health{})
	ecs.SetComponent(w, e, Velocity{VX: 2})
	f.Reset()
	if !f.Next() {
		t.Fatal("filter should pick up the new archetype after Reset")
	}
	if f.Entity() != e {
		t.Errorf("expected %+v, got %+v", e, f.Entity())
	}
	if f.Next() {
		t.Error("expected a single match")
	}
}

// go test -run ^TestFilterSpansChunks$ ./ecs -count 1
func TestFilterSpansChunks(t *testing.T) {
	w := ecs.NewWorld(ecs.ChunkSize)
	b := ecs.NewBuilder[Health](w)
	total := ecs.ChunkSize*2 + 7
	b.NewEntities(total)
	f := ecs.NewFilter[Health](w)
	n := 0
	for f.Next() {
		f.Get().Current = n
		n++
	}
	if n != total {
		t.Errorf("expected %d entities, got %d", total, n)
	}
	if got := len(f.Entities()); got != total {
		t.Errorf("expected %d from Entities, got %d", total, got)
	}
}

// go test -run ^TestFilter2DuplicatePanics$ ./ecs -count 1
func TestFilter2DuplicatePanics(t *testing.T) {
	w := ecs.NewWorld(1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	ecs.NewFilter2[Position, Position](w)
}
