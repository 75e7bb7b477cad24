package ecs

import "testing"

func TestResources(t *testing.T) {
	type settings struct{ Gravity float64 }
	type counters struct{ Resets int }

	t.Run("Add and Get", func(t *testing.T) {
		r := &Resources{}
		res := &settings{Gravity: -9.81}
		id := r.Add(res)
		if id != 0 {
			t.Errorf("expected id 0, got %d", id)
		}
		if got := r.Get(id); got != res {
			t.Errorf("expected stored pointer %p, got %p", res, got)
		}
		if r.Has(1) || r.Has(-1) {
			t.Error("unexpected resource ids")
		}
	})

	t.Run("Add same type panics", func(t *testing.T) {
		r := &Resources{}
		r.Add(&settings{})
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		r.Add(&settings{})
	})

	t.Run("Add nil panics", func(t *testing.T) {
		r := &Resources{}
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		r.Add(nil)
	})

	t.Run("Removed ids are reused", func(t *testing.T) {
		r := &Resources{}
		id0 := r.Add(&settings{})
		id1 := r.Add(&counters{})
		r.Remove(id0)
		r.Remove(id1)
		if r.Get(id0) != nil {
			t.Error("expected nil after remove")
		}
		if got := r.Add(&settings{}); got != id1 {
			t.Errorf("expected reused id %d, got %d", id1, got)
		}
		if got := r.Add(&counters{}); got != id0 {
			t.Errorf("expected reused id %d, got %d", id0, got)
		}
		r.Remove(42)
	})

	t.Run("Clear", func(t *testing.T) {
		r := &Resources{}
		r.Add(&settings{})
		r.Add(&counters{})
		r.Clear()
		if len(r.items) != 0 || len(r.types) != 0 || len(r.freeIds) != 0 {
			t.Errorf("expected empty store, got %d items %d types %d free", len(r.items), len(r.types), len(r.freeIds))
		}
		r.Add(&settings{})
	})
}

func TestTypedResources(t *testing.T) {
	type clock struct{ Frame int }

	w := NewWorld(1)
	if ok, id := HasResource[clock](w.Resources()); ok || id != -1 {
		t.Fatalf("expected no resource, got ok=%v id=%d", ok, id)
	}
	w.Resources().Add(&clock{Frame: 4})
	res, id := GetResource[clock](w.Resources())
	if res == nil || res.Frame != 4 || id != 0 {
		t.Fatalf("unexpected resource %+v id %d", res, id)
	}
	Resource[clock](w).Frame++
	if res.Frame != 5 {
		t.Errorf("Resource must return the stored pointer")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing resource")
		}
	}()
	Resource[struct{ X int }](w)
}
