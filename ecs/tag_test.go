package ecs_test

import (
	"slices"
	"testing"

	"github.com/edwinsyarief/tiltboard/ecs"
)

func TestTags(t *testing.T) {
	w := ecs.NewWorld(8)
	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	w.Tag(a, 0)
	w.Tag(b, 0)
	w.Tag(c, 5)

	t.Run("members", func(t *testing.T) {
		if got := w.Tagged(0); !slices.Equal(got, []ecs.Entity{a, b}) {
			t.Errorf("group 0: got %v", got)
		}
		if got := w.Tagged(5); !slices.Equal(got, []ecs.Entity{c}) {
			t.Errorf("group 5: got %v", got)
		}
		if got := w.Groups(); !slices.Equal(got, []int{0, 5}) {
			t.Errorf("groups: got %v", got)
		}
	})

	t.Run("retag moves", func(t *testing.T) {
		w.Tag(b, 5)
		if w.TagOf(b) != 5 {
			t.Errorf("expected group 5, got %d", w.TagOf(b))
		}
		if got := w.Tagged(0); !slices.Equal(got, []ecs.Entity{a}) {
			t.Errorf("group 0 after move: got %v", got)
		}
	})

	t.Run("remove entity untags", func(t *testing.T) {
		w.RemoveEntity(a)
		if len(w.Tagged(0)) != 0 {
			t.Errorf("group 0 should be empty, got %v", w.Tagged(0))
		}
		if slices.Contains(w.Groups(), 0) {
			t.Error("empty group should not be listed")
		}
		if w.TagOf(a) != ecs.NoGroup {
			t.Error("removed entity has no group")
		}
	})

	t.Run("untag", func(t *testing.T) {
		w.Untag(c)
		if got := w.Tagged(5); !slices.Equal(got, []ecs.Entity{b}) {
			t.Errorf("group 5 after untag: got %v", got)
		}
	})

	t.Run("negative group ignored", func(t *testing.T) {
		d := w.CreateEntity()
		w.Tag(d, -3)
		if w.TagOf(d) != ecs.NoGroup {
			t.Error("negative group must be ignored")
		}
	})
}

func TestUntagStaleHandle(t *testing.T) {
	w := ecs.NewWorld(4)
	a := w.CreateEntity()
	w.Tag(a, 3)
	w.RemoveEntity(a)

	b := w.CreateEntity()
	if b.ID != a.ID {
		t.Fatalf("expected ID %d to be recycled, got %d", a.ID, b.ID)
	}
	w.Tag(b, 3)

	w.Untag(a)
	if got := w.TagOf(b); got != 3 {
		t.Errorf("live entity lost its group: TagOf = %d", got)
	}
	if got := w.Tagged(3); !slices.Equal(got, []ecs.Entity{b}) {
		t.Errorf("group 3: got %v", got)
	}

	w.Untag(b)
	if w.TagOf(b) != ecs.NoGroup || len(w.Tagged(3)) != 0 {
		t.Errorf("untag of live entity failed: TagOf = %d, members %v", w.TagOf(b), w.Tagged(3))
	}
}
