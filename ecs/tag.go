package ecs

import "slices"

// NoGroup is the group of untagged entities and ungrouped systems.
const NoGroup = -1

// tagIndex partitions entities into groups addressed by an integer id. Each
// entity belongs to at most one group.
type tagIndex struct {
	members map[int][]Entity
	byID    map[uint32]int
}

func newTagIndex() tagIndex {
	return tagIndex{
		members: make(map[int][]Entity),
		byID:    make(map[uint32]int),
	}
}

func (t *tagIndex) untag(e Entity) {
	group, ok := t.byID[e.ID]
	if !ok {
		return
	}
	members := t.members[group]
	i := slices.Index(members, e)
	if i < 0 {
		// stale handle: the ID now belongs to another entity
		return
	}
	delete(t.byID, e.ID)
	members = slices.Delete(members, i, i+1)
	if len(members) == 0 {
		delete(t.members, group)
		return
	}
	t.members[group] = members
}

func (t *tagIndex) clear() {
	clear(t.members)
	clear(t.byID)
}

// Tag places e in group, moving it out of any previous group. Tagging is a
// structural change. Negative groups and invalid entities are ignored.
func (w *World) Tag(e Entity, group int) {
	w.assertMutable()
	if group < 0 || !w.IsValid(e) {
		return
	}
	w.tags.untag(e)
	w.tags.byID[e.ID] = group
	w.tags.members[group] = append(w.tags.members[group], e)
}

// Untag removes e from its group. Stale handles are ignored.
func (w *World) Untag(e Entity) {
	w.assertMutable()
	if !w.IsValid(e) {
		return
	}
	w.tags.untag(e)
}

// TagOf returns the group of e, or NoGroup.
func (w *World) TagOf(e Entity) int {
	if !w.IsValid(e) {
		return NoGroup
	}
	if group, ok := w.tags.byID[e.ID]; ok {
		return group
	}
	return NoGroup
}

// Tagged returns the members of group in tagging order. The slice is owned by
// the world and is only stable until the next structural change.
func (w *World) Tagged(group int) []Entity {
	return w.tags.members[group]
}

// Groups returns the ids of all non-empty groups in ascending order.
func (w *World) Groups() []int {
	groups := make([]int, 0, len(w.tags.members))
	for g := range w.tags.members {
		groups = append(groups, g)
	}
	slices.Sort(groups)
	return groups
}
