package ecs

import (
	"reflect"
	"unsafe"
)

// queryCache tracks the archetypes matching a component mask and refreshes
// them when new archetypes appear.
type queryCache struct {
	world          *World
	matchingArches []*archetype
	mask           bitmask256
	archVersion    uint32
}

func newQueryCache(w *World, mask bitmask256) queryCache {
	q := queryCache{world: w, mask: mask}
	q.updateMatching()
	return q
}

// IsStale reports whether archetypes were created since the last refresh.
func (q *queryCache) IsStale() bool {
	return q.archVersion != q.world.archetypes.archetypeVersion
}

func (q *queryCache) updateMatching() {
	q.matchingArches = q.matchingArches[:0]
	for _, a := range q.world.archetypes.archetypes {
		if a.mask.contains(q.mask) {
			q.matchingArches = append(q.matchingArches, a)
		}
	}
	q.archVersion = q.world.archetypes.archetypeVersion
}

// Entities returns a fresh slice of every matching entity.
func (q *queryCache) Entities() []Entity {
	if q.IsStale() {
		q.updateMatching()
	}
	var out []Entity
	for _, a := range q.matchingArches {
		for _, c := range a.chunks {
			out = append(out, c.entityIDs[:c.size]...)
		}
	}
	return out
}

// Len returns the number of matching entities.
func (q *queryCache) Len() int {
	if q.IsStale() {
		q.updateMatching()
	}
	n := 0
	for _, a := range q.matchingArches {
		n += a.size
	}
	return n
}

// cursor walks the chunks of the matching archetypes.
type cursor struct {
	cur      *chunk
	arch     *archetype
	matchIdx int
	chunkIdx int
	idx      int
}

func (c *cursor) reset() {
	*c = cursor{matchIdx: 0, chunkIdx: -1, idx: -1}
}

// next advances to the next slot, returning false when every matching chunk
// has been visited.
func (c *cursor) next(arches []*archetype) bool {
	c.idx++
	if c.cur != nil && c.idx < c.cur.size {
		return true
	}
	for c.matchIdx < len(arches) {
		a := arches[c.matchIdx]
		c.chunkIdx++
		if c.chunkIdx < len(a.chunks) {
			if a.chunks[c.chunkIdx].size == 0 {
				continue
			}
			c.arch = a
			c.cur = a.chunks[c.chunkIdx]
			c.idx = 0
			return true
		}
		c.matchIdx++
		c.chunkIdx = -1
	}
	c.cur = nil
	return false
}

// Filter iterates over every entity that has a component of type T.
//
//	query := ecs.NewFilter[Velocity](world)
//	for query.Next() {
//	    v := query.Get()
//	    ...
//	}
//
// A Filter keeps iteration state and must not be shared between goroutines.
type Filter[T any] struct {
	queryCache
	cursor
	compID uint8
}

// NewFilter creates a Filter over entities having T.
func NewFilter[T any](w *World) *Filter[T] {
	id := w.getCompTypeID(reflect.TypeFor[T]())
	var m bitmask256
	m.set(id)
	f := &Filter[T]{queryCache: newQueryCache(w, m), compID: id}
	f.Reset()
	return f
}

// Reset rewinds the iterator, refreshing the archetype list if needed.
func (f *Filter[T]) Reset() {
	if f.IsStale() {
		f.updateMatching()
	}
	f.cursor.reset()
}

// Next advances to the next matching entity.
func (f *Filter[T]) Next() bool {
	return f.cursor.next(f.matchingArches)
}

// Entity returns the current entity.
func (f *Filter[T]) Entity() Entity {
	return f.cur.entityIDs[f.idx]
}

// Get returns the current entity's T.
func (f *Filter[T]) Get() *T {
	return (*T)(unsafe.Add(f.cur.compPointers[f.compID], uintptr(f.idx)*f.arch.compSizes[f.compID]))
}

// Filter2 iterates over every entity that has both T1 and T2.
type Filter2[T1 any, T2 any] struct {
	queryCache
	cursor
	id1 uint8
	id2 uint8
}

// NewFilter2 creates a Filter2 over entities having T1 and T2.
func NewFilter2[T1 any, T2 any](w *World) *Filter2[T1, T2] {
	id1 := w.getCompTypeID(reflect.TypeFor[T1]())
	id2 := w.getCompTypeID(reflect.TypeFor[T2]())
	if id1 == id2 {
		panic("ecs: duplicate component types in Filter2")
	}
	var m bitmask256
	m.set(id1)
	m.set(id2)
	f := &Filter2[T1, T2]{queryCache: newQueryCache(w, m), id1: id1, id2: id2}
	f.Reset()
	return f
}

// Reset rewinds the iterator, refreshing the archetype list if needed.
func (f *Filter2[T1, T2]) Reset() {
	if f.IsStale() {
		f.updateMatching()
	}
	f.cursor.reset()
}

// Next advances to the next matching entity.
func (f *Filter2[T1, T2]) Next() bool {
	return f.cursor.next(f.matchingArches)
}

// Entity returns the current entity.
func (f *Filter2[T1, T2]) Entity() Entity {
	return f.cur.entityIDs[f.idx]
}

// Get returns the current entity's T1 and T2.
func (f *Filter2[T1, T2]) Get() (*T1, *T2) {
	p1 := unsafe.Add(f.cur.compPointers[f.id1], uintptr(f.idx)*f.arch.compSizes[f.id1])
	p2 := unsafe.Add(f.cur.compPointers[f.id2], uintptr(f.idx)*f.arch.compSizes[f.id2])
	return (*T1)(p1), (*T2)(p2)
}
