package ecs

import "reflect"

// Builder creates entities that start with a single component of type T and
// gives cached, typed access to that component on any entity.
//
// Get and Set on an existing component never touch the type registry, so a
// Builder created during startup can be shared by systems running in
// parallel.
type Builder[T any] struct {
	world  *World
	arch   *archetype
	compID uint8
}

// NewBuilder registers T (if needed) and returns a Builder for it.
func NewBuilder[T any](w *World) *Builder[T] {
	t := reflect.TypeFor[T]()
	id := w.getCompTypeID(t)
	var mask bitmask256
	mask.set(id)
	arch := w.getOrCreateArchetype(mask, []compSpec{w.spec(id)})
	return &Builder[T]{world: w, arch: arch, compID: id}
}

// NewEntity creates an entity holding a zero T.
func (b *Builder[T]) NewEntity() Entity {
	b.world.assertMutable()
	return b.world.createEntity(b.arch)
}

// NewEntityWith creates an entity holding comp.
func (b *Builder[T]) NewEntityWith(comp T) Entity {
	e := b.NewEntity()
	*b.Get(e) = comp
	return e
}

// NewEntities creates count entities holding a zero T.
func (b *Builder[T]) NewEntities(count int) []Entity {
	if count == 0 {
		return nil
	}
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.NewEntity()
	}
	return ents
}

// Get returns the T of e, or nil if e is invalid or has none.
func (b *Builder[T]) Get(e Entity) *T {
	return (*T)(b.world.componentPointer(e, b.compID))
}

// Has reports whether e has a T.
func (b *Builder[T]) Has(e Entity) bool {
	return b.world.componentPointer(e, b.compID) != nil
}

// Set overwrites the T of e, adding it when missing.
func (b *Builder[T]) Set(e Entity, comp T) {
	if ptr := b.world.componentPointer(e, b.compID); ptr != nil {
		*(*T)(ptr) = comp
		return
	}
	SetComponent(b.world, e, comp)
}
