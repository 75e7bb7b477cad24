package ecs

import (
	"reflect"
	"unsafe"
)

// GetComponent retrieves a pointer to the component of type `T` for the given
// entity. It returns nil if the entity is invalid or does not have the
// component.
//
// Parameters:
//   - w: The World containing the entity.
//   - e: The Entity from which to retrieve the component.
//
// Returns:
//   - A pointer to the component data (*T), or nil if not found.
func GetComponent[T any](w *World, e Entity) *T {
	id, ok := w.components.compTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return (*T)(w.componentPointer(e, id))
}

// HasComponent reports whether e is alive and has a component of type `T`.
func HasComponent[T any](w *World, e Entity) bool {
	return GetComponent[T](w, e) != nil
}

// SetComponent adds a component of type `T` with the given value to an entity,
// or updates it if the component already exists.
//
// Adding a component moves the entity to a different archetype, which is a
// structural change: it panics while grouped systems are running. If the
// entity is invalid, this function does nothing.
//
// Parameters:
//   - w: The World where the entity resides.
//   - e: The Entity to modify.
//   - val: The component data of type `T` to set.
func SetComponent[T any](w *World, e Entity, val T) {
	if !w.IsValid(e) {
		return
	}
	id := w.getCompTypeID(reflect.TypeFor[T]())
	if ptr := w.componentPointer(e, id); ptr != nil {
		*(*T)(ptr) = val
		return
	}
	w.assertMutable()
	meta := &w.entities.metas[e.ID]
	a := w.archetypes.archetypes[meta.archetypeIndex]
	target := w.archetypeWith(a, id, true)
	c, idx := w.moveEntity(e, meta, a, target)
	*(*T)(unsafe.Add(c.compPointers[id], uintptr(idx)*target.compSizes[id])) = val
}

// RemoveComponent removes the component of type `T` from the entity. It does
// nothing if the entity is invalid or lacks the component.
func RemoveComponent[T any](w *World, e Entity) {
	id, ok := w.components.compTypeMap[reflect.TypeFor[T]()]
	if !ok || w.componentPointer(e, id) == nil {
		return
	}
	w.assertMutable()
	meta := &w.entities.metas[e.ID]
	a := w.archetypes.archetypes[meta.archetypeIndex]
	target := w.archetypeWith(a, id, false)
	w.moveEntity(e, meta, a, target)
}

// componentPointer locates component id of e, or returns nil.
func (w *World) componentPointer(e Entity, id uint8) unsafe.Pointer {
	if !w.IsValid(e) {
		return nil
	}
	meta := w.entities.metas[e.ID]
	a := w.archetypes.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return nil
	}
	c := a.chunks[meta.chunkIndex]
	return unsafe.Add(c.compPointers[id], uintptr(meta.index)*a.compSizes[id])
}
