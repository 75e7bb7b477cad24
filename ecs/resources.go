package ecs

import "reflect"

// Resources holds world-wide singletons, at most one per type. Values are
// stored as pointers and looked up by their pointer type.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIds []int
}

// Add adds a resource and returns its ID. Panics if res is nil or a resource
// of the same type already exists.
func (r *Resources) Add(res any) int {
	if res == nil {
		panic("ecs: cannot add nil resource")
	}
	t := reflect.TypeOf(res)
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if _, ok := r.types[t]; ok {
		panic("ecs: resource of type " + t.String() + " already exists")
	}
	var id int
	if len(r.freeIds) > 0 {
		id = r.freeIds[len(r.freeIds)-1]
		r.freeIds = r.freeIds[:len(r.freeIds)-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return id
}

// Has checks if a resource with the given ID exists.
func (r *Resources) Has(id int) bool {
	return id >= 0 && id < len(r.items) && r.items[id] != nil
}

// Get retrieves the resource by ID, or nil if it doesn't exist.
func (r *Resources) Get(id int) any {
	if !r.Has(id) {
		return nil
	}
	return r.items[id]
}

// Remove removes the resource by ID, freeing the ID for reuse.
func (r *Resources) Remove(id int) {
	if !r.Has(id) {
		return
	}
	delete(r.types, reflect.TypeOf(r.items[id]))
	r.items[id] = nil
	r.freeIds = append(r.freeIds, id)
}

// Clear removes all resources.
func (r *Resources) Clear() {
	clear(r.items)
	r.items = r.items[:0]
	clear(r.types)
	r.freeIds = r.freeIds[:0]
}

// HasResource reports whether a *T resource exists, and its ID.
func HasResource[T any](r *Resources) (bool, int) {
	if id, ok := r.types[reflect.TypeFor[*T]()]; ok {
		return true, id
	}
	return false, -1
}

// GetResource retrieves the *T resource and its ID, or nil and -1.
func GetResource[T any](r *Resources) (*T, int) {
	if id, ok := r.types[reflect.TypeFor[*T]()]; ok {
		return r.items[id].(*T), id
	}
	return nil, -1
}

// Resource returns the *T resource of w. It panics when the resource is
// missing, which means a plugin was not added before its systems ran.
func Resource[T any](w *World) *T {
	res, _ := GetResource[T](w.resources)
	if res == nil {
		panic("ecs: missing resource " + reflect.TypeFor[T]().String())
	}
	return res
}
