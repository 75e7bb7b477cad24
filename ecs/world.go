// Package ecs implements the archetype-based Entity Component System that
// hosts the board and ball simulations.
//
// Features:
//   - Chunked archetype storage with up to 256 component types.
//   - Versioned entity IDs that are recycled safely.
//   - Typed accessors (Builder) and iterators (Filter, Filter2).
//   - A tag index that partitions entities into independent groups.
//   - An App scheduler that runs the systems of different groups in parallel.
package ecs

import (
	"reflect"
	"sync/atomic"
	"unsafe"
)

// MaxComponentTypes defines the maximum number of unique component types that
// can be registered in a World.
const MaxComponentTypes = 256

// ChunkSize is the number of entities stored in one archetype chunk.
const ChunkSize = 1024

// Entity represents a unique identifier for an object in the World. It combines
// a 32-bit ID with a 32-bit version so that recycled IDs are not confused with
// new entities.
type Entity struct {
	// ID is the unique, recyclable identifier for the entity.
	ID uint32
	// Version is a generation counter protecting against stale references.
	Version uint32
}

// entityMeta holds the internal location and state of an entity.
type entityMeta struct {
	archetypeIndex int    // index in World.archetypes
	chunkIndex     int    // index in archetype.chunks
	index          int    // position inside the chunk's component array
	version        uint32 // current version, 0 if the entity is dead
}

// compSpec bundles a component type’s ID and reflect.Type.
type compSpec struct {
	typ  reflect.Type
	size uintptr
	id   uint8
}

// chunk holds fixed-size storage for ChunkSize entities.
type chunk struct {
	entityIDs    [ChunkSize]Entity
	compPointers [MaxComponentTypes]unsafe.Pointer
	size         int
}

// archetype holds storage for one unique component-set mask.
type archetype struct {
	chunks    []*chunk
	compOrder []uint8
	compSizes [MaxComponentTypes]uintptr
	mask      bitmask256
	index     int
	size      int
}

type componentRegistry struct {
	compIDToType   [MaxComponentTypes]reflect.Type
	compTypeMap    map[reflect.Type]uint8
	compIDToSize   [MaxComponentTypes]uintptr
	nextCompTypeID uint16
}

type entityRegistry struct {
	freeIDs       []uint32
	metas         []entityMeta
	capacity      int
	nextEntityVer uint32
}

type archetypeRegistry struct {
	maskToArcIndex   map[bitmask256]int
	archetypes       []*archetype
	archetypeVersion uint32
}

// World owns every entity, component, resource and tag of a simulation run.
type World struct {
	resources       *Resources
	events          *EventBus
	tags            tagIndex
	archetypes      archetypeRegistry
	entities        entityRegistry
	components      componentRegistry
	mutationVersion uint32
	frozen          atomic.Bool
}

// NewWorld creates a World with room for initialCapacity entities before the
// first expansion.
func NewWorld(initialCapacity int) *World {
	w := &World{
		resources: &Resources{},
		events:    &EventBus{},
		tags:      newTagIndex(),
		components: componentRegistry{
			compTypeMap: make(map[reflect.Type]uint8, 16),
		},
		entities: entityRegistry{
			capacity:      initialCapacity,
			freeIDs:       make([]uint32, initialCapacity),
			metas:         make([]entityMeta, initialCapacity),
			nextEntityVer: 1,
		},
		archetypes: archetypeRegistry{
			maskToArcIndex: make(map[bitmask256]int),
			archetypes:     make([]*archetype, 0, 16),
		},
	}
	for i := range w.entities.freeIDs {
		w.entities.freeIDs[i] = uint32(initialCapacity - 1 - i)
	}
	for i := range w.entities.metas {
		w.entities.metas[i] = entityMeta{archetypeIndex: -1, chunkIndex: -1, index: -1}
	}
	var emptyMask bitmask256
	w.getOrCreateArchetype(emptyMask, nil)
	return w
}

// Resources returns the world's resource store.
func (w *World) Resources() *Resources {
	return w.resources
}

// Events returns the world's event bus.
func (w *World) Events() *EventBus {
	return w.events
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.capacity - len(w.entities.freeIDs)
}

// IsValid reports whether e refers to a live entity.
func (w *World) IsValid(e Entity) bool {
	if int(e.ID) >= len(w.entities.metas) {
		return false
	}
	meta := w.entities.metas[e.ID]
	return meta.version != 0 && meta.version == e.Version
}

// ClearEntities removes all entities and tags while keeping the allocated
// archetypes and component registrations.
func (w *World) ClearEntities() {
	w.assertMutable()
	for i := range w.entities.metas {
		w.entities.metas[i] = entityMeta{archetypeIndex: -1, chunkIndex: -1, index: -1}
	}
	w.entities.freeIDs = w.entities.freeIDs[:0]
	for i := w.entities.capacity - 1; i >= 0; i-- {
		w.entities.freeIDs = append(w.entities.freeIDs, uint32(i))
	}
	for _, a := range w.archetypes.archetypes {
		a.chunks = a.chunks[:0]
		a.size = 0
	}
	w.tags.clear()
	w.mutationVersion++
}

// CreateEntity creates a new entity with no components.
func (w *World) CreateEntity() Entity {
	w.assertMutable()
	a := w.archetypes.archetypes[w.archetypes.maskToArcIndex[bitmask256{}]]
	return w.createEntity(a)
}

// RemoveEntity removes e and all its components. Stale entities are ignored.
func (w *World) RemoveEntity(e Entity) {
	w.assertMutable()
	if !w.IsValid(e) {
		return
	}
	meta := &w.entities.metas[e.ID]
	a := w.archetypes.archetypes[meta.archetypeIndex]
	w.removeFromArchetype(a, meta)
	*meta = entityMeta{archetypeIndex: -1, chunkIndex: -1, index: -1}
	w.entities.freeIDs = append(w.entities.freeIDs, e.ID)
	w.tags.untag(e)
	w.mutationVersion++
}

// freeze marks the world read-only for structure. Component values may still
// be written through pointers.
func (w *World) freeze() { w.frozen.Store(true) }

func (w *World) thaw() { w.frozen.Store(false) }

func (w *World) assertMutable() {
	if w.frozen.Load() {
		panic("ecs: structural change while systems run in parallel")
	}
}

// getCompTypeID registers or fetches the component type ID for t.
func (w *World) getCompTypeID(t reflect.Type) uint8 {
	if id, ok := w.components.compTypeMap[t]; ok {
		return id
	}
	w.assertMutable()
	if w.components.nextCompTypeID >= MaxComponentTypes {
		panic("ecs: too many component types")
	}
	if hasPointers(t) {
		// components are moved with raw byte copies
		panic("ecs: component type " + t.String() + " contains pointers")
	}
	id := uint8(w.components.nextCompTypeID)
	w.components.compTypeMap[t] = id
	w.components.compIDToType[id] = t
	w.components.compIDToSize[id] = t.Size()
	w.components.nextCompTypeID++
	return id
}

// getOrCreateArchetype returns the archetype for mask, creating it when
// missing.
func (w *World) getOrCreateArchetype(mask bitmask256, specs []compSpec) *archetype {
	if idx, ok := w.archetypes.maskToArcIndex[mask]; ok {
		return w.archetypes.archetypes[idx]
	}
	a := &archetype{
		index:     len(w.archetypes.archetypes),
		mask:      mask,
		chunks:    make([]*chunk, 0, 4),
		compOrder: make([]uint8, len(specs)),
	}
	for i, sp := range specs {
		a.compOrder[i] = sp.id
		a.compSizes[sp.id] = sp.size
	}
	w.archetypes.archetypes = append(w.archetypes.archetypes, a)
	w.archetypes.maskToArcIndex[mask] = a.index
	w.archetypes.archetypeVersion++
	return a
}

// archetypeWith returns the archetype of a plus (add=true) or minus component
// id.
func (w *World) archetypeWith(a *archetype, id uint8, add bool) *archetype {
	mask := a.mask
	if add {
		mask.set(id)
	} else {
		mask.unset(id)
	}
	if idx, ok := w.archetypes.maskToArcIndex[mask]; ok {
		return w.archetypes.archetypes[idx]
	}
	specs := make([]compSpec, 0, len(a.compOrder)+1)
	for _, cid := range a.compOrder {
		if !add && cid == id {
			continue
		}
		specs = append(specs, w.spec(cid))
	}
	if add {
		specs = append(specs, w.spec(id))
	}
	return w.getOrCreateArchetype(mask, specs)
}

func (w *World) spec(id uint8) compSpec {
	return compSpec{id: id, typ: w.components.compIDToType[id], size: w.components.compIDToSize[id]}
}

// newChunk allocates component arrays for every component of a.
func (w *World) newChunk(a *archetype) *chunk {
	c := &chunk{}
	for _, cid := range a.compOrder {
		slice := reflect.MakeSlice(reflect.SliceOf(w.components.compIDToType[cid]), ChunkSize, ChunkSize)
		c.compPointers[cid] = slice.UnsafePointer()
	}
	return c
}

// expand grows the entity pools by at least additional slots.
func (w *World) expand(additional int) {
	oldCap := w.entities.capacity
	newCap := max(oldCap*2, 1)
	if newCap < oldCap+additional {
		newCap = oldCap + additional
	}
	delta := newCap - oldCap
	for range delta {
		w.entities.metas = append(w.entities.metas, entityMeta{archetypeIndex: -1, chunkIndex: -1, index: -1})
	}
	for i := range delta {
		w.entities.freeIDs = append(w.entities.freeIDs, uint32(newCap-1-i))
	}
	w.entities.capacity = newCap
}

// tailChunk returns the last chunk of a with free room, appending one if full.
func (w *World) tailChunk(a *archetype) *chunk {
	if len(a.chunks) == 0 || a.chunks[len(a.chunks)-1].size == ChunkSize {
		a.chunks = append(a.chunks, w.newChunk(a))
	}
	return a.chunks[len(a.chunks)-1]
}

// createEntity places a fresh entity into archetype a.
func (w *World) createEntity(a *archetype) Entity {
	if len(w.entities.freeIDs) == 0 {
		w.expand(1)
	}
	last := len(w.entities.freeIDs) - 1
	id := w.entities.freeIDs[last]
	w.entities.freeIDs = w.entities.freeIDs[:last]
	c := w.tailChunk(a)
	idx := c.size
	meta := &w.entities.metas[id]
	meta.archetypeIndex = a.index
	meta.chunkIndex = len(a.chunks) - 1
	meta.index = idx
	meta.version = w.entities.nextEntityVer
	ent := Entity{ID: id, Version: meta.version}
	c.entityIDs[idx] = ent
	c.size++
	a.size++
	w.entities.nextEntityVer++
	w.mutationVersion++
	return ent
}

// moveEntity relocates the entity described by meta from a to target, copying
// every component both archetypes share. It returns the new component slot.
func (w *World) moveEntity(e Entity, meta *entityMeta, a, target *archetype) (*chunk, int) {
	dstChunk := w.tailChunk(target)
	dstIdx := dstChunk.size
	dstChunk.entityIDs[dstIdx] = e
	dstChunk.size++
	target.size++
	srcChunk := a.chunks[meta.chunkIndex]
	for _, cid := range a.compOrder {
		if !target.mask.containsBit(cid) {
			continue
		}
		size := a.compSizes[cid]
		src := unsafe.Add(srcChunk.compPointers[cid], uintptr(meta.index)*size)
		dst := unsafe.Add(dstChunk.compPointers[cid], uintptr(dstIdx)*size)
		memCopy(dst, src, size)
	}
	w.removeFromArchetype(a, meta)
	meta.archetypeIndex = target.index
	meta.chunkIndex = len(target.chunks) - 1
	meta.index = dstIdx
	return dstChunk, dstIdx
}

// removeFromArchetype removes the entity from a without freeing its ID.
func (w *World) removeFromArchetype(a *archetype, meta *entityMeta) {
	chunkIdx := meta.chunkIndex
	c := a.chunks[chunkIdx]
	idx := meta.index
	lastIdx := c.size - 1
	if idx < lastIdx {
		lastEnt := c.entityIDs[lastIdx]
		c.entityIDs[idx] = lastEnt
		for _, cid := range a.compOrder {
			size := a.compSizes[cid]
			src := unsafe.Add(c.compPointers[cid], uintptr(lastIdx)*size)
			dst := unsafe.Add(c.compPointers[cid], uintptr(idx)*size)
			memCopy(dst, src, size)
		}
		w.entities.metas[lastEnt.ID].index = idx
	}
	c.size--
	a.size--
	if c.size == 0 {
		lastChunkIdx := len(a.chunks) - 1
		if chunkIdx < lastChunkIdx {
			a.chunks[chunkIdx] = a.chunks[lastChunkIdx]
			swapped := a.chunks[chunkIdx]
			for j := range swapped.size {
				w.entities.metas[swapped.entityIDs[j].ID].chunkIndex = chunkIdx
			}
		}
		a.chunks[lastChunkIdx] = nil
		a.chunks = a.chunks[:lastChunkIdx]
	}
	w.mutationVersion++
}

// hasPointers reports whether values of t hold anything the GC must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Interface, reflect.String:
		return true
	default:
		return false
	}
}

// memCopy copies size bytes from src to dst.
func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), size), unsafe.Slice((*byte)(src), size))
}
