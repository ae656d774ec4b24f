// Package ecs is a small entity/component store: one sparse set per registered
// component type, keyed by reflect.Type
package ecs

import (
	"fmt"
	"reflect"
)

// Entity is a stable handle to a set of components
type Entity uint64

// World owns every component storage and hands out entity ids
type World struct {
	capacity int
	nextID   Entity
	stores   map[reflect.Type]storage
}

// NewWorld creates an empty world; capacity presizes each registered storage
func NewWorld(capacity int) *World {
	return &World{
		capacity: capacity,
		stores:   make(map[reflect.Type]storage),
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Register declares component type T. Registering twice is a no-op.
func Register[T any](w *World) *World {
	t := typeOf[T]()
	if _, ok := w.stores[t]; !ok {
		w.stores[t] = NewSparseSet[T](w.capacity)
	}
	return w
}

// Storage returns the set for T, or nil if T was never registered
func Storage[T any](w *World) *SparseSet[T] {
	s, ok := w.stores[typeOf[T]()]
	if !ok {
		return nil
	}
	return s.(*SparseSet[T])
}

// EntityBuilder attaches components to a freshly spawned entity
type EntityBuilder struct {
	world  *World
	entity Entity
}

// Spawn reserves a new entity id
func (w *World) Spawn() *EntityBuilder {
	e := w.nextID
	w.nextID++
	return &EntityBuilder{world: w, entity: e}
}

// With adds a component of type T to the entity being built.
// Panics if T was never registered.
func With[T any](eb *EntityBuilder, component T) *EntityBuilder {
	s := Storage[T](eb.world)
	if s == nil {
		panic(fmt.Sprintf("ecs: cannot spawn entity %d with unregistered type %s", eb.entity, typeOf[T]()))
	}
	s.Add(eb.entity, component)
	return eb
}

// ID returns the entity being built
func (eb *EntityBuilder) ID() Entity {
	return eb.entity
}

// Despawn removes every component of e
func (w *World) Despawn(e Entity) {
	for _, s := range w.stores {
		s.Remove(e)
	}
}

// Count returns the number of entities spawned so far
func (w *World) Count() int {
	return int(w.nextID)
}

// Get returns a pointer to the T component of e, or nil if absent or unregistered
func Get[T any](w *World, e Entity) *T {
	s := Storage[T](w)
	if s == nil {
		return nil
	}
	return s.Get(e)
}

// ForEach visits every T component by value
func ForEach[T any](w *World, fn func(e Entity, item T)) {
	if s := Storage[T](w); s != nil {
		s.Each(func(e Entity, item *T) { fn(e, *item) })
	}
}

// ForEachMut visits every T component in place
func ForEachMut[T any](w *World, fn func(e Entity, item *T)) {
	if s := Storage[T](w); s != nil {
		s.Each(fn)
	}
}
