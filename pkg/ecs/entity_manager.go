package ecs

import (
	"reflect"
	"sort"
)

// EntityID is the unique identifier of an entity
type EntityID uint64

// EntityManager owns all entities and their components. Components are
// stored per type, so a query walks the smallest store instead of every
// entity.
type EntityManager struct {
	nextID uint64
	alive  map[EntityID]struct{}
	// component type -> EntityID -> component instance
	stores map[reflect.Type]map[EntityID]any
	// entities marked for removal
	doomed []EntityID
}

// NewEntityManager creates an empty EntityManager
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1, // 0 is reserved as the invalid ID
		alive:  make(map[EntityID]struct{}),
		stores: make(map[reflect.Type]map[EntityID]any),
	}
}

// CreateEntity creates a new entity and returns its ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// Len returns the number of live entities.
func (em *EntityManager) Len() int {
	return len(em.alive)
}

// DestroyEntity marks an entity for removal; RemoveMarkedEntities removes it.
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.doomed = append(em.doomed, id)
}

// put stores comp under t. Unknown entities are ignored.
func (em *EntityManager) put(id EntityID, t reflect.Type, comp any) {
	if _, ok := em.alive[id]; !ok {
		return
	}
	store, ok := em.stores[t]
	if !ok {
		store = make(map[EntityID]any)
		em.stores[t] = store
	}
	store[id] = comp
}

// AddComponent attaches a component to an entity, keyed by its dynamic type
func (em *EntityManager) AddComponent(id EntityID, component any) {
	em.put(id, reflect.TypeOf(component), component)
}

// RemoveComponent detaches the component of the given type
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	delete(em.stores[componentType], id)
}

// GetComponent returns the component of the given type
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.stores[componentType][id]
	return comp, ok
}

// HasComponent reports whether the entity has a component of the given type
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.stores[componentType][id]
	return ok
}

// RemoveMarkedEntities removes every entity marked by DestroyEntity
// together with its components.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.doomed {
		delete(em.alive, id)
		for _, store := range em.stores {
			delete(store, id)
		}
	}
	em.doomed = em.doomed[:0]
}

// GetEntitiesWith returns all entities owning every listed component type,
// sorted by ID so callers iterate in creation order. With no types it
// returns every live entity.
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	if len(componentTypes) == 0 {
		for id := range em.alive {
			result = append(result, id)
		}
	} else {
		smallest := em.stores[componentTypes[0]]
		for _, ct := range componentTypes[1:] {
			if len(em.stores[ct]) < len(smallest) {
				smallest = em.stores[ct]
			}
		}
	next:
		for id := range smallest {
			for _, ct := range componentTypes {
				if _, ok := em.stores[ct][id]; !ok {
					continue next
				}
			}
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
