package depot

import (
	"iter"

	"github.com/willf/bitset"
)

var _ EntityManager = &entityManager{}

// entityManager hands out entity IDs and tracks which components each live
// entity carries. masks[id] is nil when id is not live.
type entityManager struct {
	registry ComponentRegistry
	nextID   EntityID
	recycled []EntityID
	masks    []*bitset.BitSet
	live     int
}

func newEntityManager(registry ComponentRegistry, capacity int) *entityManager {
	return &entityManager{
		registry: registry,
		masks:    make([]*bitset.BitSet, 0, capacity),
	}
}

// Create reuses the most recently removed ID before issuing a new one.
func (em *entityManager) Create() EntityID {
	var id EntityID
	if n := len(em.recycled); n > 0 {
		id = em.recycled[n-1]
		em.recycled = em.recycled[:n-1]
	} else {
		id = em.nextID
		em.nextID++
		em.masks = append(em.masks, nil)
	}
	em.masks[id] = bitset.New(uint(em.registry.Len()))
	em.live++
	return id
}

func (em *entityManager) Exists(id EntityID) bool {
	return id >= 0 && id < em.nextID && em.masks[id] != nil
}

func (em *entityManager) Remove(id EntityID) error {
	if !em.Exists(id) {
		return EntityNotFoundError{Entity: id}
	}
	em.masks[id] = nil
	em.recycled = append(em.recycled, id)
	em.live--
	return nil
}

func (em *entityManager) AddComponent(id EntityID, name string) error {
	mask, cid, err := em.lookup(id, name)
	if err != nil {
		return err
	}
	if mask.Test(uint(cid)) {
		return ComponentExistsError{Entity: id, Component: name}
	}
	mask.Set(uint(cid))
	return nil
}

func (em *entityManager) RemoveComponent(id EntityID, name string) error {
	mask, cid, err := em.lookup(id, name)
	if err != nil {
		return err
	}
	if !mask.Test(uint(cid)) {
		return ComponentNotFoundError{Entity: id, Component: name}
	}
	mask.Clear(uint(cid))
	return nil
}

func (em *entityManager) HasComponent(id EntityID, name string) (bool, error) {
	mask, cid, err := em.lookup(id, name)
	if err != nil {
		return false, err
	}
	return mask.Test(uint(cid)), nil
}

// Mask returns the entity's live component mask. Callers must not modify it.
func (em *entityManager) Mask(id EntityID) (*bitset.BitSet, error) {
	if !em.Exists(id) {
		return nil, EntityNotFoundError{Entity: id}
	}
	return em.masks[id], nil
}

func (em *entityManager) Len() int {
	return em.live
}

// Entities yields live IDs in ascending order.
func (em *entityManager) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for id := EntityID(0); id < em.nextID; id++ {
			if em.masks[id] == nil {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

func (em *entityManager) lookup(id EntityID, name string) (*bitset.BitSet, ComponentID, error) {
	if !em.Exists(id) {
		return nil, 0, EntityNotFoundError{Entity: id}
	}
	cid, err := em.registry.ID(name)
	if err != nil {
		return nil, 0, err
	}
	return em.masks[id], cid, nil
}
