package depot

import (
	"github.com/TheBitDrifter/mask"
	"github.com/rotisserie/eris"
	"github.com/willf/bitset"
)

var _ World = &world{}

type world struct {
	locks    mask.Mask
	registry *registry
	entities *entityManager
	stores   []*componentStore // indexed by ComponentID
	opQueue  opQueue
	events   Events
	capacity int
}

func newWorld() *world {
	reg := newRegistry()
	return &world{
		registry: reg,
		entities: newEntityManager(reg, Config.initialCapacity),
		opQueue:  newOpQueue(),
		events:   Config.events,
		capacity: Config.initialCapacity,
	}
}

// DefineComponents registers each definition and allocates its store.
// Either every definition is accepted or none is.
func (w *world) DefineComponents(defs ...ComponentDefinition) error {
	created := make([]*componentStore, len(defs))
	seen := make(map[string]struct{}, len(defs))
	for i, def := range defs {
		if _, err := w.registry.ID(def.name); err == nil {
			return ComponentDefinedError{Component: def.name}
		}
		if _, dup := seen[def.name]; dup {
			return ComponentDefinedError{Component: def.name}
		}
		seen[def.name] = struct{}{}

		store, err := newComponentStore(def, w.capacity)
		if err != nil {
			return err
		}
		created[i] = store
	}
	// IDs come out in order, so stores stays indexed by ComponentID.
	for _, store := range created {
		w.registry.Register(store.name)
		w.stores = append(w.stores, store)
	}
	return nil
}

func (w *world) CreateEntity() EntityID {
	id := w.entities.Create()
	w.events.created(id)
	return id
}

// DestroyEntity removes every component the entity carries, lowest
// component ID first, then releases the ID.
func (w *world) DestroyEntity(id EntityID) error {
	if w.Locked() {
		return LockedStorageError{}
	}
	entityMask, err := w.entities.Mask(id)
	if err != nil {
		return err
	}
	for bit, ok := entityMask.NextSet(0); ok; bit, ok = entityMask.NextSet(bit + 1) {
		name, err := w.registry.Name(ComponentID(bit))
		if err != nil {
			return eris.Wrapf(err, "entity %d carries unknown bit %d", id, bit)
		}
		if err := w.stores[bit].Remove(id); err != nil {
			return eris.Wrapf(err, "failed to remove %q from entity %d", name, id)
		}
	}
	if err := w.entities.Remove(id); err != nil {
		return err
	}
	w.events.destroyed(id)
	return nil
}

// AddComponent validates everything up front so a failure changes nothing.
func (w *world) AddComponent(id EntityID, name string, data Data) error {
	if w.Locked() {
		return LockedStorageError{}
	}
	has, err := w.entities.HasComponent(id, name)
	if err != nil {
		return err
	}
	if has {
		return ComponentExistsError{Entity: id, Component: name}
	}
	store, err := w.store(name)
	if err != nil {
		return err
	}
	if err := store.validate(data); err != nil {
		return err
	}
	if err := w.entities.AddComponent(id, name); err != nil {
		return err
	}
	if err := store.Add(id, data); err != nil {
		if rollbackErr := w.entities.RemoveComponent(id, name); rollbackErr != nil {
			return eris.Wrapf(err, "failed to store %q for entity %d, clearing its bit also failed: %v", name, id, rollbackErr)
		}
		return eris.Wrapf(err, "failed to store %q for entity %d", name, id)
	}
	w.events.added(id, name)
	return nil
}

func (w *world) RemoveComponent(id EntityID, name string) error {
	if w.Locked() {
		return LockedStorageError{}
	}
	has, err := w.entities.HasComponent(id, name)
	if err != nil {
		return err
	}
	if !has {
		return ComponentNotFoundError{Entity: id, Component: name}
	}
	store, err := w.store(name)
	if err != nil {
		return err
	}
	if err := store.Remove(id); err != nil {
		return eris.Wrapf(err, "failed to drop %q from entity %d", name, id)
	}
	if err := w.entities.RemoveComponent(id, name); err != nil {
		return err
	}
	w.events.removed(id, name)
	return nil
}

func (w *world) HasComponent(id EntityID, name string) (bool, error) {
	return w.entities.HasComponent(id, name)
}

func (w *world) Exists(id EntityID) bool {
	return w.entities.Exists(id)
}

func (w *world) Len() int {
	return w.entities.Len()
}

// Query returns a cursor over entities carrying every named component.
// It walks the dense sequence of the smallest named store.
func (w *world) Query(names ...string) (*Cursor, error) {
	if len(names) == 0 {
		return exhaustedCursor(), nil
	}
	stores, target, err := w.resolve(names)
	if err != nil {
		return nil, err
	}
	driver := stores[0]
	for _, store := range stores[1:] {
		if store.Size() < driver.Size() {
			driver = store
		}
	}
	return newCursor(w, names, stores, driver.set, func(m *bitset.BitSet) bool {
		return m.IsSuperSet(target)
	}), nil
}

// Filter returns a cursor over entities matching node. When node is an And
// with named components, the smallest of those stores drives the walk and
// the cursor reports their rows; otherwise every live entity is visited.
func (w *world) Filter(node QueryNode) (*Cursor, error) {
	m, err := node.compile(w.registry)
	if err != nil {
		return nil, err
	}
	var (
		names  []string
		stores []*componentStore
		driver *SparseSet
	)
	if and, ok := rootOf(node).(*compositeNode); ok && and.op == OpAnd && len(and.components) > 0 {
		names = and.components
		stores, _, err = w.resolve(names)
		if err != nil {
			return nil, err
		}
		driver = stores[0].set
		for _, store := range stores[1:] {
			if store.Size() < driver.Size() {
				driver = store.set
			}
		}
	}
	return newCursor(w, names, stores, driver, m.evaluate), nil
}

func (w *world) Store(name string) (ComponentStore, error) {
	store, err := w.store(name)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Components maps every defined component name to its store.
func (w *world) Components() map[string]ComponentStore {
	stores := make(map[string]ComponentStore, len(w.stores))
	for _, store := range w.stores {
		stores[store.name] = store
	}
	return stores
}

func (w *world) Locked() bool {
	var unlocked mask.Mask
	return w.locks != unlocked
}

// AddLock marks the world as held by bit. Membership changes are refused
// until every held bit is released. Bits range over [0, mask.MaxBits).
func (w *world) AddLock(bit uint32) error {
	if err := checkLockBit(bit); err != nil {
		return err
	}
	w.locks.Mark(bit)
	return nil
}

// RemoveLock releases bit. Releasing the last bit applies queued operations.
func (w *world) RemoveLock(bit uint32) error {
	if err := checkLockBit(bit); err != nil {
		return err
	}
	w.locks.Unmark(bit)
	if w.Locked() {
		return nil
	}
	return w.processOperationQueue()
}

func checkLockBit(bit uint32) error {
	if bit >= mask.MaxBits {
		return LockBitRangeError{Bit: bit, Max: mask.MaxBits}
	}
	return nil
}

func (w *world) store(name string) (*componentStore, error) {
	id, err := w.registry.ID(name)
	if err != nil {
		return nil, err
	}
	return w.stores[id], nil
}

func (w *world) resolve(names []string) ([]*componentStore, *bitset.BitSet, error) {
	stores := make([]*componentStore, len(names))
	target := bitset.New(uint(w.registry.Len()))
	for i, name := range names {
		id, err := w.registry.ID(name)
		if err != nil {
			return nil, nil, err
		}
		stores[i] = w.stores[id]
		target.Set(uint(id))
	}
	return stores, target, nil
}
