package depot

import (
	"github.com/rotisserie/eris"
)

type operation struct {
	typ       operationType
	entity    EntityID
	component string
	data      Data
}

type operationType int

const (
	opAddComponent operationType = iota
	opRemoveComponent
	opSkip
)

// opQueue holds membership changes requested while the world is locked.
type opQueue struct {
	componentOps   []operation
	destroyOps     []EntityID
	pendingDestroy map[EntityID]struct{}
	pendingMods    map[EntityID][]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[EntityID]struct{}),
		pendingMods:    make(map[EntityID][]int),
	}
}

func (q *opQueue) empty() bool {
	return len(q.componentOps) == 0 && len(q.destroyOps) == 0
}

func (q *opQueue) EnqueueComponentOp(typ operationType, id EntityID, component string, data Data) {
	// Changes to an entity that is about to be destroyed are moot.
	if _, isDestroyed := q.pendingDestroy[id]; isDestroyed {
		return
	}
	q.pendingMods[id] = append(q.pendingMods[id], len(q.componentOps))
	q.componentOps = append(q.componentOps, operation{
		typ:       typ,
		entity:    id,
		component: component,
		data:      data,
	})
}

func (q *opQueue) EnqueueDestroy(id EntityID) {
	if _, exists := q.pendingDestroy[id]; exists {
		return
	}
	q.pendingDestroy[id] = struct{}{}
	for _, idx := range q.pendingMods[id] {
		q.componentOps[idx].typ = opSkip
	}
	delete(q.pendingMods, id)
	q.destroyOps = append(q.destroyOps, id)
}

func (q *opQueue) reset() {
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
	clear(q.pendingMods)
}

func (w *world) EnqueueAddComponent(id EntityID, component string, data Data) error {
	if !w.Locked() {
		return w.AddComponent(id, component, data)
	}
	w.opQueue.EnqueueComponentOp(opAddComponent, id, component, data)
	return nil
}

func (w *world) EnqueueRemoveComponent(id EntityID, component string) error {
	if !w.Locked() {
		return w.RemoveComponent(id, component)
	}
	w.opQueue.EnqueueComponentOp(opRemoveComponent, id, component, nil)
	return nil
}

func (w *world) EnqueueDestroyEntity(id EntityID) error {
	if !w.Locked() {
		return w.DestroyEntity(id)
	}
	w.opQueue.EnqueueDestroy(id)
	return nil
}

// processOperationQueue applies component changes in the order they were
// requested, then destroys. The queue is emptied even when an operation fails.
func (w *world) processOperationQueue() error {
	if w.opQueue.empty() {
		return nil
	}
	componentOps := append([]operation(nil), w.opQueue.componentOps...)
	destroyOps := append([]EntityID(nil), w.opQueue.destroyOps...)
	w.opQueue.reset()

	for _, op := range componentOps {
		switch op.typ {
		case opAddComponent:
			if err := w.AddComponent(op.entity, op.component, op.data); err != nil {
				return eris.Wrapf(err, "failed to add queued component %q to entity %d", op.component, op.entity)
			}
		case opRemoveComponent:
			if err := w.RemoveComponent(op.entity, op.component); err != nil {
				return eris.Wrapf(err, "failed to remove queued component %q from entity %d", op.component, op.entity)
			}
		}
	}

	for _, id := range destroyOps {
		if err := w.DestroyEntity(id); err != nil {
			return eris.Wrapf(err, "failed to destroy queued entity %d", id)
		}
	}
	return nil
}
