package depot

import (
	"iter"

	"github.com/willf/bitset"
)

// EntityID identifies a live entity. IDs are recycled after destruction.
type EntityID int

// ComponentID is a component's bit position in entity masks.
type ComponentID uint32

type World interface {
	DefineComponents(...ComponentDefinition) error
	CreateEntity() EntityID
	DestroyEntity(EntityID) error
	AddComponent(EntityID, string, Data) error
	RemoveComponent(EntityID, string) error
	HasComponent(EntityID, string) (bool, error)
	Exists(EntityID) bool
	Len() int
	Query(...string) (*Cursor, error)
	Filter(QueryNode) (*Cursor, error)
	Store(string) (ComponentStore, error)
	Components() map[string]ComponentStore
	EnqueueAddComponent(EntityID, string, Data) error
	EnqueueRemoveComponent(EntityID, string) error
	EnqueueDestroyEntity(EntityID) error
	Locked() bool
	AddLock(bit uint32) error
	RemoveLock(bit uint32) error
}

type EntityManager interface {
	Create() EntityID
	Exists(EntityID) bool
	Remove(EntityID) error
	AddComponent(EntityID, string) error
	RemoveComponent(EntityID, string) error
	HasComponent(EntityID, string) (bool, error)
	Mask(EntityID) (*bitset.BitSet, error)
	Len() int
	Entities() iter.Seq[EntityID]
}

type ComponentRegistry interface {
	Register(name string) ComponentID
	ID(name string) (ComponentID, error)
	Name(id ComponentID) (string, error)
	Len() int
}

type ComponentStore interface {
	Name() string
	Add(EntityID, Data) error
	Remove(EntityID) error
	Has(EntityID) bool
	Index(EntityID) int
	Dense() []EntityID
	Size() int
	Data() []AnyColumn
	Column(field string) (AnyColumn, error)
}

type Query interface {
	QueryNode
	And(items ...any) QueryNode
	Or(items ...any) QueryNode
	Not(items ...any) QueryNode
}

// QueryNode is a component filter built by a Query.
type QueryNode interface {
	compile(ComponentRegistry) (*matcher, error)
}

// AnyColumn is the type-erased view of a Column.
type AnyColumn interface {
	Name() string
	TypeName() string
	Len() int
	Value(row int) any
	Set(row int, v any) error
}

// Data holds one value per declared field, keyed by field name.
type Data map[string]any
