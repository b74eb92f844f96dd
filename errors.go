package depot

import "fmt"

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return "storage is currently locked"
}

type EntityNotFoundError struct {
	Entity EntityID
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.Entity)
}

// ComponentNotRegisteredError reports a component name (or ID, when Name is
// empty) that was never defined.
type ComponentNotRegisteredError struct {
	Name string
	ID   ComponentID
}

func (e ComponentNotRegisteredError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("component ID %d not registered", e.ID)
	}
	return fmt.Sprintf("component %q not registered", e.Name)
}

// ComponentExistsError is returned when an entity already carries a component,
// or when a sparse set already tracks an ID (Component is empty then).
type ComponentExistsError struct {
	Entity    EntityID
	Component string
}

func (e ComponentExistsError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("ID %d already present in the set", e.Entity)
	}
	return fmt.Sprintf("entity %d already has component %q", e.Entity, e.Component)
}

// ComponentNotFoundError is returned when an entity lacks a component, or when
// a sparse set does not track an ID (Component is empty then).
type ComponentNotFoundError struct {
	Entity    EntityID
	Component string
}

func (e ComponentNotFoundError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("ID %d not present in the set", e.Entity)
	}
	return fmt.Sprintf("entity %d does not have component %q", e.Entity, e.Component)
}

type ComponentDefinedError struct {
	Component string
}

func (e ComponentDefinedError) Error() string {
	return fmt.Sprintf("component %q is already defined", e.Component)
}

type SchemaMismatchError struct {
	Component string
	Field     string
	Reason    string
}

func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("component %q field %q: %s", e.Component, e.Field, e.Reason)
}

type FieldNotDeclaredError struct {
	Component string
	Field     string
}

func (e FieldNotDeclaredError) Error() string {
	return fmt.Sprintf("component %q has no field %q", e.Component, e.Field)
}

// LockBitRangeError is returned for a lock bit outside the lock set's width.
type LockBitRangeError struct {
	Bit uint32
	Max uint32
}

func (e LockBitRangeError) Error() string {
	return fmt.Sprintf("lock bit %d out of range, must be below %d", e.Bit, e.Max)
}
