package depot

import (
	"fmt"
	"reflect"
)

// FieldSpec declares one field of a component: its name and value type.
// Create one with FactoryNewField.
type FieldSpec interface {
	Name() string
	TypeName() string
	newColumn(component string, capacity int) column
}

type fieldSpec[T any] struct {
	name string
}

func (f fieldSpec[T]) Name() string {
	return f.name
}

func (f fieldSpec[T]) TypeName() string {
	return typeName[T]()
}

func (f fieldSpec[T]) newColumn(component string, capacity int) column {
	return &Column[T]{
		component: component,
		name:      f.name,
		data:      make([]T, 0, capacity),
	}
}

// column is what a store needs to keep a field aligned with its sparse set.
type column interface {
	AnyColumn
	accepts(v any) bool
	push(v any)
	move(dst, src int)
	pop()
}

var _ column = &Column[int]{}

// Column is the dense value array of one component field. Row i belongs to
// the entity at position i of the owning store's dense sequence.
//
// Values and At hand out live storage. Writing through them is the intended
// fast path; resizing or reordering the slice breaks the store.
// Any add or remove on the store may invalidate previously returned pointers.
type Column[T any] struct {
	component string
	name      string
	data      []T
}

// At returns a pointer to the value at row.
func (c *Column[T]) At(row int) *T {
	return &c.data[row]
}

// Values returns the backing array.
func (c *Column[T]) Values() []T {
	return c.data
}

func (c *Column[T]) Name() string {
	return c.name
}

func (c *Column[T]) TypeName() string {
	return typeName[T]()
}

func (c *Column[T]) Len() int {
	return len(c.data)
}

func (c *Column[T]) Value(row int) any {
	return c.data[row]
}

func (c *Column[T]) Set(row int, v any) error {
	typed, ok := convert[T](v)
	if !ok {
		return c.mismatch(v)
	}
	c.data[row] = typed
	return nil
}

func (c *Column[T]) accepts(v any) bool {
	_, ok := convert[T](v)
	return ok
}

func (c *Column[T]) push(v any) {
	typed, _ := convert[T](v)
	c.data = append(c.data, typed)
}

func (c *Column[T]) move(dst, src int) {
	c.data[dst] = c.data[src]
}

func (c *Column[T]) pop() {
	last := len(c.data) - 1
	var zero T
	c.data[last] = zero
	c.data = c.data[:last]
}

func (c *Column[T]) mismatch(v any) error {
	return SchemaMismatchError{
		Component: c.component,
		Field:     c.name,
		Reason:    fmt.Sprintf("want %s, got %T", c.TypeName(), v),
	}
}

// ColumnOf returns the typed column for field, failing when T is not the
// field's declared type.
func ColumnOf[T any](store ComponentStore, field string) (*Column[T], error) {
	col, err := store.Column(field)
	if err != nil {
		return nil, err
	}
	typed, ok := col.(*Column[T])
	if !ok {
		return nil, SchemaMismatchError{
			Component: store.Name(),
			Field:     field,
			Reason:    fmt.Sprintf("declared as %s, not %s", col.TypeName(), typeName[T]()),
		}
	}
	return typed, nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// convert unwraps v as a T. An untyped nil stands for the zero value of a
// nillable T such as a pointer, interface, map or slice.
func convert[T any](v any) (T, bool) {
	if typed, ok := v.(T); ok {
		return typed, true
	}
	var zero T
	if v != nil {
		return zero, false
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return zero, true
	}
	return zero, false
}
