package depot

// Accessor reads one field of one component with a fixed value type.
//
// An accessor remembers the column it last resolved. Stores are never
// replaced once defined, so the column stays valid for the life of its world.
type Accessor[T any] struct {
	component string
	field     string
	cache     *columnCache[T]
}

type columnCache[T any] struct {
	world World
	col   *Column[T]
}

// Column returns the field's column in w.
func (a Accessor[T]) Column(w World) (*Column[T], error) {
	if a.cache != nil && a.cache.col != nil && a.cache.world == w {
		return a.cache.col, nil
	}
	store, err := w.Store(a.component)
	if err != nil {
		return nil, err
	}
	col, err := ColumnOf[T](store, a.field)
	if err != nil {
		return nil, err
	}
	if a.cache != nil {
		a.cache.world = w
		a.cache.col = col
	}
	return col, nil
}

// GetFromCursor returns the field value for the cursor's current entity.
// It panics when the accessor's component was not part of the query.
func (a Accessor[T]) GetFromCursor(cursor *Cursor) *T {
	ok, v := a.GetFromCursorSafe(cursor)
	if !ok {
		panic(ComponentNotFoundError{Entity: cursor.Entity(), Component: a.component})
	}
	return v
}

// GetFromCursorSafe is GetFromCursor without the panic.
func (a Accessor[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	if cursor.world == nil {
		return false, nil
	}
	row, ok := cursor.Row(a.component)
	if !ok || row < 0 {
		return false, nil
	}
	col, err := a.Column(cursor.world)
	if err != nil {
		return false, nil
	}
	return true, col.At(row)
}

// GetFromEntity returns the field value stored for id.
func (a Accessor[T]) GetFromEntity(w World, id EntityID) (*T, error) {
	store, err := w.Store(a.component)
	if err != nil {
		return nil, err
	}
	if !w.Exists(id) {
		return nil, EntityNotFoundError{Entity: id}
	}
	row := store.Index(id)
	if row < 0 {
		return nil, ComponentNotFoundError{Entity: id, Component: a.component}
	}
	col, err := a.Column(w)
	if err != nil {
		return nil, err
	}
	return col.At(row), nil
}
