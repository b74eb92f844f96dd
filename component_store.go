package depot

import "fmt"

var _ ComponentStore = &componentStore{}

// componentStore keeps one column per declared field, each the same length as
// set and indexed by set's dense positions.
type componentStore struct {
	name    string
	set     *SparseSet
	columns []column
	fields  map[string]int
}

func newComponentStore(def ComponentDefinition, capacity int) (*componentStore, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}
	store := &componentStore{
		name:    def.name,
		set:     newSparseSet(capacity),
		columns: make([]column, len(def.fields)),
		fields:  make(map[string]int, len(def.fields)),
	}
	for i, f := range def.fields {
		store.columns[i] = f.newColumn(def.name, capacity)
		store.fields[f.Name()] = i
	}
	return store, nil
}

func (s *componentStore) Name() string {
	return s.name
}

// Add stores data for id at the end of every column.
func (s *componentStore) Add(id EntityID, data Data) error {
	if s.set.Has(id) {
		return ComponentExistsError{Entity: id, Component: s.name}
	}
	if err := s.validate(data); err != nil {
		return err
	}
	// The new row is at index Size(); appending keeps every column at the
	// set's length.
	if err := s.set.Add(id); err != nil {
		return err
	}
	for _, col := range s.columns {
		col.push(data[col.Name()])
	}
	return nil
}

// Remove moves the last row into id's row, then pops the tail. The set
// performs the same move on its dense slice.
func (s *componentStore) Remove(id EntityID) error {
	if !s.set.Has(id) {
		return ComponentNotFoundError{Entity: id, Component: s.name}
	}
	index := s.set.Index(id)
	last := s.set.Size() - 1
	if index != last {
		for _, col := range s.columns {
			col.move(index, last)
		}
	}
	if err := s.set.Remove(id); err != nil {
		return err
	}
	for _, col := range s.columns {
		col.pop()
	}
	return nil
}

func (s *componentStore) Has(id EntityID) bool {
	return s.set.Has(id)
}

func (s *componentStore) Index(id EntityID) int {
	return s.set.Index(id)
}

func (s *componentStore) Dense() []EntityID {
	return s.set.Dense()
}

func (s *componentStore) Size() int {
	return s.set.Size()
}

// Data returns every column in declaration order.
func (s *componentStore) Data() []AnyColumn {
	cols := make([]AnyColumn, len(s.columns))
	for i, col := range s.columns {
		cols[i] = col
	}
	return cols
}

func (s *componentStore) Column(field string) (AnyColumn, error) {
	i, ok := s.fields[field]
	if !ok {
		return nil, FieldNotDeclaredError{Component: s.name, Field: field}
	}
	return s.columns[i], nil
}

// validate requires data to carry exactly the declared fields with the
// declared value types.
func (s *componentStore) validate(data Data) error {
	for field := range data {
		if _, ok := s.fields[field]; !ok {
			return SchemaMismatchError{Component: s.name, Field: field, Reason: "not declared"}
		}
	}
	for _, col := range s.columns {
		v, ok := data[col.Name()]
		if !ok {
			return SchemaMismatchError{Component: s.name, Field: col.Name(), Reason: "missing value"}
		}
		if !col.accepts(v) {
			return SchemaMismatchError{
				Component: s.name,
				Field:     col.Name(),
				Reason:    fmt.Sprintf("want %s, got %T", col.TypeName(), v),
			}
		}
	}
	return nil
}
