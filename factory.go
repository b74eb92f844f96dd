package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld() World {
	return newWorld()
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewSparseSet() *SparseSet {
	return newSparseSet(Config.initialCapacity)
}

func (f factory) NewComponentRegistry() ComponentRegistry {
	return newRegistry()
}

func (f factory) NewEntityManager(registry ComponentRegistry) EntityManager {
	return newEntityManager(registry, Config.initialCapacity)
}

func (f factory) NewComponentStore(def ComponentDefinition) (ComponentStore, error) {
	return newComponentStore(def, Config.initialCapacity)
}

func FactoryNewField[T any](name string) FieldSpec {
	return fieldSpec[T]{name: name}
}

func FactoryNewAccessor[T any](component, field string) Accessor[T] {
	return Accessor[T]{component: component, field: field, cache: &columnCache[T]{}}
}
