package depot

var _ ComponentRegistry = &registry{}

// registry assigns component IDs in registration order. It never forgets a name.
type registry struct {
	names []string
	ids   map[string]ComponentID
}

func newRegistry() *registry {
	return &registry{
		ids: make(map[string]ComponentID),
	}
}

// Register returns name's ID, assigning the next one on first sight.
func (r *registry) Register(name string) ComponentID {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := ComponentID(len(r.names))
	r.ids[name] = id
	r.names = append(r.names, name)
	return id
}

func (r *registry) ID(name string) (ComponentID, error) {
	id, ok := r.ids[name]
	if !ok {
		return 0, ComponentNotRegisteredError{Name: name}
	}
	return id, nil
}

func (r *registry) Name(id ComponentID) (string, error) {
	if int(id) >= len(r.names) {
		return "", ComponentNotRegisteredError{ID: id}
	}
	return r.names[id], nil
}

func (r *registry) Len() int {
	return len(r.names)
}
