package depot

// ComponentDefinition declares a component name and its ordered field layout.
// A definition with no fields describes a tag component.
type ComponentDefinition struct {
	name   string
	fields []FieldSpec
}

// Define declares a component for World.DefineComponents.
func Define(name string, fields ...FieldSpec) ComponentDefinition {
	return ComponentDefinition{name: name, fields: fields}
}

func (d ComponentDefinition) Name() string {
	return d.name
}

func (d ComponentDefinition) Fields() []FieldSpec {
	return d.fields
}

func (d ComponentDefinition) validate() error {
	if d.name == "" {
		return SchemaMismatchError{Reason: "component name is empty"}
	}
	seen := make(map[string]struct{}, len(d.fields))
	for _, f := range d.fields {
		if f == nil || f.Name() == "" {
			return SchemaMismatchError{Component: d.name, Reason: "field name is empty"}
		}
		if _, dup := seen[f.Name()]; dup {
			return SchemaMismatchError{Component: d.name, Field: f.Name(), Reason: "declared twice"}
		}
		seen[f.Name()] = struct{}{}
	}
	return nil
}
