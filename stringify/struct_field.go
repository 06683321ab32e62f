package stringify

// StructField is a named value inside a Struct rendering.
type StructField struct {
	name  string
	value interface{}
}

// NewStructField creates a new StructField from the given name and value.
func NewStructField(name string, value interface{}) *StructField {
	return &StructField{
		name:  name,
		value: value,
	}
}

// String returns a human-readable version of the StructField.
func (s *StructField) String() string {
	return s.name + ": " + Interface(s.value)
}
