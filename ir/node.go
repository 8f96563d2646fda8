package ir

// Value is one value in a gd document. Exactly one variant is active,
// selected by Type. Numbers keep the integer/float split from the source
// text: exactly one of Int64, Float64 is non-nil for NumberType.
type Value struct {
	Type Type

	String    string
	Bool      bool
	Int64     *int64
	Float64   *float64
	Construct *Constructable
	Dict      map[string]*Value
	Values    []*Value
}

// Constructable is a named constructor call value with positional
// arguments, eg Vector2(0.5, 1.5) or ExtResource("1_ab3f").
type Constructable struct {
	Identifier string
	Args       []*Value
}

// Field is a single name = value pair.
type Field struct {
	Name  string
	Value *Value
}

// Tag is one bracketed section: the identifier, the header fields written
// between the brackets, and the body assignments written after the
// closing bracket up to the next tag. Both sequences keep source order
// and keep duplicate names as separate entries.
type Tag struct {
	Identifier  string
	Fields      []Field
	Assignments []Field
}

// File is a parsed document: its tags in source order.
type File struct {
	Tags []Tag
}

func FromString(v string) *Value {
	return &Value{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Value {
	return &Value{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Value {
	return &Value{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Value {
	return &Value{
		Type: BoolType,
		Bool: v,
	}
}

func FromSlice(vs []*Value) *Value {
	return &Value{
		Type:   ArrayType,
		Values: vs,
	}
}

func FromDict(d map[string]*Value) *Value {
	return &Value{
		Type: DictType,
		Dict: d,
	}
}

func FromConstruct(identifier string, args []*Value) *Value {
	return &Value{
		Type: ConstructType,
		Construct: &Constructable{
			Identifier: identifier,
			Args:       args,
		},
	}
}

// AsFloat widens a number to float64. Callers that want a uniform
// floating representation must widen explicitly; integer literals stay
// integers otherwise.
func (v *Value) AsFloat() (float64, bool) {
	if v.Type != NumberType {
		return 0, false
	}
	if v.Float64 != nil {
		return *v.Float64, true
	}
	if v.Int64 != nil {
		return float64(*v.Int64), true
	}
	return 0, false
}

// FieldNamed returns the value of the first field with the given name,
// or nil.
func FieldNamed(fields []Field, name string) *Value {
	for i := range fields {
		if fields[i].Name == name {
			return fields[i].Value
		}
	}
	return nil
}

// TagsNamed returns the tags with the given identifier, in source order.
func (f *File) TagsNamed(identifier string) []*Tag {
	var res []*Tag
	for i := range f.Tags {
		if f.Tags[i].Identifier == identifier {
			res = append(res, &f.Tags[i])
		}
	}
	return res
}

// Visit walks v and its children pre- and post-order. f is called with
// isPost false before children and true after; returning false from the
// pre call skips the children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		switch v.Type {
		case ArrayType:
			for _, vv := range v.Values {
				if err := vv.Visit(f); err != nil {
					return err
				}
			}
		case DictType:
			for _, vv := range v.Dict {
				if err := vv.Visit(f); err != nil {
					return err
				}
			}
		case ConstructType:
			for _, vv := range v.Construct.Args {
				if err := vv.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
