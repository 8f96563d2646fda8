package ir

import "fmt"

type Type int

const (
	NumberType Type = iota
	StringType
	BoolType
	ArrayType
	DictType
	ConstructType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NumberType:    "Number",
		StringType:    "String",
		BoolType:      "Bool",
		ArrayType:     "Array",
		DictType:      "Dict",
		ConstructType: "Construct",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Number":    NumberType,
		"String":    StringType,
		"Bool":      BoolType,
		"Array":     ArrayType,
		"Dict":      DictType,
		"Construct": ConstructType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NumberType,
		StringType,
		BoolType,
		ArrayType,
		DictType,
		ConstructType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, DictType, ConstructType:
		return false
	default:
		return true
	}
}
