package encode

import (
	"github.com/scenekit/gd-format/ir"
)

// ToAny projects a file onto plain Go values (maps, slices, scalars) so
// it can be marshaled by any generic encoder.
func ToAny(f *ir.File) any {
	tags := make([]any, len(f.Tags))
	for i := range f.Tags {
		tags[i] = tagToAny(&f.Tags[i])
	}
	return tags
}

func tagToAny(t *ir.Tag) any {
	return map[string]any{
		"tag":         t.Identifier,
		"fields":      fieldsToAny(t.Fields),
		"assignments": fieldsToAny(t.Assignments),
	}
}

func fieldsToAny(fields []ir.Field) []any {
	// fields stay a sequence of name/value pairs: duplicates are legal
	// and order is significant
	res := make([]any, len(fields))
	for i := range fields {
		res[i] = map[string]any{
			"name":  fields[i].Name,
			"value": ValueToAny(fields[i].Value),
		}
	}
	return res
}

// ValueToAny projects one value.
func ValueToAny(v *ir.Value) any {
	switch v.Type {
	case ir.StringType:
		return v.String
	case ir.BoolType:
		return v.Bool
	case ir.NumberType:
		if v.Int64 != nil {
			return *v.Int64
		}
		return *v.Float64
	case ir.ArrayType:
		res := make([]any, len(v.Values))
		for i, vv := range v.Values {
			res[i] = ValueToAny(vv)
		}
		return res
	case ir.DictType:
		res := make(map[string]any, len(v.Dict))
		for k, vv := range v.Dict {
			res[k] = ValueToAny(vv)
		}
		return res
	case ir.ConstructType:
		args := make([]any, len(v.Construct.Args))
		for i, vv := range v.Construct.Args {
			args[i] = ValueToAny(vv)
		}
		return map[string]any{
			"construct": v.Construct.Identifier,
			"args":      args,
		}
	default:
		panic("type")
	}
}
