package encode

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/scenekit/gd-format/ir"
)

// Tree writes an outline view of f to w: one line per tag, field and
// value, nested by indent. This is an inspection view, not a gd
// serialization.
func Tree(f *ir.File, w io.Writer, opts ...EncodeOption) error {
	o := mkOpts(opts)
	for i := range f.Tags {
		if err := treeTag(&f.Tags[i], w, o); err != nil {
			return err
		}
	}
	return nil
}

func treeTag(t *ir.Tag, w io.Writer, o *encOpts) error {
	if _, err := fmt.Fprintf(w, "%s\n", o.color(Colorable{Attr: TagColor}, "[%s]", t.Identifier)); err != nil {
		return err
	}
	if err := treeFields(t.Fields, w, o, "field"); err != nil {
		return err
	}
	return treeFields(t.Assignments, w, o, "assign")
}

func treeFields(fields []ir.Field, w io.Writer, o *encOpts, kind string) error {
	for i := range fields {
		f := &fields[i]
		name := o.color(Colorable{Attr: FieldColor}, "%s", f.Name)
		if _, err := fmt.Fprintf(w, "%s%s %s = ", o.indent, kind, name); err != nil {
			return err
		}
		if err := treeValue(f.Value, w, o, 2); err != nil {
			return err
		}
	}
	return nil
}

// treeValue writes v and a trailing newline; composite children go on
// their own lines at depth+1.
func treeValue(v *ir.Value, w io.Writer, o *encOpts, depth int) error {
	ind := strings.Repeat(o.indent, depth)
	switch v.Type {
	case ir.StringType, ir.BoolType, ir.NumberType:
		_, err := fmt.Fprintf(w, "%s %s\n",
			o.color(Colorable{Type: v.Type, Attr: TypeColor}, "%s", v.Type),
			o.color(Colorable{Type: v.Type, Attr: ValueColor}, "%s", leafString(v)))
		return err
	case ir.ArrayType:
		if _, err := fmt.Fprintf(w, "Array (%d elements)\n", len(v.Values)); err != nil {
			return err
		}
		for _, vv := range v.Values {
			if _, err := fmt.Fprintf(w, "%s- ", ind); err != nil {
				return err
			}
			if err := treeValue(vv, w, o, depth+1); err != nil {
				return err
			}
		}
		return nil
	case ir.DictType:
		if _, err := fmt.Fprintf(w, "Dict (%d entries)\n", len(v.Dict)); err != nil {
			return err
		}
		for _, k := range slices.Sorted(maps.Keys(v.Dict)) {
			key := o.color(Colorable{Type: ir.StringType, Attr: FieldColor}, "%q", k)
			if _, err := fmt.Fprintf(w, "%s%s: ", ind, key); err != nil {
				return err
			}
			if err := treeValue(v.Dict[k], w, o, depth+1); err != nil {
				return err
			}
		}
		return nil
	case ir.ConstructType:
		name := o.color(Colorable{Type: ir.ConstructType, Attr: ValueColor}, "%s", v.Construct.Identifier)
		if _, err := fmt.Fprintf(w, "%s (%d args)\n", name, len(v.Construct.Args)); err != nil {
			return err
		}
		for _, vv := range v.Construct.Args {
			if _, err := fmt.Fprintf(w, "%s- ", ind); err != nil {
				return err
			}
			if err := treeValue(vv, w, o, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		panic("type")
	}
}

func leafString(v *ir.Value) string {
	switch v.Type {
	case ir.StringType:
		return strconv.Quote(v.String)
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	case ir.NumberType:
		if v.Int64 != nil {
			return strconv.FormatInt(*v.Int64, 10)
		}
		return strconv.FormatFloat(*v.Float64, 'g', -1, 64)
	default:
		panic("type")
	}
}

func (o *encOpts) color(able Colorable, format string, args ...any) string {
	if o.colors == nil {
		return fmt.Sprintf(format, args...)
	}
	return o.colors.sprintf(able, format, args...)
}
