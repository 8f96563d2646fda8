package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scenekit/gd-format/ir"
	"github.com/scenekit/gd-format/token"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in: `[gd_scene]`,
		},
		{
			in: `[gd_scene load_steps=3 format=2]`,
		},
		{
			in: `[node name="Player" type="CharacterBody2D"]`,
		},
		{
			in: `[node]
position = Vector2(0, 0)
speed = 120.5
`,
		},
		{
			in: `[ext_resource path="res://icon.png" type="Texture" id=1]`,
		},
		{
			in: `[sub_resource type="RectangleShape2D" id="RectangleShape2D_x2aef"]
size = Vector2(14, 20.5)

[node name="Player" type="CharacterBody2D"]
collision_layer = 2
`,
		},
		{
			in: `[resource]
empty_array = []
empty_dict = {}
flags = [1, 2, 3]
meta = {"name": "x", "tags": ["a", "b"]}
`,
		},
		{
			in: `[resource]
nested = Transform2D(Vector2(1, 0), Vector2(0, 1), Vector2(0, 0))
`,
		},
		{
			in: `[resource]
visible = true
paused = false
`,
		},
		{
			in: `[node type="2dnode"]`,
		},
		{
			in: `[connection signal="pressed" from="." to="." method="_on_pressed"]`,
		},
		{
			in: `[resource]
curve = Curve()
`,
		},
		{
			in: `[resource]
lut = {"0": -1, "1": -1.5e-3}
`,
		},
		{
			// a field named like a number or keyword is still an identifier
			in: `[tag 2=1 true=false]
12 = "x"
`,
		},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
		}
	}
}

func TestParseErr(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrParse},
		{in: `x = 1`, e: ErrParse},
		{in: `[node`, e: ErrParse},
		{in: `[node] x =`, e: ErrParse},
		{in: `[node] x = y`, e: ErrParse},
		{in: `[node] x = [1,2,]`, e: ErrParse},
		{in: `[node] x = {1: 2}`, e: ErrParse},
		{in: `[node] x = {"a" 2}`, e: ErrParse},
		{in: `[node] x = Vector2(1,)`, e: ErrParse},
		{in: `[node] x = "ab\"cd"`, e: ErrParse},
		{in: `["node"]`, e: ErrParse},
		{in: `[-1]`, e: ErrParse},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: expected error", pt.in)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestTagOrder(t *testing.T) {
	in := `[gd_scene]
[one]
[two]
a = 1
[one]
`
	f, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"gd_scene", "one", "two", "one"}
	if len(f.Tags) != len(want) {
		t.Fatalf("got %d tags, want %d", len(f.Tags), len(want))
	}
	for i := range want {
		if f.Tags[i].Identifier != want[i] {
			t.Errorf("tag %d is %q, want %q", i, f.Tags[i].Identifier, want[i])
		}
	}
}

func TestFieldsAssignmentsSplit(t *testing.T) {
	in := `[node name="Player" name="Shadow"]
position = Vector2(1, 2)
position = Vector2(3, 4)
`
	f, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	tag := f.Tags[0]
	// duplicates survive in order on both sides of the bracket split
	if len(tag.Fields) != 2 || len(tag.Assignments) != 2 {
		t.Fatalf("got %d fields, %d assignments", len(tag.Fields), len(tag.Assignments))
	}
	if tag.Fields[0].Name != "name" || tag.Fields[1].Name != "name" {
		t.Errorf("fields: %v", tag.Fields)
	}
	if tag.Fields[1].Value.String != "Shadow" {
		t.Errorf("second field value: %v", tag.Fields[1].Value)
	}
	if tag.Assignments[0].Name != "position" || tag.Assignments[1].Name != "position" {
		t.Errorf("assignments: %v", tag.Assignments)
	}
}

func TestColonFieldNames(t *testing.T) {
	// identifiers may begin with ':', including directly after a
	// string-valued field
	f, err := Parse([]byte("[t] a=\"x\"\n:b = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	as := f.Tags[0].Assignments
	if len(as) != 2 || as[0].Name != "a" || as[1].Name != ":b" {
		t.Fatalf("assignments: %+v", as)
	}
	if as[1].Value.Int64 == nil || *as[1].Value.Int64 != 2 {
		t.Errorf("got %+v", as[1].Value)
	}

	f, err = Parse([]byte(`[t a="x" :b=2]`))
	if err != nil {
		t.Fatal(err)
	}
	fs := f.Tags[0].Fields
	if len(fs) != 2 || fs[0].Name != "a" || fs[1].Name != ":b" {
		t.Fatalf("fields: %+v", fs)
	}
	// inside braces the same byte sequence is a key separator
	v, err := ParseValue([]byte(`{"a":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if *v.Dict["a"].Int64 != 1 {
		t.Errorf("got %+v", v.Dict["a"])
	}
}

func TestNoAssignments(t *testing.T) {
	f, err := Parse([]byte(`[node name="x"]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Tags[0].Assignments) != 0 {
		t.Errorf("got %d assignments", len(f.Tags[0].Assignments))
	}
}

func TestNumericKinds(t *testing.T) {
	v, err := ParseValue([]byte(`-12.5e-3`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.NumberType || v.Float64 == nil {
		t.Fatalf("not a float: %+v", v)
	}
	if *v.Float64 != -0.0125 {
		t.Errorf("got %v", *v.Float64)
	}

	v, err = ParseValue([]byte(`42`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.NumberType || v.Int64 == nil {
		t.Fatalf("not an integer: %+v", v)
	}
	if *v.Int64 != 42 {
		t.Errorf("got %v", *v.Int64)
	}
	// integers stay integers; widening is explicit
	if f64, ok := v.AsFloat(); !ok || f64 != 42.0 {
		t.Errorf("AsFloat: %v %v", f64, ok)
	}
}

func TestDictDuplicateKeys(t *testing.T) {
	v, err := ParseValue([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Dict) != 1 {
		t.Fatalf("got %d entries", len(v.Dict))
	}
	a := v.Dict["a"]
	if a == nil || a.Int64 == nil || *a.Int64 != 2 {
		t.Errorf("got %+v", a)
	}
}

func TestEmptyContainers(t *testing.T) {
	v, err := ParseValue([]byte(`[]`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.ArrayType || len(v.Values) != 0 {
		t.Errorf("got %+v", v)
	}
	v, err = ParseValue([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.DictType || len(v.Dict) != 0 {
		t.Errorf("got %+v", v)
	}
}

func TestNestedConstructable(t *testing.T) {
	v, err := ParseValue([]byte(`Vector2(1, Vector2(2,3))`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.ConstructType || v.Construct.Identifier != "Vector2" {
		t.Fatalf("got %+v", v)
	}
	if len(v.Construct.Args) != 2 {
		t.Fatalf("got %d args", len(v.Construct.Args))
	}
	inner := v.Construct.Args[1]
	if inner.Type != ir.ConstructType || inner.Construct.Identifier != "Vector2" {
		t.Errorf("got %+v", inner)
	}
	if len(inner.Construct.Args) != 2 {
		t.Errorf("got %d inner args", len(inner.Construct.Args))
	}
}

func TestOrderedChoiceConstructable(t *testing.T) {
	// an identifier-shaped token followed by '(' is a constructable even
	// when it also lexes as a boolean or number
	v, err := ParseValue([]byte(`true(1)`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.ConstructType || v.Construct.Identifier != "true" {
		t.Errorf("got %+v", v)
	}
	// but a '-'-signed number can never head a constructable
	if _, err := ParseValue([]byte(`-2(1)`)); !errors.Is(err, ErrParse) {
		t.Errorf("got %v", err)
	}
}

func TestIdempotence(t *testing.T) {
	in := `[gd_scene load_steps=2 format=3]

[node name="Main" type="Node2D"]
transform = Transform2D(1, 0, 0, 1, 0, 0)
meta = {"k": [1, 2.5, true, "s"]}
`
	f1, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	f2, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(f1, f2) {
		t.Error("trees differ by ir.Equal")
	}
	if d := cmp.Diff(f1, f2); d != "" {
		t.Errorf("trees differ: %s", d)
	}
}

func TestParseLabel(t *testing.T) {
	_, err := Parse([]byte("[node]\nx = [1,2,]\n"), ParseLabel("player.tscn"))
	if err == nil {
		t.Fatal("expected error")
	}
	pErr := &Error{}
	if !errors.As(err, &pErr) {
		t.Fatalf("error %v is not a parse.Error", err)
	}
	if pErr.Label != "player.tscn" {
		t.Errorf("label %q", pErr.Label)
	}
	if !strings.HasPrefix(err.Error(), "player.tscn:2:") {
		t.Errorf("got %q", err.Error())
	}
}

func TestParsePositions(t *testing.T) {
	in := "[node]\nx = 1\ny = \"s\"\n"
	m := map[*ir.Value]*token.Pos{}
	f, err := Parse([]byte(in), ParsePositions(m))
	if err != nil {
		t.Fatal(err)
	}
	x := f.Tags[0].Assignments[0].Value
	y := f.Tags[0].Assignments[1].Value
	for _, v := range []*ir.Value{x, y} {
		if m[v] == nil {
			t.Fatalf("no position for %+v", v)
		}
	}
	if line, col := m[x].LineCol(); line != 1 || col != 4 {
		t.Errorf("x at %d:%d", line, col)
	}
	if line, _ := m[y].LineCol(); line != 2 {
		t.Errorf("y at line %d", line)
	}
}

func TestParseValueTrailing(t *testing.T) {
	if _, err := ParseValue([]byte(`1 2`)); !errors.Is(err, ErrParse) {
		t.Errorf("got %v", err)
	}
	if _, err := ParseValue([]byte(`[1] x`)); !errors.Is(err, ErrParse) {
		t.Errorf("got %v", err)
	}
}
