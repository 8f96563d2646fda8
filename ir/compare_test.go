package ir

import "testing"

type cmpTest struct {
	a, b *Value
	c    int
}

func TestCompare(t *testing.T) {
	vec := func(args ...*Value) *Value {
		return FromConstruct("Vector2", args)
	}
	pts := []cmpTest{
		{nil, nil, 0},
		{nil, FromBool(false), -1},
		{FromBool(false), nil, 1},

		{FromBool(false), FromBool(false), 0},
		{FromBool(false), FromBool(true), -1},
		{FromBool(true), FromBool(false), 1},

		{FromInt(1), FromInt(1), 0},
		{FromInt(1), FromInt(2), -1},
		{FromInt(-3), FromInt(-4), 1},
		{FromFloat(1.5), FromFloat(2.5), -1},
		// integers sort before floats of the same type
		{FromInt(9), FromFloat(1.0), -1},
		{FromFloat(1.0), FromInt(9), 1},

		{FromString("a"), FromString("a"), 0},
		{FromString("a"), FromString("b"), -1},

		// type rank: bool < number < string < array < dict < construct
		{FromBool(true), FromInt(0), -1},
		{FromInt(0), FromString(""), -1},
		{FromString("z"), FromSlice(nil), -1},
		{FromSlice(nil), FromDict(nil), -1},
		{FromDict(nil), vec(), -1},

		{FromSlice(nil), FromSlice(nil), 0},
		{FromSlice(nil), FromSlice([]*Value{FromInt(1)}), -1},
		{
			FromSlice([]*Value{FromInt(1), FromInt(2)}),
			FromSlice([]*Value{FromInt(1), FromInt(3)}),
			-1,
		},

		{
			FromDict(map[string]*Value{"a": FromInt(1)}),
			FromDict(map[string]*Value{"a": FromInt(1)}),
			0,
		},
		{
			FromDict(map[string]*Value{"a": FromInt(1)}),
			FromDict(map[string]*Value{"b": FromInt(1)}),
			-1,
		},
		{
			FromDict(map[string]*Value{"a": FromInt(1)}),
			FromDict(map[string]*Value{"a": FromInt(2)}),
			-1,
		},
		{
			FromDict(map[string]*Value{"a": FromInt(1)}),
			FromDict(map[string]*Value{"a": FromInt(1), "b": FromInt(1)}),
			-1,
		},

		{vec(FromInt(1)), vec(FromInt(1)), 0},
		{vec(FromInt(1)), vec(FromInt(2)), -1},
		{vec(FromInt(1)), vec(FromInt(1), FromInt(1)), -1},
		{vec(), FromConstruct("Vector3", nil), -1},
	}
	for i, pt := range pts {
		if c := Compare(pt.a, pt.b); c != pt.c {
			t.Errorf("%d: Compare(%v, %v) = %d, want %d", i, pt.a, pt.b, c, pt.c)
		}
	}
}

func TestCompareTag(t *testing.T) {
	a := &Tag{Identifier: "node", Fields: []Field{{Name: "name", Value: FromString("x")}}}
	b := &Tag{Identifier: "node", Fields: []Field{{Name: "name", Value: FromString("x")}}}
	if CompareTag(a, b) != 0 {
		t.Error("equal tags compare non-zero")
	}
	b.Assignments = append(b.Assignments, Field{Name: "z", Value: FromInt(1)})
	if CompareTag(a, b) >= 0 {
		t.Error("tag with extra assignment should sort after")
	}
	c := &Tag{Identifier: "ext_resource"}
	if CompareTag(c, a) >= 0 {
		t.Error("identifier should dominate")
	}
	if CompareTag(a, c) <= 0 {
		t.Error("identifier should dominate")
	}
}

func TestCompareFile(t *testing.T) {
	mk := func(idents ...string) *File {
		f := &File{}
		for _, id := range idents {
			f.Tags = append(f.Tags, Tag{Identifier: id})
		}
		return f
	}
	if CompareFile(nil, nil) != 0 {
		t.Error("nil files")
	}
	if CompareFile(nil, mk()) != -1 {
		t.Error("nil vs empty")
	}
	if !Equal(mk("a", "b"), mk("a", "b")) {
		t.Error("equal files")
	}
	if Equal(mk("a", "b"), mk("b", "a")) {
		t.Error("tag order must matter")
	}
	if CompareFile(mk("a"), mk("a", "b")) != -1 {
		t.Error("prefix file should sort first")
	}
}
