package ir

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareSlices(a.Values, b.Values)
	case DictType:
		return compareDicts(a, b)
	case ConstructType:
		if c := strings.Compare(a.Construct.Identifier, b.Construct.Identifier); c != 0 {
			return c
		}
		return compareSlices(a.Construct.Args, b.Construct.Args)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Bool < Number < String < Array < Dict < Construct
func rank(t Type) int {
	switch t {
	case BoolType:
		return 0
	case NumberType:
		return 1
	case StringType:
		return 2
	case ArrayType:
		return 3
	case DictType:
		return 4
	case ConstructType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	// Sub-rank: Int64 < Float64
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	return cmp.Compare(*a.Float64, *b.Float64)
}

func numberSubRank(v *Value) int {
	if v.Int64 != nil {
		return 0
	}
	return 1
}

func compareSlices(a, b []*Value) int {
	return slices.CompareFunc(a, b, Compare)
}

func compareDicts(a, b *Value) int {
	keysA := slices.Sorted(maps.Keys(a.Dict))
	keysB := slices.Sorted(maps.Keys(b.Dict))
	if c := slices.Compare(keysA, keysB); c != 0 {
		return c
	}
	for _, k := range keysA {
		if c := Compare(a.Dict[k], b.Dict[k]); c != 0 {
			return c
		}
	}
	return 0
}

func compareFields(a, b []Field) int {
	return slices.CompareFunc(a, b, func(x, y Field) int {
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return Compare(x.Value, y.Value)
	})
}

// CompareTag orders tags by identifier, then fields, then assignments.
func CompareTag(a, b *Tag) int {
	if c := strings.Compare(a.Identifier, b.Identifier); c != 0 {
		return c
	}
	if c := compareFields(a.Fields, b.Fields); c != 0 {
		return c
	}
	return compareFields(a.Assignments, b.Assignments)
}

// CompareFile orders files by their tag sequences.
func CompareFile(a, b *File) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return slices.CompareFunc(a.Tags, b.Tags, func(x, y Tag) int {
		return CompareTag(&x, &y)
	})
}

// Equal reports deep structural equality of two files.
func Equal(a, b *File) bool {
	return CompareFile(a, b) == 0
}
