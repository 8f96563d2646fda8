// Package ir provides the in-memory representation of parsed gd format
// documents.
//
// # Overview
//
// A gd document (.tscn/.tres style) is a sequence of bracketed tags, each
// with header fields and body assignments. The ir package defines the tree
// produced by parsing: File holds ordered Tags, a Tag holds its ordered
// Fields and Assignments, and a Field pairs a name with a Value.
//
// # Values
//
// Value is a recursive tagged union with exactly one active variant,
// discriminated by the Type field:
//
//   - StringType: the String field
//   - NumberType: exactly one of Int64 or Float64
//   - BoolType: the Bool field
//   - ArrayType: the Values field, in source order
//   - DictType: the Dict field, string keyed; duplicate source keys are
//     overwritten by the last occurrence
//   - ConstructType: the Construct field, a named constructor call with
//     positional arguments (eg Vector2(1, 2))
//
// Consumers should switch exhaustively on Type. Construction sites always
// produce a concrete variant; there is no dynamic casting.
//
// # Ordering and duplicates
//
// File preserves tag order. Fields and Assignments are plain ordered
// sequences: a repeated field name survives as separate entries. Only
// dictionaries deduplicate, with last-occurrence-wins semantics.
//
// # Immutability
//
// Trees are built in a single pass and never mutated afterwards, so a
// completed tree may be read concurrently without synchronization.
package ir
