// Package token tokenizes gd format text.
//
// The gd format is the textual scene/resource serialization used by the
// Godot engine (.tscn/.tres files): bracketed tag headers with fields,
// followed by body assignments, whose values are strings, numbers,
// booleans, arrays, dictionaries and constructor calls.
//
// Tokenization is whitespace-skipping between tokens. Whitespace is never
// skipped inside quoted strings or numeric tokens. Quoted strings have no
// escape sequences: the payload is every byte up to the next '"'.
package token
