// Package encode projects parsed gd trees into other notations for
// downstream inspection: JSON, YAML, and a colorized outline view.
//
// The gd text form itself is never re-serialized; the projections are
// one-way views of the tree.
package encode
