package parse

import (
	"github.com/scenekit/gd-format/ir"
	"github.com/scenekit/gd-format/token"
)

type parseOpts struct {
	label     string
	positions map[*ir.Value]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseLabel sets the source name prefixed to diagnostics, usually a
// file path.
func ParseLabel(label string) ParseOption {
	return func(o *parseOpts) { o.label = label }
}

// ParsePositions records the source position of each constructed value
// in m.
func ParsePositions(m map[*ir.Value]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Value]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
