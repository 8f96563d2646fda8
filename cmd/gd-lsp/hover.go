package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/scenekit/gd-format/ir"
	"github.com/scenekit/gd-format/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.file == nil {
		return nil, nil
	}

	v := valueAtPosition(doc.file, doc.positions,
		int(params.Position.Line), int(params.Position.Character))
	if v == nil {
		return nil, nil
	}

	text := hoverText(v)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// valueAtPosition picks the tracked value on the cursor line whose start
// column lies nearest the cursor.
func valueAtPosition(f *ir.File, positions map[*ir.Value]*token.Pos, line, col int) *ir.Value {
	var best *ir.Value
	bestDist := -1

	consider := func(v *ir.Value) {
		pos := positions[v]
		if pos == nil {
			return
		}
		pLine, pCol := pos.LineCol()
		if pLine != line {
			return
		}
		dist := pCol - col
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = v, dist
		}
	}

	for i := range f.Tags {
		tag := &f.Tags[i]
		for _, fields := range [][]ir.Field{tag.Fields, tag.Assignments} {
			for j := range fields {
				fields[j].Value.Visit(func(v *ir.Value, isPost bool) (bool, error) {
					if !isPost {
						consider(v)
					}
					return true, nil
				})
			}
		}
	}
	return best
}

func hoverText(v *ir.Value) string {
	switch v.Type {
	case ir.BoolType:
		return fmt.Sprintf("**Bool** `%t`", v.Bool)
	case ir.NumberType:
		if v.Int64 != nil {
			return fmt.Sprintf("**Integer** `%d`", *v.Int64)
		}
		return fmt.Sprintf("**Float** `%g`", *v.Float64)
	case ir.StringType:
		s := v.String
		if len(s) > 50 {
			s = s[:50] + "..."
		}
		return fmt.Sprintf("**String** `%s`", s)
	case ir.ArrayType:
		return fmt.Sprintf("**Array** with %d elements", len(v.Values))
	case ir.DictType:
		return fmt.Sprintf("**Dict** with %d entries", len(v.Dict))
	case ir.ConstructType:
		return fmt.Sprintf("**%s** with %d args", v.Construct.Identifier, len(v.Construct.Args))
	}
	return ""
}
