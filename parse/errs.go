package parse

import (
	"errors"
	"fmt"

	"github.com/scenekit/gd-format/token"
)

var ErrParse = errors.New("parse error")

// Error is the diagnostic for a failed parse: a source label, the
// position where the grammar could not continue matching, and a message.
// It wraps ErrParse and is retrievable with errors.As, replacing the
// shared stderr sink a caller would otherwise need.
type Error struct {
	Label string
	Pos   *token.Pos
	Msg   string
}

func (e *Error) Unwrap() error {
	return ErrParse
}

func (e *Error) Error() string {
	label := e.Label
	if label == "" {
		label = "input"
	}
	if e.Pos == nil {
		return fmt.Sprintf("%s: %s", label, e.Msg)
	}
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("%s:%d:%d: %s", label, line+1, col+1, e.Msg)
}

func errAt(opts *parseOpts, pos *token.Pos, format string, args ...any) error {
	return &Error{
		Label: opts.label,
		Pos:   pos,
		Msg:   fmt.Sprintf(format, args...),
	}
}
