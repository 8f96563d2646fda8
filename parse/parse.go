package parse

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/scenekit/gd-format/debug"
	"github.com/scenekit/gd-format/ir"
	"github.com/scenekit/gd-format/token"
)

// Parse parses a whole gd document. The input must contain at least one
// tag; on any failure no partial result is returned.
func Parse(d []byte, opts ...ParseOption) (*ir.File, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := tokenize(d, pOpts)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, errAt(pOpts, nil, "empty input: expected '['")
	}
	res := &ir.File{}
	pi := 0
	for pi < len(toks) {
		tag, err := parseTag(toks, &pi, pOpts)
		if err != nil {
			return nil, err
		}
		res.Tags = append(res.Tags, *tag)
	}
	if debug.Parse() {
		debug.Logf("parsed %d tags\n", len(res.Tags))
	}
	return res, nil
}

// ParseValue parses a single value, eg `Vector2(1, 2)` or `{"a": 1}`.
// The whole input must be consumed.
func ParseValue(d []byte, opts ...ParseOption) (*ir.Value, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := tokenize(d, pOpts)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, errAt(pOpts, nil, "empty input: expected value")
	}
	pi := 0
	v, err := parseValue(toks, &pi, pOpts)
	if err != nil {
		return nil, err
	}
	if pi < len(toks) {
		t := &toks[pi]
		return nil, errAt(pOpts, t.Pos, "trailing input %q after value", string(t.Bytes))
	}
	return v, nil
}

func tokenize(d []byte, opts *parseOpts) ([]token.Token, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		te := &token.TokenizeErr{}
		if errors.As(err, &te) {
			pos := te.Pos
			return nil, errAt(opts, &pos, "%s", te.Err.Error())
		}
		return nil, err
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("%s\n", toks[i].Info())
		}
	}
	return toks, nil
}

func parseTag(toks []token.Token, pi *int, opts *parseOpts) (*ir.Tag, error) {
	t := &toks[*pi]
	if t.Type != token.TLSquare {
		return nil, errAt(opts, t.Pos, "expected '[' to open tag, got %q", string(t.Bytes))
	}
	*pi++
	ident, _, err := identifier(toks, pi, opts, "tag identifier")
	if err != nil {
		return nil, err
	}
	tag := &ir.Tag{Identifier: ident}
	for {
		if *pi >= len(toks) {
			return nil, errAt(opts, endPos(toks), "premature end of tag %q: expected ']'", ident)
		}
		if toks[*pi].Type == token.TRSquare {
			*pi++
			break
		}
		f, err := parseField(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		tag.Fields = append(tag.Fields, *f)
	}
	// everything between ']' and the next '[' is a body assignment
	for *pi < len(toks) && toks[*pi].Type != token.TLSquare {
		f, err := parseField(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		tag.Assignments = append(tag.Assignments, *f)
	}
	return tag, nil
}

func parseField(toks []token.Token, pi *int, opts *parseOpts) (*ir.Field, error) {
	name, _, err := identifier(toks, pi, opts, "field name")
	if err != nil {
		return nil, err
	}
	if err := expect(toks, pi, opts, token.TEq, "'='"); err != nil {
		return nil, err
	}
	v, err := parseValue(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	return &ir.Field{Name: name, Value: v}, nil
}

func parseValue(toks []token.Token, pi *int, opts *parseOpts) (*ir.Value, error) {
	if *pi >= len(toks) {
		return nil, errAt(opts, endPos(toks), "premature end: expected value")
	}
	t := &toks[*pi]
	// Ordered choice: a constructable wins whenever an identifier-shaped
	// token is directly followed by '('. This covers identifiers that
	// also lex as booleans or numbers, eg true(1) or 2(3).
	if s, ok := identText(t); ok && *pi+1 < len(toks) && toks[*pi+1].Type == token.TLParen {
		*pi += 2
		return parseConstruct(s, t.Pos, toks, pi, opts)
	}
	switch t.Type {
	case token.TLCurl:
		*pi++
		return parseDict(t.Pos, toks, pi, opts)
	case token.TLSquare:
		*pi++
		return parseArr(t.Pos, toks, pi, opts)
	case token.TTrue:
		*pi++
		return track(ir.FromBool(true), t.Pos, opts), nil
	case token.TFalse:
		*pi++
		return track(ir.FromBool(false), t.Pos, opts), nil
	case token.TString:
		*pi++
		return track(ir.FromString(t.String()), t.Pos, opts), nil
	case token.TInteger:
		i64, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, errAt(opts, t.Pos, "invalid integer %q: %v", string(t.Bytes), err)
		}
		*pi++
		return track(ir.FromInt(i64), t.Pos, opts), nil
	case token.TFloat:
		f64, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, errAt(opts, t.Pos, "invalid float %q: %v", string(t.Bytes), err)
		}
		*pi++
		return track(ir.FromFloat(f64), t.Pos, opts), nil
	case token.TIdent:
		return nil, errAt(opts, t.Pos, "expected '(' after identifier %q", string(t.Bytes))
	default:
		return nil, errAt(opts, t.Pos, "unexpected %q: expected value", string(t.Bytes))
	}
}

func parseConstruct(identifier string, pos *token.Pos, toks []token.Token, pi *int, opts *parseOpts) (*ir.Value, error) {
	var args []*ir.Value
	err := list(toks, pi, opts, token.TRParen, "')'", func() error {
		v, err := parseValue(toks, pi, opts)
		if err != nil {
			return err
		}
		args = append(args, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return track(ir.FromConstruct(identifier, args), pos, opts), nil
}

func parseArr(pos *token.Pos, toks []token.Token, pi *int, opts *parseOpts) (*ir.Value, error) {
	vs := []*ir.Value{}
	err := list(toks, pi, opts, token.TRSquare, "']'", func() error {
		v, err := parseValue(toks, pi, opts)
		if err != nil {
			return err
		}
		vs = append(vs, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return track(ir.FromSlice(vs), pos, opts), nil
}

func parseDict(pos *token.Pos, toks []token.Token, pi *int, opts *parseOpts) (*ir.Value, error) {
	d := map[string]*ir.Value{}
	err := list(toks, pi, opts, token.TRCurl, "'}'", func() error {
		if *pi >= len(toks) {
			return errAt(opts, endPos(toks), "premature end: expected string key")
		}
		kt := &toks[*pi]
		if kt.Type != token.TString {
			return errAt(opts, kt.Pos, "expected string key, got %q", string(kt.Bytes))
		}
		*pi++
		if err := expect(toks, pi, opts, token.TColon, "':'"); err != nil {
			return err
		}
		v, err := parseValue(toks, pi, opts)
		if err != nil {
			return err
		}
		// last occurrence of a duplicate key wins
		d[kt.String()] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return track(ir.FromDict(d), pos, opts), nil
}

// list parses a possibly empty, comma separated sequence followed by
// closer. Trailing commas are not permitted.
func list(toks []token.Token, pi *int, opts *parseOpts, closer token.TokenType, closerStr string, elt func() error) error {
	if *pi < len(toks) && toks[*pi].Type == closer {
		*pi++
		return nil
	}
	for {
		if err := elt(); err != nil {
			return err
		}
		if *pi >= len(toks) {
			return errAt(opts, endPos(toks), "premature end: expected ',' or %s", closerStr)
		}
		t := &toks[*pi]
		switch {
		case t.Type == token.TComma:
			*pi++
		case t.Type == closer:
			*pi++
			return nil
		default:
			return errAt(opts, t.Pos, "unexpected %q: expected ',' or %s", string(t.Bytes), closerStr)
		}
	}
}

func identifier(toks []token.Token, pi *int, opts *parseOpts, what string) (string, *token.Pos, error) {
	if *pi >= len(toks) {
		return "", nil, errAt(opts, endPos(toks), "premature end: expected %s", what)
	}
	t := &toks[*pi]
	s, ok := identText(t)
	if !ok {
		return "", nil, errAt(opts, t.Pos, "expected %s, got %q", what, string(t.Bytes))
	}
	*pi++
	return s, t.Pos, nil
}

// identText returns the token's text when the token is identifier
// shaped. Booleans and digit-only numbers lex as their own token types
// but still match the identifier class [A-Za-z0-9._:]+; only '-' rules a
// numeric token out.
func identText(t *token.Token) (string, bool) {
	switch t.Type {
	case token.TIdent, token.TTrue, token.TFalse:
		return string(t.Bytes), true
	case token.TInteger, token.TFloat:
		if bytes.IndexByte(t.Bytes, '-') >= 0 {
			return "", false
		}
		return string(t.Bytes), true
	}
	return "", false
}

func expect(toks []token.Token, pi *int, opts *parseOpts, typ token.TokenType, what string) error {
	if *pi >= len(toks) {
		return errAt(opts, endPos(toks), "premature end: expected %s", what)
	}
	t := &toks[*pi]
	if t.Type != typ {
		return errAt(opts, t.Pos, "expected %s, got %q", what, string(t.Bytes))
	}
	*pi++
	return nil
}

func endPos(toks []token.Token) *token.Pos {
	if len(toks) == 0 {
		return nil
	}
	return toks[len(toks)-1].Pos
}

func track(v *ir.Value, pos *token.Pos, opts *parseOpts) *ir.Value {
	if opts.positions != nil && pos != nil {
		opts.positions[v] = pos
	}
	return v
}
