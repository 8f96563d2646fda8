package token

import (
	"fmt"
)

type TokenType int

const (
	TLSquare TokenType = iota
	TRSquare
	TLCurl
	TRCurl
	TLParen
	TRParen
	TComma
	TEq
	TColon
	TInteger
	TFloat
	TString
	TTrue
	TFalse
	TIdent
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TComma:   "TComma",
		TEq:      "TEq",
		TColon:   "TColon",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TIdent:   "TIdent",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, string(t.Bytes), t.Pos.String())
}

// String returns the semantic text of the token. For TString, Bytes holds
// the raw payload between the quotes, so this is the captured string
// verbatim, with no escape processing.
func (t *Token) String() string {
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
