package token

import (
	"errors"
	"fmt"
)

var (
	ErrNumber       = errors.New("malformed number")
	ErrUnterminated = errors.New("unterminated string")
)

// Tokenize appends the tokens of src to dst and returns the result. The
// returned tokens share the underlying bytes of src.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	i, n := 0, len(src)
	depth := 0
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r':
			i++
		case '\n':
			posDoc.nl(i)
			i++
		case '[':
			dst = append(dst, one(TLSquare, posDoc, src, i))
			i++
		case ']':
			dst = append(dst, one(TRSquare, posDoc, src, i))
			i++
		case '{':
			depth++
			dst = append(dst, one(TLCurl, posDoc, src, i))
			i++
		case '}':
			if depth > 0 {
				depth--
			}
			dst = append(dst, one(TRCurl, posDoc, src, i))
			i++
		case '(':
			dst = append(dst, one(TLParen, posDoc, src, i))
			i++
		case ')':
			dst = append(dst, one(TRParen, posDoc, src, i))
			i++
		case ',':
			dst = append(dst, one(TComma, posDoc, src, i))
			i++
		case '=':
			dst = append(dst, one(TEq, posDoc, src, i))
			i++
		case ':':
			// ':' is both the dictionary key separator and an identifier
			// byte. A dictionary key is always a quoted string and the
			// separator is consumed before the value production runs, so
			// inside braces a ':' directly after a string token is the
			// separator. Outside braces there are no key separators and a
			// ':' run is an identifier, which may begin a field name such
			// as ':b'.
			if depth > 0 && len(dst) > 0 && dst[len(dst)-1].Type == TString {
				dst = append(dst, one(TColon, posDoc, src, i))
				i++
				break
			}
			if i+1 < n && identChar(src[i+1]) {
				j := identRun(src, i)
				dst = append(dst, identToken(posDoc, src, i, j))
				i = j
				break
			}
			dst = append(dst, one(TColon, posDoc, src, i))
			i++
		case '"':
			j := i + 1
			for j < n && src[j] != '"' {
				if src[j] == '\n' {
					posDoc.nl(j)
				}
				j++
			}
			if j == n {
				return nil, NewTokenizeErr(ErrUnterminated, posDoc.Pos(i))
			}
			dst = append(dst, Token{
				Type:  TString,
				Pos:   posDoc.Pos(i),
				Bytes: src[i+1 : j],
			})
			i = j + 1
		case '-':
			consumed, isFloat := number(src[i+1:])
			if consumed == 0 {
				return nil, NewTokenizeErr(fmt.Errorf("%w: lone '-'", ErrNumber), posDoc.Pos(i))
			}
			typ := TokenType(TInteger)
			if isFloat {
				typ = TFloat
			}
			dst = append(dst, Token{
				Type:  typ,
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+1+consumed],
			})
			i += 1 + consumed
		default:
			if asciiDigit(c) {
				consumed, isFloat := number(src[i:])
				if i+consumed < n && identChar(src[i+consumed]) {
					// numeric prefix of a longer identifier run, such
					// as '2dnode' or '1.0.4'
					j := identRun(src, i)
					dst = append(dst, identToken(posDoc, src, i, j))
					i = j
					break
				}
				typ := TokenType(TInteger)
				if isFloat {
					typ = TFloat
				}
				dst = append(dst, Token{
					Type:  typ,
					Pos:   posDoc.Pos(i),
					Bytes: src[i : i+consumed],
				})
				i += consumed
				break
			}
			if identChar(c) {
				j := identRun(src, i)
				dst = append(dst, identToken(posDoc, src, i, j))
				i = j
				break
			}
			return nil, UnexpectedErr(fmt.Sprintf("character %q", string(c)), posDoc.Pos(i))
		}
	}
	return dst, nil
}

func one(typ TokenType, posDoc *PosDoc, src []byte, i int) Token {
	return Token{
		Type:  typ,
		Pos:   posDoc.Pos(i),
		Bytes: src[i : i+1],
	}
}

func identToken(posDoc *PosDoc, src []byte, i, j int) Token {
	typ := TokenType(TIdent)
	switch string(src[i:j]) {
	case "true":
		typ = TTrue
	case "false":
		typ = TFalse
	}
	return Token{
		Type:  typ,
		Pos:   posDoc.Pos(i),
		Bytes: src[i:j],
	}
}

func identRun(src []byte, i int) int {
	j := i
	for j < len(src) && identChar(src[j]) {
		j++
	}
	return j
}

// identChar reports membership in the identifier class [A-Za-z0-9._:].
// Identifiers may begin with digits or punctuation, which permits type
// names like '2dnode' or '::'.
func identChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '.' || c == '_' || c == ':':
		return true
	default:
		return false
	}
}
