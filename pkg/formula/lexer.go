package formula

import (
	"fmt"
	"strconv"

	"github.com/vinodismyname/gridsheet/pkg/position"
)

// tokenType classifies the tokens of the expression grammar.
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenNumber
	tokenCell
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLeftParen
	tokenRightParen
)

// character classification constants. slightly easier to read.
const (
	charTab    = '\t'
	charSpace  = ' '
	charLParen = '('
	charRParen = ')'
	charStar   = '*'
	charPlus   = '+'
	charMinus  = '-'
	charPeriod = '.'
	charSlash  = '/'
)

// token is a single lexed unit. Cell tokens keep their source text so the
// canonical renderer can reproduce out-of-bounds references verbatim.
type token struct {
	typ    tokenType
	text   string
	num    float64            // set for tokenNumber
	pos    position.Position  // set for tokenCell when in bounds
	valid  bool               // whether pos is within the grid
	offset int                // byte offset in the source expression
}

// lex scans the whole expression into tokens, dropping whitespace. A scan
// failure returns the offset of the offending byte.
func lex(src string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == charSpace || c == charTab:
			i++
		case c == charPlus:
			tokens = append(tokens, token{typ: tokenPlus, text: "+", offset: i})
			i++
		case c == charMinus:
			tokens = append(tokens, token{typ: tokenMinus, text: "-", offset: i})
			i++
		case c == charStar:
			tokens = append(tokens, token{typ: tokenStar, text: "*", offset: i})
			i++
		case c == charSlash:
			tokens = append(tokens, token{typ: tokenSlash, text: "/", offset: i})
			i++
		case c == charLParen:
			tokens = append(tokens, token{typ: tokenLeftParen, text: "(", offset: i})
			i++
		case c == charRParen:
			tokens = append(tokens, token{typ: tokenRightParen, text: ")", offset: i})
			i++
		case c >= '0' && c <= '9':
			tok, next, err := scanNumber(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		case c >= 'A' && c <= 'Z':
			tok, next, err := scanCell(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d", c, i)
		}
	}
	tokens = append(tokens, token{typ: tokenEOF, offset: len(src)})
	return tokens, nil
}

// scanNumber scans a decimal literal with optional fraction and exponent.
func scanNumber(src string, start int) (token, int, error) {
	i := start
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	if i < len(src) && src[i] == charPeriod {
		i++
		for i < len(src) && src[i] >= '0' && src[i] <= '9' {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j >= len(src) || src[j] < '0' || src[j] > '9' {
			return token{}, 0, fmt.Errorf("malformed exponent at offset %d", i)
		}
		i = j
		for i < len(src) && src[i] >= '0' && src[i] <= '9' {
			i++
		}
	}
	text := src[start:i]
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, fmt.Errorf("malformed number %q at offset %d", text, start)
	}
	return token{typ: tokenNumber, text: text, num: num, offset: start}, i, nil
}

// scanCell scans an A1 reference: upper-case letters then row digits. The
// reference may exceed the grid bounds; it is kept as a cell token with
// valid=false so it can round-trip through the canonical renderer and raise
// a reference error at evaluation time.
func scanCell(src string, start int) (token, int, error) {
	i := start
	for i < len(src) && src[i] >= 'A' && src[i] <= 'Z' {
		i++
	}
	digits := i
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	if i == digits {
		return token{}, 0, fmt.Errorf("malformed cell reference %q at offset %d", src[start:i], start)
	}
	text := src[start:i]
	pos, ok := position.Parse(text)
	return token{typ: tokenCell, text: text, pos: pos, valid: ok, offset: start}, i, nil
}
