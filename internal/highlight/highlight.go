// Package highlight splits a rendered selector into labelled segments for display.
//
// It is a presentation helper: input that does not look like a selector is
// never rejected, unrecognized tokens are returned as RoleOther.
package highlight

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/cssel/internal/selector"
)

// Role labels a segment of a selector
type Role string

// Segment roles
const (
	RoleElement       Role = "element"
	RoleID            Role = "id"
	RoleClass         Role = "class"
	RoleAttribute     Role = "attribute"
	RolePseudoClass   Role = "pseudo-class"
	RolePseudoElement Role = "pseudo-element"
	RoleCombinator    Role = "combinator"
	RoleOther         Role = "other"
)

// Kind returns the fragment kind for a fragment role
func (r Role) Kind() (selector.Kind, bool) {
	switch r {
	case RoleElement:
		return selector.Element, true
	case RoleID:
		return selector.ID, true
	case RoleClass:
		return selector.Class, true
	case RoleAttribute:
		return selector.Attribute, true
	case RolePseudoClass:
		return selector.PseudoClass, true
	case RolePseudoElement:
		return selector.PseudoElement, true
	}
	return 0, false
}

// Segment is a run of selector text with a single role
type Segment struct {
	Role Role
	Text string
}

type token struct {
	tt   css.TokenType
	text string
}

// lex tokenizes s; the concatenated token texts reproduce s
func lex(s string) []token {
	lexer := css.NewLexer(parse.NewInputString(s))

	var tokens []token
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}
		tokens = append(tokens, token{tt: tt, text: string(text)})
	}
	return tokens
}

func isDelim(t token, chars string) bool {
	return t.tt == css.DelimToken && strings.Contains(chars, t.text)
}

// Segments splits an already-built selector into fragments and combinators
func Segments(s string) []Segment {
	tokens := lex(s)
	var segs []Segment

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		switch {
		case t.tt == css.WhitespaceToken || isDelim(t, ">+~"):
			// Whitespace and combinator characters fold into one segment
			var b strings.Builder
			for ; i < len(tokens) && (tokens[i].tt == css.WhitespaceToken || isDelim(tokens[i], ">+~")); i++ {
				b.WriteString(tokens[i].text)
			}
			i--
			segs = append(segs, Segment{Role: RoleCombinator, Text: b.String()})

		case t.tt == css.IdentToken || isDelim(t, "*"):
			segs = append(segs, Segment{Role: RoleElement, Text: t.text})

		case t.tt == css.HashToken:
			segs = append(segs, Segment{Role: RoleID, Text: t.text})

		case isDelim(t, ".") && i+1 < len(tokens) && tokens[i+1].tt == css.IdentToken:
			segs = append(segs, Segment{Role: RoleClass, Text: t.text + tokens[i+1].text})
			i++

		case t.tt == css.LeftBracketToken:
			end := closing(tokens, i, css.RightBracketToken, css.LeftBracketToken)
			segs = append(segs, Segment{Role: RoleAttribute, Text: join(tokens[i : end+1])})
			i = end

		case t.tt == css.ColonToken:
			role := RolePseudoClass
			start := i
			if i+1 < len(tokens) && tokens[i+1].tt == css.ColonToken {
				role = RolePseudoElement
				i++
			}
			if i+1 < len(tokens) {
				i++
				if tokens[i].tt == css.FunctionToken {
					i = closing(tokens, i, css.RightParenthesisToken, css.FunctionToken, css.LeftParenthesisToken)
				}
			}
			segs = append(segs, Segment{Role: role, Text: join(tokens[start : i+1])})

		default:
			segs = append(segs, Segment{Role: RoleOther, Text: t.text})
		}
	}

	return segs
}

// closing returns the index of the end token that balances tokens[start].
// Unbalanced input runs to the last token.
func closing(tokens []token, start int, end css.TokenType, opens ...css.TokenType) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		tt := tokens[i].tt
		if tt == end {
			depth--
			if depth == 0 {
				return i
			}
			continue
		}
		for _, open := range opens {
			if tt == open {
				depth++
				break
			}
		}
	}
	return len(tokens) - 1
}

func join(tokens []token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.text)
	}
	return b.String()
}
