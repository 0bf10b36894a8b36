package token

import (
	"strings"

	"github.com/samber/lo"
)

var (
	kindsByName = lo.KeyBy(Kinds(), func(k Kind) string {
		return k.String()
	})

	// fixed-text kinds indexed by their text
	kindsByText = lo.KeyBy(lo.Filter(Kinds(), func(k Kind, _ int) bool {
		return !k.IsLiteral()
	}), Kind.Text)

	// Reserved words are single words. "else if" is two tokens that the
	// parser folds into ElseIf.
	reserved = lo.Filter(Kinds(), func(k Kind, _ int) bool {
		return k.IsKeyword() && !strings.ContainsRune(k.Text(), ' ')
	})

	keywords = lo.KeyBy(reserved, Kind.Text)
)

// Lookup reports whether word is a reserved keyword and returns its token.
// Matching is exact and case-sensitive. A false result means the caller has
// an ordinary identifier.
func Lookup(word string) (Token, bool) {
	k, ok := keywords[word]
	if !ok {
		return Token{}, false
	}
	return Token{Kind: k}, true
}

// LookupIdent returns the keyword token for word, or an identifier token
// carrying word when it is not reserved.
func LookupIdent(word string) Token {
	if tok, ok := Lookup(word); ok {
		return tok
	}
	return NewIdent(word)
}

// Keywords returns the reserved words in declaration order.
func Keywords() []string {
	return lo.Map(reserved, func(k Kind, _ int) string {
		return k.Text()
	})
}

// KindOfText returns the fixed-text kind whose canonical text is s.
// Literal kinds never match.
func KindOfText(s string) (Kind, bool) {
	k, ok := kindsByText[s]
	return k, ok
}
