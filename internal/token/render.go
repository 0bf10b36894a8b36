package token

import "strings"

// Token is one lexical unit. Text is only meaningful for literal kinds and is
// kept exactly as scanned; it is not validated here.
type Token struct {
	Kind Kind
	Text string
}

// New returns the token of a fixed-text kind.
func New(kind Kind) Token {
	return Token{Kind: kind}
}

func NewIdent(text string) Token  { return Token{Kind: Ident, Text: text} }
func NewInt(text string) Token    { return Token{Kind: IntLit, Text: text} }
func NewBool(text string) Token   { return Token{Kind: BoolLit, Text: text} }
func NewString(text string) Token { return Token{Kind: StringLit, Text: text} }

// String renders the token back to source text.
func (t Token) String() string {
	if t.Kind.IsLiteral() {
		return t.Text
	}
	return t.Kind.Text()
}

// Render concatenates the source text of tokens. Spacing comes only from
// Whitespace tokens in the stream.
func Render(tokens ...Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}
