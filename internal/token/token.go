// Package token defines the lexical vocabulary of jay: every kind of token
// the grammar can contain, its canonical source text, and the classifier that
// tells reserved words apart from identifiers.
package token

// Kind is the closed set of token kinds.
type Kind int

const (
	Whitespace Kind = iota

	// literals carry their source text
	Ident
	IntLit
	BoolLit
	StringLit

	// keywords
	Fun
	If
	ElseIf
	Else
	While
	Break
	Return
	True
	False
	Void
	IntType
	BooleanType
	StringType

	// symbols
	LParen
	RParen
	LBrace
	RBrace
	Semi
	Comma
	Add
	Sub
	Mul
	Div
	Mod
	Gt
	Lt
	GtEq
	LtEq
	Assign
	Eq
	Not
	NotEq
	And
	Or

	numKinds
)

// Family groups kinds by how they are rendered.
type Family int

const (
	Structural Family = iota
	Literal
	Keyword
	Symbol
)

func (f Family) String() string {
	switch f {
	case Structural:
		return "structural"
	case Literal:
		return "literal"
	case Keyword:
		return "keyword"
	case Symbol:
		return "symbol"
	}
	return "Family(?)"
}

type kindSpec struct {
	kind   Kind
	name   string
	family Family
	text   string // fixed source text; empty for literals
}

// kindSpecs is positional: entry i describes Kind(i).
var kindSpecs = [...]kindSpec{
	{Whitespace, "whitespace", Structural, " "},

	{Ident, "ident", Literal, ""},
	{IntLit, "int_lit", Literal, ""},
	{BoolLit, "bool_lit", Literal, ""},
	{StringLit, "string_lit", Literal, ""},

	{Fun, "fun", Keyword, "fun"},
	{If, "if", Keyword, "if"},
	{ElseIf, "else_if", Keyword, "else if"},
	{Else, "else", Keyword, "else"},
	{While, "while", Keyword, "while"},
	{Break, "break", Keyword, "break"},
	{Return, "return", Keyword, "return"},
	{True, "true", Keyword, "true"},
	{False, "false", Keyword, "false"},
	{Void, "void", Keyword, "void"},
	{IntType, "int", Keyword, "int"},
	{BooleanType, "boolean", Keyword, "boolean"},
	{StringType, "string", Keyword, "string"},

	{LParen, "lparen", Symbol, "("},
	{RParen, "rparen", Symbol, ")"},
	{LBrace, "lbrace", Symbol, "{"},
	{RBrace, "rbrace", Symbol, "}"},
	{Semi, "semi", Symbol, ";"},
	{Comma, "comma", Symbol, ","},
	{Add, "add", Symbol, "+"},
	{Sub, "sub", Symbol, "-"},
	{Mul, "mul", Symbol, "*"},
	{Div, "div", Symbol, "/"},
	{Mod, "mod", Symbol, "%"},
	{Gt, "gt", Symbol, ">"},
	{Lt, "lt", Symbol, "<"},
	{GtEq, "gt_eq", Symbol, ">="},
	{LtEq, "lt_eq", Symbol, "<="},
	{Assign, "assign", Symbol, "="},
	{Eq, "eq", Symbol, "=="},
	{Not, "not", Symbol, "!"},
	{NotEq, "not_eq", Symbol, "!="},
	{And, "and", Symbol, "&&"},
	{Or, "or", Symbol, "||"},
}

// A kind added anywhere in the const block without an entry here changes
// numKinds and leaves this table one short, so the assignment below stops
// type checking.
var _ [numKinds]kindSpec = kindSpecs

// Entries must follow the const order. Reordering or inserting a kind shifts
// these indices out of range and breaks the build until they are updated.
func _() {
	var x [1]struct{}
	_ = x[Whitespace-0]
	_ = x[Ident-1]
	_ = x[IntLit-2]
	_ = x[BoolLit-3]
	_ = x[StringLit-4]
	_ = x[Fun-5]
	_ = x[If-6]
	_ = x[ElseIf-7]
	_ = x[Else-8]
	_ = x[While-9]
	_ = x[Break-10]
	_ = x[Return-11]
	_ = x[True-12]
	_ = x[False-13]
	_ = x[Void-14]
	_ = x[IntType-15]
	_ = x[BooleanType-16]
	_ = x[StringType-17]
	_ = x[LParen-18]
	_ = x[RParen-19]
	_ = x[LBrace-20]
	_ = x[RBrace-21]
	_ = x[Semi-22]
	_ = x[Comma-23]
	_ = x[Add-24]
	_ = x[Sub-25]
	_ = x[Mul-26]
	_ = x[Div-27]
	_ = x[Mod-28]
	_ = x[Gt-29]
	_ = x[Lt-30]
	_ = x[GtEq-31]
	_ = x[LtEq-32]
	_ = x[Assign-33]
	_ = x[Eq-34]
	_ = x[Not-35]
	_ = x[NotEq-36]
	_ = x[And-37]
	_ = x[Or-38]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) valid() bool {
	return 0 <= k && k < numKinds
}

// String returns the stable name of the kind, e.g. "lparen" or "int_lit".
func (k Kind) String() string {
	if !k.valid() {
		return "Kind(?)"
	}
	return kindSpecs[k].name
}

// Text returns the fixed source text of the kind. Literal kinds have none.
func (k Kind) Text() string {
	if !k.valid() {
		return ""
	}
	return kindSpecs[k].text
}

func (k Kind) Family() Family {
	if !k.valid() {
		return Structural
	}
	return kindSpecs[k].family
}

func (k Kind) IsLiteral() bool { return k.Family() == Literal }
func (k Kind) IsKeyword() bool { return k.Family() == Keyword }
func (k Kind) IsSymbol() bool  { return k.Family() == Symbol }

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}
