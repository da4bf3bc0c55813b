package frontend

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// TokenKind differentiates the closed set of token variants the scanner emits.
type TokenKind int

const (
	TokenEOF        TokenKind = iota // Sentinel: end of input.
	TokenInteger                     // IntegerLiteral(i32).
	TokenIdentifier                  // Identifier(name).
	TokenBasic                       // Basic(kind): a fixed-lexeme operator, separator or keyword.
)

// BasicKind enumerates the closed, fixed-lexeme token set: operators, separators
// and keywords. The set is closed; scanning a sequence that matches none of these
// and is not an integer or identifier is a scan error.
type BasicKind int

const (
	BasicPlus BasicKind = iota
	BasicMinus
	BasicStar
	BasicSlash
	BasicPercent
	BasicAssign
	BasicEqual
	BasicNotEqual
	BasicLess
	BasicGreater
	BasicLessEqual
	BasicGreaterEqual
	BasicComma
	BasicSemicolon
	BasicLParen
	BasicRParen
	BasicLBrace
	BasicRBrace
	BasicInt
	BasicPrint
	BasicIf
	BasicElse
	BasicWhile
	BasicReturn
)

// Token is the scanner's output unit. Exactly one of the fields below is
// meaningful for a given Kind: IntValue for TokenInteger, Name for
// TokenIdentifier, Basic for TokenBasic.
type Token struct {
	Kind     TokenKind
	IntValue int32
	Name     string
	Basic    BasicKind
	Line     int
	Col      int
}

// ---------------------
// ----- Constants -----
// ---------------------

// basicLexeme is a single entry in the closed basic-token table: a fixed
// lexeme string and the BasicKind it maps to.
type basicLexeme struct {
	text string
	kind BasicKind
}

// operatorLexemes holds the operator and separator tokens, longest-lexeme-first
// within each starting character so maximal munch never needs more than the
// "keep extending while some entry has this as a prefix" rule.
var operatorLexemes = []basicLexeme{
	{"==", BasicEqual},
	{"!=", BasicNotEqual},
	{"<=", BasicLessEqual},
	{">=", BasicGreaterEqual},
	{"+", BasicPlus},
	{"-", BasicMinus},
	{"*", BasicStar},
	{"/", BasicSlash},
	{"%", BasicPercent},
	{"=", BasicAssign},
	{"<", BasicLess},
	{">", BasicGreater},
	{",", BasicComma},
	{";", BasicSemicolon},
	{"(", BasicLParen},
	{")", BasicRParen},
	{"{", BasicLBrace},
	{"}", BasicRBrace},
}

// keywordLexemes holds the reserved words. A word that scans as a letter/digit/'_'
// run is looked up here; no match means it is a plain Identifier.
var keywordLexemes = map[string]BasicKind{
	"int":    BasicInt,
	"print":  BasicPrint,
	"if":     BasicIf,
	"else":   BasicElse,
	"while":  BasicWhile,
	"return": BasicReturn,
}

var basicText = func() map[BasicKind]string {
	m := make(map[BasicKind]string, len(operatorLexemes)+len(keywordLexemes))
	for _, e1 := range operatorLexemes {
		m[e1.kind] = e1.text
	}
	for k, v := range keywordLexemes {
		m[v] = k
	}
	return m
}()

// ----------------------
// ----- functions ------
// ----------------------

// String returns a print-friendly representation of the token, used by error
// messages and the --tokens driver mode.
func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "EOF"
	case TokenInteger:
		return fmt.Sprintf("%d", t.IntValue)
	case TokenIdentifier:
		return fmt.Sprintf("%q", t.Name)
	case TokenBasic:
		return basicText[t.Basic]
	default:
		return "<unknown token>"
	}
}

// isPrefixOfBasicLexeme reports whether s is a proper prefix of some operator or
// separator lexeme (not an exact match), which is what drives the scanner's
// maximal-munch extension loop.
func isPrefixOfBasicLexeme(s string) bool {
	for _, e1 := range operatorLexemes {
		if len(e1.text) > len(s) && e1.text[:len(s)] == s {
			return true
		}
	}
	return false
}

// matchBasicLexeme returns the BasicKind whose lexeme is exactly s, if any.
func matchBasicLexeme(s string) (BasicKind, bool) {
	for _, e1 := range operatorLexemes {
		if e1.text == s {
			return e1.kind, true
		}
	}
	return 0, false
}

// lookupKeyword returns the BasicKind of word if it is a reserved keyword.
func lookupKeyword(word string) (BasicKind, bool) {
	k, ok := keywordLexemes[word]
	return k, ok
}
