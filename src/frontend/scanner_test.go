package frontend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScannerBasicProgram verifies that the scanner tokenizes a small sample
// program into the expected token sequence: a manually transcribed slice of
// expected tokens checked against scanner output in order.
func TestScannerBasicProgram(t *testing.T) {
	src := "int add(int a, int b) {\n\treturn a + b;\n}\n"
	s := NewScanner(strings.NewReader(src))

	type expect struct {
		kind  TokenKind
		basic BasicKind
		name  string
		ival  int32
	}
	want := []expect{
		{kind: TokenBasic, basic: BasicInt},
		{kind: TokenIdentifier, name: "add"},
		{kind: TokenBasic, basic: BasicLParen},
		{kind: TokenBasic, basic: BasicInt},
		{kind: TokenIdentifier, name: "a"},
		{kind: TokenBasic, basic: BasicComma},
		{kind: TokenBasic, basic: BasicInt},
		{kind: TokenIdentifier, name: "b"},
		{kind: TokenBasic, basic: BasicRParen},
		{kind: TokenBasic, basic: BasicLBrace},
		{kind: TokenBasic, basic: BasicReturn},
		{kind: TokenIdentifier, name: "a"},
		{kind: TokenBasic, basic: BasicPlus},
		{kind: TokenIdentifier, name: "b"},
		{kind: TokenBasic, basic: BasicSemicolon},
		{kind: TokenBasic, basic: BasicRBrace},
	}

	for i1, e1 := range want {
		tok, err := s.ScanToken()
		require.NoErrorf(t, err, "token %d", i1)
		assert.Equalf(t, e1.kind, tok.Kind, "token %d kind", i1)
		switch e1.kind {
		case TokenBasic:
			assert.Equalf(t, e1.basic, tok.Basic, "token %d basic kind", i1)
		case TokenIdentifier:
			assert.Equalf(t, e1.name, tok.Name, "token %d identifier", i1)
		case TokenInteger:
			assert.Equalf(t, e1.ival, tok.IntValue, "token %d integer", i1)
		}
	}

	tok, err := s.ScanToken()
	require.NoError(t, err)
	assert.Equal(t, TokenEOF, tok.Kind)
}

// TestMaximalMunch verifies that multi-character operators scan as a single
// token rather than as two single-character ones.
func TestMaximalMunch(t *testing.T) {
	cases := []struct {
		src  string
		want BasicKind
	}{
		{"==", BasicEqual},
		{"!=", BasicNotEqual},
		{"<=", BasicLessEqual},
		{">=", BasicGreaterEqual},
	}
	for _, c1 := range cases {
		s := NewScanner(strings.NewReader(c1.src))
		tok, err := s.ScanToken()
		require.NoError(t, err)
		assert.Equal(t, TokenBasic, tok.Kind)
		assert.Equal(t, c1.want, tok.Basic)

		tok, err = s.ScanToken()
		require.NoError(t, err)
		assert.Equal(t, TokenEOF, tok.Kind, "expected a single token for %q", c1.src)
	}
}

// TestScannerIntegerLiteral verifies base-10 accumulation and put-back of the
// first non-digit character.
func TestScannerIntegerLiteral(t *testing.T) {
	s := NewScanner(strings.NewReader("1234;"))
	tok, err := s.ScanToken()
	require.NoError(t, err)
	assert.Equal(t, TokenInteger, tok.Kind)
	assert.Equal(t, int32(1234), tok.IntValue)

	tok, err = s.ScanToken()
	require.NoError(t, err)
	assert.Equal(t, TokenBasic, tok.Kind)
	assert.Equal(t, BasicSemicolon, tok.Basic)
}

// TestScannerSkipsCommentsAndWhitespace exercises whitespace, a line comment
// and end-of-input in one pass.
func TestScannerSkipsCommentsAndWhitespace(t *testing.T) {
	s := NewScanner(strings.NewReader("  // a comment\n\tx"))
	tok, err := s.ScanToken()
	require.NoError(t, err)
	assert.Equal(t, TokenIdentifier, tok.Kind)
	assert.Equal(t, "x", tok.Name)
}

// TestScannerUnexpectedCharacter verifies that a lone '!' (not part of '!=')
// is a scan error, since '!' has no standalone lexeme in the basic-token set.
func TestScannerUnexpectedCharacter(t *testing.T) {
	s := NewScanner(strings.NewReader("!x"))
	_, err := s.ScanToken()
	require.Error(t, err)
	var unexpected *ErrUnexpectedCharacter
	assert.ErrorAs(t, err, &unexpected)
}

// TestExpectTokenAtEOF exercises the expectToken/UnexpectedEOF contract.
func TestExpectTokenAtEOF(t *testing.T) {
	s := NewScanner(strings.NewReader(""))
	tok, err := s.ScanToken()
	require.NoError(t, err)
	require.Equal(t, TokenEOF, tok.Kind)

	_, err = s.ExpectToken()
	require.Error(t, err)
	var eof *ErrUnexpectedEOF
	assert.ErrorAs(t, err, &eof)
}

// TestPutBackStack verifies the put-back invariant:
// nextChar after putBack(x) returns x, and multiple put-backs unwind in LIFO
// order.
func TestPutBackStack(t *testing.T) {
	s := NewScanner(strings.NewReader("abc"))
	r1, err := s.nextChar()
	require.NoError(t, err)
	assert.Equal(t, 'a', r1)

	r2, err := s.nextChar()
	require.NoError(t, err)
	assert.Equal(t, 'b', r2)

	s.putBack(r2)
	s.putBack(r1)

	r3, err := s.nextChar()
	require.NoError(t, err)
	assert.Equal(t, 'a', r3, "nextChar after putBack should return the put-back rune")

	r4, err := s.nextChar()
	require.NoError(t, err)
	assert.Equal(t, 'b', r4)

	r5, err := s.nextChar()
	require.NoError(t, err)
	assert.Equal(t, 'c', r5)
}
