package frontend

// Parser holds a Scanner already primed with its first token and
// produces the AST via recursive descent for statements and Pratt parsing for
// expressions. Not safe for concurrent use.
type Parser struct {
	s *Scanner
}

// NewParser returns a Parser over an already-primed Scanner.
func NewParser(s *Scanner) *Parser {
	return &Parser{s: s}
}

// ---------------------
// ----- accessors -----
// ---------------------

func (p *Parser) cur() Token {
	return p.s.GetToken()
}

// advance scans past the current token and returns the new one.
func (p *Parser) advance() (Token, error) {
	return p.s.ScanToken()
}

func (p *Parser) curIsBasic(k BasicKind) bool {
	t := p.cur()
	return t.Kind == TokenBasic && t.Basic == k
}

// expectBasic consumes the current token if it is the Basic kind k, returning
// mkErr(got) otherwise.
func (p *Parser) expectBasic(k BasicKind, mkErr func(Token) error) error {
	if !p.curIsBasic(k) {
		return mkErr(p.cur())
	}
	_, err := p.advance()
	return err
}

// -----------------------------
// ----- top-level grammar -----
// -----------------------------

// ParseTopLevelStatement parses one function definition, or reports eof=true
// if the scanner is already at end-of-input.
func (p *Parser) ParseTopLevelStatement() (node *Node, eof bool, err error) {
	if p.cur().Kind == TokenEOF {
		return nil, true, nil
	}
	n, err := p.parseFunctionDefinition()
	return n, false, err
}

// parseFunctionDefinition parses:
//
//	int NAME '(' (int NAME (',' int NAME)*)? ')' BLOCK
func (p *Parser) parseFunctionDefinition() (*Node, error) {
	line, col := p.cur().Line, p.cur().Col
	if err := p.expectBasic(BasicInt, unexpectedTokenErr); err != nil {
		return nil, err
	}

	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expectBasic(BasicLParen, expectedParenErr(BasicLParen)); err != nil {
		return nil, err
	}

	var params []*Node
	if !p.curIsBasic(BasicRParen) {
		for {
			pline, pcol := p.cur().Line, p.cur().Col
			if err := p.expectBasic(BasicInt, unexpectedTokenErr); err != nil {
				return nil, err
			}
			pname, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			params = append(params, &Node{Kind: KindVariableDeclaration, Name: pname, Line: pline, Col: pcol})
			if p.curIsBasic(BasicComma) {
				if _, err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}

	if err := p.expectBasic(BasicRParen, expectedParenErr(BasicRParen)); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if body.Kind != KindBlock {
		return nil, &ErrUnexpectedToken{Got: p.cur(), Line: p.cur().Line, Col: p.cur().Col}
	}

	return &Node{Kind: KindFunctionDefinition, Name: name, Args: params, Body: body, Line: line, Col: col}, nil
}

// expectIdentifier consumes the current token if it is an Identifier, returning
// its name.
func (p *Parser) expectIdentifier() (string, error) {
	t := p.cur()
	if t.Kind != TokenIdentifier {
		return "", &ErrExpectedIdentifier{Got: t, Line: t.Line, Col: t.Col}
	}
	if _, err := p.advance(); err != nil {
		return "", err
	}
	return t.Name, nil
}

// ---------------------------
// ----- statement rules -----
// ---------------------------

// parseStatement dispatches on the current token.
func (p *Parser) parseStatement() (*Node, error) {
	t := p.cur()
	switch {
	case t.Kind == TokenBasic && t.Basic == BasicLBrace:
		return p.parseBlock()
	case t.Kind == TokenBasic && t.Basic == BasicInt:
		return p.parseVariableDeclaration()
	case t.Kind == TokenBasic && t.Basic == BasicPrint:
		return p.parsePrint()
	case t.Kind == TokenBasic && t.Basic == BasicIf:
		return p.parseConditional()
	case t.Kind == TokenBasic && t.Basic == BasicWhile:
		return p.parseWhileLoop()
	case t.Kind == TokenBasic && t.Basic == BasicReturn:
		return p.parseReturn()
	case t.Kind == TokenIdentifier:
		return p.parseAssignmentOrCallStatement()
	default:
		return nil, &ErrUnexpectedToken{Got: t, Line: t.Line, Col: t.Col}
	}
}

// parseBlock parses '{' statement* '}', allowing nested blocks.
func (p *Parser) parseBlock() (*Node, error) {
	line, col := p.cur().Line, p.cur().Col
	if _, err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	var stmts []*Node
	for !p.curIsBasic(BasicRBrace) {
		if p.cur().Kind == TokenEOF {
			return nil, &ErrUnexpectedEOF{}
		}
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.advance(); err != nil { // consume '}'
		return nil, err
	}
	return &Node{Kind: KindBlock, Statements: stmts, Line: line, Col: col}, nil
}

// parseVariableDeclaration parses 'int' Identifier ';'.
func (p *Parser) parseVariableDeclaration() (*Node, error) {
	line, col := p.cur().Line, p.cur().Col
	if _, err := p.advance(); err != nil { // consume 'int'
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return &Node{Kind: KindVariableDeclaration, Name: name, Line: line, Col: col}, nil
}

// parsePrint parses 'print' expression ';'.
func (p *Parser) parsePrint() (*Node, error) {
	line, col := p.cur().Line, p.cur().Col
	if _, err := p.advance(); err != nil { // consume 'print'
		return nil, err
	}
	e, err := p.parseExpression(PrecNone)
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return &Node{Kind: KindPrint, Expr: e, Line: line, Col: col}, nil
}

// parseConditional parses 'if' '(' expression ')' statement ('else' statement)?.
// The greedy else lookahead resolves the dangling-else ambiguity by binding
// 'else' to the nearest enclosing 'if'.
func (p *Parser) parseConditional() (*Node, error) {
	line, col := p.cur().Line, p.cur().Col
	if _, err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	if err := p.expectBasic(BasicLParen, expectedParenErr(BasicLParen)); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(PrecNone)
	if err != nil {
		return nil, err
	}
	if err := p.expectBasic(BasicRParen, expectedParenErr(BasicRParen)); err != nil {
		return nil, err
	}
	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var alternative *Node
	if p.curIsBasic(BasicElse) {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		alternative, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &Node{Kind: KindConditional, Expr: cond, Consequent: consequent, Alternative: alternative, Line: line, Col: col}, nil
}

// parseWhileLoop parses 'while' '(' expression ')' statement.
func (p *Parser) parseWhileLoop() (*Node, error) {
	line, col := p.cur().Line, p.cur().Col
	if _, err := p.advance(); err != nil { // consume 'while'
		return nil, err
	}
	if err := p.expectBasic(BasicLParen, expectedParenErr(BasicLParen)); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(PrecNone)
	if err != nil {
		return nil, err
	}
	if err := p.expectBasic(BasicRParen, expectedParenErr(BasicRParen)); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindWhileLoop, Expr: cond, Body: body, Line: line, Col: col}, nil
}

// parseReturn parses 'return' expression ';'.
func (p *Parser) parseReturn() (*Node, error) {
	line, col := p.cur().Line, p.cur().Col
	if _, err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	e, err := p.parseExpression(PrecNone)
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return &Node{Kind: KindReturn, Expr: e, Line: line, Col: col}, nil
}

// parseAssignmentOrCallStatement dispatches on the token immediately following
// the identifier to decide between an assignment statement and a function-call
// statement.
func (p *Parser) parseAssignmentOrCallStatement() (*Node, error) {
	t := p.cur()
	name, line, col := t.Name, t.Line, t.Col
	if _, err := p.advance(); err != nil { // consume identifier
		return nil, err
	}

	if p.curIsBasic(BasicLParen) {
		call, err := p.parseCallArgs(name, line, col)
		if err != nil {
			return nil, err
		}
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		return call, nil
	}

	if p.curIsBasic(BasicAssign) {
		if _, err := p.advance(); err != nil { // consume '='
			return nil, err
		}
		rhs, err := p.parseExpression(PrecNone)
		if err != nil {
			return nil, err
		}
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		lhs := NewIdentifier(name, line, col)
		return NewOperator(OpAssignment, lhs, rhs, line, col), nil
	}

	return nil, &ErrUnexpectedToken{Got: p.cur(), Line: p.cur().Line, Col: p.cur().Col}
}

// ----------------------------
// ----- expression rules -----
// ----------------------------

// parseExpression implements the Pratt loop. parentPrec is PrecNone at
// the top level, meaning "always exceed" since every real operator has a
// strictly higher precedence class than PrecNone.
func (p *Parser) parseExpression(parentPrec Precedence) (*Node, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		t := p.cur()
		if t.Kind != TokenBasic {
			break
		}
		op, ok := operationFromBasic(t.Basic)
		if !ok || op.Precedence() <= parentPrec {
			break
		}
		if _, err := p.advance(); err != nil { // consume operator
			return nil, err
		}
		right, err := p.parseExpression(op.Precedence())
		if err != nil {
			return nil, err
		}
		left = NewOperator(op, left, right, t.Line, t.Col)
	}
	return left, nil
}

// parseOperand parses a leaf: IntegerLiteral, Identifier, or a function call
// introduced by Identifier '('. No other prefix forms are accepted.
func (p *Parser) parseOperand() (*Node, error) {
	t := p.cur()
	switch t.Kind {
	case TokenInteger:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return NewIntegerLiteral(t.IntValue, t.Line, t.Col), nil
	case TokenIdentifier:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if p.curIsBasic(BasicLParen) {
			return p.parseCallArgs(t.Name, t.Line, t.Col)
		}
		return NewIdentifier(t.Name, t.Line, t.Col), nil
	default:
		return nil, &ErrExpectedOperand{Got: t, Line: t.Line, Col: t.Col}
	}
}

// parseCallArgs parses '(' (expression (',' expression)*)? ')', with the
// opening paren as the current token.
func (p *Parser) parseCallArgs(callee string, line, col int) (*Node, error) {
	if _, err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	var args []*Node
	if !p.curIsBasic(BasicRParen) {
		for {
			a, err := p.parseExpression(PrecNone)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.curIsBasic(BasicComma) {
				if _, err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectBasic(BasicRParen, expectedParenErr(BasicRParen)); err != nil {
		return nil, err
	}
	return &Node{Kind: KindFunctionCall, Name: callee, Args: args, Line: line, Col: col}, nil
}

// expectSemicolon consumes a trailing ';', leaving the scanner positioned on
// the next statement's first token.
func (p *Parser) expectSemicolon() error {
	return p.expectBasic(BasicSemicolon, func(got Token) error {
		return &ErrExpectedSemicolon{Got: got, Line: got.Line, Col: got.Col}
	})
}

func unexpectedTokenErr(got Token) error {
	return &ErrUnexpectedToken{Got: got, Line: got.Line, Col: got.Col}
}

func expectedParenErr(want BasicKind) func(Token) error {
	return func(got Token) error {
		return &ErrExpectedParen{Want: want, Got: got, Line: got.Line, Col: got.Col}
	}
}
