// Package ir implements the Generator: single-pass, tree-directed AST-to-
// LLVM-IR translation, lightweight semantic analysis, symbol management and
// virtual register/label allocation. The actual instruction text is
// produced by the thin ir/llvm Emitter; this package owns every numbering
// decision the Emitter writes out verbatim.
package ir

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"icd/src/frontend"
	"icd/src/ir/llvm"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Generator holds the per-function and persistent translation state: register
// and label counters (reset per function), a local symbol table (cleared
// between functions) and a global symbol table of function symbols
// (persistent, so recursive calls resolve). Not safe for concurrent use.
type Generator struct {
	emit *llvm.Emitter
	log  zerolog.Logger

	nextRegisterNumber uint32
	nextLabelNumber    uint32

	locals  *SymbolTable[*Symbol]
	globals *SymbolTable[*FunctionSymbol]
}

// NewGenerator returns a Generator that writes LLVM-IR text to w.
func NewGenerator(w io.Writer, log zerolog.Logger) *Generator {
	return &Generator{
		emit:    llvm.NewEmitter(w),
		log:     log,
		locals:  NewSymbolTable[*Symbol](),
		globals: NewSymbolTable[*FunctionSymbol](),
	}
}

// ---------------------------
// ----- driver contract -----
// ---------------------------

// Generate consumes top-level statements from p until end-of-input, emitting
// the fixed preamble before the first and the postamble after the last.
// sourceName is recorded in the module's source_filename directive.
func (g *Generator) Generate(p *frontend.Parser, sourceName string) error {
	g.emit.Preamble(sourceName)

	for {
		node, eof, err := p.ParseTopLevelStatement()
		if err != nil {
			return err
		}
		if eof {
			break
		}
		if err := g.genFunctionDefinition(node); err != nil {
			return err
		}
	}

	g.emit.Postamble()
	return g.emit.Flush()
}

// ---------------------------------
// ----- register/label alloc -----
// ---------------------------------

// newRegister allocates a fresh anonymous register, consuming the next
// strictly-increasing numeric identifier.
func (g *Generator) newRegister(bits int) Value {
	id := fmt.Sprintf("%d", g.nextRegisterNumber)
	g.nextRegisterNumber++
	return NewRegister(id, bits)
}

// newNamedRegister returns a named register (e.g. a local variable's stack
// slot) without consuming a numeric identifier: named and numbered registers
// share LLVM's namespace but this generator never mixes the two for the same
// slot.
func (g *Generator) newNamedRegister(name string, bits int) Value {
	return NewRegister(name, bits)
}

// newLabel allocates a fresh basic-block label. Label identifiers follow an
// independent sequence from register numbers.
func (g *Generator) newLabel() Label {
	id := fmt.Sprintf(".block.%d", g.nextLabelNumber)
	g.nextLabelNumber++
	return Label{id: id}
}

// convertValueType implements the implicit boolean/integer coercion rules:
// identity if the bit counts already match, zext for 1->32, icmp ne 0 for
// 32->1. Any other combination is an ErrUnsupportedConversion (none exist in
// this language, but the check stays explicit rather than assumed).
func (g *Generator) convertValueType(v Value, targetBits, line, col int) (Value, error) {
	if v.Bits() == targetBits {
		return v, nil
	}
	switch {
	case v.Bits() == 1 && targetBits == 32:
		dst := g.newRegister(32)
		g.emit.Zext(dst.String(), v.String())
		return dst, nil
	case v.Bits() == 32 && targetBits == 1:
		dst := g.newRegister(1)
		g.emit.IcmpNeZero(dst.String(), v.String())
		return dst, nil
	default:
		return Value{}, &ErrUnsupportedConversion{FromBits: v.Bits(), ToBits: targetBits, Line: line, Col: col}
	}
}

// --------------------------------
// ----- function definitions -----
// --------------------------------

// genFunctionDefinition translates a function definition: fresh register and
// label counters, a cleared local scope, then the parameter bindings,
// preamble and body.
func (g *Generator) genFunctionDefinition(n *frontend.Node) error {
	g.log.Debug().Str("component", "generator").Str("node", "FunctionDefinition").
		Str("name", n.Name).Int("line", n.Line).Msg("generating function")

	g.nextRegisterNumber = 0
	g.nextLabelNumber = 0
	g.locals.Clear()

	// Parameter value registers consume the first len(n.Args) numeric ids,
	// in declaration order, before anything else in the function body.
	paramRegs := make([]Value, len(n.Args))
	paramStrs := make([]string, len(n.Args))
	for i1 := range n.Args {
		r := g.newRegister(32)
		paramRegs[i1] = r
		paramStrs[i1] = r.String()
	}

	// Inserted before body generation, so recursive calls resolve.
	g.globals.Insert(n.Name, &FunctionSymbol{
		Symbol:         Symbol{Name: n.Name, Register: NewGlobalRegister(n.Name, 32)},
		ParameterCount: len(n.Args),
	})

	g.emit.FuncStart(n.Name, paramStrs)

	entry := g.newLabel()
	g.emit.Label(entry.Def())

	for i1, param := range n.Args {
		slot := g.newNamedRegister(param.Name, 32)
		g.emit.Alloca(slot.String())
		g.emit.Store(paramRegs[i1].String(), slot.String())
		g.locals.Insert(param.Name, &Symbol{Name: param.Name, Register: slot})
	}

	if err := g.genStatement(n.Body); err != nil {
		return err
	}

	g.emit.FuncEnd()
	g.locals.Clear()
	return nil
}

// -----------------------
// ----- statements -----
// -----------------------

// genStatement dispatches on n.Kind, tree-directed translation of a single
// statement node into the instructions it requires.
func (g *Generator) genStatement(n *frontend.Node) error {
	g.log.Debug().Str("component", "generator").Str("node", kindName(n.Kind)).
		Int("line", n.Line).Msg("generating statement")

	switch n.Kind {
	case frontend.KindBlock:
		for _, s := range n.Statements {
			if err := g.genStatement(s); err != nil {
				return err
			}
		}
		return nil

	case frontend.KindVariableDeclaration:
		slot := g.newNamedRegister(n.Name, 32)
		g.emit.Alloca(slot.String())
		g.locals.Insert(n.Name, &Symbol{Name: n.Name, Register: slot})
		return nil

	case frontend.KindPrint:
		v, err := g.genExpr(n.Expr)
		if err != nil {
			return err
		}
		v, err = g.convertValueType(v, 32, n.Line, n.Col)
		if err != nil {
			return err
		}
		dst := g.newRegister(32)
		g.emit.Printf(dst.String(), v.String())
		return nil

	case frontend.KindConditional:
		return g.genConditional(n)

	case frontend.KindWhileLoop:
		return g.genWhileLoop(n)

	case frontend.KindReturn:
		v, err := g.genExpr(n.Expr)
		if err != nil {
			return err
		}
		v, err = g.convertValueType(v, 32, n.Line, n.Col)
		if err != nil {
			return err
		}
		g.emit.Ret(v.String())
		// Reserve the numeric slot LLVM implicitly allocates for the
		// synthetic unreachable block following any terminator.
		g.nextRegisterNumber++
		return nil

	case frontend.KindOperator, frontend.KindFunctionCall:
		// Assignment statement or function-call statement: both are valid
		// expressions whose value is discarded at statement level.
		_, err := g.genExpr(n)
		return err

	default:
		return &ErrOperationNotImplemented{Line: n.Line, Col: n.Col}
	}
}

// genConditional translates an if/else, branching on the (coerced-to-i1)
// condition value.
func (g *Generator) genConditional(n *frontend.Node) error {
	cond, err := g.genExpr(n.Expr)
	if err != nil {
		return err
	}
	cond, err = g.convertValueType(cond, 1, n.Line, n.Col)
	if err != nil {
		return err
	}

	if n.Alternative == nil {
		consequent := g.newLabel()
		tail := g.newLabel()
		g.emit.CondBr(cond.String(), consequent.Ref(), tail.Ref())
		g.emit.Label(consequent.Def())
		if err := g.genStatement(n.Consequent); err != nil {
			return err
		}
		g.emit.Br(tail.Ref())
		g.emit.Label(tail.Def())
		return nil
	}

	consequent := g.newLabel()
	alternative := g.newLabel()
	tail := g.newLabel()
	g.emit.CondBr(cond.String(), consequent.Ref(), alternative.Ref())
	g.emit.Label(consequent.Def())
	if err := g.genStatement(n.Consequent); err != nil {
		return err
	}
	g.emit.Br(tail.Ref())
	g.emit.Label(alternative.Def())
	if err := g.genStatement(n.Alternative); err != nil {
		return err
	}
	g.emit.Br(tail.Ref())
	g.emit.Label(tail.Def())
	return nil
}

// genWhileLoop translates a while loop into the four-block preheader/
// condition/body/tail shape.
func (g *Generator) genWhileLoop(n *frontend.Node) error {
	continueLabel := g.newLabel()
	bodyLabel := g.newLabel()
	breakLabel := g.newLabel()

	g.emit.Br(continueLabel.Ref())
	g.emit.Label(continueLabel.Def())

	cond, err := g.genExpr(n.Expr)
	if err != nil {
		return err
	}
	cond, err = g.convertValueType(cond, 1, n.Line, n.Col)
	if err != nil {
		return err
	}
	g.emit.CondBr(cond.String(), bodyLabel.Ref(), breakLabel.Ref())

	g.emit.Label(bodyLabel.Def())
	if err := g.genStatement(n.Body); err != nil {
		return err
	}
	g.emit.Br(continueLabel.Ref())

	g.emit.Label(breakLabel.Def())
	return nil
}

// ------------------------
// ----- expressions -----
// ------------------------

// genExpr generates a value-producing node in post-order. Assignment returns
// the zero Value (its callers discard it; it is only ever a statement in
// this grammar).
func (g *Generator) genExpr(n *frontend.Node) (Value, error) {
	switch n.Kind {
	case frontend.KindIntegerLiteral:
		return ImmediateInt32(n.IntValue), nil

	case frontend.KindIdentifier:
		sym, ok := g.locals.Find(n.Name)
		if !ok {
			return Value{}, &ErrUndefinedLocalSymbol{Name: n.Name, Line: n.Line, Col: n.Col}
		}
		dst := g.newRegister(32)
		g.emit.Load(dst.String(), sym.Register.String())
		return dst, nil

	case frontend.KindOperator:
		return g.genOperator(n)

	case frontend.KindFunctionCall:
		return g.genFunctionCall(n)

	default:
		return Value{}, &ErrOperationNotImplemented{Line: n.Line, Col: n.Col}
	}
}

func (g *Generator) genOperator(n *frontend.Node) (Value, error) {
	if n.Op == frontend.OpAssignment {
		lhs := n.Operands[0]
		sym, ok := g.locals.Find(lhs.Name)
		if !ok {
			return Value{}, &ErrUndefinedLocalSymbol{Name: lhs.Name, Line: lhs.Line, Col: lhs.Col}
		}
		rhs, err := g.genExpr(n.Operands[1])
		if err != nil {
			return Value{}, err
		}
		rhs, err = g.convertValueType(rhs, 32, n.Line, n.Col)
		if err != nil {
			return Value{}, err
		}
		g.emit.Store(rhs.String(), sym.Register.String())
		return Value{}, nil
	}

	a, err := g.genExpr(n.Operands[0])
	if err != nil {
		return Value{}, err
	}
	a, err = g.convertValueType(a, 32, n.Line, n.Col)
	if err != nil {
		return Value{}, err
	}
	b, err := g.genExpr(n.Operands[1])
	if err != nil {
		return Value{}, err
	}
	b, err = g.convertValueType(b, 32, n.Line, n.Col)
	if err != nil {
		return Value{}, err
	}

	if mnemonic, ok := cmpMnemonics[n.Op]; ok {
		dst := g.newRegister(1)
		g.emit.Icmp(mnemonic, dst.String(), a.String(), b.String())
		return dst, nil
	}

	dst := g.newRegister(32)
	switch n.Op {
	case frontend.OpAddition:
		g.emit.Add(dst.String(), a.String(), b.String())
	case frontend.OpSubtraction:
		g.emit.Sub(dst.String(), a.String(), b.String())
	case frontend.OpMultiplication:
		g.emit.Mul(dst.String(), a.String(), b.String())
	case frontend.OpDivision:
		g.emit.SDiv(dst.String(), a.String(), b.String())
	case frontend.OpRemainder:
		g.emit.SRem(dst.String(), a.String(), b.String())
	default:
		return Value{}, &ErrOperationNotImplemented{Op: n.Op, Line: n.Line, Col: n.Col}
	}
	return dst, nil
}

var cmpMnemonics = map[frontend.Operation]string{
	frontend.OpEqual:        "eq",
	frontend.OpNotEqual:     "ne",
	frontend.OpLessThan:     "slt",
	frontend.OpGreaterThan:  "sgt",
	frontend.OpLessEqual:    "sle",
	frontend.OpGreaterEqual: "sge",
}

func (g *Generator) genFunctionCall(n *frontend.Node) (Value, error) {
	fn, ok := g.globals.Find(n.Name)
	if !ok {
		return Value{}, &ErrUndefinedGlobalFunction{Name: n.Name, Line: n.Line, Col: n.Col}
	}
	if fn.ParameterCount != len(n.Args) {
		return Value{}, &ErrArityMismatch{Name: n.Name, Expected: fn.ParameterCount, Got: len(n.Args), Line: n.Line, Col: n.Col}
	}

	args := make([]string, len(n.Args))
	for i1, a := range n.Args {
		v, err := g.genExpr(a)
		if err != nil {
			return Value{}, err
		}
		v, err = g.convertValueType(v, 32, a.Line, a.Col)
		if err != nil {
			return Value{}, err
		}
		args[i1] = v.String()
	}

	dst := g.newRegister(32)
	g.emit.Call(dst.String(), n.Name, args)
	return dst, nil
}

// kindName gives a print-friendly name to a Kind, for debug trace logging
// only.
func kindName(k frontend.Kind) string {
	switch k {
	case frontend.KindIntegerLiteral:
		return "IntegerLiteral"
	case frontend.KindIdentifier:
		return "Identifier"
	case frontend.KindOperator:
		return "Operator"
	case frontend.KindFunctionCall:
		return "FunctionCall"
	case frontend.KindBlock:
		return "Block"
	case frontend.KindVariableDeclaration:
		return "VariableDeclaration"
	case frontend.KindPrint:
		return "Print"
	case frontend.KindConditional:
		return "Conditional"
	case frontend.KindWhileLoop:
		return "WhileLoop"
	case frontend.KindReturn:
		return "Return"
	case frontend.KindFunctionDefinition:
		return "FunctionDefinition"
	default:
		return "<unknown>"
	}
}
