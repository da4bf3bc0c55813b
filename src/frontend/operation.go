package frontend

// Operation enumerates the binary operators the language supports. Each carries
// a Precedence class used by the Pratt expression parser and maps to/from a
// Basic token kind.
type Operation int

const (
	OpAssignment Operation = iota
	OpEqual
	OpNotEqual
	OpLessThan
	OpGreaterThan
	OpLessEqual
	OpGreaterEqual
	OpAddition
	OpSubtraction
	OpMultiplication
	OpDivision
	OpRemainder
)

// Precedence classes, strictly ordered:
// ASSIGNMENT < EQUALITY < INEQUALITY < ADDITIVE < MULTIPLICATIVE.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecEquality
	PrecInequality
	PrecAdditive
	PrecMultiplicative
)

var operationPrecedence = map[Operation]Precedence{
	OpAssignment:     PrecAssignment,
	OpEqual:          PrecEquality,
	OpNotEqual:       PrecEquality,
	OpLessThan:       PrecInequality,
	OpGreaterThan:    PrecInequality,
	OpLessEqual:      PrecInequality,
	OpGreaterEqual:   PrecInequality,
	OpAddition:       PrecAdditive,
	OpSubtraction:    PrecAdditive,
	OpMultiplication: PrecMultiplicative,
	OpDivision:       PrecMultiplicative,
	OpRemainder:      PrecMultiplicative,
}

// Precedence returns op's precedence class.
func (op Operation) Precedence() Precedence {
	return operationPrecedence[op]
}

// basicToOperation maps a Basic token kind to the Operation it denotes. BasicAssign
// is intentionally absent: per the open question recorded in DESIGN.md, assignment
// is recognized by the statement parser only, never by the expression parser's
// operator table, even though OpAssignment exists as an Operation for completeness.
var basicToOperation = map[BasicKind]Operation{
	BasicEqual:        OpEqual,
	BasicNotEqual:      OpNotEqual,
	BasicLess:          OpLessThan,
	BasicGreater:       OpGreaterThan,
	BasicLessEqual:     OpLessEqual,
	BasicGreaterEqual:  OpGreaterEqual,
	BasicPlus:          OpAddition,
	BasicMinus:         OpSubtraction,
	BasicStar:          OpMultiplication,
	BasicSlash:         OpDivision,
	BasicPercent:       OpRemainder,
}

// operationFromBasic returns the Operation an expression-position Basic token
// denotes, if any. Used by the Pratt loop in parser.go.
func operationFromBasic(k BasicKind) (Operation, bool) {
	op, ok := basicToOperation[k]
	return op, ok
}
