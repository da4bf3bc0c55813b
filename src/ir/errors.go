package ir

import (
	"fmt"

	"icd/src/frontend"
)

// Semantic errors.

type ErrUndefinedLocalSymbol struct {
	Name      string
	Line, Col int
}

func (e *ErrUndefinedLocalSymbol) Error() string {
	return fmt.Sprintf("%d:%d: undefined symbol %q", e.Line, e.Col, e.Name)
}

type ErrUndefinedGlobalFunction struct {
	Name      string
	Line, Col int
}

func (e *ErrUndefinedGlobalFunction) Error() string {
	return fmt.Sprintf("%d:%d: call to undefined function %q", e.Line, e.Col, e.Name)
}

type ErrSymbolIsNotAFunction struct {
	Name      string
	Line, Col int
}

func (e *ErrSymbolIsNotAFunction) Error() string {
	return fmt.Sprintf("%d:%d: %q is not a function", e.Line, e.Col, e.Name)
}

type ErrArityMismatch struct {
	Name           string
	Expected, Got  int
	Line, Col      int
}

func (e *ErrArityMismatch) Error() string {
	return fmt.Sprintf("%d:%d: %q expects %d argument(s), got %d", e.Line, e.Col, e.Name, e.Expected, e.Got)
}

type ErrUnsupportedConversion struct {
	FromBits, ToBits int
	Line, Col        int
}

func (e *ErrUnsupportedConversion) Error() string {
	return fmt.Sprintf("%d:%d: unsupported conversion from i%d to i%d", e.Line, e.Col, e.FromBits, e.ToBits)
}

type ErrOperationNotImplemented struct {
	Op        frontend.Operation
	Line, Col int
}

func (e *ErrOperationNotImplemented) Error() string {
	return fmt.Sprintf("%d:%d: operation not implemented: %v", e.Line, e.Col, e.Op)
}
