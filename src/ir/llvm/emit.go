// Package llvm provides the Emitter: a thin syntactic writer for LLVM-IR
// text. It performs no validation and allocates no registers or labels —
// every value, register and label it is handed comes from the generator
// (package ir), which owns the SSA numbering discipline. Keep the counter
// and the emitter in one component, or expose the counter through a narrow
// interface; never let the Emitter allocate registers independently.
package llvm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Emitter writes LLVM-IR text to an underlying io.Writer. Not safe for
// concurrent use.
type Emitter struct {
	w *bufio.Writer
}

// NewEmitter wraps w in a buffered Emitter. Callers must call Flush when done.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// Flush empties any buffered output to the underlying writer.
func (e *Emitter) Flush() error {
	return e.w.Flush()
}

func (e *Emitter) line(format string, args ...interface{}) {
	fmt.Fprintf(e.w, format+"\n", args...)
}

func (e *Emitter) ins(format string, args ...interface{}) {
	e.line("\t"+format, args...)
}

// Preamble writes the fixed module header: source_filename, target triple and
// the print format constant.
func (e *Emitter) Preamble(sourceName string) {
	e.line("source_filename = %q", sourceName)
	e.line("target triple = \"x86_64-pc-linux-gnu\"")
	e.line("")
	e.line(`@print_int_fstring = private unnamed_addr constant [4 x i8] c"%%d\0A\00"`)
	e.line("")
}

// Postamble writes the printf declaration.
func (e *Emitter) Postamble() {
	e.line("declare i32 @printf(i8*, ...)")
}

// FuncStart writes a blank line and a function header of the form
// "define i32 @NAME(i32 %0, i32 %1, ...) {". It does not write the first
// block's label; the generator emits that through Label right afterwards.
func (e *Emitter) FuncStart(name string, paramRegs []string) {
	e.line("")
	params := make([]string, len(paramRegs))
	for i1, p := range paramRegs {
		params[i1] = "i32 " + p
	}
	e.line("define i32 @%s(%s) {", name, strings.Join(params, ", "))
}

// FuncEnd closes a function body.
func (e *Emitter) FuncEnd() {
	e.line("}")
}

// Label writes a basic block label definition. Labels are not indented.
func (e *Emitter) Label(name string) {
	e.line("%s:", name)
}

// Alloca writes a 32-bit stack slot allocation.
func (e *Emitter) Alloca(dst string) {
	e.ins("%s = alloca i32", dst)
}

// Store writes a 32-bit store of val into the pointer ptr.
func (e *Emitter) Store(val, ptr string) {
	e.ins("store i32 %s, i32* %s", val, ptr)
}

// Load writes a 32-bit load from the pointer ptr into dst.
func (e *Emitter) Load(dst, ptr string) {
	e.ins("%s = load i32, i32* %s", dst, ptr)
}

// Zext writes a 1-to-32-bit zero extension.
func (e *Emitter) Zext(dst, val string) {
	e.ins("%s = zext i1 %s to i32", dst, val)
}

// IcmpNeZero writes the 32-to-1-bit coercion: compare val against the 32-bit
// immediate 0.
func (e *Emitter) IcmpNeZero(dst, val string) {
	e.ins("%s = icmp ne i32 %s, 0", dst, val)
}

// Add/Sub/Mul carry "nsw"; SDiv/SRem do not — division/remainder by zero is
// undefined behavior and unchecked.

func (e *Emitter) Add(dst, a, b string) { e.ins("%s = add nsw i32 %s, %s", dst, a, b) }
func (e *Emitter) Sub(dst, a, b string) { e.ins("%s = sub nsw i32 %s, %s", dst, a, b) }
func (e *Emitter) Mul(dst, a, b string) { e.ins("%s = mul nsw i32 %s, %s", dst, a, b) }
func (e *Emitter) SDiv(dst, a, b string) { e.ins("%s = sdiv i32 %s, %s", dst, a, b) }
func (e *Emitter) SRem(dst, a, b string) { e.ins("%s = srem i32 %s, %s", dst, a, b) }

// Icmp writes a 32-bit integer comparison with the given LLVM mnemonic
// (eq, ne, slt, sgt, sle, sge), producing a 1-bit result.
func (e *Emitter) Icmp(mnemonic, dst, a, b string) {
	e.ins("%s = icmp %s i32 %s, %s", dst, mnemonic, a, b)
}

// Br writes an unconditional branch to a label.
func (e *Emitter) Br(label string) {
	e.ins("br label %s", label)
}

// CondBr writes a conditional branch on a 1-bit value.
func (e *Emitter) CondBr(cond, trueLabel, falseLabel string) {
	e.ins("br i1 %s, label %s, label %s", cond, trueLabel, falseLabel)
}

// Call writes a direct call to a user-defined function, all of whose
// parameters and return value are i32.
func (e *Emitter) Call(dst, callee string, args []string) {
	params := make([]string, len(args))
	for i1, a := range args {
		params[i1] = "i32 " + a
	}
	e.ins("%s = call i32 @%s(%s)", dst, callee, strings.Join(params, ", "))
}

// Printf writes a call to printf using the module's integer format string.
func (e *Emitter) Printf(dst, val string) {
	e.ins("%s = call i32(i8*, ...) @printf(i8* bitcast ([4 x i8]* @print_int_fstring to i8*), i32 %s)", dst, val)
}

// Ret writes a 32-bit return.
func (e *Emitter) Ret(val string) {
	e.ins("ret i32 %s", val)
}
