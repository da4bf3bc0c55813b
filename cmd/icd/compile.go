package main

import (
	"fmt"
	"os"

	"icd/src/frontend"
	"icd/src/ir"
	"icd/src/util"
)

// compileFile runs one source file through scanner -> parser -> generator and
// writes the resulting LLVM-IR to opt.Out, truncating it first so the last
// compiled file in a multi-file invocation determines the final contents.
func compileFile(src string, opt util.Options) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open output: %w", err)
	}
	defer out.Close()

	scanner := frontend.NewScanner(in)
	if _, err := scanner.ScanToken(); err != nil { // prime with first token
		return fmt.Errorf("scan error: %w", err)
	}
	parser := frontend.NewParser(scanner)

	gen := ir.NewGenerator(out, opt.Log)
	if err := gen.Generate(parser, src); err != nil {
		return fmt.Errorf("compile error: %w", err)
	}

	opt.Log.Debug().Str("component", "driver").Str("file", src).Msg("compiled")
	return nil
}
