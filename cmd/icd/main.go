// Command icd compiles the C subset described by the compiler core
// (icd/src/frontend, icd/src/ir) to LLVM-IR text. Argument parsing and file IO
// are this command's job, not the core's. It writes the .ll output file only;
// it does not invoke the LLVM assembler or linker.
package main

import (
	"fmt"
	"os"

	"icd/src/util"
)

func main() {
	cmd := util.NewCommand(runAll)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "icd: %s\n", err)
		os.Exit(1)
	}
}

// runAll compiles every source path in opt.Src, independently, into the same
// output file: later files overwrite earlier ones.
func runAll(opt util.Options) error {
	if opt.Tokens {
		for _, src := range opt.Src {
			if err := dumpTokens(src); err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
		}
		return nil
	}

	var errs []error
	for _, src := range opt.Src {
		if err := compileFile(src, opt); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src, err))
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
