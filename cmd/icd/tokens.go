package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"icd/src/frontend"
)

// dumpTokens prints the token stream of src to stdout and returns, without
// invoking the parser or generator. Pure driver-level plumbing built
// directly on frontend.Scanner, with no scanning logic of its own.
func dumpTokens(src string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open source: %w", err)
	}
	defer f.Close()

	tw := tabwriter.NewWriter(os.Stdout, 4, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "line:col\ttoken")

	scanner := frontend.NewScanner(f)
	for {
		tok, err := scanner.ScanToken()
		if err != nil {
			_ = tw.Flush()
			return fmt.Errorf("scan error: %w", err)
		}
		if tok.Kind == frontend.TokenEOF {
			break
		}
		fmt.Fprintf(tw, "%d:%d\t%s\n", tok.Line, tok.Col, tok)
	}
	return tw.Flush()
}
