// Package util provides support for the cmd/icd driver: command line
// configuration and the debug logger.
package util

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Options holds the resolved command line configuration for a compiler run.
type Options struct {
	Src    []string // Paths to source files. Compiled independently into Out, in order.
	Out    string   // Path to the output LLVM-IR file.
	Debug  bool     // Emit a per-statement trace to stdout.
	Tokens bool     // Print the token stream of each source and exit, without parsing.
	Log    zerolog.Logger
}

// ---------------------
// ----- Constants -----
// ---------------------

const defaultOutfile = "out.ll"

// ---------------------
// ----- functions -----
// ---------------------

// NewCommand builds the cobra command that parses os.Args into an Options value
// and invokes run once, with every positional source path in Src. Flag parsing itself is the
// only responsibility of this function; it never touches the compiler core.
func NewCommand(run func(Options) error) *cobra.Command {
	opt := Options{Out: defaultOutfile}

	cmd := &cobra.Command{
		Use:   "icd [flags] FILE...",
		Short: "icd compiles a C subset to LLVM-IR",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.Src = args
			opt.Log = NewLogger(opt.Debug)
			return run(opt)
		},
	}

	cmd.Flags().BoolVarP(&opt.Debug, "debug", "d", false, "emit a per-statement trace to stdout")
	cmd.Flags().StringVarP(&opt.Out, "outfile", "o", defaultOutfile, "path to the output LLVM-IR file")
	cmd.Flags().BoolVar(&opt.Tokens, "tokens", false, "print the token stream of each source and exit")

	return cmd
}
