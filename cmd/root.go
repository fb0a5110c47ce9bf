package cmd

import (
	"github.com/spf13/cobra"

	"github.com/asutton/beaker-old/colors"
	"github.com/asutton/beaker-old/internal/compiler"
)

const version = "0.1.0"

var (
	debug   bool
	noColor bool
	noFold  bool
	compact bool
)

var rootCmd = &cobra.Command{
	Use:     "beaker",
	Short:   "Front end for the beaker language",
	Version: version,
	Long: `Beaker lexes, parses and type checks beaker source files.

Commands:
  check   Check one or more (.bk) source files
  tokens  Dump the tokens of a source file
  parse   Print the checked tree of a source file
  eval    Evaluate a constant expression
  repl    Evaluate expressions and declarations interactively
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		colors.SetEnabled(!noColor)
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

// options returns compiler options for the persistent flags.
func options() *compiler.Options {
	opts := compiler.DefaultOptions()
	opts.Debug = debug
	opts.Fold = !noFold
	opts.Compact = compact
	opts.Stderr = rootCmd.ErrOrStderr()
	return opts
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "trace compiler phases")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noFold, "no-fold", false, "keep variable initializers as written")
	rootCmd.PersistentFlags().BoolVar(&compact, "compact", false, "share equal leaves of variable initializers")

	rootCmd.AddCommand(CheckCmd, TokensCmd, ParseCmd, EvalCmd, ReplCmd)
}
