package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/frontend/lexer"
	"github.com/asutton/beaker-old/internal/source"
)

var TokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the tokens of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := source.ReadFile(args[0])
		if err != nil {
			return err
		}
		diag := diagnostics.NewDiagnosticBag()
		diag.AddSource(file)

		lex := lexer.New(file.Name, file.Content, diag)
		lex.Tokenize()
		lex.Dump(cmd.OutOrStdout())

		if diag.HasErrors() {
			diag.EmitAll(cmd.ErrOrStderr())
			return errors.New("lexing failed")
		}
		return nil
	},
}
