package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asutton/beaker-old/internal/compiler"
)

var EvalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a constant expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, ok := compiler.NewSession(options()).Eval(strings.Join(args, " "))
		if !ok {
			return errors.New("evaluation failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
