package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asutton/beaker-old/colors"
	"github.com/asutton/beaker-old/internal/compiler"
)

var CheckCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check one or more source files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, res := range compiler.CompileFiles(options(), args) {
			if !res.Success {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed to check", failed, len(args))
		}
		colors.GREEN.Fprintf(cmd.OutOrStdout(), "✓ %d file(s) checked\n", len(args))
		return nil
	},
}
