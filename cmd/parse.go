package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asutton/beaker-old/internal/compiler"
	"github.com/asutton/beaker-old/internal/frontend/ast"
)

var graph bool

var ParseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the checked tree of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := options()
		opts.Filename = args[0]
		res := compiler.Compile(opts)
		if res.Unit == nil {
			return errors.New("could not load " + args[0])
		}

		w := cmd.OutOrStdout()
		if graph {
			for _, d := range res.Unit.Decls {
				v, ok := d.(*ast.VariableDecl)
				if !ok || v.Init == nil {
					continue
				}
				if err := ast.WriteGraph(w, v.Name, v.Init); err != nil {
					return err
				}
			}
		} else {
			fmt.Fprint(w, ast.PrintUnit(res.Unit))
		}

		if !res.Success {
			return errors.New("check failed")
		}
		return nil
	},
}

func init() {
	ParseCmd.Flags().BoolVar(&graph, "graph", false, "write variable initializers as DOT graphs")
}
