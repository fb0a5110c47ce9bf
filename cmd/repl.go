package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/asutton/beaker-old/colors"
	"github.com/asutton/beaker-old/internal/compiler"
)

const (
	historyFile = ".beaker_history"
	promptMain  = "beaker> "
	promptCont  = "   ...> "
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions and declarations interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repl(cmd.OutOrStdout())
	},
}

func repl(w io.Writer) {
	colors.BOLD_BLUE.Fprintf(w, "beaker %s. Type :quit to exit.\n", version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	session := compiler.NewSession(options())
	for {
		code, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(w)
			return
		}

		trimmed := strings.TrimSpace(code)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return
			default:
				fmt.Fprintln(w, "unknown command. Type :quit to exit.")
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if out, ok := session.Eval(code); ok && out != "" {
			colors.GREEN.Fprintln(w, out)
		}
	}
}

// readInput reads lines until every parenthesis and brace is closed.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if src := b.String(); !compiler.Incomplete(src) {
			return src, true
		}
	}
}
