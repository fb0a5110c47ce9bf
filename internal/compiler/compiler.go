package compiler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/asutton/beaker-old/colors"
	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/frontend/ast"
	"github.com/asutton/beaker-old/internal/frontend/lexer"
	"github.com/asutton/beaker-old/internal/frontend/parser"
	"github.com/asutton/beaker-old/internal/phase"
	"github.com/asutton/beaker-old/internal/semantics/consteval"
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/tokens"
	"github.com/asutton/beaker-old/internal/types"
)

// Options for compilation
type Options struct {
	// For file-based compilation
	Filename string
	// For in-memory compilation. Filename, if set, names the buffer.
	Code string
	// Phase tracing on Stderr
	Debug bool
	// Reduce variable initializers to their smallest form
	Fold bool
	// Share equal leaves of each initializer after folding
	Compact bool

	// Diagnostics and phase tracing
	Stderr io.Writer
}

// DefaultOptions returns options with folding enabled, writing to the
// process's standard error.
func DefaultOptions() *Options {
	return &Options{Fold: true, Stderr: os.Stderr}
}

func (o *Options) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

func (o *Options) name() string {
	if o.Filename != "" {
		return o.Filename
	}
	return "<input>"
}

// Result of compilation
type Result struct {
	Success bool
	Phase   phase.Phase

	File        *source.File
	Tokens      []tokens.Token
	Unit        *ast.Unit
	Builder     *ast.Builder
	Diagnostics *diagnostics.DiagnosticBag
}

// Compile lexes, parses and checks one translation unit. Diagnostics are
// rendered to Stderr.
func Compile(opts *Options) Result {
	diag := diagnostics.NewDiagnosticBag()
	res := Result{Diagnostics: diag}
	w := opts.stderr()

	if opts.Debug {
		colors.CYAN.Fprintf(w, "\n[Phase 1] Load\n")
	}
	file, err := load(opts)
	if err != nil {
		diag.Add(diagnostics.NewError(err.Error()))
		diag.EmitAll(w)
		return res
	}
	res.File = file
	diag.AddSource(file)
	res.Phase.Advance(phase.PhaseLoaded)

	if opts.Debug {
		colors.CYAN.Fprintf(w, "\n[Phase 2] Lex\n")
	}
	res.Tokens = lexer.New(file.Name, file.Content, diag).Tokenize()
	res.Phase.Advance(phase.PhaseLexed)
	if opts.Debug {
		colors.PURPLE.Fprintf(w, "  ✓ %d tokens\n", len(res.Tokens))
	}

	if opts.Debug {
		colors.CYAN.Fprintf(w, "\n[Phase 3] Parse + Check\n")
	}
	res.Builder = NewBuilder(opts, diag)
	res.Unit = parser.Parse(res.Tokens, file.Name, res.Builder)
	res.Phase.Advance(phase.PhaseParsed)
	if opts.Debug {
		colors.PURPLE.Fprintf(w, "  ✓ %d declarations\n", len(res.Unit.Decls))
	}

	res.Success = !diag.HasErrors()
	if len(diag.Diagnostics()) > 0 {
		diag.EmitAll(w)
	}
	if opts.Debug && res.Success {
		colors.GREEN.Fprintf(w, "\n✓ Check successful! (%s)\n", file.Name)
	}
	return res
}

// NewBuilder returns a builder over a fresh type registry and arena whose
// fold hook follows opts.
func NewBuilder(opts *Options, diag *diagnostics.DiagnosticBag) *ast.Builder {
	b := ast.NewBuilder(types.NewRegistry(), ast.NewArena(), diag)
	switch {
	case opts.Fold && opts.Compact:
		b.Fold = func(e ast.Expression) ast.Expression {
			return consteval.Compact(b, consteval.Reduce(b, e))
		}
	case opts.Fold:
		b.Fold = consteval.Folder(b)
	case opts.Compact:
		b.Fold = func(e ast.Expression) ast.Expression {
			return consteval.Compact(b, e)
		}
	}
	return b
}

func load(opts *Options) (*source.File, error) {
	if opts.Code != "" || opts.Filename == "" {
		return source.NewFile(opts.name(), opts.Code), nil
	}
	return source.ReadFile(opts.Filename)
}

// CompileFiles compiles each file independently and concurrently, each with
// its own registry, scopes and diagnostics. Results are in input order and
// diagnostics are written to Stderr file by file in the same order.
func CompileFiles(opts *Options, files []string) []Result {
	results := make([]Result, len(files))
	outputs := make([]bytes.Buffer, len(files))

	var wg sync.WaitGroup
	for i, name := range files {
		i, name := i, name
		wg.Add(1)
		go func() {
			defer wg.Done()
			fileOpts := *opts
			fileOpts.Filename = name
			fileOpts.Code = ""
			fileOpts.Stderr = &outputs[i]
			results[i] = Compile(&fileOpts)
		}()
	}
	wg.Wait()

	w := opts.stderr()
	for i := range outputs {
		_, _ = outputs[i].WriteTo(w)
	}
	return results
}
