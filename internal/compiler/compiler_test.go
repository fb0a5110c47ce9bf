package compiler

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asutton/beaker-old/colors"
	"github.com/asutton/beaker-old/internal/frontend/ast"
	"github.com/asutton/beaker-old/internal/phase"
	"github.com/asutton/beaker-old/internal/semantics/consteval"
)

func init() {
	colors.SetEnabled(false)
}

func TestCompile_InMemorySimpleCode(t *testing.T) {
	var stderr bytes.Buffer
	opts := &Options{Code: "var x : int = 42;", Fold: true, Stderr: &stderr}

	result := Compile(opts)

	if !result.Success {
		t.Errorf("Expected successful compilation, got failure: %s", stderr.String())
	}
	if result.Phase != phase.PhaseParsed {
		t.Errorf("Expected phase Parsed, got %s", result.Phase)
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected no output, got %q", stderr.String())
	}
}

func TestCompile_InMemoryWithSyntaxError(t *testing.T) {
	var stderr bytes.Buffer
	opts := &Options{Code: "var x : int = ;", Filename: "bad.bk", Stderr: &stderr}

	result := Compile(opts)

	if result.Success {
		t.Error("Expected compilation failure for syntax error")
	}
	out := stderr.String()
	if !strings.Contains(out, "error[P0003]: invalid primary-expression") {
		t.Errorf("Expected rendered diagnostic, got %q", out)
	}
	if !strings.Contains(out, "--> bad.bk:1:15") {
		t.Errorf("Expected location line, got %q", out)
	}
	if !strings.Contains(out, "Compilation failed with 1 error(s)") {
		t.Errorf("Expected summary, got %q", out)
	}
}

func TestCompile_FoldsInitializers(t *testing.T) {
	opts := &Options{
		Code: `var x : int = 2;
var y : int = x + 3 * 4;
var z : bool = 1 < 2;`,
		Fold:   true,
		Stderr: &bytes.Buffer{},
	}

	result := Compile(opts)
	if !result.Success {
		t.Fatal("Expected successful compilation")
	}

	want := "(var x int 2)\n(var y int (+ x 12))\n(var z bool true)\n"
	if got := ast.PrintUnit(result.Unit); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestCompile_NoFold(t *testing.T) {
	opts := &Options{Code: "var y : int = 3 * 4;", Stderr: &bytes.Buffer{}}

	result := Compile(opts)
	if got := ast.PrintUnit(result.Unit); got != "(var y int (* 3 4))\n" {
		t.Errorf("Expected unfolded initializer, got %q", got)
	}
}

func TestCompile_Compact(t *testing.T) {
	opts := &Options{
		Code:    "var x : int = 1; var y : int = x * x;",
		Compact: true,
		Stderr:  &bytes.Buffer{},
	}

	result := Compile(opts)
	if !result.Success {
		t.Fatal("Expected successful compilation")
	}
	y := result.Unit.Decls[1].(*ast.VariableDecl)
	mul := y.Init.(*ast.BinaryExpr)
	if mul.X != mul.Y {
		t.Error("Expected both operands to share one node")
	}
}

func TestCompile_EvaluateEndToEnd(t *testing.T) {
	opts := &Options{Code: "var v : int = 1 + 2 * 3;", Stderr: &bytes.Buffer{}}

	result := Compile(opts)
	v := result.Unit.Decls[0].(*ast.VariableDecl)
	if got := consteval.Evaluate(v.Init, result.Diagnostics); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
}

func TestCompile_DebugTracing(t *testing.T) {
	var stderr bytes.Buffer
	opts := &Options{Code: "var x : int = 1;", Debug: true, Stderr: &stderr}

	Compile(opts)

	out := stderr.String()
	for _, want := range []string{"[Phase 1] Load", "[Phase 2] Lex", "[Phase 3] Parse + Check", "✓ 1 declarations"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected trace to contain %q, got %q", want, out)
		}
	}
}

func TestCompile_FileNotFound(t *testing.T) {
	var stderr bytes.Buffer
	opts := &Options{Filename: filepath.Join(t.TempDir(), "missing.bk"), Stderr: &stderr}

	result := Compile(opts)

	if result.Success {
		t.Error("Expected failure for missing file")
	}
	if result.Phase != phase.PhaseNotStarted {
		t.Errorf("Expected phase NotStarted, got %s", result.Phase)
	}
	if !strings.Contains(stderr.String(), "reading source") {
		t.Errorf("Expected read error, got %q", stderr.String())
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestCompileFiles(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "a.bk", "var a : int = 1;"),
		writeFile(t, dir, "b.bk", "var b : int = true;"),
		writeFile(t, dir, "c.bk", "def f() -> bool { return true; }"),
	}

	var stderr bytes.Buffer
	results := CompileFiles(&Options{Fold: true, Stderr: &stderr}, files)

	if len(results) != len(files) {
		t.Fatalf("Expected %d results, got %d", len(files), len(results))
	}
	wantSuccess := []bool{true, false, true}
	for i, r := range results {
		if r.Success != wantSuccess[i] {
			t.Errorf("File %s: expected success=%v, got %v", files[i], wantSuccess[i], r.Success)
		}
		if r.File == nil || r.File.Name != files[i] {
			t.Errorf("Expected result %d to belong to %s", i, files[i])
		}
	}
	if !strings.Contains(stderr.String(), "type mismatch in initializer") {
		t.Errorf("Expected diagnostics from b.bk, got %q", stderr.String())
	}
}

func TestCompileFiles_SeparateState(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "one.bk", "var x : int = 1;"),
		writeFile(t, dir, "two.bk", "var x : bool = true;"),
	}

	results := CompileFiles(&Options{Stderr: &bytes.Buffer{}}, files)
	for i, r := range results {
		if !r.Success {
			t.Errorf("Expected %s to compile on its own, got %v", files[i], r.Diagnostics.Messages())
		}
	}
}
