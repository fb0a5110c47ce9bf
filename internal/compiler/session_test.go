package compiler

import (
	"bytes"
	"strings"
	"testing"
)

func newTestSession() (*Session, *bytes.Buffer) {
	var stderr bytes.Buffer
	return NewSession(&Options{Fold: true, Stderr: &stderr}), &stderr
}

func TestSession_Eval(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "7"},
		{"(1 + 2) * 3", "9"},
		{"-7 / 2", "-3"},
		{"1 << 4", "16"},
		{"3 < 4", "true"},
		{"!(1 == 1)", "false"},
		{"", ""},
	}

	s, stderr := newTestSession()
	for _, tt := range tests {
		got, ok := s.Eval(tt.input)
		if !ok {
			t.Errorf("Eval(%q) failed: %s", tt.input, stderr.String())
			continue
		}
		if got != tt.want {
			t.Errorf("Eval(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestSession_DeclarationsPersist(t *testing.T) {
	s, stderr := newTestSession()

	got, ok := s.Eval("var x : int = 2 + 3;")
	if !ok {
		t.Fatalf("Declaration failed: %s", stderr.String())
	}
	if got != "(var x int 5)" {
		t.Errorf("Expected folded declaration, got %q", got)
	}

	// A later line sees x, but a variable is not a constant.
	if _, ok := s.Eval("x + 1"); ok {
		t.Error("Expected evaluation of a variable to fail")
	}
	if !strings.Contains(stderr.String(), "not a constant expression") {
		t.Errorf("Expected not-constant diagnostic, got %s", stderr.String())
	}

	stderr.Reset()
	if _, ok := s.Eval("var x : bool = true;"); ok {
		t.Error("Expected redeclaration to fail")
	}
	if !strings.Contains(stderr.String(), "'x' is already declared") {
		t.Errorf("Expected redeclaration diagnostic, got %s", stderr.String())
	}
	if len(s.Decls()) != 2 {
		t.Errorf("Expected 2 declarations, got %d", len(s.Decls()))
	}
}

func TestSession_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 +", "invalid primary-expression"},
		{"1 2", "unexpected integer literal '2' after expression"},
		{"1 / 0", "division by zero in constant expression"},
		{"1 + true", "invalid operand"},
		{"y", "unresolved symbol 'y'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, stderr := newTestSession()
			if _, ok := s.Eval(tt.input); ok {
				t.Fatalf("Expected Eval(%q) to fail", tt.input)
			}
			out := stderr.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %q in diagnostics, got %s", tt.want, out)
			}
			if strings.Contains(out, "Compilation failed") {
				t.Errorf("Expected no summary line, got %s", out)
			}
		})
	}
}

func TestSession_ClearsDiagnosticsPerLine(t *testing.T) {
	s, stderr := newTestSession()
	if _, ok := s.Eval("1 +"); ok {
		t.Fatal("Expected first line to fail")
	}
	stderr.Reset()
	got, ok := s.Eval("40 + 2")
	if !ok || got != "42" {
		t.Errorf("Expected 42 after an error line, got %q (%s)", got, stderr.String())
	}
}

func TestIncomplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"1 + 2", false},
		{"(1 + 2", true},
		{"def f() -> int {", true},
		{"def f() -> int { return 1; }", false},
		{"def f() -> int { if (true) {", true},
		{")", false},
	}

	for _, tt := range tests {
		if got := Incomplete(tt.src); got != tt.want {
			t.Errorf("Incomplete(%q): expected %v, got %v", tt.src, tt.want, got)
		}
	}
}
