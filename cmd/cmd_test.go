package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.bk")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEvalCommand(t *testing.T) {
	out, err := run(t, "eval", "6", "*", "7")
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if strings.TrimSpace(out) != "42" {
		t.Errorf("Expected 42, got %q", out)
	}
}

func TestCheckCommand(t *testing.T) {
	good := writeSource(t, "var x : int = 1;\n")
	if _, err := run(t, "check", good); err != nil {
		t.Errorf("Expected check to pass, got %v", err)
	}

	bad := writeSource(t, "var x : int = true;\n")
	if _, err := run(t, "check", bad); err == nil {
		t.Error("Expected check to fail on a type error")
	}
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "var x : int = 2 * 3;\n")
	out, err := run(t, "parse", path)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if strings.TrimSpace(out) != "(var x int 6)" {
		t.Errorf("Expected folded tree, got %q", out)
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "var x")
	out, err := run(t, "tokens", path)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if !strings.Contains(out, "var") || !strings.Contains(out, "x") {
		t.Errorf("Expected token dump to mention var and x, got %q", out)
	}
}
