package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunScriptPrintsStatusAndResult(t *testing.T) {
	scriptPath := writeScript(t, "+ 1 2")

	var out bytes.Buffer
	if err := runScript(rcFile{}, scriptPath, &out); err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if got := out.String(); got != "ok 3\n" {
		t.Fatalf("output = %q, want \"ok 3\\n\"", got)
	}
}

func TestRunScriptSilentWhenResultEmpty(t *testing.T) {
	scriptPath := writeScript(t, "puts hi")

	var out bytes.Buffer
	if err := runScript(rcFile{}, scriptPath, &out); err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if got := out.String(); got != "hi\n" {
		t.Fatalf("output = %q, want puts output only", got)
	}
}

func TestRunScriptReportsEvalError(t *testing.T) {
	scriptPath := writeScript(t, "nosuch 1 2")

	var out bytes.Buffer
	if err := runScript(rcFile{}, scriptPath, &out); err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if got := out.String(); got != "err Unknown command nosuch\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestRunScriptHonorsRecursionLimit(t *testing.T) {
	scriptPath := writeScript(t, "proc loop {} { loop }; loop")

	var out bytes.Buffer
	if err := runScript(rcFile{RecursionLimit: 16}, scriptPath, &out); err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if !strings.Contains(out.String(), "Too many nested evaluations") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunScriptMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runScript(rcFile{}, filepath.Join(t.TempDir(), "absent.pcl"), &out)
	if err == nil {
		t.Fatalf("expected read error")
	}
	if !strings.Contains(err.Error(), "read script") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIExecutesScriptArgument(t *testing.T) {
	scriptPath := writeScript(t, `set greeting hello; puts $greeting`)

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"picol", scriptPath})
	})
	if err != nil {
		t.Fatalf("runCLI failed: %v", err)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRunCLIRejectsExtraArguments(t *testing.T) {
	err := runCLI([]string{"picol", "one.pcl", "two.pcl"})
	if err == nil {
		t.Fatalf("expected argument error")
	}
	if !strings.Contains(err.Error(), "at most one script") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIRecursionLimitFlag(t *testing.T) {
	scriptPath := writeScript(t, "proc loop {} { loop }; loop")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"picol", "-recursion-limit", "8", scriptPath})
	})
	if err != nil {
		t.Fatalf("runCLI failed: %v", err)
	}
	if !strings.Contains(out, "limit 8") {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.pcl")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
