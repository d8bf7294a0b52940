package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/picol-lang/picolgo/picol"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	fs := flag.NewFlagSet("picol", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	recursionLimit := fs.Int("recursion-limit", 0, "maximum nested evaluation depth (0 = rc file or default)")
	rcPath := fs.String("rcfile", "", "rc file path (default ~/"+rcFileName+")")
	if err := fs.Parse(args[1:]); err != nil {
		printUsage()
		return err
	}

	rc, err := loadRCFile(*rcPath)
	if err != nil {
		return err
	}
	if *recursionLimit > 0 {
		rc.RecursionLimit = *recursionLimit
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
		return runREPL(rc)
	case 1:
		return runScript(rc, rest[0], os.Stdout)
	default:
		printUsage()
		return errors.New("expected at most one script path")
	}
}

// runScript evaluates the whole file as one script and prints the final
// status and result when the result text is non-empty.
func runScript(rc rcFile, path string, out io.Writer) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	interp := picol.New(picol.Config{RecursionLimit: rc.RecursionLimit, Output: out})
	status := interp.Eval(string(input))
	if result := interp.Result(); result != "" {
		fmt.Fprintf(out, "%s %s\n", status, result)
	}
	return nil
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] [script]\n", prog)
	fmt.Fprintln(os.Stderr, "With no script, starts an interactive session.")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -recursion-limit int")
	fmt.Fprintln(os.Stderr, "    maximum nested evaluation depth (0 = rc file or default)")
	fmt.Fprintln(os.Stderr, "  -rcfile path")
	fmt.Fprintln(os.Stderr, "    rc file path (default ~/"+rcFileName+")")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
