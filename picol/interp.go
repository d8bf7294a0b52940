package picol

import (
	"fmt"
	"io"
	"maps"
	"os"
	"sort"
)

// Status is the outcome of evaluating a command or script. Break, Continue
// and Return are ordinary values threaded back through Eval, not exceptions:
// `while` and procedure calls intercept them, everything else passes them
// through unchanged.
type Status int

const (
	OK Status = iota
	Err
	Return
	Break
	Continue
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Err:
		return "err"
	case Return:
		return "return"
	case Break:
		return "break"
	case Continue:
		return "continue"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// CommandFunc is the shape of every command, native or user-defined.
// Procedures are closures over their parameter list and body, so the
// dispatcher cannot tell them apart from built-ins. argv[0] is the command
// name; the returned Status plus the interpreter's result carry the outcome.
type CommandFunc func(i *Interp, argv []string) Status

// Config controls interpreter execution bounds and output routing.
type Config struct {
	// RecursionLimit caps nested Eval depth (command substitution, control
	// structure bodies and procedure calls all nest through Eval). Zero
	// selects the default.
	RecursionLimit int

	// Output receives text emitted by puts. Defaults to os.Stdout.
	Output io.Writer
}

const defaultRecursionLimit = 1000

// Interp holds one interpreter instance: the command registry, the call
// frame chain and the current result text. It must not be evaluated from
// two goroutines at once.
type Interp struct {
	config   Config
	commands map[string]CommandFunc
	frame    *frame
	result   string
	level    int
}

// New constructs an interpreter with the core command set registered.
func New(cfg Config) *Interp {
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = defaultRecursionLimit
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	i := &Interp{
		config:   cfg,
		commands: make(map[string]CommandFunc),
		frame:    newFrame(nil),
	}
	i.registerCoreCommands()
	return i
}

// Result returns the result text of the most recent command: its output on
// success, a diagnostic message on error.
func (i *Interp) Result() string {
	return i.result
}

// SetResult replaces the current result text. Command implementations use
// it to publish their output.
func (i *Interp) SetResult(s string) {
	i.result = s
}

// Var reads a variable from the current frame. Enclosing frames are not
// consulted.
func (i *Interp) Var(name string) (string, bool) {
	return i.frame.get(name)
}

// SetVar inserts or updates a variable in the current frame.
func (i *Interp) SetVar(name, value string) {
	i.frame.set(name, value)
}

// Vars returns a copy of the current frame's bindings.
func (i *Interp) Vars() map[string]string {
	out := make(map[string]string, len(i.frame.vars))
	maps.Copy(out, i.frame.vars)
	return out
}

// Register adds a command to the registry. A name that is already taken is
// rejected and the existing definition stays in place.
func (i *Interp) Register(name string, fn CommandFunc) error {
	if _, ok := i.commands[name]; ok {
		return fmt.Errorf("command %q already exists", name)
	}
	i.commands[name] = fn
	return nil
}

// Commands returns the registered command names, sorted.
func (i *Interp) Commands() []string {
	out := make([]string, 0, len(i.commands))
	for name := range i.commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Eval runs one script: it assembles words from the token stream, performs
// variable and command substitution, and dispatches each completed command.
// The result text is reset on entry and afterwards holds the output of the
// last command (or a diagnostic when the status is Err). Any status other
// than OK aborts the script immediately and is returned unchanged.
func (i *Interp) Eval(script string) Status {
	i.level++
	defer func() { i.level-- }()
	if i.level > i.config.RecursionLimit {
		return i.failf("Too many nested evaluations (limit %d)", i.config.RecursionLimit)
	}

	lx := newLexer(script)
	var argv []string
	prev := tokenEndOfLine
	status := OK
	i.result = ""

	for {
		tok := lx.NextToken()
		if tok.Type == tokenEOF {
			break
		}

		text := tok.Text
		switch tok.Type {
		case tokenVariable:
			val, ok := i.frame.get(tok.Text)
			if !ok {
				return i.failf("Unknown variable %s", tok.Text)
			}
			text = val
		case tokenCommand:
			if status = i.Eval(tok.Text); status != OK {
				return status
			}
			text = i.result
		case tokenSeparator:
			prev = tok.Type
			continue
		case tokenEndOfLine:
			prev = tok.Type
			if len(argv) > 0 {
				if status = i.dispatch(argv); status != OK {
					return status
				}
			}
			argv = argv[:0]
			continue
		}

		// A separator or command end starts a fresh word; otherwise the
		// token glues onto the previous one (interpolation: abc$x is one
		// argument).
		if prev == tokenSeparator || prev == tokenEndOfLine {
			argv = append(argv, text)
		} else {
			argv[len(argv)-1] += text
		}
		prev = tok.Type
	}
	return status
}

func (i *Interp) dispatch(argv []string) Status {
	fn, ok := i.commands[argv[0]]
	if !ok {
		return i.failf("Unknown command %s", argv[0])
	}
	return fn(i, argv)
}

// failf records a diagnostic as the result text and returns Err.
func (i *Interp) failf(format string, args ...any) Status {
	i.result = fmt.Sprintf(format, args...)
	return Err
}

func (i *Interp) arityErr(name string) Status {
	return i.failf("Wrong number of arguments for %s", name)
}
