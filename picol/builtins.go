package picol

import (
	"fmt"
	"strconv"
	"strings"
)

var mathOps = []string{"+", "-", "*", "/", ">", "<", ">=", "<=", "==", "!="}

func (i *Interp) registerCoreCommands() {
	for _, op := range mathOps {
		i.mustRegister(op, cmdMath)
	}
	i.mustRegister("set", cmdSet)
	i.mustRegister("puts", cmdPuts)
	i.mustRegister("if", cmdIf)
	i.mustRegister("while", cmdWhile)
	i.mustRegister("break", cmdBreak)
	i.mustRegister("continue", cmdContinue)
	i.mustRegister("proc", cmdProc)
	i.mustRegister("return", cmdReturn)
}

func (i *Interp) mustRegister(name string, fn CommandFunc) {
	if err := i.Register(name, fn); err != nil {
		panic(err)
	}
}

// cmdMath implements the binary integer operators. Comparisons produce "1"
// or "0"; division truncates toward zero.
func cmdMath(i *Interp, argv []string) Status {
	if len(argv) != 3 {
		return i.arityErr(argv[0])
	}
	a, err := strconv.Atoi(argv[1])
	if err != nil {
		return i.failf("Not an integer %s", argv[1])
	}
	b, err := strconv.Atoi(argv[2])
	if err != nil {
		return i.failf("Not an integer %s", argv[2])
	}

	var result int
	switch argv[0] {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		if b == 0 {
			return i.failf("Division by zero")
		}
		result = a / b
	case ">":
		result = b2i(a > b)
	case "<":
		result = b2i(a < b)
	case ">=":
		result = b2i(a >= b)
	case "<=":
		result = b2i(a <= b)
	case "==":
		result = b2i(a == b)
	case "!=":
		result = b2i(a != b)
	}
	i.SetResult(strconv.Itoa(result))
	return OK
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func cmdSet(i *Interp, argv []string) Status {
	if len(argv) != 3 {
		return i.arityErr(argv[0])
	}
	i.frame.set(argv[1], argv[2])
	i.SetResult(argv[2])
	return OK
}

func cmdPuts(i *Interp, argv []string) Status {
	if len(argv) != 2 {
		return i.arityErr(argv[0])
	}
	fmt.Fprintln(i.config.Output, argv[1])
	return OK
}

func cmdIf(i *Interp, argv []string) Status {
	if len(argv) != 3 && len(argv) != 5 {
		return i.arityErr(argv[0])
	}
	if status := i.Eval(argv[1]); status != OK {
		return status
	}
	if i.result == "1" {
		return i.Eval(argv[2])
	}
	if len(argv) == 5 {
		return i.Eval(argv[4])
	}
	return OK
}

func cmdWhile(i *Interp, argv []string) Status {
	if len(argv) != 3 {
		return i.arityErr(argv[0])
	}
	for {
		if status := i.Eval(argv[1]); status != OK {
			return status
		}
		if i.result != "1" {
			return OK
		}
		switch status := i.Eval(argv[2]); status {
		case OK, Continue:
			// next iteration
		case Break:
			return OK
		default:
			return status
		}
	}
}

func cmdBreak(i *Interp, argv []string) Status {
	if len(argv) != 1 {
		return i.arityErr(argv[0])
	}
	return Break
}

func cmdContinue(i *Interp, argv []string) Status {
	if len(argv) != 1 {
		return i.arityErr(argv[0])
	}
	return Continue
}

// cmdProc registers a user-defined command. The handler is a closure over
// the parameter list and the unparsed body, which keeps native commands and
// procedures identical at the dispatch site.
func cmdProc(i *Interp, argv []string) Status {
	if len(argv) != 4 {
		return i.arityErr(argv[0])
	}
	params, body := argv[2], argv[3]
	handler := func(i *Interp, argv []string) Status {
		return i.callProc(argv, params, body)
	}
	if err := i.Register(argv[1], handler); err != nil {
		return i.failf("Command %s already exists", argv[1])
	}
	return OK
}

// callProc runs a procedure body in a fresh frame: parameters bind
// positionally to the call's arguments, a Return status from the body
// becomes OK at the call boundary, and the frame is dropped on the way out.
func (i *Interp) callProc(argv []string, params, body string) Status {
	names := strings.Fields(params)
	if len(names) != len(argv)-1 {
		return i.failf("Wrong number of arguments for %s", argv[0])
	}

	i.pushFrame()
	for idx, name := range names {
		i.frame.set(name, argv[idx+1])
	}
	status := i.Eval(body)
	if status == Return {
		status = OK
	}
	i.popFrame()
	return status
}

func cmdReturn(i *Interp, argv []string) Status {
	if len(argv) != 1 && len(argv) != 2 {
		return i.arityErr(argv[0])
	}
	result := ""
	if len(argv) == 2 {
		result = argv[1]
	}
	i.SetResult(result)
	return Return
}
