package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/chzyer/readline"

	"github.com/poxlang/pox/internal/loxerrors"
	"github.com/poxlang/pox/internal/scanner"
)

// Exit codes follow sysexits.h: 64 for usage errors, 65 for source files
// that fail to scan cleanly.
const (
	exitCodeUsage   = 64
	exitCodeDataErr = 65
)

// PoxApp is the command line driver. It owns the I/O streams and hands the
// scanner a diagnostic reporter; for now a run stops after tokenization
// and prints the token stream.
type PoxApp struct {
	stdout   io.Writer
	stderr   io.Writer
	reporter loxerrors.ErrReporter
}

func NewPoxApp() *PoxApp {
	return &PoxApp{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		reporter: loxerrors.NewErrReporter(os.Stderr),
	}
}

func (app *PoxApp) Main(args []string) int {
	switch {
	case len(args) > 1:
		fmt.Fprintln(app.stderr, "Usage: pox [script]")
		return exitCodeUsage
	case len(args) == 1 && args[0] == "--version":
		fmt.Fprintln(app.stdout, version())
		return 0
	case len(args) == 1:
		return app.runFile(args[0])
	default:
		return app.runPrompt()
	}
}

func (app *PoxApp) runFile(scriptPath string) int {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		loxerrors.DefaultReportError(app.stderr, err)
		return exitCodeUsage
	}

	if hadError := app.run(string(bytes)); hadError {
		return exitCodeDataErr
	}
	return 0
}

func (app *PoxApp) runPrompt() int {
	rl, err := readline.New("> ")
	if err != nil {
		loxerrors.DefaultReportPanic(app.stderr, err)
		return exitCodeUsage
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return 0
		}
		if err != nil {
			loxerrors.DefaultReportPanic(app.stderr, err)
			return exitCodeUsage
		}

		// A bad line never ends the session; the diagnostics have
		// already been printed and the flag resets with the next read.
		_ = app.run(line)
	}
}

// run scans one source text and prints the resulting tokens. It reports
// whether any lexical error occurred; callers decide whether that is
// fatal.
func (app *PoxApp) run(input string) bool {
	s := scanner.NewScanner(input, app.reporter)
	tokens, hadError := s.Scan()

	for _, tok := range tokens {
		fmt.Fprintln(app.stdout, tok)
	}

	return hadError
}

// version reports the module version plus VCS state when the binary was
// built from a checkout.
func version() string {
	ver := "(devel)"
	revision := ""
	dirty := false

	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" {
			ver = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				dirty = setting.Value == "true"
			}
		}
	}

	out := "pox " + ver
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if revision != "" {
		out += " " + revision
	}
	if dirty {
		out += " (has uncommitted changes)"
	}
	return out
}
