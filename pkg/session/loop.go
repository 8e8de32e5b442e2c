package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/praetorian-inc/rxlab/pkg/highlight"
	"github.com/praetorian-inc/rxlab/pkg/inspect"
)

// ErrInterrupted is returned by a LineReader when the user cancels input.
var ErrInterrupted = errors.New("interrupted")

// LineReader supplies one line of user input per call. It returns io.EOF at
// end of input and ErrInterrupted (or the context's error) on cancellation.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Meta commands recognised at the pattern prompt.
const (
	CommandGroups = ":groups"
	CommandHelp   = ":help"
	CommandQuit   = ":quit"
	CommandExit   = ":exit"
)

const (
	patternPrompt = "Regex pattern> "
	rule          = "--------------------------------------------------"
)

// Outcome says what a single prompt input did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // empty input, re-prompt
	OutcomeReported                // pattern evaluated and rendered
	OutcomeError                   // pattern rejected by the engine
	OutcomeGroups                  // group report printed
	OutcomeHelp                    // help printed
	OutcomeQuit                    // user asked to leave
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeReported:
		return "reported"
	case OutcomeError:
		return "error"
	case OutcomeGroups:
		return "groups"
	case OutcomeHelp:
		return "help"
	case OutcomeQuit:
		return "quit"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Config wires a Loop.
type Config struct {
	Highlighter *highlight.Highlighter
	Inspector   *inspect.Inspector
	Markers     highlight.Markers
	Out         io.Writer
	Color       bool // color banners and counts
	Quiet       bool // suppress banners
}

// Loop is the prompt loop: patterns are highlighted against the session
// text, :groups inspects the last successful pattern.
type Loop struct {
	state       *State
	highlighter *highlight.Highlighter
	inspector   *inspect.Inspector
	markers     highlight.Markers
	out         io.Writer
	styles      *styles
	quiet       bool
}

// NewLoop creates a loop over state.
func NewLoop(state *State, cfg Config) *Loop {
	markers := cfg.Markers
	if markers == nil {
		markers = highlight.DefaultColor
	}
	return &Loop{
		state:       state,
		highlighter: cfg.Highlighter,
		inspector:   cfg.Inspector,
		markers:     markers,
		out:         cfg.Out,
		styles:      newStyles(cfg.Color),
		quiet:       cfg.Quiet,
	}
}

// State returns the loop's session state.
func (l *Loop) State() *State {
	return l.state
}

// Run evaluates initialPattern (if any) and then prompts until end of
// input, interruption, or a quit command. Those all end the loop normally;
// only a failing reader is returned as an error.
func (l *Loop) Run(ctx context.Context, in LineReader, initialPattern string) error {
	if !l.quiet {
		fmt.Fprintf(l.out, "\n%s\n", l.styles.banner.Sprint("Enter regex patterns to test (Ctrl+C to exit):"))
	}

	if initialPattern != "" {
		if l.Step(initialPattern) == OutcomeQuit {
			return l.exit()
		}
	}

	for {
		fmt.Fprintln(l.out)
		line, err := in.ReadLine(ctx, patternPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) || ctx.Err() != nil {
				return l.exit()
			}
			return fmt.Errorf("reading pattern: %w", err)
		}
		if l.Step(line) == OutcomeQuit {
			return l.exit()
		}
	}
}

func (l *Loop) exit() error {
	fmt.Fprintln(l.out, "\nExiting...")
	return nil
}

// Step handles one line of prompt input.
func (l *Loop) Step(input string) Outcome {
	input = strings.TrimSpace(input)
	switch input {
	case "":
		return OutcomeIgnored
	case CommandGroups:
		l.reportGroups()
		return OutcomeGroups
	case CommandHelp:
		l.printHelp()
		return OutcomeHelp
	case CommandQuit, CommandExit:
		return OutcomeQuit
	}
	return l.evaluate(input)
}

func (l *Loop) evaluate(pattern string) Outcome {
	res, err := l.highlighter.Highlight(l.state.Text(), pattern, l.markers)
	if err != nil {
		// state is left as it was
		fmt.Fprintf(l.out, "%s %v\n", l.styles.err.Sprint("Regex error:"), err)
		return OutcomeError
	}
	l.state.Commit(pattern, res.Records)

	fmt.Fprintf(l.out, "\n%s\n", rule)
	fmt.Fprintf(l.out, "Matches found: %s\n", l.styles.count.Sprint(res.MatchCount))
	fmt.Fprintf(l.out, "Pattern: %s\n", l.styles.pattern.Sprint(pattern))
	fmt.Fprintln(l.out, rule)
	fmt.Fprintln(l.out, res.Rendered)
	fmt.Fprintln(l.out, rule)
	return OutcomeReported
}

func (l *Loop) reportGroups() {
	pattern, ok := l.state.LastPattern()
	if !ok {
		fmt.Fprintln(l.out, "No previous valid pattern. Enter a pattern first.")
		return
	}
	fmt.Fprintf(l.out, "\nGroups for pattern: %s\n", l.styles.pattern.Sprint(pattern))
	fmt.Fprintln(l.out, rule)
	if err := l.inspector.Report(l.out, l.state.LastRecords(), pattern); err != nil {
		fmt.Fprintf(l.out, "%s %v\n", l.styles.err.Sprint("Report error:"), err)
	}
	fmt.Fprintln(l.out, rule)
}

func (l *Loop) printHelp() {
	fmt.Fprintln(l.out, "Type a regular expression to highlight its matches.")
	fmt.Fprintf(l.out, "  %-8s show capture groups of the last valid pattern\n", CommandGroups)
	fmt.Fprintf(l.out, "  %-8s show this help\n", CommandHelp)
	fmt.Fprintf(l.out, "  %-8s leave (also %s, Ctrl+D, Ctrl+C)\n", CommandQuit, CommandExit)
}
