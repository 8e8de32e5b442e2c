package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/praetorian-inc/rxlab/pkg/config"
	"github.com/praetorian-inc/rxlab/pkg/console"
	"github.com/praetorian-inc/rxlab/pkg/engine"
	"github.com/praetorian-inc/rxlab/pkg/highlight"
	"github.com/praetorian-inc/rxlab/pkg/inspect"
	"github.com/praetorian-inc/rxlab/pkg/session"
	"github.com/praetorian-inc/rxlab/pkg/source"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool

	rootText    string
	rootFile    string
	rootPattern string
	rootColor   string
	rootEngine  string
	rootTimeout time.Duration
	rootNoColor bool
	rootConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "rxlab",
	Short: "rxlab - interactive regular expression tester",
	Long: `rxlab highlights every match of a regular expression in a body of text.

Text comes from --text, --file, or is typed in (finish with Ctrl+D).
Patterns are then read from the prompt; each one is applied to the text and
its matches are shown in color. Enter :groups to list the capture groups of
the last valid pattern, :help for the other commands.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (no banners)")

	rootCmd.Flags().StringVarP(&rootText, "text", "t", "", "Input text directly")
	rootCmd.Flags().StringVarP(&rootFile, "file", "f", "", "Path to text file")
	rootCmd.Flags().StringVarP(&rootPattern, "pattern", "p", "", "Regex pattern to test first")
	rootCmd.Flags().StringVarP(&rootColor, "color", "c", highlight.DefaultColor.String(), "Highlight color: red, green, yellow, blue, magenta, cyan")
	rootCmd.Flags().StringVar(&rootEngine, "engine", engine.Default, "Regex engine: regexp2, re2")
	rootCmd.Flags().DurationVar(&rootTimeout, "timeout", engine.DefaultOptions().Timeout, "Per-match timeout for the regexp2 engine (0 to disable)")
	rootCmd.Flags().BoolVar(&rootNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&rootConfig, "config", "", "Path to a YAML or TOML file with default settings")
	rootCmd.MarkFlagsMutuallyExclusive("text", "file")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(colorsCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// settings is the effective configuration after merging flags and config file.
type settings struct {
	color   highlight.ColorTag
	engine  string
	timeout time.Duration
	noColor bool
}

// resolveSettings applies the config file under any flag the user did not set.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	colorName, engineName, timeout, noColor := rootColor, rootEngine, rootTimeout, rootNoColor

	if rootConfig != "" {
		cfg, err := config.Load(rootConfig)
		if err != nil {
			return settings{}, err
		}
		infof(cmd, "loaded config %s", rootConfig)

		flags := cmd.Flags()
		if !flags.Changed("color") {
			colorName = cfg.Color
		}
		if !flags.Changed("engine") {
			engineName = cfg.Engine
		}
		if !flags.Changed("timeout") {
			// Load validated it already
			timeout, _ = cfg.TimeoutDuration()
		}
		if !flags.Changed("no-color") {
			noColor = cfg.NoColor
		}
	}

	c, err := highlight.ParseColor(colorName)
	if err != nil {
		return settings{}, err
	}
	if timeout < 0 {
		return settings{}, fmt.Errorf("invalid timeout %s: must not be negative", timeout)
	}
	return settings{color: c, engine: engineName, timeout: timeout, noColor: noColor}, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	e, err := engine.New(s.engine, engine.Options{Timeout: s.timeout})
	if err != nil {
		return err
	}
	if e.Name() == engine.RE2 && cmd.Flags().Changed("timeout") {
		warnf(cmd, "--timeout has no effect on the %s engine", engine.RE2)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	in, out, closeIO, err := openConsole(cmd)
	if err != nil {
		return err
	}
	defer closeIO()

	colorOn := colorEnabled(cmd.OutOrStdout(), s.noColor)
	banner := color.New(color.FgHiCyan)
	if colorOn {
		banner.EnableColor()
	} else {
		banner.DisableColor()
	}

	textOpts := source.Options{Text: rootText, File: rootFile}
	if textOpts.Interactive() && !quiet {
		fmt.Fprintln(out, banner.Sprint("Regex Learning Tool (Interactive Mode)"))
		fmt.Fprintln(out, "Enter text to test against (Press Ctrl+D or Ctrl+Z when finished):")
	}
	text, err := source.Load(ctx, textOpts, in)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, session.ErrInterrupted) {
			fmt.Fprintln(out, "\nExiting...")
			return nil
		}
		return err
	}
	infof(cmd, "engine %s, color %s, %d characters of text", e.Name(), s.color, len([]rune(text)))

	loop := session.NewLoop(session.NewState(text), session.Config{
		Highlighter: highlight.New(e),
		Inspector:   inspect.New(e, inspect.NewStyles(colorOn)),
		Markers:     highlight.Resolve(s.color, colorOn),
		Out:         out,
		Color:       colorOn,
		Quiet:       quiet,
	})
	return loop.Run(ctx, in, rootPattern)
}

// lineReader is what the text source and the prompt loop both read from.
type lineReader interface {
	session.LineReader
	source.LineReader
}

// openConsole picks the raw-mode line editor when both ends are a terminal
// and a plain line reader otherwise.
func openConsole(cmd *cobra.Command) (lineReader, io.Writer, func(), error) {
	out := cmd.OutOrStdout()
	if f, ok := cmd.InOrStdin().(*os.File); ok && console.IsTerminal(f) && isTerminal(out) {
		t, err := console.OpenTerminal(f, out)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening terminal: %w", err)
		}
		return t, t, func() { _ = t.Close() }, nil
	}
	r := console.NewReader(cmd.InOrStdin(), out)
	return r, out, func() { _ = r.Close() }, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && console.IsTerminal(f)
}

// colorEnabled respects --no-color, NO_COLOR, and whether out is a TTY.
func colorEnabled(out io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(out)
}

func infof(cmd *cobra.Command, format string, args ...any) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[info] "+format+"\n", args...)
	}
}

func warnf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "[warn] "+format+"\n", args...)
}
