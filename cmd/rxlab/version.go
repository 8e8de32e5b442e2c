package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/praetorian-inc/rxlab/pkg/engine"
	"github.com/praetorian-inc/rxlab/pkg/highlight"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and available engines",
	Long:  "Display the version of rxlab, the regex engines it was built with and the highlight colours",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rxlab v%s (commit %s)\n", version, commit)
	fmt.Fprintf(out, "Engines: %s (default %s)\n", strings.Join(engine.Names(), ", "), engine.Default)
	fmt.Fprintf(out, "Colors: %s (default %s)\n", strings.Join(highlight.ColorNames(), ", "), highlight.DefaultColor)
	fmt.Fprintf(out, "Built with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
