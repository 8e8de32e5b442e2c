package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/praetorian-inc/rxlab/pkg/highlight"
	"github.com/spf13/cobra"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List highlight colors",
	Long:  "List the colors accepted by --color, each shown in that color",
	Args:  cobra.NoArgs,
	RunE:  runColors,
}

func runColors(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	enabled := colorEnabled(out, false)

	for _, c := range highlight.Colors() {
		style := color.New(c.Attribute())
		if enabled {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
		suffix := ""
		if c == highlight.DefaultColor {
			suffix = " (default)"
		}
		fmt.Fprintf(out, "%s%s\n", style.Sprint(c), suffix)
	}
	return nil
}
