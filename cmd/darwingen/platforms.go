package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darwingen/internal/platform"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the supported build targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		familyColor := color.New(color.FgCyan, color.Bold)
		legacyColor := color.New(color.FgYellow)

		out := cmd.OutOrStdout()
		for _, desc := range platform.Table() {
			name := familyColor.Sprint(desc.Family)
			note := ""
			if desc.Legacy {
				note = " " + legacyColor.Sprint("(legacy, not generated)")
			}
			if _, err := fmt.Fprintf(out, "%-28s %-18s %-8s %s -> %s%s\n",
				name, desc.SDK, desc.Arch, desc.Triple, desc.Directory, note); err != nil {
				return err
			}
		}
		return nil
	},
}
