package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/notificator/internal/build"
)

func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information",
		Long:    "Display version, commit, build date, Go version and platform information for notificator",
		Args:    maxArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print without colors")
	return cmd
}

func printVersion(cmd *cobra.Command, plain bool) {
	out := cmd.OutOrStdout()
	label := fmt.Sprint
	if !plain && out == os.Stdout && !color.NoColor {
		label = color.New(color.FgCyan, color.Bold).Sprint
	}

	fmt.Fprintf(out, "%s %s\n", label("notificator"), build.Version)
	if build.IsDevBuild() {
		fmt.Fprintln(out, "Development build")
	}
	fmt.Fprintf(out, "%s %s\n", label("Commit:    "), build.Commit)
	fmt.Fprintf(out, "%s %s\n", label("Built:     "), build.BuildDate)
	fmt.Fprintf(out, "%s %s\n", label("Go:        "), runtime.Version())
	fmt.Fprintf(out, "%s %s\n", label("Platform:  "), build.Platform())
}
