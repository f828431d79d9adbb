// notificator - one-shot notifications from the command line
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/notificator

// Package cli provides the Cobra commands for notificator. One subcommand
// exists per notification kind (beep, desktop, slack, discord, line) plus
// version, and each kind can also run as its own program (beep-notify,
// slack-notify, ...).
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/notificator/internal/build"
	"github.com/ariel-frischer/notificator/internal/cli/shared"
	clierrors "github.com/ariel-frischer/notificator/internal/errors"
	"github.com/ariel-frischer/notificator/internal/notify"
)

// newRootCmd builds the notificator command tree. opts are appended to the
// options every notification is built with.
func newRootCmd(opts ...notify.Option) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notificator",
		Short: "Send a one-shot notification",
		Long: `notificator sends a single notification and exits.

Local channels ring the system bell or show a desktop notification. Remote
channels post to a Slack or Discord webhook or to LINE Notify. Webhook URLs
and tokens may be passed as arguments or stored in ~/.notificator/config.json.

Source: https://github.com/ariel-frischer/notificator`,
		Example: `  # Ring the bell three times
  notificator beep -t 3

  # Show a desktop notification without sound
  notificator desktop -m "Build finished" -t CI --nosound

  # Post to Slack using the webhook from the config file
  notificator slack -m "Deploy done"

  # Post to Discord with an explicit webhook
  notificator discord -m "Deploy done" https://discord.com/api/webhooks/...`,
		Version:       build.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: shared.GroupNotifications, Title: "Notifications:"})
	rootCmd.AddGroup(&cobra.Group{ID: shared.GroupInfo, Title: "Information:"})
	rootCmd.SetHelpCommandGroupID(shared.GroupInfo)
	rootCmd.SetCompletionCommandGroupID(shared.GroupInfo)

	addGlobalFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(flagError)

	for _, cmd := range []*cobra.Command{
		newBeepCmd(opts...),
		newDesktopCmd(opts...),
		newSlackCmd(opts...),
		newDiscordCmd(opts...),
		newLineCmd(opts...),
	} {
		cmd.GroupID = shared.GroupNotifications
		rootCmd.AddCommand(cmd)
	}
	version := newVersionCmd()
	version.GroupID = shared.GroupInfo
	rootCmd.AddCommand(version)

	return rootCmd
}

// addGlobalFlags registers the flags shared by every command
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a JSON config file (overrides ~/.notificator/config.json)")
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-format", "", "Log format: text or json (default from config)")
	cmd.PersistentFlags().Bool("progress", false, "Show a spinner while sending")
}

// flagError turns flag parsing failures into argument errors
func flagError(cmd *cobra.Command, err error) error {
	return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
		"Run '"+cmd.CommandPath()+" --help' for the list of flags")
}

// maxArgs wraps cobra.MaximumNArgs so that excess arguments are reported as
// argument errors
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
		}
		return nil
	}
}

// Execute runs the notificator command tree against os.Args
func Execute() error {
	return run(newRootCmd(), os.Args[1:])
}

// run executes cmd with args and prints any error to the command's stderr.
// Commands only return CLI errors, so anything else came from cobra's own
// parsing (an unknown subcommand, say) and is reported as an argument error.
func run(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	if !clierrors.IsCLIError(err) {
		err = clierrors.Wrap(err, clierrors.Argument,
			"Run '"+cmd.CommandPath()+" --help' for usage")
	}
	clierrors.FprintError(cmd.ErrOrStderr(), err)
	return err
}
