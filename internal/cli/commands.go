package cli

import (
	"strings"

	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/notificator/internal/errors"
	"github.com/ariel-frischer/notificator/internal/notify"
)

func newBeepCmd(opts ...notify.Option) *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "beep",
		Short: "Ring the system bell",
		Long: `Play the system alert sound a number of times.

Beeps play one after another with beep_interval milliseconds between them.`,
		Example: `  # One beep
  notificator beep

  # Three beeps
  notificator beep -t 3`,
		Args: maxArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			return s.send(cmd, notify.NewBeep(times, s.options()...))
		},
	}

	cmd.Flags().IntVarP(&times, "times", "t", 1, "Number of beeps")
	return cmd
}

func newDesktopCmd(opts ...notify.Option) *cobra.Command {
	var (
		message  string
		title    string
		subtitle string
		icon     string
		noSound  bool
	)

	cmd := &cobra.Command{
		Use:     "desktop",
		Aliases: []string{"center"},
		Short:   "Show a desktop notification",
		Long: `Show a notification in the operating system's notification center.

macOS uses osascript. Linux, the BSDs and Windows go through the native
notification service and need a desktop session.`,
		Example: `  notificator desktop -m "Tests passed" -t CI -s "main branch"
  notificator center -m "Quiet one" --nosound`,
		Args: maxArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			return s.send(cmd, notify.NewDesktop(notify.DesktopPayload{
				Message:   s.message(cmd, message),
				Title:     title,
				Subtitle:  subtitle,
				Icon:      icon,
				PlaySound: !noSound,
			}, s.options()...))
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Notification body (default from config)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Notification title")
	cmd.Flags().StringVarP(&subtitle, "subtitle", "s", "", "Notification subtitle")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "Path to an icon (ignored on macOS)")
	cmd.Flags().BoolVar(&noSound, "nosound", false, "Do not play a sound")
	return cmd
}

// webhookCmd describes a webhook-authenticated service command
type webhookCmd struct {
	kind    notify.Kind
	service string
	fromCfg func(s *session) string
}

func newSlackCmd(opts ...notify.Option) *cobra.Command {
	return newWebhookCmd(webhookCmd{
		kind:    notify.KindSlack,
		service: "Slack",
		fromCfg: func(s *session) string { return s.cfg.SlackURL },
	}, opts)
}

func newDiscordCmd(opts ...notify.Option) *cobra.Command {
	return newWebhookCmd(webhookCmd{
		kind:    notify.KindDiscord,
		service: "Discord",
		fromCfg: func(s *session) string { return s.cfg.DiscordURL },
	}, opts)
}

func newWebhookCmd(w webhookCmd, opts []notify.Option) *cobra.Command {
	var message string
	name := string(w.kind)

	cmd := &cobra.Command{
		Use:   name + " [webhook-url]",
		Short: "Post a message to a " + w.service + " webhook",
		Long: "Post a message to a " + w.service + ` incoming webhook.

The webhook URL is taken from the argument, or from ` + name + `_url in the
config file, or from NOTIFICATOR_` + strings.ToUpper(name) + `_URL.`,
		Example: "  notificator " + name + ` -m "Deploy finished" https://example.com/hook
  notificator ` + name + ` -m "Deploy finished"   # URL from config`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			url := w.fromCfg(s)
			if len(args) == 1 {
				url = args[0]
			}
			if url == "" {
				return clierrors.MissingWebhookURL(w.kind, cmd.UseLine())
			}
			n, err := notify.New(w.kind, notify.Params{
				Message: s.message(cmd, message),
				URL:     url,
			}, s.options()...)
			if err != nil {
				return clierrors.Wrap(err, clierrors.Runtime)
			}
			return s.send(cmd, n)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message text (default from config)")
	return cmd
}

func newLineCmd(opts ...notify.Option) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "line [token]",
		Short: "Send a message through LINE Notify",
		Long: `Send a message through LINE Notify with a personal access token.

The token is taken from the argument, or from line_token in the config file,
or from NOTIFICATOR_LINE_TOKEN.`,
		Example: `  notificator line -m "Backup complete" <token>
  NOTIFICATOR_LINE_TOKEN=<token> notificator line -m "Backup complete"`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			token := s.cfg.LineToken
			if len(args) == 1 {
				token = args[0]
			}
			if token == "" {
				return clierrors.MissingLineToken(cmd.UseLine())
			}
			return s.send(cmd, notify.NewLine(s.message(cmd, message), token, s.options()...))
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message text (default from config)")
	return cmd
}
