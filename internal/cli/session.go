package cli

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ariel-frischer/notificator/internal/config"
	clierrors "github.com/ariel-frischer/notificator/internal/errors"
	"github.com/ariel-frischer/notificator/internal/logging"
	"github.com/ariel-frischer/notificator/internal/metrics"
	"github.com/ariel-frischer/notificator/internal/notify"
	"github.com/ariel-frischer/notificator/internal/progress"
)

// session is everything a command needs to send one notification
type session struct {
	cfg          *config.Configuration
	logger       *logrus.Logger
	metrics      *metrics.Metrics
	dispatcher   *notify.Dispatcher
	showProgress bool
	extra        []notify.Option
}

// loadSession reads the global flags and configuration for cmd
func loadSession(cmd *cobra.Command, extra []notify.Option) (*session, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, clierrors.ConfigLoadError(configPath, err)
	}

	level := cfg.LogLevel
	if debug, _ := flags.GetBool("debug"); debug {
		level = logrus.DebugLevel.String()
	}
	format := cfg.LogFormat
	if f, _ := flags.GetString("log-format"); f != "" {
		format = f
	}
	logger, err := logging.Setup(level, format, cmd.ErrOrStderr())
	if err != nil {
		return nil, clierrors.NewArgumentError(err.Error(),
			"Use --log-format text or --log-format json")
	}

	showProgress := boolFlagOr(flags, "progress", cfg.ShowProgress)

	m := metrics.New(cfg.PushgatewayURL, cfg.MetricsJob)
	logger.WithFields(logrus.Fields{
		"config":  configPath,
		"push":    m.PushEnabled(),
		"timeout": cfg.HTTPTimeoutDuration(),
	}).Debug("configuration loaded")

	return &session{
		cfg:          cfg,
		logger:       logger,
		metrics:      m,
		dispatcher:   notify.NewDispatcher(logger, m),
		showProgress: showProgress,
		extra:        extra,
	}, nil
}

// boolFlagOr returns the flag's value when it was given on the command line,
// else fallback
func boolFlagOr(flags *pflag.FlagSet, name string, fallback bool) bool {
	if !flags.Changed(name) {
		return fallback
	}
	v, err := flags.GetBool(name)
	if err != nil {
		return fallback
	}
	return v
}

// options returns the notification options derived from configuration,
// followed by any injected by the caller
func (s *session) options() []notify.Option {
	opts := []notify.Option{
		notify.WithHTTPClient(&http.Client{Timeout: s.cfg.HTTPTimeoutDuration()}),
		notify.WithBeepInterval(s.cfg.BeepIntervalDuration()),
		notify.WithLineEndpoint(s.cfg.LineEndpoint),
	}
	return append(opts, s.extra...)
}

// message returns the --message flag if it was given, else the configured default
func (s *session) message(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("message") {
		return flagValue
	}
	return s.cfg.DefaultMessage
}

// send dispatches n, pushes metrics and converts failures to CLI errors
func (s *session) send(cmd *cobra.Command, n notify.Notification) error {
	var display *progress.Display
	if s.showProgress {
		display = progress.NewDisplay(progress.DetectTerminalCapabilities(), cmd.ErrOrStderr())
		display.Start(fmt.Sprintf("Sending %s notification", n.Kind()))
	}

	err := s.dispatcher.Dispatch(cmd.Context(), n)

	if display != nil {
		if err != nil {
			display.Fail(fmt.Sprintf("%s notification failed", n.Kind()))
		} else {
			display.Succeed(fmt.Sprintf("%s notification sent", n.Kind()))
		}
	}

	if pushErr := s.metrics.Push(cmd.Context()); pushErr != nil {
		s.logger.WithError(pushErr).Warn("metrics push failed")
	}

	if err != nil {
		return clierrors.FromNotificationError(err)
	}
	return nil
}
