package notify

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Outcome values passed to a Recorder
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// Recorder receives the outcome of every dispatched notification
type Recorder interface {
	RecordNotification(kind Kind, outcome string, category Category, duration time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordNotification(Kind, string, Category, time.Duration) {}

// Dispatcher sends notifications one at a time, logging and recording each
// outcome. It adds no retries and no timeouts; the error returned is the
// notification's own.
type Dispatcher struct {
	logger   logrus.FieldLogger
	recorder Recorder
	now      func() time.Time
}

// NewDispatcher creates a dispatcher. A nil logger discards log output and a
// nil recorder drops outcomes.
func NewDispatcher(logger logrus.FieldLogger, recorder Recorder) *Dispatcher {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Dispatcher{
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Dispatch calls n.Notify once and reports the result.
//
// Errors that are not already a *NotificationError (a third-party
// Notification implementation, for example) are wrapped so callers always
// see the single error type.
func (d *Dispatcher) Dispatch(ctx context.Context, n Notification) error {
	log := d.logger.WithFields(logrus.Fields{
		"kind":   n.Kind(),
		"target": describe(n),
	})
	log.Debug("sending notification")

	start := d.now()
	err := n.Notify(ctx)
	elapsed := d.now().Sub(start)

	if err == nil {
		d.recorder.RecordNotification(n.Kind(), OutcomeSent, "", elapsed)
		log.WithField("duration", formatDuration(elapsed)).Info("notification sent")
		return nil
	}

	if !IsNotificationError(err) {
		err = newError(n.Kind(), CategoryPlatform, "notification failed", err)
	}
	category := CategoryOf(err)
	d.recorder.RecordNotification(n.Kind(), OutcomeFailed, category, elapsed)
	log.WithFields(logrus.Fields{
		"category": category,
		"duration": formatDuration(elapsed),
	}).WithError(err).Error("notification failed")
	return err
}

// describe returns a log-safe description of where n is going
func describe(n Notification) string {
	if t, ok := n.(interface{ Target() string }); ok {
		return t.Target()
	}
	return string(n.Kind())
}

// formatDuration formats a duration for log output
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}
