// Package notify sends one-shot notifications to a local or remote channel.
//
// Five kinds are supported, each a concrete type satisfying Notification:
//
//   - Beep: rings the system bell N times (beeep)
//   - Desktop: shows an OS notification (osascript on macOS, beeep elsewhere)
//   - Slack: POSTs {"text": message} to an incoming webhook
//   - Discord: POSTs {"content": message} to a webhook
//   - Line: POSTs a form to LINE Notify with a bearer token
//
// Every kind follows the same lifecycle: construct (no I/O), then Notify,
// which validates the payload, performs exactly one transmission and returns
// either nil or a *NotificationError. There are no retries, no batching and
// no state shared between instances; callers that want parallel sends run
// them on their own goroutines.
//
// # Collaborators
//
// The OS sound facility, the desktop facility and the HTTP client sit behind
// SoundPlayer, Displayer/DesktopProbe and Poster. Replace them with the With*
// options.
//
// # Usage
//
//	n := notify.NewSlack("build finished", webhookURL)
//	if err := n.Notify(ctx); err != nil {
//		var ne *notify.NotificationError
//		if errors.As(err, &ne) && ne.Category == notify.CategoryHTTPStatus {
//			log.Printf("slack answered %d", ne.StatusCode)
//		}
//	}
package notify
