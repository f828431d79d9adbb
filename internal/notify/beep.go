package notify

import (
	"context"
	"fmt"
	"time"
)

// Beep rings the system bell a fixed number of times
type Beep struct {
	payload  BeepPayload
	sound    SoundPlayer
	interval time.Duration
}

// NewBeep creates a beep notification that plays times beeps.
// times is validated when Notify is called, not here.
func NewBeep(times int, opts ...Option) *Beep {
	s := newSettings(opts)
	return &Beep{
		payload:  BeepPayload{Times: times},
		sound:    s.sound,
		interval: s.beepInterval,
	}
}

// Kind returns KindBeep
func (b *Beep) Kind() Kind { return KindBeep }

// Payload returns a copy of the beep parameters
func (b *Beep) Payload() BeepPayload { return b.payload }

// Target describes the notification for logs
func (b *Beep) Target() string {
	return fmt.Sprintf("system bell x%d", b.payload.Times)
}

// Notify plays the alert Times times in order, waiting for each to finish
// before starting the next. The first failure stops the sequence.
func (b *Beep) Notify(ctx context.Context) error {
	if err := validatePayload(KindBeep, b.payload); err != nil {
		return err
	}

	for i := 0; i < b.payload.Times; i++ {
		if i > 0 && b.interval > 0 {
			if err := sleep(ctx, b.interval); err != nil {
				return newError(KindBeep, CategoryPlatform,
					fmt.Sprintf("interrupted after %d of %d beeps", i, b.payload.Times), err)
			}
		}
		if err := b.sound.PlaySystemAlert(); err != nil {
			return newError(KindBeep, CategoryPlatform,
				fmt.Sprintf("system sound failed on beep %d of %d", i+1, b.payload.Times), err)
		}
	}
	return nil
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
