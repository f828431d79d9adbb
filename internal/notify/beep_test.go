package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeepNotify(t *testing.T) {
	t.Parallel()

	errSound := errors.New("no audio device")

	tests := map[string]struct {
		times        int
		sound        *MockSoundPlayer
		wantCalls    int
		wantCategory Category
		wantMsg      string
	}{
		"single beep": {
			times:     1,
			sound:     NewMockSoundPlayer(),
			wantCalls: 1,
		},
		"three beeps": {
			times:     3,
			sound:     NewMockSoundPlayer(),
			wantCalls: 3,
		},
		"zero times is invalid": {
			times:        0,
			sound:        NewMockSoundPlayer(),
			wantCalls:    0,
			wantCategory: CategoryInvalid,
			wantMsg:      "times must be at least 1 (got 0)",
		},
		"negative times is invalid": {
			times:        -2,
			sound:        NewMockSoundPlayer(),
			wantCalls:    0,
			wantCategory: CategoryInvalid,
			wantMsg:      "times must be at least 1",
		},
		"first beep fails": {
			times:        3,
			sound:        NewMockSoundPlayer().WithError(errSound),
			wantCalls:    1,
			wantCategory: CategoryPlatform,
			wantMsg:      "system sound failed on beep 1 of 3",
		},
		"second beep fails and stops the sequence": {
			times:        5,
			sound:        NewMockSoundPlayer().WithError(errSound).WithFailOn(2),
			wantCalls:    2,
			wantCategory: CategoryPlatform,
			wantMsg:      "system sound failed on beep 2 of 5",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := NewBeep(tt.times, WithSoundPlayer(tt.sound), WithBeepInterval(0))
			err := b.Notify(context.Background())

			assert.Equal(t, tt.wantCalls, tt.sound.CallCount())
			if tt.wantCategory == "" {
				assert.NoError(t, err)
				return
			}

			var ne *NotificationError
			require.ErrorAs(t, err, &ne)
			assert.Equal(t, KindBeep, ne.Kind)
			assert.Equal(t, tt.wantCategory, ne.Category)
			assert.Contains(t, ne.Error(), tt.wantMsg)
			if tt.wantCategory == CategoryPlatform {
				assert.ErrorIs(t, err, errSound)
			}
		})
	}
}

func TestBeepNotifyRepeatable(t *testing.T) {
	t.Parallel()

	sound := NewMockSoundPlayer()
	b := NewBeep(2, WithSoundPlayer(sound), WithBeepInterval(0))

	require.NoError(t, b.Notify(context.Background()))
	require.NoError(t, b.Notify(context.Background()))
	assert.Equal(t, 4, sound.CallCount())
}

func TestBeepNotifyInterval(t *testing.T) {
	t.Parallel()

	sound := NewMockSoundPlayer()
	b := NewBeep(3, WithSoundPlayer(sound), WithBeepInterval(20*time.Millisecond))

	start := time.Now()
	require.NoError(t, b.Notify(context.Background()))

	// Two pauses between three beeps, none after the last
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	assert.Equal(t, 3, sound.CallCount())
}

func TestBeepNotifyCancelled(t *testing.T) {
	t.Parallel()

	sound := NewMockSoundPlayer()
	b := NewBeep(3, WithSoundPlayer(sound), WithBeepInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Notify(ctx)

	var ne *NotificationError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, CategoryPlatform, ne.Category)
	assert.Contains(t, ne.Message, "interrupted after 1 of 3 beeps")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, sound.CallCount())
}

func TestBeepAccessors(t *testing.T) {
	t.Parallel()

	b := NewBeep(4, WithSoundPlayer(NewMockSoundPlayer()))

	assert.Equal(t, KindBeep, b.Kind())
	assert.Equal(t, BeepPayload{Times: 4}, b.Payload())
	assert.Equal(t, "system bell x4", b.Target())
	assert.Equal(t, DefaultBeepInterval, b.interval)
}
