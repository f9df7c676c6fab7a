package msg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowToast(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		duration time.Duration
	}{
		{"normal toast", "Copied /tmp/demo", 2 * time.Second},
		{"short duration", "Quick message", 500 * time.Millisecond},
		{"zero duration", "No timeout given", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ShowToast(tt.message, tt.duration)
			require.NotNil(t, cmd)

			toast, ok := cmd().(ToastMsg)
			require.True(t, ok)
			assert.Equal(t, tt.message, toast.Message)
			assert.Equal(t, tt.duration, toast.Duration)
			assert.False(t, toast.IsError)
		})
	}
}

func TestShowError(t *testing.T) {
	toast, ok := ShowError("Copy failed", time.Second)().(ToastMsg)
	require.True(t, ok)
	assert.True(t, toast.IsError)
	assert.Equal(t, "Copy failed", toast.Message)
}

func TestLifetime(t *testing.T) {
	assert.Equal(t, DefaultToastDuration, ToastMsg{}.Lifetime())
	assert.Equal(t, DefaultToastDuration, ToastMsg{Duration: -1}.Lifetime())
	assert.Equal(t, time.Second, ToastMsg{Duration: time.Second}.Lifetime())
}
