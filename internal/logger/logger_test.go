package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			log, err := New(level)
			require.NoError(t, err)

			want, _ := zapcore.ParseLevel(level)
			assert.True(t, log.Core().Enabled(want))
			assert.False(t, log.Core().Enabled(want-1))
		})
	}
}

func TestNewUnknownLevel(t *testing.T) {
	_, err := New("verbose")
	assert.ErrorContains(t, err, "unknown log level")
}
