package logger_test

import (
	"testing"

	"github.com/dnimmo/bestretro/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		enabled zapcore.Level
		wantErr bool
	}{
		{name: "json info", level: "info", format: "json", enabled: zapcore.InfoLevel},
		{name: "console debug", level: "debug", format: "console", enabled: zapcore.DebugLevel},
		{name: "empty format defaults to json", level: "warn", format: "", enabled: zapcore.WarnLevel},
		{name: "bad level", level: "loud", format: "json", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.level, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Desugar().Core().Enabled(tt.enabled))
			assert.False(t, l.Desugar().Core().Enabled(tt.enabled-1))
		})
	}
}
