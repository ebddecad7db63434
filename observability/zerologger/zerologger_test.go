package zerologger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-unifi-access/observability"
	"github.com/lexfrei/go-unifi-access/observability/zerologger"
)

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		log   func(observability.Logger)
		level string
	}{
		{
			name:  "debug",
			log:   func(l observability.Logger) { l.Debug("msg") },
			level: "debug",
		},
		{
			name:  "info",
			log:   func(l observability.Logger) { l.Info("msg") },
			level: "info",
		},
		{
			name:  "warn",
			log:   func(l observability.Logger) { l.Warn("msg") },
			level: "warn",
		},
		{
			name:  "error",
			log:   func(l observability.Logger) { l.Error("msg") },
			level: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := zerologger.New(zerolog.New(&buf))

			tt.log(logger)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "msg", entry["message"])
		})
	}
}

func TestLoggerFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerologger.New(zerolog.New(&buf))

	logger.Info("request done",
		observability.Field{Key: "method", Value: "GET"},
		observability.Field{Key: "status", Value: 200},
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.InDelta(t, 200, entry["status"], 0)
}

func TestLoggerWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerologger.New(zerolog.New(&buf))

	child := logger.With(observability.Field{Key: "component", Value: "client"})
	child.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "client", entry["component"])
}
