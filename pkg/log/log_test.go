package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipflowpro/clipver/pkg/log"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr   error
		logLevel  string
		logFormat string
	}{
		"default config": {
			logLevel:  "warn",
			logFormat: "text",
		},
		"json format": {
			logLevel:  "info",
			logFormat: "json",
		},
		"logfmt format": {
			logLevel:  "debug",
			logFormat: "logfmt",
		},
		"mixed case": {
			logLevel:  "ERROR",
			logFormat: "JSON",
		},
		"invalid log level": {
			logLevel:  "invalid",
			logFormat: "text",
			wantErr:   log.ErrInvalidLevel,
		},
		"invalid log format": {
			logLevel:  "warn",
			logFormat: "invalid",
			wantErr:   log.ErrInvalidFormat,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.CreateHandler(&bytes.Buffer{}, tc.logLevel, tc.logFormat)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, h)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestHandlerLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	h, err := log.CreateHandler(buf, "warn", "text")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestHandlerJSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	h, err := log.CreateHandler(buf, "debug", "json")
	require.NoError(t, err)

	slog.New(h).Debug("reading metadata", slog.String("path", "/tmp/metadata.json"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "reading metadata", entry["msg"])
	assert.Equal(t, "/tmp/metadata.json", entry["path"])
}
