package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillmail/quillmail/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to text at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("shown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
	})

	t.Run("development enables debug and tags the app", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("mailer"), logger.WithOutput(&buf))

		log.Debug("visible")

		out := buf.String()
		assert.Contains(t, out, "visible")
		assert.Contains(t, out, "app=mailer")
	})

	t.Run("production emits json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("mailer"), logger.WithOutput(&buf))

		log.Info("hello", logger.Component("test"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "mailer", record["app"])
		assert.Equal(t, "test", record["component"])
	})

	t.Run("level override", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelError))

		log.Warn("hidden")
		log.Error("shown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("component", "registry"), logger.Component("registry"))
	assert.Equal(t, slog.String("event", "send.before"), logger.Event("send.before"))
	assert.Equal(t, slog.Int("sent", 3), logger.Count("sent", 3))

	attr := logger.Key("k", "v")
	assert.Equal(t, "k", attr.Key)
	assert.Equal(t, "v", attr.Value.String())

	err := errors.New("boom")
	attr = logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, slog.Attr{}, logger.Key("k", nil))
}
