package resend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillmail/quillmail/integration/transport/resend"
)

func validConfig() resend.Config {
	return resend.Config{
		APIKey:      "re_test_key",
		SenderEmail: "sender@example.com",
		SenderName:  "Example Shop",
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		client, err := resend.New(validConfig())
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.APIKey = ""
		_, err := resend.New(cfg)
		require.ErrorIs(t, err, resend.ErrInvalidConfig)
	})

	t.Run("missing sender", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.SenderEmail = ""
		_, err := resend.New(cfg)
		require.ErrorIs(t, err, resend.ErrInvalidConfig)
	})
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { resend.MustNew(validConfig()) })

	cfg := validConfig()
	cfg.APIKey = ""
	assert.Panics(t, func() { resend.MustNew(cfg) })
}
