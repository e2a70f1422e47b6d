package smtp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillmail/quillmail/integration/transport/smtp"
)

func validConfig() smtp.Config {
	return smtp.Config{
		Host:        "smtp.example.com",
		Port:        587,
		Username:    "user",
		Password:    "pass",
		TLSMode:     "starttls",
		SenderEmail: "sender@example.com",
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		client, err := smtp.New(validConfig())
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	tests := []struct {
		name   string
		mutate func(*smtp.Config)
	}{
		{"missing host", func(c *smtp.Config) { c.Host = "" }},
		{"zero port", func(c *smtp.Config) { c.Port = 0 }},
		{"port too large", func(c *smtp.Config) { c.Port = 70000 }},
		{"missing username", func(c *smtp.Config) { c.Username = "" }},
		{"missing password", func(c *smtp.Config) { c.Password = "" }},
		{"bad tls mode", func(c *smtp.Config) { c.TLSMode = "ssl" }},
		{"missing sender", func(c *smtp.Config) { c.SenderEmail = "" }},
		{"malformed sender", func(c *smtp.Config) { c.SenderEmail = "not-an-email" }},
		{"malformed reply-to", func(c *smtp.Config) { c.ReplyTo = "nope@" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			_, err := smtp.New(cfg)
			require.ErrorIs(t, err, smtp.ErrInvalidConfig)
		})
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { smtp.MustNew(validConfig()) })

	cfg := validConfig()
	cfg.Host = ""
	assert.Panics(t, func() { smtp.MustNew(cfg) })
}

func TestTLSModes(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"starttls", "tls", "plain"} {
		t.Run(mode, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.TLSMode = mode
			_, err := smtp.New(cfg)
			require.NoError(t, err)
		})
	}
}
