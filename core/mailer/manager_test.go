package mailer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillmail/quillmail/core/components"
	"github.com/quillmail/quillmail/core/hook"
	"github.com/quillmail/quillmail/core/mailer"
	"github.com/quillmail/quillmail/core/registry"
	"github.com/quillmail/quillmail/core/tag"
	"github.com/quillmail/quillmail/core/template"
)

type fakeTransport struct {
	sent []*mailer.Message
	err  error
}

func (f *fakeTransport) Send(ctx context.Context, msg *mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type order struct {
	CustomerName string
	Total        string
}

var testConfig = mailer.Config{
	SiteName:   "Example Shop",
	SiteURL:    "https://example.com",
	AdminEmail: "admin@example.com",
}

func fixedClock() time.Time {
	return time.Date(2025, time.March, 14, 15, 9, 0, 0, time.UTC)
}

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New()

	_, err := reg.RegisterTag("shop", "customer_name", tag.Config{
		Kind: tag.Text,
		Callback: func(data any) (any, error) {
			return data.(*order).CustomerName, nil
		},
	})
	require.NoError(t, err)

	_, err = reg.RegisterTag("shop", "order_total", tag.Config{
		Kind:    tag.Text,
		Preview: "$19.99",
		Callback: func(data any) (any, error) {
			return data.(*order).Total, nil
		},
	})
	require.NoError(t, err)

	_, err = reg.RegisterTag("shop", "order_button", tag.Config{
		Kind:    tag.Button,
		Options: components.Args{"url": "https://example.com/orders"},
		Callback: func(any) (any, error) {
			return "View your order", nil
		},
	})
	require.NoError(t, err)

	_, err = reg.RegisterTemplate("shop", "welcome", template.Config{
		Subject:  "Welcome to {site_name}",
		Title:    "Welcome aboard",
		Subtitle: "Thanks for joining {site_name}",
		Message:  "<p>Hi {customer_name}!</p><p>Your order of {order_total} is confirmed.</p>{order_button}",
	})
	require.NoError(t, err)

	return reg
}

func newManager(t *testing.T, transport mailer.Transport, opts ...mailer.Option) *mailer.Manager {
	t.Helper()
	opts = append([]mailer.Option{mailer.WithClock(fixedClock)}, opts...)
	return mailer.New(testConfig, newRegistry(t), transport, opts...)
}

func TestSend(t *testing.T) {
	t.Parallel()

	t.Run("delivers the assembled message", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		m := newManager(t, transport)

		err := m.Send(context.Background(), "shop", "welcome", mailer.SendArgs{
			To:   "sarah@example.com",
			Data: &order{CustomerName: "Sarah", Total: "$42.00"},
		})
		require.NoError(t, err)
		require.Len(t, transport.sent, 1)

		msg := transport.sent[0]
		assert.Equal(t, []string{"sarah@example.com"}, msg.To)
		assert.Equal(t, "Welcome to Example Shop", msg.Subject)
		assert.Equal(t, "shop/welcome", msg.Tag)
		assert.Contains(t, msg.HTML, "Hi Sarah!")
		assert.Contains(t, msg.HTML, "$42.00")
		assert.Contains(t, msg.HTML, "View your order")
		assert.Contains(t, msg.HTML, "Welcome aboard")
	})

	t.Run("empty recipient fails before the transport", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		m := newManager(t, transport)

		err := m.Send(context.Background(), "shop", "welcome", mailer.SendArgs{
			Data: &order{CustomerName: "Sarah"},
		})
		require.ErrorIs(t, err, mailer.ErrNoRecipient)
		assert.Empty(t, transport.sent)
	})

	t.Run("nil transport", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		err := m.Send(context.Background(), "shop", "welcome", mailer.SendArgs{To: "a@b.c"})
		require.ErrorIs(t, err, mailer.ErrNoTransport)
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		m := newManager(t, transport)

		err := m.Send(context.Background(), "shop", "nope", mailer.SendArgs{To: "a@b.c"})
		require.ErrorIs(t, err, registry.ErrTemplateNotFound)
		assert.Empty(t, transport.sent)
	})

	t.Run("disabled template is skipped", func(t *testing.T) {
		t.Parallel()

		reg := newRegistry(t)
		_, err := reg.RegisterTemplate("shop", "dormant", template.Config{
			Subject:  "Unused",
			Disabled: true,
		})
		require.NoError(t, err)

		transport := &fakeTransport{}
		m := mailer.New(testConfig, reg, transport)

		err = m.Send(context.Background(), "shop", "dormant", mailer.SendArgs{To: "a@b.c"})
		require.ErrorIs(t, err, mailer.ErrTemplateDisabled)
		assert.Empty(t, transport.sent)
	})

	t.Run("settings func can disable at runtime", func(t *testing.T) {
		t.Parallel()

		reg := registry.New()
		_, err := reg.RegisterTemplate("shop", "flagged", template.Config{
			Subject: "Hello",
			SettingsFunc: func() template.SettingsPatch {
				return template.SettingsPatch{Enabled: template.Bool(false)}
			},
		})
		require.NoError(t, err)

		transport := &fakeTransport{}
		m := mailer.New(testConfig, reg, transport)

		err = m.Send(context.Background(), "shop", "flagged", mailer.SendArgs{To: "a@b.c"})
		require.ErrorIs(t, err, mailer.ErrTemplateDisabled)
	})

	t.Run("transport failure wraps the cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		m := newManager(t, &fakeTransport{err: cause})

		err := m.Send(context.Background(), "shop", "welcome", mailer.SendArgs{To: "a@b.c"})
		require.ErrorIs(t, err, mailer.ErrSendFailed)
		require.ErrorIs(t, err, cause)
	})
}

func TestSend_Capability(t *testing.T) {
	t.Parallel()

	registerGated := func(t *testing.T, reg *registry.Registry) {
		t.Helper()
		_, err := reg.RegisterTemplate("shop", "gated", template.Config{
			Subject:    "Gated",
			Capability: "mail.send_manual",
		})
		require.NoError(t, err)
	}

	t.Run("manual send without checker is denied", func(t *testing.T) {
		t.Parallel()

		reg := newRegistry(t)
		registerGated(t, reg)
		transport := &fakeTransport{}
		m := mailer.New(testConfig, reg, transport)

		err := m.Send(context.Background(), "shop", "gated", mailer.SendArgs{
			To:      "a@b.c",
			Context: mailer.ContextManual,
		})
		require.ErrorIs(t, err, mailer.ErrCapabilityDenied)
		assert.Empty(t, transport.sent)
	})

	t.Run("checker decision is honored", func(t *testing.T) {
		t.Parallel()

		reg := newRegistry(t)
		registerGated(t, reg)
		transport := &fakeTransport{}

		var asked string
		m := mailer.New(testConfig, reg, transport,
			mailer.WithCapabilityChecker(func(capability string) bool {
				asked = capability
				return capability == "mail.send_manual"
			}),
		)

		err := m.Send(context.Background(), "shop", "gated", mailer.SendArgs{
			To:      "a@b.c",
			Context: mailer.ContextTest,
		})
		require.NoError(t, err)
		assert.Equal(t, "mail.send_manual", asked)
		assert.Len(t, transport.sent, 1)
	})

	t.Run("automated sends skip the check", func(t *testing.T) {
		t.Parallel()

		reg := newRegistry(t)
		registerGated(t, reg)
		transport := &fakeTransport{}
		m := mailer.New(testConfig, reg, transport)

		err := m.Send(context.Background(), "shop", "gated", mailer.SendArgs{To: "a@b.c"})
		require.NoError(t, err)
		assert.Len(t, transport.sent, 1)
	})
}

func TestSend_Hooks(t *testing.T) {
	t.Parallel()

	t.Run("message filters run global then template-specific", func(t *testing.T) {
		t.Parallel()

		bus := hook.NewBus()
		bus.OnFilter(mailer.FilterMessage, func(v any) any {
			msg := v.(*mailer.Message)
			msg.Subject = msg.Subject + " [global]"
			return msg
		})
		bus.OnFilter(mailer.MessageFilterName("shop", "welcome"), func(v any) any {
			msg := v.(*mailer.Message)
			msg.Subject = msg.Subject + " [specific]"
			return msg
		})

		transport := &fakeTransport{}
		m := newManager(t, transport, mailer.WithHooks(bus))

		err := m.Send(context.Background(), "shop", "welcome", mailer.SendArgs{To: "a@b.c"})
		require.NoError(t, err)
		require.Len(t, transport.sent, 1)
		assert.Equal(t, "Welcome to Example Shop [global] [specific]", transport.sent[0].Subject)
	})

	t.Run("send events fire around delivery", func(t *testing.T) {
		t.Parallel()

		bus := hook.NewBus()
		var events []string
		var afterErr error
		bus.On(mailer.EventSendBefore, func(evt hook.Event) {
			events = append(events, "before")
		})
		bus.On(mailer.EventSendAfter, func(evt hook.Event) {
			events = append(events, "after")
			afterErr = evt.Payload.(mailer.SendEvent).Err
		})

		cause := errors.New("down")
		m := newManager(t, &fakeTransport{err: cause}, mailer.WithHooks(bus))

		_ = m.Send(context.Background(), "shop", "welcome", mailer.SendArgs{To: "a@b.c"})
		assert.Equal(t, []string{"before", "after"}, events)
		assert.ErrorIs(t, afterErr, cause)
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("live data flows through tag callbacks", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		html, err := m.RenderWithData("shop", "welcome", &order{CustomerName: "Sarah", Total: "$42.00"})
		require.NoError(t, err)
		assert.Contains(t, html, "Hi Sarah!")
		assert.Contains(t, html, "$42.00")
	})

	t.Run("preview substitutes synthetic values", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		html, err := m.Render("shop", "welcome", mailer.RenderArgs{Preview: true})
		require.NoError(t, err)
		assert.Contains(t, html, "Hi [Customer Name]!")
		assert.Contains(t, html, "$19.99")
		assert.Contains(t, html, "Confirm Order")
	})

	t.Run("preview is deterministic", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		first, err := m.RenderWithOverrides("shop", "welcome", mailer.Overrides{})
		require.NoError(t, err)
		second, err := m.RenderWithOverrides("shop", "welcome", mailer.Overrides{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("overrides replace template defaults", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		html, err := m.RenderWithOverrides("shop", "welcome", mailer.Overrides{
			Message: "<p>Draft body for {customer_name}</p>",
			Title:   "Draft title",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "Draft body for [Customer Name]")
		assert.Contains(t, html, "Draft title")
		assert.NotContains(t, html, "Hi [Customer Name]!")
	})

	t.Run("global tokens resolve everywhere", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		html, err := m.Render("shop", "welcome", mailer.RenderArgs{
			Preview: true,
			Message: "<p>{site_name} / {site_url} / {admin_email} / {year} / {date} / {time}</p>",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "Example Shop")
		assert.Contains(t, html, "https://example.com")
		assert.Contains(t, html, "admin@example.com")
		assert.Contains(t, html, "2025")
		assert.Contains(t, html, "March 14, 2025")
		assert.Contains(t, html, "3:09 PM")
	})

	t.Run("title and subtitle land in the layout", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		html, err := m.Render("shop", "welcome", mailer.RenderArgs{Preview: true})
		require.NoError(t, err)
		assert.Contains(t, html, "Welcome aboard")
		assert.Contains(t, html, "Thanks for joining Example Shop")
	})

	t.Run("subject markup is stripped for the document title", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		html, err := m.Render("shop", "welcome", mailer.RenderArgs{
			Preview: true,
			Subject: "<b>Bold</b> subject",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "<title>Bold subject</title>")
	})

	t.Run("extra replacements reach the layout pass", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		html, err := m.Render("shop", "welcome", mailer.RenderArgs{
			Preview:      true,
			Message:      "<p>Ref {ticket}</p>",
			Replacements: map[string]string{"ticket": "T-100"},
		})
		require.NoError(t, err)
		assert.Contains(t, html, "Ref T-100")
	})

	t.Run("visual colors fill the layout tokens", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		html, err := m.Render("shop", "welcome", mailer.RenderArgs{Preview: true})
		require.NoError(t, err)
		assert.Contains(t, html, "#f3f4f6")
		assert.NotContains(t, html, "{color_background}")
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		m := newManager(t, nil)
		_, err := m.Render("shop", "nope", mailer.RenderArgs{Preview: true})
		require.ErrorIs(t, err, registry.ErrTemplateNotFound)
	})
}

func TestRender_Footer(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	_, err := reg.RegisterTemplate("shop", "footered", template.Config{
		Subject: "Hello",
		Message: "<p>Body</p>",
		Visual: template.Visual{
			Footer: template.Footer{
				Text: "Sent by {site_name} in {year}.",
				SocialLinks: []template.Link{
					{Label: "Twitter", URL: "https://twitter.com/example"},
				},
			},
		},
	})
	require.NoError(t, err)

	m := mailer.New(testConfig, reg, nil, mailer.WithClock(fixedClock))
	html, err := m.Render("shop", "footered", mailer.RenderArgs{Preview: true})
	require.NoError(t, err)

	assert.Contains(t, html, "Sent by Example Shop in 2025.")
	assert.Contains(t, html, "https://twitter.com/example")
	assert.NotContains(t, html, "{site_name}")
}
