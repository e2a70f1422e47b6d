package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillmail/quillmail/core/template"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("normalizes namespace and name", func(t *testing.T) {
		t.Parallel()

		tpl, err := template.New(" Shop ", "Welcome Email", template.Config{})
		require.NoError(t, err)
		assert.Equal(t, "shop", tpl.Namespace)
		assert.Equal(t, "welcome_email", tpl.Name)
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := template.New("shop", "!!!", template.Config{})
		require.ErrorIs(t, err, template.ErrInvalidName)
	})

	t.Run("invalid namespace", func(t *testing.T) {
		t.Parallel()

		_, err := template.New("", "welcome", template.Config{})
		require.ErrorIs(t, err, template.ErrInvalidName)
	})

	t.Run("tag groups default to own namespace", func(t *testing.T) {
		t.Parallel()

		tpl, err := template.New("shop", "welcome", template.Config{})
		require.NoError(t, err)
		assert.Equal(t, []string{"shop"}, tpl.TagGroups)
	})

	t.Run("legacy single group appended after list", func(t *testing.T) {
		t.Parallel()

		tpl, err := template.New("shop", "welcome", template.Config{
			TagGroups: []string{"Shop", "billing"},
			TagGroup:  "Common",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"shop", "billing", "common"}, tpl.TagGroups)
	})

	t.Run("groups are de-duplicated after normalization", func(t *testing.T) {
		t.Parallel()

		tpl, err := template.New("shop", "welcome", template.Config{
			TagGroups: []string{"Shop", "shop", "SHOP"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"shop"}, tpl.TagGroups)
	})

	t.Run("enabled unless disabled", func(t *testing.T) {
		t.Parallel()

		tpl, err := template.New("shop", "welcome", template.Config{})
		require.NoError(t, err)
		assert.True(t, tpl.Defaults.Enabled)

		tpl, err = template.New("shop", "welcome", template.Config{Disabled: true})
		require.NoError(t, err)
		assert.False(t, tpl.Defaults.Enabled)
	})

	t.Run("layout defaults", func(t *testing.T) {
		t.Parallel()

		tpl, err := template.New("shop", "welcome", template.Config{})
		require.NoError(t, err)
		assert.Equal(t, "default", tpl.Layout)

		tpl, err = template.New("shop", "welcome", template.Config{Layout: "minimal"})
		require.NoError(t, err)
		assert.Equal(t, "minimal", tpl.Layout)
	})

	t.Run("visual merges over defaults", func(t *testing.T) {
		t.Parallel()

		tpl, err := template.New("shop", "welcome", template.Config{
			Visual: template.Visual{
				Colors: map[string]string{"button": "#000000"},
				Logo:   "https://example.com/logo.png",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "#000000", tpl.Visual.Colors["button"])
		assert.Equal(t, "#ffffff", tpl.Visual.Colors["body"])
		assert.Equal(t, "https://example.com/logo.png", tpl.Visual.Logo)
	})
}

func TestResolveSettings(t *testing.T) {
	t.Parallel()

	base := template.Config{
		Subject: "Default subject",
		Message: "Default message",
		Title:   "Default title",
	}

	t.Run("no settings func keeps defaults", func(t *testing.T) {
		t.Parallel()

		tpl, err := template.New("shop", "welcome", base)
		require.NoError(t, err)

		s := tpl.ResolveSettings()
		assert.Equal(t, "Default subject", s.Subject)
		assert.True(t, s.Enabled)
	})

	t.Run("patch overrides only non-nil fields", func(t *testing.T) {
		t.Parallel()

		cfg := base
		cfg.SettingsFunc = func() template.SettingsPatch {
			return template.SettingsPatch{
				Subject: template.String("Patched subject"),
				Enabled: template.Bool(false),
			}
		}
		tpl, err := template.New("shop", "welcome", cfg)
		require.NoError(t, err)

		s := tpl.ResolveSettings()
		assert.Equal(t, "Patched subject", s.Subject)
		assert.Equal(t, "Default message", s.Message)
		assert.Equal(t, "Default title", s.Title)
		assert.False(t, s.Enabled)
	})

	t.Run("panicking settings func falls back to defaults", func(t *testing.T) {
		t.Parallel()

		cfg := base
		cfg.SettingsFunc = func() template.SettingsPatch {
			panic("store unavailable")
		}
		tpl, err := template.New("shop", "welcome", cfg)
		require.NoError(t, err)

		s := tpl.ResolveSettings()
		assert.Equal(t, "Default subject", s.Subject)
		assert.True(t, s.Enabled)
	})
}
