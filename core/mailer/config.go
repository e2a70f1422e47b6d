package mailer

// Config holds site-level settings available to every template as global
// replacement tokens, plus the theme directory checked for layout overrides.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	SiteName   string `env:"MAIL_SITE_NAME"`
	SiteURL    string `env:"MAIL_SITE_URL"`
	AdminEmail string `env:"MAIL_ADMIN_EMAIL"`
	ThemeDir   string `env:"MAIL_THEME_DIR"`
}
