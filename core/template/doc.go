// Package template defines the email template data model: a named bundle of
// default subject/message content, visual styling, and the tag namespaces the
// template draws placeholders from.
//
// Templates are constructed once at application bootstrap and are immutable
// afterwards. Runtime variation comes from two places: an optional
// SettingsFunc whose partial patch is merged field-by-field over the defaults
// on every render, and caller-supplied overrides at send/render time.
//
//	tpl, err := template.New("shop", "welcome", template.Config{
//		Subject:   "Welcome to {site_name}",
//		Message:   "Hi {customer_name}, thanks for signing up!",
//		Title:     "Welcome",
//		TagGroups: []string{"shop", "customers"},
//	})
package template
