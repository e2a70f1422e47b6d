package template

// Settings holds the resolved content configuration of a template for one
// rendering pass.
type Settings struct {
	Subject  string
	Message  string
	Title    string
	Subtitle string
	Enabled  bool
}

// SettingsPatch is a partial settings override. Nil fields leave the default
// untouched; non-nil fields replace it.
type SettingsPatch struct {
	Subject  *string
	Message  *string
	Title    *string
	Subtitle *string
	Enabled  *bool
}

// SettingsFunc supplies a settings patch at render time, typically backed by
// a persisted configuration store.
type SettingsFunc func() SettingsPatch

// apply overlays the non-nil patch fields onto s.
func (s Settings) apply(p SettingsPatch) Settings {
	if p.Subject != nil {
		s.Subject = *p.Subject
	}
	if p.Message != nil {
		s.Message = *p.Message
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Subtitle != nil {
		s.Subtitle = *p.Subtitle
	}
	if p.Enabled != nil {
		s.Enabled = *p.Enabled
	}
	return s
}

// String returns a pointer to s, for building patches inline.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building patches inline.
func Bool(b bool) *bool { return &b }
