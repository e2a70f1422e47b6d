package mailer

import (
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/quillmail/quillmail/core/components"
	"github.com/quillmail/quillmail/core/template"
)

// renderInput carries the per-call knobs into the content pipeline.
type renderInput struct {
	data      any
	preview   bool
	subject   string // overrides; empty keeps the template setting
	message   string
	title     string
	subtitle  string
	extra     map[string]string // caller-supplied replacement tokens
}

// content is the outcome of the shared content-processing pipeline: the
// processed subject and message plus the replacement map applied to the
// layout skeleton during assembly.
type content struct {
	subject      string
	message      string
	replacements map[string]string
}

// buildContent runs the pipeline shared by send and render:
// resolve settings, apply global replacements to every content field,
// register resolved title/subtitle as tokens, pick overrides over settings,
// and substitute tags in subject and message per mode.
func (m *Manager) buildContent(tpl *template.Template, settings template.Settings, in renderInput) content {
	globals := m.globalReplacements()
	applyGlobals := replacerFromMap(globals)

	pick := func(override, setting string) string {
		if override != "" {
			return override
		}
		return setting
	}

	subject := applyGlobals.Replace(pick(in.subject, settings.Subject))
	message := applyGlobals.Replace(pick(in.message, settings.Message))
	title := applyGlobals.Replace(pick(in.title, settings.Title))
	subtitle := applyGlobals.Replace(pick(in.subtitle, settings.Subtitle))

	subject = m.proc.ProcessAuto(subject, tpl.TagGroups, in.data, in.preview)
	message = m.proc.ProcessAuto(message, tpl.TagGroups, in.data, in.preview)

	replacements := make(map[string]string, len(globals)+len(in.extra)+2)
	for k, v := range globals {
		replacements[k] = v
	}
	replacements["title"] = title
	replacements["subtitle"] = subtitle
	for k, v := range in.extra {
		replacements[k] = v
	}

	return content{
		subject:      subject,
		message:      message,
		replacements: replacements,
	}
}

// globalReplacements computes the tokens available to every template
// regardless of its tag groups.
func (m *Manager) globalReplacements() map[string]string {
	now := m.now()
	return map[string]string{
		"site_name":   m.cfg.SiteName,
		"site_url":    m.cfg.SiteURL,
		"admin_email": m.cfg.AdminEmail,
		"year":        strconv.Itoa(now.Year()),
		"date":        now.Format("January 2, 2006"),
		"time":        now.Format("3:04 PM"),
	}
}

// assemble builds the final HTML document: load the template's skeleton,
// insert the processed message body, then apply one simultaneous token pass
// with the content replacements layered under the visual configuration.
func (m *Manager) assemble(tpl *template.Template, c content) string {
	skeleton := m.layouts.Load(tpl.Layout)

	// The body goes in first so tokens the author used inside the message
	// ({title}, {site_name}, colors) resolve in the final pass below.
	doc := strings.ReplaceAll(skeleton, "{content}", c.message)

	replacements := make(map[string]string, len(c.replacements)+len(tpl.Visual.Colors)+3)
	for k, v := range c.replacements {
		replacements[k] = v
	}
	// The {subject} token feeds the document title tag, so markup that is
	// fine in the subject line proper is stripped here.
	replacements["subject"] = stripMarkup(c.subject)
	replacements["logo"] = logoHTML(tpl.Visual, m.cfg.SiteName)
	// Footer configuration may reference global tokens ({site_url}, {year});
	// resolve them before the footer becomes a replacement value itself.
	replacements["footer"] = replaceTokens(footerHTML(tpl.Visual.Footer), c.replacements)
	for name, color := range tpl.Visual.Colors {
		replacements["color_"+name] = color
	}

	return replaceTokens(doc, replacements)
}

// replaceTokens applies one simultaneous {token} substitution pass.
func replaceTokens(s string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return s
	}
	pairs := make([]string, 0, 2*len(replacements))
	for k, v := range replacements {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// replacerFromMap builds a simultaneous replacer over {token} forms.
func replacerFromMap(replacements map[string]string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(replacements))
	for k, v := range replacements {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...)
}

// stripPolicy removes all markup, leaving text content only.
var stripPolicy = bluemonday.StrictPolicy()

func stripMarkup(s string) string {
	return strings.TrimSpace(stripPolicy.Sanitize(s))
}

// logoHTML renders the configured logo image, or nothing when unset.
func logoHTML(v template.Visual, siteName string) string {
	if v.Logo == "" {
		return ""
	}
	return components.Image(components.Args{
		"src":   v.Logo,
		"alt":   siteName,
		"width": "160",
	})
}

// footerHTML renders the footer block: text line, regular links, then social
// links, skipping whichever sections are unconfigured.
func footerHTML(f template.Footer) string {
	var sb strings.Builder
	if f.Text != "" {
		sb.WriteString(components.Footnote(components.Args{"text": f.Text}))
	}
	if len(f.Links) > 0 {
		sb.WriteString(components.Social(components.Args{"links": linkArgs(f.Links)}))
	}
	if len(f.SocialLinks) > 0 {
		sb.WriteString(components.Social(components.Args{"links": linkArgs(f.SocialLinks)}))
	}
	return sb.String()
}

func linkArgs(links []template.Link) []components.Args {
	out := make([]components.Args, 0, len(links))
	for _, link := range links {
		out = append(out, components.Args{"label": link.Label, "url": link.URL})
	}
	return out
}
