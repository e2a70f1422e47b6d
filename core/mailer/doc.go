// Package mailer turns registered templates into complete HTML emails and
// hands them to a delivery transport. It is the orchestration layer on top
// of the registry and processor: resolve a template, run the shared content
// pipeline, assemble the layout skeleton, and send or return the document.
//
// # Setup
//
//	reg := registry.New()
//	// ... register tags and templates ...
//
//	m := mailer.New(mailer.Config{
//		SiteName:   "Example Shop",
//		SiteURL:    "https://example.com",
//		AdminEmail: "admin@example.com",
//	}, reg, smtpTransport)
//
//	err := m.Send(ctx, "shop", "welcome", mailer.SendArgs{
//		To:   "sarah@example.com",
//		Data: order,
//	})
//
// # Content Pipeline
//
// Send and the render variants share one pipeline. Template settings are
// resolved (defaults merged with the optional dynamic settings source), the
// global tokens {site_name}, {site_url}, {admin_email}, {year}, {date}, and
// {time} are applied to subject, message, title, and subtitle, the resolved
// title and subtitle become {title}/{subtitle} tokens for use inside the
// body, caller overrides beat settings, and finally the subject and message
// run through the processor in live or preview mode. Assembly inserts the
// body into the template's layout skeleton and performs one simultaneous
// token pass with the visual configuration (colors, logo, footer) layered on
// top. Layout skeletons resolve theme-directory overrides first, then the
// embedded default, then a hardcoded minimal fallback.
//
// # Previews
//
// Two explicit entry points cover the interactive-editor cases:
// RenderWithOverrides substitutes preview values into editor-supplied
// content, and RenderWithData runs a live substitution against a real
// business object. Render exposes the full argument surface for anything
// else.
//
// # Failure Semantics
//
// Resolution misses (missing recipient, unknown template, disabled template,
// missing capability) return sentinel errors with a diagnostic logged.
// A single tag's render failure never fails a send; the processor blanks it
// in live mode and marks it in preview mode.
//
// # Development
//
// DevTransport writes messages to disk as HTML plus JSON metadata instead of
// delivering them, for local inspection of rendered emails.
package mailer
