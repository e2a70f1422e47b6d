package mailer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quillmail/quillmail/core/hook"
	"github.com/quillmail/quillmail/core/logger"
	"github.com/quillmail/quillmail/core/processor"
	"github.com/quillmail/quillmail/core/registry"
)

// Send contexts with access-control consequences.
const (
	ContextManual = "manual"
	ContextTest   = "test"
)

// Manager orchestrates templates, the substitution processor, and a
// transport into complete email sends and previews.
type Manager struct {
	cfg       Config
	reg       *registry.Registry
	proc      *processor.Processor
	transport Transport
	layouts   *Layouts
	log       *slog.Logger
	hooks     *hook.Bus
	canSend   CapabilityChecker
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for send/render diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// WithHooks sets the bus for message filters and send events.
func WithHooks(bus *hook.Bus) Option {
	return func(m *Manager) { m.hooks = bus }
}

// WithProcessor replaces the processor built from the registry by default.
func WithProcessor(proc *processor.Processor) Option {
	return func(m *Manager) { m.proc = proc }
}

// WithCapabilityChecker wires the access-control collaborator consulted for
// manual and test sends. Without one, such sends are always denied.
func WithCapabilityChecker(check CapabilityChecker) Option {
	return func(m *Manager) { m.canSend = check }
}

// WithClock overrides the time source for the date/time global tokens.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// New creates a Manager. The transport may be nil for preview-only use;
// Send then fails with ErrNoTransport.
func New(cfg Config, reg *registry.Registry, transport Transport, opts ...Option) *Manager {
	m := &Manager{
		cfg:       cfg,
		reg:       reg,
		transport: transport,
		layouts:   NewLayouts(cfg.ThemeDir),
		log:       slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.proc == nil {
		m.proc = processor.New(reg,
			processor.WithLogger(m.log),
			processor.WithHooks(m.hooks),
		)
	}
	return m
}

// SendArgs holds the per-send parameters.
type SendArgs struct {
	To      string // Recipient address; required
	Context string // "", ContextManual, or ContextTest

	// Data switches substitution to live mode; Preview selects preview mode
	// when no data is given. With neither, subject and message pass through
	// without tag substitution.
	Data    any
	Preview bool

	// Content overrides; empty fields keep the template settings.
	Subject  string
	Message  string
	Title    string
	Subtitle string

	Replacements map[string]string // Extra tokens for the final layout pass
	Headers      map[string]string
	Attachments  []Attachment
}

// Send resolves the template, runs the content pipeline, assembles the
// message, and hands it to the transport. Resolution misses come back as
// sentinel errors with a diagnostic logged; per-tag render failures never
// surface here.
func (m *Manager) Send(ctx context.Context, namespace, templateName string, args SendArgs) error {
	if args.To == "" {
		m.log.Debug("send skipped: no recipient",
			logger.Component("mailer"),
			logger.Key("template", namespace+"/"+templateName),
		)
		return ErrNoRecipient
	}
	if m.transport == nil {
		return ErrNoTransport
	}

	tpl, err := m.reg.Template(namespace, templateName)
	if err != nil {
		m.log.Debug("send skipped: template not found",
			logger.Component("mailer"),
			logger.Key("template", namespace+"/"+templateName),
		)
		return err
	}

	settings := tpl.ResolveSettings()
	if !settings.Enabled {
		m.log.Debug("send skipped: template disabled",
			logger.Component("mailer"),
			logger.Key("template", namespace+"/"+templateName),
		)
		return ErrTemplateDisabled
	}

	if args.Context == ContextManual || args.Context == ContextTest {
		if m.canSend == nil || !m.canSend(tpl.Capability) {
			m.log.Warn("send denied: missing capability",
				logger.Component("mailer"),
				logger.Key("template", namespace+"/"+templateName),
				logger.Key("capability", tpl.Capability),
			)
			return ErrCapabilityDenied
		}
	}

	c := m.buildContent(tpl, settings, renderInput{
		data:     args.Data,
		preview:  args.Preview,
		subject:  args.Subject,
		message:  args.Message,
		title:    args.Title,
		subtitle: args.Subtitle,
		extra:    args.Replacements,
	})

	msg := &Message{
		To:          []string{args.To},
		Subject:     c.subject,
		HTML:        m.assemble(tpl, c),
		Headers:     args.Headers,
		Attachments: args.Attachments,
		Tag:         tpl.Namespace + "/" + tpl.Name,
	}

	// Last-mile mutation points: the global filter first, then the
	// template-specific one.
	msg = m.filterMessage(FilterMessage, msg)
	msg = m.filterMessage(MessageFilterName(tpl.Namespace, tpl.Name), msg)

	m.hooks.Emit(EventSendBefore, SendEvent{Namespace: tpl.Namespace, Template: tpl.Name, Message: msg})
	sendErr := m.transport.Send(ctx, msg)
	m.hooks.Emit(EventSendAfter, SendEvent{Namespace: tpl.Namespace, Template: tpl.Name, Message: msg, Err: sendErr})

	if sendErr != nil {
		m.log.Error("send failed",
			logger.Component("mailer"),
			logger.Key("template", tpl.Namespace+"/"+tpl.Name),
			logger.Error(sendErr),
		)
		return errors.Join(ErrSendFailed, sendErr)
	}
	return nil
}

func (m *Manager) filterMessage(name string, msg *Message) *Message {
	out := m.hooks.Apply(name, msg)
	if filtered, ok := out.(*Message); ok && filtered != nil {
		return filtered
	}
	return msg
}

// RenderArgs holds the per-render parameters; see SendArgs for field
// semantics.
type RenderArgs struct {
	Data         any
	Preview      bool
	Subject      string
	Message      string
	Title        string
	Subtitle     string
	Replacements map[string]string
}

// Render runs the same content pipeline as Send but skips the recipient,
// enabled, and capability checks and returns the assembled HTML document.
func (m *Manager) Render(namespace, templateName string, args RenderArgs) (string, error) {
	tpl, err := m.reg.Template(namespace, templateName)
	if err != nil {
		return "", err
	}

	c := m.buildContent(tpl, tpl.ResolveSettings(), renderInput{
		data:     args.Data,
		preview:  args.Preview,
		subject:  args.Subject,
		message:  args.Message,
		title:    args.Title,
		subtitle: args.Subtitle,
		extra:    args.Replacements,
	})
	return m.assemble(tpl, c), nil
}

// Overrides carries interactive-editor content replacing the template
// defaults for a preview render.
type Overrides struct {
	Subject  string
	Message  string
	Title    string
	Subtitle string
}

// RenderWithOverrides previews a template with editor-supplied content in
// place of its defaults, substituting tags in preview mode.
func (m *Manager) RenderWithOverrides(namespace, templateName string, overrides Overrides) (string, error) {
	return m.Render(namespace, templateName, RenderArgs{
		Preview:  true,
		Subject:  overrides.Subject,
		Message:  overrides.Message,
		Title:    overrides.Title,
		Subtitle: overrides.Subtitle,
	})
}

// RenderWithData previews a template against a real business object,
// substituting tags in live mode.
func (m *Manager) RenderWithData(namespace, templateName string, data any) (string, error) {
	return m.Render(namespace, templateName, RenderArgs{Data: data})
}
