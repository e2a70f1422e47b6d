// Package registry stores tags and templates under a two-level namespace and
// resolves them for rendering. It is the single mutable piece of the library:
// everything registered here at bootstrap is treated as read-only afterwards.
//
// # Registration
//
// Tags and templates register under a (namespace, name) pair. A duplicate
// primary registration is a hard failure, never a silent overwrite; these are
// programmer errors surfaced at startup. A tag may additionally list groups,
// which alias the same tag into other namespaces so templates can share
// placeholder sets:
//
//	reg := registry.New(registry.WithLogger(log), registry.WithHooks(bus))
//
//	_, err := reg.RegisterTag("shop", "customer_name", tag.Config{
//		Kind:   tag.Text,
//		Groups: []string{"quotes"},
//		Callback: func(data any) (any, error) {
//			return data.(*Order).CustomerName, nil
//		},
//	})
//
//	_, err = reg.RegisterTemplate("shop", "welcome", template.Config{
//		Subject:   "Welcome!",
//		Message:   "Hi {customer_name}!",
//		TagGroups: []string{"shop", "quotes"},
//	})
//
// # Group Resolution
//
// TagsForGroups merges several namespaces left to right with
// first-occurrence-wins precedence: a template listing groups
// ["shop", "quotes"] sees shop's version of any tag both groups define.
//
// # Manifests
//
// Load and LoadFile register static tags and templates from a YAML manifest,
// for installations that configure templates declaratively:
//
//	namespace: shop
//	tags:
//	  - name: support_email
//	    value: help@example.com
//	templates:
//	  - name: welcome
//	    subject: Welcome to {site_name}
//	    message: Hi {customer_name}!
//
// # Events
//
// Every successful registration emits EventTagRegistered or
// EventTemplateRegistered on the configured hook bus.
package registry
