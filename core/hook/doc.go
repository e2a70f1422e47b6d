// Package hook provides the synchronous extension points fired by the
// registry, processor, and mailer: one-way event notifications and in-place
// value filters. External code subscribes to observe registrations, content
// substitution passes, and outgoing messages, or to transform content before
// it is processed.
//
// The bus is deliberately synchronous: every operation in this library runs
// request-scoped to completion, and observers are expected to be cheap.
// Observer and filter panics are recovered and logged so a misbehaving
// subscriber can never abort a render or send.
//
// # Usage
//
//	bus := hook.NewBus()
//	bus.On(registry.EventTagRegistered, func(evt hook.Event) {
//		p := evt.Payload.(registry.TagRegistered)
//		log.Printf("tag %s/%s registered", p.Namespace, p.Tag.Name)
//	})
//
//	bus.OnFilter(processor.FilterContentBefore, func(v any) any {
//		p := v.(processor.ContentFilterPayload)
//		p.Content = expandMacros(p.Content)
//		return p
//	})
//
// Event and filter names are defined as constants in the packages that emit
// them. A nil *Bus is a valid no-op, so wiring hooks is always optional.
package hook
