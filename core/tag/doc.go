// Package tag defines the placeholder data model: a named, typed tag bound
// to a render callback, resolvable within one or more namespaces.
//
// A tag's kind determines how its callback output becomes HTML. Content kinds
// (Text, HTML, Callback) return the callback's string result verbatim.
// Component kinds route the result through the matching renderer in the
// components package: a map result is merged over the tag's static options,
// and a bare string is placed under the kind's primary argument key first
// (a button's string becomes its label, an alert's string its message).
//
//	customerName, err := tag.New("customer_name", tag.Config{
//		Kind:        tag.Text,
//		Description: "The customer's display name",
//		Callback: func(data any) (any, error) {
//			return data.(*Order).CustomerName, nil
//		},
//	})
//
// # Render Results
//
// Render and Preview return a Result rather than panicking or erroring out:
// one misconfigured tag must never abort substitution of the rest of a
// message. The processor maps failed results to an empty string in live mode
// and a visible bracketed marker in preview mode.
//
// # Previews
//
// Preview output resolves in order: the configured PreviewFunc, the literal
// Preview value, a canned per-kind sample rendered through the component
// table, and finally a generic "[Label]" placeholder. Labels default to a
// title-cased form of the tag name.
package tag
