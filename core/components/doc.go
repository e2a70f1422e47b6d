// Package components provides the stateless visual building blocks used by
// email tags: buttons, alerts, tables, lists, and similar fragments. Each
// renderer is a pure function from a flat argument bag to an email-safe HTML
// string, registered in a static name-to-function table.
//
// Unknown component names render to an empty string rather than an error; a
// broken component reference degrades a single fragment, never a whole email.
//
//	html := components.Render("button", components.Args{
//		"text": "Verify Account",
//		"url":  "https://example.com/verify",
//	})
//
// PrimaryKey and Sample back the tag package: PrimaryKey names the argument a
// bare string callback result is placed under, and Sample supplies canned
// arguments for preview rendering.
package components
