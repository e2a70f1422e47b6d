// Package processor substitutes {tag_name} placeholder tokens in subject and
// message text with rendered tag output.
//
// Substitution is a single simultaneous pass: every resolvable token present
// in the content is rendered first, then all tokens are replaced at once. A
// replacement value that happens to contain another tag's token is therefore
// never re-substituted, and a token with no registered tag in the active
// groups passes through untouched.
//
// Failure handling is asymmetric on purpose. In live mode a failing tag is
// logged and blanked so recipients see a clean email; in preview mode it
// becomes a visible "[name]" marker so the author notices before sending.
//
//	proc := processor.New(reg)
//	out := proc.ProcessGroups("Hi {customer_name}!", []string{"shop"}, order)
package processor
