package processor

// Extension point names fired around every substitution pass.
const (
	// FilterContentBefore lets subscribers transform content before
	// substitution, e.g. a macro-expansion stage.
	FilterContentBefore = "process.content.before"

	// FilterContentAfter lets subscribers transform the substituted output.
	FilterContentAfter = "process.content.after"

	// EventProcessBefore and EventProcessAfter are one-way notifications
	// around the pass itself.
	EventProcessBefore = "process.before"
	EventProcessAfter  = "process.after"
)

// Pass describes one substitution pass. It is both the filter payload (the
// Content field carries the transformation) and the notification payload.
type Pass struct {
	Content  string
	Groups   []string
	Mode     Mode
	Replaced int
}
