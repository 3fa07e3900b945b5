// Package content gathers the free-text knowledge sources that feed the
// generation prompts: current event details, the prior-year archive,
// and the current lineup. Every accessor degrades to an empty string on
// fetch failure; the pipeline never sees an error from here.
package content

import "context"

// Provider exposes the event knowledge sources as plain strings.
type Provider interface {
	// EventDetails returns the current event details document.
	EventDetails(ctx context.Context) string
	// PreviousEvent returns the prior-year event archive.
	PreviousEvent(ctx context.Context) string
	// CurrentLineup returns the current year's lineup and activities.
	CurrentLineup(ctx context.Context) string
	// UpdatedEventDetails returns the document backing the generated
	// details page.
	UpdatedEventDetails(ctx context.Context) string
}
