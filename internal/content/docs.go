package content

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/docs/v1"

	"github.com/sullhouse/sullstice/internal/googleauth"
)

// DocsProvider fetches the knowledge sources from Google Docs. Each
// accessor re-fetches; there is no caching contract.
type DocsProvider struct {
	service *docs.Service
	log     zerolog.Logger

	eventDetailsID   string
	previousEventID  string
	lineupID         string
	updatedDetailsID string
}

// DocsConfig names the four source documents.
type DocsConfig struct {
	CredentialsFile  string
	EventDetailsID   string
	PreviousEventID  string
	LineupID         string
	UpdatedDetailsID string
}

// NewDocsProvider creates a Docs-backed content provider.
func NewDocsProvider(ctx context.Context, cfg DocsConfig) (*DocsProvider, error) {
	opts, err := googleauth.ClientOptions(ctx, cfg.CredentialsFile, docs.DocumentsReadonlyScope)
	if err != nil {
		return nil, err
	}

	service, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating docs service: %w", err)
	}

	return &DocsProvider{
		service:          service,
		log:              zerolog.New(os.Stdout).With().Timestamp().Str("component", "content").Logger(),
		eventDetailsID:   cfg.EventDetailsID,
		previousEventID:  cfg.PreviousEventID,
		lineupID:         cfg.LineupID,
		updatedDetailsID: cfg.UpdatedDetailsID,
	}, nil
}

func (p *DocsProvider) EventDetails(ctx context.Context) string {
	return p.fetch(ctx, p.eventDetailsID, "event details")
}

func (p *DocsProvider) PreviousEvent(ctx context.Context) string {
	return p.fetch(ctx, p.previousEventID, "previous event")
}

func (p *DocsProvider) CurrentLineup(ctx context.Context) string {
	return p.fetch(ctx, p.lineupID, "current lineup")
}

func (p *DocsProvider) UpdatedEventDetails(ctx context.Context) string {
	return p.fetch(ctx, p.updatedDetailsID, "updated event details")
}

// fetch pulls one document and flattens it to plain text. Failures are
// logged and surface as an empty string.
func (p *DocsProvider) fetch(ctx context.Context, docID, label string) string {
	if docID == "" {
		p.log.Warn().Str("source", label).Msg("No document configured")
		return ""
	}

	doc, err := p.service.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		p.log.Error().Err(err).Str("source", label).Msg("Failed to fetch document")
		return ""
	}

	return extractText(doc)
}

// extractText walks the document body and concatenates every text run.
func extractText(doc *docs.Document) string {
	if doc == nil || doc.Body == nil {
		return ""
	}

	var b strings.Builder
	for _, elem := range doc.Body.Content {
		if elem.Paragraph == nil {
			continue
		}
		for _, pe := range elem.Paragraph.Elements {
			if pe.TextRun != nil {
				b.WriteString(pe.TextRun.Content)
			}
		}
	}
	return b.String()
}
