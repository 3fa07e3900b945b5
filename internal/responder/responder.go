// Package responder turns an inbound RSVP or question into a finished
// reply: it personalizes against the roster, builds the prompt, calls
// the generation provider, and parses the result. Every path ends in a
// usable reply; provider failures degrade to a deterministic template
// and are never surfaced to the caller.
package responder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sullhouse/sullstice/internal/claude"
	"github.com/sullhouse/sullstice/internal/content"
	"github.com/sullhouse/sullstice/internal/models"
	"github.com/sullhouse/sullstice/internal/persona"
	"github.com/sullhouse/sullstice/internal/prompt"
	"github.com/sullhouse/sullstice/internal/roster"
)

// Generation bounds. RSVP replies get more room and a warmer
// temperature; question answers stay short and factual.
const (
	rsvpMaxTokens       = 1000
	rsvpTemperature     = 0.7
	questionMaxTokens   = 500
	questionTemperature = 0.5
)

const (
	subjectTag     = "SUBJECT:"
	bodyTag        = "BODY:"
	defaultSubject = "Your Sullstice RSVP"
)

const rsvpSystemTemplate = "You are the host of Sullstice, a multi-day camping event, writing personalized RSVP responses. This guest knows you as %s; sign your emails that way."

const questionSystemPrompt = `You are a helpful assistant for Sullstice, a multi-day camping event.
When answering questions:
1. Prioritize information from the current year's details and lineup
2. If the current year's information doesn't fully address the question, you can reference how things worked in 2024, but clearly indicate that this is historical information and things might be different this year
3. Be conversational and friendly in your tone
4. Be concise but thorough
5. If the question is about something not mentioned in any of the provided information, acknowledge this and suggest contacting the organizers directly at sullhouse@gmail.com`

const disclosurePostscript = "\n\nP.S. This reply was drafted with a little help from my AI assistant, so if anything looks off, just reply and ask me directly."

const questionFallback = "I couldn't find specific information about that. Please email sullhouse@gmail.com for more details."

// GeneratedResponse is the two-field result of RSVP response
// generation. Both fields are always non-empty.
type GeneratedResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Generator drafts text from a prompt. Implemented by claude.Client.
type Generator interface {
	Generate(ctx context.Context, req claude.Request) (string, error)
	IsConfigured() bool
}

// RosterLoader provides a fresh roster snapshot per request.
// Implemented by roster.Directory.
type RosterLoader interface {
	Load(ctx context.Context) (*roster.Index, map[int]string, error)
}

type Responder struct {
	generator Generator
	roster    RosterLoader
	content   content.Provider
	log       zerolog.Logger
}

func New(generator Generator, rosterLoader RosterLoader, provider content.Provider) *Responder {
	return &Responder{
		generator: generator,
		roster:    rosterLoader,
		content:   provider,
		log:       zerolog.New(os.Stdout).With().Timestamp().Str("component", "responder").Logger(),
	}
}

// RespondToRSVP generates a personalized reply to an RSVP submission.
// It never returns an error: a missing credential skips the provider
// call entirely, and any provider or parse failure falls back to a
// deterministic reply built from the raw RSVP fields.
func (r *Responder) RespondToRSVP(ctx context.Context, rsvp models.RsvpRecord) GeneratedResponse {
	p, guests, levels := r.buildPersonContext(ctx, rsvp)

	if !r.generator.IsConfigured() {
		r.log.Warn().Msg("Generation credential missing, using fallback response")
		return fallbackRSVP(rsvp, p)
	}

	relationshipContext, levelsText := persona.FormatRelationshipContext(p, guests, levels)
	cc := prompt.Content{
		EventDetails:  r.content.EventDetails(ctx),
		PreviousEvent: r.content.PreviousEvent(ctx),
		CurrentLineup: r.content.CurrentLineup(ctx),
	}

	var userPrompt string
	if rsvp.Attending() {
		userPrompt = prompt.BuildAttending(rsvp, p, relationshipContext, levelsText, cc)
	} else {
		userPrompt = prompt.BuildNotAttending(rsvp, p, relationshipContext, levelsText, cc)
	}

	raw, err := r.generator.Generate(ctx, claude.Request{
		System:      fmt.Sprintf(rsvpSystemTemplate, p.TheyCallMe),
		Prompt:      userPrompt,
		MaxTokens:   rsvpMaxTokens,
		Temperature: rsvpTemperature,
	})
	if err != nil {
		r.log.Error().Err(err).Msg("Generation failed, using fallback response")
		return fallbackRSVP(rsvp, p)
	}
	if strings.TrimSpace(raw) == "" {
		r.log.Error().Msg("Empty generation output, using fallback response")
		return fallbackRSVP(rsvp, p)
	}

	resp := parseSubjectBody(raw)
	resp.Body += disclosurePostscript
	return resp
}

// AnswerQuestion generates an answer to a free-form question about the
// event. Like RespondToRSVP it never fails; the fallback points the
// asker at the host directly.
func (r *Responder) AnswerQuestion(ctx context.Context, question string) string {
	if !r.generator.IsConfigured() {
		r.log.Warn().Msg("Generation credential missing, using fallback answer")
		return questionFallback
	}

	cc := prompt.Content{
		EventDetails:  r.content.EventDetails(ctx),
		PreviousEvent: r.content.PreviousEvent(ctx),
		CurrentLineup: r.content.CurrentLineup(ctx),
	}

	raw, err := r.generator.Generate(ctx, claude.Request{
		System:      questionSystemPrompt,
		Prompt:      prompt.BuildQuestion(question, cc),
		MaxTokens:   questionMaxTokens,
		Temperature: questionTemperature,
	})
	if err != nil {
		r.log.Error().Err(err).Msg("Question generation failed, using fallback answer")
		return questionFallback
	}
	if strings.TrimSpace(raw) == "" {
		r.log.Error().Msg("Empty question answer, using fallback answer")
		return questionFallback
	}

	return strings.TrimSpace(raw)
}

// buildPersonContext loads a fresh roster snapshot and resolves the
// submitter and guests against it. A roster failure degrades to the
// unknown-person defaults.
func (r *Responder) buildPersonContext(ctx context.Context, rsvp models.RsvpRecord) (persona.Personalization, []persona.GuestInfo, map[int]string) {
	idx, levels, err := r.roster.Load(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("Roster unavailable, continuing with defaults")
	}
	if idx == nil {
		idx = roster.NewIndex(nil)
	}
	if levels == nil {
		levels = map[int]string{}
	}

	p, guests := persona.Resolve(rsvp, idx)
	return p, guests, levels
}

// parseSubjectBody splits provider output on the SUBJECT:/BODY: marker
// convention. A missing subject tag yields the fixed default subject; a
// missing body tag means the whole output is the body.
func parseSubjectBody(raw string) GeneratedResponse {
	si := strings.Index(raw, subjectTag)
	bi := strings.Index(raw, bodyTag)

	subject := defaultSubject
	if si >= 0 {
		end := len(raw)
		if bi > si {
			end = bi
		}
		if s := strings.TrimSpace(raw[si+len(subjectTag) : end]); s != "" {
			subject = s
		}
	}

	body := strings.TrimSpace(raw)
	if bi >= 0 {
		if b := strings.TrimSpace(raw[bi+len(bodyTag):]); b != "" {
			body = b
		}
	}

	return GeneratedResponse{Subject: subject, Body: body}
}

// fallbackRSVP builds the deterministic reply used whenever generation
// is unavailable. It echoes only the raw RSVP fields.
func fallbackRSVP(rsvp models.RsvpRecord, p persona.Personalization) GeneratedResponse {
	var b strings.Builder
	fmt.Fprintf(&b, "%s,\n\nThank you for your RSVP to Sullstice! I've got you down for the following:\n\n", rsvp.Name)
	fmt.Fprintf(&b, "Arriving: %s\n", rsvp.Arriving)
	fmt.Fprintf(&b, "Departing: %s\n", rsvp.Departing)
	fmt.Fprintf(&b, "Camping option: %s\n", rsvp.Camping)
	if rsvp.OtherGuests != "" {
		fmt.Fprintf(&b, "Additional guests: %s\n", rsvp.OtherGuests)
	}
	if rsvp.Notes != "" {
		fmt.Fprintf(&b, "Your notes: %s\n", rsvp.Notes)
	}
	b.WriteString("\nPlease visit sullstice.com for event details and updates.\n\nLooking forward to seeing you!\nSullhouse\n")

	return GeneratedResponse{
		Subject: fmt.Sprintf("Sullstice RSVP confirmation for %s", p.Nickname),
		Body:    b.String(),
	}
}
