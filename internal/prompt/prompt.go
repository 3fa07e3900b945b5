// Package prompt composes the natural-language instructions for the
// generation call. All builders are pure string templates: identical
// inputs produce byte-identical output.
package prompt

import (
	"fmt"
	"strings"

	"github.com/sullhouse/sullstice/internal/models"
	"github.com/sullhouse/sullstice/internal/persona"
)

// Content carries the knowledge-source text injected into prompts.
type Content struct {
	EventDetails  string
	PreviousEvent string
	CurrentLineup string
}

// FormatRSVPSummary renders the submitted RSVP fields into the summary
// block embedded in both RSVP prompts.
func FormatRSVPSummary(rsvp models.RsvpRecord) string {
	return fmt.Sprintf(`
Name: %s
Email: %s
Arriving: %s
Departing: %s
Camping preference: %s
Other guests: %s
Notes: %s
Questions: %s
`,
		rsvp.Name,
		rsvp.Email,
		capitalize(rsvp.Arriving),
		capitalize(rsvp.Departing),
		rsvp.Camping,
		rsvp.OtherGuests,
		rsvp.Notes,
		rsvp.Questions,
	)
}

const attendingTemplate = `
You are responding to an RSVP for Sullstice, a multi-day camping event. Use a friendly, casual,
and informative tone appropriate for the specific relationship with this person.

Here's information about the RSVP:
%s

Important personal context to help personalize this response:
%s

Relationship level meanings:
%s

Here are the event details for reference:
%s

Information about the previous Sullstice event (2024):
%s

Information about the current year's lineup and activities:
%s

Create two parts: An email subject line and a body.

For the subject line:
- Create a brief, personalized subject line related to their Sullstice RSVP
- Include their name if appropriate
- Keep it under 60 characters
- Format it as "SUBJECT: Your subject line here"

For the body:
Write a personalized email response to %s that:
1. Shows genuine excitement about seeing them (and their guests) at Sullstice, with the tone matching our relationship and relationship level
2. Confirms their RSVP details (arrival/departure days, camping preference, additional guests)
2a. If they are arriving and departing same day, they aren't camping and we don't need to mention anything about camping or rv
3. Addresses any notes or questions they included (if applicable)
4. Provides relevant information from the event details based on their camping choice, arrival day, etc.
5. If appropriate, mentions activities or performances from this year's lineup that might interest them
5a. Tell them that the schedule is still being finalized and to check the website for updates
6. If we're close (relationship level 1-3), include a personal touch or inside reference that feels authentic
7. If it's someone I haven't seen in a while (level 3, 5, or 6), express that I'm looking forward to catching up
8. If it's family, use an appropriate familial tone
9. Sign off with my name as %s

Format the body as "BODY: Your email body here"

The response should be conversational, reflecting the actual relationship I have with this person. Make it sound like it was written by me, not by an AI.
`

// BuildAttending composes the generation prompt for an attending RSVP.
func BuildAttending(rsvp models.RsvpRecord, p persona.Personalization, relationshipContext, levelsText string, c Content) string {
	return fmt.Sprintf(attendingTemplate,
		FormatRSVPSummary(rsvp),
		relationshipContext,
		levelsText,
		c.EventDetails,
		c.PreviousEvent,
		c.CurrentLineup,
		p.Nickname,
		p.TheyCallMe,
	)
}

const notAttendingTemplate = `
You are responding to an RSVP decline for Sullstice, a multi-day camping event. Use a friendly, casual,
and understanding tone appropriate for the specific relationship with this person.

Here's information about the RSVP:
%s

Important personal context to help personalize this response:
%s

Relationship level meanings:
%s

Here are the event details for reference:
%s

Information about the previous Sullstice event (2024):
%s

Create two parts: An email subject line and a body.

For the subject line:
- Create a brief, personalized subject line acknowledging their Sullstice RSVP
- Include their name if appropriate
- Keep it under 60 characters
- Format it as "SUBJECT: Your subject line here"

For the body:
Write a personalized email response to %s that:
1. Expresses understanding and appreciation that they took the time to RSVP even though they can't attend
2. Conveys that they'll be missed this year
3. Reminds them that Sullstice happens every year around the same time (Memorial Day weekend) and you hope to see them next year
4. Addresses any notes or questions they included (if applicable)
5. If we're close (relationship level 1-3), include a personal touch or inside reference that feels authentic
6. If it's family, use an appropriate familial tone
7. Sign off with my name as %s

Format the body as "BODY: Your email body here"

The response should be conversational, reflecting the actual relationship I have with this person. Make it sound like it was written by me, not by an AI.
`

// BuildNotAttending composes the generation prompt for a declined RSVP.
// The current lineup is deliberately left out; someone who can't make
// it doesn't need the schedule.
func BuildNotAttending(rsvp models.RsvpRecord, p persona.Personalization, relationshipContext, levelsText string, c Content) string {
	return fmt.Sprintf(notAttendingTemplate,
		FormatRSVPSummary(rsvp),
		relationshipContext,
		levelsText,
		c.EventDetails,
		c.PreviousEvent,
		p.Nickname,
		p.TheyCallMe,
	)
}

const questionContextTemplate = `
GENERAL EVENT INFORMATION FOR THIS YEAR:
%s

CURRENT YEAR'S LINEUP AND ACTIVITIES:
%s

INFORMATION ABOUT LAST YEAR'S EVENT (2024) - Use this for reference if the question isn't clearly answered by current year information:
%s
`

// BuildQuestion composes the generation prompt for a free-form
// question. Current-year content is ordered ahead of the prior-year
// archive so the model prefers it.
func BuildQuestion(question string, c Content) string {
	context := fmt.Sprintf(questionContextTemplate, c.EventDetails, c.CurrentLineup, c.PreviousEvent)
	return fmt.Sprintf("Here is information about Sullstice:\n%s\n\nPlease answer this question: %s", context, question)
}

// capitalize upper-cases the first letter and lower-cases the rest,
// mirroring how arrival/departure days are normalized for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
