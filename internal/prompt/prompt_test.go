package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullhouse/sullstice/internal/models"
	"github.com/sullhouse/sullstice/internal/persona"
)

func testRsvp() models.RsvpRecord {
	return models.RsvpRecord{
		CanAttend:   "yes",
		Name:        "Bobby Smith",
		Email:       "bob@x.com",
		OtherGuests: "Alice Jones",
		Arriving:    "friday",
		Departing:   "sunday",
		Camping:     "tent",
		Notes:       "Bringing a grill",
		Questions:   "Is there parking?",
	}
}

func testPersona() persona.Personalization {
	return persona.Personalization{
		Name:              "Bobby Smith",
		Nickname:          "Bob",
		TheyCallMe:        "Sully",
		Relationship:      "College friend",
		RelationshipLevel: 3,
	}
}

func testContent() Content {
	return Content{
		EventDetails:  "EVENT DETAILS TEXT",
		PreviousEvent: "PREVIOUS EVENT TEXT",
		CurrentLineup: "LINEUP TEXT",
	}
}

func TestFormatRSVPSummary(t *testing.T) {
	summary := FormatRSVPSummary(testRsvp())

	assert.Contains(t, summary, "Name: Bobby Smith")
	assert.Contains(t, summary, "Email: bob@x.com")
	assert.Contains(t, summary, "Arriving: Friday")
	assert.Contains(t, summary, "Departing: Sunday")
	assert.Contains(t, summary, "Camping preference: tent")
	assert.Contains(t, summary, "Other guests: Alice Jones")
	assert.Contains(t, summary, "Notes: Bringing a grill")
	assert.Contains(t, summary, "Questions: Is there parking?")
}

func TestBuildAttending(t *testing.T) {
	p := BuildAttending(testRsvp(), testPersona(), "RELATIONSHIP CONTEXT", "LEVELS TEXT", testContent())

	assert.Contains(t, p, "responding to an RSVP for Sullstice")
	assert.Contains(t, p, "RELATIONSHIP CONTEXT")
	assert.Contains(t, p, "LEVELS TEXT")
	assert.Contains(t, p, "EVENT DETAILS TEXT")
	assert.Contains(t, p, "PREVIOUS EVENT TEXT")
	assert.Contains(t, p, "LINEUP TEXT")
	assert.Contains(t, p, `Format it as "SUBJECT: Your subject line here"`)
	assert.Contains(t, p, `Format the body as "BODY: Your email body here"`)
	assert.Contains(t, p, "Write a personalized email response to Bob")
	assert.Contains(t, p, "Sign off with my name as Sully")
	assert.Contains(t, p, "2a. If they are arriving and departing same day")
	assert.Contains(t, p, "5a. Tell them that the schedule is still being finalized")
}

func TestBuildNotAttending(t *testing.T) {
	p := BuildNotAttending(testRsvp(), testPersona(), "RELATIONSHIP CONTEXT", "LEVELS TEXT", testContent())

	assert.Contains(t, p, "responding to an RSVP decline for Sullstice")
	assert.Contains(t, p, "they'll be missed this year")
	assert.Contains(t, p, "Memorial Day weekend")
	assert.Contains(t, p, "EVENT DETAILS TEXT")
	assert.Contains(t, p, "PREVIOUS EVENT TEXT")
	// The lineup has no place in a decline reply.
	assert.NotContains(t, p, "LINEUP TEXT")
}

func TestBuildPromptsAreDeterministic(t *testing.T) {
	rsvp, pers, c := testRsvp(), testPersona(), testContent()

	first := BuildAttending(rsvp, pers, "CTX", "LVL", c)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, BuildAttending(rsvp, pers, "CTX", "LVL", c))
	}

	firstDecline := BuildNotAttending(rsvp, pers, "CTX", "LVL", c)
	for i := 0; i < 20; i++ {
		require.Equal(t, firstDecline, BuildNotAttending(rsvp, pers, "CTX", "LVL", c))
	}
}

func TestBuildQuestionOrdersCurrentYearFirst(t *testing.T) {
	p := BuildQuestion("When does music start?", testContent())

	assert.Contains(t, p, "Please answer this question: When does music start?")

	details := strings.Index(p, "EVENT DETAILS TEXT")
	lineup := strings.Index(p, "LINEUP TEXT")
	previous := strings.Index(p, "PREVIOUS EVENT TEXT")
	require.NotEqual(t, -1, details)
	require.NotEqual(t, -1, lineup)
	require.NotEqual(t, -1, previous)
	assert.Less(t, details, lineup)
	assert.Less(t, lineup, previous)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"friday", "Friday"},
		{"FRIDAY", "Friday"},
		{"s", "S"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, capitalize(tt.in))
	}
}
