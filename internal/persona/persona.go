// Package persona derives the tone and identity parameters for a
// resolved RSVP submitter and their guests, and renders them into the
// context blocks injected into generation prompts.
package persona

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sullhouse/sullstice/internal/models"
	"github.com/sullhouse/sullstice/internal/roster"
)

// Defaults for people the roster does not know.
const (
	defaultRelationship = "Friend"
	defaultLevel        = 9
	unknownRelationship = "Unknown"
	unknownLevel        = 10
)

// Personalization holds the resolved identity parameters for the
// primary RSVP submitter.
type Personalization struct {
	Name              string
	Nickname          string
	TheyCallMe        string
	Relationship      string
	RelationshipLevel int
}

// GuestInfo holds the resolved (or default) relationship data for one
// additional guest.
type GuestInfo struct {
	Name              string
	Nickname          string
	Relationship      string
	RelationshipLevel int
}

// Resolve identifies the submitter and each guest against the roster.
// The submitter is matched by email first, then by name. Unresolved
// submitters get friendly defaults; unresolved guests are marked
// unknown. Guest order follows the comma-separated input.
func Resolve(rsvp models.RsvpRecord, idx *roster.Index) (Personalization, []GuestInfo) {
	person, ok := idx.Identify(rsvp.Email)
	if !ok {
		person, ok = idx.Identify(rsvp.Name)
	}

	var p Personalization
	if ok {
		p = Personalization{
			Name:              person.Name,
			Nickname:          fallback(person.Nickname, firstToken(person.Name)),
			TheyCallMe:        fallback(person.TheyCallMe, roster.DefaultHostName),
			Relationship:      person.Relationship,
			RelationshipLevel: person.RelationshipLevel,
		}
	} else {
		p = Personalization{
			Name:              rsvp.Name,
			Nickname:          firstToken(rsvp.Name),
			TheyCallMe:        roster.DefaultHostName,
			Relationship:      defaultRelationship,
			RelationshipLevel: defaultLevel,
		}
	}

	return p, resolveGuests(rsvp.OtherGuests, idx)
}

func resolveGuests(otherGuests string, idx *roster.Index) []GuestInfo {
	if strings.TrimSpace(otherGuests) == "" {
		return nil
	}

	var guests []GuestInfo
	for _, raw := range strings.Split(otherGuests, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		if person, ok := idx.Identify(name); ok {
			guests = append(guests, GuestInfo{
				Name:              person.Name,
				Nickname:          fallback(person.Nickname, firstToken(person.Name)),
				Relationship:      person.Relationship,
				RelationshipLevel: person.RelationshipLevel,
			})
			continue
		}

		guests = append(guests, GuestInfo{
			Name:              name,
			Nickname:          firstToken(name),
			Relationship:      unknownRelationship,
			RelationshipLevel: unknownLevel,
		})
	}
	return guests
}

// FormatRelationshipContext renders the personalization and guest data
// into the two plain-text blocks used by the prompt builder: the
// relationship context and the level legend. Output is deterministic;
// the guest section is omitted entirely when there are no guests.
func FormatRelationshipContext(p Personalization, guests []GuestInfo, levels map[int]string) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "\nRelationship with %s:\n", p.Name)
	fmt.Fprintf(&b, "- They call me: %s\n", p.TheyCallMe)
	fmt.Fprintf(&b, "- Nickname or how I refer to them: %s\n", p.Nickname)
	fmt.Fprintf(&b, "- Our relationship: %s\n", p.Relationship)
	fmt.Fprintf(&b, "- Relationship level (1-10 where 1 is closest): %d\n", p.RelationshipLevel)

	if len(guests) > 0 {
		b.WriteString("\nRelationship with guests:\n")
		for _, g := range guests {
			fmt.Fprintf(&b, "- %s (nickname: %s): %s, level %d\n", g.Name, g.Nickname, g.Relationship, g.RelationshipLevel)
		}
	}

	return b.String(), formatLevels(levels)
}

func formatLevels(levels map[int]string) string {
	keys := make([]int, 0, len(levels))
	for k := range levels {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%d = %s", k, levels[k]))
	}
	return strings.Join(lines, "\n")
}

// firstToken returns the first whitespace-delimited token of name, or
// name itself when there is none.
func firstToken(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
