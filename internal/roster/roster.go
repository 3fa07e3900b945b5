package roster

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultHostName is how unknown guests address the host when the
// roster has no they_call_me entry for them.
const DefaultHostName = "Andrew"

// rosterColumns is the fixed column layout of the roster source:
// name, email, nickname, they_call_me, relationship, relationship_level.
const rosterColumns = 6

// unknownLevel is the relationship level assigned when the source value
// is missing or not numeric (10 = never met).
const unknownLevel = 10

// Person is one known contact from the roster. Persons are immutable
// once built; both index views point at the same record.
type Person struct {
	Name              string
	Email             string
	Nickname          string
	TheyCallMe        string
	Relationship      string
	RelationshipLevel int
}

// Source provides the raw roster rows from an external tabular store.
type Source interface {
	Rows(ctx context.Context) ([][]string, error)
}

// Directory loads the roster and builds the lookup index. A Directory
// is cheap and stateless; every Load fetches fresh rows.
type Directory struct {
	source Source
	log    zerolog.Logger
}

func NewDirectory(source Source) *Directory {
	return &Directory{
		source: source,
		log:    zerolog.New(os.Stdout).With().Timestamp().Str("component", "roster").Logger(),
	}
}

// Load fetches the roster rows and builds the index and the
// relationship-level table. On fetch failure it returns an empty index
// and an empty level table along with the error; callers treat "no
// roster" as a valid, degraded state.
func (d *Directory) Load(ctx context.Context) (*Index, map[int]string, error) {
	rows, err := d.source.Rows(ctx)
	if err != nil {
		d.log.Error().Err(err).Msg("Failed to fetch roster rows")
		return NewIndex(nil), map[int]string{}, fmt.Errorf("fetching roster rows: %w", err)
	}

	people := make([]*Person, 0, len(rows))
	for _, row := range rows {
		if p, ok := parseRow(row); ok {
			people = append(people, p)
		}
	}

	d.log.Debug().Int("rows", len(rows)).Int("people", len(people)).Msg("Roster loaded")
	return NewIndex(people), DefaultLevels(), nil
}

// parseRow turns one raw roster row into a Person. Missing trailing
// columns default to empty strings; rows with a blank name are skipped.
func parseRow(row []string) (*Person, bool) {
	padded := make([]string, rosterColumns)
	for i := 0; i < rosterColumns && i < len(row); i++ {
		padded[i] = strings.TrimSpace(row[i])
	}

	if padded[0] == "" {
		return nil, false
	}

	level := unknownLevel
	if n, err := strconv.Atoi(padded[5]); err == nil {
		level = n
	}

	return &Person{
		Name:              padded[0],
		Email:             padded[1],
		Nickname:          padded[2],
		TheyCallMe:        padded[3],
		Relationship:      padded[4],
		RelationshipLevel: level,
	}, true
}

// DefaultLevels returns the fixed relationship-level table
// (1 = closest, 10 = never met).
func DefaultLevels() map[int]string {
	return map[int]string{
		1:  "very good close friend i see often",
		2:  "family, very close",
		3:  "very good close friend i don't see very often",
		4:  "good friend mostly connected through my softabll team",
		5:  "friend through sullstice - mostly just see them there",
		6:  "good friend but we haven't really stayed in touch",
		7:  "friend - but more a friend of friends",
		8:  "family, less close",
		9:  "acquaintence, have only met a few times",
		10: "never met",
	}
}
