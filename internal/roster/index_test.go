package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() *Index {
	return NewIndex([]*Person{
		{Name: "Bobby Smith", Email: "bob@x.com", RelationshipLevel: 3},
		{Name: "Bobcat Goldthwait", Email: "bobcat@x.com", RelationshipLevel: 7},
		{Name: "Alice Jones", Email: "alice@x.com", RelationshipLevel: 1},
	})
}

func TestIdentifyByEmail(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		name  string
		query string
	}{
		{"exact", "bob@x.com"},
		{"upper case", "BOB@X.COM"},
		{"surrounding whitespace", "  bob@x.com  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := idx.Identify(tt.query)
			require.True(t, ok)
			assert.Equal(t, "Bobby Smith", p.Name)
		})
	}
}

func TestIdentifyByExactName(t *testing.T) {
	idx := testIndex()

	p, ok := idx.Identify("alice jones")
	require.True(t, ok)
	assert.Equal(t, "Alice Jones", p.Name)

	p, ok = idx.Identify("  ALICE JONES ")
	require.True(t, ok)
	assert.Equal(t, "Alice Jones", p.Name)
}

func TestIdentifyBySubstring(t *testing.T) {
	idx := testIndex()

	// Query is a substring of the roster name.
	p, ok := idx.Identify("Bobby")
	require.True(t, ok)
	assert.Equal(t, "Bobby Smith", p.Name)

	// Roster name is a substring of the query.
	p, ok = idx.Identify("Alice Jones and family")
	require.True(t, ok)
	assert.Equal(t, "Alice Jones", p.Name)
}

func TestIdentifySubstringTieBreakUsesRosterOrder(t *testing.T) {
	// "bob" matches both entries; the one earlier in roster order wins.
	idx := testIndex()

	p, ok := idx.Identify("Bob")
	require.True(t, ok)
	assert.Equal(t, "Bobby Smith", p.Name)

	// Same query against a roster listing Bobcat first.
	reversed := NewIndex([]*Person{
		{Name: "Bobcat Goldthwait"},
		{Name: "Bobby Smith"},
	})
	p, ok = reversed.Identify("Bob")
	require.True(t, ok)
	assert.Equal(t, "Bobcat Goldthwait", p.Name)
}

func TestIdentifyNotFound(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		name  string
		query string
	}{
		{"empty query", ""},
		{"whitespace query", "   "},
		{"unknown name", "Zelda"},
		{"unknown email", "nobody@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := idx.Identify(tt.query)
			assert.False(t, ok)
		})
	}
}

func TestIdentifyUnknownEmailFallsThroughToName(t *testing.T) {
	// An email query that misses the email index can still match a
	// roster entry whose name contains an '@' -- but normally it just
	// fails both lower tiers.
	idx := testIndex()

	_, ok := idx.Identify("bobby@elsewhere.com")
	assert.False(t, ok)
}
