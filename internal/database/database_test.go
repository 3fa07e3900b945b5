package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullhouse/sullstice/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndListRSVPs(t *testing.T) {
	db := newTestDB(t)

	rsvp := models.RsvpRecord{
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

	id, err := db.SaveRSVP(rsvp, "Hi Bob", "Hello there")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rows, err := db.ListRSVPs()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, id, row.ID)
	assert.False(t, row.CreatedAt.IsZero())
	assert.Equal(t, "yes", row.CanAttend)
	assert.Equal(t, "Bobby Smith", row.Name)
	assert.Equal(t, "bob@x.com", row.Email)
	assert.Equal(t, "Alice Jones", row.OtherGuests)
	assert.Equal(t, "friday", row.Arriving)
	assert.Equal(t, "sunday", row.Departing)
	assert.Equal(t, "tent", row.Camping)
	assert.Equal(t, "Bringing a grill", row.Notes)
	assert.Equal(t, "Is there parking?", row.Questions)
	assert.Equal(t, "Hi Bob", row.ResponseSubject)
	assert.Equal(t, "Hello there", row.ResponseBody)
}

func TestSaveAndListQuestions(t *testing.T) {
	db := newTestDB(t)

	id, err := db.SaveQuestion("When does music start?", "Music starts at 5pm.")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rows, err := db.ListQuestions()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, "When does music start?", rows[0].Question)
	assert.Equal(t, "Music starts at 5pm.", rows[0].Answer)
	assert.False(t, rows[0].CreatedAt.IsZero())
}

func TestListEmptyTables(t *testing.T) {
	db := newTestDB(t)

	rsvps, err := db.ListRSVPs()
	require.NoError(t, err)
	assert.Empty(t, rsvps)

	questions, err := db.ListQuestions()
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestSaveRSVPIDsAreUnique(t *testing.T) {
	db := newTestDB(t)

	first, err := db.SaveRSVP(models.RsvpRecord{Name: "A"}, "s", "b")
	require.NoError(t, err)
	second, err := db.SaveRSVP(models.RsvpRecord{Name: "B"}, "s", "b")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
