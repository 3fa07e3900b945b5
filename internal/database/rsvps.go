package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sullhouse/sullstice/internal/models"
)

// RSVPRow is one stored RSVP submission along with the reply that was
// generated for it.
type RSVPRow struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	CanAttend       string    `json:"can_attend"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	OtherGuests     string    `json:"other_guests"`
	Arriving        string    `json:"arriving"`
	Departing       string    `json:"departing"`
	Camping         string    `json:"camping"`
	Notes           string    `json:"notes"`
	Questions       string    `json:"questions"`
	ResponseSubject string    `json:"response_subject"`
	ResponseBody    string    `json:"response_body"`
}

// SaveRSVP stores a submission and its generated reply. Returns the new
// row id.
func (d *DB) SaveRSVP(rsvp models.RsvpRecord, subject, body string) (string, error) {
	id := uuid.NewString()
	_, err := d.Exec(`
		INSERT INTO rsvps (id, created_at, can_attend, name, email, other_guests, arriving, departing, camping, notes, questions, response_subject, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		time.Now().UTC().Format(time.RFC3339),
		rsvp.CanAttend,
		rsvp.Name,
		rsvp.Email,
		rsvp.OtherGuests,
		rsvp.Arriving,
		rsvp.Departing,
		rsvp.Camping,
		rsvp.Notes,
		rsvp.Questions,
		subject,
		body,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save rsvp: %w", err)
	}
	return id, nil
}

// ListRSVPs returns stored submissions, newest first.
func (d *DB) ListRSVPs() ([]RSVPRow, error) {
	rows, err := d.Query(`
		SELECT id, created_at, can_attend, name, email, other_guests, arriving, departing, camping, notes, questions, response_subject, response_body
		FROM rsvps ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	defer rows.Close()

	var result []RSVPRow
	for rows.Next() {
		var r RSVPRow
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.CanAttend, &r.Name, &r.Email, &r.OtherGuests, &r.Arriving, &r.Departing, &r.Camping, &r.Notes, &r.Questions, &r.ResponseSubject, &r.ResponseBody); err != nil {
			return nil, fmt.Errorf("failed to scan rsvp row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = t
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
