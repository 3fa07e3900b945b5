package models

import "strings"

// RsvpRecord is a flat record of submitted RSVP fields. It is built once
// from the inbound request payload and passed by value through the
// pipeline; nothing mutates it after ApplyDefaults.
type RsvpRecord struct {
	CanAttend   string `json:"can_attend"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	OtherGuests string `json:"other_guests"`
	Arriving    string `json:"arriving"`
	Departing   string `json:"departing"`
	Camping     string `json:"camping"`
	Notes       string `json:"notes"`
	Questions   string `json:"questions"`
}

// ApplyDefaults fills the two fields that have non-empty defaults.
func (r *RsvpRecord) ApplyDefaults() {
	if strings.TrimSpace(r.Name) == "" {
		r.Name = "Guest"
	}
	if strings.TrimSpace(r.CanAttend) == "" {
		r.CanAttend = "yes"
	}
}

// Attending reports whether the guest said yes. Anything that is not a
// case-insensitive "yes" counts as a decline.
func (r RsvpRecord) Attending() bool {
	return strings.EqualFold(strings.TrimSpace(r.CanAttend), "yes")
}
