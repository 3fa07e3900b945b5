package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	r := RsvpRecord{}
	r.ApplyDefaults()
	assert.Equal(t, "Guest", r.Name)
	assert.Equal(t, "yes", r.CanAttend)

	r = RsvpRecord{Name: "Bobby Smith", CanAttend: "no"}
	r.ApplyDefaults()
	assert.Equal(t, "Bobby Smith", r.Name)
	assert.Equal(t, "no", r.CanAttend)
}

func TestAttending(t *testing.T) {
	tests := []struct {
		canAttend string
		expected  bool
	}{
		{"yes", true},
		{"YES", true},
		{"  yes  ", true},
		{"no", false},
		{"maybe", false},
		{"", false},
	}

	for _, tt := range tests {
		r := RsvpRecord{CanAttend: tt.canAttend}
		assert.Equal(t, tt.expected, r.Attending(), "can_attend=%q", tt.canAttend)
	}
}
