package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4pm", "16:00"},
		{"4 pm", "16:00"},
		{"4:30", "04:30"},
		{"4:30pm", "16:30"},
		{"16:00", "16:00"},
		{"12am", "00:00"},
		{"12pm", "12:00"},
		{"12:15 AM", "00:15"},
		{"9:30", "09:30"},
		{"09:30", "09:30"},
		{"  7PM ", "19:00"},
		{"23:59", "23:59"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTime(tt.in))
		})
	}
}

// Input that doesn't match the pattern passes through unchanged so that
// slot-matching degrades to "not available" instead of a parse error.
func TestNormalizeTimeFailsOpen(t *testing.T) {
	for _, in := range []string{"lunchtime", "around four", "9:75", "99", "", "4pm-ish"} {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, in, NormalizeTime(in))
		})
	}
}

func TestNormalizeTimeIdempotent(t *testing.T) {
	inputs := []string{"4pm", "12am", "9:30", "16:00", "7 PM", "12:00"}
	for _, in := range inputs {
		once := NormalizeTime(in)
		assert.Equal(t, once, NormalizeTime(once))
	}
}
