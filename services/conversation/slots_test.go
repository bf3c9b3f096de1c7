package conversation

import (
	"testing"

	"bizbuddy/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeSlots(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		hours    models.BusinessHours
		want     []string
	}{
		{
			name:     "hourly service fills the window",
			duration: 60,
			hours:    models.BusinessHours{Start: 9, End: 12},
			want:     []string{"09:00", "10:00", "11:00"},
		},
		{
			name:     "short service gets every hour",
			duration: 30,
			hours:    models.BusinessHours{Start: 9, End: 11},
			want:     []string{"09:00", "10:00"},
		},
		{
			name:     "long service drops trailing starts",
			duration: 90,
			hours:    models.BusinessHours{Start: 9, End: 12},
			want:     []string{"09:00", "10:00"},
		},
		{
			name:     "no slot fits",
			duration: 90,
			hours:    models.BusinessHours{Start: 9, End: 10},
			want:     []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeSlots(tt.duration, tt.hours))
		})
	}
}

func TestComputeSlotsDeterministic(t *testing.T) {
	hours := models.BusinessHours{Start: 8, End: 18}
	first := ComputeSlots(45, hours)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeSlots(45, hours))
	}
}
