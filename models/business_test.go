package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessConfigValidate(t *testing.T) {
	valid := BusinessConfig{
		Services: map[string]int{"haircut": 30},
		Hours:    BusinessHours{Start: 9, End: 17},
	}
	assert.NoError(t, valid.Validate())

	noServices := BusinessConfig{Hours: BusinessHours{Start: 9, End: 17}}
	assert.Error(t, noServices.Validate())

	zeroDuration := BusinessConfig{
		Services: map[string]int{"haircut": 0},
		Hours:    BusinessHours{Start: 9, End: 17},
	}
	assert.Error(t, zeroDuration.Validate())

	invertedHours := BusinessConfig{
		Services: map[string]int{"haircut": 30},
		Hours:    BusinessHours{Start: 17, End: 9},
	}
	assert.Error(t, invertedHours.Validate())
}

func TestServiceNamesSorted(t *testing.T) {
	cfg := BusinessConfig{
		Services: map[string]int{"massage": 60, "haircut": 30, "beard trim": 15},
	}
	assert.Equal(t, []string{"beard trim", "haircut", "massage"}, cfg.ServiceNames())
}
