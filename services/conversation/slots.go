// File: services/conversation/slots.go
package conversation

import (
	"fmt"

	"bizbuddy/models"
)

// ComputeSlots returns the start times a service of the given duration can
// begin at, one per whole hour inside the operating window. Tokens are
// zero-padded HH:MM so they compare equal to NormalizeTime output. Pure of
// wall-clock time: slots earlier than "now" are not filtered out.
func ComputeSlots(durationMin int, hours models.BusinessHours) []string {
	slots := []string{}
	for h := hours.Start; h*60+durationMin <= hours.End*60; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}
