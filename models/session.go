// File: models/session.go
package models

// Session holds a customer's pending booking between "book" and "confirm".
// There is at most one per customer; a new "book" replaces it wholesale.
type Session struct {
	Service      string   `bson:"service" json:"service"`
	OfferedSlots []string `bson:"offeredSlots" json:"offeredSlots"` // HH:MM tokens quoted to the customer
}

// Offered reports whether the given time token was quoted in this session.
func (s *Session) Offered(token string) bool {
	for _, slot := range s.OfferedSlots {
		if slot == token {
			return true
		}
	}
	return false
}
