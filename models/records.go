// File: models/records.go
package models

import "time"

// BookingRecord is one confirmed appointment. Append-only history; a customer
// accumulates records over time.
type BookingRecord struct {
	ID        string    `bson:"id" json:"id"`
	Customer  string    `bson:"customer" json:"customer"` // channel address, e.g. "whatsapp:+1555..."
	Service   string    `bson:"service" json:"service"`
	Time      string    `bson:"time" json:"time"` // HH:MM token the customer confirmed
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// CallbackRequest records a customer asking to be called back.
type CallbackRequest struct {
	ID        string    `bson:"id" json:"id"`
	Customer  string    `bson:"customer" json:"customer"`
	Message   string    `bson:"message" json:"message"` // original inbound text
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// DeliveryRequest records a customer asking for a delivery.
type DeliveryRequest struct {
	ID        string    `bson:"id" json:"id"`
	Customer  string    `bson:"customer" json:"customer"`
	Details   string    `bson:"details" json:"details"` // original inbound text
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ReminderPayload is the queued task body for an appointment reminder.
type ReminderPayload struct {
	Customer string `json:"customer"`
	Service  string `json:"service"`
	Time     string `json:"time"`
	FireDate string `json:"fireDate"`
}
