// File: models/intent.go
package models

// Intent values the classifier may return. Anything else is treated as
// IntentUnknown by the engine.
const (
	IntentBook       = "BOOK"
	IntentReschedule = "RESCHEDULE"
	IntentCallback   = "CALLBACK"
	IntentDelivery   = "DELIVERY_REQUEST"
	IntentFAQ        = "FAQ"
	IntentUnknown    = "UNKNOWN"
)

// ClassifiedIntent is the classifier's best-effort guess for one message.
// Every field is untrusted: Service may name something outside the catalog,
// Time may be absent or raw free text, Intent may be outside the known set.
type ClassifiedIntent struct {
	Intent  string `json:"intent"`
	Service string `json:"service,omitempty"`
	Time    string `json:"time,omitempty"`
}
