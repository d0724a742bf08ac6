package funnel

import "time"

// Event names sent to the automation webhook. They are free-form tags; nothing downstream
// of this service depends on the taxonomy.
const (
	EventLeadSubmitted       = "index_lead_submit_step1"
	EventKeyApproved         = "index_key_valid_auto"
	EventKeyClaimed          = "index_key_redeemed_already"
	EventKeyInvalid          = "index_key_invalid"
	EventKeyValidationError  = "index_key_validation_error"
	EventWebinarRegistration = "webinar_registration"
)

// Event is the JSON body posted to the automation webhook.
type Event struct {
	Name        string   `json:"event"`
	FirstName   string   `json:"firstName,omitempty"`
	Email       string   `json:"email,omitempty"`
	GoldenKey   string   `json:"goldenKey,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	WebinarDate string   `json:"webinar_date,omitempty"`
	// PartnerSource names the partner form a registration came from.
	PartnerSource string `json:"source,omitempty"`
	Tracking
	*Affiliate
	Timestamp time.Time `json:"timestamp"`
}
