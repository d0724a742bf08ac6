package activation

import "time"

// StorageKey is the fixed key every storage scope keeps the activation under.
const StorageKey = "magicpods_validation_data"

// PersistedActivation carries a successful validation to later funnel pages.
// The newest one overwrites any earlier one; nothing expires it.
type PersistedActivation struct {
	RegisterURL string    `json:"registerUrl"`
	Key         string    `json:"key"`
	FirstName   string    `json:"firstName"`
	Email       string    `json:"email"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewPersistedActivation(a Attempt, registerURL string, now time.Time) PersistedActivation {
	return PersistedActivation{
		RegisterURL: registerURL,
		Key:         a.Key.String(),
		FirstName:   a.Lead.FirstName,
		Email:       a.Lead.Email,
		Timestamp:   now,
	}
}

// Scope identifies where an activation is stored and recovered.
// RegisterURLParam is the register_url query value used as a last resort on load.
type Scope struct {
	SessionID        string
	VisitorID        string
	RegisterURLParam string
}
