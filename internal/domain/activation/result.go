package activation

import "golden-key-funnel/internal/domain/funnel"

type Outcome string

const (
	OutcomeApproved     Outcome = "approved"
	OutcomeClaimed      Outcome = "claimed"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeNetworkError Outcome = "network_error"
)

// Verdict is the voucher service's answer for one key.
type Verdict struct {
	IsValid      bool
	IsRedeemable bool
	RegisterURL  string
	MagicLink    string
}

func (v Verdict) Outcome() Outcome {
	switch {
	case v.IsValid && v.IsRedeemable:
		return OutcomeApproved
	case v.IsValid:
		return OutcomeClaimed
	default:
		return OutcomeInvalid
	}
}

// ProvidedContinuation prefers registerUrl over magicLink.
func (v Verdict) ProvidedContinuation() string {
	if v.RegisterURL != "" {
		return v.RegisterURL
	}
	return v.MagicLink
}

type ValidationResult struct {
	Outcome     Outcome
	RegisterURL string
}

func Approved(registerURL string) ValidationResult {
	return ValidationResult{Outcome: OutcomeApproved, RegisterURL: registerURL}
}

func Claimed() ValidationResult {
	return ValidationResult{Outcome: OutcomeClaimed}
}

func Invalid() ValidationResult {
	return ValidationResult{Outcome: OutcomeInvalid}
}

func NetworkError() ValidationResult {
	return ValidationResult{Outcome: OutcomeNetworkError}
}

// MarksValidated reports whether the key must not be validated again.
func (r ValidationResult) MarksValidated() bool {
	return r.Outcome == OutcomeApproved
}

func (o Outcome) EventName() string {
	switch o {
	case OutcomeApproved:
		return funnel.EventKeyApproved
	case OutcomeClaimed:
		return funnel.EventKeyClaimed
	case OutcomeInvalid:
		return funnel.EventKeyInvalid
	default:
		return funnel.EventKeyValidationError
	}
}

// EventTags are the outcome tags added in front of the attribution tags.
func (o Outcome) EventTags() []string {
	if o == OutcomeApproved {
		return []string{"KEY_VALID", "VIP_TRIAL_ACTIVE"}
	}
	return nil
}
