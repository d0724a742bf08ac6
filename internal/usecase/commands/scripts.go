package commands

import (
	"time"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/console"
)

// previewSteps is the cosmetic sequence shown while a key is being typed.
func previewSteps(key activation.Key) []console.Step {
	steps := []console.Step{
		{Text: "Initializing Golden Key validation system...", Severity: console.SeverityInfo, Delay: 0},
		{Text: "Connecting to MagicPods AI validation node...", Severity: console.SeverityInfo, Delay: 500 * time.Millisecond},
		{Text: "Negotiating secure channel (TLS 1.3)...", Severity: console.SeverityInfo, Delay: 1000 * time.Millisecond},
		{Text: "Key format validation: PASSED ✓", Severity: console.SeveritySuccess, Delay: 1500 * time.Millisecond},
		{Text: "Performing authenticity checks (HMAC/SHA-256)...", Severity: console.SeverityInfo, Delay: 2000 * time.Millisecond},
	}

	switch l := key.Len(); {
	case l >= activation.DetailedPreviewLength:
		steps = append(steps,
			console.Step{Text: "Scanning distributed validation database...", Severity: console.SeverityInfo, Delay: 2500 * time.Millisecond},
			console.Step{Text: "Cross-referencing with invitation registry...", Severity: console.SeverityInfo, Delay: 3000 * time.Millisecond},
			console.Step{Text: "Awaiting server validation response...", Severity: console.SeverityWarning, Delay: 3600 * time.Millisecond},
		)
	case l >= activation.MinKeyLength:
		steps = append(steps,
			console.Step{Text: "Processing key with basic validation...", Severity: console.SeverityWarning, Delay: 2500 * time.Millisecond},
		)
	}
	return steps
}

// narrationSteps run alongside the real request. They never stand in for its progress.
func narrationSteps(key activation.Key) []console.Step {
	return []console.Step{
		{Text: "Establishing secure TLS connection...", Severity: console.SeverityInfo, Delay: 0},
		{Text: "Authenticating with MagicPods validation endpoint...", Severity: console.SeverityInfo, Delay: 600 * time.Millisecond},
		{Text: "Transmitting encrypted key: " + key.Masked(), Severity: console.SeverityInfo, Delay: 1300 * time.Millisecond},
		{Text: "Running cryptographic validation algorithms...", Severity: console.SeverityInfo, Delay: 1900 * time.Millisecond},
	}
}

func outcomeLines(o activation.Outcome) []console.Step {
	switch o {
	case activation.OutcomeApproved:
		return []console.Step{
			{Text: "Validation complete: KEY APPROVED ✓", Severity: console.SeveritySuccess},
			{Text: "Initializing VIP access privileges...", Severity: console.SeveritySuccess},
			{Text: "Account activation ready for deployment", Severity: console.SeveritySuccess},
		}
	case activation.OutcomeClaimed:
		return []console.Step{{Text: "🔒 This key has been claimed already.", Severity: console.SeverityWarning}}
	case activation.OutcomeInvalid:
		return []console.Step{{Text: "❌ Invalid or expired key.", Severity: console.SeverityWarning}}
	default:
		return []console.Step{
			{Text: "❌ Network error occurred.", Severity: console.SeverityError},
			{Text: "🔄 Please check your connection and try again.", Severity: console.SeverityInfo},
		}
	}
}
