package activation

import "golden-key-funnel/internal/domain/funnel"

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
)

type Action struct {
	Label   string
	Href    string
	Target  string
	Primary bool
}

type SubmitControl struct {
	Label   string
	Enabled bool
}

var (
	SubmitIdle       = SubmitControl{Label: "Unlock My Free Access", Enabled: true}
	SubmitValidating = SubmitControl{Label: "Validating...", Enabled: false}
	SubmitActivated  = SubmitControl{Label: "Activated", Enabled: false}
	SubmitRetry      = SubmitControl{Label: "Try Another Key", Enabled: true}
)

// Presentation is the modal shown for a validation result.
type Presentation struct {
	Variant   Variant
	Title     string
	Headline  string
	Body      string
	Banner    string
	Actions   []Action
	Boosters  bool
	Countdown bool
	Submit    SubmitControl
}

const stillHope = "Don't Worry — There's Still Hope To Grab One... You could win 1 of 10 Golden Keys live."

// Present maps a result to its modal. The same result and lead always give the same presentation.
func Present(r ValidationResult, lead Lead, pages funnel.Pages) Presentation {
	switch r.Outcome {
	case OutcomeApproved:
		keyValid := true
		return Presentation{
			Variant:  VariantSuccess,
			Title:    "🎉 Congrats, " + lead.FirstName + "!",
			Headline: "Important Next Step...",
			Body:     "You just unlocked your VIP Early FREE Access to MagicPods. Join the live session for pro tips and bonuses.",
			Banner:   "🎉 Congrats, " + lead.FirstName + "! You just unlocked your VIP Early FREE Access to MagicPods AI",
			Actions: []Action{
				{Label: "Secure My Seat & Activate Account Now →", Href: r.RegisterURL, Target: "_blank", Primary: true},
				{Label: "Save My Webinar Seat", Href: pages.RegistrationURL(lead.FirstName, lead.Email, &keyValid, "")},
			},
			Submit: SubmitActivated,
		}
	case OutcomeClaimed:
		return secondChance("This Key has already been claimed by someone else...", "This key has already been claimed.", lead, pages)
	case OutcomeInvalid:
		return secondChance("This key appears invalid or expired...", "This key appears invalid or expired.", lead, pages)
	default:
		return Presentation{
			Variant: VariantWarning,
			Title:   "We couldn't verify your key right now",
			Body:    "This could be an invalid key or a temporary network issue. Join our VIP Launch Webinar to get another chance to win a Golden Key live.",
			Actions: []Action{
				{Label: "Register for the VIP Webinar", Href: pages.RegistrationURL(lead.FirstName, lead.Email, nil, funnel.OptInFragment), Target: "_blank", Primary: true},
			},
			Boosters: true,
			Submit:   SubmitRetry,
		}
	}
}

func secondChance(title, headline string, lead Lead, pages funnel.Pages) Presentation {
	return Presentation{
		Variant:  VariantWarning,
		Title:    title,
		Headline: headline,
		Body:     stillHope,
		Actions: []Action{
			{Label: "Secure My Seat Now", Href: pages.RegistrationURL(lead.FirstName, lead.Email, nil, funnel.OptInFragment), Target: "_blank", Primary: true},
		},
		Countdown: true,
		Submit:    SubmitRetry,
	}
}
