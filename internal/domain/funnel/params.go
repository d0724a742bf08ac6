package funnel

import (
	"net/url"
	"strings"
)

// Query parameters passed between the activation, registration and confirmation pages.
const (
	ParamFullName    = "fullname"
	ParamEmail       = "email"
	ParamKeyValid    = "key_valid"
	ParamKeyValidAlt = "keyValid"
	ParamRegisterURL = "register_url"

	ParamUTMSource   = "utm_source"
	ParamUTMMedium   = "utm_medium"
	ParamUTMCampaign = "utm_campaign"
	ParamUTMTerm     = "utm_term"
	ParamUTMContent  = "utm_content"
)

// OptInFragment anchors the registration form on the registration page.
const OptInFragment = "webinar-optin"

type Pages struct {
	Registration string
	Confirmation string
	// Partners maps a partner source to its own confirmation page.
	Partners map[string]string
}

// PartnerConfirmationURL is the confirmation link of a partner registration form. Partner
// pages carry no key flag.
func (p Pages) PartnerConfirmationURL(source, fullName, email string) (string, bool) {
	page, ok := p.Partners[source]
	if !ok || page == "" {
		return "", false
	}
	q := url.Values{}
	q.Set(ParamFullName, fullName)
	q.Set(ParamEmail, email)
	return page + "?" + q.Encode(), true
}

// ParseKeyValid reads the stringified boolean carried between pages.
func ParseKeyValid(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// CarriedKeyValid returns the raw key_valid value forwarded to the next page, "false" when absent.
func CarriedKeyValid(q url.Values) string {
	if v := q.Get(ParamKeyValid); v != "" {
		return v
	}
	if v := q.Get(ParamKeyValidAlt); v != "" {
		return v
	}
	return "false"
}

// FirstWord returns the first whitespace-separated word of a full name.
func FirstWord(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (p Pages) RegistrationURL(fullName, email string, keyValid *bool, fragment string) string {
	q := url.Values{}
	q.Set(ParamFullName, fullName)
	q.Set(ParamEmail, email)
	if keyValid != nil {
		if *keyValid {
			q.Set(ParamKeyValid, "true")
		} else {
			q.Set(ParamKeyValid, "false")
		}
	}
	u := p.Registration + "?" + q.Encode()
	if fragment != "" {
		u += "#" + fragment
	}
	return u
}

func (p Pages) ConfirmationURL(fullName, email, keyValid string) string {
	q := url.Values{}
	q.Set(ParamFullName, fullName)
	q.Set(ParamEmail, email)
	q.Set(ParamKeyValid, keyValid)
	return p.Confirmation + "?" + q.Encode()
}
