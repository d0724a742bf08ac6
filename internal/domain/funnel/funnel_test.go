//go:build unit

package funnel_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"golden-key-funnel/internal/domain/funnel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingFromQuery(t *testing.T) {
	q := url.Values{"utm_source": {"fb"}, "utm_campaign": {"launch"}, "aff_id": {"42"}}
	tr := funnel.TrackingFromQuery(q, "/index.html", "https://ref.example.com")

	assert.Equal(t, "fb", tr.Source)
	assert.Equal(t, "launch", tr.Campaign)
	assert.Equal(t, "42", tr.AffiliateID)
	assert.Equal(t, []string{"AFF_42", "SOURCE_fb"}, tr.Tags())

	assert.Empty(t, funnel.Tracking{}.Tags())
}

func TestAffiliateFromQuery(t *testing.T) {
	a := funnel.AffiliateFromQuery(url.Values{"affiliate": {"7"}, "tid": {"sub-1"}, "aid": {"a9"}})
	assert.Equal(t, funnel.Affiliate{Source: "jvzoo", AffiliateID: "7", SubID: "sub-1", AID: "a9"}, a)

	assert.Equal(t, "jvzoo", funnel.AffiliateFromQuery(url.Values{}).Source)
}

func TestCarriedKeyValid(t *testing.T) {
	assert.Equal(t, "true", funnel.CarriedKeyValid(url.Values{"key_valid": {"true"}}))
	assert.Equal(t, "true", funnel.CarriedKeyValid(url.Values{"keyValid": {"true"}}))
	assert.Equal(t, "false", funnel.CarriedKeyValid(url.Values{}))

	assert.True(t, funnel.ParseKeyValid(" TRUE "))
	assert.False(t, funnel.ParseKeyValid("1"))
}

func TestFirstWord(t *testing.T) {
	assert.Equal(t, "Grace", funnel.FirstWord("  Grace   Brewster Hopper "))
	assert.Equal(t, "", funnel.FirstWord("   "))
}

func TestPages_ConfirmationURL(t *testing.T) {
	p := funnel.Pages{Confirmation: "webinar-confirmation.html"}
	assert.Equal(t, "webinar-confirmation.html?email=g%40example.com&fullname=Grace+Hopper&key_valid=false",
		p.ConfirmationURL("Grace Hopper", "g@example.com", "false"))
}

func TestPages_PartnerConfirmationURL(t *testing.T) {
	p := funnel.Pages{Partners: map[string]string{"revoicer": "webinar-confirmation-rv.html"}}

	u, ok := p.PartnerConfirmationURL("revoicer", "Grace Hopper", "g@example.com")
	assert.True(t, ok)
	assert.Equal(t, "webinar-confirmation-rv.html?email=g%40example.com&fullname=Grace+Hopper", u)

	_, ok = p.PartnerConfirmationURL("other", "Grace Hopper", "g@example.com")
	assert.False(t, ok)
}

func TestEvent_JSON(t *testing.T) {
	e := funnel.Event{
		Name:      funnel.EventWebinarRegistration,
		Email:     "g@example.com",
		Tracking:  funnel.Tracking{UTM: funnel.UTM{Source: "fb"}, AffiliateID: "42"},
		Affiliate: &funnel.Affiliate{Source: "jvzoo", AffiliateID: "42"},
	}
	b, err := json.Marshal(e)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "webinar_registration", m["event"])
	assert.Equal(t, "fb", m["utm_source"])
	assert.Equal(t, "jvzoo", m["aff_source"])
	assert.Equal(t, "42", m["affiliate_id"])
	assert.NotContains(t, m, "goldenKey")
	assert.NotContains(t, m, "source")
}
