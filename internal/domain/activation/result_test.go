//go:build unit

package activation_test

import (
	"testing"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/funnel"

	"github.com/stretchr/testify/assert"
)

func TestVerdict_Outcome(t *testing.T) {
	cases := []struct {
		name    string
		verdict activation.Verdict
		want    activation.Outcome
	}{
		{name: "valid and redeemable", verdict: activation.Verdict{IsValid: true, IsRedeemable: true}, want: activation.OutcomeApproved},
		{name: "valid but redeemed", verdict: activation.Verdict{IsValid: true}, want: activation.OutcomeClaimed},
		{name: "invalid", verdict: activation.Verdict{}, want: activation.OutcomeInvalid},
		{name: "redeemable flag alone is invalid", verdict: activation.Verdict{IsRedeemable: true}, want: activation.OutcomeInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.verdict.Outcome())
		})
	}
}

func TestOutcome_Events(t *testing.T) {
	assert.Equal(t, funnel.EventKeyApproved, activation.OutcomeApproved.EventName())
	assert.Equal(t, funnel.EventKeyClaimed, activation.OutcomeClaimed.EventName())
	assert.Equal(t, funnel.EventKeyInvalid, activation.OutcomeInvalid.EventName())
	assert.Equal(t, funnel.EventKeyValidationError, activation.OutcomeNetworkError.EventName())

	assert.Equal(t, []string{"KEY_VALID", "VIP_TRIAL_ACTIVE"}, activation.OutcomeApproved.EventTags())
	assert.Empty(t, activation.OutcomeInvalid.EventTags())
}

func TestValidationResult_MarksValidated(t *testing.T) {
	assert.True(t, activation.Approved("https://x").MarksValidated())
	assert.False(t, activation.Claimed().MarksValidated())
	assert.False(t, activation.Invalid().MarksValidated())
	assert.False(t, activation.NetworkError().MarksValidated())
}

func TestContinuationURL(t *testing.T) {
	key := activation.NewKey("GOLD-1234")
	lead := activation.Lead{FirstName: "Ada", Email: "ada+vip@example.com"}
	base := "https://app.example.com/onboarding"

	t.Run("register url preferred", func(t *testing.T) {
		v := activation.Verdict{RegisterURL: "https://r.example.com", MagicLink: "https://m.example.com"}
		assert.Equal(t, "https://r.example.com", activation.ContinuationURL(v, base, key, lead))
	})

	t.Run("magic link when no register url", func(t *testing.T) {
		v := activation.Verdict{MagicLink: "https://m.example.com"}
		assert.Equal(t, "https://m.example.com", activation.ContinuationURL(v, base, key, lead))
	})

	t.Run("onboarding fallback carries key and lead", func(t *testing.T) {
		got := activation.ContinuationURL(activation.Verdict{}, base, key, lead)
		assert.Equal(t, base+"?e=ada%2Bvip%40example.com&ml=GOLD-1234&n=Ada", got)
	})
}
