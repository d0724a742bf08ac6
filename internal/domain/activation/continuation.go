package activation

import "net/url"

// ContinuationURL accepts the URL provided by the voucher service or builds the onboarding
// fallback from the key and the lead.
func ContinuationURL(v Verdict, baseURL string, key Key, lead Lead) string {
	if provided := v.ProvidedContinuation(); provided != "" {
		return provided
	}
	q := url.Values{}
	q.Set("ml", key.String())
	q.Set("n", lead.FirstName)
	q.Set("e", lead.Email)
	return baseURL + "?" + q.Encode()
}
