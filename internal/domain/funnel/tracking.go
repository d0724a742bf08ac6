package funnel

import "net/url"

type UTM struct {
	Source   string `json:"utm_source,omitempty"`
	Medium   string `json:"utm_medium,omitempty"`
	Campaign string `json:"utm_campaign,omitempty"`
	Term     string `json:"utm_term,omitempty"`
	Content  string `json:"utm_content,omitempty"`
}

// Tracking is the attribution context of a lead: where the page was opened from.
type Tracking struct {
	UTM
	AffiliateID string `json:"-"`
	Page        string `json:"page,omitempty"`
	Referrer    string `json:"referrer,omitempty"`
}

func TrackingFromQuery(q url.Values, page, referrer string) Tracking {
	return Tracking{
		UTM: UTM{
			Source:   q.Get(ParamUTMSource),
			Medium:   q.Get(ParamUTMMedium),
			Campaign: q.Get(ParamUTMCampaign),
			Term:     q.Get(ParamUTMTerm),
			Content:  q.Get(ParamUTMContent),
		},
		AffiliateID: firstNonEmpty(q, "aff", "aff_id", "aid"),
		Page:        page,
		Referrer:    referrer,
	}
}

// Tags are the lead tags derived from attribution.
func (t Tracking) Tags() []string {
	tags := make([]string, 0, 2)
	if t.AffiliateID != "" {
		tags = append(tags, "AFF_"+t.AffiliateID)
	}
	if t.Source != "" {
		tags = append(tags, "SOURCE_"+t.Source)
	}
	return tags
}

const defaultAffiliateSource = "jvzoo"

// Affiliate is the affiliate attribution sent with webinar registrations.
type Affiliate struct {
	Source      string `json:"aff_source,omitempty"`
	AffiliateID string `json:"affiliate_id,omitempty"`
	SubID       string `json:"sub_id,omitempty"`
	AID         string `json:"aid,omitempty"`
}

func AffiliateFromQuery(q url.Values) Affiliate {
	return Affiliate{
		Source:      defaultAffiliateSource,
		AffiliateID: firstNonEmpty(q, "aff", "affiliate", "affiliate_id", "aff_id"),
		SubID:       firstNonEmpty(q, "tid", "subid", "sub_id", "sid"),
		AID:         q.Get("aid"),
	}
}

func firstNonEmpty(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	return ""
}
