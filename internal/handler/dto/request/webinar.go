package request

import (
	"net/url"

	"golden-key-funnel/internal/usecase/commands"
)

type WebinarRegistrationRequest struct {
	FullName    string `json:"full_name" validate:"max=200"`
	Email       string `json:"email" validate:"max=254"`
	WebinarDate string `json:"webinar_date" validate:"omitempty,notblank,max=100"`
	Page        string `json:"page" validate:"omitempty,max=2048"`
	Referrer    string `json:"referrer" validate:"omitempty,max=2048"`
	Source      string `json:"source" validate:"omitempty,alphanum,max=50"`
}

func (r WebinarRegistrationRequest) ToInput(query url.Values, refererHeader string) commands.WebinarRegistrationInput {
	referrer := r.Referrer
	if referrer == "" {
		referrer = refererHeader
	}
	return commands.WebinarRegistrationInput{
		FullName:    r.FullName,
		Email:       r.Email,
		WebinarDate: r.WebinarDate,
		Page:        r.Page,
		Referrer:    referrer,
		Source:      r.Source,
		Query:       query,
	}
}
