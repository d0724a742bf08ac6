package request

import (
	"net/url"

	"golden-key-funnel/internal/usecase/commands"
)

// LeadRequest is step one of the activation form. Missing fields are refused by the
// use case, not by binding, so the client gets the refusal status.
type LeadRequest struct {
	FirstName string `json:"first_name" validate:"max=100"`
	Email     string `json:"email" validate:"max=254"`
	Page      string `json:"page" validate:"omitempty,max=2048"`
	Referrer  string `json:"referrer" validate:"omitempty,max=2048"`
}

func (r LeadRequest) ToInput(query url.Values, refererHeader string) commands.LeadInput {
	referrer := r.Referrer
	if referrer == "" {
		referrer = refererHeader
	}
	return commands.LeadInput{
		FirstName: r.FirstName,
		Email:     r.Email,
		Page:      r.Page,
		Referrer:  referrer,
		Query:     query,
	}
}

// KeyInputRequest reports the current content of the key field. An empty key is valid input.
type KeyInputRequest struct {
	Key string `json:"key" validate:"max=256"`
}

type SubmitKeyRequest struct {
	Key string `json:"key" validate:"required,notblank,max=256"`
}
