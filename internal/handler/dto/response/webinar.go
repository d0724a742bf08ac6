package response

import (
	"golden-key-funnel/internal/usecase/commands"
	"golden-key-funnel/internal/usecase/queries"
)

type WebinarRegistrationResponse struct {
	FirstName   string `json:"first_name"`
	KeyValid    string `json:"key_valid"`
	RedirectURL string `json:"redirect_url"`
}

func FromWebinarRegistration(r *commands.WebinarRegistrationResult) *WebinarRegistrationResponse {
	return &WebinarRegistrationResponse{
		FirstName:   r.FirstName,
		KeyValid:    r.KeyValid,
		RedirectURL: r.RedirectURL,
	}
}

type VIPAccessResponse struct {
	Title     string `json:"title"`
	Available bool   `json:"available"`
	ClaimURL  string `json:"claim_url,omitempty"`
	Notice    string `json:"notice,omitempty"`
}

type ConfirmationResponse struct {
	FirstName string             `json:"first_name"`
	KeyValid  bool               `json:"key_valid"`
	Title     string             `json:"title"`
	VIPBadge  bool               `json:"vip_badge"`
	VIPAccess *VIPAccessResponse `json:"vip_access,omitempty"`
}

func FromConfirmationView(v *queries.ConfirmationView) *ConfirmationResponse {
	resp := &ConfirmationResponse{
		FirstName: v.FirstName,
		KeyValid:  v.KeyValid,
		Title:     v.Title,
		VIPBadge:  v.VIPBadge,
	}
	if v.VIPAccess != nil {
		resp.VIPAccess = &VIPAccessResponse{
			Title:     v.VIPAccess.Title,
			Available: v.VIPAccess.Available,
			ClaimURL:  v.VIPAccess.ClaimURL,
			Notice:    v.VIPAccess.Notice,
		}
	}
	return resp
}
