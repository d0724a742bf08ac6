package response

import (
	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/console"
	"golden-key-funnel/internal/usecase/commands"
)

type LeadResponse struct {
	FirstName string `json:"first_name"`
	NextStep  int    `json:"next_step"`
}

func FromLeadResult(r *commands.LeadResult) *LeadResponse {
	return &LeadResponse{FirstName: r.FirstName, NextStep: r.NextStep}
}

type KeyInputResponse struct {
	Stage               string `json:"stage"`
	ConsoleVisible      bool   `json:"console_visible"`
	ValidationScheduled bool   `json:"validation_scheduled"`
	DebounceMs          int64  `json:"debounce_ms,omitempty"`
}

func FromInputDecision(d *commands.InputDecision) *KeyInputResponse {
	return &KeyInputResponse{
		Stage:               string(d.Stage),
		ConsoleVisible:      d.ConsoleVisible,
		ValidationScheduled: d.Scheduled,
		DebounceMs:          d.Delay.Milliseconds(),
	}
}

type SubmitControlResponse struct {
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

func FromSubmitControl(s activation.SubmitControl) SubmitControlResponse {
	return SubmitControlResponse{Label: s.Label, Enabled: s.Enabled}
}

type ActionResponse struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Target  string `json:"target,omitempty"`
	Primary bool   `json:"primary"`
}

type PresentationResponse struct {
	Variant   string           `json:"variant"`
	Title     string           `json:"title"`
	Headline  string           `json:"headline,omitempty"`
	Body      string           `json:"body"`
	Banner    string           `json:"banner,omitempty"`
	Actions   []ActionResponse `json:"actions"`
	Boosters  bool             `json:"boosters"`
	Countdown bool             `json:"countdown"`
}

func FromPresentation(p activation.Presentation) *PresentationResponse {
	if p.Variant == "" {
		return nil
	}
	actions := make([]ActionResponse, 0, len(p.Actions))
	for _, a := range p.Actions {
		actions = append(actions, ActionResponse{Label: a.Label, Href: a.Href, Target: a.Target, Primary: a.Primary})
	}
	return &PresentationResponse{
		Variant:   string(p.Variant),
		Title:     p.Title,
		Headline:  p.Headline,
		Body:      p.Body,
		Banner:    p.Banner,
		Actions:   actions,
		Boosters:  p.Boosters,
		Countdown: p.Countdown,
	}
}

type SubmitKeyResponse struct {
	AttemptID       string                `json:"attempt_id"`
	Outcome         string                `json:"outcome,omitempty"`
	State           string                `json:"state"`
	Skipped         bool                  `json:"skipped"`
	SkipReason      string                `json:"skip_reason,omitempty"`
	ContinuationURL string                `json:"continuation_url,omitempty"`
	Presentation    *PresentationResponse `json:"presentation,omitempty"`
	Submit          SubmitControlResponse `json:"submit"`
}

func FromValidateResult(r *commands.ValidateResult) *SubmitKeyResponse {
	return &SubmitKeyResponse{
		AttemptID:       r.Attempt.ID.String(),
		Outcome:         string(r.Result.Outcome),
		State:           string(r.State),
		Skipped:         r.Skipped,
		SkipReason:      string(r.SkipReason),
		ContinuationURL: r.Result.RegisterURL,
		Presentation:    FromPresentation(r.Presentation),
		Submit:          FromSubmitControl(r.Presentation.Submit),
	}
}

type StatusResponse struct {
	State            string                `json:"state"`
	Validating       bool                  `json:"validating"`
	InFlightKey      string                `json:"in_flight_key,omitempty"`
	LastValidatedKey string                `json:"last_validated_key,omitempty"`
	LastOutcome      string                `json:"last_outcome,omitempty"`
	Submit           SubmitControlResponse `json:"submit"`
}

func FromStatus(s *commands.Status) *StatusResponse {
	return &StatusResponse{
		State:            string(s.State),
		Validating:       s.Validating,
		InFlightKey:      s.InFlightKey,
		LastValidatedKey: s.LastValidatedKey,
		LastOutcome:      string(s.LastOutcome),
		Submit:           FromSubmitControl(s.Submit),
	}
}

type ConsoleLineResponse struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
	Time     string `json:"time"`
}

type ConsoleResponse struct {
	Lines        []ConsoleLineResponse `json:"lines"`
	DisplayLines int                   `json:"display_lines"`
	Expanded     bool                  `json:"expanded"`
	Visible      bool                  `json:"visible"`
}

func FromConsoleSnapshot(s *console.Snapshot) *ConsoleResponse {
	lines := make([]ConsoleLineResponse, 0, len(s.Lines))
	for _, m := range s.Lines {
		lines = append(lines, ConsoleLineResponse{Text: m.Text, Severity: string(m.Severity), Time: m.Clock()})
	}
	return &ConsoleResponse{
		Lines:        lines,
		DisplayLines: s.DisplayLines,
		Expanded:     s.Expanded,
		Visible:      s.Visible,
	}
}
