package queries

//go:generate mockgen -source=confirmation.go -destination=../../../tests/mock/queries/confirmation_mock.go -package=queriesmock

import (
	"context"
	"log/slog"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/pkg/errs"
)

const (
	confirmationTitle  = "You're In & All Set For MagicPods AI Webinar!"
	claimMissingNotice = "⚠️ Registration data not found. Please try activating your key again."
)

type ConfirmationInput struct {
	FullName string
	KeyValid string
	Scope    activation.Scope
}

type VIPAccessView struct {
	Title     string
	Available bool
	ClaimURL  string
	Notice    string
}

type ConfirmationView struct {
	FirstName string
	KeyValid  bool
	Title     string
	VIPBadge  bool
	VIPAccess *VIPAccessView
}

type ConfirmationQueries interface {
	GetConfirmation(ctx context.Context, in ConfirmationInput) (*ConfirmationView, error)
}

type ActivationReadStore interface {
	Load(ctx context.Context, scope activation.Scope) (activation.PersistedActivation, error)
}

type confirmationQueriesImpl struct {
	readStore ActivationReadStore
	logger    *slog.Logger
}

func NewConfirmationQueries(readStore ActivationReadStore, logger *slog.Logger) ConfirmationQueries {
	return &confirmationQueriesImpl{
		readStore: readStore,
		logger:    logger,
	}
}

// GetConfirmation personalizes the confirmation page. The VIP section is offered only when
// the visitor arrived with key_valid=true, and it links to the stored activation if one exists.
func (q *confirmationQueriesImpl) GetConfirmation(ctx context.Context, in ConfirmationInput) (*ConfirmationView, error) {
	firstName := funnel.FirstWord(in.FullName)
	keyValid := funnel.ParseKeyValid(in.KeyValid)

	title := "Congratulations " + confirmationTitle
	if firstName != "" {
		title = "Congratulations " + firstName + " " + confirmationTitle
	}
	view := &ConfirmationView{
		FirstName: firstName,
		KeyValid:  keyValid,
		Title:     title,
		VIPBadge:  keyValid,
	}
	if !keyValid {
		return view, nil
	}

	vip := &VIPAccessView{Title: "Congratulations! You've managed to Snatch a VIP Early Access Valid Golden Key!"}
	if firstName != "" {
		vip.Title = "Congratulations " + firstName + " You've managed to Snatch a VIP Early Access Valid Golden Key!"
	}

	saved, err := q.readStore.Load(ctx, in.Scope)
	switch {
	case err == nil && saved.RegisterURL != "":
		vip.Available = true
		vip.ClaimURL = saved.RegisterURL
	case err == nil, errs.Is(err, errs.ErrActivationNotFound):
		vip.Notice = claimMissingNotice
	default:
		q.logger.Warn("failed to load saved activation",
			slog.String("session_id", in.Scope.SessionID),
			slog.String("error", err.Error()))
		vip.Notice = claimMissingNotice
	}
	view.VIPAccess = vip
	return view, nil
}
