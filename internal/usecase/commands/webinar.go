package commands

//go:generate mockgen -source=webinar.go -destination=../../../tests/mock/commands/webinar_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/pkg/clock"
	"golden-key-funnel/internal/pkg/errs"
)

type WebinarRegistrationInput struct {
	FullName    string
	Email       string
	WebinarDate string
	Page        string
	Referrer    string
	// Source is set by partner registration forms.
	Source string
	Query  url.Values
}

type WebinarRegistrationResult struct {
	FirstName   string
	KeyValid    string
	RedirectURL string
}

type WebinarCommands interface {
	Register(ctx context.Context, in WebinarRegistrationInput) (*WebinarRegistrationResult, error)
}

type webinarCommandsImpl struct {
	publisher EventPublisher
	pages     funnel.Pages
	clock     clock.Clock
	logger    *slog.Logger
}

func NewWebinarCommands(publisher EventPublisher, pages funnel.Pages, clk clock.Clock, logger *slog.Logger) WebinarCommands {
	return &webinarCommandsImpl{
		publisher: publisher,
		pages:     pages,
		clock:     clk,
		logger:    logger,
	}
}

// Register forwards the registration to the automation webhook and, once it is accepted,
// points the visitor at the confirmation page with the key flag they arrived with.
func (w *webinarCommandsImpl) Register(ctx context.Context, in WebinarRegistrationInput) (*WebinarRegistrationResult, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	if fullName == "" || email == "" {
		return nil, errs.ErrValidationRefused
	}
	if !activation.IsValidEmail(email) {
		return nil, errs.ErrInvalidEmail
	}

	if in.Source != "" {
		if redirect, ok := w.pages.PartnerConfirmationURL(in.Source, fullName, email); ok {
			return w.registerPartner(ctx, in, fullName, email, redirect)
		}
		w.logger.Debug("unknown partner source, using the default confirmation page",
			slog.String("source", in.Source))
	}

	affiliate := funnel.AffiliateFromQuery(in.Query)
	event := funnel.Event{
		Name:        funnel.EventWebinarRegistration,
		FirstName:   fullName,
		Email:       email,
		WebinarDate: in.WebinarDate,
		Tracking:    funnel.Tracking{Page: in.Page, Referrer: in.Referrer},
		Affiliate:   &affiliate,
		Timestamp:   w.clock.Now(),
	}
	if err := w.publisher.Send(ctx, event); err != nil {
		w.logger.Error("webinar registration not delivered",
			slog.String("affiliate_source", affiliate.Source),
			slog.String("error", err.Error()))
		return nil, errs.Mark(err, errs.ErrWebhookDelivery)
	}

	keyValid := funnel.CarriedKeyValid(in.Query)
	return &WebinarRegistrationResult{
		FirstName:   funnel.FirstWord(fullName),
		KeyValid:    keyValid,
		RedirectURL: w.pages.ConfirmationURL(fullName, email, keyValid),
	}, nil
}

// registerPartner sends the slimmer partner payload: no affiliate attribution and no key flag.
func (w *webinarCommandsImpl) registerPartner(ctx context.Context, in WebinarRegistrationInput, fullName, email, redirect string) (*WebinarRegistrationResult, error) {
	event := funnel.Event{
		Name:          funnel.EventWebinarRegistration,
		FirstName:     fullName,
		Email:         email,
		WebinarDate:   in.WebinarDate,
		PartnerSource: in.Source,
		Tracking:      funnel.Tracking{Page: in.Page, Referrer: in.Referrer},
		Timestamp:     w.clock.Now(),
	}
	if err := w.publisher.Send(ctx, event); err != nil {
		w.logger.Error("partner webinar registration not delivered",
			slog.String("source", in.Source),
			slog.String("error", err.Error()))
		return nil, errs.Mark(err, errs.ErrWebhookDelivery)
	}

	return &WebinarRegistrationResult{
		FirstName:   funnel.FirstWord(fullName),
		RedirectURL: redirect,
	}, nil
}
