package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/infra/metrics"
	"golden-key-funnel/internal/pkg/config"
	"golden-key-funnel/internal/pkg/errs"
)

// Publisher posts funnel events to the automation webhook.
type Publisher struct {
	url    string
	http   *http.Client
	logger *slog.Logger

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

func NewPublisher(cfg config.WebhookConfig, logger *slog.Logger) *Publisher {
	return &Publisher{
		url:    cfg.URL,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Publish delivers the event in the background. Failures are logged and never reach the caller.
func (p *Publisher) Publish(ctx context.Context, event funnel.Event) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Warn("webhook publisher closed, dropping event", slog.String("event", event.Name))
		return
	}
	p.inflight.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.inflight.Done()
		if err := p.Send(context.WithoutCancel(ctx), event); err != nil {
			p.logger.Warn("webhook delivery failed",
				slog.String("event", event.Name),
				slog.String("error", err.Error()))
		}
	}()
}

// Send delivers the event and reports the result.
func (p *Publisher) Send(ctx context.Context, event funnel.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "encode webhook event")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		metrics.IncWebhookDelivery(event.Name, false)
		return errs.Mark(errs.Wrap(err, "webhook request"), errs.ErrWebhookDelivery)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.IncWebhookDelivery(event.Name, false)
		return errs.Mark(errs.Newf("webhook returned status %d", resp.StatusCode), errs.ErrWebhookDelivery)
	}
	metrics.IncWebhookDelivery(event.Name, true)
	return nil
}

// Close stops accepting events and waits for background deliveries until ctx is done.
func (p *Publisher) Close(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "waiting for webhook deliveries")
	}
}
