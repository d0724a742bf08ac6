package voucher

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/pkg/config"
	"golden-key-funnel/internal/pkg/errs"
)

const validatePath = "/voucher-validate"

// maxBodyBytes bounds the decoded response.
const maxBodyBytes = 64 << 10

type validateResponse struct {
	IsValid      bool   `json:"isValid"`
	IsRedeemable bool   `json:"isRedeemable"`
	RegisterURL  string `json:"registerUrl"`
	MagicLink    string `json:"magicLink"`
}

// Client calls the voucher-validation endpoint. One Validate is one GET; it never retries.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.VoucherConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) Validate(ctx context.Context, code string) (activation.Verdict, error) {
	endpoint := c.baseURL + validatePath + "?" + url.Values{"code": {code}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return activation.Verdict{}, errs.Mark(errs.Wrap(err, "build voucher request"), errs.ErrVoucherUnavailable)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return activation.Verdict{}, errs.Mark(errs.Wrap(err, "voucher request"), errs.ErrVoucherUnavailable)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("failed to close voucher response body", slog.String("error", closeErr.Error()))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return activation.Verdict{}, errs.Mark(errs.Newf("voucher service returned status %d", resp.StatusCode), errs.ErrVoucherUnavailable)
	}

	var body validateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return activation.Verdict{}, errs.Mark(errs.Wrap(err, "decode voucher response"), errs.ErrMalformedResponse)
	}

	return activation.Verdict{
		IsValid:      body.IsValid,
		IsRedeemable: body.IsRedeemable,
		RegisterURL:  body.RegisterURL,
		MagicLink:    body.MagicLink,
	}, nil
}
