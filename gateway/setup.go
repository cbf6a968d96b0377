package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/pkg/errors"
)

// Probe issues a GET against url and returns the status code. Transport
// errors (nothing listening yet, reset connections) are returned as errors.
func (g *Gateway) Probe(ctx context.Context, url string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", userAgentHeader)

	res, err := g.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	return res.StatusCode, nil
}

type SetupResponse struct {
	StatusCode int
	Body       string
}

// RunSetup posts the payload to the tenant setup endpoint of applicationURL.
// Only transport and encoding failures are errors; the caller judges the status.
func (g *Gateway) RunSetup(ctx context.Context, applicationURL string, payload *entity.SetupPayload) (*SetupResponse, error) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		return nil, errors.Wrap(err, "encode setup payload")
	}

	url := strings.TrimSuffix(applicationURL, "/") + constants.SetupPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgentHeader)

	res, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", url)
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(res.Body, 64<<10)); err != nil {
		return nil, errors.Wrap(err, "read setup response")
	}

	return &SetupResponse{
		StatusCode: res.StatusCode,
		Body:       buf.String(),
	}, nil
}
