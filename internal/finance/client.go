package finance

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"resty.dev/v3"

	"kpicollector/internal/collect"
	"kpicollector/internal/dataset"
	"kpicollector/internal/ratelimit"
)

// Client talks to the quote backend serving ticker data.
type Client struct {
	apiKey  string
	http    *resty.Client
	limiter *ratelimit.Limiter
}

// NewClient creates a quote backend client.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		http:    collect.NewHTTPClient(baseURL, collect.QuoteRetryProfile()),
		limiter: ratelimit.GetLimiter(),
	}
}

// Open resolves the ticker symbol against the backend and returns a live
// session for it. An unresolvable symbol fails with unknown_subject; an
// unreachable backend fails with backend_unavailable.
func (c *Client) Open(ctx context.Context, symbol string) (collect.Session, error) {
	if err := c.limiter.Wait(ctx, ratelimit.APIQuotes); err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apikey": c.apiKey,
			"symbol": symbol,
		}).
		Get("/v1/lookup")

	if err != nil {
		return nil, collect.NewBackendUnavailableError(symbol, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, collect.NewUnknownSubjectError(symbol)
	}
	if !resp.IsSuccess() {
		return nil, collect.NewBackendUnavailableError(symbol,
			fmt.Errorf("quote API returned status %d", resp.StatusCode()))
	}

	return &session{client: c, symbol: symbol}, nil
}

// History downloads the combined chart history for all symbols in one call.
func (c *Client) History(ctx context.Context, symbols []string, opts collect.HistoryOptions) (*dataset.Frame, error) {
	if err := c.limiter.Wait(ctx, ratelimit.APIQuotes); err != nil {
		return nil, err
	}

	params := map[string]string{
		"apikey":      c.apiKey,
		"symbols":     strings.Join(symbols, ","),
		"interval":    opts.Interval,
		"prepost":     strconv.FormatBool(opts.PrePost),
		"actions":     strconv.FormatBool(opts.Actions),
		"auto_adjust": strconv.FormatBool(opts.AutoAdjust),
		"threads":     strconv.Itoa(opts.Threads),
		"group_by":    opts.GroupBy,
		"progress":    strconv.FormatBool(opts.Progress),
	}
	if opts.Period != "" {
		params["period"] = opts.Period
	}
	if opts.Start != "" {
		params["start"] = opts.Start
	}
	if opts.End != "" {
		params["end"] = opts.End
	}
	if opts.Proxy != "" {
		params["proxy"] = opts.Proxy
	}

	var frame dataset.Frame
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&frame).
		Get("/v1/history")

	if err != nil {
		return nil, collect.NewBackendUnavailableError("", err)
	}
	if !resp.IsSuccess() {
		return nil, collect.NewBackendUnavailableError("",
			fmt.Errorf("quote API returned status %d", resp.StatusCode()))
	}

	return &frame, nil
}

// session is the live per-ticker handle. All operations against the same
// builder reuse it instead of re-resolving the symbol per call.
type session struct {
	client *Client
	symbol string
}

// Attribute fetches one named sub-attribute of the session's ticker.
func (s *session) Attribute(ctx context.Context, name string) (any, error) {
	if err := s.client.limiter.Wait(ctx, ratelimit.APIQuotes); err != nil {
		return nil, err
	}

	resp, err := s.client.http.R().
		SetContext(ctx).
		SetQueryParam("apikey", s.client.apiKey).
		Get(fmt.Sprintf("/v1/ticker/%s/%s", s.symbol, name))

	if err != nil {
		return nil, collect.NewBackendUnavailableError(s.symbol, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, collect.NewAttributeUnavailableError(name, s.symbol)
	}
	if !resp.IsSuccess() {
		return nil, collect.NewBackendUnavailableError(s.symbol,
			fmt.Errorf("quote API returned status %d", resp.StatusCode()))
	}

	value, err := dataset.DecodePayload(resp.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s payload for %s: %w", name, s.symbol, err)
	}
	return value, nil
}
