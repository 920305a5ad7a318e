package trends

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"resty.dev/v3"

	"kpicollector/internal/collect"
	"kpicollector/internal/dataset"
	"kpicollector/internal/ratelimit"
)

// Options configures a trend search batch. The whole batch shares one
// timeframe, locale and category; they are fixed at builder construction like
// the keyword list itself.
type Options struct {
	Timeframe string
	Geo       string
	Category  int
	Language  string
}

// DefaultOptions returns the search defaults: five years of worldwide,
// uncategorized, US-English results.
func DefaultOptions() Options {
	return Options{
		Timeframe: "today 5-y",
		Language:  "en-US",
	}
}

// Client talks to the search-trends backend.
type Client struct {
	http    *resty.Client
	limiter *ratelimit.Limiter
	opts    Options
}

// NewClient creates a trends backend client with the given search options.
func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeframe == "" {
		opts.Timeframe = DefaultOptions().Timeframe
	}
	if opts.Language == "" {
		opts.Language = DefaultOptions().Language
	}
	return &Client{
		http:    collect.NewHTTPClient(baseURL, collect.TrendsRetryProfile()),
		limiter: ratelimit.GetLimiter(),
		opts:    opts,
	}
}

func (c *Client) baseParams() map[string]string {
	return map[string]string{
		"timeframe": c.opts.Timeframe,
		"geo":       c.opts.Geo,
		"cat":       strconv.Itoa(c.opts.Category),
		"hl":        c.opts.Language,
	}
}

// Open resolves the keyword against the backend and returns a live session
// for it.
func (c *Client) Open(ctx context.Context, keyword string) (collect.Session, error) {
	if err := c.limiter.Wait(ctx, ratelimit.APITrends); err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(c.baseParams()).
		SetQueryParam("q", keyword).
		Get("/v1/resolve")

	if err != nil {
		return nil, collect.NewBackendUnavailableError(keyword, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, collect.NewUnknownSubjectError(keyword)
	}
	if !resp.IsSuccess() {
		return nil, collect.NewBackendUnavailableError(keyword,
			fmt.Errorf("trends API returned status %d", resp.StatusCode()))
	}

	return &session{client: c, keyword: keyword}, nil
}

// Interest downloads one combined interest table (over time or by region)
// across the full keyword list.
func (c *Client) Interest(ctx context.Context, keywords []string, attr, resolution string) (*dataset.Frame, error) {
	if err := c.limiter.Wait(ctx, ratelimit.APITrends); err != nil {
		return nil, err
	}

	params := c.baseParams()
	params["keywords"] = strings.Join(keywords, ",")
	if resolution != "" {
		params["resolution"] = resolution
	}

	var frame dataset.Frame
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&frame).
		Get("/v1/interest/" + attr)

	if err != nil {
		return nil, collect.NewBackendUnavailableError("", err)
	}
	if !resp.IsSuccess() {
		return nil, collect.NewBackendUnavailableError("",
			fmt.Errorf("trends API returned status %d", resp.StatusCode()))
	}

	return &frame, nil
}

// session is the live per-keyword handle.
type session struct {
	client  *Client
	keyword string
}

// Attribute fetches one named sub-attribute of the session's keyword.
func (s *session) Attribute(ctx context.Context, name string) (any, error) {
	if err := s.client.limiter.Wait(ctx, ratelimit.APITrends); err != nil {
		return nil, err
	}

	resp, err := s.client.http.R().
		SetContext(ctx).
		SetQueryParams(s.client.baseParams()).
		Get(fmt.Sprintf("/v1/keyword/%s/%s", url.PathEscape(s.keyword), name))

	if err != nil {
		return nil, collect.NewBackendUnavailableError(s.keyword, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, collect.NewAttributeUnavailableError(name, s.keyword)
	}
	if !resp.IsSuccess() {
		return nil, collect.NewBackendUnavailableError(s.keyword,
			fmt.Errorf("trends API returned status %d", resp.StatusCode()))
	}

	value, err := dataset.DecodePayload(resp.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s payload for %q: %w", name, s.keyword, err)
	}
	return value, nil
}
