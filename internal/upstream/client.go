package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Request struct {
	Method string
	URL    string
	// FollowRedirects is false for integrations that read the Location header.
	FollowRedirects bool
}

func Get(url string) Request {
	return Request{Method: http.MethodGet, URL: url, FollowRedirects: true}
}

func Head(url string) Request {
	return Request{Method: http.MethodHead, URL: url, FollowRedirects: true}
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type Client struct {
	follow    *http.Client
	noFollow  *http.Client
	userAgent string
	maxBody   int64
}

func NewClient(timeout time.Duration, maxBody int64, userAgent string) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}
	return &Client{
		follow: &http.Client{Timeout: timeout, Transport: transport},
		noFollow: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: userAgent,
		maxBody:   maxBody,
	}
}

// Fetch performs one upstream call. Any HTTP status is a successful fetch;
// only transport problems are returned as errors.
func (c *Client) Fetch(ctx context.Context, r Request) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	client := c.follow
	if !r.FollowRedirects {
		client = c.noFollow
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
