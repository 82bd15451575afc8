package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	defaultMaxRetries = 3
	retryStep         = 2 * time.Second
)

func NewHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// fetchJSON GETs a URL and decodes the JSON body into v. Rate limiting
// (429) and transport errors are retried with a linearly increasing delay
// (2s, 4s, 6s); any other non-2xx status fails immediately with a body
// excerpt for the log.
func fetchJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, v interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= defaultMaxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt) * retryStep
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		for k, val := range headers {
			req.Header.Set(k, val)
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("HTTP 429 for %s", url)
			continue
		}
		if resp.StatusCode >= 400 {
			excerpt := body
			if len(excerpt) > 500 {
				excerpt = excerpt[:500]
			}
			return fmt.Errorf("HTTP %d for %s: %s", resp.StatusCode, url, string(excerpt))
		}

		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("JSON parse error for %s: %w", url, err)
		}
		return nil
	}

	return fmt.Errorf("retries exhausted for %s: %w", url, lastErr)
}
