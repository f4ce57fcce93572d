package pinger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 30 * time.Second

// Pinger issues keep-alive GET requests. Any non-2xx answer is an error.
type Pinger struct {
	client *http.Client
}

func New() *Pinger {
	return &Pinger{client: &http.Client{Timeout: requestTimeout}}
}

func (p *Pinger) Ping(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}
	req.Header.Set("User-Agent", "session-planner-bot/keepalive")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to ping %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ping %s returned status %d", url, resp.StatusCode)
	}

	return nil
}
