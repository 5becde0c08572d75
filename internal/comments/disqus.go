package comments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultDisqusURL = "https://disqus.com/api/3.0/threads/details.json"

// Disqus reads thread post counts from the Disqus threads/details API.
type Disqus struct {
	endpoint string
	client   *http.Client
}

func NewDisqus(endpoint string, timeout time.Duration) *Disqus {
	if endpoint == "" {
		endpoint = DefaultDisqusURL
	}

	return &Disqus{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type threadDetails struct {
	Code     int `json:"code"`
	Response struct {
		Posts int `json:"posts"`
	} `json:"response"`
}

// CommentCount returns the number of posts of the thread identified by threadIdent.
func (d *Disqus) CommentCount(ctx context.Context, forum, apiSecret, threadIdent string) (int, error) {
	params := url.Values{}
	params.Set("api_secret", apiSecret)
	params.Set("forum", forum)
	params.Set("thread", threadIdent)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build disqus request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("disqus request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("disqus returned %s: %s", resp.Status, body)
	}

	var details threadDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return 0, fmt.Errorf("decode disqus response: %w", err)
	}

	if details.Code != 0 {
		return 0, fmt.Errorf("disqus error code %d", details.Code)
	}

	return details.Response.Posts, nil
}
