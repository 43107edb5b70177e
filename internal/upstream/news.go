package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// NewsClient ищет новости о бедствиях в NewsAPI
type NewsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewNewsClient(baseURL, apiKey string, timeout time.Duration) *NewsClient {
	return &NewsClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: newHTTPClient(timeout),
	}
}

// Articles возвращает массив articles по запросу "disaster <locality>"
func (c *NewsClient) Articles(ctx context.Context, locality string) ([]byte, error) {
	params := url.Values{}
	params.Set("q", "disaster "+locality)
	params.Set("apiKey", c.apiKey)

	body, err := getJSON(ctx, c.httpClient, c.baseURL, params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Articles json.RawMessage `json:"articles"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}
	if len(resp.Articles) == 0 || string(resp.Articles) == "null" {
		return []byte("[]"), nil
	}
	return resp.Articles, nil
}
