package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const productsTimeout = 10 * time.Second

// Backend talks to the Django products and pricing API.
type Backend struct {
	baseURL    string
	httpClient *http.Client
}

func NewBackend(baseURL string) *Backend {
	return &Backend{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Products returns the user's product listing exactly as the backend sent it.
func (b *Backend) Products(ctx context.Context, userID string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, productsTimeout)
	defer cancel()

	body, err := b.get(ctx, "/"+url.PathEscape(userID)+"/")
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("upstream: products response is not json")
	}
	return body, nil
}

// PricePrediction returns the prediction as the backend sent it, or ErrNotFound
// when the backend has none for the item.
func (b *Backend) PricePrediction(ctx context.Context, itemID, timestamp string) (json.RawMessage, error) {
	body, err := b.get(ctx, "/"+url.PathEscape(itemID)+"/"+url.PathEscape(timestamp)+"/")
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("upstream: price prediction response is not json")
	}
	return body, nil
}

func (b *Backend) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
