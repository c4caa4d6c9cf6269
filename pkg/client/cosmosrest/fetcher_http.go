package cosmosrest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

type HTTPFetcher struct {
	client *http.Client
	logger *slog.Logger
}

func NewHTTPFetcher(httpClient *http.Client, log *slog.Logger) *HTTPFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}

	return &HTTPFetcher{
		client: httpClient,
		logger: log,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating new request for %s: %w", url, err)
	}

	httpReq.Header.Set("Accept", "application/json")

	res, err := f.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("error doing request for %s: %w", url, err)
	}

	defer func() {
		if err = res.Body.Close(); err != nil {
			f.logger.ErrorContext(ctx,
				"error closing response body",
				slog.String("url", url),
				slog.Any("error", err),
			)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("error reading response body for %s: %w", url, err)
	}

	if res.StatusCode != http.StatusOK {
		return decodeAPIError(res.StatusCode, body)
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error unmarshalling response body for %s: %w", url, err)
	}

	return nil
}
