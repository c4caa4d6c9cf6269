package cosmosrest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// RestyFetcher adapts resty.Client to the Fetcher interface.
type RestyFetcher struct {
	client *resty.Client
	logger *slog.Logger
}

func NewRestyFetcher(client *resty.Client, log *slog.Logger) *RestyFetcher {
	if client == nil {
		client = resty.New()
	}
	if log == nil {
		log = slog.Default()
	}

	return &RestyFetcher{
		client: client,
		logger: log,
	}
}

func (f *RestyFetcher) Fetch(ctx context.Context, url string, out any) error {
	res, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		return fmt.Errorf("error doing request for %s: %w", url, err)
	}

	if res.StatusCode() != http.StatusOK {
		f.logger.DebugContext(ctx, "non-200 response",
			slog.String("url", url),
			slog.Int("status", res.StatusCode()),
		)
		return decodeAPIError(res.StatusCode(), res.Body())
	}

	if err = json.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("error unmarshalling response body for %s: %w", url, err)
	}

	return nil
}
