package cosmosrest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Fetcher performs a GET on url and decodes the JSON body into out.
type Fetcher interface {
	Fetch(ctx context.Context, url string, out any) error
}

// NewFetcher picks the transport named by cfg.Transport. A nil httpClient
// falls back to http.DefaultClient.
func NewFetcher(cfg *Config, httpClient *http.Client, log *slog.Logger) Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}

	if cfg.Transport == TransportResty {
		return NewRestyFetcher(resty.NewWithClient(httpClient), log)
	}

	return NewHTTPFetcher(httpClient, log)
}
