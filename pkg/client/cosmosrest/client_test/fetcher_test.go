package client_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/cosmos-rest/pkg/client/cosmosrest"
)

type fetcherFactory func(httpClient *http.Client) cosmosrest.Fetcher

func fetchers() map[string]fetcherFactory {
	return map[string]fetcherFactory{
		"net_http": func(httpClient *http.Client) cosmosrest.Fetcher {
			return cosmosrest.NewHTTPFetcher(httpClient, slog.Default())
		},
		"resty": func(httpClient *http.Client) cosmosrest.Fetcher {
			return cosmosrest.NewRestyFetcher(resty.NewWithClient(httpClient), slog.Default())
		},
	}
}

func TestFetcher_Fetch(t *testing.T) {
	type result struct {
		Params struct {
			BlocksPerYear string `json:"blocks_per_year"`
		} `json:"params"`
	}

	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		wantAPIErr *cosmosrest.APIError
		wantErrMsg string
		wantValue  string
	}{
		{
			name:      "ok",
			status:    http.StatusOK,
			body:      `{"params":{"blocks_per_year":"6311520"}}`,
			wantValue: "6311520",
		},
		{
			name:    "api_error",
			status:  http.StatusNotFound,
			body:    `{"code":5,"message":"proposal 9999 doesn't exist","details":[]}`,
			wantErr: true,
			wantAPIErr: &cosmosrest.APIError{
				Code:       5,
				Message:    "proposal 9999 doesn't exist",
				Details:    nil,
				StatusCode: http.StatusNotFound,
			},
		},
		{
			name:       "unparsable_error_body",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantErr:    true,
			wantErrMsg: "unexpected status 502 and cannot parse error body: <html>bad gateway</html>",
		},
		{
			name:       "invalid_json",
			status:     http.StatusOK,
			body:       `{"params":`,
			wantErr:    true,
			wantErrMsg: "error unmarshalling response body",
		},
	}

	for transport, newFetcher := range fetchers() {
		for _, tt := range tests {
			t.Run(transport+"/"+tt.name, func(t *testing.T) {
				var accept string
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					accept = r.Header.Get("Accept")
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				}))
				defer server.Close()

				var out result
				err := newFetcher(server.Client()).Fetch(context.Background(), server.URL+"/cosmos/mint/v1beta1/params", &out)

				assert.Equal(t, "application/json", accept)

				if !tt.wantErr {
					require.NoError(t, err)
					assert.Equal(t, tt.wantValue, out.Params.BlocksPerYear)
					return
				}

				require.Error(t, err)
				if tt.wantAPIErr != nil {
					var apiErr *cosmosrest.APIError
					require.ErrorAs(t, err, &apiErr)
					assert.Equal(t, tt.wantAPIErr.Code, apiErr.Code)
					assert.Equal(t, tt.wantAPIErr.Message, apiErr.Message)
					assert.Equal(t, tt.wantAPIErr.StatusCode, apiErr.StatusCode)
					assert.Equal(t,
						"cosmos rest error status: 404, code: 5, message: proposal 9999 doesn't exist",
						apiErr.Error())
				}
				if tt.wantErrMsg != "" {
					assert.Contains(t, err.Error(), tt.wantErrMsg)
				}
			})
		}
	}
}

func TestFetcher_ConnectionError(t *testing.T) {
	for transport, newFetcher := range fetchers() {
		t.Run(transport, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			url := server.URL + "/cosmos/staking/v1beta1/pool"
			httpClient := server.Client()
			server.Close()

			var out map[string]any
			err := newFetcher(httpClient).Fetch(context.Background(), url, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error doing request for "+url)
		})
	}
}

func TestFetcher_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	for transport, newFetcher := range fetchers() {
		t.Run(transport, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			var out map[string]any
			err := newFetcher(server.Client()).Fetch(ctx, server.URL, &out)
			require.Error(t, err)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestNewFetcher_Transport(t *testing.T) {
	httpClient := &http.Client{}

	assert.IsType(t, &cosmosrest.HTTPFetcher{},
		cosmosrest.NewFetcher(&cosmosrest.Config{Transport: cosmosrest.TransportHTTP}, httpClient, slog.Default()))
	assert.IsType(t, &cosmosrest.RestyFetcher{},
		cosmosrest.NewFetcher(&cosmosrest.Config{Transport: cosmosrest.TransportResty}, httpClient, slog.Default()))
	assert.IsType(t, &cosmosrest.HTTPFetcher{},
		cosmosrest.NewFetcher(&cosmosrest.Config{}, httpClient, slog.Default()))
}

func TestNewFetcher_NilHTTPClientAndLogger(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":14,"message":"node syncing"}`))
	}))
	defer server.Close()

	for _, transport := range []string{cosmosrest.TransportHTTP, cosmosrest.TransportResty} {
		t.Run(transport, func(t *testing.T) {
			fetcher := cosmosrest.NewFetcher(&cosmosrest.Config{Transport: transport}, nil, nil)

			var (
				out map[string]any
				err error
			)
			require.NotPanics(t, func() {
				err = fetcher.Fetch(context.Background(), server.URL+"/cosmos/staking/v1beta1/pool", &out)
			})

			var apiErr *cosmosrest.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
			assert.Equal(t, "node syncing", apiErr.Message)
		})
	}
}
