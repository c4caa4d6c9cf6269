package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"

	"github.com/vladislavprovich/cosmos-rest/internal/handler"
	"github.com/vladislavprovich/cosmos-rest/internal/service"
	"github.com/vladislavprovich/cosmos-rest/pkg/client/cosmosrest"
)

type mockQueryService struct {
	mock.Mock
}

func (m *mockQueryService) Query(ctx context.Context, req *service.QueryRequest) (any, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}

func (m *mockQueryService) Queries(ctx context.Context) []service.QueryInfo {
	args := m.Called(ctx)
	infos, _ := args.Get(0).([]service.QueryInfo)
	return infos
}

func (m *mockQueryService) Health(ctx context.Context) (*service.HealthResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*service.HealthResponse)
	return resp, args.Error(1)
}

var testQueries = []service.QueryInfo{
	{
		Name:   "gov_proposals",
		Path:   "/cosmos/gov/v1beta1/proposals",
		Params: []string{"status", "limit"},
	},
	{
		Name:   "staking_validators_delegations_delegator",
		Path:   "/cosmos/staking/v1beta1/validators/{validator_addr}/delegations/{delegator_addr}",
		Params: []string{"validator_addr", "delegator_addr"},
	},
	{
		Name:   "base_tendermint_block_latest",
		Path:   "/cosmos/base/tendermint/v1beta1/blocks/latest",
		Params: []string{},
	},
	{
		Name:   "base_tendermint_block_height",
		Path:   "/cosmos/base/tendermint/v1beta1/blocks/{height}",
		Params: []string{"height"},
	},
}

func newServer(t *testing.T, srv *mockQueryService) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := &handler.Config{
		Port:       "0",
		Timeout:    5 * time.Second,
		MaxAge:     300,
		APIVersion: "v1",
	}

	srv.On("Queries", mock.Anything).Return(testQueries)

	h := handler.NewServiceHandler(srv, logger, cfg, render.New())
	server := httptest.NewServer(handler.NewRouter(context.Background(), h, logger, cfg))
	t.Cleanup(server.Close)

	return server
}

func get(t *testing.T, url string) (int, map[string]any) {
	t.Helper()

	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	return res.StatusCode, body
}

func TestServiceHandler_QueryParams(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantName   string
		wantParams map[string]string
	}{
		{
			name:       "query_string",
			path:       "/api/v1/cosmos/gov/v1beta1/proposals?status=2&limit=20",
			wantName:   "gov_proposals",
			wantParams: map[string]string{"status": "2", "limit": "20"},
		},
		{
			name:       "query_string_missing",
			path:       "/api/v1/cosmos/gov/v1beta1/proposals",
			wantName:   "gov_proposals",
			wantParams: map[string]string{"status": "", "limit": ""},
		},
		{
			name:     "path_params",
			path:     "/api/v1/cosmos/staking/v1beta1/validators/cosmosvaloper1v/delegations/cosmos1d",
			wantName: "staking_validators_delegations_delegator",
			wantParams: map[string]string{
				"validator_addr": "cosmosvaloper1v",
				"delegator_addr": "cosmos1d",
			},
		},
		{
			name:       "static_segment_wins",
			path:       "/api/v1/cosmos/base/tendermint/v1beta1/blocks/latest",
			wantName:   "base_tendermint_block_latest",
			wantParams: map[string]string{},
		},
		{
			name:       "height_param",
			path:       "/api/v1/cosmos/base/tendermint/v1beta1/blocks/1000",
			wantName:   "base_tendermint_block_height",
			wantParams: map[string]string{"height": "1000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := new(mockQueryService)
			srv.On("Query", mock.Anything, &service.QueryRequest{Name: tt.wantName, Params: tt.wantParams}).
				Return(map[string]any{"ok": true}, nil)

			server := newServer(t, srv)

			status, body := get(t, server.URL+tt.path)

			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, true, body["ok"])
			srv.AssertExpectations(t)
		})
	}
}

func TestServiceHandler_QueryErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantCode   float64
	}{
		{
			name: "node_error_keeps_status",
			err: &cosmosrest.APIError{
				Code:       5,
				Message:    "proposal 9999 doesn't exist",
				StatusCode: http.StatusNotFound,
			},
			wantStatus: http.StatusNotFound,
			wantError:  "proposal 9999 doesn't exist",
			wantCode:   5,
		},
		{
			name:       "node_error_without_status",
			err:        &cosmosrest.APIError{Code: 13, Message: "internal"},
			wantStatus: http.StatusBadGateway,
			wantError:  "internal",
			wantCode:   13,
		},
		{
			name:       "unknown_query",
			err:        fmt.Errorf("%w: nope", service.ErrUnknownQuery),
			wantStatus: http.StatusNotFound,
			wantError:  "unknown query: nope",
		},
		{
			name:       "invalid_request",
			err:        fmt.Errorf("%w: limit must be a non-negative integer", service.ErrInvalidRequest),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid query request: limit must be a non-negative integer",
		},
		{
			name:       "unresolved_placeholder",
			err:        fmt.Errorf("gov_proposals: %w: status", cosmosrest.ErrUnresolvedPlaceholder),
			wantStatus: http.StatusBadRequest,
			wantError:  "gov_proposals: unresolved url placeholder: status",
		},
		{
			name:       "transport_error",
			err:        errors.New("error doing request for http://node: connection refused"),
			wantStatus: http.StatusBadGateway,
			wantError:  "error doing request for http://node: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := new(mockQueryService)
			srv.On("Query", mock.Anything, mock.Anything).Return(nil, tt.err)

			server := newServer(t, srv)

			status, body := get(t, server.URL+"/api/v1/cosmos/gov/v1beta1/proposals?status=2")

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, body["error"])
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, body["code"])
			} else {
				assert.NotContains(t, body, "code")
			}
		})
	}
}

func TestServiceHandler_Queries(t *testing.T) {
	srv := new(mockQueryService)
	server := newServer(t, srv)

	res, err := http.Get(server.URL + "/api/v1/queries")
	require.NoError(t, err)
	defer res.Body.Close()

	var infos []service.QueryInfo
	require.NoError(t, json.NewDecoder(res.Body).Decode(&infos))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, testQueries, infos)
}

func TestServiceHandler_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := new(mockQueryService)
		srv.On("Health", mock.Anything).Return(&service.HealthResponse{Status: http.StatusOK, Queries: 55}, nil)

		server := newServer(t, srv)

		status, body := get(t, server.URL+"/health")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(55), body["queries"])
	})

	t.Run("error", func(t *testing.T) {
		srv := new(mockQueryService)
		srv.On("Health", mock.Anything).Return(nil, errors.New("unhealthy"))

		server := newServer(t, srv)

		status, body := get(t, server.URL+"/health")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "unhealthy", body["error"])
	})
}

func TestServiceHandler_UnknownRoute(t *testing.T) {
	srv := new(mockQueryService)
	server := newServer(t, srv)

	res, err := http.Get(server.URL + "/api/v1/cosmos/unknown/v1/thing")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	srv.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
}
