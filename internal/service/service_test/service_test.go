package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/cosmos-rest/internal/service"
	"github.com/vladislavprovich/cosmos-rest/pkg/client/cosmosrest"
)

const endpoint = "https://rest.cosmos.test"

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, url string, out any) error {
	args := m.Called(ctx, url, out)
	return args.Error(0)
}

func newService(t *testing.T, fetcher cosmosrest.Fetcher) *service.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	client := cosmosrest.NewBasicClient(endpoint, cosmosrest.DefaultRegistry(), fetcher, nil, logger)

	return service.NewCosmosService(context.Background(), logger, client)
}

func TestService_Query(t *testing.T) {
	tests := []struct {
		name     string
		req      *service.QueryRequest
		wantURL  string
		wantType any
	}{
		{
			name:     "bank_balances",
			req:      &service.QueryRequest{Name: "bank_balances_address", Params: map[string]string{"address": "cosmos1a"}},
			wantURL:  endpoint + "/cosmos/bank/v1beta1/balances/cosmos1a",
			wantType: &cosmosrest.BankBalancesResponse{},
		},
		{
			name: "gov_proposals",
			req: &service.QueryRequest{
				Name:   "gov_proposals",
				Params: map[string]string{"status": "2", "limit": "5"},
			},
			wantURL: endpoint +
				"/cosmos/gov/v1beta1/proposals?proposal_status=2&pagination.limit=5&pagination.reverse=true&pagination.key=",
			wantType: &cosmosrest.GovProposalsResponse{},
		},
		{
			name:     "staking_validators_default_limit",
			req:      &service.QueryRequest{Name: "staking_validators", Params: map[string]string{"status": "BOND_STATUS_BONDED"}},
			wantURL:  endpoint + "/cosmos/staking/v1beta1/validators?status=BOND_STATUS_BONDED&pagination.limit=200",
			wantType: &cosmosrest.StakingValidatorsResponse{},
		},
		{
			name: "staking_validator_delegation",
			req: &service.QueryRequest{
				Name:   "staking_validators_delegations_delegator",
				Params: map[string]string{"validator_addr": "cosmosvaloper1v", "delegator_addr": "cosmos1d"},
			},
			wantURL:  endpoint + "/cosmos/staking/v1beta1/validators/cosmosvaloper1v/delegations/cosmos1d",
			wantType: &cosmosrest.StakingDelegationResponse{},
		},
		{
			name:     "validatorset_offset",
			req:      &service.QueryRequest{Name: "base_tendermint_validatorsets_latest", Params: map[string]string{"offset": "100"}},
			wantURL:  endpoint + "/cosmos/base/tendermint/v1beta1/validatorsets/latest?pagination.limit=100&pagination.offset=100",
			wantType: &cosmosrest.ValidatorSetResponse{},
		},
		{
			name:     "txs_by_sender",
			req:      &service.QueryRequest{Name: "tx_txs", Params: map[string]string{"sender": "cosmos1s"}},
			wantURL:  endpoint + "/cosmos/tx/v1beta1/txs?pagination.reverse=true&events=message.sender='cosmos1s'",
			wantType: &cosmosrest.TxsEventResponse{},
		},
		{
			name:     "no_params",
			req:      &service.QueryRequest{Name: "mint_inflation"},
			wantURL:  endpoint + "/cosmos/mint/v1beta1/inflation",
			wantType: &cosmosrest.MintInflationResponse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			fetcher.On("Fetch", mock.Anything, tt.wantURL, mock.Anything).Return(nil)

			resp, err := newService(t, fetcher).Query(context.Background(), tt.req)

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, resp)
			fetcher.AssertExpectations(t)
		})
	}
}

func TestService_QueryErrors(t *testing.T) {
	errNetwork := errors.New("connection reset")

	tests := []struct {
		name       string
		req        *service.QueryRequest
		fetchErr   error
		wantErrIs  error
		wantFetch  bool
		wantSameAs error
	}{
		{
			name:      "empty_name",
			req:       &service.QueryRequest{},
			wantErrIs: service.ErrInvalidRequest,
		},
		{
			name:      "unknown_query",
			req:       &service.QueryRequest{Name: "bank_nope"},
			wantErrIs: service.ErrUnknownQuery,
		},
		{
			name: "invalid_limit",
			req: &service.QueryRequest{
				Name:   "gov_proposals",
				Params: map[string]string{"status": "2", "limit": "many"},
			},
			wantErrIs: service.ErrInvalidRequest,
		},
		{
			name: "negative_offset",
			req: &service.QueryRequest{
				Name:   "base_tendermint_validatorsets_height",
				Params: map[string]string{"height": "10", "offset": "-1"},
			},
			wantErrIs: service.ErrInvalidRequest,
		},
		{
			name:       "client_error_unwrapped",
			req:        &service.QueryRequest{Name: "staking_pool"},
			fetchErr:   errNetwork,
			wantFetch:  true,
			wantSameAs: errNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			if tt.wantFetch {
				fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything).Return(tt.fetchErr)
			}

			resp, err := newService(t, fetcher).Query(context.Background(), tt.req)

			require.Error(t, err)
			assert.Nil(t, resp)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.wantSameAs != nil {
				assert.Same(t, tt.wantSameAs, err)
			}
			if !tt.wantFetch {
				fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestService_Queries(t *testing.T) {
	svc := newService(t, new(mockFetcher))

	infos := svc.Queries(context.Background())
	require.Len(t, infos, 55)

	byName := make(map[string]service.QueryInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	tests := []struct {
		name       string
		wantPath   string
		wantParams []string
	}{
		{"gov_proposals", "/cosmos/gov/v1beta1/proposals", []string{"status", "limit"}},
		{"gov_proposals_votes", "/cosmos/gov/v1beta1/proposals/{proposal_id}/votes", []string{"proposal_id", "next_key"}},
		{"staking_validators", "/cosmos/staking/v1beta1/validators", []string{"status", "limit"}},
		{"base_tendermint_validatorsets_height", "/cosmos/base/tendermint/v1beta1/validatorsets/{height}",
			[]string{"height", "offset"}},
		{"tx_txs", "/cosmos/tx/v1beta1/txs", []string{"sender"}},
		{"bank_params", "/cosmos/bank/v1beta1/params", []string{}},
		{"ibc_core_channel_channels_next_sequence",
			"/ibc/core/channel/v1/channels/{channel_id}/ports/{port_id}/next_sequence",
			[]string{"channel_id", "port_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := byName[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.wantPath, info.Path)
			assert.Equal(t, tt.wantParams, info.Params)
		})
	}
}

func TestService_Health(t *testing.T) {
	resp, err := newService(t, new(mockFetcher)).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, 55, resp.Queries)
}

func TestParams_Int(t *testing.T) {
	p := service.Params{"limit": "20", "bad": "x", "neg": "-3"}

	n, err := p.Int("limit")
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	n, err = p.Int("missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = p.Int("bad")
	assert.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = p.Int("neg")
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}
