package cosmosrest

import (
	"context"
	"log/slog"
	"net/http"
)

type Client interface {
	Registry() *Registry

	GetAuthAccounts(ctx context.Context) (*AuthAccountsResponse, error)
	GetAuthAccount(ctx context.Context, address string) (*AuthAccountResponse, error)

	GetBankParams(ctx context.Context) (*BankParamsResponse, error)
	GetBankBalances(ctx context.Context, address string) (*BankBalancesResponse, error)
	GetBankDenomMetadata(ctx context.Context) (*BankDenomsMetadataResponse, error)
	GetBankSupply(ctx context.Context) (*BankSupplyResponse, error)
	GetBankSupplyByDenom(ctx context.Context, denom string) (*BankSupplyOfResponse, error)

	GetDistributionParams(ctx context.Context) (*DistributionParamsResponse, error)
	GetDistributionCommunityPool(ctx context.Context) (*DistributionCommunityPoolResponse, error)
	GetDistributionDelegatorRewards(
		ctx context.Context,
		delegatorAddr string,
	) (*DistributionDelegatorRewardsResponse, error)
	GetDistributionValidatorCommission(
		ctx context.Context,
		validatorAddress string,
	) (*DistributionValidatorCommissionResponse, error)
	GetDistributionValidatorOutstandingRewards(
		ctx context.Context,
		validatorAddress string,
	) (*DistributionValidatorOutstandingRewardsResponse, error)
	GetDistributionValidatorSlashes(
		ctx context.Context,
		validatorAddress string,
	) (*DistributionValidatorSlashesResponse, error)

	GetSlashingParams(ctx context.Context) (*SlashingParamsResponse, error)
	GetSlashingSigningInfos(ctx context.Context) (*SlashingSigningInfosResponse, error)

	GetGovParamsVoting(ctx context.Context) (*GovParamsResponse, error)
	GetGovParamsDeposit(ctx context.Context) (*GovParamsResponse, error)
	GetGovParamsTally(ctx context.Context) (*GovParamsResponse, error)
	GetGovProposals(ctx context.Context, status string, limit int) (*GovProposalsResponse, error)
	GetGovProposal(ctx context.Context, proposalID string) (*GovProposalResponse, error)
	GetGovProposalDeposits(ctx context.Context, proposalID string) (*GovDepositsResponse, error)
	GetGovProposalTally(ctx context.Context, proposalID string) (*GovTallyResponse, error)
	GetGovProposalVotes(ctx context.Context, proposalID, nextKey string) (*GovVotesResponse, error)
	GetGovProposalVotesVoter(ctx context.Context, proposalID, voter string) (*GovVoteResponse, error)

	GetStakingDelegations(ctx context.Context, delegatorAddr string) (*StakingDelegationsResponse, error)
	GetStakingDelegatorRedelegations(
		ctx context.Context,
		delegatorAddr string,
	) (*StakingRedelegationsResponse, error)
	GetStakingDelegatorUnbonding(
		ctx context.Context,
		delegatorAddr string,
	) (*StakingUnbondingDelegationsResponse, error)
	GetStakingDelegatorValidators(ctx context.Context, delegatorAddr string) (*StakingValidatorsResponse, error)
	GetStakingParams(ctx context.Context) (*StakingParamsResponse, error)
	GetStakingPool(ctx context.Context) (*StakingPoolResponse, error)
	GetStakingValidators(ctx context.Context, status string, limit int) (*StakingValidatorsResponse, error)
	GetStakingValidator(ctx context.Context, validatorAddr string) (*StakingValidatorResponse, error)
	GetStakingValidatorsDelegations(
		ctx context.Context,
		validatorAddr string,
	) (*StakingDelegationsResponse, error)
	GetStakingValidatorsDelegationsDelegator(
		ctx context.Context,
		validatorAddr, delegatorAddr string,
	) (*StakingDelegationResponse, error)
	GetStakingValidatorsDelegationsUnbonding(
		ctx context.Context,
		validatorAddr, delegatorAddr string,
	) (*StakingUnbondingDelegationResponse, error)

	GetBaseAbciQuery(ctx context.Context) (*AbciQueryResponse, error)
	GetBaseBlockLatest(ctx context.Context) (*BlockResponse, error)
	GetBaseBlockAt(ctx context.Context, height string) (*BlockResponse, error)
	GetBaseNodeInfo(ctx context.Context) (*NodeInfoResponse, error)
	GetBaseValidatorsetAt(ctx context.Context, height string, offset int) (*ValidatorSetResponse, error)
	GetBaseValidatorsetLatest(ctx context.Context, offset int) (*ValidatorSetResponse, error)

	GetTxsBySender(ctx context.Context, sender string) (*TxsEventResponse, error)
	GetTxsAt(ctx context.Context, height string) (*BlockWithTxsResponse, error)
	GetTx(ctx context.Context, hash string) (*TxResponse, error)

	GetMintParam(ctx context.Context) (*MintParamsResponse, error)
	GetMintInflation(ctx context.Context) (*MintInflationResponse, error)
	GetMintAnnualProvisions(ctx context.Context) (*MintAnnualProvisionsResponse, error)

	GetIBCAppTransferDenom(ctx context.Context, hash string) (*DenomTraceResponse, error)
	GetIBCConnections(ctx context.Context) (*IBCConnectionsResponse, error)
	GetIBCConnectionsByID(ctx context.Context, connectionID string) (*IBCConnectionResponse, error)
	GetIBCConnectionsClientState(ctx context.Context, connectionID string) (*IBCClientStateResponse, error)
	GetIBCConnectionsChannels(ctx context.Context, connectionID string) (*IBCChannelsResponse, error)
	GetIBCChannels(ctx context.Context) (*IBCChannelsResponse, error)
	GetIBCChannelAcknowledgements(
		ctx context.Context,
		channelID, portID string,
	) (*IBCPacketAcknowledgementsResponse, error)
	GetIBCChannelNextSequence(ctx context.Context, channelID, portID string) (*IBCNextSequenceResponse, error)
}

var _ Client = (*BasicClient)(nil)

type BasicClient struct {
	endpoint string
	registry *Registry
	fetcher  Fetcher
	logger   *slog.Logger
	cfg      *Config
}

func NewBasicClient(endpoint string, registry *Registry, fetcher Fetcher, cfg *Config, log *slog.Logger) *BasicClient {
	if cfg == nil {
		cfg = &Config{Endpoint: endpoint}
	}
	if log == nil {
		log = slog.Default()
	}

	return &BasicClient{
		endpoint: endpoint,
		registry: registry,
		fetcher:  fetcher,
		logger:   log,
		cfg:      cfg,
	}
}

// NewDefault returns a client for endpoint backed by DefaultRegistry and the
// net/http transport.
func NewDefault(endpoint string, httpClient *http.Client, log *slog.Logger) *BasicClient {
	if log == nil {
		log = slog.Default()
	}
	cfg := &Config{Endpoint: endpoint, Transport: TransportHTTP}

	return NewBasicClient(endpoint, DefaultRegistry(), NewHTTPFetcher(httpClient, log), cfg, log)
}

func (c *BasicClient) Endpoint() string {
	return c.endpoint
}

func (c *BasicClient) Registry() *Registry {
	return c.registry
}
