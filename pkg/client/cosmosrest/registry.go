package cosmosrest

import (
	"maps"
	"slices"
	"strings"
)

// QueryName identifies one entry of the Registry.
type QueryName string

const (
	AuthAccounts        QueryName = "auth_accounts"
	AuthAccountAddress  QueryName = "auth_account_address"
	BankParams          QueryName = "bank_params"
	BankBalancesAddress QueryName = "bank_balances_address"
	BankDenomsMetadata  QueryName = "bank_denoms_metadata"
	BankSupply          QueryName = "bank_supply"
	BankSupplyByDenom   QueryName = "bank_supply_by_denom"

	DistributionParams                      QueryName = "distribution_params"
	DistributionCommunityPool               QueryName = "distribution_community_pool"
	DistributionDelegatorRewards            QueryName = "distribution_delegator_rewards"
	DistributionValidatorCommission         QueryName = "distribution_validator_commission"
	DistributionValidatorOutstandingRewards QueryName = "distribution_validator_outstanding_rewards"
	DistributionValidatorSlashes            QueryName = "distribution_validator_slashes"

	SlashingParams      QueryName = "slashing_params"
	SlashingSigningInfo QueryName = "slashing_signing_info"

	GovParamsVoting        QueryName = "gov_params_voting"
	GovParamsDeposit       QueryName = "gov_params_deposit"
	GovParamsTally         QueryName = "gov_params_tally"
	GovProposals           QueryName = "gov_proposals"
	GovProposalsProposalID QueryName = "gov_proposals_proposal_id"
	GovProposalsDeposits   QueryName = "gov_proposals_deposits"
	GovProposalsTally      QueryName = "gov_proposals_tally"
	GovProposalsVotes      QueryName = "gov_proposals_votes"
	GovProposalsVotesVoter QueryName = "gov_proposals_votes_voter"

	StakingDelegations                              QueryName = "staking_deletations"
	StakingDelegatorRedelegations                   QueryName = "staking_delegator_redelegations"
	StakingDelegatorUnbondingDelegations            QueryName = "staking_delegator_unbonding_delegations"
	StakingDelegatorValidators                      QueryName = "staking_delegator_validators"
	StakingParams                                   QueryName = "staking_params"
	StakingPool                                     QueryName = "staking_pool"
	StakingValidators                               QueryName = "staking_validators"
	StakingValidatorsAddress                        QueryName = "staking_validators_address"
	StakingValidatorsDelegations                    QueryName = "staking_validators_delegations"
	StakingValidatorsDelegationsDelegator           QueryName = "staking_validators_delegations_delegator"
	StakingValidatorsDelegationsUnbondingDelegation QueryName = "staking_validators_delegations_unbonding_delegations"

	BaseTendermintAbciQuery           QueryName = "base_tendermint_abci_query"
	BaseTendermintBlockLatest         QueryName = "base_tendermint_block_latest"
	BaseTendermintBlockHeight         QueryName = "base_tendermint_block_height"
	BaseTendermintNodeInfo            QueryName = "base_tendermint_node_info"
	BaseTendermintValidatorsetsHeight QueryName = "base_tendermint_validatorsets_height"
	BaseTendermintValidatorsetsLatest QueryName = "base_tendermint_validatorsets_latest"

	TxTxs      QueryName = "tx_txs"
	TxTxsBlock QueryName = "tx_txs_block"
	TxHash     QueryName = "tx_hash"

	MintParams           QueryName = "mint_params"
	MintInflation        QueryName = "mint_inflation"
	MintAnnualProvisions QueryName = "mint_annual_provisions"

	IBCAppTransferDenomTracesHash                       QueryName = "ibc_app_transfer_denom_traces_hash"
	IBCCoreConnectionConnections                        QueryName = "ibc_core_connection_connections"
	IBCCoreConnectionConnectionsConnectionID            QueryName = "ibc_core_connection_connections_connection_id"
	IBCCoreConnectionConnectionsConnectionIDClientState QueryName = "ibc_core_connection_connections_connection_id_client_state"
	IBCCoreChannelConnectionsChannels                   QueryName = "ibc_core_channel_connections_channels"
	IBCCoreChannelChannels                              QueryName = "ibc_core_channel_channels"
	IBCCoreChannelChannelsAcknowledgements              QueryName = "ibc_core_channel_channels_acknowledgements"
	IBCCoreChannelChannelsNextSequence                  QueryName = "ibc_core_channel_channels_next_sequence"
)

// defaultTemplates are the LCD paths served by cosmos-sdk v0.45+ and ibc-go.
var defaultTemplates = map[QueryName]string{
	AuthAccounts:        "/cosmos/auth/v1beta1/accounts",
	AuthAccountAddress:  "/cosmos/auth/v1beta1/accounts/{address}",
	BankParams:          "/cosmos/bank/v1beta1/params",
	BankBalancesAddress: "/cosmos/bank/v1beta1/balances/{address}",
	BankDenomsMetadata:  "/cosmos/bank/v1beta1/denoms_metadata",
	BankSupply:          "/cosmos/bank/v1beta1/supply",
	BankSupplyByDenom:   "/cosmos/bank/v1beta1/supply/by_denom?denom={denom}",

	DistributionParams:                      "/cosmos/distribution/v1beta1/params",
	DistributionCommunityPool:               "/cosmos/distribution/v1beta1/community_pool",
	DistributionDelegatorRewards:            "/cosmos/distribution/v1beta1/delegators/{delegator_addr}/rewards",
	DistributionValidatorCommission:         "/cosmos/distribution/v1beta1/validators/{validator_address}/commission",
	DistributionValidatorOutstandingRewards: "/cosmos/distribution/v1beta1/validators/{validator_address}/outstanding_rewards",
	DistributionValidatorSlashes:            "/cosmos/distribution/v1beta1/validators/{validator_address}/slashes",

	SlashingParams:      "/cosmos/slashing/v1beta1/params",
	SlashingSigningInfo: "/cosmos/slashing/v1beta1/signing_infos",

	GovParamsVoting:        "/cosmos/gov/v1beta1/params/voting",
	GovParamsDeposit:       "/cosmos/gov/v1beta1/params/deposit",
	GovParamsTally:         "/cosmos/gov/v1beta1/params/tallying",
	GovProposals:           "/cosmos/gov/v1beta1/proposals",
	GovProposalsProposalID: "/cosmos/gov/v1beta1/proposals/{proposal_id}",
	GovProposalsDeposits:   "/cosmos/gov/v1beta1/proposals/{proposal_id}/deposits",
	GovProposalsTally:      "/cosmos/gov/v1beta1/proposals/{proposal_id}/tally",
	GovProposalsVotes:      "/cosmos/gov/v1beta1/proposals/{proposal_id}/votes?pagination.key={next_key}",
	GovProposalsVotesVoter: "/cosmos/gov/v1beta1/proposals/{proposal_id}/votes/{voter}",

	StakingDelegations:                              "/cosmos/staking/v1beta1/delegations/{delegator_addr}",
	StakingDelegatorRedelegations:                   "/cosmos/staking/v1beta1/delegators/{delegator_addr}/redelegations",
	StakingDelegatorUnbondingDelegations:            "/cosmos/staking/v1beta1/delegators/{delegator_addr}/unbonding_delegations",
	StakingDelegatorValidators:                      "/cosmos/staking/v1beta1/delegators/{delegator_addr}/validators",
	StakingParams:                                   "/cosmos/staking/v1beta1/params",
	StakingPool:                                     "/cosmos/staking/v1beta1/pool",
	StakingValidators:                               "/cosmos/staking/v1beta1/validators?status={status}&pagination.limit={limit}",
	StakingValidatorsAddress:                        "/cosmos/staking/v1beta1/validators/{validator_addr}",
	StakingValidatorsDelegations:                    "/cosmos/staking/v1beta1/validators/{validator_addr}/delegations",
	StakingValidatorsDelegationsDelegator:           "/cosmos/staking/v1beta1/validators/{validator_addr}/delegations/{delegator_addr}",
	StakingValidatorsDelegationsUnbondingDelegation: "/cosmos/staking/v1beta1/validators/{validator_addr}/delegations/{delegator_addr}/unbonding_delegation",

	BaseTendermintAbciQuery:           "/cosmos/base/tendermint/v1beta1/abci_query",
	BaseTendermintBlockLatest:         "/cosmos/base/tendermint/v1beta1/blocks/latest",
	BaseTendermintBlockHeight:         "/cosmos/base/tendermint/v1beta1/blocks/{height}",
	BaseTendermintNodeInfo:            "/cosmos/base/tendermint/v1beta1/node_info",
	BaseTendermintValidatorsetsHeight: "/cosmos/base/tendermint/v1beta1/validatorsets/{height}",
	BaseTendermintValidatorsetsLatest: "/cosmos/base/tendermint/v1beta1/validatorsets/latest",

	TxTxs:      "/cosmos/tx/v1beta1/txs",
	TxTxsBlock: "/cosmos/tx/v1beta1/txs/block/{height}",
	TxHash:     "/cosmos/tx/v1beta1/txs/{hash}",

	MintParams:           "/cosmos/mint/v1beta1/params",
	MintInflation:        "/cosmos/mint/v1beta1/inflation",
	MintAnnualProvisions: "/cosmos/mint/v1beta1/annual_provisions",

	IBCAppTransferDenomTracesHash:                       "/ibc/apps/transfer/v1/denom_traces/{hash}",
	IBCCoreConnectionConnections:                        "/ibc/core/connection/v1/connections",
	IBCCoreConnectionConnectionsConnectionID:            "/ibc/core/connection/v1/connections/{connection_id}",
	IBCCoreConnectionConnectionsConnectionIDClientState: "/ibc/core/connection/v1/connections/{connection_id}/client_state",
	IBCCoreChannelConnectionsChannels:                   "/ibc/core/channel/v1/connections/{connection_id}/channels",
	IBCCoreChannelChannels:                              "/ibc/core/channel/v1/channels",
	IBCCoreChannelChannelsAcknowledgements:              "/ibc/core/channel/v1/channels/{channel_id}/ports/{port_id}/packet_acknowledgements",
	IBCCoreChannelChannelsNextSequence:                  "/ibc/core/channel/v1/channels/{channel_id}/ports/{port_id}/next_sequence",
}

// Entry is a read-only view of one registry template.
type Entry struct {
	Name         QueryName `json:"name"`
	URL          string    `json:"url"`
	Placeholders []string  `json:"placeholders"`
}

// Path returns the template without its literal query part.
func (e Entry) Path() string {
	path, _, _ := strings.Cut(e.URL, "?")
	return path
}

// Registry maps query names to URL templates. It is never mutated after
// construction; With returns a modified copy.
type Registry struct {
	templates map[QueryName]string
}

// NewRegistry copies templates into a new Registry.
func NewRegistry(templates map[QueryName]string) *Registry {
	return &Registry{templates: maps.Clone(templates)}
}

// DefaultRegistry returns the templates for a stock cosmos-sdk node.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultTemplates)
}

// With returns a copy of r where the given templates replace or extend the
// existing ones. Chains that serve a module from a different path use this.
func (r *Registry) With(overrides map[QueryName]string) *Registry {
	templates := make(map[QueryName]string, len(r.templates)+len(overrides))
	maps.Copy(templates, r.templates)
	maps.Copy(templates, overrides)

	return &Registry{templates: templates}
}

func (r *Registry) Template(name QueryName) (string, bool) {
	tmpl, ok := r.templates[name]
	return tmpl, ok
}

func (r *Registry) Lookup(name QueryName) (Entry, bool) {
	tmpl, ok := r.templates[name]
	if !ok {
		return Entry{}, false
	}

	return Entry{Name: name, URL: tmpl, Placeholders: Placeholders(tmpl)}, true
}

// Entries lists every template sorted by name.
func (r *Registry) Entries() []Entry {
	names := slices.Sorted(maps.Keys(r.templates))

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entry, _ := r.Lookup(name)
		entries = append(entries, entry)
	}

	return entries
}
