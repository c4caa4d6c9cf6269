package service

import (
	"context"

	rest "github.com/vladislavprovich/cosmos-rest/pkg/client/cosmosrest"
)

type queryFunc func(ctx context.Context, c rest.Client, p Params) (any, error)

// query is one dispatch entry. extra lists parameters that are not template
// placeholders but are still read from Params.
type query struct {
	call  queryFunc
	extra []string
}

func result[T any](resp *T, err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func noArgs[T any](fn func(rest.Client, context.Context) (*T, error)) query {
	return query{call: func(ctx context.Context, c rest.Client, _ Params) (any, error) {
		return result(fn(c, ctx))
	}}
}

func oneArg[T any](name string, fn func(rest.Client, context.Context, string) (*T, error)) query {
	return query{call: func(ctx context.Context, c rest.Client, p Params) (any, error) {
		return result(fn(c, ctx, p.Get(name)))
	}}
}

func twoArgs[T any](first, second string, fn func(rest.Client, context.Context, string, string) (*T, error)) query {
	return query{call: func(ctx context.Context, c rest.Client, p Params) (any, error) {
		return result(fn(c, ctx, p.Get(first), p.Get(second)))
	}}
}

func statusAndLimit[T any](fn func(rest.Client, context.Context, string, int) (*T, error)) query {
	return query{
		call: func(ctx context.Context, c rest.Client, p Params) (any, error) {
			limit, err := p.Int("limit")
			if err != nil {
				return nil, err
			}
			return result(fn(c, ctx, p.Get("status"), limit))
		},
		extra: []string{"status", "limit"},
	}
}

func queryTable() map[rest.QueryName]query {
	return map[rest.QueryName]query{
		rest.AuthAccounts:       noArgs(rest.Client.GetAuthAccounts),
		rest.AuthAccountAddress: oneArg("address", rest.Client.GetAuthAccount),

		rest.BankParams:          noArgs(rest.Client.GetBankParams),
		rest.BankBalancesAddress: oneArg("address", rest.Client.GetBankBalances),
		rest.BankDenomsMetadata:  noArgs(rest.Client.GetBankDenomMetadata),
		rest.BankSupply:          noArgs(rest.Client.GetBankSupply),
		rest.BankSupplyByDenom:   oneArg("denom", rest.Client.GetBankSupplyByDenom),

		rest.DistributionParams:        noArgs(rest.Client.GetDistributionParams),
		rest.DistributionCommunityPool: noArgs(rest.Client.GetDistributionCommunityPool),
		rest.DistributionDelegatorRewards: oneArg("delegator_addr",
			rest.Client.GetDistributionDelegatorRewards),
		rest.DistributionValidatorCommission: oneArg("validator_address",
			rest.Client.GetDistributionValidatorCommission),
		rest.DistributionValidatorOutstandingRewards: oneArg("validator_address",
			rest.Client.GetDistributionValidatorOutstandingRewards),
		rest.DistributionValidatorSlashes: oneArg("validator_address",
			rest.Client.GetDistributionValidatorSlashes),

		rest.SlashingParams:      noArgs(rest.Client.GetSlashingParams),
		rest.SlashingSigningInfo: noArgs(rest.Client.GetSlashingSigningInfos),

		rest.GovParamsVoting:        noArgs(rest.Client.GetGovParamsVoting),
		rest.GovParamsDeposit:       noArgs(rest.Client.GetGovParamsDeposit),
		rest.GovParamsTally:         noArgs(rest.Client.GetGovParamsTally),
		rest.GovProposals:           statusAndLimit(rest.Client.GetGovProposals),
		rest.GovProposalsProposalID: oneArg("proposal_id", rest.Client.GetGovProposal),
		rest.GovProposalsDeposits:   oneArg("proposal_id", rest.Client.GetGovProposalDeposits),
		rest.GovProposalsTally:      oneArg("proposal_id", rest.Client.GetGovProposalTally),
		rest.GovProposalsVotes:      twoArgs("proposal_id", "next_key", rest.Client.GetGovProposalVotes),
		rest.GovProposalsVotesVoter: twoArgs("proposal_id", "voter", rest.Client.GetGovProposalVotesVoter),

		rest.StakingDelegations: oneArg("delegator_addr", rest.Client.GetStakingDelegations),
		rest.StakingDelegatorRedelegations: oneArg("delegator_addr",
			rest.Client.GetStakingDelegatorRedelegations),
		rest.StakingDelegatorUnbondingDelegations: oneArg("delegator_addr",
			rest.Client.GetStakingDelegatorUnbonding),
		rest.StakingDelegatorValidators: oneArg("delegator_addr", rest.Client.GetStakingDelegatorValidators),
		rest.StakingParams:              noArgs(rest.Client.GetStakingParams),
		rest.StakingPool:                noArgs(rest.Client.GetStakingPool),
		rest.StakingValidators:          statusAndLimit(rest.Client.GetStakingValidators),
		rest.StakingValidatorsAddress:   oneArg("validator_addr", rest.Client.GetStakingValidator),
		rest.StakingValidatorsDelegations: oneArg("validator_addr",
			rest.Client.GetStakingValidatorsDelegations),
		rest.StakingValidatorsDelegationsDelegator: twoArgs("validator_addr", "delegator_addr",
			rest.Client.GetStakingValidatorsDelegationsDelegator),
		rest.StakingValidatorsDelegationsUnbondingDelegation: twoArgs("validator_addr", "delegator_addr",
			rest.Client.GetStakingValidatorsDelegationsUnbonding),

		rest.BaseTendermintAbciQuery:   noArgs(rest.Client.GetBaseAbciQuery),
		rest.BaseTendermintBlockLatest: noArgs(rest.Client.GetBaseBlockLatest),
		rest.BaseTendermintBlockHeight: oneArg("height", rest.Client.GetBaseBlockAt),
		rest.BaseTendermintNodeInfo:    noArgs(rest.Client.GetBaseNodeInfo),
		rest.BaseTendermintValidatorsetsHeight: {
			call: func(ctx context.Context, c rest.Client, p Params) (any, error) {
				offset, err := p.Int("offset")
				if err != nil {
					return nil, err
				}
				return result(c.GetBaseValidatorsetAt(ctx, p.Get("height"), offset))
			},
			extra: []string{"offset"},
		},
		rest.BaseTendermintValidatorsetsLatest: {
			call: func(ctx context.Context, c rest.Client, p Params) (any, error) {
				offset, err := p.Int("offset")
				if err != nil {
					return nil, err
				}
				return result(c.GetBaseValidatorsetLatest(ctx, offset))
			},
			extra: []string{"offset"},
		},

		rest.TxTxs: {
			call: func(ctx context.Context, c rest.Client, p Params) (any, error) {
				return result(c.GetTxsBySender(ctx, p.Get("sender")))
			},
			extra: []string{"sender"},
		},
		rest.TxTxsBlock: oneArg("height", rest.Client.GetTxsAt),
		rest.TxHash:     oneArg("hash", rest.Client.GetTx),

		rest.MintParams:           noArgs(rest.Client.GetMintParam),
		rest.MintInflation:        noArgs(rest.Client.GetMintInflation),
		rest.MintAnnualProvisions: noArgs(rest.Client.GetMintAnnualProvisions),

		rest.IBCAppTransferDenomTracesHash: oneArg("hash", rest.Client.GetIBCAppTransferDenom),
		rest.IBCCoreConnectionConnections:  noArgs(rest.Client.GetIBCConnections),
		rest.IBCCoreConnectionConnectionsConnectionID: oneArg("connection_id",
			rest.Client.GetIBCConnectionsByID),
		rest.IBCCoreConnectionConnectionsConnectionIDClientState: oneArg("connection_id",
			rest.Client.GetIBCConnectionsClientState),
		rest.IBCCoreChannelConnectionsChannels: oneArg("connection_id", rest.Client.GetIBCConnectionsChannels),
		rest.IBCCoreChannelChannels:            noArgs(rest.Client.GetIBCChannels),
		rest.IBCCoreChannelChannelsAcknowledgements: twoArgs("channel_id", "port_id",
			rest.Client.GetIBCChannelAcknowledgements),
		rest.IBCCoreChannelChannelsNextSequence: twoArgs("channel_id", "port_id",
			rest.Client.GetIBCChannelNextSequence),
	}
}
