package cosmosrest

import (
	"context"
	"strconv"
)

const DefaultValidatorsLimit = 200

func (c *BasicClient) GetStakingDelegations(ctx context.Context, delegatorAddr string) (*StakingDelegationsResponse, error) {
	return doRequest[StakingDelegationsResponse](ctx, c, StakingDelegations,
		Args{"delegator_addr": delegatorAddr}, "")
}

func (c *BasicClient) GetStakingDelegatorRedelegations(
	ctx context.Context,
	delegatorAddr string,
) (*StakingRedelegationsResponse, error) {
	return doRequest[StakingRedelegationsResponse](ctx, c, StakingDelegatorRedelegations,
		Args{"delegator_addr": delegatorAddr}, "")
}

func (c *BasicClient) GetStakingDelegatorUnbonding(
	ctx context.Context,
	delegatorAddr string,
) (*StakingUnbondingDelegationsResponse, error) {
	return doRequest[StakingUnbondingDelegationsResponse](ctx, c, StakingDelegatorUnbondingDelegations,
		Args{"delegator_addr": delegatorAddr}, "")
}

func (c *BasicClient) GetStakingDelegatorValidators(
	ctx context.Context,
	delegatorAddr string,
) (*StakingValidatorsResponse, error) {
	return doRequest[StakingValidatorsResponse](ctx, c, StakingDelegatorValidators,
		Args{"delegator_addr": delegatorAddr}, "")
}

func (c *BasicClient) GetStakingParams(ctx context.Context) (*StakingParamsResponse, error) {
	return doRequest[StakingParamsResponse](ctx, c, StakingParams, Args{}, "")
}

func (c *BasicClient) GetStakingPool(ctx context.Context) (*StakingPoolResponse, error) {
	return doRequest[StakingPoolResponse](ctx, c, StakingPool, Args{}, "")
}

// GetStakingValidators lists validators by bond status, e.g.
// BOND_STATUS_BONDED. A limit of zero or less falls back to
// DefaultValidatorsLimit.
func (c *BasicClient) GetStakingValidators(
	ctx context.Context,
	status string,
	limit int,
) (*StakingValidatorsResponse, error) {
	if limit <= 0 {
		limit = DefaultValidatorsLimit
	}

	args := Args{"status": status, "limit": strconv.Itoa(limit)}

	return doRequest[StakingValidatorsResponse](ctx, c, StakingValidators, args, "")
}

func (c *BasicClient) GetStakingValidator(ctx context.Context, validatorAddr string) (*StakingValidatorResponse, error) {
	return doRequest[StakingValidatorResponse](ctx, c, StakingValidatorsAddress,
		Args{"validator_addr": validatorAddr}, "")
}

func (c *BasicClient) GetStakingValidatorsDelegations(
	ctx context.Context,
	validatorAddr string,
) (*StakingDelegationsResponse, error) {
	return doRequest[StakingDelegationsResponse](ctx, c, StakingValidatorsDelegations,
		Args{"validator_addr": validatorAddr}, "")
}

func (c *BasicClient) GetStakingValidatorsDelegationsDelegator(
	ctx context.Context,
	validatorAddr, delegatorAddr string,
) (*StakingDelegationResponse, error) {
	args := Args{"validator_addr": validatorAddr, "delegator_addr": delegatorAddr}

	return doRequest[StakingDelegationResponse](ctx, c, StakingValidatorsDelegationsDelegator, args, "")
}

func (c *BasicClient) GetStakingValidatorsDelegationsUnbonding(
	ctx context.Context,
	validatorAddr, delegatorAddr string,
) (*StakingUnbondingDelegationResponse, error) {
	args := Args{"validator_addr": validatorAddr, "delegator_addr": delegatorAddr}

	return doRequest[StakingUnbondingDelegationResponse](ctx, c, StakingValidatorsDelegationsUnbondingDelegation,
		args, "")
}
