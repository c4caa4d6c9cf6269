package cosmosrest

import "context"

func (c *BasicClient) GetDistributionParams(ctx context.Context) (*DistributionParamsResponse, error) {
	return doRequest[DistributionParamsResponse](ctx, c, DistributionParams, Args{}, "")
}

func (c *BasicClient) GetDistributionCommunityPool(ctx context.Context) (*DistributionCommunityPoolResponse, error) {
	return doRequest[DistributionCommunityPoolResponse](ctx, c, DistributionCommunityPool, Args{}, "")
}

func (c *BasicClient) GetDistributionDelegatorRewards(
	ctx context.Context,
	delegatorAddr string,
) (*DistributionDelegatorRewardsResponse, error) {
	return doRequest[DistributionDelegatorRewardsResponse](ctx, c, DistributionDelegatorRewards,
		Args{"delegator_addr": delegatorAddr}, "")
}

func (c *BasicClient) GetDistributionValidatorCommission(
	ctx context.Context,
	validatorAddress string,
) (*DistributionValidatorCommissionResponse, error) {
	return doRequest[DistributionValidatorCommissionResponse](ctx, c, DistributionValidatorCommission,
		Args{"validator_address": validatorAddress}, "")
}

func (c *BasicClient) GetDistributionValidatorOutstandingRewards(
	ctx context.Context,
	validatorAddress string,
) (*DistributionValidatorOutstandingRewardsResponse, error) {
	return doRequest[DistributionValidatorOutstandingRewardsResponse](ctx, c, DistributionValidatorOutstandingRewards,
		Args{"validator_address": validatorAddress}, "")
}

func (c *BasicClient) GetDistributionValidatorSlashes(
	ctx context.Context,
	validatorAddress string,
) (*DistributionValidatorSlashesResponse, error) {
	return doRequest[DistributionValidatorSlashesResponse](ctx, c, DistributionValidatorSlashes,
		Args{"validator_address": validatorAddress}, "")
}
