package cosmosrest

import "context"

func (c *BasicClient) GetMintParam(ctx context.Context) (*MintParamsResponse, error) {
	return doRequest[MintParamsResponse](ctx, c, MintParams, Args{}, "")
}

func (c *BasicClient) GetMintInflation(ctx context.Context) (*MintInflationResponse, error) {
	return doRequest[MintInflationResponse](ctx, c, MintInflation, Args{}, "")
}

func (c *BasicClient) GetMintAnnualProvisions(ctx context.Context) (*MintAnnualProvisionsResponse, error) {
	return doRequest[MintAnnualProvisionsResponse](ctx, c, MintAnnualProvisions, Args{}, "")
}
