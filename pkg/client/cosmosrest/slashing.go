package cosmosrest

import "context"

const signingInfosQuery = "?pagination.limit=300"

func (c *BasicClient) GetSlashingParams(ctx context.Context) (*SlashingParamsResponse, error) {
	return doRequest[SlashingParamsResponse](ctx, c, SlashingParams, Args{}, "")
}

func (c *BasicClient) GetSlashingSigningInfos(ctx context.Context) (*SlashingSigningInfosResponse, error) {
	return doRequest[SlashingSigningInfosResponse](ctx, c, SlashingSigningInfo, Args{}, signingInfosQuery)
}
