package cosmosrest

import "context"

func (c *BasicClient) GetAuthAccounts(ctx context.Context) (*AuthAccountsResponse, error) {
	return doRequest[AuthAccountsResponse](ctx, c, AuthAccounts, Args{}, "")
}

func (c *BasicClient) GetAuthAccount(ctx context.Context, address string) (*AuthAccountResponse, error) {
	return doRequest[AuthAccountResponse](ctx, c, AuthAccountAddress, Args{"address": address}, "")
}

func (c *BasicClient) GetBankParams(ctx context.Context) (*BankParamsResponse, error) {
	return doRequest[BankParamsResponse](ctx, c, BankParams, Args{}, "")
}

func (c *BasicClient) GetBankBalances(ctx context.Context, address string) (*BankBalancesResponse, error) {
	return doRequest[BankBalancesResponse](ctx, c, BankBalancesAddress, Args{"address": address}, "")
}

func (c *BasicClient) GetBankDenomMetadata(ctx context.Context) (*BankDenomsMetadataResponse, error) {
	return doRequest[BankDenomsMetadataResponse](ctx, c, BankDenomsMetadata, Args{}, "")
}

func (c *BasicClient) GetBankSupply(ctx context.Context) (*BankSupplyResponse, error) {
	return doRequest[BankSupplyResponse](ctx, c, BankSupply, Args{}, "")
}

func (c *BasicClient) GetBankSupplyByDenom(ctx context.Context, denom string) (*BankSupplyOfResponse, error) {
	return doRequest[BankSupplyOfResponse](ctx, c, BankSupplyByDenom, Args{"denom": denom}, "")
}
