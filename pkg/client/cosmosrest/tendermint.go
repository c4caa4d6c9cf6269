package cosmosrest

import (
	"context"
	"fmt"
	"log/slog"
)

const validatorSetPageSize = 100

func validatorSetQuery(offset int) string {
	return fmt.Sprintf("?pagination.limit=%d&pagination.offset=%d", validatorSetPageSize, offset)
}

func (c *BasicClient) GetBaseAbciQuery(ctx context.Context) (*AbciQueryResponse, error) {
	return doRequest[AbciQueryResponse](ctx, c, BaseTendermintAbciQuery, Args{}, "")
}

func (c *BasicClient) GetBaseBlockLatest(ctx context.Context) (*BlockResponse, error) {
	return doRequest[BlockResponse](ctx, c, BaseTendermintBlockLatest, Args{}, "")
}

func (c *BasicClient) GetBaseBlockAt(ctx context.Context, height string) (*BlockResponse, error) {
	return doRequest[BlockResponse](ctx, c, BaseTendermintBlockHeight, Args{"height": height}, "")
}

func (c *BasicClient) GetBaseNodeInfo(ctx context.Context) (*NodeInfoResponse, error) {
	return doRequest[NodeInfoResponse](ctx, c, BaseTendermintNodeInfo, Args{}, "")
}

// GetBaseValidatorsetAt returns one page of the validator set at height.
// Pages are validatorSetPageSize long and offset counts validators.
func (c *BasicClient) GetBaseValidatorsetAt(
	ctx context.Context,
	height string,
	offset int,
) (*ValidatorSetResponse, error) {
	c.logger.DebugContext(ctx, "validator set page", slog.String("height", height), slog.Int("offset", offset))

	return doRequest[ValidatorSetResponse](ctx, c, BaseTendermintValidatorsetsHeight,
		Args{"height": height}, validatorSetQuery(offset))
}

func (c *BasicClient) GetBaseValidatorsetLatest(ctx context.Context, offset int) (*ValidatorSetResponse, error) {
	c.logger.DebugContext(ctx, "validator set page", slog.Int("offset", offset))

	return doRequest[ValidatorSetResponse](ctx, c, BaseTendermintValidatorsetsLatest, Args{}, validatorSetQuery(offset))
}
