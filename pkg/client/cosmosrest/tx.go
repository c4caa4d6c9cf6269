package cosmosrest

import (
	"context"
	"fmt"
)

// GetTxsBySender searches transactions whose message.sender event equals
// sender, newest first. The sender is written into the query verbatim.
func (c *BasicClient) GetTxsBySender(ctx context.Context, sender string) (*TxsEventResponse, error) {
	query := fmt.Sprintf("?pagination.reverse=true&events=message.sender='%s'", sender)

	return doRequest[TxsEventResponse](ctx, c, TxTxs, Args{}, query)
}

func (c *BasicClient) GetTxsAt(ctx context.Context, height string) (*BlockWithTxsResponse, error) {
	return doRequest[BlockWithTxsResponse](ctx, c, TxTxsBlock, Args{"height": height}, "")
}

func (c *BasicClient) GetTx(ctx context.Context, hash string) (*TxResponse, error) {
	return doRequest[TxResponse](ctx, c, TxHash, Args{"hash": hash}, "")
}
