package cosmosrest

import "context"

func (c *BasicClient) GetIBCAppTransferDenom(ctx context.Context, hash string) (*DenomTraceResponse, error) {
	return doRequest[DenomTraceResponse](ctx, c, IBCAppTransferDenomTracesHash, Args{"hash": hash}, "")
}

func (c *BasicClient) GetIBCConnections(ctx context.Context) (*IBCConnectionsResponse, error) {
	return doRequest[IBCConnectionsResponse](ctx, c, IBCCoreConnectionConnections, Args{}, "")
}

func (c *BasicClient) GetIBCConnectionsByID(ctx context.Context, connectionID string) (*IBCConnectionResponse, error) {
	return doRequest[IBCConnectionResponse](ctx, c, IBCCoreConnectionConnectionsConnectionID,
		Args{"connection_id": connectionID}, "")
}

func (c *BasicClient) GetIBCConnectionsClientState(
	ctx context.Context,
	connectionID string,
) (*IBCClientStateResponse, error) {
	return doRequest[IBCClientStateResponse](ctx, c, IBCCoreConnectionConnectionsConnectionIDClientState,
		Args{"connection_id": connectionID}, "")
}

func (c *BasicClient) GetIBCConnectionsChannels(ctx context.Context, connectionID string) (*IBCChannelsResponse, error) {
	return doRequest[IBCChannelsResponse](ctx, c, IBCCoreChannelConnectionsChannels,
		Args{"connection_id": connectionID}, "")
}

func (c *BasicClient) GetIBCChannels(ctx context.Context) (*IBCChannelsResponse, error) {
	return doRequest[IBCChannelsResponse](ctx, c, IBCCoreChannelChannels, Args{}, "")
}

func (c *BasicClient) GetIBCChannelAcknowledgements(
	ctx context.Context,
	channelID, portID string,
) (*IBCPacketAcknowledgementsResponse, error) {
	args := Args{"channel_id": channelID, "port_id": portID}

	return doRequest[IBCPacketAcknowledgementsResponse](ctx, c, IBCCoreChannelChannelsAcknowledgements, args, "")
}

func (c *BasicClient) GetIBCChannelNextSequence(
	ctx context.Context,
	channelID, portID string,
) (*IBCNextSequenceResponse, error) {
	args := Args{"channel_id": channelID, "port_id": portID}

	return doRequest[IBCNextSequenceResponse](ctx, c, IBCCoreChannelChannelsNextSequence, args, "")
}
