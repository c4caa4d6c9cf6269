package cosmosrest

import (
	"context"
	"strconv"
)

const (
	DefaultProposalsLimit = 20

	proposalsQuery = "?proposal_status={status}&pagination.limit={limit}&pagination.reverse=true&pagination.key="
)

func (c *BasicClient) GetGovParamsVoting(ctx context.Context) (*GovParamsResponse, error) {
	return doRequest[GovParamsResponse](ctx, c, GovParamsVoting, Args{}, "")
}

func (c *BasicClient) GetGovParamsDeposit(ctx context.Context) (*GovParamsResponse, error) {
	return doRequest[GovParamsResponse](ctx, c, GovParamsDeposit, Args{}, "")
}

func (c *BasicClient) GetGovParamsTally(ctx context.Context) (*GovParamsResponse, error) {
	return doRequest[GovParamsResponse](ctx, c, GovParamsTally, Args{}, "")
}

// GetGovProposals lists proposals in the given status, newest first. A limit
// of zero or less falls back to DefaultProposalsLimit.
func (c *BasicClient) GetGovProposals(ctx context.Context, status string, limit int) (*GovProposalsResponse, error) {
	if limit <= 0 {
		limit = DefaultProposalsLimit
	}

	args := Args{"status": status, "limit": strconv.Itoa(limit)}

	return doRequest[GovProposalsResponse](ctx, c, GovProposals, args, proposalsQuery)
}

func (c *BasicClient) GetGovProposal(ctx context.Context, proposalID string) (*GovProposalResponse, error) {
	return doRequest[GovProposalResponse](ctx, c, GovProposalsProposalID, Args{"proposal_id": proposalID}, "")
}

func (c *BasicClient) GetGovProposalDeposits(ctx context.Context, proposalID string) (*GovDepositsResponse, error) {
	return doRequest[GovDepositsResponse](ctx, c, GovProposalsDeposits, Args{"proposal_id": proposalID}, "")
}

func (c *BasicClient) GetGovProposalTally(ctx context.Context, proposalID string) (*GovTallyResponse, error) {
	return doRequest[GovTallyResponse](ctx, c, GovProposalsTally, Args{"proposal_id": proposalID}, "")
}

// GetGovProposalVotes returns one page of votes. An empty nextKey requests the
// first page.
func (c *BasicClient) GetGovProposalVotes(ctx context.Context, proposalID, nextKey string) (*GovVotesResponse, error) {
	args := Args{"proposal_id": proposalID, "next_key": nextKey}

	return doRequest[GovVotesResponse](ctx, c, GovProposalsVotes, args, "")
}

func (c *BasicClient) GetGovProposalVotesVoter(ctx context.Context, proposalID, voter string) (*GovVoteResponse, error) {
	args := Args{"proposal_id": proposalID, "voter": voter}

	return doRequest[GovVoteResponse](ctx, c, GovProposalsVotesVoter, args, "")
}
