package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vladislavprovich/cosmos-rest/pkg/client/cosmosrest"
)

var (
	ErrUnknownQuery   = errors.New("unknown query")
	ErrInvalidRequest = errors.New("invalid query request")
)

type QueryService interface {
	Query(ctx context.Context, req *QueryRequest) (any, error)
	Queries(ctx context.Context) []QueryInfo
	Health(ctx context.Context) (*HealthResponse, error)
}

type Service struct {
	logger  *slog.Logger
	client  cosmosrest.Client
	queries map[cosmosrest.QueryName]query
}

func NewCosmosService(_ context.Context, log *slog.Logger, client cosmosrest.Client) *Service {
	return &Service{
		logger:  log,
		client:  client,
		queries: queryTable(),
	}
}

// Query resolves req.Name in the dispatch table and runs the typed client
// method behind it. Client errors are returned unwrapped.
func (s *Service) Query(ctx context.Context, req *QueryRequest) (any, error) {
	s.logger.InfoContext(ctx, "Query", slog.Any("req", req))

	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	q, ok := s.queries[cosmosrest.QueryName(req.Name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuery, req.Name)
	}

	resp, err := q.call(ctx, s.client, Params(req.Params))
	if err != nil {
		s.logger.ErrorContext(ctx, "service client query",
			slog.String("query", req.Name),
			slog.Any("error", err),
		)
		return nil, err
	}

	return resp, nil
}

// Queries describes every registered query that the service can dispatch.
func (s *Service) Queries(_ context.Context) []QueryInfo {
	entries := s.client.Registry().Entries()

	infos := make([]QueryInfo, 0, len(entries))
	for _, entry := range entries {
		q, ok := s.queries[entry.Name]
		if !ok {
			continue
		}

		params := slices.Clone(entry.Placeholders)
		for _, p := range q.extra {
			if !slices.Contains(params, p) {
				params = append(params, p)
			}
		}

		infos = append(infos, QueryInfo{
			Name:   string(entry.Name),
			Path:   entry.Path(),
			Params: params,
		})
	}

	return infos
}
