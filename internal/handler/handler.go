package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/cosmos-rest/internal/service"
	"github.com/vladislavprovich/cosmos-rest/pkg/client/cosmosrest"
)

type Handler interface {
	Query(info service.QueryInfo) http.HandlerFunc
	Queries(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
	Routes(ctx context.Context) []service.QueryInfo
}

type ServiceHandler struct {
	service service.QueryService
	logger  *slog.Logger
	cfg     *Config
	render  *render.Render
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

func NewServiceHandler(srv service.QueryService, logger *slog.Logger, cfg *Config, render *render.Render) *ServiceHandler {
	return &ServiceHandler{
		service: srv,
		logger:  logger,
		cfg:     cfg,
		render:  render,
	}
}

func (h *ServiceHandler) Routes(ctx context.Context) []service.QueryInfo {
	return h.service.Queries(ctx)
}

func (h *ServiceHandler) sendJSON(ctx context.Context, w io.Writer, status int, body any) {
	if err := h.render.JSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "render JSON error", slog.Any("error", err))
	}
}

// sendError maps service and node errors onto gateway status codes. Node
// errors keep the status the node answered with.
func (h *ServiceHandler) sendError(ctx context.Context, w io.Writer, err error) {
	var apiErr *cosmosrest.APIError
	switch {
	case errors.As(err, &apiErr):
		h.logger.WarnContext(ctx, "node rejected query", slog.Any("error", err))
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		h.sendJSON(ctx, w, status, errorResponse{Error: apiErr.Message, Code: apiErr.Code})
	case errors.Is(err, service.ErrUnknownQuery):
		h.sendJSON(ctx, w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, cosmosrest.ErrUnresolvedPlaceholder):
		h.sendJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.ErrorContext(ctx, "query error", slog.Any("error", err))
		h.sendJSON(ctx, w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
}
