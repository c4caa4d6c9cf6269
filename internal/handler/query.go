package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/cosmos-rest/internal/service"
)

// Query serves one registry entry. Path placeholders come from the chi route,
// everything else from the request query string.
func (h *ServiceHandler) Query(info service.QueryInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		params := make(map[string]string, len(info.Params))
		for _, name := range info.Params {
			value := chi.URLParam(r, name)
			if value == "" {
				value = r.URL.Query().Get(name)
			}
			params[name] = value
		}

		resp, err := h.service.Query(ctx, &service.QueryRequest{Name: info.Name, Params: params})
		if err != nil {
			h.sendError(ctx, w, err)
			return
		}

		h.sendJSON(ctx, w, http.StatusOK, resp)
	}
}

func (h *ServiceHandler) Queries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.sendJSON(ctx, w, http.StatusOK, h.service.Queries(ctx))
}
