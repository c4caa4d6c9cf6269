package service

import (
	"context"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type (
	QueryRequest struct {
		Name   string            `json:"name"`
		Params map[string]string `json:"params"`
	}

	QueryInfo struct {
		Name   string   `json:"name"`
		Path   string   `json:"path"`
		Params []string `json:"params"`
	}

	HealthResponse struct {
		Status  int `json:"status"`
		Queries int `json:"queries"`
	}
)

func (r *QueryRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Name, validation.Required),
	)
}

// Params carries the raw string arguments of a query.
type Params map[string]string

func (p Params) Get(name string) string {
	return p[name]
}

// Int parses name as a non-negative integer. A missing value yields 0 so that
// the client applies its own default.
func (p Params) Int(name string) (int, error) {
	raw := p[name]
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %q", ErrInvalidRequest, name, raw)
	}

	return n, nil
}
