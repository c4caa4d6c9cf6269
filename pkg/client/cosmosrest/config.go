package cosmosrest

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	TransportHTTP  = "http"
	TransportResty = "resty"
)

type Config struct {
	Endpoint           string        `envconfig:"COSMOS_REST_ENDPOINT"`
	Transport          string        `envconfig:"COSMOS_REST_TRANSPORT" default:"http"`
	Timeout            time.Duration `envconfig:"COSMOS_REST_TIMEOUT" default:"10s"`
	StrictPlaceholders bool          `envconfig:"COSMOS_REST_STRICT_PLACEHOLDERS"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.Endpoint, validation.Required, is.URL),
		validation.Field(&c.Transport, validation.In(TransportHTTP, TransportResty)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}
