package cosmosrest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrUnresolvedPlaceholder = errors.New("unresolved url placeholder")
	ErrUnregisteredQuery     = errors.New("query is not registered")
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z0-9_.]+)\}`)

// Args maps placeholder names to their values. An empty value is substituted
// as an empty string.
type Args map[string]string

// BuildURL concatenates endpoint, template and query, then replaces the first
// occurrence of {key} for every key in args. Keys are applied in sorted order.
// Placeholders without a key in args are left untouched.
func BuildURL(endpoint, template string, args Args, query string) string {
	url := endpoint + template + query

	for _, key := range slices.Sorted(maps.Keys(args)) {
		url = strings.Replace(url, "{"+key+"}", args[key], 1)
	}

	return url
}

// Placeholders returns the distinct placeholder names of template in order of
// first appearance.
func Placeholders(template string) []string {
	names := make([]string, 0)
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}

	return names
}

func unresolved(url string) error {
	names := Placeholders(url)
	if len(names) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnresolvedPlaceholder, strings.Join(names, ", "))
}

// doRequest builds the URL for name and hands it to the fetcher. Fetch errors
// are returned as is.
func doRequest[T any](ctx context.Context, c *BasicClient, name QueryName, args Args, query string) (*T, error) {
	tmpl, ok := c.registry.Template(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnregisteredQuery, name)
	}

	url := BuildURL(c.endpoint, tmpl, args, query)
	if c.cfg.StrictPlaceholders {
		if err := unresolved(url); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	c.logger.DebugContext(ctx, "cosmos rest request",
		slog.String("query", string(name)),
		slog.String("url", url),
	)

	var resp T
	if err := c.fetcher.Fetch(ctx, url, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
