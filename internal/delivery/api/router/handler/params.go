package handler

import (
	"net/url"
	"strings"

	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Query parameters with a fixed meaning on list endpoints; every other parameter is a
// filter.
const (
	querySkip    = "skip"
	queryLimit   = "limit"
	queryPreload = "preload"
)

var reservedQueryParams = []string{querySkip, queryLimit, queryPreload}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithMessagef("Invalid %s: must be a UUID", name)
	}

	return id, nil
}

func queryInt(query url.Values, name string) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, nil
	}

	n, err := cast.ToIntE(raw)
	if err != nil {
		return 0, domainerrors.ErrInvalidInput.WithMessagef("Invalid %s: must be an integer", name)
	}

	return n, nil
}

// splitList accepts both repeated parameters and comma-separated values.
func splitList(values []string) []string {
	parts := lo.FlatMap(values, func(v string, _ int) []string {
		return strings.Split(v, ",")
	})

	return lo.Compact(lo.Map(parts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
}

func preloads(query url.Values) []string {
	return splitList(query[queryPreload])
}

func filters(query url.Values, exclude ...string) repository.Filters {
	result := repository.Filters{}
	for key, values := range query {
		if lo.Contains(reservedQueryParams, key) || lo.Contains(exclude, key) || len(values) == 0 {
			continue
		}
		result[key] = strings.Join(values, ",")
	}

	return result
}

func listOptions(c echo.Context) (repository.ListOptions, error) {
	query := c.QueryParams()

	skip, err := queryInt(query, querySkip)
	if err != nil {
		return repository.ListOptions{}, err
	}
	limit, err := queryInt(query, queryLimit)
	if err != nil {
		return repository.ListOptions{}, err
	}

	return repository.ListOptions{
		Offset:  skip,
		Limit:   limit,
		Filters: filters(query),
		Preload: preloads(query),
	}, nil
}

func queryUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.QueryParam(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithMessagef("Invalid %s: must be a UUID", name)
	}

	return id, nil
}
