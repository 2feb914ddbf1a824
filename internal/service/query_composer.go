package service

import (
	"net/url"
	"strconv"
	"strings"

	"autobid-server/internal/model"
)

// DefaultPageSize is the listing window used when the client sends no
// size parameter, or a malformed one.
const DefaultPageSize = 4

// ParseCarQuery builds a validated catalog query from untrusted listing
// parameters. Malformed numbers coerce to defaults instead of failing,
// and unknown sort values fall back to storage order.
func ParseCarQuery(values url.Values) model.CarQuery {
	return model.CarQuery{
		Brand:  strings.TrimSpace(values.Get("filter")),
		Search: strings.TrimSpace(values.Get("search")),
		Sort:   parseSort(values.Get("sort")),
		Page:   parseNonNegative(values.Get("page"), 0),
		Size:   parseNonNegative(values.Get("size"), DefaultPageSize),
	}
}

// ParseCarCountQuery builds the matching-count query. It shares the
// brand and search composition with ParseCarQuery but carries no sort or
// pagination, so the count and the listing agree on the matched set.
func ParseCarCountQuery(values url.Values) model.CarQuery {
	return model.CarQuery{
		Brand:  strings.TrimSpace(values.Get("brand")),
		Search: strings.TrimSpace(values.Get("search")),
	}
}

func parseSort(raw string) string {
	switch strings.TrimSpace(raw) {
	case model.SortAsc:
		return model.SortAsc
	case model.SortDesc:
		return model.SortDesc
	default:
		return model.SortNone
	}
}

func parseNonNegative(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}

	return v
}
