package repository

import (
	"fmt"
	"strings"

	"autobid-server/internal/model"
)

// buildCarFilter translates a validated catalog query into a WHERE clause
// and its arguments. The listing and the count queries both go through
// here, so ceil(count/size) stays a valid page count for the listing.
func buildCarFilter(q model.CarQuery) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if q.Brand != "" {
		args = append(args, q.Brand)
		conditions = append(conditions, fmt.Sprintf("brand_name = $%d", len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(model_name ILIKE $%d OR brand_name ILIKE $%d OR category ILIKE $%d)", n, n, n))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// orderClause maps the validated sort direction to an ORDER BY on the
// auction deadline. Anything else keeps storage order.
func orderClause(sort string) string {
	switch sort {
	case model.SortAsc:
		return " ORDER BY deadline ASC"
	case model.SortDesc:
		return " ORDER BY deadline DESC"
	default:
		return ""
	}
}

// escapeLike neutralizes LIKE metacharacters so user input only ever
// matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
