package model

// Sort directions accepted by the catalog listing.
const (
	SortAsc  = "asc"
	SortDesc = "dsc"
	SortNone = ""
)

// CarQuery is a validated filter/sort/pagination specification for the
// car catalog. It is only ever produced by the query composer, never
// built directly from raw request parameters.
type CarQuery struct {
	// Brand adds an exact-match predicate on brand_name when non-empty.
	Brand string
	// Search adds a case-insensitive substring OR over model_name,
	// brand_name and category when non-empty.
	Search string
	// Sort orders by deadline; SortNone leaves storage order.
	Sort string
	// Page and Size define the result window: skip Page*Size, take Size.
	Page int
	Size int
}
