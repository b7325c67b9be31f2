package shared

// Filter represents query filter options
type Filter struct {
	Page            int
	PageSize        int
	OrderBy         string
	OrderDir        string
	Search          string
	IncludeInactive bool
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 100,
		OrderBy:  "id",
		OrderDir: "asc",
	}
}

// Offset returns the row offset for the filter's page
func (f Filter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the page size, clamped to a sane range
func (f Filter) Limit() int {
	switch {
	case f.PageSize <= 0:
		return 100
	case f.PageSize > 1000:
		return 1000
	default:
		return f.PageSize
	}
}
