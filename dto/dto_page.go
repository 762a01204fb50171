package dto

// Page is the paginated-aggregation result. Docs is never nil so an empty
// page serializes as [] rather than null.
type Page[T any] struct {
	Docs        []T   `json:"docs"`
	TotalDocs   int64 `json:"totalDocs"`
	Page        int64 `json:"page"`
	Limit       int64 `json:"limit"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPage fills in the derived pagination fields. Pages past the end are a
// valid empty page, not an error.
func NewPage[T any](docs []T, total, page, limit int64) Page[T] {
	if docs == nil {
		docs = []T{}
	}
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return Page[T]{
		Docs:        docs,
		TotalDocs:   total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1 && total > 0,
	}
}
