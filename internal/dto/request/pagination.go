package request

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PaginatedRequest models the page/page_size query parameters used by
// every listing endpoint that paginates. Page size defaults to 10 and
// is capped at 100 whatever the caller asks for.
type PaginatedRequest struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PageSize < 1 {
		return DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return p.PageSize
}
