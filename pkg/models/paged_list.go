package models

// PagedList is a read-only view over one page of a query result
type PagedList[T any] struct {
	Items           []T   `json:"items"`
	Number          int   `json:"number"`
	TotalCount      int64 `json:"total_count"`
	TotalPageCount  int   `json:"total_page_count"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// NewPagedList builds the page view for items at the given 1-based page
// number. The caller is expected to have clamped the page the same way
// ClampPage does.
func NewPagedList[T any](items []T, page, pageSize int, totalCount int64) PagedList[T] {
	totalPages := TotalPageCount(totalCount, pageSize)
	return PagedList[T]{
		Items:           items,
		Number:          page,
		TotalCount:      totalCount,
		TotalPageCount:  totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// TotalPageCount is the ceiling of totalCount divided by pageSize
func TotalPageCount(totalCount int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

// ClampPage normalizes a requested page number: anything below 1 or past
// the last page falls back to page 1.
func ClampPage(page int, totalCount int64, pageSize int) int {
	if page < 1 {
		return 1
	}
	if totalPages := TotalPageCount(totalCount, pageSize); page > totalPages {
		return 1
	}
	return page
}
