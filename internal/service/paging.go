package service

import "github.com/example/setlocale/pkg/models"

// pagedQuery runs the one paging algorithm every paged read shares:
// clamp the requested page to 1, reset to 1 when it is past the last
// page, then fetch that page with limit/offset. Items are expected to
// come back most-recently-created first.
func pagedQuery[T any](page, pageSize int,
	count func() (int64, error),
	list func(limit, offset int) ([]T, error)) (*models.PagedList[T], error) {

	totalCount, err := count()
	if err != nil {
		return nil, err
	}

	page = models.ClampPage(page, totalCount, pageSize)

	items, err := list(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	paged := models.NewPagedList(items, page, pageSize, totalCount)
	return &paged, nil
}
