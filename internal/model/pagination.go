package model

// Paginated one page of results plus the total row count
type Paginated[T any] struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Items    []T   `json:"items"`
}

// NewPaginated never returns a nil Items slice so JSON renders []
func NewPaginated[T any](items []T, total int64, page, pageSize int) *Paginated[T] {
	if items == nil {
		items = []T{}
	}
	return &Paginated[T]{Total: total, Page: page, PageSize: pageSize, Items: items}
}

// TotalPages number of pages for the current page size
func (p *Paginated[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
}
