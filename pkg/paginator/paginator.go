package paginator

// Adjust normalizes the pagination parameters to valid values.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset is the index of the first item of the current page.
func (p PaginateQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Slice returns the page of items selected by q together with its metadata.
// q is adjusted first; a page past the end is empty.
func Slice[T any](items []T, q PaginateQuery) ([]T, Paginator) {
	q.Adjust()

	start := min(q.Offset(), len(items))
	end := min(start+q.Limit, len(items))
	page := items[start:end]

	return page, Paginator{
		Total:       len(items),
		Count:       len(page),
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}

// TotalPages calculates the total number of pages.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// HasNextPage checks if there is a next page available.
func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// HasPreviousPage checks if there is a previous page available.
func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// ToResponse converts the paginator to a response format with additional calculated fields.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}
