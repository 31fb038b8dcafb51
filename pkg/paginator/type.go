package paginator

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page  int `json:"page" form:"page"`   // Page number (1-indexed)
	Limit int `json:"limit" form:"limit"` // Number of items per page
}

// Paginator contains pagination metadata for one page of a list.
type Paginator struct {
	Total       int `json:"total"`        // Total number of items across all pages
	Count       int `json:"count"`        // Number of items in current page
	PerPage     int `json:"per_page"`     // Number of items per page
	CurrentPage int `json:"current_page"` // Current page number (1-indexed)
}

// PaginatorResponse is the response format for pagination metadata.
type PaginatorResponse struct {
	Total       int  `json:"total"`
	Count       int  `json:"count"`
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}
