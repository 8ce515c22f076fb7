package apimodels

// Response is the envelope returned by every API operation. Handlers never
// leak raw errors across this boundary.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func NewError(message string) Response {
	return Response{
		Success: false,
		Error:   message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

type Pagination struct {
	Page     int `json:"page"`     // 1-indexed page
	PageSize int `json:"pageSize"` // rows per page
}

func (r Pagination) GetPage() (page, pageSize int) {
	page = 1
	pageSize = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.PageSize > 0 {
		pageSize = r.PageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// PageMeta describes a page of a filtered result set. Counts reflect the
// tenant-filtered set, not the raw upstream totals.
type PageMeta struct {
	PageNumber      int  `json:"pageNumber"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func NewPageMeta(page, pageSize, totalCount int) PageMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return PageMeta{
		PageNumber:      page,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1 && totalCount > 0,
	}
}
