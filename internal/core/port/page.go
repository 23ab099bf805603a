package port

// PageReq selects one page of a listing. Page is 1-based.
type PageReq struct {
	Page int
	Size int
}

// Offset returns the number of items preceding the page.
func (r PageReq) Offset() int {
	if r.Page <= 1 {
		return 0
	}
	return (r.Page - 1) * r.Size
}

// Page is one page of a listing together with totals.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPage builds a page descriptor for items out of total.
func NewPage[T any](items []T, req PageReq, total int64) Page[T] {
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Page: req.Page, Size: req.Size, Total: total, TotalPages: pages}
}

// PageSizeConfig configures page size normalisation.
type PageSizeConfig struct {
	Default int
	Max     int
}

// Normalize applies defaults and limits to a page request.
func (c PageSizeConfig) Normalize(req PageReq) PageReq {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Size <= 0 {
		req.Size = c.Default
	}
	if c.Max > 0 && req.Size > c.Max {
		req.Size = c.Max
	}
	if req.Size <= 0 {
		req.Size = 1
	}
	return req
}
