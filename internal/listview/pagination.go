package listview

// PageInfo is the derived pagination state for one render
type PageInfo struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Offset     int `json:"-"`
}

// Paginator remembers the page the user navigated to, together with the
// filter signature it was set under. Whenever Compute sees a different
// signature the effective page drops back to 1, which is how "changing
// filters returns you to page 1" works without an explicit reset call.
type Paginator struct {
	pageSize  int
	page      int
	signature uint64
}

// NewPaginator creates a paginator; page sizes below 1 are raised to 1.
func NewPaginator(pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Paginator{pageSize: pageSize, page: 1}
}

// PageSize returns the configured page size
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// SetPage records a navigation to page under the given filter signature
func (p *Paginator) SetPage(page int, signature uint64) {
	if page < 1 {
		page = 1
	}
	p.page = page
	p.signature = signature
}

// Compute derives the effective page, total pages, and item offset. The
// result is always in range: totalItems = 0 still yields one (empty)
// page, and a stored page beyond the end is clamped, not an error.
func (p *Paginator) Compute(totalItems int, signature uint64) PageInfo {
	if totalItems < 0 {
		totalItems = 0
	}
	totalPages := (totalItems + p.pageSize - 1) / p.pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if signature != p.signature {
		p.page = 1
		p.signature = signature
	}

	page := p.page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	return PageInfo{
		Page:       page,
		TotalPages: totalPages,
		Offset:     (page - 1) * p.pageSize,
	}
}
