package views

// Paginator tracks a cursor and a page window over a flat list. The
// window is page-aligned: the visible page is always the one holding
// the cursor.
type Paginator struct {
	pageSize int
	page     int
	cursor   int
	total    int
}

// NewPaginator creates a paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal sets the item count, clamping the cursor into range
func (p *Paginator) SetTotal(total int) {
	p.total = total
	if p.cursor >= total {
		p.cursor = total - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.page = p.cursor / p.pageSize
}

// Cursor returns the absolute cursor index
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the cursor up one item
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.page = p.cursor / p.pageSize
	return true
}

// CursorDown moves the cursor down one item
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	p.page = p.cursor / p.pageSize
	return true
}

// VisibleRange returns the half-open index range of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.page * p.pageSize
	return start, min(start+p.pageSize, p.total)
}

// TotalPages returns the page count, at least 1
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.page + 1
}

// NextPage flips to the next page with the cursor on its first item
func (p *Paginator) NextPage() bool {
	if (p.page+1)*p.pageSize >= p.total {
		return false
	}
	p.page++
	p.cursor = p.page * p.pageSize
	return true
}

// PrevPage flips to the previous page with the cursor on its first item
func (p *Paginator) PrevPage() bool {
	if p.page == 0 {
		return false
	}
	p.page--
	p.cursor = p.page * p.pageSize
	return true
}

// Reset returns the paginator to an empty initial state
func (p *Paginator) Reset() {
	p.cursor = 0
	p.page = 0
	p.total = 0
}
