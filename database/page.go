package database

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a page/limit window over a list query.
type Page struct {
	Page  int
	Limit int
}

// Normalized clamps the window to sane bounds, applying the defaults for
// missing or nonsense values.
func (p Page) Normalized() Page {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the window.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes the page count for a total row count.
func (p Page) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	pages := int(total) / p.Limit
	if int(total)%p.Limit != 0 {
		pages++
	}
	return pages
}
