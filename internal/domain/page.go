package domain

// PageRequest is a zero-based page of a listing.
type PageRequest struct {
	PageNumber int
	PageSize   int
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.PageNumber * p.PageSize
}

// Limit returns the number of rows to return.
func (p PageRequest) Limit() int {
	return p.PageSize
}

// Normalize fills in defaults and clamps the page size to maxSize.
// A non-positive page size becomes defaultSize and a negative page number
// becomes zero. maxSize <= 0 disables the clamp.
func (p PageRequest) Normalize(defaultSize, maxSize int) PageRequest {
	if p.PageNumber < 0 {
		p.PageNumber = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

// Page is one page of results together with the parameters that produced it.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
}
