package pagination

// Page describes one slice of a paginated listing.
type Page struct {
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Clamp resolves the requested page number against the total item count.
// Requests below the first page or past the last page land on the nearest
// valid page. An empty listing still has one (empty) page.
func Clamp(requested, size, totalItems int) Page {
	if size < 1 {
		size = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}
