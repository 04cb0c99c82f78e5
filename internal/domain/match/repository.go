package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	// List orders by date, descending unless filter.Ascending is set. A
	// non-positive limit returns every matching row.
	List(ctx context.Context, filter Filter, limit, offset int) ([]Match, error)
	Count(ctx context.Context, filter Filter) (int, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	// Create stores the match and its opposing team links in one transaction.
	Create(ctx context.Context, item Match) (Match, error)
	// Update replaces the match row and its links in one transaction.
	Update(ctx context.Context, item Match) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
