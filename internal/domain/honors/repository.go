package honors

import "context"

// Repository describes honors persistence needs from use cases.
type Repository interface {
	// List returns records ordered by year descending. A non-positive limit
	// returns every matching row.
	List(ctx context.Context, filter Filter, limit, offset int) ([]Record, error)
	Count(ctx context.Context, filter Filter) (int, error)
	GetByID(ctx context.Context, id int64) (Record, bool, error)
	Create(ctx context.Context, item Record) (Record, error)
	Update(ctx context.Context, item Record) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
