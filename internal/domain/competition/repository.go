package competition

import "context"

// Repository describes competition persistence needs from use cases.
type Repository interface {
	// List returns competitions ordered by date descending.
	List(ctx context.Context, filter Filter) ([]Competition, error)
	GetByID(ctx context.Context, id int64) (Competition, bool, error)
	Create(ctx context.Context, item Competition) (Competition, error)
	Update(ctx context.Context, item Competition) (bool, error)
	// Delete removes the competition and every match attached to it.
	Delete(ctx context.Context, id int64) (bool, error)
}
