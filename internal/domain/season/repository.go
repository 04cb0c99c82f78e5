package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	// List returns seasons ordered by period descending.
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, id int64) (Season, bool, error)
	Create(ctx context.Context, item Season) (Season, error)
	Update(ctx context.Context, item Season) (bool, error)
	// Delete removes the season and every match played in it.
	Delete(ctx context.Context, id int64) (bool, error)
}
