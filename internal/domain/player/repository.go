package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// List returns players ordered by surname then given name.
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) (bool, error)
	UpdateAgeCategory(ctx context.Context, id int64, ageCategoryID *int64) error
	Delete(ctx context.Context, id int64) (bool, error)
}
