package team

import "context"

// Repository describes opposing team persistence needs from use cases.
type Repository interface {
	// List returns teams ordered by name.
	List(ctx context.Context, filter Filter) ([]OpposingTeam, error)
	GetByID(ctx context.Context, id int64) (OpposingTeam, bool, error)
	GetByIDs(ctx context.Context, ids []int64) ([]OpposingTeam, error)
	Create(ctx context.Context, item OpposingTeam) (OpposingTeam, error)
	Update(ctx context.Context, item OpposingTeam) (bool, error)
	// Delete removes the team and its match links.
	Delete(ctx context.Context, id int64) (bool, error)
}
