package category

import "context"

// Repository describes category persistence needs from use cases.
type Repository interface {
	ListGenres(ctx context.Context) ([]Genre, error)
	GetGenreByID(ctx context.Context, id int64) (Genre, bool, error)
	GetGenreByCode(ctx context.Context, code GenreCode) (Genre, bool, error)
	CreateGenre(ctx context.Context, genre Genre) (Genre, error)
	// DeleteGenre fails with ErrGenreInUse while players or honors reference the genre.
	DeleteGenre(ctx context.Context, id int64) (bool, error)

	ListAgeCategories(ctx context.Context) ([]AgeCategory, error)
	GetAgeCategoryByID(ctx context.Context, id int64) (AgeCategory, bool, error)
	CreateAgeCategory(ctx context.Context, item AgeCategory) (AgeCategory, error)
	UpdateAgeCategory(ctx context.Context, item AgeCategory) (bool, error)
	// DeleteAgeCategory clears the optional age category link on competitions, teams and players.
	DeleteAgeCategory(ctx context.Context, id int64) (bool, error)
}
