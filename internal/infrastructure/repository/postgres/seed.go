package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/memory"
)

var seededTables = []string{
	"genres",
	"age_categories",
	"seasons",
	"competitions",
	"opposing_teams",
	"players",
	"matches",
	"honors",
}

// BootstrapSeed copies the demo data set into an empty database, keeping the
// ids assigned by the memory seed.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, now time.Time) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM genres`); err != nil {
		return errors.Wrap(err, "count genres for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	store := memory.NewStore()
	memory.Seed(store, now)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := seedCategories(ctx, tx, memory.NewCategoryRepository(store)); err != nil {
		return err
	}
	if err := seedCatalog(ctx, tx, store); err != nil {
		return err
	}
	if err := seedMatches(ctx, tx, memory.NewMatchRepository(store)); err != nil {
		return err
	}
	if err := seedHonors(ctx, tx, memory.NewHonorsRepository(store)); err != nil {
		return err
	}

	for _, table := range seededTables {
		if _, err := tx.ExecContext(ctx, `SELECT setval(pg_get_serial_sequence('`+table+`', 'id'), COALESCE((SELECT MAX(id) FROM `+table+`), 1))`); err != nil {
			return errors.Wrapf(err, "reset %s id sequence", table)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit seed tx")
	}
	return nil
}

func namedExec(ctx context.Context, tx *sqlx.Tx, query string, arg map[string]any) error {
	sqlQuery, args, err := sqlx.Named(query, arg)
	if err != nil {
		return errors.Wrap(err, "bind seed query")
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...)
	return err
}

func seedCategories(ctx context.Context, tx *sqlx.Tx, repo *memory.CategoryRepository) error {
	genres, err := repo.ListGenres(ctx)
	if err != nil {
		return errors.Wrap(err, "list seed genres")
	}
	for _, g := range genres {
		if err := namedExec(ctx, tx, `
INSERT INTO genres (id, code) VALUES (:id, :code)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":   g.ID,
			"code": string(g.Code),
		}); err != nil {
			return errors.Wrapf(err, "seed genre %s", g.Code)
		}
	}

	ages, err := repo.ListAgeCategories(ctx)
	if err != nil {
		return errors.Wrap(err, "list seed age categories")
	}
	for _, a := range ages {
		if err := namedExec(ctx, tx, `
INSERT INTO age_categories (id, name, age_min, age_max) VALUES (:id, :name, :age_min, :age_max)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":      a.ID,
			"name":    a.Name,
			"age_min": nullInt32(a.AgeMin),
			"age_max": nullInt32(a.AgeMax),
		}); err != nil {
			return errors.Wrapf(err, "seed age category %s", a.Name)
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, tx *sqlx.Tx, store *memory.Store) error {
	seasons, err := memory.NewSeasonRepository(store).List(ctx)
	if err != nil {
		return errors.Wrap(err, "list seed seasons")
	}
	for _, s := range seasons {
		if err := namedExec(ctx, tx, `
INSERT INTO seasons (id, period) VALUES (:id, :period)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":     s.ID,
			"period": s.Period,
		}); err != nil {
			return errors.Wrapf(err, "seed season %s", s.Period)
		}
	}

	competitions, err := memory.NewCompetitionRepository(store).List(ctx, competition.Filter{})
	if err != nil {
		return errors.Wrap(err, "list seed competitions")
	}
	for _, c := range competitions {
		if err := namedExec(ctx, tx, `
INSERT INTO competitions (id, name, date, venue, age_category_id, genre_id)
VALUES (:id, :name, :date, :venue, :age_category_id, :genre_id)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              c.ID,
			"name":            c.Name,
			"date":            c.Date,
			"venue":           c.Venue,
			"age_category_id": nullInt64(c.AgeCategoryID),
			"genre_id":        nullInt64(c.GenreID),
		}); err != nil {
			return errors.Wrapf(err, "seed competition %s", c.Name)
		}
	}

	teams, err := memory.NewTeamRepository(store).List(ctx, team.Filter{})
	if err != nil {
		return errors.Wrap(err, "list seed teams")
	}
	for _, t := range teams {
		if err := namedExec(ctx, tx, `
INSERT INTO opposing_teams (id, name, genre_id, age_category_id)
VALUES (:id, :name, :genre_id, :age_category_id)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              t.ID,
			"name":            t.Name,
			"genre_id":        nullInt64(t.GenreID),
			"age_category_id": nullInt64(t.AgeCategoryID),
		}); err != nil {
			return errors.Wrapf(err, "seed team %s", t.Name)
		}
	}

	players, err := memory.NewPlayerRepository(store).List(ctx, player.Filter{})
	if err != nil {
		return errors.Wrap(err, "list seed players")
	}
	for _, p := range players {
		if err := namedExec(ctx, tx, `
INSERT INTO players (id, surname, given_name, birth_date, genre_id, age_category_id)
VALUES (:id, :surname, :given_name, :birth_date, :genre_id, :age_category_id)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              p.ID,
			"surname":         p.Surname,
			"given_name":      p.GivenName,
			"birth_date":      p.BirthDate,
			"genre_id":        p.GenreID,
			"age_category_id": nullInt64(p.AgeCategoryID),
		}); err != nil {
			return errors.Wrapf(err, "seed player %s", p.FullName())
		}
	}
	return nil
}

func seedMatches(ctx context.Context, tx *sqlx.Tx, repo *memory.MatchRepository) error {
	matches, err := repo.List(ctx, match.Filter{Ascending: true}, 0, 0)
	if err != nil {
		return errors.Wrap(err, "list seed matches")
	}
	for _, m := range matches {
		row := newMatchInsertModel(m)
		if err := namedExec(ctx, tx, `
INSERT INTO matches (
    id, played_at, venue, competition_id, season_id, sets_club, sets_opponent,
    set1_club, set1_opponent, set2_club, set2_opponent, set3_club, set3_opponent,
    set4_club, set4_opponent, set5_club, set5_opponent
) VALUES (
    :id, :played_at, :venue, :competition_id, :season_id, :sets_club, :sets_opponent,
    :set1_club, :set1_opponent, :set2_club, :set2_opponent, :set3_club, :set3_opponent,
    :set4_club, :set4_opponent, :set5_club, :set5_opponent
)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":             m.ID,
			"played_at":      row.PlayedAt,
			"venue":          row.Venue,
			"competition_id": row.CompetitionID,
			"season_id":      row.SeasonID,
			"sets_club":      row.SetsClub,
			"sets_opponent":  row.SetsOpponent,
			"set1_club":      row.Set1Club,
			"set1_opponent":  row.Set1Opponent,
			"set2_club":      row.Set2Club,
			"set2_opponent":  row.Set2Opponent,
			"set3_club":      row.Set3Club,
			"set3_opponent":  row.Set3Opponent,
			"set4_club":      row.Set4Club,
			"set4_opponent":  row.Set4Opponent,
			"set5_club":      row.Set5Club,
			"set5_opponent":  row.Set5Opponent,
		}); err != nil {
			return errors.Wrapf(err, "seed match %d", m.ID)
		}
		if err := insertMatchLinks(ctx, tx, m.ID, m.OpposingTeamIDs); err != nil {
			return errors.Wrapf(err, "seed match %d links", m.ID)
		}
	}
	return nil
}

func seedHonors(ctx context.Context, tx *sqlx.Tx, repo *memory.HonorsRepository) error {
	records, err := repo.List(ctx, honors.Filter{}, 0, 0)
	if err != nil {
		return errors.Wrap(err, "list seed honors")
	}
	for _, h := range records {
		if err := namedExec(ctx, tx, `
INSERT INTO honors (id, title, competition, year, genre_id)
VALUES (:id, :title, :competition, :year, :genre_id)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":          h.ID,
			"title":       h.Title,
			"competition": h.Competition,
			"year":        h.Year,
			"genre_id":    h.GenreID,
		}); err != nil {
			return errors.Wrapf(err, "seed honors %s", h.Title)
		}
	}
	return nil
}
