package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/matchtracker/internal/errors"
	"github.com/vytor/matchtracker/internal/logger"
	"github.com/vytor/matchtracker/internal/models"
	"github.com/vytor/matchtracker/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var _ repository.MatchRepository = (*matchRepository)(nil)

type matchRepository struct {
	db *sql.DB
}

// NewMatchRepository creates a new MatchRepository implementation
func NewMatchRepository(db *sql.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Insert(ctx context.Context, rec models.MatchRecord) (int64, error) {
	log := logger.WithPrefix(logger.FromContext(ctx), "match_repo")
	log.Debug().
		Str("player", rec.PlayerFaction.String()).
		Str("opponent", rec.OpponentFaction.String()).
		Str("result", rec.Result.String()).
		Str("day", rec.Day.String()).
		Msg("inserting match")

	if err := rec.Validate(); err != nil {
		log.Warn().Err(err).Msg("rejected match")
		return 0, err
	}

	query, args, err := sqlBuilder.Insert("matches").
		Columns("player_class", "opponent_class", "result", "match_date").
		Values(string(rec.PlayerFaction), string(rec.OpponentFaction), string(rec.Result), string(rec.Day)).
		ToSql()
	if err != nil {
		log.Error().Err(err).Msg("failed to build query")
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert match")
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error().Err(err).Msg("failed to get match id")
		return 0, err
	}
	log.Debug().Int64("id", id).Msg("match inserted")
	return id, nil
}

func (r *matchRepository) DeleteDay(ctx context.Context, day models.Day) (int64, error) {
	log := logger.WithPrefix(logger.FromContext(ctx), "match_repo")
	log.Debug().Str("day", day.String()).Msg("deleting matches for day")

	if !day.Valid() {
		log.Warn().Str("day", day.String()).Msg("rejected day deletion")
		return 0, errors.NewInvalidDayError(day.String())
	}

	var removed int64
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		query, args, err := sqlBuilder.Delete("matches").
			Where(squirrel.Eq{"match_date": string(day)}).
			ToSql()
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Error().Err(err).Msg("failed to delete matches")
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	log.Debug().Int64("removed", removed).Msg("day deleted")
	return removed, nil
}

func (r *matchRepository) Query(ctx context.Context, filter models.MatchFilter) ([]models.MatchRecord, error) {
	log := logger.WithPrefix(logger.FromContext(ctx), "match_repo")
	log.Debug().
		Str("player", filter.Player.String()).
		Str("opponent", filter.Opponent.String()).
		Str("day", filter.Day.String()).
		Msg("querying matches")

	q, err := applyFilter(
		sqlBuilder.Select("id", "player_class", "opponent_class", "result", "match_date").From("matches"),
		filter,
	)
	if err != nil {
		return nil, err
	}

	query, args, err := q.OrderBy("id ASC").ToSql()
	if err != nil {
		log.Error().Err(err).Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to query matches")
		return nil, err
	}
	defer rows.Close()

	var records []models.MatchRecord
	for rows.Next() {
		var m models.MatchRecord
		if err := rows.Scan(&m.ID, &m.PlayerFaction, &m.OpponentFaction, &m.Result, &m.Day); err != nil {
			log.Error().Err(err).Msg("failed to scan match row")
			return nil, err
		}
		records = append(records, m)
	}
	log.Debug().Int("count", len(records)).Msg("matches found")
	return records, rows.Err()
}

func (r *matchRepository) Count(ctx context.Context, filter models.MatchFilter) (int, error) {
	log := logger.WithPrefix(logger.FromContext(ctx), "match_repo")

	q, err := applyFilter(sqlBuilder.Select("COUNT(*)").From("matches"), filter)
	if err != nil {
		return 0, err
	}
	query, args, err := q.ToSql()
	if err != nil {
		log.Error().Err(err).Msg("failed to build query")
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Error().Err(err).Msg("failed to count matches")
		return 0, err
	}
	return count, nil
}

func (r *matchRepository) DistinctDays(ctx context.Context) ([]models.Day, error) {
	log := logger.WithPrefix(logger.FromContext(ctx), "match_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT match_date FROM matches ORDER BY match_date DESC`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list days")
		return nil, err
	}
	defer rows.Close()

	var days []models.Day
	for rows.Next() {
		var d models.Day
		if err := rows.Scan(&d); err != nil {
			log.Error().Err(err).Msg("failed to scan day")
			return nil, err
		}
		days = append(days, d)
	}
	log.Debug().Int("count", len(days)).Msg("distinct days found")
	return days, rows.Err()
}

// applyFilter adds a WHERE clause per concrete constraint. Concrete values
// outside the closed sets are rejected rather than matched against nothing.
func applyFilter(q squirrel.SelectBuilder, filter models.MatchFilter) (squirrel.SelectBuilder, error) {
	if f, ok := filter.Player.Faction(); ok {
		if !f.Valid() {
			return q, errors.NewInvalidFactionError(f.String())
		}
		q = q.Where(squirrel.Eq{"player_class": string(f)})
	}
	if f, ok := filter.Opponent.Faction(); ok {
		if !f.Valid() {
			return q, errors.NewInvalidFactionError(f.String())
		}
		q = q.Where(squirrel.Eq{"opponent_class": string(f)})
	}
	if d, ok := filter.Day.Day(); ok {
		if !d.Valid() {
			return q, errors.NewInvalidDayError(d.String())
		}
		q = q.Where(squirrel.Eq{"match_date": string(d)})
	}
	return q, nil
}
