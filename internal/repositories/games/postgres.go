package games

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"github.com/lib/pq"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/clock"
)

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS saved_games (
			id         TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			saved_at   TIMESTAMPTZ NOT NULL
		)`

	upsertGameSQL = `
		INSERT INTO saved_games (id, payload, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET payload = EXCLUDED.payload,
		    saved_at = EXCLUDED.saved_at`

	selectGameSQL  = `SELECT payload FROM saved_games WHERE id = $1`
	selectGamesSQL = `SELECT payload FROM saved_games ORDER BY saved_at DESC, id ASC`
	deleteGameSQL  = `DELETE FROM saved_games WHERE id = $1`

	pgUndefinedTable = "42P01"
)

type postgresRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// PostgresConfig contains configuration for the Postgres game repository
type PostgresConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the PostgresConfig
func (cfg *PostgresConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// OpenPostgres opens and pings a database from a lib/pq connection string
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.InvalidArgument("database URL cannot be empty")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open database")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach database")
	}
	return db, nil
}

// NewPostgres creates a Postgres-backed game repository storing each game
// as a JSONB payload in saved_games.
func NewPostgres(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &postgresRepository{db: cfg.DB, clock: c}, nil
}

// Migrate creates the saved_games table when it is missing
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return errors.Wrapf(err, "failed to create saved_games")
	}
	return nil
}

func (r *postgresRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data := cloneData(input.Data)
	data.SavedAt = r.clock.Now()

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game data")
	}

	if _, err := r.db.ExecContext(ctx, upsertGameSQL, data.ID, payload, data.SavedAt); err != nil {
		return nil, wrapPQ(err, "failed to save game")
	}

	return &SaveOutput{Data: data}, nil
}

func (r *postgresRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var payload []byte
	err := r.db.QueryRowContext(ctx, selectGameSQL, input.ID).Scan(&payload)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf(errNotFound, input.ID)
		}
		return nil, wrapPQ(err, "failed to get game")
	}

	var data GameData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal game data")
	}
	return &GetOutput{Data: &data}, nil
}

func (r *postgresRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, selectGamesSQL)
	if err != nil {
		return nil, wrapPQ(err, "failed to list games")
	}
	defer func() { _ = rows.Close() }()

	out := []*GameData{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.Wrapf(err, "failed to scan game")
		}

		var data GameData
		if err := json.Unmarshal(payload, &data); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal game data")
		}
		out = append(out, &data)
		if input.Limit > 0 && len(out) == input.Limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPQ(err, "failed to list games")
	}

	return &ListOutput{Games: out}, nil
}

func (r *postgresRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, deleteGameSQL, input.ID)
	if err != nil {
		return nil, wrapPQ(err, "failed to delete game")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete game")
	}
	if n == 0 {
		return nil, errors.NotFoundf(errNotFound, input.ID)
	}
	return &DeleteOutput{}, nil
}

// wrapPQ maps driver errors onto error codes. A missing table means the
// database was never migrated.
func wrapPQ(err error, message string) error {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) && pqErr.Code == pgUndefinedTable {
		return errors.WrapWithCode(err, errors.CodeFailedPrecondition, message+": saved_games table missing").
			WithMeta("pq_code", string(pqErr.Code))
	}
	return errors.Wrap(err, message)
}
