package character

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS characters (
	id         TEXT PRIMARY KEY,
	player_id  TEXT NOT NULL,
	name       TEXT NOT NULL,
	race_id    TEXT NOT NULL,
	class_id   TEXT NOT NULL,
	level      INTEGER NOT NULL,
	data       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_characters_player ON characters (player_id, created_at DESC);
`

// SQLiteRepository persists finalized characters in SQLite. Indexed
// columns carry the queryable fields; the full record is stored as a
// JSON document in the data column.
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the character database at path and
// ensures the schema exists.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open character db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to ping character db")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to apply character schema")
	}
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database handle.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Create stores a finalized character.
func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Character.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	const insert = `INSERT INTO characters (id, player_id, name, race_id, class_id, level, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, insert,
		input.Character.ID,
		input.Character.PlayerID,
		input.Character.Name,
		input.Character.RaceID,
		input.Character.ClassID,
		input.Character.Level,
		string(data),
		input.Character.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
		}
		return nil, errors.Wrapf(err, "failed to insert character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

// Get retrieves a character by ID.
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM characters WHERE id = ?`, input.ID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var ch entities.Character
	if err := json.Unmarshal([]byte(data), &ch); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	return &GetOutput{Character: &ch}, nil
}

// ListByPlayerID lists a player's characters, newest first.
func (r *SQLiteRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM characters WHERE player_id = ? ORDER BY created_at DESC, id`, input.PlayerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	var characters []*entities.Character
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrapf(err, "failed to scan character row")
		}
		var ch entities.Character
		if err := json.Unmarshal([]byte(data), &ch); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal character")
		}
		characters = append(characters, &ch)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate characters")
	}

	return &ListByPlayerIDOutput{Characters: characters}, nil
}

// Delete removes a character by ID.
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read delete result")
	}
	if affected == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
