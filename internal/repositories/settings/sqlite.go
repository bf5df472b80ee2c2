package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS rule_selections (
	category  TEXT NOT NULL PRIMARY KEY,
	module_id TEXT NOT NULL
)`

type sqliteRepo struct {
	db *sql.DB
}

// NewSQLite creates a settings repository on an open SQLite handle,
// creating its table when needed
func NewSQLite(db *sql.DB) (Repository, error) {
	if db == nil {
		return nil, dnderr.InvalidArgument("sqlite handle is required")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("create rule_selections table: %w", err)
	}
	return &sqliteRepo{db: db}, nil
}

func (r *sqliteRepo) SelectedModuleID(ctx context.Context, category rules.Category) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT module_id FROM rule_selections WHERE category = ?`, string(category),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get %s selection: %w", category, err)
	}
	return id, nil
}

func (r *sqliteRepo) SetSelected(ctx context.Context, category rules.Category, moduleID string) error {
	if moduleID == "" {
		return dnderr.InvalidArgument("module id is required")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rule_selections (category, module_id) VALUES (?, ?)
		 ON CONFLICT (category) DO UPDATE SET module_id = excluded.module_id`,
		string(category), moduleID,
	)
	if err != nil {
		return fmt.Errorf("save %s selection: %w", category, err)
	}
	return nil
}

func (r *sqliteRepo) ClearSelected(ctx context.Context, category rules.Category) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rule_selections WHERE category = ?`, string(category)); err != nil {
		return fmt.Errorf("clear %s selection: %w", category, err)
	}
	return nil
}

func (r *sqliteRepo) Selections(ctx context.Context) (map[rules.Category]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, module_id FROM rule_selections`)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer rows.Close()

	out := make(map[rules.Category]string)
	for rows.Next() {
		var category, id string
		if err := rows.Scan(&category, &id); err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		out[rules.Category(category)] = id
	}
	return out, rows.Err()
}
