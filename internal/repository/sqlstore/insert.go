package sqlstore

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// insertReturningID runs a named INSERT ... RETURNING id. SQLite reports
// constraint failures on the first step, so rows.Err is checked before Scan.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, arg any) (int64, error) {
	rows, err := sqlx.NamedQueryContext(ctx, db, query, arg)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, sql.ErrNoRows
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, err
	}
	return id, rows.Err()
}
