package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ApplySchema executes the whole schema text in one multi-statement exec.
// Every statement is CREATE ... IF NOT EXISTS, so re-running is harmless.
func ApplySchema(ctx context.Context, db sqlx.ExecerContext, d Dialect, override string) error {
	schema, err := readResource(d.schemaFile, override)
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
