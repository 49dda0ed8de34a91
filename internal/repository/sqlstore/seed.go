package sqlstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
)

type SeedReport struct {
	Applied int
	Failed  int
}

// Seed runs the seed statements one at a time. A failing statement is logged
// and skipped; only an unreadable seed file is returned as an error.
func Seed(ctx context.Context, db sqlx.ExecerContext, d Dialect, override string) (SeedReport, error) {
	var report SeedReport

	data, err := readResource(d.seedFile, override)
	if err != nil {
		return report, fmt.Errorf("seeds: %w", err)
	}

	for i, stmt := range SplitStatements(data) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			report.Failed++
			slog.Warn("seed statement failed", "index", i, "error", err)
			continue
		}
		report.Applied++
	}
	slog.Info("database seeded", "applied", report.Applied, "failed", report.Failed)
	return report, nil
}

// SplitStatements splits on ';', dropping "--" comment lines and empty
// statements.
func SplitStatements(data string) []string {
	var b strings.Builder
	for _, line := range strings.Split(data, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var out []string
	for _, stmt := range strings.Split(b.String(), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
