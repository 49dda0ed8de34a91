package sqlstore

import (
	"embed"
	"fmt"
	"os"

	"employee-tracker/config"
)

//go:embed sql/*.sql
var resources embed.FS

// Dialect ties a configured driver to its database/sql driver name and the
// embedded schema and seed files written for it.
type Dialect struct {
	Name       string
	DriverName string
	schemaFile string
	seedFile   string
}

var (
	SQLite = Dialect{
		Name:       config.DriverSQLite,
		DriverName: "sqlite3",
		schemaFile: "sql/schema.sqlite.sql",
		seedFile:   "sql/seeds.sqlite.sql",
	}
	Postgres = Dialect{
		Name:       config.DriverPostgres,
		DriverName: "pgx",
		schemaFile: "sql/schema.postgres.sql",
		seedFile:   "sql/seeds.postgres.sql",
	}
)

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case SQLite.Name:
		return SQLite, nil
	case Postgres.Name:
		return Postgres, nil
	}
	return Dialect{}, config.ErrUnknownDriver{Driver: driver}
}

// readResource returns the override file when one is given, otherwise the
// embedded default.
func readResource(embedded, override string) (string, error) {
	if override != "" {
		data, err := os.ReadFile(override)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", override, err)
		}
		return string(data), nil
	}
	data, err := resources.ReadFile(embedded)
	if err != nil {
		return "", fmt.Errorf("read embedded %s: %w", embedded, err)
	}
	return string(data), nil
}
