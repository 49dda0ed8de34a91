package sqlstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"employee-tracker/internal/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Store owns the pooled connection shared by every repository.
type Store struct {
	DB      *sqlx.DB
	Dialect Dialect

	closeOnce sync.Once
	closeErr  error
}

// Open connects and pings. maxOpen bounds the pool; this tool never has more
// than one query in flight.
func Open(ctx context.Context, d Dialect, dsn string, maxOpen int) (*Store, error) {
	db, err := sqlx.Open(d.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Name, err)
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
		db.SetMaxIdleConns(maxOpen)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Name, err)
	}
	return &Store{DB: db, Dialect: d}, nil
}

// Close is safe to call more than once.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.DB.Close()
	})
	return s.closeErr
}

func (s *Store) Departments() *DepartmentRepo {
	return NewDepartmentRepo(s.DB)
}

func (s *Store) Roles() *RoleRepo {
	return NewRoleRepo(s.DB)
}

func (s *Store) Employees() *EmployeeRepo {
	return NewEmployeeRepo(s.DB)
}

var (
	_ domain.DepartmentRepo = (*DepartmentRepo)(nil)
	_ domain.RoleRepo       = (*RoleRepo)(nil)
	_ domain.EmployeeRepo   = (*EmployeeRepo)(nil)
)
