package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/alkawthar/config"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the configured backend. The caller owns the returned DB.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*bun.DB, error) {
	switch cfg.Driver {
	case "", DriverSQLite:
		return OpenSQLite(ctx, cfg.Path)
	case DriverPostgres:
		return OpenPostgres(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// OpenSQLite opens a single-connection SQLite database with foreign keys
// enforced. Path ":memory:" gives a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// one writer, and a :memory: database lives only as long as its connection
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

func OpenPostgres(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db := bun.NewDB(sqldb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

type table struct {
	model       any
	foreignKeys []string
}

// tables is in dependency order.
var tables = []table{
	{model: (*Country)(nil)},
	{model: (*Gender)(nil)},
	{model: (*Class)(nil)},
	{model: (*PlaneType)(nil)},
	{model: (*Branch)(nil)},
	{model: (*Terminal)(nil)},
	{model: (*Airport)(nil), foreignKeys: []string{
		`("country_id") REFERENCES "countries" ("id")`,
	}},
	{model: (*Plane)(nil), foreignKeys: []string{
		`("plane_type_id") REFERENCES "plane_types" ("id")`,
	}},
	{model: (*User)(nil)},
	{model: (*Employee)(nil), foreignKeys: []string{
		`("branch_id") REFERENCES "branches" ("id")`,
	}},
	{model: (*Passenger)(nil), foreignKeys: []string{
		`("gender_id") REFERENCES "genders" ("id")`,
		`("nationality_country_id") REFERENCES "countries" ("id")`,
	}},
	{model: (*PlaneAvailableClass)(nil), foreignKeys: []string{
		`("plane_type_id") REFERENCES "plane_types" ("id")`,
		`("class_id") REFERENCES "classes" ("id")`,
	}},
	{model: (*AirportTerminal)(nil), foreignKeys: []string{
		`("airport_id") REFERENCES "airports" ("id")`,
		`("terminal_id") REFERENCES "terminals" ("id")`,
	}},
	{model: (*Flight)(nil), foreignKeys: []string{
		`("plane_id") REFERENCES "planes" ("id")`,
		`("branch_id") REFERENCES "branches" ("id")`,
		`("origin_airport_id") REFERENCES "airports" ("id")`,
		`("destination_airport_id") REFERENCES "airports" ("id")`,
	}},
	{model: (*Booking)(nil), foreignKeys: []string{
		`("user_id") REFERENCES "users" ("id")`,
		`("flight_id") REFERENCES "flights" ("id")`,
	}},
	{model: (*Ticket)(nil), foreignKeys: []string{
		`("passenger_id") REFERENCES "passengers" ("id")`,
		`("flight_id") REFERENCES "flights" ("id")`,
		`("booking_id") REFERENCES "bookings" ("id")`,
		`("class_id") REFERENCES "classes" ("id")`,
		`("terminal_id") REFERENCES "terminals" ("id")`,
	}},
	{model: (*CrewAssignment)(nil), foreignKeys: []string{
		`("employee_id") REFERENCES "employees" ("id")`,
		`("flight_id") REFERENCES "flights" ("id")`,
	}},
}

// CreateSchema creates every table that does not exist yet. Existing tables
// are left untouched.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, t := range tables {
		q := db.NewCreateTable().Model(t.model).IfNotExists()
		for _, fk := range t.foreignKeys {
			q = q.ForeignKey(fk)
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("create table %T: %w", t.model, err)
		}
	}
	logrus.WithField("tables", len(tables)).Debug("schema ready")
	return nil
}

// IsUniqueViolation reports whether err came from a UNIQUE or PRIMARY KEY
// constraint on either backend.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
