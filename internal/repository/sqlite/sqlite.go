package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// DB is the SQLite-backed closet store. It implements domain.Database.
type DB struct {
	SqlDB *sql.DB
}

// pragmas are applied by the driver to every connection it opens.
var pragmas = []string{
	"foreign_keys(1)",
	"journal_mode(WAL)",
	"busy_timeout(5000)",
}

// dsn turns a file path into a modernc DSN carrying the connection pragmas.
func dsn(path string) string {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_pragma", p)
	}
	return "file:" + path + "?" + q.Encode()
}

// New opens the closet database at dbPath, creating the file if needed.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Writers are serialized; session membership edits rely on it for position ordering.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	_, err := migrations.Run(ctx, d.SqlDB)
	return err
}

// PendingMigrations lists the migration files not applied yet.
func (d *DB) PendingMigrations(ctx context.Context) ([]string, error) {
	pending, err := migrations.Pending(ctx, d.SqlDB)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(pending))
	for i, m := range pending {
		names[i] = m.Name
	}
	return names, nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.SqlDB.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.SqlDB.Close()
}

func (d *DB) Users() domain.UserRepository               { return NewUserRepository(d) }
func (d *DB) Garments() domain.GarmentRepository         { return NewGarmentRepository(d) }
func (d *DB) WashSessions() domain.WashSessionRepository { return NewWashSessionRepository(d) }
func (d *DB) Appliances() domain.ApplianceRepository     { return NewApplianceRepository(d) }
