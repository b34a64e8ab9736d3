// Package sqlite persists transit network snapshots in a local SQLite
// database (pure-Go driver, WAL mode). A snapshot is a loader.Network stored
// under a name; saving a name again replaces it atomically.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/katalvlaran/urbanpath/loader"
)

var (
	// ErrNetworkNotFound is returned when no snapshot is stored under a name.
	ErrNetworkNotFound = errors.New("store: network not found")

	// ErrEmptyName is returned for a blank snapshot name.
	ErrEmptyName = errors.New("store: network name is empty")
)

// schema contains the DDL executed on every open. IF NOT EXISTS keeps it idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS networks (
    name     TEXT PRIMARY KEY,
    directed INTEGER NOT NULL DEFAULT 0,
    saved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS stations (
    network TEXT    NOT NULL,
    seq     INTEGER NOT NULL,
    id      INTEGER NOT NULL,
    name    TEXT    NOT NULL,
    x       REAL    NOT NULL,
    y       REAL    NOT NULL,
    PRIMARY KEY (network, seq)
);

CREATE TABLE IF NOT EXISTS routes (
    network     TEXT    NOT NULL,
    seq         INTEGER NOT NULL,
    origin      INTEGER NOT NULL,
    destination INTEGER NOT NULL,
    weight      REAL    NOT NULL,
    PRIMARY KEY (network, seq)
);

CREATE TABLE IF NOT EXISTS closures (
    network     TEXT    NOT NULL,
    seq         INTEGER NOT NULL,
    kind        TEXT    NOT NULL,
    station     INTEGER NOT NULL DEFAULT 0,
    origin      INTEGER NOT NULL DEFAULT 0,
    destination INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (network, seq)
);

CREATE TABLE IF NOT EXISTS accidents (
    network     TEXT    NOT NULL,
    seq         INTEGER NOT NULL,
    origin      INTEGER NOT NULL,
    destination INTEGER NOT NULL,
    percent     REAL    NOT NULL,
    PRIMARY KEY (network, seq)
);
`

// childTables hold per-network rows keyed by (network, seq).
var childTables = []string{"stations", "routes", "closures", "accidents"}

// Store is a SQLite-backed snapshot store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path, enables WAL mode and a busy
// timeout, and creates the schema if needed.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// SQLite has a single writer; one connection keeps PRAGMAs consistent.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// SaveNetwork stores n under name, replacing any previous snapshot in one transaction.
func (s *Store) SaveNetwork(ctx context.Context, name string, n *loader.Network) error {
	if err := checkName(name); err != nil {
		return err
	}
	if n == nil {
		return loader.ErrNilNetwork
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx for %q: %w", name, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := deleteRows(ctx, tx, name); err != nil {
		return err
	}

	const upsert = `
		INSERT INTO networks (name, directed, saved_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET directed = excluded.directed, saved_at = CURRENT_TIMESTAMP`
	if _, err := tx.ExecContext(ctx, upsert, name, n.Directed); err != nil {
		return fmt.Errorf("store: upsert network %q: %w", name, err)
	}

	err = insertAll(ctx, tx, "INSERT INTO stations (network, seq, id, name, x, y) VALUES (?, ?, ?, ?, ?, ?)",
		len(n.Stations), func(i int) []any {
			st := n.Stations[i]
			return []any{name, i, st.ID, st.Name, st.X, st.Y}
		})
	if err != nil {
		return err
	}
	err = insertAll(ctx, tx, "INSERT INTO routes (network, seq, origin, destination, weight) VALUES (?, ?, ?, ?, ?)",
		len(n.Routes), func(i int) []any {
			r := n.Routes[i]
			return []any{name, i, r.From, r.To, r.Weight}
		})
	if err != nil {
		return err
	}
	err = insertAll(ctx, tx, "INSERT INTO closures (network, seq, kind, station, origin, destination) VALUES (?, ?, ?, ?, ?, ?)",
		len(n.Closures), func(i int) []any {
			c := n.Closures[i]
			return []any{name, i, string(c.Kind), c.Station, c.From, c.To}
		})
	if err != nil {
		return err
	}
	err = insertAll(ctx, tx, "INSERT INTO accidents (network, seq, origin, destination, percent) VALUES (?, ?, ?, ?, ?)",
		len(n.Accidents), func(i int) []any {
			a := n.Accidents[i]
			return []any{name, i, a.From, a.To, a.Percent}
		})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit %q: %w", name, err)
	}
	return nil
}

// insertAll runs one prepared insert per row.
func insertAll(ctx context.Context, tx *sql.Tx, q string, rows int, args func(i int) []any) error {
	if rows == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return fmt.Errorf("store: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < rows; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("store: insert row %d: %w", i, err)
		}
	}
	return nil
}

func deleteRows(ctx context.Context, tx *sql.Tx, name string) error {
	for _, table := range childTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE network = ?", name); err != nil {
			return fmt.Errorf("store: clear %s of %q: %w", table, name, err)
		}
	}
	return nil
}

// LoadNetwork returns the snapshot stored under name, records in saved order.
func (s *Store) LoadNetwork(ctx context.Context, name string) (*loader.Network, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	var n loader.Network
	err := s.db.QueryRowContext(ctx, "SELECT directed FROM networks WHERE name = ?", name).Scan(&n.Directed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNetworkNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load network %q: %w", name, err)
	}

	err = queryRows(ctx, s.db, "SELECT id, name, x, y FROM stations WHERE network = ? ORDER BY seq", name,
		func(rows *sql.Rows) error {
			var st loader.Station
			if err := rows.Scan(&st.ID, &st.Name, &st.X, &st.Y); err != nil {
				return err
			}
			n.Stations = append(n.Stations, st)
			return nil
		})
	if err != nil {
		return nil, err
	}
	err = queryRows(ctx, s.db, "SELECT origin, destination, weight FROM routes WHERE network = ? ORDER BY seq", name,
		func(rows *sql.Rows) error {
			var r loader.Route
			if err := rows.Scan(&r.From, &r.To, &r.Weight); err != nil {
				return err
			}
			n.Routes = append(n.Routes, r)
			return nil
		})
	if err != nil {
		return nil, err
	}
	err = queryRows(ctx, s.db, "SELECT kind, station, origin, destination FROM closures WHERE network = ? ORDER BY seq", name,
		func(rows *sql.Rows) error {
			var (
				c    loader.Closure
				kind string
			)
			if err := rows.Scan(&kind, &c.Station, &c.From, &c.To); err != nil {
				return err
			}
			c.Kind = loader.ClosureKind(kind)
			n.Closures = append(n.Closures, c)
			return nil
		})
	if err != nil {
		return nil, err
	}
	err = queryRows(ctx, s.db, "SELECT origin, destination, percent FROM accidents WHERE network = ? ORDER BY seq", name,
		func(rows *sql.Rows) error {
			var a loader.Accident
			if err := rows.Scan(&a.From, &a.To, &a.Percent); err != nil {
				return err
			}
			n.Accidents = append(n.Accidents, a)
			return nil
		})
	if err != nil {
		return nil, err
	}

	return &n, nil
}

func queryRows(ctx context.Context, db *sql.DB, q, name string, scan func(*sql.Rows) error) error {
	rows, err := db.QueryContext(ctx, q, name)
	if err != nil {
		return fmt.Errorf("store: query %q: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("store: scan %q: %w", name, err)
		}
	}
	return rows.Err()
}

// ListNetworks returns the stored snapshot names in ascending order.
func (s *Store) ListNetworks(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM networks ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("store: list networks: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: scan network name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteNetwork removes the snapshot stored under name.
func (s *Store) DeleteNetwork(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx for delete %q: %w", name, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	res, err := tx.ExecContext(ctx, "DELETE FROM networks WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("store: delete network %q: %w", name, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("%w: %q", ErrNetworkNotFound, name)
	}
	if err := deleteRows(ctx, tx, name); err != nil {
		return err
	}

	return tx.Commit()
}
