package bookmarks

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"hygrometer/internal/domain"
	"hygrometer/internal/eventbus"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	key          TEXT NOT NULL UNIQUE,
	id           TEXT NOT NULL DEFAULT '',
	name         TEXT NOT NULL,
	address      TEXT NOT NULL DEFAULT '',
	road_address TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT '',
	latitude     REAL NOT NULL,
	longitude    REAL NOT NULL,
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore keeps bookmarks in a SQLite database.
// The ordered list is cached and reloaded after every mutation.
type SQLiteStore struct {
	conn *sql.DB
	bus  eventbus.EventBus

	mu    sync.RWMutex
	cache []domain.Region
}

// OpenSQLite opens or creates the bookmark database at path. bus may be nil.
func OpenSQLite(ctx context.Context, path string, bus eventbus.EventBus) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// single writer
	conn.SetMaxOpenConns(1)

	if _, err := conn.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &SQLiteStore{conn: conn, bus: bus}
	if err := s.reload(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) Bookmarks() []domain.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Region, len(s.cache))
	copy(out, s.cache)
	return out
}

func (s *SQLiteStore) Add(ctx context.Context, region domain.Region) error {
	res, err := s.conn.ExecContext(ctx, `
		INSERT OR IGNORE INTO bookmarks (key, id, name, address, road_address, category, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		region.Key(), region.ID, region.Name, region.Address, region.RoadAddress, region.Category,
		region.Coordinate.Latitude, region.Coordinate.Longitude)
	if err != nil {
		return fmt.Errorf("insert bookmark: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert bookmark: %w", err)
	}
	if n == 0 {
		return nil
	}

	if err := s.reload(ctx); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.BookmarkAddedEvent{Region: region})
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM bookmarks WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := s.reload(ctx); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.BookmarkRemovedEvent{Key: key})
	}
	return nil
}

func (s *SQLiteStore) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.cache {
		if r.Key() == key {
			return true
		}
	}
	return false
}

func (s *SQLiteStore) reload(ctx context.Context) error {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, name, address, road_address, category, latitude, longitude
		FROM bookmarks ORDER BY seq`)
	if err != nil {
		return fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	var regions []domain.Region
	for rows.Next() {
		var r domain.Region
		if err := rows.Scan(&r.ID, &r.Name, &r.Address, &r.RoadAddress, &r.Category,
			&r.Coordinate.Latitude, &r.Coordinate.Longitude); err != nil {
			return fmt.Errorf("scan bookmark: %w", err)
		}
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("query bookmarks: %w", err)
	}

	s.mu.Lock()
	s.cache = regions
	s.mu.Unlock()
	return nil
}
