package store

import (
	"context"
	"database/sql"
	"githubActivity/internal/model"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

// Keep is the number of history rows retained per username.
const Keep = 30

// Open opens the SQLite history database at path and creates its table.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := CreateTable(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenRedis connects to addr and pings it once.
func OpenRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func CreateTable(db *sql.DB) (sql.Result, error) {
	sqlstmt := `CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		type TEXT NOT NULL,
		repo TEXT NOT NULL,
		ref_type TEXT NOT NULL DEFAULT '',
		line TEXT NOT NULL,
		fetched_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS history_username ON history (username, id);`
	return db.Exec(sqlstmt)
}

type HistoryInterface interface {
	Save(username string, summaries []model.Summary, at time.Time) error
	Recent(username string, limit int) ([]model.HistoryEntry, error)
	All(limit int) ([]model.HistoryEntry, error)
}

// History records every line printed by a lookup.
type History struct {
	db *sql.DB
}

func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

// Save appends summaries in print order and trims the user's rows to Keep.
func (h *History) Save(username string, summaries []model.Summary, at time.Time) error {
	tx, err := h.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ts := at.UTC().Format(time.RFC3339Nano)
	for _, s := range summaries {
		_, err := tx.Exec(`
			INSERT INTO history
			(username, type, repo, ref_type, line, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			username, s.Type, s.Repo, s.RefType, s.Line, ts,
		)
		if err != nil {
			return err
		}
	}
	_, err = tx.Exec(`
		DELETE FROM history
		WHERE username = ? AND id NOT IN (
			SELECT id FROM history
			WHERE username = ?
			ORDER BY id DESC
			LIMIT ?
		)`, username, username, Keep)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Recent returns the user's newest entries first.
func (h *History) Recent(username string, limit int) ([]model.HistoryEntry, error) {
	rows, err := h.db.Query(`
		SELECT id, username, type, repo, ref_type, line, fetched_at
		FROM history WHERE username = ?
		ORDER BY id DESC LIMIT ?`, username, limit)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// All returns entries across users, newest first.
func (h *History) All(limit int) ([]model.HistoryEntry, error) {
	rows, err := h.db.Query(`
		SELECT id, username, type, repo, ref_type, line, fetched_at
		FROM history
		ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]model.HistoryEntry, error) {
	defer rows.Close()

	entries := []model.HistoryEntry{}
	for rows.Next() {
		var e model.HistoryEntry
		var fetchedAt string
		if err := rows.Scan(&e.ID, &e.Username, &e.Type, &e.Repo, &e.RefType, &e.Line, &fetchedAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, fetchedAt)
		if err != nil {
			return nil, err
		}
		e.FetchedAt = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
