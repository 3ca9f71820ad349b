package sqlite_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"coop_slots/internal/repository"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const (
	table    = "kv_store"
	colKey   = "kv_key"
	colValue = "kv_value"
	colTime  = "updated_at"
)

const schema = `CREATE TABLE IF NOT EXISTS ` + table + ` (
	` + colKey + ` TEXT PRIMARY KEY,
	` + colValue + ` BLOB NOT NULL,
	` + colTime + ` INTEGER NOT NULL
)`

// Repo - хранилище ключ-значение в файле SQLite
type Repo struct {
	db *sql.DB
}

// Open открывает базу по пути и создает таблицу, если ее нет
func Open(path string) (*Repo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Repo{db: db}, nil
}

func (r *Repo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Get - получить значение по ключу. Возвращает repository.ErrNotFound, если записи нет
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	query := sq.Select(colValue).
		From(table).
		Where(sq.Eq{colKey: key})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set - записать значение. Существующая запись перезаписывается
func (r *Repo) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	query := sq.Insert(table).
		Columns(colKey, colValue, colTime).
		Values(key, value, time.Now().UTC().UnixMilli()).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " +
			colValue + " = excluded." + colValue + ", " +
			colTime + " = excluded." + colTime)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// Delete - удалить запись по ключу
func (r *Repo) Delete(ctx context.Context, key string) error {
	query := sq.Delete(table).
		Where(sq.Eq{colKey: key})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}
