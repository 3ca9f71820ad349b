package pg_repo

import (
	"context"
	"errors"
	"time"

	"coop_slots/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table    = "kv_store"
	colKey   = "kv_key"
	colValue = "kv_value"
	colTime  = "updated_at"
)

const schema = `CREATE TABLE IF NOT EXISTS ` + table + ` (
	` + colKey + ` TEXT PRIMARY KEY,
	` + colValue + ` BYTEA NOT NULL,
	` + colTime + ` TIMESTAMPTZ NOT NULL
)`

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewKVRepository - хранилище ключ-значение в Postgres.
// Если в контексте есть транзакция trm, запросы выполняются в ней
func NewKVRepository(dbc *pgxpool.Pool) repository.KVRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// EnsureSchema создает таблицу kv_store, если ее нет
func EnsureSchema(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, schema)
	return err
}

// Get - получение значения по ключу
// Возвращает repository.ErrNotFound, если записи нет
func (r *repo) Get(ctx context.Context, key string) ([]byte, error) {
	// Формируем запрос
	query := sq.Select(colValue).
		From(table).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return value, nil
}

// Set - обновление значения по ключу
// Если записи нет, создается новая
func (r *repo) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	now := time.Now().UTC()
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)

	// Формируем запрос
	query := sq.Update(table).
		Set(colValue, value).
		Set(colTime, now).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := tr.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	// Если rowsAffected = 0 - то записи не существует и делаем вставку
	if res.RowsAffected() == 0 {
		insertQuery := sq.Insert(table).
			Columns(colKey, colValue, colTime).
			Values(key, value, now).
			Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " + colValue + " = EXCLUDED." + colValue).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = tr.Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}
	return nil
}

// Delete - удаление записи по ключу
func (r *repo) Delete(ctx context.Context, key string) error {
	query := sq.Delete(table).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
