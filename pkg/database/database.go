package database

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Logger interface {
	Warn(context.Context, string, ...slog.Attr)
}

type Database struct {
	p   *pgxpool.Pool
	log Logger
}

func (db *Database) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return db.loadDB(ctx).Exec(ctx, sql, arguments...)
}

func (db *Database) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.loadDB(ctx).Query(ctx, sql, args...)
}

func (db *Database) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.loadDB(ctx).QueryRow(ctx, sql, args...)
}

func (db *Database) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return db.loadDB(ctx).CopyFrom(ctx, tableName, columnNames, rowSrc)
}

func (db *Database) Pool() *pgxpool.Pool {
	return db.p
}

func (db *Database) Close() {
	db.p.Close()
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{p: pool, log: noopLogger{}}
}

func (db *Database) WithLogger(l Logger) *Database {
	if l != nil {
		db.log = l
	}

	return db
}
