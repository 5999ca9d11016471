package database

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type printfLogger interface {
	Printf(format string, v ...any)
}

// Migrate applies goose migrations from fsys up to version; version <= 0
// means the latest.
func (db *Database) Migrate(ctx context.Context, fsys fs.FS, version int64, log printfLogger) error {
	sqlDB := stdlib.OpenDBFromPool(db.p)
	defer sqlDB.Close()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if log != nil {
		goose.SetLogger(gooseLogger{log})
	} else {
		goose.SetLogger(goose.NopLogger())
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %v", err)
	}

	var err error
	if version > 0 {
		err = goose.UpToContext(ctx, sqlDB, ".", version)
	} else {
		err = goose.UpContext(ctx, sqlDB, ".")
	}
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

type gooseLogger struct {
	printfLogger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.Printf("FATAL: "+format, v...)
}
