package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/repository/converter"
)

// Postgres SQLSTATE codes reported while a migration has not been applied yet.
const (
	codeUndefinedTable    = "42P01"
	codeUndefinedColumn   = "42703"
	codeUndefinedFunction = "42883"

	codeForeignKeyViolation = "23503"
)

// IsSchemaMissing reports whether err means a table, column or function
// expected by the queries is absent from the database.
func IsSchemaMissing(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case codeUndefinedTable, codeUndefinedColumn, codeUndefinedFunction:
		return true
	}

	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

func storeErr(op string, err error) error {
	return entity.NewStoreError(op, err)
}

// featureErr maps a missing sharing schema to ErrFeatureUnavailable.
func featureErr(op string, err error) error {
	if IsSchemaMissing(err) {
		return fmt.Errorf("%s: %w: %v", op, entity.ErrFeatureUnavailable, err)
	}

	return storeErr(op, err)
}

func noteID(id string) (pgtype.UUID, error) {
	u, err := converter.ConvertStringToUUID(id)
	if err != nil {
		return pgtype.UUID{}, entity.ErrNoteNotFound
	}

	return u, nil
}

func userID(id string) (pgtype.UUID, error) {
	u, err := converter.ConvertStringToUUID(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("%w: invalid user id %q", entity.ErrValidation, id)
	}

	return u, nil
}
