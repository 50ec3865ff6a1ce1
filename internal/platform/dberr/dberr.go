// Copyright (c) 2026 Bookly. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tidol/bookly/internal/platform/apperr"
)

// PostgreSQL SQLSTATE classes relevant to the engagement subsystem.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

var (
	// ErrNotFound is the standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the
// error type.
//
// # Classification
//
//   - pgx.ErrNoRows        → 404 NOT_FOUND
//   - SQLSTATE 23505       → 409 CONFLICT (unique constraint, e.g. a second
//     bookmark on the same (user, chapter, page) triple)
//   - SQLSTATE 23503       → 404 NOT_FOUND (referenced row absent)
//   - SQLSTATE 23514       → 400 VALIDATION_ERROR (check constraint)
//   - anything else        → 500 INTERNAL_ERROR (cause retained for logs)
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case codeUniqueViolation:
			return apperr.Conflict("Resource already exists")
		case codeForeignKeyViolation:
			return ErrNotFound
		case codeCheckViolation:
			return apperr.ValidationError("Value violates a data constraint")
		}
	}

	return apperr.Internal(err)
}

// IsConflict reports whether err wraps a unique-constraint violation.
func IsConflict(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "CONFLICT"
}
