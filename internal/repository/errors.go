// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"
	"strings"

	"yatube/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// translateFollowConstraint maps a driver-level constraint violation from a
// follow insert onto the domain error it represents. The schema is the
// authority for both invariants, so this is where SelfFollowRejected and
// AlreadyFollowing actually come from; callers never synthesize them from
// an application-level pre-check.
//
// Postgres reports structured pgconn errors; the sqlite driver used in
// tests only exposes the constraint name in the message text.
func translateFollowConstraint(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation:
			return models.ErrSelfFollow
		case pgUniqueViolation:
			return models.ErrAlreadyFollowing
		}
		return models.NewInternalError(err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "chk_follow_not_self"):
		return models.ErrSelfFollow
	case strings.Contains(msg, "CHECK constraint failed"):
		return models.ErrSelfFollow
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return models.ErrAlreadyFollowing
	case strings.Contains(msg, "idx_follow_pair"):
		return models.ErrAlreadyFollowing
	}

	return models.NewInternalError(err)
}
