// Package store holds the resource accessors. Each accessor issues
// parameterized SQL against the shared pool; expected conditions come back as
// apperror values, anything else propagates raw for the error middleware to
// classify.
package store

import (
	"github.com/jmoiron/sqlx"

	"github.com/emilythestrangee/nc-news/backend/internal/database"
)

type Store struct {
	db *sqlx.DB
}

func New(db *database.Database) *Store {
	return &Store{db: db.DB}
}
