// Package store is a thin transactional CRUD façade over the database.
// Every operation runs in its own transaction and either fully commits or
// fully rolls back.
package store

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Validation errors, rejected before any transaction begins.
var (
	ErrNoModels    = errors.New("no models to insert")
	ErrEmptyFilter = errors.New("a non-empty filter is required")
	ErrEmptyValues = errors.New("non-empty update values are required")
)

// ErrNotFound reports a FetchFirst miss.
var ErrNotFound = gorm.ErrRecordNotFound

// Filter is a conjunction of exact-match field conditions. Build one with
// Where().Eq(...).Eq(...); it translates to a GORM map condition.
type Filter map[string]any

// Where starts an empty filter.
func Where() Filter { return Filter{} }

// Eq adds an equality condition on a column.
func (f Filter) Eq(column string, value any) Filter {
	f[column] = value
	return f
}

// Values is the column -> new value payload of an Update. It is a distinct
// type from Filter: a payload assigns, it never matches.
type Values map[string]any

// Set starts an empty payload.
func Set() Values { return Values{} }

// To assigns a new value to a column.
func (v Values) To(column string, value any) Values {
	v[column] = value
	return v
}

// Store is an explicit handle around the database connection. Components
// receive one through their constructor; there is no package-level state.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// New creates a Store over an open GORM connection.
func New(db *gorm.DB, log zerolog.Logger) *Store {
	return &Store{db: db, log: log}
}

// Insert persists the given entities in one transaction and returns them
// with their identifiers populated. Empty input is a validation error.
func Insert[T any](s *Store, entities []T) ([]T, error) {
	if len(entities) == 0 {
		return nil, ErrNoModels
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entities).Error
	})
	if err != nil {
		s.log.Error().Err(err).Msg("insert failed, transaction rolled back")
		return nil, fmt.Errorf("inserting entities: %w", err)
	}
	return entities, nil
}

// Fetch returns every row of T matching the filter. A nil or empty filter
// returns all rows.
func Fetch[T any](s *Store, filter Filter) ([]T, error) {
	var rows []T
	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx
		if len(filter) > 0 {
			q = q.Where(map[string]any(filter))
		}
		return q.Find(&rows).Error
	})
	if err != nil {
		s.log.Error().Err(err).Msg("fetch failed")
		return nil, fmt.Errorf("fetching entities: %w", err)
	}
	return rows, nil
}

// FetchFirst returns the first row of T matching the filter, or ErrNotFound.
func FetchFirst[T any](s *Store, filter Filter) (*T, error) {
	var row T
	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx
		if len(filter) > 0 {
			q = q.Where(map[string]any(filter))
		}
		return q.First(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error().Err(err).Msg("fetch failed")
		return nil, fmt.Errorf("fetching entity: %w", err)
	}
	return &row, nil
}

// Update applies the values to every row of T matching the filter and
// returns the number of rows touched. Filter and values are both mandatory.
func Update[T any](s *Store, filter Filter, values Values) (int64, error) {
	if len(filter) == 0 {
		return 0, ErrEmptyFilter
	}
	if len(values) == 0 {
		return 0, ErrEmptyValues
	}

	var count int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var model T
		res := tx.Model(&model).Where(map[string]any(filter)).Updates(map[string]any(values))
		count = res.RowsAffected
		return res.Error
	})
	if err != nil {
		s.log.Error().Err(err).Msg("update failed, transaction rolled back")
		return 0, fmt.Errorf("updating entities: %w", err)
	}
	s.log.Info().Int64("rows", count).Msg("rows updated")
	return count, nil
}

// Delete removes every row of T matching the filter and returns the number
// of rows removed. An empty filter is rejected: deleting a whole table must
// be spelled out by the caller, not reached by accident.
func Delete[T any](s *Store, filter Filter) (int64, error) {
	if len(filter) == 0 {
		return 0, ErrEmptyFilter
	}

	var count int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var model T
		res := tx.Where(map[string]any(filter)).Delete(&model)
		count = res.RowsAffected
		return res.Error
	})
	if err != nil {
		s.log.Error().Err(err).Msg("delete failed, transaction rolled back")
		return 0, fmt.Errorf("deleting entities: %w", err)
	}
	s.log.Info().Int64("rows", count).Msg("rows deleted")
	return count, nil
}

// DB exposes the underlying connection for the domain services that manage
// their own transaction scope.
func (s *Store) DB() *gorm.DB {
	return s.db
}
