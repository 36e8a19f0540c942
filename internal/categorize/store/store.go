package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindCategory picks the longest learned pattern contained in the raw
// description; ties go to the most recently learned mapping.
func (s *Store) FindCategory(ctx context.Context, rawDescription string) (transaction.Category, error) {
	query := `
		SELECT category
		FROM category_mappings
		WHERE $1 ILIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var category string

	err := s.db.QueryRowContext(ctx, query, rawDescription).Scan(&category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding category: %w", err)
	}

	return transaction.Category(category), nil
}

func (s *Store) CreateMapping(ctx context.Context, rawPattern string, category transaction.Category) error {
	query := `
		INSERT INTO category_mappings (raw_pattern, category, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, rawPattern, category)
	if err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}
