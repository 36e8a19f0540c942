// Package categorize learns which revenue category a POS line belongs
// to, so re-imported tickets come back pre-categorized instead of
// defaulting everything to food.
package categorize

import (
	"context"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

type Repository interface {
	FindCategory(ctx context.Context, rawDescription string) (transaction.Category, error)
	CreateMapping(ctx context.Context, rawPattern string, category transaction.Category) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the learned category for a raw POS description, or
// empty when nothing matches.
func (s *Service) Suggest(ctx context.Context, rawDescription string) (transaction.Category, error) {
	return s.repo.FindCategory(ctx, rawDescription)
}

// Learn remembers that lines matching rawPattern belong to category.
func (s *Service) Learn(ctx context.Context, rawPattern string, category transaction.Category) error {
	return s.repo.CreateMapping(ctx, rawPattern, category)
}
