package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Scope is a composable query predicate applied by a SearchRepository.
type Scope = func(*gorm.DB) *gorm.DB

// SearchRepository runs predicate queries against the table of T.
type SearchRepository[T any] struct {
	db *gorm.DB
}

func NewSearchRepository[T any](db *gorm.DB) *SearchRepository[T] {
	return &SearchRepository[T]{db: db}
}

// FindAll returns every row matching all scopes, unpaged.
func (r *SearchRepository[T]) FindAll(ctx context.Context, scopes ...Scope) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var results []T
	if err := r.db.WithContext(ctx).Scopes(scopes...).Find(&results).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run search query")
	}
	return results, nil
}
