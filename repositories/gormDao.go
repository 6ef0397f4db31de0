package repositories

import (
	"MediRecords/cache"
	"MediRecords/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const queryTimeout = 5 * time.Second

// gormDao holds the CRUD primitives shared by the per-entity DAOs. Rows are
// keyed by a string "id" column; single rows and list pages are cached.
type gormDao[T any] struct {
	db     *gorm.DB
	cache  *cache.Cache
	log    zerolog.Logger
	name   string
	plural string
}

func newGormDao[T any](db *gorm.DB, c *cache.Cache, log zerolog.Logger, name, plural string) *gormDao[T] {
	return &gormDao[T]{
		db:     db,
		cache:  c,
		log:    log.With().Str("dao", name).Logger(),
		name:   name,
		plural: plural,
	}
}

func (r *gormDao[T]) save(ctx context.Context, item *T, id string) error {
	// Save updates every column and inserts when no row matched the id
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return pkgerrors.Wrapf(err, "failed to save %s", r.name)
	}
	r.invalidate(ctx, id)
	return nil
}

// getByID returns nil, nil when no row has the id.
func (r *gormDao[T]) getByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cacheKey := r.itemKey(id)
	var item T
	if r.readCache(ctx, cacheKey, &item) {
		return &item, nil
	}

	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "failed to get %s", r.name)
	}

	r.writeCache(ctx, cacheKey, item)
	return &item, nil
}

func (r *gormDao[T]) getAll(ctx context.Context, req utils.PageRequest) (utils.Page[T], error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cacheKey := r.pageKey(req)
	var page utils.Page[T]
	if r.readCache(ctx, cacheKey, &page) {
		return page, nil
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return utils.Page[T]{}, pkgerrors.Wrapf(err, "failed to count %s", r.plural)
	}

	var items []T
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&items).Error
	if err != nil {
		return utils.Page[T]{}, pkgerrors.Wrapf(err, "failed to get all %s", r.plural)
	}

	page = utils.NewPage(items, req, total)
	r.writeCache(ctx, cacheKey, page)
	return page, nil
}

func (r *gormDao[T]) delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error; err != nil {
		return pkgerrors.Wrapf(err, "failed to delete %s", r.name)
	}
	r.invalidate(ctx, id)
	return nil
}

// readCache reports whether key held a value that decoded into dst.
func (r *gormDao[T]) readCache(ctx context.Context, key string, dst interface{}) bool {
	cached, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("failed to read cache")
		return false
	}
	if cached == "" {
		return false
	}
	return json.Unmarshal([]byte(cached), dst) == nil
}

func (r *gormDao[T]) writeCache(ctx context.Context, key string, value interface{}) {
	if !r.cache.Enabled() {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("failed to marshal cache entry")
		return
	}
	if err := r.cache.Set(ctx, key, payload); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("failed to write cache")
	}
}

// invalidate drops the cached row and every cached page. Postgres stays the
// source of truth, so failures are only logged.
func (r *gormDao[T]) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, r.itemKey(id)); err != nil {
		r.log.Warn().Err(err).Str("id", id).Msg("failed to delete cache entry")
	}
	if err := r.cache.DeleteAll(ctx, r.plural+"_cache:*"); err != nil {
		r.log.Warn().Err(err).Msg("failed to delete cached pages")
	}
}

func (r *gormDao[T]) itemKey(id string) string {
	return fmt.Sprintf("%s_cache:%s", r.name, id)
}

func (r *gormDao[T]) pageKey(req utils.PageRequest) string {
	return fmt.Sprintf("%s_cache:page:%d:size:%d", r.plural, req.Page, req.Size)
}
