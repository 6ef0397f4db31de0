package repositories

import (
	"MediRecords/cache"
	"MediRecords/models"
	"MediRecords/utils"
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// BillingdetailsDao holds the CRUD primitives for billing records.
type BillingdetailsDao interface {
	CreateBillingdetails(ctx context.Context, billingdetails *models.Billingdetails) (*models.Billingdetails, error)
	GetBillingdetailsByID(ctx context.Context, id string) (*models.Billingdetails, error)
	GetAllBillingdetails(ctx context.Context, req utils.PageRequest) (utils.Page[models.Billingdetails], error)
	DeleteBillingdetails(ctx context.Context, id string) error
}

// BillingdetailsRepository runs filter searches over billing records.
type BillingdetailsRepository interface {
	FindAll(ctx context.Context, filter utils.BillingdetailsFilter) ([]models.Billingdetails, error)
}

type billingdetailsRepository struct {
	search *SearchRepository[models.Billingdetails]
}

type billingdetailsDao struct {
	*gormDao[models.Billingdetails]
}

func NewBillingdetailsDao(db *gorm.DB, c *cache.Cache, log zerolog.Logger) BillingdetailsDao {
	return &billingdetailsDao{newGormDao[models.Billingdetails](db, c, log, "billingdetails", "billingdetails_list")}
}

func NewBillingdetailsRepository(db *gorm.DB) BillingdetailsRepository {
	return &billingdetailsRepository{search: NewSearchRepository[models.Billingdetails](db)}
}

func (r *billingdetailsRepository) FindAll(ctx context.Context, filter utils.BillingdetailsFilter) ([]models.Billingdetails, error) {
	return r.search.FindAll(ctx, filter.Scope())
}

func (r *billingdetailsDao) CreateBillingdetails(ctx context.Context, billingdetails *models.Billingdetails) (*models.Billingdetails, error) {
	if billingdetails.ID == "" {
		billingdetails.ID = uuid.NewString()
	}
	if err := r.save(ctx, billingdetails, billingdetails.ID); err != nil {
		return nil, err
	}
	return billingdetails, nil
}

// GetBillingdetailsByID returns nil, nil when the record does not exist.
func (r *billingdetailsDao) GetBillingdetailsByID(ctx context.Context, id string) (*models.Billingdetails, error) {
	return r.getByID(ctx, id)
}

func (r *billingdetailsDao) GetAllBillingdetails(ctx context.Context, req utils.PageRequest) (utils.Page[models.Billingdetails], error) {
	return r.getAll(ctx, req)
}

func (r *billingdetailsDao) DeleteBillingdetails(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
