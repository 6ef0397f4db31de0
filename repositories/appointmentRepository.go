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

// AppointmentDao holds the CRUD primitives for appointments.
type AppointmentDao interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAllAppointment(ctx context.Context, req utils.PageRequest) (utils.Page[models.Appointment], error)
	DeleteAppointment(ctx context.Context, id string) error
}

// AppointmentRepository runs filter searches over appointments.
type AppointmentRepository interface {
	FindAll(ctx context.Context, filter utils.AppointmentFilter) ([]models.Appointment, error)
}

type appointmentRepository struct {
	search *SearchRepository[models.Appointment]
}

type appointmentDao struct {
	*gormDao[models.Appointment]
}

func NewAppointmentDao(db *gorm.DB, c *cache.Cache, log zerolog.Logger) AppointmentDao {
	return &appointmentDao{newGormDao[models.Appointment](db, c, log, "appointment", "appointments")}
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{search: NewSearchRepository[models.Appointment](db)}
}

func (r *appointmentRepository) FindAll(ctx context.Context, filter utils.AppointmentFilter) ([]models.Appointment, error) {
	return r.search.FindAll(ctx, filter.Scope())
}

// CreateAppointment inserts the appointment, or replaces the row with the
// same id. An empty id is assigned a UUID.
func (r *appointmentDao) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	if err := r.save(ctx, appointment, appointment.ID); err != nil {
		return nil, err
	}
	return appointment, nil
}

// GetAppointmentByID returns nil, nil when the appointment does not exist.
func (r *appointmentDao) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	return r.getByID(ctx, id)
}

func (r *appointmentDao) GetAllAppointment(ctx context.Context, req utils.PageRequest) (utils.Page[models.Appointment], error) {
	return r.getAll(ctx, req)
}

func (r *appointmentDao) DeleteAppointment(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
