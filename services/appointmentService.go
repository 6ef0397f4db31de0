package services

import (
	"MediRecords/dto"
	"MediRecords/models"
	"MediRecords/repositories"
	"MediRecords/utils"
	"context"

	"github.com/rs/zerolog"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, appointmentDto dto.AppointmentDto) (dto.AppointmentDto, error)
	GetAppointmentByID(ctx context.Context, id string) (dto.AppointmentDto, error)
	GetAllAppointment(ctx context.Context, page, size int) (utils.Page[dto.AppointmentDto], error)
	SearchAppointment(ctx context.Context, allParams map[string]string) ([]dto.AppointmentDto, error)
	UpdateAppointment(ctx context.Context, appointmentDto dto.AppointmentDto) (dto.AppointmentDto, error)
	DeleteAppointment(ctx context.Context, id string) (string, error)
}

type appointmentService struct {
	appointmentDao        repositories.AppointmentDao
	appointmentRepository repositories.AppointmentRepository
	log                   zerolog.Logger
}

func NewAppointmentService(appointmentDao repositories.AppointmentDao, appointmentRepository repositories.AppointmentRepository, log zerolog.Logger) AppointmentService {
	return &appointmentService{
		appointmentDao:        appointmentDao,
		appointmentRepository: appointmentRepository,
		log:                   log.With().Str("service", "appointment").Logger(),
	}
}

func (s *appointmentService) CreateAppointment(ctx context.Context, appointmentDto dto.AppointmentDto) (dto.AppointmentDto, error) {
	s.log.Info().Msg("Entering CreateAppointment method")

	appointment := utils.AppointmentToEntity(appointmentDto)
	created, err := s.appointmentDao.CreateAppointment(ctx, &appointment)
	if err != nil {
		return dto.AppointmentDto{}, err
	}

	s.log.Info().Str("id", created.ID).Msg("Exiting CreateAppointment method")
	return utils.AppointmentToDto(*created), nil
}

func (s *appointmentService) GetAppointmentByID(ctx context.Context, id string) (dto.AppointmentDto, error) {
	s.log.Info().Str("id", id).Msg("Entering GetAppointmentByID method")

	appointment, err := s.appointmentDao.GetAppointmentByID(ctx, id)
	if err != nil {
		return dto.AppointmentDto{}, err
	}
	if appointment == nil {
		s.log.Warn().Str("id", id).Msg("No appointment found")
		return dto.AppointmentDto{}, newEntityNotFound(id, "Data not found for ID: "+id)
	}

	s.log.Info().Str("id", id).Msg("Exiting GetAppointmentByID method")
	return utils.AppointmentToDto(*appointment), nil
}

func (s *appointmentService) GetAllAppointment(ctx context.Context, page, size int) (utils.Page[dto.AppointmentDto], error) {
	s.log.Info().Int("page", page).Int("size", size).Msg("Entering GetAllAppointment method")

	req, err := utils.NewPageRequest(page, size)
	if err != nil {
		return utils.Page[dto.AppointmentDto]{}, err
	}
	appointmentPage, err := s.appointmentDao.GetAllAppointment(ctx, req)
	if err != nil {
		return utils.Page[dto.AppointmentDto]{}, err
	}

	s.log.Info().Int64("total", appointmentPage.TotalElements).Msg("Exiting GetAllAppointment method")
	return utils.MapPage(appointmentPage, utils.AppointmentToDto), nil
}

// SearchAppointment returns every appointment whose fields equal all given
// parameters. Keys are DTO field names.
func (s *appointmentService) SearchAppointment(ctx context.Context, allParams map[string]string) ([]dto.AppointmentDto, error) {
	s.log.Info().Interface("params", allParams).Msg("Entering SearchAppointment method")

	filter, err := utils.ParseAppointmentFilter(allParams)
	if err != nil {
		return nil, err
	}
	results, err := s.appointmentRepository.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	appointmentDtos := make([]dto.AppointmentDto, 0, len(results))
	for _, appointment := range results {
		appointmentDtos = append(appointmentDtos, utils.AppointmentToDto(appointment))
	}

	s.log.Info().Int("results", len(appointmentDtos)).Msg("Exiting SearchAppointment method")
	return appointmentDtos, nil
}

// UpdateAppointment replaces every field of an existing appointment with the
// values of appointmentDto. It does not merge with the stored row.
func (s *appointmentService) UpdateAppointment(ctx context.Context, appointmentDto dto.AppointmentDto) (dto.AppointmentDto, error) {
	id := appointmentDto.ID
	s.log.Info().Str("id", id).Msg("Entering UpdateAppointment method")

	existing, err := s.existing(ctx, id)
	if err != nil {
		return dto.AppointmentDto{}, err
	}
	if existing == nil {
		s.log.Warn().Str("id", id).Msg("No appointment found for update")
		return dto.AppointmentDto{}, newEntityNotFound(id, "Data not found for update with ID: "+id)
	}

	appointment := utils.AppointmentToEntity(appointmentDto)
	updated, err := s.appointmentDao.CreateAppointment(ctx, &appointment)
	if err != nil {
		return dto.AppointmentDto{}, err
	}

	s.log.Info().Str("id", id).Msg("Exiting UpdateAppointment method")
	return utils.AppointmentToDto(*updated), nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, id string) (string, error) {
	s.log.Info().Str("id", id).Msg("Entering DeleteAppointment method")

	existing, err := s.existing(ctx, id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		s.log.Warn().Str("id", id).Msg("No appointment found. Deletion failed.")
		return "", newEntityNotFound(id, "No appointment found with ID: "+id+". Unable to delete.")
	}

	if err := s.appointmentDao.DeleteAppointment(ctx, id); err != nil {
		return "", err
	}

	s.log.Info().Str("id", id).Msg("Successfully deleted Appointment")
	return "Appointment deleted successfully", nil
}

// existing looks up the appointment with id. An empty id is never stored.
func (s *appointmentService) existing(ctx context.Context, id string) (*models.Appointment, error) {
	if id == "" {
		return nil, nil
	}
	return s.appointmentDao.GetAppointmentByID(ctx, id)
}
