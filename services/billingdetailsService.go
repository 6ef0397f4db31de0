package services

import (
	"MediRecords/dto"
	"MediRecords/models"
	"MediRecords/repositories"
	"MediRecords/utils"
	"context"

	"github.com/rs/zerolog"
)

type BillingdetailsService interface {
	CreateBillingdetails(ctx context.Context, billingdetailsDto dto.BillingdetailsDto) (dto.BillingdetailsDto, error)
	GetBillingdetailsByID(ctx context.Context, id string) (dto.BillingdetailsDto, error)
	GetAllBillingdetails(ctx context.Context, page, size int) (utils.Page[dto.BillingdetailsDto], error)
	SearchBillingdetails(ctx context.Context, allParams map[string]string) ([]dto.BillingdetailsDto, error)
	UpdateBillingdetails(ctx context.Context, billingdetailsDto dto.BillingdetailsDto) (dto.BillingdetailsDto, error)
	DeleteBillingdetails(ctx context.Context, id string) (string, error)
}

type billingdetailsService struct {
	billingdetailsDao        repositories.BillingdetailsDao
	billingdetailsRepository repositories.BillingdetailsRepository
	log                      zerolog.Logger
}

func NewBillingdetailsService(billingdetailsDao repositories.BillingdetailsDao, billingdetailsRepository repositories.BillingdetailsRepository, log zerolog.Logger) BillingdetailsService {
	return &billingdetailsService{
		billingdetailsDao:        billingdetailsDao,
		billingdetailsRepository: billingdetailsRepository,
		log:                      log.With().Str("service", "billingdetails").Logger(),
	}
}

func (s *billingdetailsService) CreateBillingdetails(ctx context.Context, billingdetailsDto dto.BillingdetailsDto) (dto.BillingdetailsDto, error) {
	s.log.Info().Msg("Entering CreateBillingdetails method")

	if err := billingdetailsDto.Validate(); err != nil {
		return dto.BillingdetailsDto{}, err
	}
	billingdetails := utils.BillingdetailsToEntity(billingdetailsDto)
	created, err := s.billingdetailsDao.CreateBillingdetails(ctx, &billingdetails)
	if err != nil {
		return dto.BillingdetailsDto{}, err
	}

	s.log.Info().Str("id", created.ID).Msg("Exiting CreateBillingdetails method")
	return utils.BillingdetailsToDto(*created), nil
}

func (s *billingdetailsService) GetBillingdetailsByID(ctx context.Context, id string) (dto.BillingdetailsDto, error) {
	s.log.Info().Str("id", id).Msg("Entering GetBillingdetailsByID method")

	billingdetails, err := s.billingdetailsDao.GetBillingdetailsByID(ctx, id)
	if err != nil {
		return dto.BillingdetailsDto{}, err
	}
	if billingdetails == nil {
		s.log.Warn().Str("id", id).Msg("No billingdetails found")
		return dto.BillingdetailsDto{}, newEntityNotFound(id, "Data not found for ID: "+id)
	}

	s.log.Info().Str("id", id).Msg("Exiting GetBillingdetailsByID method")
	return utils.BillingdetailsToDto(*billingdetails), nil
}

func (s *billingdetailsService) GetAllBillingdetails(ctx context.Context, page, size int) (utils.Page[dto.BillingdetailsDto], error) {
	s.log.Info().Int("page", page).Int("size", size).Msg("Entering GetAllBillingdetails method")

	req, err := utils.NewPageRequest(page, size)
	if err != nil {
		return utils.Page[dto.BillingdetailsDto]{}, err
	}
	billingdetailsPage, err := s.billingdetailsDao.GetAllBillingdetails(ctx, req)
	if err != nil {
		return utils.Page[dto.BillingdetailsDto]{}, err
	}

	s.log.Info().Int64("total", billingdetailsPage.TotalElements).Msg("Exiting GetAllBillingdetails method")
	return utils.MapPage(billingdetailsPage, utils.BillingdetailsToDto), nil
}

// SearchBillingdetails returns every billing record whose fields equal all
// given parameters. Keys are DTO field names.
func (s *billingdetailsService) SearchBillingdetails(ctx context.Context, allParams map[string]string) ([]dto.BillingdetailsDto, error) {
	s.log.Info().Interface("params", allParams).Msg("Entering SearchBillingdetails method")

	filter, err := utils.ParseBillingdetailsFilter(allParams)
	if err != nil {
		return nil, err
	}
	results, err := s.billingdetailsRepository.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	billingdetailsDtos := make([]dto.BillingdetailsDto, 0, len(results))
	for _, billingdetails := range results {
		billingdetailsDtos = append(billingdetailsDtos, utils.BillingdetailsToDto(billingdetails))
	}

	s.log.Info().Int("results", len(billingdetailsDtos)).Msg("Exiting SearchBillingdetails method")
	return billingdetailsDtos, nil
}

// UpdateBillingdetails overwrites an existing billing record with
// billingdetailsDto.
func (s *billingdetailsService) UpdateBillingdetails(ctx context.Context, billingdetailsDto dto.BillingdetailsDto) (dto.BillingdetailsDto, error) {
	id := billingdetailsDto.ID
	s.log.Info().Str("id", id).Msg("Entering UpdateBillingdetails method")

	if err := billingdetailsDto.Validate(); err != nil {
		return dto.BillingdetailsDto{}, err
	}
	existing, err := s.existing(ctx, id)
	if err != nil {
		return dto.BillingdetailsDto{}, err
	}
	if existing == nil {
		s.log.Warn().Str("id", id).Msg("No billingdetails found for update")
		return dto.BillingdetailsDto{}, newEntityNotFound(id, "Data not found for update with ID: "+id)
	}

	billingdetails := utils.BillingdetailsToEntity(billingdetailsDto)
	updated, err := s.billingdetailsDao.CreateBillingdetails(ctx, &billingdetails)
	if err != nil {
		return dto.BillingdetailsDto{}, err
	}

	s.log.Info().Str("id", id).Msg("Exiting UpdateBillingdetails method")
	return utils.BillingdetailsToDto(*updated), nil
}

func (s *billingdetailsService) DeleteBillingdetails(ctx context.Context, id string) (string, error) {
	s.log.Info().Str("id", id).Msg("Entering DeleteBillingdetails method")

	existing, err := s.existing(ctx, id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		s.log.Warn().Str("id", id).Msg("No billingdetails found. Deletion failed.")
		return "", newEntityNotFound(id, "No billingdetails found with ID: "+id+". Unable to delete.")
	}

	if err := s.billingdetailsDao.DeleteBillingdetails(ctx, id); err != nil {
		return "", err
	}

	s.log.Info().Str("id", id).Msg("Successfully deleted Billingdetails")
	return "Billingdetails deleted successfully", nil
}

func (s *billingdetailsService) existing(ctx context.Context, id string) (*models.Billingdetails, error) {
	if id == "" {
		return nil, nil
	}
	return s.billingdetailsDao.GetBillingdetailsByID(ctx, id)
}
