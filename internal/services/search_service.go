package services

import (
	"encoding/json"

	"lawconnect_backend/internal/models"
	"lawconnect_backend/internal/repositories"
	"lawconnect_backend/internal/services/dto"
	"lawconnect_backend/pkg/apperrors"
)

// SearchService is the public lawyer directory: plain field-equality
// filtering, no ranking.
type SearchService interface {
	GetAllLawyers() ([]*dto.LawyerResponse, error)
	GetLawyersByCaseDomain(caseDomain string) ([]*dto.LawyerResponse, error)
	GetLawyersByLocation(location string) ([]*dto.LawyerResponse, error)
	GetCaseDomains() ([]string, error)
	GetLocations() ([]string, error)
}

type searchService struct {
	lawyerRepo repositories.LawyerRepository
}

func NewSearchService(lawyerRepo repositories.LawyerRepository) SearchService {
	return &searchService{lawyerRepo: lawyerRepo}
}

func (s *searchService) GetAllLawyers() ([]*dto.LawyerResponse, error) {
	lawyers, err := s.lawyerRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildLawyerResponses(lawyers), nil
}

func (s *searchService) GetLawyersByCaseDomain(caseDomain string) ([]*dto.LawyerResponse, error) {
	lawyers, err := s.lawyerRepo.FindByCaseDomain(caseDomain)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildLawyerResponses(lawyers), nil
}

func (s *searchService) GetLawyersByLocation(location string) ([]*dto.LawyerResponse, error) {
	lawyers, err := s.lawyerRepo.FindByLocation(location)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildLawyerResponses(lawyers), nil
}

func (s *searchService) GetCaseDomains() ([]string, error) {
	domains, err := s.lawyerRepo.ListCaseDomains()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return domains, nil
}

func (s *searchService) GetLocations() ([]string, error) {
	locations, err := s.lawyerRepo.ListLocations()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return locations, nil
}

func buildLawyerResponses(lawyers []models.Lawyer) []*dto.LawyerResponse {
	responses := make([]*dto.LawyerResponse, 0, len(lawyers))
	for i := range lawyers {
		responses = append(responses, buildLawyerResponse(&lawyers[i]))
	}
	return responses
}

func buildLawyerResponse(lawyer *models.Lawyer) *dto.LawyerResponse {
	response := &dto.LawyerResponse{
		ID:            lawyer.ID,
		FirstName:     lawyer.FirstName,
		LastName:      lawyer.LastName,
		Email:         lawyer.Email,
		AccountType:   lawyer.AccountType,
		PhoneNo:       lawyer.PhoneNo,
		Bio:           lawyer.Bio,
		CaseDomain:    lawyer.CaseDomain,
		Location:      lawyer.Location,
		YearOfJoining: lawyer.YearOfJoining,
		CreatedAt:     lawyer.CreatedAt,
	}

	if len(lawyer.Achievements) > 0 {
		var achievements []string
		if err := json.Unmarshal(lawyer.Achievements, &achievements); err == nil {
			response.Achievements = achievements
		}
	}
	if len(lawyer.Qualifications) > 0 {
		var qualifications []string
		if err := json.Unmarshal(lawyer.Qualifications, &qualifications); err == nil {
			response.Qualifications = qualifications
		}
	}

	return response
}
