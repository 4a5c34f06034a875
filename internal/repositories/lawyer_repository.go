package repositories

import (
	"errors"

	"lawconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrLawyerNotFound      = errors.New("lawyer not found")
	ErrLawyerAlreadyExists = errors.New("lawyer already exists")
)

type LawyerRepository interface {
	Create(lawyer *models.Lawyer) error
	FindByID(id string) (*models.Lawyer, error)
	FindByEmail(email string) (*models.Lawyer, error)
	FindAll() ([]models.Lawyer, error)
	FindByCaseDomain(caseDomain string) ([]models.Lawyer, error)
	FindByLocation(location string) ([]models.Lawyer, error)
	ListCaseDomains() ([]string, error)
	ListLocations() ([]string, error)
}

type LawyerRepositoryImpl struct {
	db *gorm.DB
}

func NewLawyerRepository(db *gorm.DB) LawyerRepository {
	return &LawyerRepositoryImpl{db: db}
}

func (r *LawyerRepositoryImpl) Create(lawyer *models.Lawyer) error {
	var existing models.Lawyer
	if err := r.db.Where("email = ?", lawyer.Email).First(&existing).Error; err == nil {
		return ErrLawyerAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(lawyer).Error
}

func (r *LawyerRepositoryImpl) FindByID(id string) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	err := r.db.First(&lawyer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}
	return &lawyer, nil
}

func (r *LawyerRepositoryImpl) FindByEmail(email string) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	err := r.db.First(&lawyer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}
	return &lawyer, nil
}

func (r *LawyerRepositoryImpl) FindAll() ([]models.Lawyer, error) {
	var lawyers []models.Lawyer
	err := r.db.Find(&lawyers).Error
	return lawyers, err
}

func (r *LawyerRepositoryImpl) FindByCaseDomain(caseDomain string) ([]models.Lawyer, error) {
	var lawyers []models.Lawyer
	err := r.db.Where("case_domain = ?", caseDomain).Find(&lawyers).Error
	return lawyers, err
}

func (r *LawyerRepositoryImpl) FindByLocation(location string) ([]models.Lawyer, error) {
	var lawyers []models.Lawyer
	err := r.db.Where("location = ?", location).Find(&lawyers).Error
	return lawyers, err
}

func (r *LawyerRepositoryImpl) ListCaseDomains() ([]string, error) {
	var domains []string
	err := r.db.Model(&models.Lawyer{}).Distinct("case_domain").
		Order("case_domain").Pluck("case_domain", &domains).Error
	return domains, err
}

func (r *LawyerRepositoryImpl) ListLocations() ([]string, error) {
	var locations []string
	err := r.db.Model(&models.Lawyer{}).Distinct("location").
		Order("location").Pluck("location", &locations).Error
	return locations, err
}
