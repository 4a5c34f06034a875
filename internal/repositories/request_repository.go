package repositories

import (
	"errors"

	"lawconnect_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("request not found")

type RequestRepository interface {
	Create(request *models.Request) error
	FindByID(id string) (*models.Request, error)
	FindAll() ([]models.Request, error)
	FindAcceptedByLawyer(lawyerID string) ([]models.Request, error)
	Accept(id string) (bool, error)
	Delete(id string) error
	DeleteAll() error
	Count() (int64, error)
}

type RequestRepositoryImpl struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindByID(id string) (*models.Request, error) {
	var request models.Request
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) FindAll() ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) FindAcceptedByLawyer(lawyerID string) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Where("lawyer_id = ? AND accept_status = ?", lawyerID, true).
		Find(&requests).Error
	return requests, err
}

// Accept flips accept_status with a single conditional update, so the
// false -> true transition happens at most once even under concurrent
// callers. Returns false when the guard did not match (already accepted
// or lost a race).
func (r *RequestRepositoryImpl) Accept(id string) (bool, error) {
	result := r.db.Model(&models.Request{}).
		Where("id = ? AND accept_status = ?", id, false).
		Update("accept_status", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *RequestRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Request{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Request{}).Error
}

func (r *RequestRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Request{}).Count(&count).Error
	return count, err
}
