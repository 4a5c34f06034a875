package services

import (
	"lawconnect_backend/internal/models"
	"lawconnect_backend/internal/repositories"
	"lawconnect_backend/internal/services/dto"
	"lawconnect_backend/pkg/apperrors"
)

type UserService interface {
	GetAllUsers() ([]*dto.UserResponse, error)
	GetUser(userID string) (*dto.UserResponse, error)
	DeleteUser(userID string) error
	DeleteAllUsers() error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers() ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, buildUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *userService) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

func (s *userService) DeleteUser(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) DeleteAllUsers() error {
	if err := s.userRepo.DeleteAll(); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		PhoneNo:   user.PhoneNo,
		Location:  user.Location,
		CreatedAt: user.CreatedAt,
	}
}
