package services

import (
	"encoding/json"

	"lawconnect_backend/internal/auth"
	"lawconnect_backend/internal/models"
	"lawconnect_backend/internal/repositories"
	"lawconnect_backend/internal/services/dto"
	"lawconnect_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type AuthService interface {
	RegisterUser(req *dto.RegisterUserRequest) error
	LoginUser(req *dto.LoginRequest) (*dto.LoginUserResponse, error)
	RegisterLawyer(req *dto.RegisterLawyerRequest) error
	LoginLawyer(req *dto.LoginRequest) (*dto.LoginLawyerResponse, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	lawyerRepo repositories.LawyerRepository
}

func NewAuthService(userRepo repositories.UserRepository, lawyerRepo repositories.LawyerRepository) AuthService {
	return &authService{
		userRepo:   userRepo,
		lawyerRepo: lawyerRepo,
	}
}

func (s *authService) RegisterUser(req *dto.RegisterUserRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		PhoneNo:      req.PhoneNo,
		Location:     req.Location,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) LoginUser(req *dto.LoginRequest) (*dto.LoginUserResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(user.ID, auth.RoleUser)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginUserResponse{
		AccessToken: accessToken,
		User:        buildUserResponse(user),
	}, nil
}

func (s *authService) RegisterLawyer(req *dto.RegisterLawyerRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	achievements, err := marshalStringList(req.Achievements)
	if err != nil {
		return apperrors.InternalError(err)
	}
	qualifications, err := marshalStringList(req.Qualifications)
	if err != nil {
		return apperrors.InternalError(err)
	}

	lawyer := &models.Lawyer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordHash:   hashedPassword,
		AccountType:    req.AccountType,
		PhoneNo:        req.PhoneNo,
		Bio:            req.Bio,
		Achievements:   achievements,
		Qualifications: qualifications,
		CaseDomain:     req.CaseDomain,
		Location:       req.Location,
		YearOfJoining:  req.YearOfJoining,
	}

	if err := s.lawyerRepo.Create(lawyer); err != nil {
		if apperrors.Is(err, repositories.ErrLawyerAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) LoginLawyer(req *dto.LoginRequest) (*dto.LoginLawyerResponse, error) {
	lawyer, err := s.lawyerRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLawyerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, lawyer.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(lawyer.ID, auth.RoleLawyer)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginLawyerResponse{
		AccessToken: accessToken,
		Lawyer:      buildLawyerResponse(lawyer),
	}, nil
}

func marshalStringList(values []string) (datatypes.JSON, error) {
	if len(values) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
