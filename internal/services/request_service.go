package services

import (
	"lawconnect_backend/internal/models"
	"lawconnect_backend/internal/repositories"
	"lawconnect_backend/internal/services/dto"
	"lawconnect_backend/pkg/apperrors"
)

// RequestService is the request-notification lifecycle engine. All shared
// state lives in the request store; every method is safe for concurrent
// callers and scoped to a single record except the bulk operations.
type RequestService interface {
	SendRequest(userID string, req *dto.SendRequestRequest) (*dto.RequestResponse, error)
	// ListPending returns every request paired with the sender's profile,
	// in store order. Orphaned records (sender no longer resolvable) are
	// silently skipped. One directory lookup per record.
	ListPending() ([]dto.PendingRequest, error)
	Accept(notificationID string) error
	ListAccepted(lawyerID string) ([]*dto.UserResponse, error)
	Decline(notificationID string) error
	ClearAll() error
}

type requestService struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
	lawyerRepo  repositories.LawyerRepository
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	lawyerRepo repositories.LawyerRepository,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		lawyerRepo:  lawyerRepo,
	}
}

func (s *requestService) SendRequest(userID string, req *dto.SendRequestRequest) (*dto.RequestResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.lawyerRepo.FindByID(req.LawyerID); err != nil {
		if apperrors.Is(err, repositories.ErrLawyerNotFound) {
			return nil, apperrors.ErrLawyerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	request := &models.Request{
		UserID:       userID,
		LawyerID:     req.LawyerID,
		AcceptStatus: false,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildRequestResponse(request), nil
}

func (s *requestService) ListPending() ([]dto.PendingRequest, error) {
	requests, err := s.requestRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	pending := make([]dto.PendingRequest, 0, len(requests))
	for i := range requests {
		user, err := s.userRepo.FindByID(requests[i].UserID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				// Orphaned record, sender was deleted after sending.
				continue
			}
			return nil, apperrors.InternalError(err)
		}
		pending = append(pending, dto.PendingRequest{
			User:         buildUserResponse(user),
			Notification: buildRequestResponse(&requests[i]),
		})
	}

	return pending, nil
}

// Accept transitions a request to accepted exactly once. The guard reads
// distinguish NotFound from AlreadyAccepted; the write itself is a single
// conditional update, so a concurrent caller that loses the race gets
// ErrRequestAlreadyAccepted rather than a second mutation.
func (s *requestService) Accept(notificationID string) error {
	request, err := s.requestRepo.FindByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return apperrors.ErrRequestNotFound
		}
		return apperrors.InternalError(err)
	}
	if request.AcceptStatus {
		return apperrors.ErrRequestAlreadyAccepted
	}

	accepted, err := s.requestRepo.Accept(notificationID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !accepted {
		return apperrors.ErrRequestAlreadyAccepted
	}
	return nil
}

func (s *requestService) ListAccepted(lawyerID string) ([]*dto.UserResponse, error) {
	requests, err := s.requestRepo.FindAcceptedByLawyer(lawyerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(requests) == 0 {
		return nil, apperrors.ErrNoAcceptedRequests
	}

	// A user may have sent several accepted requests to the same lawyer;
	// the batch lookup expects each id once.
	seen := make(map[string]bool, len(requests))
	userIDs := make([]string, 0, len(requests))
	for _, request := range requests {
		if !seen[request.UserID] {
			seen[request.UserID] = true
			userIDs = append(userIDs, request.UserID)
		}
	}

	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNoAcceptedUsers
	}

	accepted := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		accepted = append(accepted, buildUserResponse(&users[i]))
	}
	return accepted, nil
}

func (s *requestService) Decline(notificationID string) error {
	// Accepted requests can be declined too: a match is revocable and the
	// record is removed outright, no tombstone.
	if err := s.requestRepo.Delete(notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return apperrors.ErrRequestNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *requestService) ClearAll() error {
	count, err := s.requestRepo.Count()
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count == 0 {
		return apperrors.ErrNoRequests
	}

	if err := s.requestRepo.DeleteAll(); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildRequestResponse(request *models.Request) *dto.RequestResponse {
	return &dto.RequestResponse{
		ID:           request.ID,
		UserID:       request.UserID,
		LawyerID:     request.LawyerID,
		AcceptStatus: request.AcceptStatus,
		CreatedAt:    request.CreatedAt,
	}
}
