package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lawconnect_backend/internal/services"
	"lawconnect_backend/internal/services/dto"
	"lawconnect_backend/internal/validator"
	"lawconnect_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestService returns canned results so the tests pin down the
// handler's status mapping and response bodies only.
type fakeRequestService struct {
	sendResponse *dto.RequestResponse
	sendErr      error
	pending      []dto.PendingRequest
	pendingErr   error
	acceptErr    error
	accepted     []*dto.UserResponse
	acceptedErr  error
	declineErr   error
	clearErr     error
}

var _ services.RequestService = (*fakeRequestService)(nil)

func (s *fakeRequestService) SendRequest(userID string, req *dto.SendRequestRequest) (*dto.RequestResponse, error) {
	return s.sendResponse, s.sendErr
}

func (s *fakeRequestService) ListPending() ([]dto.PendingRequest, error) {
	return s.pending, s.pendingErr
}

func (s *fakeRequestService) Accept(notificationID string) error {
	return s.acceptErr
}

func (s *fakeRequestService) ListAccepted(lawyerID string) ([]*dto.UserResponse, error) {
	return s.accepted, s.acceptedErr
}

func (s *fakeRequestService) Decline(notificationID string) error {
	return s.declineErr
}

func (s *fakeRequestService) ClearAll() error {
	return s.clearErr
}

// setupRequestRouter mounts the handler behind a stub auth middleware so
// the tests exercise the routes without issuing tokens.
func setupRequestRouter(svc services.RequestService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewRequestHandler(NewBaseHandler(validator.New()), svc)

	router := gin.New()
	requests := router.Group("/api/v1/requests")
	requests.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Next()
	})
	{
		requests.GET("", handler.ListPending)
		requests.POST("/send", handler.SendRequest)
		requests.POST("/accept", handler.AcceptRequest)
		requests.POST("/decline", handler.DeclineRequest)
		requests.GET("/accepted/:lawyerId", handler.ListAccepted)
		requests.DELETE("", handler.ClearAll)
	}
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAcceptRequestHandler(t *testing.T) {
	t.Run("returns 200 with the accept message", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{})

		res := performJSON(t, router, http.MethodPost, "/api/v1/requests/accept",
			gin.H{"notificationId": "req-1"})

		assert.Equal(t, http.StatusOK, res.Code)
		assert.JSONEq(t, `{"message": "Request accepted successfully"}`, res.Body.String())
	})

	t.Run("returns 404 when the notification is unknown", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{acceptErr: apperrors.ErrRequestNotFound})

		res := performJSON(t, router, http.MethodPost, "/api/v1/requests/accept",
			gin.H{"notificationId": "nope"})

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Contains(t, res.Body.String(), "Notification not found")
	})

	t.Run("returns 400 when already accepted", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{acceptErr: apperrors.ErrRequestAlreadyAccepted})

		res := performJSON(t, router, http.MethodPost, "/api/v1/requests/accept",
			gin.H{"notificationId": "req-1"})

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Contains(t, res.Body.String(), "Request already accepted")
	})

	t.Run("returns 400 when the id is missing", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{})

		res := performJSON(t, router, http.MethodPost, "/api/v1/requests/accept", gin.H{})

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestListPendingHandler(t *testing.T) {
	t.Run("returns the user and notification pairs", func(t *testing.T) {
		pending := []dto.PendingRequest{
			{
				User:         &dto.UserResponse{ID: "user-1", FirstName: "Aizhan"},
				Notification: &dto.RequestResponse{ID: "req-1", UserID: "user-1", LawyerID: "lawyer-1"},
			},
		}
		router := setupRequestRouter(&fakeRequestService{pending: pending})

		res := performJSON(t, router, http.MethodGet, "/api/v1/requests", nil)

		require.Equal(t, http.StatusOK, res.Code)

		var decoded []struct {
			User         map[string]interface{} `json:"user"`
			Notification map[string]interface{} `json:"notification"`
		}
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "user-1", decoded[0].User["id"])
		assert.Equal(t, "req-1", decoded[0].Notification["id"])
	})

	t.Run("empty store returns an empty array", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{pending: []dto.PendingRequest{}})

		res := performJSON(t, router, http.MethodGet, "/api/v1/requests", nil)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.JSONEq(t, `[]`, res.Body.String())
	})
}

func TestListAcceptedHandler(t *testing.T) {
	t.Run("returns the accepted users", func(t *testing.T) {
		accepted := []*dto.UserResponse{{ID: "user-1", FirstName: "Aizhan"}}
		router := setupRequestRouter(&fakeRequestService{accepted: accepted})

		res := performJSON(t, router, http.MethodGet, "/api/v1/requests/accepted/lawyer-1", nil)

		require.Equal(t, http.StatusOK, res.Code)

		var decoded struct {
			AcceptedUsers []map[string]interface{} `json:"acceptedUsers"`
		}
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &decoded))
		require.Len(t, decoded.AcceptedUsers, 1)
		assert.Equal(t, "user-1", decoded.AcceptedUsers[0]["id"])
	})

	t.Run("returns 404 when no requests are accepted", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{acceptedErr: apperrors.ErrNoAcceptedRequests})

		res := performJSON(t, router, http.MethodGet, "/api/v1/requests/accepted/lawyer-1", nil)

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Contains(t, res.Body.String(), "No accepted notifications found")
	})

	t.Run("returns 404 when all senders are gone", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{acceptedErr: apperrors.ErrNoAcceptedUsers})

		res := performJSON(t, router, http.MethodGet, "/api/v1/requests/accepted/lawyer-1", nil)

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Contains(t, res.Body.String(), "No accepted users found")
	})
}

func TestDeclineRequestHandler(t *testing.T) {
	t.Run("returns 200 with the decline message", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{})

		res := performJSON(t, router, http.MethodPost, "/api/v1/requests/decline",
			gin.H{"notificationId": "req-1"})

		assert.Equal(t, http.StatusOK, res.Code)
		assert.JSONEq(t, `{"message": "Request is declined"}`, res.Body.String())
	})

	t.Run("returns 404 when the notification is unknown", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{declineErr: apperrors.ErrRequestNotFound})

		res := performJSON(t, router, http.MethodPost, "/api/v1/requests/decline",
			gin.H{"notificationId": "nope"})

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Contains(t, res.Body.String(), "Notification not found")
	})
}

func TestClearAllHandler(t *testing.T) {
	t.Run("returns 200 with the deletion message", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{})

		res := performJSON(t, router, http.MethodDelete, "/api/v1/requests", nil)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.JSONEq(t, `{"message": "All requests are deleted"}`, res.Body.String())
	})

	t.Run("returns 404 when the store is empty", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{clearErr: apperrors.ErrNoRequests})

		res := performJSON(t, router, http.MethodDelete, "/api/v1/requests", nil)

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Contains(t, res.Body.String(), "No notifications found")
	})
}

func TestSendRequestHandler(t *testing.T) {
	t.Run("returns 201 with the created request", func(t *testing.T) {
		response := &dto.RequestResponse{ID: "req-1", UserID: "user-1", LawyerID: "lawyer-1"}
		router := setupRequestRouter(&fakeRequestService{sendResponse: response})

		res := performJSON(t, router, http.MethodPost, "/api/v1/requests/send",
			gin.H{"lawyerId": "lawyer-1"})

		require.Equal(t, http.StatusCreated, res.Code)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &decoded))
		assert.Equal(t, "req-1", decoded["id"])
		assert.Equal(t, "lawyer-1", decoded["lawyerId"])
	})

	t.Run("returns 404 for an unknown lawyer", func(t *testing.T) {
		router := setupRequestRouter(&fakeRequestService{sendErr: apperrors.ErrLawyerNotFound})

		res := performJSON(t, router, http.MethodPost, "/api/v1/requests/send",
			gin.H{"lawyerId": "nope"})

		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}
