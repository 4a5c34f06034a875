package handlers

import (
	"net/http"

	"lawconnect_backend/internal/middleware"
	"lawconnect_backend/internal/services"
	"lawconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.GET("", h.ListPending)
		requests.POST("/send", h.SendRequest)
		requests.POST("/accept", h.AcceptRequest)
		requests.POST("/decline", h.DeclineRequest)
		requests.GET("/accepted/:lawyerId", h.ListAccepted)
		requests.DELETE("", h.ClearAll)
	}
}

func (h *RequestHandler) SendRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.requestService.SendRequest(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListPending returns every open request with the sender attached so a
// lawyer dashboard can render both in one round trip.
func (h *RequestHandler) ListPending(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	pending, err := h.requestService.ListPending()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pending)
}

func (h *RequestHandler) AcceptRequest(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.NotificationIDRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.requestService.Accept(req.NotificationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request accepted successfully"})
}

func (h *RequestHandler) ListAccepted(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	lawyerID := c.Param("lawyerId")

	acceptedUsers, err := h.requestService.ListAccepted(lawyerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"acceptedUsers": acceptedUsers})
}

func (h *RequestHandler) DeclineRequest(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.NotificationIDRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.requestService.Decline(req.NotificationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request is declined"})
}

func (h *RequestHandler) ClearAll(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	if err := h.requestService.ClearAll(); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All requests are deleted"})
}
