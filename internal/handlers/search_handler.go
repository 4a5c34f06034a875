package handlers

import (
	"net/http"

	"lawconnect_backend/internal/services"
	"lawconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

// RegisterRoutes mounts the lawyer directory. The directory is public so
// clients can browse before registering.
func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	lawyers := r.Group("/lawyers")
	{
		lawyers.GET("", h.GetAllLawyers)
		lawyers.POST("/search/domain", h.SearchByCaseDomain)
		lawyers.POST("/search/location", h.SearchByLocation)
		lawyers.GET("/domains", h.GetCaseDomains)
		lawyers.GET("/locations", h.GetLocations)
	}
}

func (h *SearchHandler) GetAllLawyers(c *gin.Context) {
	lawyers, err := h.searchService.GetAllLawyers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lawyers": lawyers,
		"total":   len(lawyers),
	})
}

func (h *SearchHandler) SearchByCaseDomain(c *gin.Context) {
	var req dto.SearchByCaseDomainRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	lawyers, err := h.searchService.GetLawyersByCaseDomain(req.CaseDomain)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lawyers": lawyers,
		"total":   len(lawyers),
	})
}

func (h *SearchHandler) SearchByLocation(c *gin.Context) {
	var req dto.SearchByLocationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	lawyers, err := h.searchService.GetLawyersByLocation(req.Location)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lawyers": lawyers,
		"total":   len(lawyers),
	})
}

func (h *SearchHandler) GetCaseDomains(c *gin.Context) {
	domains, err := h.searchService.GetCaseDomains()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"caseDomains": domains})
}

func (h *SearchHandler) GetLocations(c *gin.Context) {
	locations, err := h.searchService.GetLocations()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}
