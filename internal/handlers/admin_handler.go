package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruittrack/internal/middleware"
	"recruittrack/internal/models"
	"recruittrack/internal/services"
	"recruittrack/internal/services/dto"
)

// AdminHandler serves the station commander promotion flow.
type AdminHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewAdminHandler(base *BaseHandler, requestService services.RequestService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	request := r.Group("/station-commander")
	request.Use(middleware.AuthMiddleware())
	{
		request.POST("/request", h.SubmitRequest)
	}

	admin := r.Group("/admin/requests")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListPendingRequests)
		admin.GET("/pending-count", h.PendingCount)
		admin.PATCH("/:requestId", h.ReviewRequest)
	}
}

func (h *AdminHandler) SubmitRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.StationCommanderRequestInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.requestService.SubmitRequest(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) ListPendingRequests(c *gin.Context) {
	requests, err := h.requestService.ListPendingRequests()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *AdminHandler) PendingCount(c *gin.Context) {
	count, err := h.requestService.PendingCount()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *AdminHandler) ReviewRequest(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequestInput
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.requestService.ReviewRequest(adminID, c.Param("requestId"), req.Approve)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
