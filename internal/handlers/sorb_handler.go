package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruittrack/internal/middleware"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services"
	"recruittrack/internal/services/dto"
)

// SorbHandler serves the SORB lead pipeline. Its routes are only
// mounted when SORB mode is enabled in the config.
type SorbHandler struct {
	*BaseHandler
	sorbService services.SorbService
}

func NewSorbHandler(base *BaseHandler, sorbService services.SorbService) *SorbHandler {
	return &SorbHandler{
		BaseHandler: base,
		sorbService: sorbService,
	}
}

func (h *SorbHandler) RegisterRoutes(r *gin.RouterGroup) {
	sorb := r.Group("/sorb")
	sorb.Use(middleware.AuthMiddleware())
	{
		sorb.POST("/leads", h.CreateLead)
		sorb.GET("/leads", h.ListLeads)
		sorb.GET("/leads/:leadId", h.GetLead)
		sorb.PATCH("/leads/:leadId", h.UpdateLead)
		sorb.PATCH("/leads/:leadId/status", h.UpdateStage)
		sorb.DELETE("/leads/:leadId", h.DeleteLead)
		sorb.GET("/analytics", h.Analytics)
		sorb.GET("/pipeline-analytics", h.PipelineAnalytics)
	}
}

func (h *SorbHandler) CreateLead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSorbLeadRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	lead, err := h.sorbService.CreateLead(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *SorbHandler) ListLeads(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria repositories.SorbLeadCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	resp, err := h.sorbService.ListLeads(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SorbHandler) GetLead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	lead, err := h.sorbService.GetLead(userID, c.Param("leadId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *SorbHandler) UpdateLead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSorbLeadRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	lead, err := h.sorbService.UpdateLead(userID, c.Param("leadId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *SorbHandler) UpdateStage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSorbStageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	lead, err := h.sorbService.UpdateStage(userID, c.Param("leadId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *SorbHandler) DeleteLead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.sorbService.DeleteLead(userID, c.Param("leadId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SorbHandler) Analytics(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria repositories.SorbAnalyticsCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	analytics, err := h.sorbService.Analytics(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *SorbHandler) PipelineAnalytics(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	analytics, err := h.sorbService.PipelineAnalytics(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
