package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruittrack/internal/middleware"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services"
)

type ExportHandler struct {
	*BaseHandler
	exportService services.ExportService
}

func NewExportHandler(base *BaseHandler, exportService services.ExportService) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   base,
		exportService: exportService,
	}
}

func (h *ExportHandler) RegisterRoutes(r *gin.RouterGroup) {
	export := r.Group("/recruits/export")
	export.Use(middleware.AuthMiddleware())
	{
		export.GET("/csv", h.ExportCSV)
		export.GET("/xlsx", h.ExportExcel)
	}
}

func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria repositories.RecruitCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	filename, data, err := h.exportService.ExportCSV(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *ExportHandler) ExportExcel(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria repositories.RecruitCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	filename, data, err := h.exportService.ExportExcel(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
