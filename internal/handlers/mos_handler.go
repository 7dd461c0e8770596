package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruittrack/internal/middleware"
	"recruittrack/internal/services"
	"recruittrack/internal/services/dto"
)

type MOSHandler struct {
	*BaseHandler
	mosService services.MOSService
}

func NewMOSHandler(base *BaseHandler, mosService services.MOSService) *MOSHandler {
	return &MOSHandler{
		BaseHandler: base,
		mosService:  mosService,
	}
}

func (h *MOSHandler) RegisterRoutes(r *gin.RouterGroup) {
	// The MOS catalog is public; the intake form shows it before any login.
	r.GET("/mos", h.ListMOS)

	mos := r.Group("/mos")
	mos.Use(middleware.AuthMiddleware())
	{
		mos.POST("/suggest", h.SuggestMOS)
	}
}

func (h *MOSHandler) ListMOS(c *gin.Context) {
	resp, err := h.mosService.ListMOS()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MOSHandler) SuggestMOS(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.SuggestMOSRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.mosService.SuggestMOS(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
