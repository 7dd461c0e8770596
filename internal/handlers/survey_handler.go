package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruittrack/internal/middleware"
	"recruittrack/internal/services"
	"recruittrack/internal/services/dto"
)

type SurveyHandler struct {
	*BaseHandler
	surveyService services.SurveyService
}

func NewSurveyHandler(base *BaseHandler, surveyService services.SurveyService) *SurveyHandler {
	return &SurveyHandler{
		BaseHandler:   base,
		surveyService: surveyService,
	}
}

func (h *SurveyHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public: submitted from the QR landing page.
	r.POST("/surveys", h.SubmitSurvey)

	surveys := r.Group("/surveys")
	surveys.Use(middleware.AuthMiddleware())
	{
		surveys.GET("/my", h.MyResponses)
	}
}

func (h *SurveyHandler) SubmitSurvey(c *gin.Context) {
	var req dto.CreateSurveyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.surveyService.SubmitSurvey(&req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SurveyHandler) MyResponses(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.surveyService.MyResponses(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
