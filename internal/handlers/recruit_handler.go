package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruittrack/internal/middleware"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services"
	"recruittrack/internal/services/dto"
)

type RecruitHandler struct {
	*BaseHandler
	recruitService services.RecruitService
}

func NewRecruitHandler(base *BaseHandler, recruitService services.RecruitService) *RecruitHandler {
	return &RecruitHandler{
		BaseHandler:    base,
		recruitService: recruitService,
	}
}

func (h *RecruitHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public intake: the application form posts here without a token.
	r.POST("/recruits", h.CreateRecruit)

	recruits := r.Group("/recruits")
	recruits.Use(middleware.AuthMiddleware())
	{
		recruits.GET("", h.ListRecruits)
		recruits.GET("/:recruitId", h.GetRecruit)
		recruits.PATCH("/:recruitId", h.UpdateRecruit)
		recruits.PATCH("/:recruitId/status", h.UpdateStatus)
		recruits.GET("/:recruitId/notes", h.GetNotes)
		recruits.PATCH("/:recruitId/notes", h.AddNote)
		recruits.DELETE("/:recruitId", h.DeleteRecruit)
	}
}

func (h *RecruitHandler) CreateRecruit(c *gin.Context) {
	var req dto.CreateRecruitRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// Authenticated recruiters may also use the intake form directly.
	actorID := middleware.GetUserID(c)

	recruit, err := h.recruitService.CreateRecruit(c.Request.Context(), &req, actorID, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recruit)
}

func (h *RecruitHandler) ListRecruits(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria repositories.RecruitCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	resp, err := h.recruitService.ListRecruits(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecruitHandler) GetRecruit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	recruit, err := h.recruitService.GetRecruit(userID, c.Param("recruitId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recruit)
}

func (h *RecruitHandler) UpdateRecruit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecruitRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	recruit, err := h.recruitService.UpdateRecruit(userID, c.Param("recruitId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recruit)
}

func (h *RecruitHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	recruit, err := h.recruitService.UpdateStatus(userID, c.Param("recruitId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recruit)
}

func (h *RecruitHandler) GetNotes(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	notes, err := h.recruitService.GetNotes(userID, c.Param("recruitId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func (h *RecruitHandler) AddNote(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddNoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	note, err := h.recruitService.AddNote(userID, c.Param("recruitId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *RecruitHandler) DeleteRecruit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.recruitService.DeleteRecruit(userID, c.Param("recruitId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
