package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruittrack/internal/middleware"
	"recruittrack/internal/services"
	"recruittrack/internal/services/dto"
)

type ShipperHandler struct {
	*BaseHandler
	shipperService services.ShipperService
}

func NewShipperHandler(base *BaseHandler, shipperService services.ShipperService) *ShipperHandler {
	return &ShipperHandler{
		BaseHandler:    base,
		shipperService: shipperService,
	}
}

func (h *ShipperHandler) RegisterRoutes(r *gin.RouterGroup) {
	shippers := r.Group("/shippers")
	shippers.Use(middleware.AuthMiddleware())
	{
		shippers.GET("", h.ListShippers)
		shippers.GET("/candidates", h.ListCandidates)
	}

	recruits := r.Group("/recruits")
	recruits.Use(middleware.AuthMiddleware())
	{
		recruits.PATCH("/:recruitId/shipping", h.UpdateShipping)
	}
}

func (h *ShipperHandler) ListShippers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.shipperService.ListShippers(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ShipperHandler) ListCandidates(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	candidates, err := h.shipperService.ListCandidates(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

func (h *ShipperHandler) UpdateShipping(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateShippingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	recruit, err := h.shipperService.UpdateShipping(c.Request.Context(), userID, c.Param("recruitId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recruit)
}
