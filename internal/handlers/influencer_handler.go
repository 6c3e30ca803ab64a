package handlers

import (
	"net/http"

	"trustfluence_backend/internal/middleware"
	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/services"
	"trustfluence_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InfluencerHandler struct {
	*BaseHandler
	influencerService services.InfluencerService
}

func NewInfluencerHandler(base *BaseHandler, influencerService services.InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{
		BaseHandler:       base,
		influencerService: influencerService,
	}
}

// RegisterRoutes регистрирует каталог (для авторизованных) и админский CRUD
func (h *InfluencerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	influencers := rg.Group("/influencers")
	influencers.Use(middleware.AuthMiddleware())
	{
		influencers.GET("/search", h.Search)
		// Конкретные пути регистрируем до параметризованного
		influencers.GET("/recently-viewed", h.RecentlyViewed)
		influencers.GET("/:influencerId", h.GetDetail)
	}

	admin := rg.Group("/admin/influencers")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PUT("/:influencerId", h.Update)
	}
}

func (h *InfluencerHandler) Search(c *gin.Context) {
	var query dto.InfluencerSearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	response, err := h.influencerService.Search(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InfluencerHandler) GetDetail(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.influencerService.GetDetail(db, c.Param("influencerId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InfluencerHandler) RecentlyViewed(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	response, err := h.influencerService.RecentlyViewed(db, userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InfluencerHandler) Create(c *gin.Context) {
	var req dto.CreateInfluencerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.influencerService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *InfluencerHandler) Update(c *gin.Context) {
	var req dto.UpdateInfluencerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.influencerService.Update(db, c.Param("influencerId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
