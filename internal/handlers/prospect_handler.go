package handlers

import (
	"net/http"

	"trustfluence_backend/internal/middleware"
	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/services"
	"trustfluence_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProspectHandler struct {
	*BaseHandler
	prospectService services.ProspectService
}

func NewProspectHandler(base *BaseHandler, prospectService services.ProspectService) *ProspectHandler {
	return &ProspectHandler{
		BaseHandler:     base,
		prospectService: prospectService,
	}
}

// RegisterRoutes регистрирует публичную подачу заявки и админский триаж
func (h *ProspectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Единственная точка входа на платформу для новых пользователей
	rg.POST("/prospects", h.Submit)

	admin := rg.Group("/admin/prospects")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("/:prospectId/approve", h.Approve)
		admin.POST("/:prospectId/reject", h.Reject)
	}
}

func (h *ProspectHandler) Submit(c *gin.Context) {
	var req dto.SubmitProspectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.prospectService.Submit(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ProspectHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	status := c.Query("status")

	db := h.GetDB(c)

	response, err := h.prospectService.List(db, status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProspectHandler) Approve(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.prospectService.Approve(db, c.Param("prospectId"), adminID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProspectHandler) Reject(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	// Тело с причиной опционально
	var req dto.RejectProspectRequest
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
	}

	db := h.GetDB(c)

	if err := h.prospectService.Reject(db, c.Param("prospectId"), adminID, req.Reason); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prospect rejected"})
}
