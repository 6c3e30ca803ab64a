package handlers

import (
	"net/http"

	"trustfluence_backend/internal/middleware"
	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/services"
	"trustfluence_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ReportHandler - админский триаж жалоб на отзывы
type ReportHandler struct {
	*BaseHandler
	reportService services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
	}
}

func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/review-reports")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.PATCH("/:reportId", h.UpdateStatus)
	}
}

func (h *ReportHandler) List(c *gin.Context) {
	var query dto.ReportListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	response, err := h.reportService.List(db, &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateReportStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.reportService.UpdateStatus(db, c.Param("reportId"), adminID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
