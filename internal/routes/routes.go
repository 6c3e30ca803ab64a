package routes

import (
	"trustfluence_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes вешает все маршруты приложения на группу /api/v1
func RegisterRoutes(api *gin.RouterGroup, h *handlers.AppHandlers) {
	h.Auth.RegisterRoutes(api)
	h.User.RegisterRoutes(api)
	h.Prospect.RegisterRoutes(api)
	h.Influencer.RegisterRoutes(api)
	h.Review.RegisterRoutes(api)
	h.Report.RegisterRoutes(api)
}
