package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sho11hei12-1998/Phone-Navi-App/configs"
	"github.com/sho11hei12-1998/Phone-Navi-App/controllers"
	"github.com/sho11hei12-1998/Phone-Navi-App/middlewares"
	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
	"github.com/sho11hei12-1998/Phone-Navi-App/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	phoneRepo := repository.NewPhoneRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	eventRepo := repository.NewEventRepository(db)
	requestRepo := repository.NewUpdateRequestRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	searchService := services.NewSearchService(phoneRepo, businessRepo)
	rankingService := services.NewRankingService(eventRepo, phoneRepo, businessRepo)
	keywordService := services.NewKeywordService(eventRepo, searchService)
	reviewService := services.NewReviewService(db, reviewRepo, phoneRepo, eventRepo)
	phoneService := services.NewPhoneService(phoneRepo, businessRepo, reviewRepo, eventRepo)
	businessService := services.NewBusinessService(db, businessRepo, requestRepo)
	authService := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	phoneCtrl := controllers.NewPhoneController(phoneService)
	searchCtrl := controllers.NewSearchController(searchService, reviewService, phoneService)
	rankingCtrl := controllers.NewRankingController(rankingService)
	keywordCtrl := controllers.NewKeywordController(keywordService)
	reviewCtrl := controllers.NewReviewController(reviewService)
	businessCtrl := controllers.NewBusinessController(businessService)
	authCtrl := controllers.NewAuthController(authService)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	// Public API
	api := r.Group("/api")
	{
		api.GET("/phones/recent", phoneCtrl.Recent)
		api.GET("/phones/:number", phoneCtrl.Detail)
		api.GET("/search", searchCtrl.Search)

		api.GET("/rankings/access", rankingCtrl.Access)
		api.GET("/rankings/reviews", rankingCtrl.Reviews)

		api.GET("/keywords/popular", keywordCtrl.Popular)
		api.GET("/keywords/popular-with-results", keywordCtrl.PopularWithResults)
		api.GET("/keywords/latest", keywordCtrl.Latest)

		api.POST("/reviews", reviewCtrl.Create)
		api.POST("/business-update-requests", businessCtrl.SubmitUpdateRequest)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/business-update-requests", businessCtrl.ListUpdateRequests)
		admin.PATCH("/business-update-requests/:id/approve", businessCtrl.ApproveUpdateRequest)
		admin.PATCH("/business-update-requests/:id/reject", businessCtrl.RejectUpdateRequest)
		admin.DELETE("/reviews/:id", reviewCtrl.Delete)
	}
}
