package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/velandev/website/internal/app/controllers"
	"github.com/velandev/website/internal/app/models/dto"
	"github.com/velandev/website/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	careerController *controllers.CareerController,
	adminController *controllers.AdminController,
	contactController *controllers.ContactController,
	chatController *controllers.ChatController,
	contentController *controllers.ContentController,
	adminMiddleware *middleware.AdminMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public content routes ---
	pages := v1.Group("/pages")
	{
		pages.GET("", contentController.ListPages)
		pages.GET("/:slug", contentController.GetPage)
	}

	// --- Public careers routes ---
	jobs := v1.Group("/jobs")
	{
		jobs.GET("", careerController.ListJobs)
		jobs.GET("/:id", careerController.GetJob)
	}
	v1.POST("/applications", careerController.SubmitApplication)

	// --- Public forms and widget ---
	v1.POST("/contact", contactController.SubmitInquiry)
	v1.POST("/chat", chatController.Reply)

	// --- Admin routes ---
	admin := v1.Group("/admin")
	{
		admin.POST("/login", adminController.Login)
		admin.POST("/logout", adminController.Logout)
		admin.GET("/session", adminController.Session)

		// Job mutations require a valid session cookie; the gate runs
		// before any store access.
		adminJobs := admin.Group("/jobs")
		adminJobs.Use(adminMiddleware.RequireSession())
		{
			adminJobs.POST("", careerController.CreateJob)
			adminJobs.PUT("/:id", careerController.UpdateJob)
			adminJobs.DELETE("/:id", careerController.DeleteJob)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
