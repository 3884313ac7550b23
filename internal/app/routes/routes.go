package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/unidesk/registrar/internal/app/controllers"
	"github.com/unidesk/registrar/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public course routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/search", courseController.SearchCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	// --- Protected course routes ---
	coursesProtected := v1.Group("/courses")
	coursesProtected.Use(authMiddleware.JWTAuth())
	{
		coursesProtected.POST("", courseController.CreateCourse)
		coursesProtected.PUT("/:id", courseController.UpdateCourse)
		coursesProtected.DELETE("/:id", courseController.DeleteCourse)
	}
}
