package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adityar/sekolahku/internal/app/controllers"
	"github.com/adityar/sekolahku/internal/app/models"
	"github.com/adityar/sekolahku/internal/app/models/dto"
	"github.com/adityar/sekolahku/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	schoolController *controllers.SchoolController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.PUT("/auth/profile", authController.UpdateProfile)
		authenticated.PUT("/auth/password", authController.ChangePassword)

		authenticated.GET("/dashboard", schoolController.GetDashboard)

		schools := authenticated.Group("/schools")
		{
			schools.GET("", schoolController.GetSchools)
			schools.GET("/:id", schoolController.GetSchoolByID)

			// School students
			schools.GET("/:id/students", studentController.GetStudents)
			schools.GET("/:id/students/import/template", studentController.DownloadTemplate)
			schools.GET("/:id/students/export", studentController.ExportStudents)
			schools.GET("/:id/students/:studentId", studentController.GetStudentByID)

			// School teachers
			schools.GET("/:id/teachers", teacherController.GetTeachers)
			schools.GET("/:id/teachers/:teacherId", teacherController.GetTeacherByID)

			// Mutating routes are restricted to console administrators
			schoolsAdminProtected := schools.Group("")
			schoolsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				schoolsAdminProtected.POST("", schoolController.CreateSchool)
				schoolsAdminProtected.PUT("/:id", schoolController.UpdateSchool)
				schoolsAdminProtected.DELETE("/:id", schoolController.DeleteSchool)

				schoolsAdminProtected.POST("/:id/students", studentController.CreateStudent)
				schoolsAdminProtected.POST("/:id/students/import", studentController.ImportStudents)
				schoolsAdminProtected.PUT("/:id/students/:studentId", studentController.UpdateStudent)
				schoolsAdminProtected.DELETE("/:id/students/:studentId", studentController.DeleteStudent)

				schoolsAdminProtected.POST("/:id/teachers", teacherController.CreateTeacher)
				schoolsAdminProtected.PUT("/:id/teachers/:teacherId", teacherController.UpdateTeacher)
				schoolsAdminProtected.DELETE("/:id/teachers/:teacherId", teacherController.DeleteTeacher)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
