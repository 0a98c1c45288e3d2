package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/contribtrack/internal/app/controllers"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/middleware"
)

// Controllers groups every controller the router mounts
type Controllers struct {
	Auth         *controllers.AuthController
	Department   *controllers.DepartmentController
	Employee     *controllers.EmployeeController
	Contribution *controllers.ContributionController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	adminOrHOD := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleHOD)

	api := router.Group("/api")

	api.GET("/status", controllers.Status)

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)

		authProtected := auth.Group("")
		authProtected.Use(authMiddleware.JWTAuth())
		{
			authProtected.GET("/me", ctrl.Auth.GetProfile)
			authProtected.POST("/users", adminOnly, ctrl.Auth.CreateUser)
		}
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	departments := authenticated.Group("/departments")
	{
		departments.GET("", adminOnly, ctrl.Department.GetAllDepartments)
		departments.POST("", adminOnly, ctrl.Department.CreateDepartment)
		departments.GET("/:id", adminOrHOD, authMiddleware.DepartmentScope("id"), ctrl.Department.GetDepartmentByID)
		departments.PUT("/:id", adminOnly, ctrl.Department.UpdateDepartment)
	}

	employees := authenticated.Group("/employees")
	{
		employees.GET("", adminOrHOD, ctrl.Employee.GetEmployees)
		employees.POST("/seed", adminOnly, ctrl.Employee.SeedEmployees)
	}

	contributions := authenticated.Group("/contributions")
	{
		contributions.GET("/all", adminOnly, ctrl.Contribution.GetAllContributions)
		contributions.GET("/export", adminOnly, ctrl.Contribution.ExportContributions)
		contributions.GET("/department/:departmentId", adminOrHOD, authMiddleware.DepartmentScope("departmentId"), ctrl.Contribution.GetDepartmentContribution)
		contributions.POST("", adminOrHOD, authMiddleware.DepartmentScope("department"), ctrl.Contribution.CreateContribution)
		contributions.PUT("/:id", adminOrHOD, ctrl.Contribution.UpdateContribution)
		contributions.DELETE("/:id", adminOnly, ctrl.Contribution.DeleteContribution)
	}

	router.GET("/ping", controllers.Ping)
	router.NoRoute(middleware.NotFoundHandler())
}
