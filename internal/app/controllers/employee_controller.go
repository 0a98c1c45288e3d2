package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/app/services"
	"github.com/yigit/contribtrack/internal/middleware"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

// EmployeeController handles employee endpoints
type EmployeeController struct {
	employeeService *services.EmployeeService
	logger          zerolog.Logger
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService *services.EmployeeService, logger zerolog.Logger) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		logger:          logger,
	}
}

// GetEmployees lists employees
// @Summary List employees
// @Description Lists employees, optionally for one department. HODs only see their own department.
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Employee} "Employees"
// @Failure 400 {object} dto.APIResponse "Invalid department id"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /employees [get]
func (c *EmployeeController) GetEmployees(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	employees, err := c.employeeService.List(ctx.Request.Context(), caller, ctx.Query("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(employees, ""))
}

// SeedEmployees bulk inserts employees
// @Summary Seed employees
// @Description Inserts employees in bulk. Existing empIds are skipped and reported with a 409.
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SeedEmployeesRequest true "Employees"
// @Success 201 {object} dto.APIResponse{data=[]models.Employee} "Employees created"
// @Failure 400 {object} dto.APIResponse "Invalid employee entry"
// @Failure 409 {object} dto.APIResponse "Duplicate employee records detected"
// @Router /employees/seed [post]
func (c *EmployeeController) SeedEmployees(ctx *gin.Context) {
	var req dto.SeedEmployeesRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.employeeService.Seed(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) && result != nil {
			c.logger.Warn().
				Strs("duplicates", result.Duplicates).
				Int("inserted", len(result.Inserted)).
				Msg("Employee seed skipped duplicates")
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result.Inserted, "Employees created successfully."))
}
