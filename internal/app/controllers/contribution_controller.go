package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/app/services"
	"github.com/yigit/contribtrack/internal/middleware"
	"github.com/yigit/contribtrack/internal/pkg/export"
)

// ContributionController handles contribution endpoints
type ContributionController struct {
	contributionService *services.ContributionService
	exportService       *services.ExportService
}

// NewContributionController creates a new ContributionController
func NewContributionController(contributionService *services.ContributionService, exportService *services.ExportService) *ContributionController {
	return &ContributionController{
		contributionService: contributionService,
		exportService:       exportService,
	}
}

// CreateContribution submits a department allocation
// @Summary Submit contribution
// @Description Records academy, intensive and niat percentages (summing to 100) for a department and cycle. An existing record for the same department and cycle is returned with a 409 and left untouched.
// @Tags contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateContributionRequest true "Contribution"
// @Success 201 {object} dto.APIResponse{data=models.Contribution} "Contribution submitted"
// @Failure 400 {object} dto.APIResponse{errors=[]validation.FieldError} "Invalid department or allocation"
// @Failure 403 {object} dto.APIResponse "Department belongs to another HOD"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Failure 409 {object} dto.APIResponse{data=models.Contribution} "Contribution already exists for the cycle"
// @Router /contributions [post]
func (c *ContributionController) CreateContribution(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	var req dto.CreateContributionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	contribution, err := c.contributionService.Create(ctx.Request.Context(), caller, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(contribution, "Contribution submitted successfully."))
}

// UpdateContribution merges changes into a contribution
// @Summary Update contribution
// @Description Updates any of academy, intensive, niat, remarks and cycle. The merged allocation must still sum to 100.
// @Tags contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contribution ID"
// @Param request body dto.UpdateContributionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Contribution} "Contribution updated"
// @Failure 400 {object} dto.APIResponse{errors=[]validation.FieldError} "Invalid id or allocation"
// @Failure 403 {object} dto.APIResponse "Department belongs to another HOD"
// @Failure 404 {object} dto.APIResponse "Contribution not found"
// @Failure 409 {object} dto.APIResponse "Cycle already used by another contribution"
// @Router /contributions/{id} [put]
func (c *ContributionController) UpdateContribution(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	var req dto.UpdateContributionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	contribution, err := c.contributionService.Update(ctx.Request.Context(), caller, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contribution, "Contribution updated successfully."))
}

// GetAllContributions lists contributions
// @Summary List contributions
// @Description Lists every contribution, newest first
// @Tags contributions
// @Produce json
// @Security BearerAuth
// @Param cycle query string false "Cycle"
// @Success 200 {object} dto.APIResponse{data=[]models.Contribution} "Contributions"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /contributions/all [get]
func (c *ContributionController) GetAllContributions(ctx *gin.Context) {
	contributions, err := c.contributionService.List(ctx.Request.Context(), ctx.Query("cycle"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contributions, ""))
}

// GetDepartmentContribution returns a department's contribution
// @Summary Department contribution
// @Description Returns the department's contribution for the given cycle, or its most recent one
// @Tags contributions
// @Produce json
// @Security BearerAuth
// @Param departmentId path string true "Department ID"
// @Param cycle query string false "Cycle"
// @Success 200 {object} dto.APIResponse{data=models.Contribution} "Contribution"
// @Failure 400 {object} dto.APIResponse "Invalid department id"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Contribution not found for this department"
// @Router /contributions/department/{departmentId} [get]
func (c *ContributionController) GetDepartmentContribution(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	contribution, err := c.contributionService.GetByDepartment(ctx.Request.Context(), caller, ctx.Param("departmentId"), ctx.Query("cycle"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contribution, ""))
}

// DeleteContribution removes a contribution
// @Summary Delete contribution
// @Tags contributions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contribution ID"
// @Success 200 {object} dto.APIResponse "Contribution deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid contribution id"
// @Failure 404 {object} dto.APIResponse "Contribution not found"
// @Router /contributions/{id} [delete]
func (c *ContributionController) DeleteContribution(ctx *gin.Context) {
	if err := c.contributionService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Contribution deleted successfully."))
}

// ExportContributions streams the contributions workbook
// @Summary Export contributions
// @Description Downloads contributions as an .xlsx workbook
// @Tags contributions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param cycle query string false "Cycle"
// @Success 200 {file} file "Workbook"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /contributions/export [get]
func (c *ContributionController) ExportContributions(ctx *gin.Context) {
	data, fileName, err := c.exportService.Export(ctx.Request.Context(), ctx.Query("cycle"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	ctx.Data(http.StatusOK, export.ContentType, data)
}
