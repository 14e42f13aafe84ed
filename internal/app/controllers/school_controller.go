package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adityar/sekolahku/internal/app/models"
	"github.com/adityar/sekolahku/internal/app/models/dto"
	"github.com/adityar/sekolahku/internal/app/services"
	"github.com/adityar/sekolahku/internal/middleware"
	"github.com/adityar/sekolahku/internal/pkg/helpers"
)

// SchoolController handles school endpoints
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{
		schoolService: schoolService,
	}
}

// CreateSchool handles school creation
// @Summary Create a new school
// @Description Creates a new school; student and teacher counts start at zero
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSchoolRequest true "School information"
// @Success 201 {object} dto.APIResponse{data=dto.SchoolResponse} "School created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "School already exists"
// @Router /schools [post]
func (c *SchoolController) CreateSchool(ctx *gin.Context) {
	var req dto.CreateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	school := &models.School{Name: req.Name, Address: req.Address}
	id, err := c.schoolService.CreateSchool(ctx, school)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.schoolService.GetSchoolByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromSchool(created),
		Timestamp: time.Now(),
	})
}

// GetSchoolByID retrieves a school by ID
// @Summary Get school details
// @Description Retrieves a school with its cached student and teacher counts
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Success 200 {object} dto.APIResponse{data=dto.SchoolResponse} "School retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id} [get]
func (c *SchoolController) GetSchoolByID(ctx *gin.Context) {
	school, err := c.schoolService.GetSchoolByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromSchool(school),
		Timestamp: time.Now(),
	})
}

// GetSchools lists schools
// @Summary List schools
// @Description Retrieves a paginated list of schools, optionally filtered by name
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name filter (substring)"
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.SchoolListResponse} "Schools retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /schools [get]
func (c *SchoolController) GetSchools(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	search := ctx.Query("search")

	schools, total, err := c.schoolService.GetSchools(ctx, search, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.SchoolResponse, 0, len(schools))
	for _, school := range schools {
		items = append(items, dto.FromSchool(school))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SchoolListResponse{
			Schools:    items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateSchool updates a school's name and address
// @Summary Update a school
// @Description Updates a school's name and address; member counts are not client-writable
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param request body dto.UpdateSchoolRequest true "Updated school information"
// @Success 200 {object} dto.APIResponse{data=dto.SchoolResponse} "School updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id} [put]
func (c *SchoolController) UpdateSchool(ctx *gin.Context) {
	var req dto.UpdateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id := ctx.Param("id")
	school := &models.School{ID: id, Name: req.Name, Address: req.Address}
	if err := c.schoolService.UpdateSchool(ctx, school); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.schoolService.GetSchoolByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromSchool(updated),
		Timestamp: time.Now(),
	})
}

// DeleteSchool deletes a school
// @Summary Delete a school
// @Description Deletes a school; refused while the school still has students or teachers
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Success 200 {object} dto.APIResponse "School deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 409 {object} dto.ErrorResponse "School still has members"
// @Router /schools/{id} [delete]
func (c *SchoolController) DeleteSchool(ctx *gin.Context) {
	if err := c.schoolService.DeleteSchool(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}

// GetDashboard returns console-wide totals
// @Summary Dashboard totals
// @Description Returns the number of schools and the summed cached student/teacher counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Totals retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /dashboard [get]
func (c *SchoolController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.schoolService.GetDashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dashboard,
		Timestamp: time.Now(),
	})
}
