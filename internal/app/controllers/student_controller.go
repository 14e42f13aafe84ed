package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adityar/sekolahku/internal/app/models/dto"
	"github.com/adityar/sekolahku/internal/app/services"
	"github.com/adityar/sekolahku/internal/middleware"
	"github.com/adityar/sekolahku/internal/pkg/helpers"
	"github.com/adityar/sekolahku/internal/pkg/spreadsheet"
)

// StudentController handles student endpoints, including the spreadsheet
// import/export pipeline.
type StudentController struct {
	studentService services.StudentService
	importService  services.StudentImportService
	maxUploadBytes int64
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, importService services.StudentImportService, maxUploadBytes int64) *StudentController {
	return &StudentController{
		studentService: studentService,
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateStudent handles single student creation
// @Summary Create a student
// @Description Creates a student in a school; the school's cached count is incremented in the same transaction
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id}/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if !middleware.ValidateStruct(ctx, req) {
		return
	}

	id, err := c.studentService.CreateStudent(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves a student
// @Summary Get student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /schools/{id}/students/{studentId} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// GetStudents lists a school's students
// @Summary List students
// @Description Retrieves a paginated list of a school's students, optionally filtered by class
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param class query string false "Class filter (exact match)"
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id}/students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students, total, err := c.studentService.GetStudents(ctx, ctx.Param("id"), ctx.Query("class"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		items = append(items, dto.FromStudent(student))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.StudentListResponse{
			Students:   items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateStudent updates a student
// @Summary Update a student
// @Description Updates a student's fields; cached counts are untouched
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param studentId path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /schools/{id}/students/{studentId} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if !middleware.ValidateStruct(ctx, req) {
		return
	}

	id := ctx.Param("studentId")
	if err := c.studentService.UpdateStudent(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Deletes a student; the school's cached count is decremented in the same transaction
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /schools/{id}/students/{studentId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}

// DownloadTemplate serves the import template
// @Summary Download the import template
// @Description Serves the xlsx import template: one header row, no data rows
// @Tags students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "School ID"
// @Success 200 {file} binary "Template file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /schools/{id}/students/import/template [get]
func (c *StudentController) DownloadTemplate(ctx *gin.Context) {
	data, err := c.importService.Template()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+services.TemplateFileName+`"`)
	ctx.Data(http.StatusOK, spreadsheet.ContentType, data)
}

// ImportStudents validates an uploaded spreadsheet and commits a clean batch
// @Summary Import students from a spreadsheet
// @Description Validates the uploaded file; a clean batch is committed atomically together with the school's +N counter delta. With dryRun=true nothing is written.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param file formData file true "Filled-in import template (.xlsx)"
// @Param dryRun query bool false "Validate only, never commit" default(false)
// @Success 200 {object} dto.APIResponse{data=dto.ImportValidationResult} "Validation outcome (rejected batch or dry run)"
// @Success 201 {object} dto.APIResponse{data=dto.ImportCommitResponse} "Batch committed"
// @Failure 400 {object} dto.ErrorResponse "Missing or oversized file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 502 {object} dto.ErrorResponse "Storage failure, nothing committed"
// @Router /schools/{id}/students/import [post]
func (c *StudentController) ImportStudents(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Upload must include a 'file' form field").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if fileHeader.Size > c.maxUploadBytes {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Uploaded file is too large")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeImportFileBroken, "Uploaded file could not be opened")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, c.maxUploadBytes+1))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeImportFileBroken, "Uploaded file could not be read")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if int64(len(data)) > c.maxUploadBytes {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Uploaded file is too large")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	dryRun := ctx.Query("dryRun") == "true"
	batch, err := c.importService.Import(ctx, ctx.Param("id"), data, dryRun)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !batch.Clean() || dryRun {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      importResult(batch),
			Timestamp: time.Now(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.ImportCommitResponse{Imported: len(batch.Candidates)},
		Timestamp: time.Now(),
	})
}

// ExportStudents serves a school's students as a spreadsheet
// @Summary Export students to a spreadsheet
// @Description Serves an xlsx with the school's students (optionally a single class) in listing order
// @Tags students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param class query string false "Class filter (exact match)"
// @Success 200 {file} binary "Export file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id}/students/export [get]
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	data, fileName, err := c.importService.Export(ctx, ctx.Param("id"), ctx.Query("class"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	ctx.Data(http.StatusOK, spreadsheet.ContentType, data)
}

// importResult flattens a batch into the wire shape
func importResult(batch *services.ImportBatch) dto.ImportValidationResult {
	result := dto.ImportValidationResult{
		Valid:       batch.Clean(),
		Candidates:  len(batch.Candidates),
		TotalErrors: batch.TotalErrors,
	}
	for _, re := range batch.Errors {
		result.Errors = append(result.Errors, dto.ImportRowError{Row: re.Row, Message: re.Message})
	}
	return result
}
