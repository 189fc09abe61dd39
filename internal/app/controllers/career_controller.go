package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velandev/website/internal/app/models"
	"github.com/velandev/website/internal/app/models/dto"
	"github.com/velandev/website/internal/app/services"
	"github.com/velandev/website/internal/middleware"
	"github.com/velandev/website/internal/pkg/apperrors"
)

// CareerController handles job listings, admin job mutations, and public
// application intake
type CareerController struct {
	careerService services.CareerService
}

// NewCareerController creates a new CareerController
func NewCareerController(careerService services.CareerService) *CareerController {
	return &CareerController{
		careerService: careerService,
	}
}

// ListJobs returns all job postings
// @Summary List job postings
// @Description Retrieves all open roles, most recent first
// @Tags careers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Job} "Jobs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (c *CareerController) ListJobs(ctx *gin.Context) {
	jobs, err := c.careerService.ListJobs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(jobs))
}

// GetJob returns a single job posting
// @Summary Get job details
// @Description Retrieves a single open role by its ID
// @Tags careers
// @Produce json
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Job} "Job retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID format"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [get]
func (c *CareerController) GetJob(ctx *gin.Context) {
	id, ok := parseJobID(ctx)
	if !ok {
		return
	}

	job, err := c.careerService.GetJob(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(job))
}

// CreateJob creates a new job posting
// @Summary Create a job posting
// @Description Creates a new open role; requires an admin session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.JobRequest true "Job fields"
// @Success 201 {object} dto.APIResponse{data=models.Job} "Job created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/jobs [post]
func (c *CareerController) CreateJob(ctx *gin.Context) {
	var req dto.JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.careerService.CreateJob(ctx, jobFieldsFromRequest(req))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(job))
}

// UpdateJob replaces all fields of an existing job posting
// @Summary Update a job posting
// @Description Full-field replace of an open role; requires an admin session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Param request body dto.JobRequest true "Job fields"
// @Success 200 {object} dto.APIResponse{data=models.Job} "Job updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin session"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/jobs/{id} [put]
func (c *CareerController) UpdateJob(ctx *gin.Context) {
	id, ok := parseJobID(ctx)
	if !ok {
		return
	}

	var req dto.JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.careerService.UpdateJob(ctx, id, jobFieldsFromRequest(req))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(job))
}

// DeleteJob removes a job posting
// @Summary Delete a job posting
// @Description Physically deletes an open role; requires an admin session cookie. Deleting an absent job reports deleted=false.
// @Tags admin
// @Produce json
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DeleteJobResponse} "Delete result"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/jobs/{id} [delete]
func (c *CareerController) DeleteJob(ctx *gin.Context) {
	id, ok := parseJobID(ctx)
	if !ok {
		return
	}

	deleted, err := c.careerService.DeleteJob(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DeleteJobResponse{Deleted: deleted}))
}

// SubmitApplication records a job application and notifies the careers inbox
// @Summary Submit a job application
// @Description Stores the application and emails the careers inbox. A jobId referencing a removed job is accepted and treated as a general application.
// @Tags careers
// @Accept json
// @Produce json
// @Param request body dto.ApplicationRequest true "Application fields"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application stored"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 500 {object} dto.ErrorResponse "Email service not configured"
// @Failure 502 {object} dto.ErrorResponse "Application stored but notification failed"
// @Router /applications [post]
func (c *CareerController) SubmitApplication(ctx *gin.Context) {
	var req dto.ApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fields := models.ApplicationFields{
		JobID:       req.JobID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Portfolio:   req.Portfolio,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	}

	id, err := c.careerService.SubmitApplication(ctx, fields)
	if err != nil {
		// The application row is already committed when dispatch fails;
		// report the failure but hand the caller their application id.
		if errors.Is(err, apperrors.ErrNotificationFailed) && id > 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeMailDispatch, "Application stored but notification email failed")
			errorDetail = errorDetail.WithDetails(dto.ApplicationResponse{ApplicationID: id})
			ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ApplicationResponse{ApplicationID: id}))
}

// jobFieldsFromRequest maps the request DTO onto store fields
func jobFieldsFromRequest(req dto.JobRequest) models.JobFields {
	return models.JobFields{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
	}
}

// parseJobID reads the :id path parameter, responding with 400 on garbage
func parseJobID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job ID")
		errorDetail = errorDetail.WithDetails("Job ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
