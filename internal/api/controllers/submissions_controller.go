package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oksimin/internal/models/db_models"
	"oksimin/internal/models/request_models"
	"oksimin/internal/services"
	"oksimin/internal/validators"
	"oksimin/pkg/utils"
)

type SubmissionsController struct {
	submissionService services.SubmissionServiceInterface
}

func NewSubmissionsController(submissionService services.SubmissionServiceInterface) *SubmissionsController {
	return &SubmissionsController{submissionService: submissionService}
}

// CreateSubmission is the anonymous public intake endpoint. The client IP
// is recorded with the submission but never echoed back.
func (ctl *SubmissionsController) CreateSubmission(c *gin.Context) {
	var req request_models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verrs := validators.ValidateCreateSubmission(req); len(verrs) > 0 {
		utils.RespondValidationErrors(c, verrs)
		return
	}

	var submitterIP *string
	if ip := c.ClientIP(); ip != "" {
		submitterIP = &ip
	}

	submission, err := ctl.submissionService.Create(req, submitterIP, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, submission, "Submission received and pending review")
}

func (ctl *SubmissionsController) GetPendingCount(c *gin.Context) {
	count, err := ctl.submissionService.GetPendingCount(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"pendingCount": count}, "Pending count fetched successfully")
}

func (ctl *SubmissionsController) GetSubmissionByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	submission, err := ctl.submissionService.GetByID(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, submission, "Submission fetched successfully")
}

// ListSubmissions filters by the optional status query parameter; absent
// means all statuses.
func (ctl *SubmissionsController) ListSubmissions(c *gin.Context) {
	var status *db_models.SubmissionStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := db_models.ParseSubmissionStatus(raw)
		if !ok {
			utils.RespondError(c, http.StatusBadRequest, "Status must be pending, approved or rejected")
			return
		}
		status = &parsed
	}

	submissions, err := ctl.submissionService.ListByStatus(status, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, submissions, "Submissions fetched successfully")
}
