package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/formforge/formforge/internal/application"
	"github.com/formforge/formforge/internal/domain/submission"
	"github.com/formforge/formforge/pkg/response"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	service *application.SubmissionService
}

func NewSubmissionHandler(service *application.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// ListSubmissions godoc
// @Summary List submissions, optionally filtered by form
// @Tags submissions
// @Produce json
// @Param formId query string false "Form ID filter"
// @Success 200 {array} submission.Submission
// @Failure 500 {object} response.ErrorResponse
// @Router /submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.service.ListSubmissions(c.Query("formId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch submissions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// GetSubmissionByID godoc
// @Summary Get submission by ID
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} submission.Submission
// @Failure 404 {object} response.ErrorResponse
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) GetSubmissionByID(c *gin.Context) {
	sub, err := h.service.GetSubmissionByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch submission"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// CreateSubmission godoc
// @Summary Submit answers to a form
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body submission.CreateSubmissionDTO true "Submission payload"
// @Success 201 {object} submission.Submission
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var input submission.CreateSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.service.CreateSubmission(input)
	if err != nil {
		var vErr *application.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
				Error:  vErr.Error(),
				Fields: vErr.Fields,
			})
		case errors.Is(err, application.ErrFormNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "form not found"})
		case errors.Is(err, application.ErrInvalidSubmissionStatus):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to create submission"})
		}
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// DeleteSubmission godoc
// @Summary Delete a submission
// @Tags submissions
// @Param id path string true "Submission ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /submissions/{id} [delete]
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	if err := h.service.DeleteSubmission(c.Param("id")); err != nil {
		if errors.Is(err, application.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to delete submission"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportSubmissions godoc
// @Summary Export one form's submissions as CSV
// @Tags submissions
// @Produce text/csv
// @Param formId query string true "Form ID"
// @Success 200 {string} string "CSV payload"
// @Failure 404 {object} response.ErrorResponse
// @Router /submissions/export [get]
func (h *SubmissionHandler) ExportSubmissions(c *gin.Context) {
	formID := c.Query("formId")
	if formID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "formId query parameter is required"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "submissions_"+formID+".csv"))

	if err := h.service.ExportCSV(formID, c.Writer); err != nil {
		if errors.Is(err, application.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to export submissions"})
		return
	}
}
