package handlers

import (
	"errors"
	"net/http"

	"github.com/formforge/formforge/internal/application"
	"github.com/formforge/formforge/internal/domain/form"
	"github.com/formforge/formforge/pkg/response"
	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// ListForms godoc
// @Summary List all forms with submission counts
// @Tags forms
// @Produce json
// @Success 200 {array} form.FormWithCount
// @Failure 500 {object} response.ErrorResponse
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.service.ListForms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch forms"})
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetFormByID godoc
// @Summary Get form by ID
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} form.Form
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [get]
func (h *FormHandler) GetFormByID(c *gin.Context) {
	f, err := h.service.GetFormByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch form"})
		return
	}
	c.JSON(http.StatusOK, f)
}

// GetFormBySlug godoc
// @Summary Get form by slug
// @Tags forms
// @Produce json
// @Param slug path string true "Form slug"
// @Success 200 {object} form.Form
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/slug/{slug} [get]
func (h *FormHandler) GetFormBySlug(c *gin.Context) {
	f, err := h.service.GetFormBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, application.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch form by slug"})
		return
	}
	c.JSON(http.StatusOK, f)
}

// CreateForm godoc
// @Summary Create a form
// @Tags forms
// @Accept json
// @Produce json
// @Param form body form.CreateFormDTO true "Form definition"
// @Success 201 {object} form.Form
// @Failure 400 {object} response.ErrorResponse
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.CreateForm(input)
	if err != nil {
		c.JSON(formErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, f)
}

// UpdateForm godoc
// @Summary Partially update a form
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param form body form.UpdateFormDTO true "Fields to update"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	var input form.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.UpdateForm(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, application.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "form not found"})
			return
		}
		c.JSON(formErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

// DeleteForm godoc
// @Summary Delete a form and its submissions
// @Tags forms
// @Param id path string true "Form ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	if err := h.service.DeleteForm(c.Param("id")); err != nil {
		if errors.Is(err, application.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to delete form"})
		return
	}
	c.Status(http.StatusNoContent)
}

// formErrorStatus maps form write failures onto the error taxonomy:
// malformed payloads and constraint violations are client errors,
// everything else is internal.
func formErrorStatus(err error) int {
	switch {
	case errors.Is(err, application.ErrDuplicateSlug),
		errors.Is(err, application.ErrEmptySlug),
		errors.Is(err, application.ErrInvalidStatus),
		errors.Is(err, form.ErrUnknownFieldType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
