package application

import (
	"errors"

	"github.com/formforge/formforge/internal/domain/form"
	"github.com/formforge/formforge/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound  = errors.New("form not found")
	ErrDuplicateSlug = errors.New("a form with this slug already exists")
	ErrEmptySlug     = errors.New("form name must contain at least one alphanumeric character")
	ErrInvalidStatus = errors.New("invalid form status")
)

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{Repos: repos}
}

// ListForms returns every form, newest first, annotated with its
// submission count.
func (s *FormService) ListForms() ([]form.FormWithCount, error) {
	return s.Repos.Form.ListWithSubmissionCount()
}

func (s *FormService) GetFormByID(id string) (*form.Form, error) {
	f, err := s.Repos.Form.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFormNotFound
	}
	return f, err
}

func (s *FormService) GetFormBySlug(slug string) (*form.Form, error) {
	f, err := s.Repos.Form.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFormNotFound
	}
	return f, err
}

func (s *FormService) CreateForm(input form.CreateFormDTO) (*form.Form, error) {
	slug := input.Slug
	if slug == "" {
		slug = form.DeriveSlug(input.Name)
	}
	if slug == "" {
		return nil, ErrEmptySlug
	}

	status := form.FormStatusActive
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		status = *input.Status
	}

	fields, err := form.NormalizeFields(input.Fields, slug)
	if err != nil {
		return nil, err
	}

	f := &form.Form{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Status:      status,
	}
	if err := f.SetFieldList(fields); err != nil {
		return nil, err
	}

	if err := s.Repos.Form.Create(f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return f, nil
}

// UpdateForm merges the supplied fields onto the stored record. Nil DTO
// members leave the stored value untouched; updated_at is stamped by the
// store on save.
func (s *FormService) UpdateForm(id string, input form.UpdateFormDTO) (*form.Form, error) {
	f, err := s.Repos.Form.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		f.Name = *input.Name
	}
	if input.Slug != nil {
		if *input.Slug == "" {
			return nil, ErrEmptySlug
		}
		f.Slug = *input.Slug
	}
	if input.Description != nil {
		f.Description = input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		f.Status = *input.Status
	}
	if input.Fields != nil {
		fields, err := form.NormalizeFields(*input.Fields, f.Slug)
		if err != nil {
			return nil, err
		}
		if err := f.SetFieldList(fields); err != nil {
			return nil, err
		}
	}

	if err := s.Repos.Form.Update(f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return f, nil
}

// DeleteForm removes a form; the store cascades the delete to every
// submission referencing it.
func (s *FormService) DeleteForm(id string) error {
	rows, err := s.Repos.Form.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFormNotFound
	}
	return nil
}
