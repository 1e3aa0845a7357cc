package application

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/formforge/formforge/internal/domain/form"
	"github.com/formforge/formforge/internal/domain/submission"
	"github.com/formforge/formforge/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound      = errors.New("submission not found")
	ErrInvalidSubmissionStatus = errors.New("invalid submission status")
)

// ValidationError carries the per-field breakdown for a rejected
// submission payload.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "submission data failed validation"
}

type SubmissionService struct {
	Repos *repository.Repos
}

func NewSubmissionService(repos *repository.Repos) *SubmissionService {
	return &SubmissionService{Repos: repos}
}

func (s *SubmissionService) ListSubmissions(formID string) ([]submission.Submission, error) {
	return s.Repos.Submission.List(formID)
}

func (s *SubmissionService) GetSubmissionByID(id string) (*submission.Submission, error) {
	sub, err := s.Repos.Submission.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	return sub, err
}

// CreateSubmission validates the payload against the authoritative stored
// form. The field list is re-fetched server-side rather than trusted from
// the client, and the persisted data map is a snapshot keyed by exactly
// the form's current input field ids.
func (s *SubmissionService) CreateSubmission(input submission.CreateSubmissionDTO) (*submission.Submission, error) {
	f, err := s.Repos.Form.FindByID(input.FormID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	fields, err := f.FieldList()
	if err != nil {
		return nil, err
	}

	validator := form.NewValidator(fields)
	if fieldErrs := validator.Validate(input.Data); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	status := submission.StatusCompleted
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidSubmissionStatus
		}
		status = *input.Status
	}

	snapshot := buildSnapshot(fields, input.Data)
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	sub := &submission.Submission{
		FormID:           f.ID,
		Data:             datatypes.JSON(raw),
		SubmittedBy:      input.SubmittedBy,
		SubmittedByEmail: input.SubmittedByEmail,
		Status:           status,
	}
	if err := s.Repos.Submission.Create(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) DeleteSubmission(id string) error {
	rows, err := s.Repos.Submission.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

// buildSnapshot freezes the answer map: one key per input field on the
// form, unknown keys dropped, absent answers filled with the field kind's
// zero value.
func buildSnapshot(fields []form.Field, data map[string]any) map[string]any {
	snapshot := make(map[string]any)
	for _, fld := range fields {
		if !fld.Type.Known() || fld.Type.DisplayOnly() {
			continue
		}
		if value, ok := data[fld.ID]; ok && value != nil {
			snapshot[fld.ID] = value
			continue
		}
		if fld.Type == form.FieldCheckbox {
			snapshot[fld.ID] = []string{}
		} else {
			snapshot[fld.ID] = ""
		}
	}
	return snapshot
}

// ExportCSV streams one form's submissions as CSV: submission metadata
// columns followed by one column per current input field.
func (s *SubmissionService) ExportCSV(formID string, w io.Writer) error {
	f, err := s.Repos.Form.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFormNotFound
		}
		return err
	}

	fields, err := f.FieldList()
	if err != nil {
		return err
	}
	var inputs []form.Field
	for _, fld := range fields {
		if fld.Type.Known() && !fld.Type.DisplayOnly() {
			inputs = append(inputs, fld)
		}
	}

	subs, err := s.Repos.Submission.List(formID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"id", "submitted_by", "submitted_by_email", "status", "created_at"}
	for _, fld := range inputs {
		header = append(header, csvColumnName(fld))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, sub := range subs {
		data, err := sub.DataMap()
		if err != nil {
			return err
		}
		row := []string{
			sub.ID,
			derefOrEmpty(sub.SubmittedBy),
			derefOrEmpty(sub.SubmittedByEmail),
			string(sub.Status),
			sub.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for _, fld := range inputs {
			row = append(row, csvCell(data[fld.ID]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvColumnName(fld form.Field) string {
	if fld.Label != "" {
		return fld.Label
	}
	return fld.ID
}

func csvCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, "; ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(v)
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
