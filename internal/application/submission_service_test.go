package application

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/formforge/formforge/internal/domain/form"
	"github.com/formforge/formforge/internal/domain/submission"
	"github.com/formforge/formforge/internal/repository"
	"github.com/formforge/formforge/internal/repository/mock"
)

// --------------------- Setup ---------------------
func setupSubmissionServiceMocks(t *testing.T) (*SubmissionService, *mock.MockFormRepo, *mock.MockSubmissionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock.NewMockFormRepo(ctrl)
	mockSub := mock.NewMockSubmissionRepo(ctrl)
	repos := &repository.Repos{
		Form:       mockForm,
		Submission: mockSub,
	}
	svc := NewSubmissionService(repos)
	return svc, mockForm, mockSub
}

func storedForm(t *testing.T, fields []form.Field) *form.Form {
	t.Helper()
	f := &form.Form{ID: "form-1", Name: "Contact", Slug: "contact", Status: form.FormStatusActive}
	assert.NoError(t, f.SetFieldList(fields))
	return f
}

func contactFields() []form.Field {
	return []form.Field{
		{ID: "hd", Type: form.FieldHeading, Label: "Get in touch"},
		{ID: "name", Type: form.FieldText, Label: "Name", Required: true},
		{ID: "email", Type: form.FieldEmail, Label: "Email", Required: true},
		{ID: "topics", Type: form.FieldCheckbox, Label: "Topics", Options: []string{"sales", "support"}},
	}
}

// --------------------- CreateSubmission ---------------------
func TestCreateSubmission_Success(t *testing.T) {
	svc, mockForm, mockSub := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID("form-1").Return(storedForm(t, contactFields()), nil)
	mockSub.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *submission.Submission) error {
		assert.Equal(t, "form-1", s.FormID)
		assert.Equal(t, submission.StatusCompleted, s.Status)
		return nil
	})

	sub, err := svc.CreateSubmission(submission.CreateSubmissionDTO{
		FormID: "form-1",
		Data: map[string]any{
			"name":  "Alice",
			"email": "alice@example.com",
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "form-1", sub.FormID)

	data, err := sub.DataMap()
	assert.NoError(t, err)
	assert.Equal(t, "Alice", data["name"])
	// unanswered checkbox group is frozen as an empty list
	assert.Equal(t, []any{}, data["topics"])
}

func TestCreateSubmission_ValidationError(t *testing.T) {
	svc, mockForm, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID("form-1").Return(storedForm(t, contactFields()), nil)

	_, err := svc.CreateSubmission(submission.CreateSubmissionDTO{
		FormID: "form-1",
		Data:   map[string]any{"email": "not-an-email"},
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Name is required", vErr.Fields["name"])
	assert.Equal(t, "Please enter a valid email address", vErr.Fields["email"])
}

func TestCreateSubmission_FormNotFound(t *testing.T) {
	svc, mockForm, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateSubmission(submission.CreateSubmissionDTO{FormID: "missing", Data: map[string]any{}})
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestCreateSubmission_DropsUnknownKeys(t *testing.T) {
	svc, mockForm, mockSub := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID("form-1").Return(storedForm(t, contactFields()), nil)
	mockSub.EXPECT().Create(gomock.Any()).Return(nil)

	sub, err := svc.CreateSubmission(submission.CreateSubmissionDTO{
		FormID: "form-1",
		Data: map[string]any{
			"name":   "Bob",
			"email":  "bob@example.com",
			"stray":  "dropped",
			"hd":     "display fields never persist",
			"topics": []any{"sales"},
		},
	})
	assert.NoError(t, err)

	data, err := sub.DataMap()
	assert.NoError(t, err)
	assert.NotContains(t, data, "stray")
	assert.NotContains(t, data, "hd")
	assert.Equal(t, []any{"sales"}, data["topics"])
}

func TestCreateSubmission_InvalidStatus(t *testing.T) {
	svc, mockForm, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID("form-1").Return(storedForm(t, nil), nil)

	bad := submission.SubmissionStatus("archived")
	_, err := svc.CreateSubmission(submission.CreateSubmissionDTO{
		FormID: "form-1",
		Data:   map[string]any{},
		Status: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidSubmissionStatus)
}

func TestCreateSubmission_ExplicitStatus(t *testing.T) {
	svc, mockForm, mockSub := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID("form-1").Return(storedForm(t, nil), nil)
	mockSub.EXPECT().Create(gomock.Any()).Return(nil)

	status := submission.StatusInReview
	sub, err := svc.CreateSubmission(submission.CreateSubmissionDTO{
		FormID: "form-1",
		Data:   map[string]any{},
		Status: &status,
	})
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusInReview, sub.Status)
}

// --------------------- GetSubmissionByID ---------------------
func TestGetSubmissionByID_Success(t *testing.T) {
	svc, _, mockSub := setupSubmissionServiceMocks(t)

	mockSub.EXPECT().FindByID("sub-1").Return(&submission.Submission{ID: "sub-1"}, nil)

	sub, err := svc.GetSubmissionByID("sub-1")
	assert.NoError(t, err)
	assert.Equal(t, "sub-1", sub.ID)
}

func TestGetSubmissionByID_NotFound(t *testing.T) {
	svc, _, mockSub := setupSubmissionServiceMocks(t)

	mockSub.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetSubmissionByID("missing")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

// --------------------- DeleteSubmission ---------------------
func TestDeleteSubmission_Success(t *testing.T) {
	svc, _, mockSub := setupSubmissionServiceMocks(t)

	mockSub.EXPECT().Delete("sub-1").Return(int64(1), nil)

	assert.NoError(t, svc.DeleteSubmission("sub-1"))
}

func TestDeleteSubmission_NotFound(t *testing.T) {
	svc, _, mockSub := setupSubmissionServiceMocks(t)

	mockSub.EXPECT().Delete("missing").Return(int64(0), nil)

	assert.ErrorIs(t, svc.DeleteSubmission("missing"), ErrSubmissionNotFound)
}

// --------------------- ListSubmissions ---------------------
func TestListSubmissions_FiltersByForm(t *testing.T) {
	svc, _, mockSub := setupSubmissionServiceMocks(t)

	mockSub.EXPECT().List("form-1").Return([]submission.Submission{{ID: "a"}, {ID: "b"}}, nil)

	subs, err := svc.ListSubmissions("form-1")
	assert.NoError(t, err)
	assert.Len(t, subs, 2)
}

// --------------------- ExportCSV ---------------------
func TestExportCSV(t *testing.T) {
	svc, mockForm, mockSub := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID("form-1").Return(storedForm(t, contactFields()), nil)

	by := "Alice"
	raw, _ := json.Marshal(map[string]any{
		"name":   "Alice",
		"email":  "alice@example.com",
		"topics": []string{"sales", "support"},
	})
	subs := []submission.Submission{{
		ID:          "sub-1",
		FormID:      "form-1",
		Data:        datatypes.JSON(raw),
		SubmittedBy: &by,
		Status:      submission.StatusCompleted,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}}
	mockSub.EXPECT().List("form-1").Return(subs, nil)

	var buf bytes.Buffer
	assert.NoError(t, svc.ExportCSV("form-1", &buf))

	out := buf.String()
	lines := bytes.Count([]byte(out), []byte("\n"))
	assert.Equal(t, 2, lines)
	// header uses labels, display-only fields get no column
	assert.Contains(t, out, "id,submitted_by,submitted_by_email,status,created_at,Name,Email,Topics")
	assert.NotContains(t, out, "Get in touch")
	assert.Contains(t, out, "sub-1,Alice,,completed,2025-06-01 12:00:00,Alice,alice@example.com,sales; support")
}

func TestExportCSV_FormNotFound(t *testing.T) {
	svc, mockForm, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

	var buf bytes.Buffer
	assert.ErrorIs(t, svc.ExportCSV("missing", &buf), ErrFormNotFound)
}

func TestExportCSV_RepoError(t *testing.T) {
	svc, mockForm, mockSub := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID("form-1").Return(storedForm(t, nil), nil)
	mockSub.EXPECT().List("form-1").Return(nil, errors.New("db down"))

	var buf bytes.Buffer
	assert.Error(t, svc.ExportCSV("form-1", &buf))
}
