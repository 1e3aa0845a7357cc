package application

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/formforge/formforge/internal/domain/form"
	"github.com/formforge/formforge/internal/repository"
	"github.com/formforge/formforge/internal/repository/mock"
)

// --------------------- Setup ---------------------
func setupFormServiceMocks(t *testing.T) (*FormService, *mock.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock.NewMockFormRepo(ctrl)
	repos := &repository.Repos{
		Form: mockForm,
	}
	svc := NewFormService(repos)
	return svc, mockForm
}

func statusPtr(s form.FormStatus) *form.FormStatus { return &s }

// --------------------- CreateForm ---------------------
func TestCreateForm_DerivesSlug(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		assert.Equal(t, "contact_us", f.Slug)
		assert.Equal(t, form.FormStatusActive, f.Status)
		return nil
	})

	created, err := svc.CreateForm(form.CreateFormDTO{Name: "Contact Us!"})
	assert.NoError(t, err)
	assert.Equal(t, "contact_us", created.Slug)
}

func TestCreateForm_ExplicitSlugWins(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := svc.CreateForm(form.CreateFormDTO{Name: "Contact Us", Slug: "custom_slug"})
	assert.NoError(t, err)
	assert.Equal(t, "custom_slug", created.Slug)
}

func TestCreateForm_EmptySlug(t *testing.T) {
	svc, _ := setupFormServiceMocks(t)

	_, err := svc.CreateForm(form.CreateFormDTO{Name: "!!!"})
	assert.ErrorIs(t, err, ErrEmptySlug)
}

func TestCreateForm_DuplicateSlug(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.CreateForm(form.CreateFormDTO{Name: "Contact Us"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestCreateForm_InvalidStatus(t *testing.T) {
	svc, _ := setupFormServiceMocks(t)

	_, err := svc.CreateForm(form.CreateFormDTO{
		Name:   "Contact Us",
		Status: statusPtr(form.FormStatus("archived")),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateForm_UnknownFieldKind(t *testing.T) {
	svc, _ := setupFormServiceMocks(t)

	_, err := svc.CreateForm(form.CreateFormDTO{
		Name:   "Contact Us",
		Fields: []form.Field{{Type: form.FieldType("hologram")}},
	})
	assert.ErrorIs(t, err, form.ErrUnknownFieldType)
}

func TestCreateForm_AssignsFieldIDs(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := svc.CreateForm(form.CreateFormDTO{
		Name: "Survey",
		Fields: []form.Field{
			{Type: form.FieldText, Label: "Name"},
			{ID: "field_email_survey_keep", Type: form.FieldEmail, Label: "Email"},
		},
	})
	assert.NoError(t, err)

	fields, err := created.FieldList()
	assert.NoError(t, err)
	assert.Len(t, fields, 2)
	assert.True(t, strings.HasPrefix(fields[0].ID, "field_text_survey_"), fields[0].ID)
	assert.Equal(t, "field_email_survey_keep", fields[1].ID)
}

// --------------------- GetForm ---------------------
func TestGetFormByID_Success(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID("abc").Return(&form.Form{ID: "abc", Slug: "contact"}, nil)

	f, err := svc.GetFormByID("abc")
	assert.NoError(t, err)
	assert.Equal(t, "contact", f.Slug)
}

func TestGetFormByID_NotFound(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetFormByID("missing")
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestGetFormBySlug_NotFound(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindBySlug("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetFormBySlug("missing")
	assert.ErrorIs(t, err, ErrFormNotFound)
}

// --------------------- UpdateForm ---------------------
func TestUpdateForm_PartialMerge(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	existing := &form.Form{ID: "abc", Name: "Old Name", Slug: "old_slug", Status: form.FormStatusActive}
	mockForm.EXPECT().FindByID("abc").Return(existing, nil)
	mockForm.EXPECT().Update(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		assert.Equal(t, "New Name", f.Name)
		assert.Equal(t, "old_slug", f.Slug)
		return nil
	})

	name := "New Name"
	updated, err := svc.UpdateForm("abc", form.UpdateFormDTO{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "old_slug", updated.Slug)
}

func TestUpdateForm_EmptySlugRejected(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID("abc").Return(&form.Form{ID: "abc", Slug: "old_slug"}, nil)

	empty := ""
	_, err := svc.UpdateForm("abc", form.UpdateFormDTO{Slug: &empty})
	assert.ErrorIs(t, err, ErrEmptySlug)
}

func TestUpdateForm_NotFound(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

	name := "x"
	_, err := svc.UpdateForm("missing", form.UpdateFormDTO{Name: &name})
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestUpdateForm_ReplacesFields(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	existing := &form.Form{ID: "abc", Slug: "survey"}
	mockForm.EXPECT().FindByID("abc").Return(existing, nil)
	mockForm.EXPECT().Update(gomock.Any()).Return(nil)

	fields := []form.Field{{Type: form.FieldText, Label: "Name"}}
	updated, err := svc.UpdateForm("abc", form.UpdateFormDTO{Fields: &fields})
	assert.NoError(t, err)

	got, err := updated.FieldList()
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0].ID, "field_text_survey_"), got[0].ID)
}

func TestUpdateForm_DuplicateSlug(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID("abc").Return(&form.Form{ID: "abc", Slug: "old_slug"}, nil)
	mockForm.EXPECT().Update(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	slug := "taken"
	_, err := svc.UpdateForm("abc", form.UpdateFormDTO{Slug: &slug})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

// --------------------- DeleteForm ---------------------
func TestDeleteForm_Success(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().Delete("abc").Return(int64(1), nil)

	assert.NoError(t, svc.DeleteForm("abc"))
}

func TestDeleteForm_NotFound(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().Delete("missing").Return(int64(0), nil)

	assert.ErrorIs(t, svc.DeleteForm("missing"), ErrFormNotFound)
}

// --------------------- ListForms ---------------------
func TestListForms_Success(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	rows := []form.FormWithCount{
		{Form: form.Form{ID: "a", Slug: "newest"}, SubmissionCount: 3},
		{Form: form.Form{ID: "b", Slug: "oldest"}, SubmissionCount: 0},
	}
	mockForm.EXPECT().ListWithSubmissionCount().Return(rows, nil)

	result, err := svc.ListForms()
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(3), result[0].SubmissionCount)
}

func TestListForms_RepoError(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().ListWithSubmissionCount().Return(nil, errors.New("db down"))

	_, err := svc.ListForms()
	assert.Error(t, err)
}
