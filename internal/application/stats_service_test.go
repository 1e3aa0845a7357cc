package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/formforge/formforge/internal/domain/form"
	"github.com/formforge/formforge/internal/domain/submission"
	"github.com/formforge/formforge/internal/repository"
	"github.com/formforge/formforge/internal/repository/mock"
)

// --------------------- Setup ---------------------
func setupStatsServiceMocks(t *testing.T) (*StatsService, *mock.MockFormRepo, *mock.MockSubmissionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock.NewMockFormRepo(ctrl)
	mockSub := mock.NewMockSubmissionRepo(ctrl)
	repos := &repository.Repos{
		Form:       mockForm,
		Submission: mockSub,
	}
	svc := NewStatsService(repos)
	return svc, mockForm, mockSub
}

// --------------------- GetStats ---------------------
func TestGetStats_Success(t *testing.T) {
	svc, mockForm, mockSub := setupStatsServiceMocks(t)

	mockForm.EXPECT().CountAll().Return(int64(5), nil)
	mockForm.EXPECT().CountByStatus(form.FormStatusActive).Return(int64(3), nil)
	mockSub.EXPECT().CountAll().Return(int64(3), nil)
	mockSub.EXPECT().CountByStatus(submission.StatusCompleted).Return(int64(2), nil)

	stats, err := svc.GetStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalForms)
	assert.Equal(t, int64(3), stats.ActiveForms)
	assert.Equal(t, int64(3), stats.TotalSubmissions)
	assert.Equal(t, "66.7", stats.CompletionRate)
}

func TestGetStats_NoSubmissions(t *testing.T) {
	svc, mockForm, mockSub := setupStatsServiceMocks(t)

	mockForm.EXPECT().CountAll().Return(int64(1), nil)
	mockForm.EXPECT().CountByStatus(form.FormStatusActive).Return(int64(1), nil)
	mockSub.EXPECT().CountAll().Return(int64(0), nil)
	mockSub.EXPECT().CountByStatus(submission.StatusCompleted).Return(int64(0), nil)

	stats, err := svc.GetStats()
	assert.NoError(t, err)
	assert.Equal(t, "0", stats.CompletionRate)
}

func TestGetStats_AllCompleted(t *testing.T) {
	svc, mockForm, mockSub := setupStatsServiceMocks(t)

	mockForm.EXPECT().CountAll().Return(int64(2), nil)
	mockForm.EXPECT().CountByStatus(form.FormStatusActive).Return(int64(2), nil)
	mockSub.EXPECT().CountAll().Return(int64(4), nil)
	mockSub.EXPECT().CountByStatus(submission.StatusCompleted).Return(int64(4), nil)

	stats, err := svc.GetStats()
	assert.NoError(t, err)
	assert.Equal(t, "100.0", stats.CompletionRate)
}

func TestGetStats_RepoError(t *testing.T) {
	svc, mockForm, _ := setupStatsServiceMocks(t)

	mockForm.EXPECT().CountAll().Return(int64(0), errors.New("db down"))

	_, err := svc.GetStats()
	assert.Error(t, err)
}
