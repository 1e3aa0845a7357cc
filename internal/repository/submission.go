package repository

import (
	"github.com/formforge/formforge/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	List(formID string) ([]submission.Submission, error)
	FindByID(id string) (*submission.Submission, error)
	Create(s *submission.Submission) error
	Delete(id string) (int64, error)
	CountAll() (int64, error)
	CountByStatus(status submission.SubmissionStatus) (int64, error)
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

// List returns submissions newest first, optionally filtered to one form.
func (r *DBSubmissionRepo) List(formID string) ([]submission.Submission, error) {
	var subs []submission.Submission
	q := r.db.Order("created_at desc")
	if formID != "" {
		q = q.Where("form_id = ?", formID)
	}
	err := q.Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) FindByID(id string) (*submission.Submission, error) {
	var s submission.Submission
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DBSubmissionRepo) Create(s *submission.Submission) error {
	return r.db.Create(s).Error
}

func (r *DBSubmissionRepo) Delete(id string) (int64, error) {
	res := r.db.Delete(&submission.Submission{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *DBSubmissionRepo) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&submission.Submission{}).Count(&n).Error
	return n, err
}

func (r *DBSubmissionRepo) CountByStatus(status submission.SubmissionStatus) (int64, error) {
	var n int64
	err := r.db.Model(&submission.Submission{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
