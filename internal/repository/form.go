package repository

import (
	"github.com/formforge/formforge/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	ListWithSubmissionCount() ([]form.FormWithCount, error)
	FindByID(id string) (*form.Form, error)
	FindBySlug(slug string) (*form.Form, error)
	Create(f *form.Form) error
	Update(f *form.Form) error
	Delete(id string) (int64, error)
	CountAll() (int64, error)
	CountByStatus(status form.FormStatus) (int64, error)
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) ListWithSubmissionCount() ([]form.FormWithCount, error) {
	var rows []form.FormWithCount
	err := r.db.Model(&form.Form{}).
		Select("forms.*, COALESCE(COUNT(s.id), 0) AS submission_count").
		Joins("LEFT JOIN form_submissions s ON s.form_id = forms.id").
		Group("forms.id").
		Order("forms.created_at desc").
		Scan(&rows).Error
	return rows, err
}

func (r *DBFormRepo) FindByID(id string) (*form.Form, error) {
	var f form.Form
	if err := r.db.First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBFormRepo) FindBySlug(slug string) (*form.Form, error) {
	var f form.Form
	if err := r.db.First(&f, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBFormRepo) Create(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) Update(f *form.Form) error {
	return r.db.Save(f).Error
}

func (r *DBFormRepo) Delete(id string) (int64, error) {
	res := r.db.Delete(&form.Form{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *DBFormRepo) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&form.Form{}).Count(&n).Error
	return n, err
}

func (r *DBFormRepo) CountByStatus(status form.FormStatus) (int64, error) {
	var n int64
	err := r.db.Model(&form.Form{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
