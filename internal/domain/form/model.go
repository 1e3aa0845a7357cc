package form

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FormStatus string

const (
	FormStatusActive   FormStatus = "active"
	FormStatusInactive FormStatus = "inactive"
)

func (s FormStatus) Valid() bool {
	return s == FormStatusActive || s == FormStatusInactive
}

type Form struct {
	ID          string         `json:"id" gorm:"primaryKey;size:36"`
	Name        string         `json:"name" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description *string        `json:"description"`
	Fields      datatypes.JSON `json:"fields" gorm:"not null;default:'[]'"`
	Status      FormStatus     `json:"status" gorm:"default:'active';not null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// FieldList decodes the stored fields blob into typed descriptors.
func (f *Form) FieldList() ([]Field, error) {
	var fields []Field
	if len(f.Fields) == 0 {
		return fields, nil
	}
	err := json.Unmarshal(f.Fields, &fields)
	return fields, err
}

func (f *Form) SetFieldList(fields []Field) error {
	if fields == nil {
		fields = []Field{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	f.Fields = datatypes.JSON(raw)
	return nil
}

// FormWithCount is the list-view row: a form annotated with its
// submission count from an aggregate join.
type FormWithCount struct {
	Form
	SubmissionCount int64 `json:"submissionCount"`
}
