package submission

import (
	"encoding/json"
	"time"

	"github.com/formforge/formforge/internal/domain/form"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	StatusCompleted SubmissionStatus = "completed"
	StatusInReview  SubmissionStatus = "in_review"
	StatusProcessed SubmissionStatus = "processed"
)

func (s SubmissionStatus) Valid() bool {
	return s == StatusCompleted || s == StatusInReview || s == StatusProcessed
}

// Submission is one persisted record of a user's answers. The data blob is
// a frozen snapshot keyed by field ids; later edits to the owning form do
// not rewrite it.
type Submission struct {
	ID               string           `json:"id" gorm:"primaryKey;size:36"`
	FormID           string           `json:"formId" gorm:"size:36;not null;index"`
	Form             *form.Form       `json:"-" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	Data             datatypes.JSON   `json:"data" gorm:"not null"`
	SubmittedBy      *string          `json:"submittedBy"`
	SubmittedByEmail *string          `json:"submittedByEmail"`
	Status           SubmissionStatus `json:"status" gorm:"default:'completed';not null"`
	CreatedAt        time.Time        `json:"createdAt"`
}

func (Submission) TableName() string {
	return "form_submissions"
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// DataMap decodes the stored answer blob.
func (s *Submission) DataMap() (map[string]any, error) {
	data := map[string]any{}
	if len(s.Data) == 0 {
		return data, nil
	}
	err := json.Unmarshal(s.Data, &data)
	return data, err
}
