package submission

type CreateSubmissionDTO struct {
	FormID           string            `json:"formId" binding:"required"`
	Data             map[string]any    `json:"data" binding:"required"`
	SubmittedBy      *string           `json:"submittedBy"`
	SubmittedByEmail *string           `json:"submittedByEmail"`
	Status           *SubmissionStatus `json:"status"`
}
