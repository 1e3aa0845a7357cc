package form

type CreateFormDTO struct {
	Name        string      `json:"name" binding:"required"`
	Slug        string      `json:"slug"`
	Description *string     `json:"description"`
	Fields      []Field     `json:"fields"`
	Status      *FormStatus `json:"status"`
}

// UpdateFormDTO is a partial update: nil means "leave unchanged".
type UpdateFormDTO struct {
	Name        *string     `json:"name"`
	Slug        *string     `json:"slug"`
	Description *string     `json:"description"`
	Fields      *[]Field    `json:"fields"`
	Status      *FormStatus `json:"status"`
}
