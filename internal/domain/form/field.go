package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrUnknownFieldType = errors.New("unknown field type")

// FieldType is the closed enumeration of field kinds a form can carry.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldFile     FieldType = "file"
	FieldDate     FieldType = "date"

	// Display-only kinds. Rendered in a form but excluded from
	// validation and from submitted data.
	FieldTitle      FieldType = "title"
	FieldHeading    FieldType = "heading"
	FieldSubheading FieldType = "subheading"
	FieldDivider    FieldType = "divider"
	FieldImage      FieldType = "image"
)

// FieldValidation holds optional per-field refinements set in the builder.
type FieldValidation struct {
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// Field is one entry in a form's ordered field list. Depending on Type it
// describes either an input control or a display-only element.
type Field struct {
	ID          string           `json:"id"`
	Type        FieldType        `json:"type"`
	Label       string           `json:"label"`
	Placeholder string           `json:"placeholder,omitempty"`
	Required    bool             `json:"required"`
	Options     []string         `json:"options,omitempty"`
	Text        string           `json:"text,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Validation  *FieldValidation `json:"validation,omitempty"`
}

// fieldSpec is one registry entry: the UI control a kind renders as and
// whether the kind participates in the input-validation contract.
type fieldSpec struct {
	Control     string
	DisplayOnly bool
}

// registry is the single source of truth for the field-kind enumeration.
var registry = map[FieldType]fieldSpec{
	FieldText:       {Control: "input"},
	FieldEmail:      {Control: "input"},
	FieldTextarea:   {Control: "textarea"},
	FieldNumber:     {Control: "input"},
	FieldSelect:     {Control: "select"},
	FieldRadio:      {Control: "radio-group"},
	FieldCheckbox:   {Control: "checkbox-group"},
	FieldFile:       {Control: "file"},
	FieldDate:       {Control: "input"},
	FieldTitle:      {Control: "title", DisplayOnly: true},
	FieldHeading:    {Control: "heading", DisplayOnly: true},
	FieldSubheading: {Control: "subheading", DisplayOnly: true},
	FieldDivider:    {Control: "divider", DisplayOnly: true},
	FieldImage:      {Control: "image", DisplayOnly: true},
}

func (t FieldType) Known() bool {
	_, ok := registry[t]
	return ok
}

func (t FieldType) DisplayOnly() bool {
	return registry[t].DisplayOnly
}

// Control reports the UI control a field kind renders as, or "" for an
// unknown kind.
func (t FieldType) Control() string {
	return registry[t].Control
}

// ChoiceType reports whether the kind carries an options list.
func (t FieldType) ChoiceType() bool {
	return t == FieldSelect || t == FieldRadio || t == FieldCheckbox
}

// NewFieldID derives a descriptor id from the field kind and the owning
// form's slug. The trailing token is a UUID rather than a short random
// string so ids never need a collision check.
func NewFieldID(t FieldType, formSlug string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("field_%s_%s_%s", t, formSlug, token)
}

// NormalizeFields rejects unknown kinds and fills in missing descriptor
// ids. Choice kinds with an empty options list pass through; the builder
// is expected to populate options but the store does not enforce it.
func NormalizeFields(fields []Field, formSlug string) ([]Field, error) {
	for i := range fields {
		if !fields[i].Type.Known() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, fields[i].Type)
		}
		if fields[i].ID == "" {
			fields[i].ID = NewFieldID(fields[i].Type, formSlug)
		}
	}
	return fields, nil
}
