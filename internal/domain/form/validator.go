package form

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate backs the primitive string checks. Var-level validation only;
// no struct tags involved.
var validate = validator.New()

type RuleKind int

const (
	RuleString RuleKind = iota
	RuleEmail
	RuleNumber
	RuleDate
	RuleStringList
)

// Rule is the validation contract derived from a single input field
// descriptor. Derivation is an explicit mapping over the field-kind enum;
// rules are plain values, nothing is mutated at runtime.
type Rule struct {
	FieldID   string
	Label     string
	Kind      RuleKind
	Required  bool
	MinLength *int
	MaxLength *int
}

// RuleFor maps a descriptor to its rule. Display-only and unknown kinds
// produce no rule and are reported with ok=false.
func RuleFor(f Field) (Rule, bool) {
	if !f.Type.Known() || f.Type.DisplayOnly() {
		return Rule{}, false
	}

	r := Rule{FieldID: f.ID, Label: f.Label, Required: f.Required}
	switch f.Type {
	case FieldEmail:
		r.Kind = RuleEmail
	case FieldNumber:
		r.Kind = RuleNumber
	case FieldDate:
		r.Kind = RuleDate
	case FieldCheckbox:
		// Checkbox groups accept an empty selection even when the
		// descriptor is marked required.
		r.Kind = RuleStringList
		r.Required = false
	default:
		r.Kind = RuleString
	}

	// Length refinements only make sense for free-text kinds.
	if f.Validation != nil && (r.Kind == RuleString || r.Kind == RuleEmail) {
		r.MinLength = f.Validation.MinLength
		r.MaxLength = f.Validation.MaxLength
	}
	return r, true
}

// Validator holds the rules derived from one form's field list.
type Validator struct {
	rules []Rule
}

// NewValidator derives the validation contract from a field list.
func NewValidator(fields []Field) *Validator {
	v := &Validator{}
	for _, f := range fields {
		if rule, ok := RuleFor(f); ok {
			v.rules = append(v.rules, rule)
		}
	}
	return v
}

// FieldIDs lists the ids participating in the contract, in field order.
func (v *Validator) FieldIDs() []string {
	ids := make([]string, 0, len(v.rules))
	for _, r := range v.rules {
		ids = append(ids, r.FieldID)
	}
	return ids
}

// Validate checks a field-id keyed value map against the derived rules.
// It returns a per-field error map, empty when the data conforms. Keys
// not covered by any rule are ignored.
func (v *Validator) Validate(data map[string]any) map[string]string {
	errs := make(map[string]string)
	for _, rule := range v.rules {
		if msg := rule.check(data[rule.FieldID]); msg != "" {
			errs[rule.FieldID] = msg
		}
	}
	return errs
}

func (r Rule) check(value any) string {
	if r.Kind == RuleStringList {
		return r.checkStringList(value)
	}

	s, ok := value.(string)
	if value != nil && !ok {
		return fmt.Sprintf("%s must be a string", r.labelOrID())
	}
	if s == "" {
		if r.Required {
			return fmt.Sprintf("%s is required", r.labelOrID())
		}
		return ""
	}

	switch r.Kind {
	case RuleEmail:
		if err := validate.Var(s, "email"); err != nil {
			return "Please enter a valid email address"
		}
	case RuleNumber:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return "Please enter a valid number"
		}
	case RuleDate:
		if !parseableDate(s) {
			return "Please enter a valid date"
		}
	}

	if r.MinLength != nil && len([]rune(s)) < *r.MinLength {
		return fmt.Sprintf("Minimum %d characters required", *r.MinLength)
	}
	if r.MaxLength != nil && len([]rune(s)) > *r.MaxLength {
		return fmt.Sprintf("Maximum %d characters allowed", *r.MaxLength)
	}
	return ""
}

func (r Rule) checkStringList(value any) string {
	switch list := value.(type) {
	case nil:
		return ""
	case []string:
		return ""
	case []any:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return fmt.Sprintf("%s must be a list of options", r.labelOrID())
			}
		}
		return ""
	default:
		return fmt.Sprintf("%s must be a list of options", r.labelOrID())
	}
}

func (r Rule) labelOrID() string {
	if r.Label != "" {
		return r.Label
	}
	return r.FieldID
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

func parseableDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
