package leads

import (
	"html"
	"net/mail"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Field identifies one of the five demo request inputs
type Field string

const (
	FieldName     Field = "nombre"
	FieldCompany  Field = "empresa"
	FieldEmail    Field = "email"
	FieldPhone    Field = "telefono"
	FieldIndustry Field = "industria"
)

// Fields lists the form inputs in display order
var Fields = []Field{FieldName, FieldCompany, FieldEmail, FieldPhone, FieldIndustry}

// IndustryOther is the free-form category, always the last option
const IndustryOther = "Otra"

// Industries is the fixed option set for the industry select
var Industries = []string{
	"Retail/Comercio",
	"Restaurantes/Hostelería",
	"Servicios Profesionales",
	"Transporte/Logística",
	"Manufactura",
	"Construcción",
	"Salud/Medicina",
	"Educación",
	"Tecnología",
	IndustryOther,
}

// IsValidIndustry reports whether value is one of the fixed industry labels
func IsValidIndustry(value string) bool {
	for _, industry := range Industries {
		if industry == value {
			return true
		}
	}
	return false
}

// LeadRequest is a prospect's contact and qualification data.
// JSON keys are the intake endpoint's wire names.
type LeadRequest struct {
	Name     string `json:"nombre"`
	Company  string `json:"empresa"`
	Email    string `json:"email"`
	Phone    string `json:"telefono"`
	Industry string `json:"industria"`
}

var inputPolicy = bluemonday.StrictPolicy()

// normalize trims whitespace and strips any markup from a raw input value.
// The policy escapes entities, which are decoded back so "O'Brien" survives.
func normalize(value string) string {
	return strings.TrimSpace(html.UnescapeString(inputPolicy.Sanitize(value)))
}

// Get returns the value of a field
func (l LeadRequest) Get(f Field) string {
	switch f {
	case FieldName:
		return l.Name
	case FieldCompany:
		return l.Company
	case FieldEmail:
		return l.Email
	case FieldPhone:
		return l.Phone
	case FieldIndustry:
		return l.Industry
	}
	return ""
}

// set assigns a normalized value to a field. Unknown fields are ignored.
func (l *LeadRequest) set(f Field, value string) bool {
	value = normalize(value)
	switch f {
	case FieldName:
		l.Name = value
	case FieldCompany:
		l.Company = value
	case FieldEmail:
		l.Email = value
	case FieldPhone:
		l.Phone = value
	case FieldIndustry:
		l.Industry = value
	default:
		return false
	}
	return true
}

// IsEmpty reports whether all five fields are blank
func (l LeadRequest) IsEmpty() bool {
	return l == LeadRequest{}
}

// MissingFields returns the fields that are still blank, in display order
func (l LeadRequest) MissingFields() []Field {
	var missing []Field
	for _, f := range Fields {
		if l.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// IsComplete reports whether every field has a value
func (l LeadRequest) IsComplete() bool {
	return len(l.MissingFields()) == 0
}

// InvalidFields returns non-empty fields whose value is not acceptable
func (l LeadRequest) InvalidFields() []Field {
	var invalid []Field
	if l.Email != "" {
		if addr, err := mail.ParseAddress(l.Email); err != nil || addr.Address != l.Email {
			invalid = append(invalid, FieldEmail)
		}
	}
	if l.Industry != "" && !IsValidIndustry(l.Industry) {
		invalid = append(invalid, FieldIndustry)
	}
	return invalid
}

// Validate returns ErrIncomplete or ErrInvalidField when the request cannot be submitted
func (l LeadRequest) Validate() error {
	if !l.IsComplete() {
		return ErrIncomplete
	}
	if invalid := l.InvalidFields(); len(invalid) > 0 {
		return &FieldError{Field: invalid[0]}
	}
	return nil
}
