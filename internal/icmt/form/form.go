// Package form models the event registration form as a single value object.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/errors"
)

// Field ids, shared with the HTML form.
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldEmail          = "email"
	FieldUniversity     = "university"
	FieldTShirtSize     = "tshirtSize"
	FieldDivision       = "division"
	FieldGraduationYear = "graduationYear"
	FieldResumeURL      = "resumeUrl"
	FieldIDRequirement  = "idRequirement"
	FieldFilming        = "filming"
	FieldTeamMerge      = "teamMerge"
	FieldFinancialAid   = "financialAid"
)

// Fields lists every field id in display order.
var Fields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldUniversity,
	FieldTShirtSize,
	FieldDivision,
	FieldGraduationYear,
	FieldResumeURL,
	FieldIDRequirement,
	FieldFilming,
	FieldTeamMerge,
	FieldFinancialAid,
}

// Values is a snapshot of every field as the user entered it.
type Values struct {
	FirstName                 string `label:"First Name" validate:"required"`
	LastName                  string `label:"Last Name" validate:"required"`
	Email                     string `label:"Email Address" validate:"required,email"`
	University                string `label:"University" validate:"required"`
	TShirtSize                string `label:"T-Shirt Size" validate:"required,oneof=XS S M L XL XXL"`
	Division                  string `label:"Division" validate:"required,oneof=A B"`
	ExpectedGraduationYear    string `label:"Expected Graduation Year" validate:"required,number"`
	ResumeURL                 string `label:"Resume URL" validate:"omitempty,url"`
	AcknowledgedIDRequirement bool   `label:"The photo ID requirement" validate:"required"`
	AcknowledgedFilming       bool   `label:"The filming notice" validate:"required"`
	AcknowledgedTeamMerge     bool   `label:"The team merge policy" validate:"required"`
	InterestedInFinancialAid  bool   `label:"Financial aid interest"`
}

// Form holds the registration fields. Each field has exactly one setter.
type Form struct {
	v Values
}

// New returns an empty form
func New() *Form {
	return &Form{}
}

// Values returns a copy of the current field values
func (f *Form) Values() Values {
	return f.v
}

func (f *Form) SetFirstName(s string)  { f.v.FirstName = s }
func (f *Form) SetLastName(s string)   { f.v.LastName = s }
func (f *Form) SetEmail(s string)      { f.v.Email = s }
func (f *Form) SetUniversity(s string) { f.v.University = s }
func (f *Form) SetTShirtSize(s string) { f.v.TShirtSize = s }
func (f *Form) SetDivision(s string)   { f.v.Division = s }
func (f *Form) SetResumeURL(s string)  { f.v.ResumeURL = s }

// SetExpectedGraduationYear stores the year as selected; it is parsed on submit.
func (f *Form) SetExpectedGraduationYear(s string) { f.v.ExpectedGraduationYear = s }

func (f *Form) SetAcknowledgedIDRequirement(b bool) { f.v.AcknowledgedIDRequirement = b }
func (f *Form) SetAcknowledgedFilming(b bool)       { f.v.AcknowledgedFilming = b }
func (f *Form) SetAcknowledgedTeamMerge(b bool)     { f.v.AcknowledgedTeamMerge = b }
func (f *Form) SetInterestedInFinancialAid(b bool)  { f.v.InterestedInFinancialAid = b }

// Set updates one field by its HTML id. Checkbox fields accept the values a
// browser or a flag would send for "checked".
func (f *Form) Set(field, value string) error {
	switch field {
	case FieldFirstName:
		f.SetFirstName(value)
	case FieldLastName:
		f.SetLastName(value)
	case FieldEmail:
		f.SetEmail(value)
	case FieldUniversity:
		f.SetUniversity(value)
	case FieldTShirtSize:
		f.SetTShirtSize(value)
	case FieldDivision:
		f.SetDivision(value)
	case FieldGraduationYear:
		f.SetExpectedGraduationYear(value)
	case FieldResumeURL:
		f.SetResumeURL(value)
	case FieldIDRequirement:
		f.SetAcknowledgedIDRequirement(checked(value))
	case FieldFilming:
		f.SetAcknowledgedFilming(checked(value))
	case FieldTeamMerge:
		f.SetAcknowledgedTeamMerge(checked(value))
	case FieldFinancialAid:
		f.SetInterestedInFinancialAid(checked(value))
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

func checked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes", "y":
		return true
	}
	return false
}

// Submission converts the form into the wire payload. Field values are sent
// as entered; only the graduation year is parsed and a blank resume URL
// becomes nil.
func (f *Form) Submission() (api.Submission, error) {
	v := f.v
	year, err := strconv.Atoi(strings.TrimSpace(v.ExpectedGraduationYear))
	if err != nil {
		return api.Submission{}, errors.Wrapf(errors.ErrValidationFailed, "graduation year %q is not a number", v.ExpectedGraduationYear)
	}

	var resume *string
	if strings.TrimSpace(v.ResumeURL) != "" {
		r := v.ResumeURL
		resume = &r
	}

	return api.Submission{
		FirstName:                 v.FirstName,
		LastName:                  v.LastName,
		Email:                     v.Email,
		TShirtSize:                v.TShirtSize,
		Division:                  v.Division,
		ExpectedGraduationYear:    year,
		University:                v.University,
		ResumeURL:                 resume,
		AcknowledgedIDRequirement: v.AcknowledgedIDRequirement,
		AcknowledgedFilming:       v.AcknowledgedFilming,
		AcknowledgedTeamMerge:     v.AcknowledgedTeamMerge,
		InterestedInFinancialAid:  v.InterestedInFinancialAid,
	}, nil
}

// GraduationYears returns the ten selectable years starting at now's year.
func GraduationYears(now time.Time) []int {
	years := make([]int, 10)
	for i := range years {
		years[i] = now.Year() + i
	}
	return years
}
