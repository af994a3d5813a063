package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Education level vocabulary
const (
	EducationHighSchool = "High School"
	EducationBachelors  = "Bachelor's"
	EducationMasters    = "Master's"
	EducationPhD        = "PhD"
	EducationBootcamp   = "Bootcamp"
)

// EducationLevel pairs a stored value with its form label
type EducationLevel struct {
	Value string
	Label string
}

// EducationLevels lists the accepted education levels in display order
var EducationLevels = []EducationLevel{
	{Value: EducationHighSchool, Label: "High School"},
	{Value: EducationBachelors, Label: "Bachelor's Degree"},
	{Value: EducationMasters, Label: "Master's Degree"},
	{Value: EducationPhD, Label: "PhD"},
	{Value: EducationBootcamp, Label: "Bootcamp/Certificate"},
}

// IsEducationLevel reports whether v is empty or part of the vocabulary
func IsEducationLevel(v string) bool {
	if v == "" {
		return true
	}
	for _, level := range EducationLevels {
		if level.Value == v {
			return true
		}
	}
	return false
}

// UserProfile is the career profile a user submits for recommendations
// @Description Career profile built in the profile wizard
type UserProfile struct {
	Skills          []string `json:"skills" example:"Python,SQL"`
	Interests       []string `json:"interests" example:"AI/ML"`
	EducationLevel  string   `json:"education_level" validate:"education_level" example:"Bachelor's"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0" example:"2"`
	Goals           string   `json:"goals" example:"grow into ML"`
	CurrentRole     string   `json:"current_role,omitempty" example:"Data Analyst"`
	Location        string   `json:"location,omitempty" example:"Remote"`
}

// AddSkill appends a skill unless it is blank or already present
func (p *UserProfile) AddSkill(skill string) bool {
	return addUnique(&p.Skills, skill)
}

// RemoveSkill drops a skill, keeping the order of the rest
func (p *UserProfile) RemoveSkill(skill string) bool {
	return removeValue(&p.Skills, skill)
}

// AddInterest appends an interest unless it is blank or already present
func (p *UserProfile) AddInterest(interest string) bool {
	return addUnique(&p.Interests, interest)
}

// RemoveInterest drops an interest, keeping the order of the rest
func (p *UserProfile) RemoveInterest(interest string) bool {
	return removeValue(&p.Interests, interest)
}

// HasSkill reports whether the profile already lists skill
func (p *UserProfile) HasSkill(skill string) bool {
	return contains(p.Skills, skill)
}

// HasInterest reports whether the profile already lists interest
func (p *UserProfile) HasInterest(interest string) bool {
	return contains(p.Interests, interest)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func profileValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("education_level", func(fl validator.FieldLevel) bool {
			return IsEducationLevel(fl.Field().String())
		})
	})
	return validate
}

// Validate checks field-level constraints. Empty skills and interests are valid.
func (p *UserProfile) Validate() error {
	if err := profileValidator().Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid %s: failed %q constraint", fe.Field(), fe.Tag())
		}
		return err
	}
	return nil
}

func addUnique(list *[]string, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || contains(*list, value) {
		return false
	}
	*list = append(*list, value)
	return true
}

func removeValue(list *[]string, value string) bool {
	for i, v := range *list {
		if v == value {
			*list = append((*list)[:i:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
