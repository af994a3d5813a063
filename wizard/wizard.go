// Package wizard holds the four-step profile form's state.
package wizard

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/careerpath/webapp/models"
)

// Step bounds
const (
	StepSkills     = 1
	StepInterests  = 2
	StepBackground = 3
	StepGoals      = 4

	FirstStep = StepSkills
	LastStep  = StepGoals
)

// Input limits bounding a draft's size
const (
	MaxTextLength = 4000
	MaxItemLength = 100
	MaxListItems  = 50
)

// StepNames labels the progress bar, indexed by step-1
var StepNames = []string{"Skills", "Interests", "Experience", "Goals"}

// CommonSkills are offered as one-click additions on the skills step
var CommonSkills = []string{
	"JavaScript", "Python", "Java", "React", "Node.js", "SQL",
	"AWS", "Docker", "Git", "TypeScript", "Machine Learning", "Data Analysis",
}

// CommonInterests are offered as one-click additions on the interests step
var CommonInterests = []string{
	"Software Development", "AI/ML", "Data Science", "Cloud Computing", "Cybersecurity",
	"Web Development", "Mobile Development", "DevOps", "UI/UX Design", "Product Management",
}

// Action is a wizard form button
type Action string

const (
	ActionNext           Action = "next"
	ActionBack           Action = "back"
	ActionAddSkill       Action = "add_skill"
	ActionRemoveSkill    Action = "remove_skill"
	ActionAddInterest    Action = "add_interest"
	ActionRemoveInterest Action = "remove_interest"
	ActionSubmit         Action = "submit"
	ActionReset          Action = "reset"
)

// State is the wizard's position plus the profile accumulated so far
type State struct {
	Step    int                `json:"step"`
	Profile models.UserProfile `json:"profile"`
}

// New starts a wizard on the first step
func New() *State {
	return &State{Step: FirstStep}
}

// Normalize clamps the step into range. Used on state read back from a cookie.
func (s *State) Normalize() {
	s.Step = clamp(s.Step)
}

// Next advances one step, stopping at the last
func (s *State) Next() {
	s.Step = clamp(s.Step + 1)
}

// Back returns one step, stopping at the first
func (s *State) Back() {
	s.Step = clamp(s.Step - 1)
}

// CanSubmit is true only on the last step
func (s *State) CanSubmit() bool {
	return s.Step == LastStep
}

// Progress returns the progress bar fill in percent
func (s *State) Progress() int {
	return (clamp(s.Step) - 1) * 100 / (LastStep - 1)
}

// Fields are the free-form inputs of the background and goals steps
type Fields struct {
	EducationLevel  string
	ExperienceYears string
	CurrentRole     string
	Goals           string
	Location        string
}

// ApplyBackground records the background step's inputs.
// Unknown education levels are dropped.
func (s *State) ApplyBackground(f Fields) {
	education := strings.TrimSpace(f.EducationLevel)
	if !models.IsEducationLevel(education) {
		education = ""
	}
	s.Profile.EducationLevel = education
	s.Profile.ExperienceYears = ParseExperience(f.ExperienceYears)
	s.Profile.CurrentRole = limit(f.CurrentRole, MaxTextLength)
}

// ApplyGoals records the goals step's inputs
func (s *State) ApplyGoals(f Fields) {
	s.Profile.Goals = limit(f.Goals, MaxTextLength)
	s.Profile.Location = limit(f.Location, MaxTextLength)
}

// Apply records whichever inputs belong to the current step
func (s *State) Apply(f Fields) {
	switch s.Step {
	case StepBackground:
		s.ApplyBackground(f)
	case StepGoals:
		s.ApplyGoals(f)
	}
}

// Handle performs a non-submit action. value carries the skill or interest
// for add/remove actions. It reports whether the action was recognized.
func (s *State) Handle(action Action, value string) bool {
	switch action {
	case ActionNext:
		s.Next()
	case ActionBack:
		s.Back()
	case ActionAddSkill:
		if len(s.Profile.Skills) < MaxListItems {
			s.Profile.AddSkill(limit(value, MaxItemLength))
		}
	case ActionRemoveSkill:
		s.Profile.RemoveSkill(value)
	case ActionAddInterest:
		if len(s.Profile.Interests) < MaxListItems {
			s.Profile.AddInterest(limit(value, MaxItemLength))
		}
	case ActionRemoveInterest:
		s.Profile.RemoveInterest(value)
	case ActionReset:
		*s = *New()
	default:
		return false
	}
	return true
}

// ParseExperience reads a years-of-experience input. Blank, invalid and
// negative values become 0.
func ParseExperience(raw string) int {
	years, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || years < 0 {
		return 0
	}
	return years
}

// limit trims v and cuts it to at most n runes
func limit(v string, n int) string {
	v = strings.TrimSpace(v)
	if utf8.RuneCountInString(v) <= n {
		return v
	}
	return strings.TrimSpace(string([]rune(v)[:n]))
}

func clamp(step int) int {
	if step < FirstStep {
		return FirstStep
	}
	if step > LastStep {
		return LastStep
	}
	return step
}
