package recommender

import (
	"fmt"
	"strings"

	"github.com/careerpath/webapp/models"
)

// Score weights. A component only counts toward the maximum when it
// applies to the career or the profile.
const (
	requiredWeight   = 0.5
	preferredWeight  = 0.2
	experienceWeight = 0.15
	interestWeight   = 0.15

	// experienceCap is where experience stops adding to the score
	experienceCap = 5
)

// MatchScore rates how well profile fits career, in [0,1]
func MatchScore(profile *models.UserProfile, career *models.CareerListing) float64 {
	var score, total float64
	userSkills := lowerAll(profile.Skills)

	if len(career.RequiredSkills) > 0 {
		score += skillCoverage(userSkills, career.RequiredSkills) * requiredWeight
		total += requiredWeight
	}

	if len(career.PreferredSkills) > 0 {
		score += skillCoverage(userSkills, career.PreferredSkills) * preferredWeight
		total += preferredWeight
	}

	experience := float64(profile.ExperienceYears) / experienceCap
	if experience > 1 {
		experience = 1
	}
	if experience < 0 {
		experience = 0
	}
	score += experience * experienceWeight
	total += experienceWeight

	if len(profile.Interests) > 0 {
		if interestMatches(profile.Interests, career.Category) {
			score += interestWeight
		}
		total += interestWeight
	}

	if total == 0 {
		return 0
	}
	if ratio := score / total; ratio < 1 {
		return ratio
	}
	return 1
}

// RuleBasedReasoning explains a match without a language model
func RuleBasedReasoning(profile *models.UserProfile, career *models.CareerListing, score float64) string {
	userSkills := lowerAll(profile.Skills)

	var matching []string
	for _, skill := range career.RequiredSkills {
		if skillMatches(userSkills, skill) {
			matching = append(matching, skill)
		}
	}

	var reasons []string
	if len(matching) > 0 {
		if len(matching) > 2 {
			matching = matching[:2]
		}
		reasons = append(reasons, fmt.Sprintf("Your skills in %s align well with this role", strings.Join(matching, ", ")))
	}
	if profile.ExperienceYears > 0 {
		reasons = append(reasons, fmt.Sprintf("Your %d years of experience are valuable", profile.ExperienceYears))
	}
	category := strings.ToLower(career.Category)
	for _, interest := range profile.Interests {
		if interest != "" && strings.Contains(category, strings.ToLower(interest)) {
			reasons = append(reasons, fmt.Sprintf("This matches your interest in %s", career.Category))
			break
		}
	}
	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("This career path offers strong growth potential in %s", career.Category))
	}

	return fmt.Sprintf("%s. Match score: %.0f%%", strings.Join(reasons, ". "), score*100)
}

// PopularReasoning is used for careers suggested without a qualifying match
func PopularReasoning(career *models.CareerListing) string {
	return fmt.Sprintf("This is a popular career path in %s that you might be interested in.", career.Category)
}

// ProfileSummary describes a profile in one line
func ProfileSummary(profile *models.UserProfile) string {
	interests := "various fields"
	if len(profile.Interests) > 0 {
		top := profile.Interests
		if len(top) > 3 {
			top = top[:3]
		}
		interests = strings.Join(top, ", ")
	}
	return fmt.Sprintf("Profile with %d skills, %d years experience, interested in %s",
		len(profile.Skills), profile.ExperienceYears, interests)
}

// skillCoverage is the share of skills matched by any user skill
func skillCoverage(userSkills, skills []string) float64 {
	matched := 0
	for _, skill := range skills {
		if skillMatches(userSkills, skill) {
			matched++
		}
	}
	return float64(matched) / float64(len(skills))
}

// skillMatches treats either name containing the other as a match, so
// "react" matches "React Native"
func skillMatches(userSkills []string, skill string) bool {
	skill = strings.ToLower(skill)
	for _, us := range userSkills {
		if strings.Contains(skill, us) || strings.Contains(us, skill) {
			return true
		}
	}
	return false
}

func interestMatches(interests []string, category string) bool {
	category = strings.ToLower(category)
	for _, interest := range interests {
		interest = strings.ToLower(strings.TrimSpace(interest))
		if interest == "" {
			continue
		}
		if strings.Contains(category, interest) || strings.Contains(interest, category) {
			return true
		}
	}
	return false
}

// lowerAll lower-cases skills and drops blanks, which would match anything
func lowerAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill = strings.ToLower(strings.TrimSpace(skill)); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}
