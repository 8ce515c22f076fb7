package processapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"wired-people-backend/models"
)

const (
	maxNameLength = 200
	maxVacancies  = 1000
)

type SkillItem struct {
	Name     string `json:"name"`
	Level    int    `json:"level"` // 1..5
	Required bool   `json:"required"`
}

type LanguageItem struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Required bool   `json:"required"`
}

// ProcessData is the create/update payload for a recruitment process.
type ProcessData struct {
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	Priority          *int           `json:"priority"`
	Vacancies         int            `json:"vacancies"`
	Location          string         `json:"location"`
	Remote            bool           `json:"remote"`
	RequiredSkills    []SkillItem    `json:"requiredSkills"`
	RequiredLanguages []LanguageItem `json:"requiredLanguages"`
	MinExperience     *int           `json:"minExperience"`
	MaxExperience     *int           `json:"maxExperience"`
	SalaryMin         *float64       `json:"salaryMin"`
	SalaryMax         *float64       `json:"salaryMax"`
	Currency          string         `json:"currency"`
	Deadline          *time.Time     `json:"deadline"`
	Tags              []string       `json:"tags"`
	// Version must echo the version the client loaded; writes with a
	// stale version are rejected.
	Version int `json:"version"`
}

// Validate applies the process field rules. The first violated rule wins.
func (r ProcessData) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("process name is required")
	}
	if len(name) > maxNameLength {
		return errors.Errorf("process name must be at most %v characters", maxNameLength)
	}
	if r.Vacancies < 1 || r.Vacancies > maxVacancies {
		return errors.Errorf("vacancies must be between 1 and %v", maxVacancies)
	}
	if r.Priority != nil {
		if _, err := models.ProcessPriorityFromValue(*r.Priority); err != nil {
			return errors.New("unknown process priority")
		}
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMin > *r.SalaryMax {
		return errors.New("minimum salary cannot exceed maximum salary")
	}
	if r.MinExperience != nil && r.MaxExperience != nil && *r.MinExperience > *r.MaxExperience {
		return errors.New("minimum experience cannot exceed maximum experience")
	}
	if r.Deadline != nil && r.Deadline.Before(time.Now()) {
		return errors.New("deadline must be in the future")
	}
	for _, skill := range r.RequiredSkills {
		if strings.TrimSpace(skill.Name) == "" {
			return errors.New("skill name is required")
		}
		if skill.Level < 1 || skill.Level > 5 {
			return errors.New("skill level must be between 1 and 5")
		}
	}
	return nil
}

type StatusChangeRequest struct {
	Status  int `json:"status"`
	Version int `json:"version"`
}

type AssignCandidatesRequest struct {
	CandidateIDs []string `json:"candidateIds"`
}

func (r AssignCandidatesRequest) Validate() error {
	if len(r.CandidateIDs) == 0 {
		return errors.New("at least one candidate is required")
	}
	for _, id := range r.CandidateIDs {
		if strings.TrimSpace(id) == "" {
			return errors.New("candidate id cannot be empty")
		}
	}
	return nil
}

type ProcessFilter struct {
	Statuses   []int  `json:"statuses"`
	Priorities []int  `json:"priorities"`
	RemoteOnly bool   `json:"remoteOnly"`
	Search     string `json:"search"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
}

func (r ProcessFilter) Validate() error {
	for _, status := range r.Statuses {
		if _, err := models.ProcessStatusFromValue(status); err != nil {
			return errors.New("unknown process status in filter")
		}
	}
	for _, priority := range r.Priorities {
		if _, err := models.ProcessPriorityFromValue(priority); err != nil {
			return errors.New("unknown process priority in filter")
		}
	}
	return nil
}

func (r ProcessFilter) GetPage() (page, pageSize int) {
	page = 1
	pageSize = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.PageSize > 0 {
		pageSize = r.PageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
