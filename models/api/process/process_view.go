package processapimodels

import (
	"time"

	apimodels "wired-people-backend/models/api"
)

type StatusView struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type PriorityView struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// ProcessView is the read model served to the UI: stored fields plus the
// derived properties, which are recomputed on every read.
type ProcessView struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description,omitempty"`
	CompanyID          string         `json:"companyId"`
	CompanyName        string         `json:"companyName"`
	Status             StatusView     `json:"status"`
	Priority           PriorityView   `json:"priority"`
	Vacancies          int            `json:"vacancies"`
	StudentsCount      int            `json:"studentsCount"`
	ActiveCandidates   int            `json:"activeCandidates"`
	HiredCandidates    int            `json:"hiredCandidates"`
	RejectedCandidates int            `json:"rejectedCandidates"`
	Location           string         `json:"location,omitempty"`
	Remote             bool           `json:"remote"`
	RequiredSkills     []SkillItem    `json:"requiredSkills"`
	RequiredLanguages  []LanguageItem `json:"requiredLanguages"`
	MinExperience      *int           `json:"minExperience,omitempty"`
	MaxExperience      *int           `json:"maxExperience,omitempty"`
	SalaryMin          *float64       `json:"salaryMin,omitempty"`
	SalaryMax          *float64       `json:"salaryMax,omitempty"`
	Currency           string         `json:"currency"`
	Deadline           *time.Time     `json:"deadline,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	Tags               []string       `json:"tags"`
	Version            int            `json:"version"`

	IsActive              bool `json:"isActive"`
	HasExpired            bool `json:"hasExpired"`
	HasAvailableVacancies bool `json:"hasAvailableVacancies"`
	CompletionPercentage  int  `json:"completionPercentage"`
	DaysUntilDeadline     *int `json:"daysUntilDeadline,omitempty"`
	IsUrgent              bool `json:"isUrgent"`
	CanAddCandidate       bool `json:"canAddCandidate"`
}

type ProcessListView struct {
	Items []ProcessView      `json:"items"`
	Meta  apimodels.PageMeta `json:"meta"`
}

type CandidateView struct {
	ID             string     `json:"id"`
	ProcessID      string     `json:"processId"`
	CandidateID    string     `json:"candidateId"`
	CandidateName  string     `json:"candidateName"`
	CandidateEmail string     `json:"candidateEmail"`
	Status         string     `json:"status"`
	AppliedAt      time.Time  `json:"appliedAt"`
	LastActivityAt time.Time  `json:"lastActivityAt"`
	Notes          []NoteView `json:"notes"`
	Score          *int       `json:"score,omitempty"`
}

type NoteView struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatisticsView aggregates process counters for the dashboard. Reads
// degrade to zeroed values when the upstream is unavailable.
type StatisticsView struct {
	Total          int         `json:"total"`
	ByStatus       map[int]int `json:"byStatus"`
	TotalVacancies int         `json:"totalVacancies"`
	TotalStudents  int         `json:"totalStudents"`
	TotalHired     int         `json:"totalHired"`
	FillRate       float64     `json:"fillRate"`
}
