package entitymodels

import (
	"time"

	"wired-people-backend/lib/apperrors"
	"wired-people-backend/models"
)

type Skill struct {
	Name     string
	Level    int
	Required bool
}

type Language struct {
	Code     string
	Name     string
	Level    string
	Required bool
}

// Process is a job requisition owned by the configured tenant. Counters
// (StudentsCount, ActiveCandidates, ...) are supplied by the backend and
// never computed locally. Version increments on every successful write and
// guards against concurrent clobbering.
type Process struct {
	ID                 string
	Name               string
	Description        string
	CompanyID          string
	CompanyName        string
	Status             models.ProcessStatus
	Priority           models.ProcessPriority
	Vacancies          int
	StudentsCount      int
	ActiveCandidates   int
	HiredCandidates    int
	RejectedCandidates int
	Location           string
	Remote             bool
	RequiredSkills     []Skill
	RequiredLanguages  []Language
	MinExperience      *int
	MaxExperience      *int
	SalaryMin          *float64
	SalaryMax          *float64
	Currency           string
	Deadline           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Tags               []string
	Version            int
}

func (p Process) IsActive() bool {
	return p.Status.IsActive()
}

func (p Process) HasExpired() bool {
	return p.HasExpiredAt(time.Now())
}

func (p Process) HasExpiredAt(now time.Time) bool {
	return p.Deadline != nil && now.After(*p.Deadline)
}

func (p Process) HasAvailableVacancies() bool {
	return p.StudentsCount < p.Vacancies
}

// CompletionPercentage returns filled vacancies as a whole percent,
// clamped to [0, 100].
func (p Process) CompletionPercentage() int {
	if p.Vacancies <= 0 {
		return 0
	}
	percentage := p.StudentsCount * 100 / p.Vacancies
	if percentage < 0 {
		return 0
	}
	if percentage > 100 {
		return 100
	}
	return percentage
}

func (p Process) DaysUntilDeadline() (int, bool) {
	return p.DaysUntilDeadlineAt(time.Now())
}

func (p Process) DaysUntilDeadlineAt(now time.Time) (int, bool) {
	if p.Deadline == nil {
		return 0, false
	}
	days := int(p.Deadline.Sub(now).Hours() / 24)
	return days, true
}

func (p Process) IsUrgent() bool {
	return p.IsUrgentAt(time.Now())
}

func (p Process) IsUrgentAt(now time.Time) bool {
	days, ok := p.DaysUntilDeadlineAt(now)
	return ok && days >= 0 && days <= 7
}

func (p Process) CanAddCandidate() bool {
	return p.CanAddCandidateAt(time.Now())
}

func (p Process) CanAddCandidateAt(now time.Time) bool {
	return p.IsActive() && p.HasAvailableVacancies() && !p.HasExpiredAt(now)
}

// FreeSlots is the remaining candidate capacity used by assignment checks.
func (p Process) FreeSlots() int {
	free := p.Vacancies - p.ActiveCandidates
	if free < 0 {
		return 0
	}
	return free
}

func (p *Process) Activate() error {
	return p.transitionTo(models.ProcessStatusActive)
}

func (p *Process) Start() error {
	return p.transitionTo(models.ProcessStatusInProgress)
}

func (p *Process) Suspend() error {
	return p.transitionTo(models.ProcessStatusOnHold)
}

func (p *Process) Complete() error {
	return p.transitionTo(models.ProcessStatusCompleted)
}

func (p *Process) Cancel() error {
	return p.transitionTo(models.ProcessStatusCancelled)
}

// TransitionTo applies a status change after re-checking the transition
// table. Every status mutation funnels through here.
func (p *Process) TransitionTo(target models.ProcessStatus) error {
	return p.transitionTo(target)
}

func (p *Process) transitionTo(target models.ProcessStatus) error {
	if p.Status == target {
		return nil
	}
	if !p.Status.CanTransitionTo(target) {
		return apperrors.PreconditionFailed(
			"process status cannot change from " + p.Status.Label() + " to " + target.Label())
	}
	p.Status = target
	p.UpdatedAt = time.Now()
	return nil
}
