package processhandler

import (
	"wired-people-backend/models"
	processapimodels "wired-people-backend/models/api/process"
	entitymodels "wired-people-backend/models/entity"
)

// ToView projects the entity for the UI. Derived fields are recomputed
// here on every read; they are never stored.
func ToView(proc entitymodels.Process) processapimodels.ProcessView {
	view := processapimodels.ProcessView{
		ID:          proc.ID,
		Name:        proc.Name,
		Description: proc.Description,
		CompanyID:   proc.CompanyID,
		CompanyName: proc.CompanyName,
		Status: processapimodels.StatusView{
			Value: int(proc.Status),
			Label: proc.Status.Label(),
			Color: proc.Status.Color(),
			Icon:  proc.Status.Icon(),
		},
		Priority: processapimodels.PriorityView{
			Value: proc.Priority.Weight(),
			Label: proc.Priority.Label(),
			Color: proc.Priority.Color(),
		},
		Vacancies:          proc.Vacancies,
		StudentsCount:      proc.StudentsCount,
		ActiveCandidates:   proc.ActiveCandidates,
		HiredCandidates:    proc.HiredCandidates,
		RejectedCandidates: proc.RejectedCandidates,
		Location:           proc.Location,
		Remote:             proc.Remote,
		MinExperience:      proc.MinExperience,
		MaxExperience:      proc.MaxExperience,
		SalaryMin:          proc.SalaryMin,
		SalaryMax:          proc.SalaryMax,
		Currency:           proc.Currency,
		Deadline:           proc.Deadline,
		CreatedAt:          proc.CreatedAt,
		UpdatedAt:          proc.UpdatedAt,
		Tags:               proc.Tags,
		Version:            proc.Version,

		IsActive:              proc.IsActive(),
		HasExpired:            proc.HasExpired(),
		HasAvailableVacancies: proc.HasAvailableVacancies(),
		CompletionPercentage:  proc.CompletionPercentage(),
		IsUrgent:              proc.IsUrgent(),
		CanAddCandidate:       proc.CanAddCandidate(),
	}
	if days, ok := proc.DaysUntilDeadline(); ok {
		view.DaysUntilDeadline = &days
	}
	for _, skill := range proc.RequiredSkills {
		view.RequiredSkills = append(view.RequiredSkills, processapimodels.SkillItem(skill))
	}
	for _, language := range proc.RequiredLanguages {
		view.RequiredLanguages = append(view.RequiredLanguages, processapimodels.LanguageItem(language))
	}
	return view
}

// FromView rebuilds the entity from its serialized view. Only stored
// fields are taken; derived fields are dropped and recomputed on demand.
func FromView(view processapimodels.ProcessView) entitymodels.Process {
	proc := entitymodels.Process{
		ID:                 view.ID,
		Name:               view.Name,
		Description:        view.Description,
		CompanyID:          view.CompanyID,
		CompanyName:        view.CompanyName,
		Status:             models.ProcessStatus(view.Status.Value),
		Priority:           models.ProcessPriority(view.Priority.Value),
		Vacancies:          view.Vacancies,
		StudentsCount:      view.StudentsCount,
		ActiveCandidates:   view.ActiveCandidates,
		HiredCandidates:    view.HiredCandidates,
		RejectedCandidates: view.RejectedCandidates,
		Location:           view.Location,
		Remote:             view.Remote,
		MinExperience:      view.MinExperience,
		MaxExperience:      view.MaxExperience,
		SalaryMin:          view.SalaryMin,
		SalaryMax:          view.SalaryMax,
		Currency:           view.Currency,
		Deadline:           view.Deadline,
		CreatedAt:          view.CreatedAt,
		UpdatedAt:          view.UpdatedAt,
		Tags:               view.Tags,
		Version:            view.Version,
	}
	for _, skill := range view.RequiredSkills {
		proc.RequiredSkills = append(proc.RequiredSkills, entitymodels.Skill(skill))
	}
	for _, language := range view.RequiredLanguages {
		proc.RequiredLanguages = append(proc.RequiredLanguages, entitymodels.Language(language))
	}
	return proc
}
