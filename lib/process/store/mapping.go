package processstore

import (
	"encoding/json"
	"time"

	"wired-people-backend/lib/upstream/payload"
	"wired-people-backend/models"
	entitymodels "wired-people-backend/models/entity"
)

// Backend process status codes. The numbering is the backend's own and does
// not line up with the internal enum; translation always goes through the
// lookup tables below.
//
//	0 Borrador    -> DRAFT
//	1 Esperando   -> ACTIVE
//	2 Pausado     -> ON_HOLD
//	3 En proceso  -> IN_PROGRESS
//	4 Finalizado  -> COMPLETED
//	5 Cancelado   -> CANCELLED
var backendStatusToInternal = map[int]models.ProcessStatus{
	0: models.ProcessStatusDraft,
	1: models.ProcessStatusActive,
	2: models.ProcessStatusOnHold,
	3: models.ProcessStatusInProgress,
	4: models.ProcessStatusCompleted,
	5: models.ProcessStatusCancelled,
}

var internalStatusToBackend = map[models.ProcessStatus]int{
	models.ProcessStatusDraft:      0,
	models.ProcessStatusActive:     1,
	models.ProcessStatusOnHold:     2,
	models.ProcessStatusInProgress: 3,
	models.ProcessStatusCompleted:  4,
	models.ProcessStatusCancelled:  5,
}

// mapBackendStatus falls back to ACTIVE for codes this client does not
// know, so new backend states degrade to a visible, working process.
func mapBackendStatus(code int) models.ProcessStatus {
	if status, ok := backendStatusToInternal[code]; ok {
		return status
	}
	return models.ProcessStatusActive
}

func mapInternalStatus(status models.ProcessStatus) int {
	return internalStatusToBackend[status]
}

// mapProcess hydrates a Process from a raw backend object.
func mapProcess(raw json.RawMessage) (entitymodels.Process, error) {
	p, err := payload.Parse(raw)
	if err != nil {
		return entitymodels.Process{}, err
	}
	return mapProcessPayload(p)
}

func mapProcessPayload(p payload.Payload) (entitymodels.Process, error) {
	statusCode, _ := p.Int("status", "Status", "processStatus", "ProcessStatus")
	priority := models.ProcessPriorityMedium
	if code, ok := p.Int("priority", "Priority"); ok {
		if parsed, err := models.ProcessPriorityFromValue(code); err == nil {
			priority = parsed
		}
	}
	currency := p.Str("currency", "Currency")
	if currency == "" {
		currency = "USD"
	}

	proc := entitymodels.Process{
		ID:                p.Str("id", "Id", "ID", "processId", "ProcessId"),
		Name:              p.Str("name", "Name", "title", "Title", "processName", "ProcessName"),
		Description:       p.Str("description", "Description"),
		CompanyID:         p.Str("companyId", "CompanyId", "company_id"),
		CompanyName:       p.Str("companyName", "CompanyName", "company"),
		Status:            mapBackendStatus(statusCode),
		Priority:          priority,
		Location:          p.Str("location", "Location", "site", "Site"),
		Remote:            p.Bool("remote", "Remote", "isRemote", "IsRemote"),
		MinExperience:     p.OptInt("minExperience", "MinExperience", "minYears"),
		MaxExperience:     p.OptInt("maxExperience", "MaxExperience", "maxYears"),
		SalaryMin:         p.OptFloat("salaryMin", "SalaryMin", "minSalary"),
		SalaryMax:         p.OptFloat("salaryMax", "SalaryMax", "maxSalary"),
		Currency:          currency,
		Deadline:          p.Time("deadline", "Deadline", "dueDate", "DueDate"),
		Tags:              p.StrSlice("tags", "Tags"),
		RequiredSkills:    mapSkills(p.ObjSlice("requiredSkills", "RequiredSkills", "skills", "Skills")),
		RequiredLanguages: mapLanguages(p.ObjSlice("requiredLanguages", "RequiredLanguages", "languages", "Languages")),
	}

	proc.Vacancies, _ = p.Int("vacancies", "Vacancies", "openPositions", "OpenPositions")
	proc.StudentsCount, _ = p.Int("studentsCount", "StudentsCount", "students", "Students")
	proc.ActiveCandidates, _ = p.Int("activeCandidates", "ActiveCandidates", "activeStudents")
	proc.HiredCandidates, _ = p.Int("hiredCandidates", "HiredCandidates", "hiredStudents")
	proc.RejectedCandidates, _ = p.Int("rejectedCandidates", "RejectedCandidates", "rejectedStudents")
	proc.Version, _ = p.Int("version", "Version", "rowVersion", "RowVersion")

	if created := p.Time("createdAt", "CreatedAt", "creationDate", "CreationDate"); created != nil {
		proc.CreatedAt = *created
	}
	if updated := p.Time("updatedAt", "UpdatedAt", "lastModified", "LastModified"); updated != nil {
		proc.UpdatedAt = *updated
	} else {
		proc.UpdatedAt = proc.CreatedAt
	}
	return proc, nil
}

func mapSkills(items []payload.Payload) []entitymodels.Skill {
	if len(items) == 0 {
		return nil
	}
	result := make([]entitymodels.Skill, 0, len(items))
	for _, item := range items {
		level, _ := item.Int("level", "Level")
		result = append(result, entitymodels.Skill{
			Name:     item.Str("name", "Name", "skill", "Skill"),
			Level:    level,
			Required: item.Bool("required", "Required", "isRequired"),
		})
	}
	return result
}

func mapLanguages(items []payload.Payload) []entitymodels.Language {
	if len(items) == 0 {
		return nil
	}
	result := make([]entitymodels.Language, 0, len(items))
	for _, item := range items {
		result = append(result, entitymodels.Language{
			Code:     item.Str("code", "Code", "languageCode"),
			Name:     item.Str("name", "Name", "language", "Language"),
			Level:    item.Str("level", "Level"),
			Required: item.Bool("required", "Required", "isRequired"),
		})
	}
	return result
}

// processWriteModel is the single declared outbound shape; the backend
// accepts camelCase on writes.
type processWriteModel struct {
	Name              string               `json:"name"`
	Description       string               `json:"description,omitempty"`
	CompanyID         string               `json:"companyId"`
	CompanyName       string               `json:"companyName"`
	Status            int                  `json:"status"`
	Priority          int                  `json:"priority"`
	Vacancies         int                  `json:"vacancies"`
	Location          string               `json:"location,omitempty"`
	Remote            bool                 `json:"remote"`
	RequiredSkills    []skillWriteModel    `json:"requiredSkills,omitempty"`
	RequiredLanguages []languageWriteModel `json:"requiredLanguages,omitempty"`
	MinExperience     *int                 `json:"minExperience,omitempty"`
	MaxExperience     *int                 `json:"maxExperience,omitempty"`
	SalaryMin         *float64             `json:"salaryMin,omitempty"`
	SalaryMax         *float64             `json:"salaryMax,omitempty"`
	Currency          string               `json:"currency"`
	Deadline          *time.Time           `json:"deadline,omitempty"`
	Tags              []string             `json:"tags,omitempty"`
	Version           int                  `json:"version"`
}

type skillWriteModel struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Required bool   `json:"required"`
}

type languageWriteModel struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Required bool   `json:"required"`
}

func toWriteModel(proc entitymodels.Process) processWriteModel {
	model := processWriteModel{
		Name:          proc.Name,
		Description:   proc.Description,
		CompanyID:     proc.CompanyID,
		CompanyName:   proc.CompanyName,
		Status:        mapInternalStatus(proc.Status),
		Priority:      proc.Priority.Weight(),
		Vacancies:     proc.Vacancies,
		Location:      proc.Location,
		Remote:        proc.Remote,
		MinExperience: proc.MinExperience,
		MaxExperience: proc.MaxExperience,
		SalaryMin:     proc.SalaryMin,
		SalaryMax:     proc.SalaryMax,
		Currency:      proc.Currency,
		Deadline:      proc.Deadline,
		Tags:          proc.Tags,
		Version:       proc.Version,
	}
	for _, skill := range proc.RequiredSkills {
		model.RequiredSkills = append(model.RequiredSkills, skillWriteModel(skill))
	}
	for _, language := range proc.RequiredLanguages {
		model.RequiredLanguages = append(model.RequiredLanguages, languageWriteModel(language))
	}
	return model
}
