package processhandler

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"wired-people-backend/lib/apperrors"
	processstore "wired-people-backend/lib/process/store"
	initchecker "wired-people-backend/lib/utils/init-checker"
	"wired-people-backend/models"
	apimodels "wired-people-backend/models/api"
	processapimodels "wired-people-backend/models/api/process"
	entitymodels "wired-people-backend/models/entity"
)

type Provider interface {
	Create(ctx context.Context, token string, data processapimodels.ProcessData) (processapimodels.ProcessView, error)
	GetByID(ctx context.Context, token, id string) (processapimodels.ProcessView, error)
	Update(ctx context.Context, token, id string, data processapimodels.ProcessData) (processapimodels.ProcessView, error)
	Delete(ctx context.Context, token, id string) error
	List(ctx context.Context, token string, filter processapimodels.ProcessFilter) (processapimodels.ProcessListView, error)
	ChangeStatus(ctx context.Context, token, id string, request processapimodels.StatusChangeRequest) (processapimodels.ProcessView, error)
	AssignCandidates(ctx context.Context, token, id string, candidateIDs []string) error
	RemoveCandidate(ctx context.Context, token, id, candidateID string) error
	Statistics(ctx context.Context, token string) (processapimodels.StatisticsView, error)
}

var Instance Provider

type TenantConfig struct {
	CompanyID   string
	CompanyName string
}

func NewHandler(store processstore.Provider, tenant TenantConfig) {
	instance := impl{
		store:  store,
		tenant: tenant,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store  processstore.Provider
	tenant TenantConfig
}

func (i impl) Create(ctx context.Context, token string, data processapimodels.ProcessData) (processapimodels.ProcessView, error) {
	if err := data.Validate(); err != nil {
		return processapimodels.ProcessView{}, apperrors.Validation(err.Error())
	}
	now := time.Now()
	proc := i.applyData(entitymodels.Process{
		CompanyID:   i.tenant.CompanyID,
		CompanyName: i.tenant.CompanyName,
		Status:      models.ProcessStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, data)

	created, err := i.store.Create(ctx, token, proc)
	if err != nil {
		return processapimodels.ProcessView{}, err
	}
	i.getLogger(created.ID).Info("process created")
	return ToView(created), nil
}

func (i impl) GetByID(ctx context.Context, token, id string) (processapimodels.ProcessView, error) {
	proc, err := i.load(ctx, token, id)
	if err != nil {
		return processapimodels.ProcessView{}, err
	}
	return ToView(*proc), nil
}

func (i impl) Update(ctx context.Context, token, id string, data processapimodels.ProcessData) (processapimodels.ProcessView, error) {
	if err := data.Validate(); err != nil {
		return processapimodels.ProcessView{}, apperrors.Validation(err.Error())
	}
	existing, err := i.load(ctx, token, id)
	if err != nil {
		return processapimodels.ProcessView{}, err
	}
	if !existing.Status.IsEditable() {
		return processapimodels.ProcessView{}, apperrors.PreconditionFailed(
			"process in status " + existing.Status.Label() + " cannot be edited")
	}
	if data.Version != existing.Version {
		return processapimodels.ProcessView{}, apperrors.Conflict("process was modified concurrently")
	}

	updated := i.applyData(*existing, data)
	updated.UpdatedAt = time.Now()
	stored, err := i.store.Update(ctx, token, updated)
	if err != nil {
		return processapimodels.ProcessView{}, err
	}
	i.getLogger(id).Info("process updated")
	return ToView(stored), nil
}

func (i impl) Delete(ctx context.Context, token, id string) error {
	proc, err := i.load(ctx, token, id)
	if err != nil {
		return err
	}
	if proc.Status == models.ProcessStatusInProgress {
		return apperrors.PreconditionFailed("a process in progress cannot be deleted")
	}
	if proc.HiredCandidates > 0 {
		return apperrors.PreconditionFailed("a process with hired candidates cannot be deleted")
	}
	if err = i.store.Delete(ctx, token, id); err != nil {
		return err
	}
	i.getLogger(id).Info("process deleted")
	return nil
}

func (i impl) List(ctx context.Context, token string, filter processapimodels.ProcessFilter) (processapimodels.ProcessListView, error) {
	if err := filter.Validate(); err != nil {
		return processapimodels.ProcessListView{}, apperrors.Validation(err.Error())
	}
	all, err := i.store.ListAll(ctx, token)
	if err != nil {
		return processapimodels.ProcessListView{}, err
	}

	filtered := make([]entitymodels.Process, 0, len(all))
	for _, proc := range all {
		if matchesFilter(proc, filter) {
			filtered = append(filtered, proc)
		}
	}

	page, pageSize := filter.GetPage()
	meta := apimodels.NewPageMeta(page, pageSize, len(filtered))
	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]processapimodels.ProcessView, 0, end-start)
	for _, proc := range filtered[start:end] {
		items = append(items, ToView(proc))
	}
	return processapimodels.ProcessListView{Items: items, Meta: meta}, nil
}

func (i impl) ChangeStatus(ctx context.Context, token, id string, request processapimodels.StatusChangeRequest) (processapimodels.ProcessView, error) {
	target, err := models.ProcessStatusFromValue(request.Status)
	if err != nil {
		return processapimodels.ProcessView{}, err
	}
	proc, err := i.load(ctx, token, id)
	if err != nil {
		return processapimodels.ProcessView{}, err
	}
	if request.Version != proc.Version {
		return processapimodels.ProcessView{}, apperrors.Conflict("process was modified concurrently")
	}
	if err = proc.TransitionTo(target); err != nil {
		return processapimodels.ProcessView{}, err
	}
	stored, err := i.store.Update(ctx, token, *proc)
	if err != nil {
		return processapimodels.ProcessView{}, err
	}
	i.getLogger(id).WithField("status", target.Label()).Info("process status changed")
	return ToView(stored), nil
}

func (i impl) AssignCandidates(ctx context.Context, token, id string, candidateIDs []string) error {
	if len(candidateIDs) == 0 {
		return apperrors.Validation("at least one candidate is required")
	}
	proc, err := i.load(ctx, token, id)
	if err != nil {
		return err
	}
	if !proc.CanAddCandidate() {
		return apperrors.PreconditionFailed("process is not accepting candidates")
	}
	if len(candidateIDs) > proc.FreeSlots() {
		return apperrors.PreconditionFailed("not enough free vacancies for the requested candidates")
	}
	if err = i.store.AddCandidates(ctx, token, id, candidateIDs); err != nil {
		return err
	}
	i.getLogger(id).WithField("candidates", len(candidateIDs)).Info("candidates assigned")
	return nil
}

func (i impl) RemoveCandidate(ctx context.Context, token, id, candidateID string) error {
	proc, err := i.load(ctx, token, id)
	if err != nil {
		return err
	}
	if err = i.store.RemoveCandidate(ctx, token, proc.ID, candidateID); err != nil {
		return err
	}
	i.getLogger(id).WithField("candidate_id", candidateID).Info("candidate removed")
	return nil
}

// Statistics degrades to zeroed values on upstream failure so dashboards
// stay populated; the failure is logged, never surfaced.
func (i impl) Statistics(ctx context.Context, token string) (processapimodels.StatisticsView, error) {
	stats := processapimodels.StatisticsView{
		ByStatus: map[int]int{},
	}
	for _, status := range models.AllProcessStatuses() {
		stats.ByStatus[int(status)] = 0
	}

	all, err := i.store.ListAll(ctx, token)
	if err != nil {
		log.WithError(err).Warn("process statistics degraded to defaults")
		return stats, nil
	}
	for _, proc := range all {
		stats.Total++
		stats.ByStatus[int(proc.Status)]++
		stats.TotalVacancies += proc.Vacancies
		stats.TotalStudents += proc.StudentsCount
		stats.TotalHired += proc.HiredCandidates
	}
	if stats.TotalVacancies > 0 {
		stats.FillRate = float64(stats.TotalStudents) / float64(stats.TotalVacancies)
	}
	return stats, nil
}

func (i impl) load(ctx context.Context, token, id string) (*entitymodels.Process, error) {
	proc, err := i.store.GetByID(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if proc == nil {
		return nil, apperrors.NotFound("process not found")
	}
	return proc, nil
}

func (i impl) applyData(proc entitymodels.Process, data processapimodels.ProcessData) entitymodels.Process {
	proc.Name = strings.TrimSpace(data.Name)
	proc.Description = data.Description
	proc.Vacancies = data.Vacancies
	proc.Location = data.Location
	proc.Remote = data.Remote
	proc.MinExperience = data.MinExperience
	proc.MaxExperience = data.MaxExperience
	proc.SalaryMin = data.SalaryMin
	proc.SalaryMax = data.SalaryMax
	proc.Deadline = data.Deadline
	proc.Tags = data.Tags

	proc.Priority = models.ProcessPriorityMedium
	if data.Priority != nil {
		proc.Priority = models.ProcessPriority(*data.Priority)
	}
	proc.Currency = data.Currency
	if proc.Currency == "" {
		proc.Currency = "USD"
	}

	proc.RequiredSkills = nil
	for _, skill := range data.RequiredSkills {
		proc.RequiredSkills = append(proc.RequiredSkills, entitymodels.Skill(skill))
	}
	proc.RequiredLanguages = nil
	for _, language := range data.RequiredLanguages {
		proc.RequiredLanguages = append(proc.RequiredLanguages, entitymodels.Language(language))
	}
	return proc
}

func (i impl) getLogger(processID string) *log.Entry {
	return log.
		WithField("company_id", i.tenant.CompanyID).
		WithField("process_id", processID)
}
