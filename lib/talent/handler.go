package talenthandler

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"wired-people-backend/lib/apperrors"
	talentstore "wired-people-backend/lib/talent/store"
	initchecker "wired-people-backend/lib/utils/init-checker"
	apimodels "wired-people-backend/models/api"
	talentapimodels "wired-people-backend/models/api/talent"
	entitymodels "wired-people-backend/models/entity"
)

type Provider interface {
	List(ctx context.Context, token string, filter talentapimodels.TalentFilter) (talentapimodels.TalentListView, error)
	GetByID(ctx context.Context, token, id string) (talentapimodels.TalentView, error)
	UpdateStatus(ctx context.Context, token, id string, request talentapimodels.StatusUpdateRequest) error
}

var Instance Provider

func NewHandler(store talentstore.Provider) {
	instance := impl{
		store: store,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store talentstore.Provider
}

func (i impl) List(ctx context.Context, token string, filter talentapimodels.TalentFilter) (talentapimodels.TalentListView, error) {
	all, err := i.store.ListAll(ctx, token)
	if err != nil {
		return talentapimodels.TalentListView{}, err
	}

	filtered := make([]entitymodels.Talent, 0, len(all))
	for _, talent := range all {
		fillMissingFields(&talent)
		if matchesFilter(talent, filter) {
			filtered = append(filtered, talent)
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

	items := make([]talentapimodels.TalentView, 0, end-start)
	for _, talent := range filtered[start:end] {
		items = append(items, toView(talent))
	}
	return talentapimodels.TalentListView{Items: items, Meta: meta}, nil
}

func (i impl) GetByID(ctx context.Context, token, id string) (talentapimodels.TalentView, error) {
	talent, err := i.store.GetByID(ctx, token, id)
	if err != nil {
		return talentapimodels.TalentView{}, err
	}
	if talent == nil {
		return talentapimodels.TalentView{}, apperrors.NotFound("talent not found")
	}
	fillMissingFields(talent)
	return toView(*talent), nil
}

func (i impl) UpdateStatus(ctx context.Context, token, id string, request talentapimodels.StatusUpdateRequest) error {
	if err := request.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	talent, err := i.store.GetByID(ctx, token, id)
	if err != nil {
		return err
	}
	if talent == nil {
		return apperrors.NotFound("talent not found")
	}
	if err = i.store.UpdateStatus(ctx, token, id, request.Status); err != nil {
		return err
	}
	log.WithField("talent_id", id).WithField("status", request.Status).Info("talent status updated")
	return nil
}

func matchesFilter(talent entitymodels.Talent, filter talentapimodels.TalentFilter) bool {
	if filter.Status != "" && !strings.EqualFold(talent.Status, filter.Status) {
		return false
	}
	if filter.Site != "" && !strings.EqualFold(talent.Site, filter.Site) {
		return false
	}
	if filter.Stack != "" && !strings.EqualFold(talent.Stack, filter.Stack) {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(talent.Name), needle) &&
			!strings.Contains(strings.ToLower(talent.Email), needle) {
			return false
		}
	}
	return true
}

func toView(talent entitymodels.Talent) talentapimodels.TalentView {
	view := talentapimodels.TalentView{
		ID:        talent.ID,
		Name:      talent.Name,
		Email:     talent.Email,
		Status:    talent.Status,
		Site:      talent.Site,
		Cohort:    talent.Cohort,
		Stack:     talent.Stack,
		CreatedAt: talent.CreatedAt,
		UpdatedAt: talent.UpdatedAt,
	}
	for _, skill := range talent.Skills {
		view.Skills = append(view.Skills, talentapimodels.SkillView(skill))
	}
	for _, language := range talent.Languages {
		view.Languages = append(view.Languages, talentapimodels.LanguageView(language))
	}
	return view
}
