package talentstore

import (
	"context"

	log "github.com/sirupsen/logrus"

	"wired-people-backend/lib/apperrors"
	upstreamclient "wired-people-backend/lib/upstream/client"
	"wired-people-backend/lib/utils/helpers"
	entitymodels "wired-people-backend/models/entity"
)

const (
	studentsPath  = "/v1/students"
	fetchPageSize = 100
)

// Provider is the talent-pool repository over the recruitment backend.
// Like processes, talents are re-scoped to the configured tenant after
// fetching, since the upstream filter is unreliable. Talents without a
// company marker are kept; only foreign-tenant rows are dropped.
type Provider interface {
	ListAll(ctx context.Context, token string) ([]entitymodels.Talent, error)
	GetByID(ctx context.Context, token, id string) (*entitymodels.Talent, error)
	UpdateStatus(ctx context.Context, token, id, status string) error
}

func NewInstance(client upstreamclient.Provider, tenantCompanyID string, maxPageFetches int) Provider {
	return &impl{
		client:          client,
		tenantCompanyID: tenantCompanyID,
		maxPageFetches:  maxPageFetches,
	}
}

type impl struct {
	client          upstreamclient.Provider
	tenantCompanyID string
	maxPageFetches  int
}

func (i impl) ListAll(ctx context.Context, token string) ([]entitymodels.Talent, error) {
	var result []entitymodels.Talent
	for pageNumber := 1; pageNumber <= i.maxPageFetches; pageNumber++ {
		if helpers.IsContextDone(ctx) {
			return nil, ctx.Err()
		}
		paged, err := i.client.GetPaged(ctx, token, studentsPath,
			upstreamclient.PageQuery(pageNumber, fetchPageSize))
		if err != nil {
			return nil, err
		}
		for _, rawItem := range paged.Items {
			talent, err := mapTalent(rawItem)
			if err != nil {
				log.WithError(err).Warn("skipping unparseable talent item")
				continue
			}
			if i.inTenant(talent) {
				result = append(result, talent)
			}
		}
		if !paged.HasNextPage || len(paged.Items) == 0 {
			break
		}
	}
	return result, nil
}

func (i impl) GetByID(ctx context.Context, token, id string) (*entitymodels.Talent, error) {
	var raw map[string]interface{}
	err := i.client.Get(ctx, token, studentsPath+"/"+id, nil, &raw)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	talent, err := mapTalentPayload(raw)
	if err != nil {
		return nil, apperrors.Upstream(err, "failed to parse talent")
	}
	if !i.inTenant(talent) {
		return nil, nil
	}
	return &talent, nil
}

func (i impl) UpdateStatus(ctx context.Context, token, id, status string) error {
	body := map[string]interface{}{
		"status": status,
	}
	return i.client.Patch(ctx, token, studentsPath+"/"+id, body, nil)
}

func (i impl) inTenant(talent entitymodels.Talent) bool {
	return talent.CompanyID == "" || talent.CompanyID == i.tenantCompanyID
}
