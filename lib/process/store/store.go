package processstore

import (
	"context"
	"sort"

	log "github.com/sirupsen/logrus"

	"wired-people-backend/lib/apperrors"
	upstreamclient "wired-people-backend/lib/upstream/client"
	"wired-people-backend/lib/upstream/payload"
	"wired-people-backend/lib/utils/helpers"
	entitymodels "wired-people-backend/models/entity"
)

const (
	processesPath = "/v1/processes"
	fetchPageSize = 100
)

// Provider is the process repository over the recruitment backend.
// The backend does not reliably filter by company, so every read is
// re-scoped to the configured tenant here; anything outside the tenant is
// reported as absent.
type Provider interface {
	Create(ctx context.Context, token string, proc entitymodels.Process) (entitymodels.Process, error)
	GetByID(ctx context.Context, token, id string) (*entitymodels.Process, error)
	Update(ctx context.Context, token string, proc entitymodels.Process) (entitymodels.Process, error)
	Delete(ctx context.Context, token, id string) error
	ListAll(ctx context.Context, token string) ([]entitymodels.Process, error)
	AddCandidates(ctx context.Context, token, processID string, candidateIDs []string) error
	RemoveCandidate(ctx context.Context, token, processID, candidateID string) error
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

func (i impl) Create(ctx context.Context, token string, proc entitymodels.Process) (entitymodels.Process, error) {
	var raw map[string]interface{}
	err := i.client.Post(ctx, token, processesPath, toWriteModel(proc), &raw)
	if err != nil {
		return entitymodels.Process{}, err
	}
	return i.rehydrate(ctx, token, raw, proc)
}

func (i impl) GetByID(ctx context.Context, token, id string) (*entitymodels.Process, error) {
	var raw map[string]interface{}
	err := i.client.Get(ctx, token, processesPath+"/"+id, nil, &raw)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	proc, err := mapPayload(raw)
	if err != nil {
		return nil, apperrors.Upstream(err, "failed to parse process")
	}
	if !i.inTenant(proc) {
		// outside tenant scope looks exactly like absence
		return nil, nil
	}
	return &proc, nil
}

func (i impl) Update(ctx context.Context, token string, proc entitymodels.Process) (entitymodels.Process, error) {
	var raw map[string]interface{}
	err := i.client.Patch(ctx, token, processesPath+"/"+proc.ID, toWriteModel(proc), &raw)
	if err != nil {
		return entitymodels.Process{}, err
	}
	return i.rehydrate(ctx, token, raw, proc)
}

func (i impl) Delete(ctx context.Context, token, id string) error {
	return i.client.Delete(ctx, token, processesPath+"/"+id)
}

// ListAll drains upstream pages until exhausted (bounded by
// maxPageFetches) and returns the tenant-scoped set in creation order.
// Pagination metadata is recomputed downstream from this filtered set, so
// visible counts always match visible rows.
func (i impl) ListAll(ctx context.Context, token string) ([]entitymodels.Process, error) {
	var result []entitymodels.Process
	for pageNumber := 1; pageNumber <= i.maxPageFetches; pageNumber++ {
		if helpers.IsContextDone(ctx) {
			return nil, ctx.Err()
		}
		paged, err := i.client.GetPaged(ctx, token, processesPath,
			upstreamclient.PageQuery(pageNumber, fetchPageSize))
		if err != nil {
			return nil, err
		}
		for _, rawItem := range paged.Items {
			proc, err := mapProcess(rawItem)
			if err != nil {
				log.WithError(err).Warn("skipping unparseable process item")
				continue
			}
			if i.inTenant(proc) {
				result = append(result, proc)
			}
		}
		if !paged.HasNextPage || len(paged.Items) == 0 {
			break
		}
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].CreatedAt.Before(result[b].CreatedAt)
	})
	return result, nil
}

func (i impl) AddCandidates(ctx context.Context, token, processID string, candidateIDs []string) error {
	body := map[string]interface{}{
		"studentIds": candidateIDs,
	}
	return i.client.Post(ctx, token, processesPath+"/"+processID+"/students", body, nil)
}

func (i impl) RemoveCandidate(ctx context.Context, token, processID, candidateID string) error {
	return i.client.Delete(ctx, token, processesPath+"/"+processID+"/students/"+candidateID)
}

func (i impl) inTenant(proc entitymodels.Process) bool {
	return proc.CompanyID == i.tenantCompanyID
}

// rehydrate prefers the backend's echo of the written record; some write
// endpoints return an empty body, in which case the local copy is re-read.
func (i impl) rehydrate(ctx context.Context, token string, raw map[string]interface{}, fallback entitymodels.Process) (entitymodels.Process, error) {
	if len(raw) == 0 {
		if fallback.ID == "" {
			return fallback, nil
		}
		stored, err := i.GetByID(ctx, token, fallback.ID)
		if err != nil {
			return entitymodels.Process{}, err
		}
		if stored == nil {
			return entitymodels.Process{}, apperrors.NotFound("process not found")
		}
		return *stored, nil
	}
	proc, err := mapPayload(raw)
	if err != nil {
		return entitymodels.Process{}, apperrors.Upstream(err, "failed to parse process")
	}
	return proc, nil
}

func mapPayload(raw map[string]interface{}) (entitymodels.Process, error) {
	return mapProcessPayload(payload.Payload(raw))
}
