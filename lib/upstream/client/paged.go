package client

import (
	"encoding/json"

	"wired-people-backend/lib/apperrors"
)

// PagedData is the normalized list envelope used by every list endpoint.
type PagedData struct {
	Items           []json.RawMessage `json:"items"`
	PageNumber      int               `json:"pageNumber"`
	PageSize        int               `json:"pageSize"`
	TotalCount      int               `json:"totalCount"`
	TotalPages      int               `json:"totalPages"`
	HasNextPage     bool              `json:"hasNextPage"`
	HasPreviousPage bool              `json:"hasPreviousPage"`
}

type pagedEnvelope struct {
	Items           []json.RawMessage `json:"items"`
	Data            []json.RawMessage `json:"data"`
	PageNumber      int               `json:"pageNumber"`
	PageSize        int               `json:"pageSize"`
	TotalCount      int               `json:"totalCount"`
	TotalPages      int               `json:"totalPages"`
	HasNextPage     bool              `json:"hasNextPage"`
	HasPreviousPage bool              `json:"hasPreviousPage"`
}

// ParsePaged accepts the three list shapes the backend is known to return:
// the full `{items, pageNumber, ...}` envelope, a `{data: [...]}` wrapper,
// or a bare JSON array.
func ParsePaged(raw json.RawMessage) (PagedData, error) {
	if len(raw) == 0 {
		return PagedData{}, nil
	}

	var bare []json.RawMessage
	if err := json.Unmarshal(raw, &bare); err == nil {
		return PagedData{
			Items:      bare,
			PageNumber: 1,
			PageSize:   len(bare),
			TotalCount: len(bare),
			TotalPages: 1,
		}, nil
	}

	var envelope pagedEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return PagedData{}, apperrors.Upstream(err, "unrecognized list response shape")
	}
	items := envelope.Items
	if items == nil {
		items = envelope.Data
	}
	result := PagedData{
		Items:           items,
		PageNumber:      envelope.PageNumber,
		PageSize:        envelope.PageSize,
		TotalCount:      envelope.TotalCount,
		TotalPages:      envelope.TotalPages,
		HasNextPage:     envelope.HasNextPage,
		HasPreviousPage: envelope.HasPreviousPage,
	}
	if result.PageNumber == 0 {
		result.PageNumber = 1
	}
	if result.TotalCount == 0 {
		result.TotalCount = len(items)
	}
	if result.PageSize == 0 {
		result.PageSize = len(items)
	}
	if result.TotalPages == 0 {
		result.TotalPages = 1
	}
	return result, nil
}
