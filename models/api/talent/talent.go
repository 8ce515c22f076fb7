package talentapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	apimodels "wired-people-backend/models/api"
)

type TalentView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Status    string         `json:"status"`
	Site      string         `json:"site"`
	Cohort    string         `json:"cohort"`
	Stack     string         `json:"stack"`
	Skills    []SkillView    `json:"skills"`
	Languages []LanguageView `json:"languages"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type SkillView struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Required bool   `json:"required"`
}

type LanguageView struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Required bool   `json:"required"`
}

type TalentListView struct {
	Items []TalentView       `json:"items"`
	Meta  apimodels.PageMeta `json:"meta"`
}

type TalentFilter struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Site     string `json:"site"`
	Stack    string `json:"stack"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

func (r TalentFilter) GetPage() (page, pageSize int) {
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

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return errors.New("status is required")
	}
	return nil
}
