package talentstore

import (
	"encoding/json"

	"wired-people-backend/lib/upstream/payload"
	entitymodels "wired-people-backend/models/entity"
)

func mapTalent(raw json.RawMessage) (entitymodels.Talent, error) {
	p, err := payload.Parse(raw)
	if err != nil {
		return entitymodels.Talent{}, err
	}
	return mapTalentFields(p)
}

func mapTalentPayload(raw map[string]interface{}) (entitymodels.Talent, error) {
	return mapTalentFields(payload.Payload(raw))
}

func mapTalentFields(p payload.Payload) (entitymodels.Talent, error) {
	talent := entitymodels.Talent{
		ID:        p.Str("id", "Id", "ID", "studentId", "StudentId"),
		Name:      p.Str("name", "Name", "fullName", "FullName"),
		Email:     p.Str("email", "Email", "mail"),
		Status:    p.Str("status", "Status", "studentStatus"),
		Site:      p.Str("site", "Site", "location", "Location"),
		Cohort:    p.Str("cohort", "Cohort", "batch", "Batch"),
		Stack:     p.Str("stack", "Stack", "role", "Role", "track"),
		CompanyID: p.Str("companyId", "CompanyId", "company_id"),
	}
	for _, item := range p.ObjSlice("skills", "Skills") {
		level, _ := item.Int("level", "Level")
		talent.Skills = append(talent.Skills, entitymodels.Skill{
			Name:     item.Str("name", "Name", "skill"),
			Level:    level,
			Required: item.Bool("required", "Required"),
		})
	}
	for _, item := range p.ObjSlice("languages", "Languages") {
		talent.Languages = append(talent.Languages, entitymodels.Language{
			Code:  item.Str("code", "Code"),
			Name:  item.Str("name", "Name", "language"),
			Level: item.Str("level", "Level"),
		})
	}
	if created := p.Time("createdAt", "CreatedAt", "creationDate"); created != nil {
		talent.CreatedAt = *created
	}
	if updated := p.Time("updatedAt", "UpdatedAt", "lastModified"); updated != nil {
		talent.UpdatedAt = *updated
	} else {
		talent.UpdatedAt = talent.CreatedAt
	}
	return talent, nil
}
