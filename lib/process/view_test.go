package processhandler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wired-people-backend/models"
	processapimodels "wired-people-backend/models/api/process"
	entitymodels "wired-people-backend/models/entity"
)

func TestViewRoundTrip(t *testing.T) {
	minExp := 2
	salaryMax := 95000.0
	deadline := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)

	proc := entitymodels.Process{
		ID:               "proc-42",
		Name:             "Platform Engineer",
		Description:      "Kubernetes and Go",
		CompanyID:        "wired-people",
		CompanyName:      "Wired People Inc.",
		Status:           models.ProcessStatusActive,
		Priority:         models.ProcessPriorityHigh,
		Vacancies:        4,
		StudentsCount:    2,
		ActiveCandidates: 2,
		HiredCandidates:  1,
		Location:         "Remote",
		Remote:           true,
		RequiredSkills: []entitymodels.Skill{
			{Name: "Go", Level: 4, Required: true},
		},
		RequiredLanguages: []entitymodels.Language{
			{Code: "en", Name: "English", Level: "B2", Required: true},
		},
		MinExperience: &minExp,
		SalaryMax:     &salaryMax,
		Currency:      "EUR",
		Deadline:      &deadline,
		CreatedAt:     time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC),
		Tags:          []string{"platform", "senior"},
		Version:       7,
	}

	encoded, err := json.Marshal(ToView(proc))
	require.Nil(t, err)

	var decoded processapimodels.ProcessView
	require.Nil(t, json.Unmarshal(encoded, &decoded))

	rebuilt := FromView(decoded)
	require.Equal(t, proc, rebuilt)

	// derived fields are recomputed, never trusted from the wire
	tampered := decoded
	tampered.CompletionPercentage = 99
	tampered.IsActive = false
	again := ToView(FromView(tampered))
	require.Equal(t, 50, again.CompletionPercentage)
	require.True(t, again.IsActive)
}

func TestViewDerivedProjection(t *testing.T) {
	t.Run(`status and priority carry display metadata`, func(t *testing.T) {
		view := ToView(entitymodels.Process{
			Status:   models.ProcessStatusOnHold,
			Priority: models.ProcessPriorityUrgent,
		})
		require.Equal(t, models.ProcessStatusOnHold.Label(), view.Status.Label)
		require.Equal(t, models.ProcessStatusOnHold.Color(), view.Status.Color)
		require.Equal(t, models.ProcessPriorityUrgent.Label(), view.Priority.Label)
	})

	t.Run(`deadline projection`, func(t *testing.T) {
		view := ToView(entitymodels.Process{})
		require.Nil(t, view.DaysUntilDeadline)

		deadline := time.Now().Add(5 * 24 * time.Hour)
		view = ToView(entitymodels.Process{Deadline: &deadline})
		require.NotNil(t, view.DaysUntilDeadline)
		require.True(t, view.IsUrgent)
	})
}
