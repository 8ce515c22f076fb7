package entitymodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wired-people-backend/lib/apperrors"
	"wired-people-backend/models"
)

func TestProcessDerived(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run(`completion percentage`, func(t *testing.T) {
		proc := Process{StudentsCount: 5, Vacancies: 10}
		require.Equal(t, 50, proc.CompletionPercentage())

		proc = Process{StudentsCount: 12, Vacancies: 10}
		require.Equal(t, 100, proc.CompletionPercentage())

		proc = Process{StudentsCount: 5, Vacancies: 0}
		require.Equal(t, 0, proc.CompletionPercentage())
	})

	t.Run(`urgency window`, func(t *testing.T) {
		inSeven := now.AddDate(0, 0, 7)
		proc := Process{Deadline: &inSeven}
		require.True(t, proc.IsUrgentAt(now))

		inEight := now.AddDate(0, 0, 8)
		proc = Process{Deadline: &inEight}
		require.False(t, proc.IsUrgentAt(now))

		past := now.AddDate(0, 0, -1)
		proc = Process{Deadline: &past}
		require.False(t, proc.IsUrgentAt(now))

		proc = Process{}
		require.False(t, proc.IsUrgentAt(now))
	})

	t.Run(`expiry`, func(t *testing.T) {
		past := now.Add(-time.Minute)
		proc := Process{Deadline: &past}
		require.True(t, proc.HasExpiredAt(now))

		future := now.Add(time.Minute)
		proc = Process{Deadline: &future}
		require.False(t, proc.HasExpiredAt(now))

		proc = Process{}
		require.False(t, proc.HasExpiredAt(now))
	})

	t.Run(`can add candidate`, func(t *testing.T) {
		future := now.AddDate(0, 1, 0)
		proc := Process{
			Status:        models.ProcessStatusActive,
			Vacancies:     10,
			StudentsCount: 9,
			Deadline:      &future,
		}
		require.True(t, proc.CanAddCandidateAt(now))

		proc.StudentsCount = 10
		require.False(t, proc.CanAddCandidateAt(now))

		proc.StudentsCount = 9
		proc.Status = models.ProcessStatusDraft
		require.False(t, proc.CanAddCandidateAt(now))

		proc.Status = models.ProcessStatusInProgress
		past := now.Add(-time.Hour)
		proc.Deadline = &past
		require.False(t, proc.CanAddCandidateAt(now))
	})

	t.Run(`free slots never negative`, func(t *testing.T) {
		proc := Process{Vacancies: 5, ActiveCandidates: 8}
		require.Equal(t, 0, proc.FreeSlots())
		proc = Process{Vacancies: 10, ActiveCandidates: 8}
		require.Equal(t, 2, proc.FreeSlots())
	})
}

func TestProcessTransitions(t *testing.T) {
	t.Run(`legal chain`, func(t *testing.T) {
		proc := Process{Status: models.ProcessStatusDraft}
		require.Nil(t, proc.Activate())
		require.Nil(t, proc.Start())
		require.Nil(t, proc.Suspend())
		require.Nil(t, proc.Activate())
		require.Nil(t, proc.Start())
		require.Nil(t, proc.Complete())
		require.Equal(t, models.ProcessStatusCompleted, proc.Status)
	})

	t.Run(`illegal moves rejected`, func(t *testing.T) {
		proc := Process{Status: models.ProcessStatusDraft}
		err := proc.Complete()
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindPreconditionFailed, apperrors.KindOf(err))
		require.Equal(t, models.ProcessStatusDraft, proc.Status)

		proc = Process{Status: models.ProcessStatusCompleted}
		err = proc.Activate()
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindPreconditionFailed, apperrors.KindOf(err))
	})

	t.Run(`same-status transition is a no-op`, func(t *testing.T) {
		proc := Process{Status: models.ProcessStatusActive}
		require.Nil(t, proc.TransitionTo(models.ProcessStatusActive))
		require.Equal(t, models.ProcessStatusActive, proc.Status)
	})
}

func TestProcessCandidate(t *testing.T) {
	t.Run(`score bounds enforced`, func(t *testing.T) {
		candidate := ProcessCandidate{}
		require.NotNil(t, candidate.SetScore(-1))
		require.NotNil(t, candidate.SetScore(101))
		require.Nil(t, candidate.SetScore(0))
		require.Nil(t, candidate.SetScore(100))
		require.Equal(t, 100, *candidate.Score)
	})

	t.Run(`notes are append-only with ids`, func(t *testing.T) {
		candidate := ProcessCandidate{}
		require.Nil(t, candidate.AddNote("recruiter", "strong phone screen"))
		require.Nil(t, candidate.AddNote("recruiter", "sent take-home"))
		require.Len(t, candidate.Notes, 2)
		require.NotEmpty(t, candidate.Notes[0].ID)
		require.NotEqual(t, candidate.Notes[0].ID, candidate.Notes[1].ID)

		err := candidate.AddNote("recruiter", "   ")
		require.NotNil(t, err)
		require.Len(t, candidate.Notes, 2)
	})

	t.Run(`status mutation touches activity`, func(t *testing.T) {
		candidate := ProcessCandidate{Status: models.CandidateStatusApplied}
		before := candidate.LastActivityAt
		require.Nil(t, candidate.SetStatus(models.CandidateStatusScreening))
		require.True(t, candidate.LastActivityAt.After(before))

		err := candidate.SetStatus(models.CandidateStatus("ghosted"))
		require.NotNil(t, err)
		require.Equal(t, models.CandidateStatusScreening, candidate.Status)
	})
}
