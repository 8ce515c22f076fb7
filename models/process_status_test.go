package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wired-people-backend/lib/apperrors"
)

func TestProcessStatus(t *testing.T) {
	t.Run(`transition table check`, func(t *testing.T) {
		allowed := map[ProcessStatus][]ProcessStatus{
			ProcessStatusDraft:      {ProcessStatusActive, ProcessStatusCancelled},
			ProcessStatusActive:     {ProcessStatusInProgress, ProcessStatusOnHold, ProcessStatusCancelled},
			ProcessStatusInProgress: {ProcessStatusCompleted, ProcessStatusOnHold, ProcessStatusCancelled},
			ProcessStatusCompleted:  {},
			ProcessStatusCancelled:  {},
			ProcessStatusOnHold:     {ProcessStatusActive, ProcessStatusCancelled},
		}
		for _, from := range AllProcessStatuses() {
			for _, to := range AllProcessStatuses() {
				expected := false
				for _, target := range allowed[from] {
					if target == to {
						expected = true
					}
				}
				require.Equal(t, expected, from.CanTransitionTo(to),
					"%v -> %v", from.Label(), to.Label())
			}
		}
	})

	t.Run(`terminal statuses have no outgoing edges`, func(t *testing.T) {
		require.True(t, ProcessStatusCompleted.IsTerminal())
		require.True(t, ProcessStatusCancelled.IsTerminal())
		require.False(t, ProcessStatusDraft.IsTerminal())
		require.False(t, ProcessStatusOnHold.IsTerminal())
	})

	t.Run(`on hold re-enters active but draft cannot re-enter on hold`, func(t *testing.T) {
		require.True(t, ProcessStatusOnHold.CanTransitionTo(ProcessStatusActive))
		require.False(t, ProcessStatusDraft.CanTransitionTo(ProcessStatusOnHold))
	})

	t.Run(`editable set`, func(t *testing.T) {
		require.True(t, ProcessStatusDraft.IsEditable())
		require.True(t, ProcessStatusActive.IsEditable())
		require.True(t, ProcessStatusOnHold.IsEditable())
		require.False(t, ProcessStatusInProgress.IsEditable())
		require.False(t, ProcessStatusCompleted.IsEditable())
		require.False(t, ProcessStatusCancelled.IsEditable())
	})

	t.Run(`from value`, func(t *testing.T) {
		status, err := ProcessStatusFromValue(2)
		require.Nil(t, err)
		require.Equal(t, ProcessStatusInProgress, status)

		_, err = ProcessStatusFromValue(6)
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run(`from label is case-insensitive`, func(t *testing.T) {
		status, err := ProcessStatusFromLabel("in progress")
		require.Nil(t, err)
		require.Equal(t, ProcessStatusInProgress, status)

		status, err = ProcessStatusFromLabel("ON HOLD")
		require.Nil(t, err)
		require.Equal(t, ProcessStatusOnHold, status)

		_, err = ProcessStatusFromLabel("archived")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run(`projections are defined for every status`, func(t *testing.T) {
		for _, status := range AllProcessStatuses() {
			require.NotEmpty(t, status.Label())
			require.NotEmpty(t, status.Color())
			require.NotEmpty(t, status.Icon())
		}
	})
}

func TestProcessPriority(t *testing.T) {
	t.Run(`total order by weight`, func(t *testing.T) {
		require.True(t, ProcessPriorityUrgent.HigherThan(ProcessPriorityHigh))
		require.True(t, ProcessPriorityHigh.HigherThan(ProcessPriorityMedium))
		require.True(t, ProcessPriorityMedium.HigherThan(ProcessPriorityLow))
		require.False(t, ProcessPriorityLow.HigherThan(ProcessPriorityUrgent))
	})

	t.Run(`from value rejects unknown`, func(t *testing.T) {
		_, err := ProcessPriorityFromValue(0)
		require.NotNil(t, err)
		_, err = ProcessPriorityFromValue(5)
		require.NotNil(t, err)
		priority, err := ProcessPriorityFromValue(4)
		require.Nil(t, err)
		require.Equal(t, ProcessPriorityUrgent, priority)
	})
}
