package models

import (
	"strings"

	"wired-people-backend/lib/apperrors"
)

// ProcessStatus is the lifecycle state of a recruitment process.
//
// Allowed transitions:
//
//	DRAFT ──► ACTIVE ──► IN_PROGRESS ──► COMPLETED
//	  │         │  ▲          │
//	  │         ▼  │          ▼
//	  │       ON_HOLD ◄───────┘
//	  └──► CANCELLED (also reachable from ACTIVE, IN_PROGRESS, ON_HOLD)
//
// COMPLETED and CANCELLED are terminal.
type ProcessStatus int

const (
	ProcessStatusDraft      ProcessStatus = 0
	ProcessStatusActive     ProcessStatus = 1
	ProcessStatusInProgress ProcessStatus = 2
	ProcessStatusCompleted  ProcessStatus = 3
	ProcessStatusCancelled  ProcessStatus = 4
	ProcessStatusOnHold     ProcessStatus = 5
)

type processStatusInfo struct {
	label string
	color string
	icon  string
}

var processStatusInfos = map[ProcessStatus]processStatusInfo{
	ProcessStatusDraft:      {label: "Draft", color: "gray", icon: "pencil"},
	ProcessStatusActive:     {label: "Active", color: "green", icon: "play"},
	ProcessStatusInProgress: {label: "In Progress", color: "blue", icon: "refresh"},
	ProcessStatusCompleted:  {label: "Completed", color: "teal", icon: "check"},
	ProcessStatusCancelled:  {label: "Cancelled", color: "red", icon: "x"},
	ProcessStatusOnHold:     {label: "On Hold", color: "yellow", icon: "pause"},
}

// processStatusTransitions is the single source of truth for every
// status-dependent predicate (editable, deletable, candidate intake).
var processStatusTransitions = map[ProcessStatus][]ProcessStatus{
	ProcessStatusDraft:      {ProcessStatusActive, ProcessStatusCancelled},
	ProcessStatusActive:     {ProcessStatusInProgress, ProcessStatusOnHold, ProcessStatusCancelled},
	ProcessStatusInProgress: {ProcessStatusCompleted, ProcessStatusOnHold, ProcessStatusCancelled},
	ProcessStatusOnHold:     {ProcessStatusActive, ProcessStatusCancelled},
}

func ProcessStatusFromValue(value int) (ProcessStatus, error) {
	status := ProcessStatus(value)
	if _, ok := processStatusInfos[status]; !ok {
		return 0, apperrors.Validation("unknown process status value")
	}
	return status, nil
}

func ProcessStatusFromLabel(label string) (ProcessStatus, error) {
	for status, info := range processStatusInfos {
		if strings.EqualFold(info.label, label) {
			return status, nil
		}
	}
	return 0, apperrors.NotFound("process status not found")
}

func AllProcessStatuses() []ProcessStatus {
	return []ProcessStatus{
		ProcessStatusDraft,
		ProcessStatusActive,
		ProcessStatusInProgress,
		ProcessStatusCompleted,
		ProcessStatusCancelled,
		ProcessStatusOnHold,
	}
}

func (s ProcessStatus) Label() string {
	return processStatusInfos[s].label
}

func (s ProcessStatus) Color() string {
	return processStatusInfos[s].color
}

func (s ProcessStatus) Icon() string {
	return processStatusInfos[s].icon
}

func (s ProcessStatus) IsActive() bool {
	return s == ProcessStatusActive || s == ProcessStatusInProgress
}

func (s ProcessStatus) IsCompleted() bool {
	return s == ProcessStatusCompleted
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s ProcessStatus) IsTerminal() bool {
	return len(processStatusTransitions[s]) == 0
}

// IsEditable reports whether a process in this status accepts field updates.
// IN_PROGRESS processes are locked: candidates are already moving through
// selection and the requisition terms must not change under them.
func (s ProcessStatus) IsEditable() bool {
	return s == ProcessStatusDraft || s == ProcessStatusActive || s == ProcessStatusOnHold
}

func (s ProcessStatus) CanTransitionTo(target ProcessStatus) bool {
	for _, allowed := range processStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
