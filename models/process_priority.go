package models

import (
	"strings"

	"wired-people-backend/lib/apperrors"
)

// ProcessPriority orders processes by urgency. Higher weight sorts first.
type ProcessPriority int

const (
	ProcessPriorityLow    ProcessPriority = 1
	ProcessPriorityMedium ProcessPriority = 2
	ProcessPriorityHigh   ProcessPriority = 3
	ProcessPriorityUrgent ProcessPriority = 4
)

type processPriorityInfo struct {
	label string
	color string
}

var processPriorityInfos = map[ProcessPriority]processPriorityInfo{
	ProcessPriorityLow:    {label: "Low", color: "gray"},
	ProcessPriorityMedium: {label: "Medium", color: "blue"},
	ProcessPriorityHigh:   {label: "High", color: "orange"},
	ProcessPriorityUrgent: {label: "Urgent", color: "red"},
}

func ProcessPriorityFromValue(value int) (ProcessPriority, error) {
	priority := ProcessPriority(value)
	if _, ok := processPriorityInfos[priority]; !ok {
		return 0, apperrors.Validation("unknown process priority value")
	}
	return priority, nil
}

func ProcessPriorityFromLabel(label string) (ProcessPriority, error) {
	for priority, info := range processPriorityInfos {
		if strings.EqualFold(info.label, label) {
			return priority, nil
		}
	}
	return 0, apperrors.NotFound("process priority not found")
}

func (p ProcessPriority) Label() string {
	return processPriorityInfos[p].label
}

func (p ProcessPriority) Color() string {
	return processPriorityInfos[p].color
}

func (p ProcessPriority) Weight() int {
	return int(p)
}

func (p ProcessPriority) HigherThan(other ProcessPriority) bool {
	return p > other
}
