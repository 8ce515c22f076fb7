package processhandler

import (
	"strings"

	processapimodels "wired-people-backend/models/api/process"
	entitymodels "wired-people-backend/models/entity"
)

func matchesFilter(proc entitymodels.Process, filter processapimodels.ProcessFilter) bool {
	if len(filter.Statuses) > 0 && !containsInt(filter.Statuses, int(proc.Status)) {
		return false
	}
	if len(filter.Priorities) > 0 && !containsInt(filter.Priorities, proc.Priority.Weight()) {
		return false
	}
	if filter.RemoteOnly && !proc.Remote {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(proc.Name), needle) &&
			!strings.Contains(strings.ToLower(proc.Description), needle) &&
			!strings.Contains(strings.ToLower(proc.Location), needle) {
			return false
		}
	}
	return true
}

func containsInt(values []int, target int) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
