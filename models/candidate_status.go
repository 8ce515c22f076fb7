package models

// CandidateStatus tracks a candidate inside a process. The funnel runs
// applied → screening → interviewing → testing → offer_sent → hired, with
// rejected/withdrawn as absorbing exits. The backend accepts any value, so
// no transition table is enforced here.
type CandidateStatus string

const (
	CandidateStatusApplied      CandidateStatus = "applied"
	CandidateStatusScreening    CandidateStatus = "screening"
	CandidateStatusInterviewing CandidateStatus = "interviewing"
	CandidateStatusTesting      CandidateStatus = "testing"
	CandidateStatusOfferSent    CandidateStatus = "offer_sent"
	CandidateStatusHired        CandidateStatus = "hired"
	CandidateStatusRejected     CandidateStatus = "rejected"
	CandidateStatusWithdrawn    CandidateStatus = "withdrawn"
)

func AllCandidateStatuses() []CandidateStatus {
	return []CandidateStatus{
		CandidateStatusApplied,
		CandidateStatusScreening,
		CandidateStatusInterviewing,
		CandidateStatusTesting,
		CandidateStatusOfferSent,
		CandidateStatusHired,
		CandidateStatusRejected,
		CandidateStatusWithdrawn,
	}
}

func (s CandidateStatus) IsValid() bool {
	for _, known := range AllCandidateStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

func (s CandidateStatus) IsHired() bool {
	return s == CandidateStatusHired
}

// IsAbsorbing reports whether the candidate has left the funnel.
func (s CandidateStatus) IsAbsorbing() bool {
	return s == CandidateStatusRejected || s == CandidateStatusWithdrawn
}
