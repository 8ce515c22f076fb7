package dashboardhandler

import (
	"fmt"
	"time"

	panelapimodels "wired-people-backend/models/api/panel"
)

// fillSimulated substitutes synthetic values for every panel block that
// came back empty. Values are fixed, not random, so the degraded
// dashboard is stable across refreshes.
func fillSimulated(view *panelapimodels.MetricsView) {
	if len(view.ProcessesByStatus) == 0 {
		view.ProcessesByStatus = []panelapimodels.StatusCount{
			{Label: "Active", Count: 12},
			{Label: "In Progress", Count: 7},
			{Label: "Completed", Count: 24},
			{Label: "On Hold", Count: 3},
		}
	}
	if len(view.ProcessesMonthly) == 0 {
		now := time.Now()
		counts := []int{4, 6, 5, 8, 7, 9}
		for offset := len(counts) - 1; offset >= 0; offset-- {
			month := now.AddDate(0, -offset, 0)
			view.ProcessesMonthly = append(view.ProcessesMonthly, panelapimodels.MonthlyCount{
				Month: month.Format("2006-01"),
				Count: counts[len(counts)-1-offset],
			})
		}
	}
	if len(view.RecentProcesses) == 0 {
		names := []string{"Senior Backend Engineer", "QA Automation Lead", "UX Designer"}
		for idx, name := range names {
			view.RecentProcesses = append(view.RecentProcesses, panelapimodels.RecentProcess{
				ID:        fmt.Sprintf("simulated-%v", idx+1),
				Name:      name,
				Status:    "Active",
				CreatedAt: time.Now().AddDate(0, 0, -idx),
			})
		}
	}
	if len(view.StudentsByStatus) == 0 {
		view.StudentsByStatus = []panelapimodels.StatusCount{
			{Label: "Available", Count: 48},
			{Label: "Interviewing", Count: 15},
			{Label: "Hired", Count: 22},
		}
	}
	if len(view.MostActiveCompanies) == 0 {
		view.MostActiveCompanies = []panelapimodels.CompanyActivity{
			{CompanyName: "Wired People Inc.", ProcessCount: 18},
		}
	}
}
