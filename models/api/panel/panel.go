package panelapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type StatusCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

type RecentProcess struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CompanyActivity struct {
	CompanyName  string `json:"companyName"`
	ProcessCount int    `json:"processCount"`
}

// MetricsView is the dashboard read model. Simulated marks views built
// from synthetic data after an upstream failure.
type MetricsView struct {
	ProcessesByStatus   []StatusCount     `json:"processesByStatus"`
	ProcessesMonthly    []MonthlyCount    `json:"processesMonthly"`
	RecentProcesses     []RecentProcess   `json:"recentProcesses"`
	StudentsByStatus    []StatusCount     `json:"studentsByStatus"`
	MostActiveCompanies []CompanyActivity `json:"mostActiveCompanies"`
	GeneratedAt         time.Time         `json:"generatedAt"`
	Simulated           bool              `json:"simulated"`
}

// ExportRow is one metric line in an export, independent of format.
type ExportRow struct {
	Category    string
	Metric      string
	Value       string
	Description string
}

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatXLSX ExportFormat = "xlsx"
)

func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(raw) {
	case ExportFormatCSV, ExportFormatPDF, ExportFormatXLSX:
		return ExportFormat(raw), nil
	}
	return "", errors.Errorf("unsupported export format %q", raw)
}

// ExportView carries a generated file to the browser. Content is base64.
type ExportView struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"`
}
