package dashboardhandler

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"wired-people-backend/lib/apperrors"
	csvexport "wired-people-backend/lib/export/csv"
	pdfexport "wired-people-backend/lib/export/pdf"
	xlsexport "wired-people-backend/lib/export/xls"
	upstreamclient "wired-people-backend/lib/upstream/client"
	initchecker "wired-people-backend/lib/utils/init-checker"
	panelapimodels "wired-people-backend/models/api/panel"
)

const (
	processStatusPath   = "/v1/panel/processes/status"
	processMonthlyPath  = "/v1/panel/processes/monthly"
	processRecentPath   = "/v1/panel/processes/recent"
	studentStatusPath   = "/v1/panel/students/status"
	activeCompaniesPath = "/v1/panel/companies/most-active"
)

// Provider serves the dashboard. Panel reads degrade to simulated data on
// upstream failure (when enabled) so the dashboard never shows an error
// state during backend incidents.
type Provider interface {
	Metrics(ctx context.Context, token string) (panelapimodels.MetricsView, error)
	Export(ctx context.Context, token string, format panelapimodels.ExportFormat) (panelapimodels.ExportView, error)
}

var Instance Provider

func NewHandler(client upstreamclient.Provider, simulateOnFailure bool) {
	instance := impl{
		client:            client,
		simulateOnFailure: simulateOnFailure,
	}
	initchecker.CheckInit(
		"client", instance.client,
		"csvExport", csvexport.Instance,
		"xlsExport", xlsexport.Instance,
		"pdfExport", pdfexport.Instance,
	)
	Instance = instance
}

type impl struct {
	client            upstreamclient.Provider
	simulateOnFailure bool
}

func (i impl) Metrics(ctx context.Context, token string) (panelapimodels.MetricsView, error) {
	view := panelapimodels.MetricsView{
		GeneratedAt: time.Now(),
	}

	degraded := false
	degraded = i.fetch(ctx, token, processStatusPath, &view.ProcessesByStatus) || degraded
	degraded = i.fetch(ctx, token, processMonthlyPath, &view.ProcessesMonthly) || degraded
	degraded = i.fetch(ctx, token, processRecentPath, &view.RecentProcesses) || degraded
	degraded = i.fetch(ctx, token, studentStatusPath, &view.StudentsByStatus) || degraded
	degraded = i.fetch(ctx, token, activeCompaniesPath, &view.MostActiveCompanies) || degraded

	if degraded {
		if !i.simulateOnFailure {
			return panelapimodels.MetricsView{}, apperrors.Upstream(nil, "panel data unavailable")
		}
		fillSimulated(&view)
		view.Simulated = true
	}
	return view, nil
}

// fetch loads one panel block; on failure it zeroes the target and
// reports degradation instead of propagating the error.
func (i impl) fetch(ctx context.Context, token, path string, out interface{}) (degraded bool) {
	if err := i.client.Get(ctx, token, path, nil, out); err != nil {
		log.WithError(err).WithField("panel_path", path).Warn("panel block degraded")
		return true
	}
	return false
}

func (i impl) Export(ctx context.Context, token string, format panelapimodels.ExportFormat) (panelapimodels.ExportView, error) {
	metrics, err := i.Metrics(ctx, token)
	if err != nil {
		return panelapimodels.ExportView{}, err
	}
	rows := buildExportRows(metrics)

	var (
		buf      *bytes.Buffer
		mimeType string
	)
	switch format {
	case panelapimodels.ExportFormatCSV:
		buf, err = csvexport.Instance.ExportMetrics(rows)
		mimeType = "text/csv"
	case panelapimodels.ExportFormatXLSX:
		buf, err = xlsexport.Instance.ExportMetrics(rows)
		mimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case panelapimodels.ExportFormatPDF:
		buf, err = pdfexport.Instance.ExportMetrics("Wired People Dashboard Metrics", rows)
		mimeType = "application/pdf"
	default:
		return panelapimodels.ExportView{}, apperrors.Validation("unsupported export format")
	}
	if err != nil {
		return panelapimodels.ExportView{}, err
	}

	return panelapimodels.ExportView{
		FileName: fmt.Sprintf("metrics-export-%v.%v", time.Now().Format("2006-01-02"), format),
		MimeType: mimeType,
		Content:  base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

func buildExportRows(metrics panelapimodels.MetricsView) []panelapimodels.ExportRow {
	var rows []panelapimodels.ExportRow
	for _, item := range metrics.ProcessesByStatus {
		rows = append(rows, panelapimodels.ExportRow{
			Category:    "Processes",
			Metric:      item.Label,
			Value:       fmt.Sprintf("%v", item.Count),
			Description: "Processes currently in status " + item.Label,
		})
	}
	for _, item := range metrics.ProcessesMonthly {
		rows = append(rows, panelapimodels.ExportRow{
			Category:    "Processes",
			Metric:      "Created " + item.Month,
			Value:       fmt.Sprintf("%v", item.Count),
			Description: "Processes created during " + item.Month,
		})
	}
	for _, item := range metrics.StudentsByStatus {
		rows = append(rows, panelapimodels.ExportRow{
			Category:    "Talents",
			Metric:      item.Label,
			Value:       fmt.Sprintf("%v", item.Count),
			Description: "Talents currently in status " + item.Label,
		})
	}
	for _, item := range metrics.MostActiveCompanies {
		rows = append(rows, panelapimodels.ExportRow{
			Category:    "Companies",
			Metric:      item.CompanyName,
			Value:       fmt.Sprintf("%v", item.ProcessCount),
			Description: "Processes opened by " + item.CompanyName,
		})
	}
	return rows
}
