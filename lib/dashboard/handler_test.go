package dashboardhandler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/csv"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wired-people-backend/lib/apperrors"
	csvexport "wired-people-backend/lib/export/csv"
	pdfexport "wired-people-backend/lib/export/pdf"
	xlsexport "wired-people-backend/lib/export/xls"
	upstreamclient "wired-people-backend/lib/upstream/client"
	panelapimodels "wired-people-backend/models/api/panel"
)

// fakeClient serves canned panel blocks per path; paths listed in failing
// return an upstream error.
type fakeClient struct {
	failing map[string]bool
}

func (f fakeClient) Get(_ context.Context, _, path string, _ url.Values, out interface{}) error {
	if f.failing[path] {
		return apperrors.Upstream(nil, "backend down")
	}
	switch target := out.(type) {
	case *[]panelapimodels.StatusCount:
		*target = []panelapimodels.StatusCount{{Label: "Active", Count: 5}}
	case *[]panelapimodels.MonthlyCount:
		*target = []panelapimodels.MonthlyCount{{Month: "2026-08", Count: 3}}
	case *[]panelapimodels.RecentProcess:
		*target = []panelapimodels.RecentProcess{{ID: "p-1", Name: "Backend Engineer", Status: "Active"}}
	case *[]panelapimodels.CompanyActivity:
		*target = []panelapimodels.CompanyActivity{{CompanyName: "Wired People Inc.", ProcessCount: 9}}
	}
	return nil
}

func (f fakeClient) GetPaged(_ context.Context, _, _ string, _ url.Values) (upstreamclient.PagedData, error) {
	return upstreamclient.PagedData{}, nil
}

func (f fakeClient) Post(_ context.Context, _, _ string, _ interface{}, _ interface{}) error {
	return nil
}

func (f fakeClient) Patch(_ context.Context, _, _ string, _ interface{}, _ interface{}) error {
	return nil
}

func (f fakeClient) Delete(_ context.Context, _, _ string) error {
	return nil
}

func newTestHandler(client fakeClient, simulateOnFailure bool) impl {
	csvexport.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	return impl{client: client, simulateOnFailure: simulateOnFailure}
}

func TestMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run(`healthy upstream`, func(t *testing.T) {
		view, err := newTestHandler(fakeClient{}, true).Metrics(ctx, "token")
		require.Nil(t, err)
		require.False(t, view.Simulated)
		require.Equal(t, 5, view.ProcessesByStatus[0].Count)
		require.False(t, view.GeneratedAt.IsZero())
	})

	t.Run(`failed block degrades to simulated data`, func(t *testing.T) {
		client := fakeClient{failing: map[string]bool{processStatusPath: true}}
		view, err := newTestHandler(client, true).Metrics(ctx, "token")
		require.Nil(t, err)
		require.True(t, view.Simulated)
		// the failed block is substituted, the healthy ones kept
		require.NotEmpty(t, view.ProcessesByStatus)
		require.Equal(t, "2026-08", view.ProcessesMonthly[0].Month)
	})

	t.Run(`degradation without simulation is an upstream error`, func(t *testing.T) {
		client := fakeClient{failing: map[string]bool{processStatusPath: true}}
		_, err := newTestHandler(client, false).Metrics(ctx, "token")
		require.Equal(t, apperrors.KindUpstream, apperrors.KindOf(err))
	})
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	handler := newTestHandler(fakeClient{}, true)

	t.Run(`csv content and filename`, func(t *testing.T) {
		export, err := handler.Export(ctx, "token", panelapimodels.ExportFormatCSV)
		require.Nil(t, err)
		require.True(t, strings.HasPrefix(export.FileName, "metrics-export-"))
		require.True(t, strings.HasSuffix(export.FileName, ".csv"))
		require.Equal(t, "text/csv", export.MimeType)

		decoded, err := base64.StdEncoding.DecodeString(export.Content)
		require.Nil(t, err)
		records, err := csv.NewReader(bytes.NewReader(decoded)).ReadAll()
		require.Nil(t, err)
		require.Equal(t, []string{"Category", "Metric", "Value", "Description"}, records[0])
		require.Greater(t, len(records), 1)
	})

	t.Run(`xlsx content is a zip archive`, func(t *testing.T) {
		export, err := handler.Export(ctx, "token", panelapimodels.ExportFormatXLSX)
		require.Nil(t, err)
		decoded, err := base64.StdEncoding.DecodeString(export.Content)
		require.Nil(t, err)
		require.Equal(t, "PK", string(decoded[:2]))
	})

	t.Run(`pdf magic bytes`, func(t *testing.T) {
		export, err := handler.Export(ctx, "token", panelapimodels.ExportFormatPDF)
		require.Nil(t, err)
		decoded, err := base64.StdEncoding.DecodeString(export.Content)
		require.Nil(t, err)
		require.Equal(t, "%PDF", string(decoded[:4]))
	})

	t.Run(`unknown format`, func(t *testing.T) {
		_, err := handler.Export(ctx, "token", panelapimodels.ExportFormat("docx"))
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestParseExportFormat(t *testing.T) {
	for _, raw := range []string{"csv", "pdf", "xlsx"} {
		format, err := panelapimodels.ParseExportFormat(raw)
		require.Nil(t, err)
		require.Equal(t, raw, string(format))
	}
	_, err := panelapimodels.ParseExportFormat("docx")
	require.NotNil(t, err)
}
