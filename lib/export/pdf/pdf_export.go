package pdfexport

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	panelapimodels "wired-people-backend/models/api/panel"
)

type Provider interface {
	ExportMetrics(title string, rows []panelapimodels.ExportRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) ExportMetrics(title string, rows []panelapimodels.ExportRow) (pdfFile *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportMetrics panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{40, 50, 30, 70}
	for idx, header := range []string{"Category", "Metric", "Value", "Description"} {
		pdf.CellFormat(widths[idx], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for idx, value := range []string{row.Category, row.Metric, row.Value, row.Description} {
			pdf.CellFormat(widths[idx], 8, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := &bytes.Buffer{}
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "failed to render pdf")
	}
	return buf, nil
}
