package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	panelapimodels "wired-people-backend/models/api/panel"
)

type Provider interface {
	ExportMetrics(rows []panelapimodels.ExportRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var metricHeaders = []string{"Category", "Metric", "Value", "Description"}

func (i impl) ExportMetrics(rows []panelapimodels.ExportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close workbook")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, metricHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(rows) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(metricHeaders), len(rows)+1); err != nil {
			return nil, errors.Wrap(err, "failed to style xlsx data cells")
		}
		for _, item := range rows {
			row++
			for col, value := range []string{item.Category, item.Metric, item.Value, item.Description} {
				if err = writeColumn(f, sheet, col+1, row, value); err != nil {
					return nil, errors.Wrap(err, "failed to write xlsx data row")
				}
			}
		}
	}
	f.SetSheetName(sheet, "Metrics")
	return f.WriteToBuffer()
}
