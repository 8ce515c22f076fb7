package csvexport

import (
	"bytes"
	"encoding/csv"

	"github.com/pkg/errors"

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

func (i impl) ExportMetrics(rows []panelapimodels.ExportRow) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write([]string{"Category", "Metric", "Value", "Description"}); err != nil {
		return nil, errors.Wrap(err, "failed to write csv header")
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.Category, row.Metric, row.Value, row.Description}); err != nil {
			return nil, errors.Wrap(err, "failed to write csv row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush csv")
	}
	return buf, nil
}
