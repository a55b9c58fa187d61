package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	ExportCommissionSummary(rows []dbmodels.CommissionSummaryRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var summaryHeaders = []string{"Recruiter", "Total commission", "Received", "Pending"}

func (i impl) ExportCommissionSummary(rows []dbmodels.CommissionSummaryRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, summaryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(rows) != 0 {
		row, err = writeSummaryData(f, sheet, rows, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Commissions")
	return f.WriteToBuffer()
}

func writeSummaryData(f *excelize.File, sheet string, rows []dbmodels.CommissionSummaryRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(summaryHeaders), len(rows)+1); err != nil {
		return row, err
	}
	for _, item := range rows {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.AuthorName); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.TotalCurrent); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.TotalReceived); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.TotalPending()); err != nil {
			return row, err
		}
	}
	return row, nil
}
