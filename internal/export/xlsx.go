// Package export writes the operator tables of a dashboard as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"casemonitor/internal/service"

	"github.com/xuri/excelize/v2"
)

const (
	SheetRanking = "Ranking"
	SheetDaily   = "Daily"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteOperatorWorkbook writes the operator ranking and the per-day operator
// table of d to w. Sections without data get a header row only.
func WriteOperatorWorkbook(w io.Writer, d *service.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRanking); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetDaily); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeRanking(f, d); err != nil {
		return err
	}
	if err := writeDaily(f, d); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRanking(f *excelize.File, d *service.Dashboard) error {
	if err := setRow(f, SheetRanking, 1, []interface{}{"Operator", "Completed", "In progress", "Assigned"}); err != nil {
		return err
	}
	for i, op := range d.Ranking {
		if err := setRow(f, SheetRanking, i+2, []interface{}{op.Operator, op.Completed, op.InProgress, op.Assigned}); err != nil {
			return err
		}
	}
	return nil
}

func writeDaily(f *excelize.File, d *service.Dashboard) error {
	header := []interface{}{"Operator", "Sum"}
	if d.Daily == nil {
		return setRow(f, SheetDaily, 1, header)
	}

	for _, date := range d.Daily.Dates {
		header = append(header, date)
	}
	if err := setRow(f, SheetDaily, 1, header); err != nil {
		return err
	}

	for i, op := range d.Daily.Operators {
		row := []interface{}{op.Operator, op.Sum}
		for _, n := range op.PerDay {
			row = append(row, n)
		}
		if err := setRow(f, SheetDaily, i+2, row); err != nil {
			return err
		}
	}

	totals := []interface{}{"Total", nil}
	sum := 0
	for _, t := range d.Daily.Totals {
		totals = append(totals, t.Completed)
		sum += t.Completed
	}
	totals[1] = sum
	return setRow(f, SheetDaily, len(d.Daily.Operators)+2, totals)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
