package exporter

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"kpicollector/internal/dataset"
)

// Export writes a collected product to an .xlsx workbook, one sheet per
// operation identifier. Tabular results become one header row plus data rows;
// per-subject mappings become subject/value rows with the value JSON-encoded;
// anything else lands JSON-encoded in a single cell.
func Export(path string, product map[string]any) error {
	if len(product) == 0 {
		return fmt.Errorf("nothing to export")
	}

	ops := make([]string, 0, len(product))
	for op := range product {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	f := excelize.NewFile()
	defer f.Close()

	for i, op := range ops {
		sheet := sheetName(op)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}
		if err := writeSheet(f, sheet, product[op]); err != nil {
			return fmt.Errorf("failed to export %s: %w", op, err)
		}
	}

	return f.SaveAs(path)
}

// sheetName truncates an operation identifier to the 31-character sheet name
// limit.
func sheetName(op string) string {
	if len(op) > 31 {
		return op[:31]
	}
	return op
}

func writeSheet(f *excelize.File, sheet string, value any) error {
	switch v := value.(type) {
	case *dataset.Frame:
		return writeFrame(f, sheet, v)
	case map[string]any:
		return writeMapping(f, sheet, v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, "A1", string(encoded))
	}
}

func writeFrame(f *excelize.File, sheet string, frame *dataset.Frame) error {
	header := make([]any, len(frame.Columns))
	for i, c := range frame.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range frame.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		cells := append([]any(nil), row...)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}

func writeMapping(f *excelize.File, sheet string, mapping map[string]any) error {
	subjects := make([]string, 0, len(mapping))
	for subject := range mapping {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	if err := f.SetSheetRow(sheet, "A1", &[]any{"subject", "value"}); err != nil {
		return err
	}
	for i, subject := range subjects {
		encoded, err := json.Marshal(mapping[subject])
		if err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{subject, string(encoded)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
