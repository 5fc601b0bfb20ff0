// Package export renders already-computed rows into xlsx workbooks. It is
// purely presentational: no business logic, no recomputation.
package export

import (
	"fmt"
	"io"
	"time"

	"salesledger/internal/model"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const columnWidth = 15

var printer = message.NewPrinter(language.English)

// Options describes one export: Headers[i] is the spreadsheet header for the
// value found under ColumnKeys[i] in each row.
type Options struct {
	Filename   string
	SheetName  string
	Headers    []string
	ColumnKeys []string
	Rows       []map[string]any
}

// Attachment is the filename the download should carry.
func (o Options) Attachment() string {
	return o.Filename + ".xlsx"
}

// formatCell maps a raw row value to its display form: dates become
// localized date strings, numbers localized number strings, and a joined
// customer collapses to its name. Everything else passes through.
func formatCell(v any) any {
	switch value := v.(type) {
	case time.Time:
		return value.Format("1/2/2006")
	case *model.Customer:
		if value == nil {
			return ""
		}
		return value.Name
	case float64:
		return printer.Sprintf("%v", value)
	case int:
		return printer.Sprintf("%v", value)
	case int64:
		return printer.Sprintf("%v", value)
	case nil:
		return ""
	default:
		return value
	}
}

// Workbook builds the xlsx file for the given rows.
func Workbook(opts Options) (*excelize.File, error) {
	sheet := opts.SheetName
	if sheet == "" {
		sheet = "Sheet1"
	}

	f := excelize.NewFile()
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, err
		}
	}

	for i, header := range opts.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range opts.Rows {
		for colIdx, key := range opts.ColumnKeys {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, formatCell(row[key])); err != nil {
				return nil, err
			}
		}
	}

	if len(opts.Headers) > 0 {
		last, err := excelize.ColumnNumberToName(len(opts.Headers))
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "A", last, columnWidth); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Write renders the workbook straight to w.
func Write(w io.Writer, opts Options) error {
	f, err := Workbook(opts)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	return f.Write(w)
}
