// Package export writes conversion tables as Excel workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mtlprog/gold2btc/internal/converter"
	"github.com/mtlprog/gold2btc/internal/domain"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// numFmtThousands is the built-in Excel format "#,##0.00".
const numFmtThousands = 4

// SheetName returns the worksheet name used for a table driven by asset.
func SheetName(asset domain.AssetKind) string {
	return asset.Label() + " input"
}

// Headers returns the column titles, the input column first.
func Headers(asset domain.AssetKind) []any {
	return []any{
		fmt.Sprintf("%s input (%s)", asset.Label(), asset.Unit()),
		fmt.Sprintf("Gold (%s)", domain.GoldOunce.Unit()),
		fmt.Sprintf("Silver (%s)", domain.SilverOunce.Unit()),
		fmt.Sprintf("Bitcoin (%s)", domain.BitcoinUnit.Unit()),
	}
}

// NewWorkbook builds a workbook with one sheet holding rows. The caller must Close it.
func NewWorkbook(asset domain.AssetKind, rows []converter.TableRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := SheetName(asset)

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	header := Headers(asset)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("cell for row %d: %w", i, err)
		}
		values := []any{r.Input, r.Result.GoldPrice, r.Result.SilverPrice, r.Result.BitcoinPrice}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	if len(rows) > 0 {
		if err := applyNumberFormat(f, sheet, len(rows)); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "A", "D", 22); err != nil {
		f.Close()
		return nil, fmt.Errorf("setting column width: %w", err)
	}

	return f, nil
}

// WriteTable renders rows as an .xlsx workbook into w.
func WriteTable(w io.Writer, asset domain.AssetKind, rows []converter.TableRow) error {
	f, err := NewWorkbook(asset, rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func applyNumberFormat(f *excelize.File, sheet string, n int) error {
	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		return fmt.Errorf("creating number style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(4, n+1)
	if err != nil {
		return fmt.Errorf("last cell: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A2", last, style); err != nil {
		return fmt.Errorf("applying number style: %w", err)
	}
	return nil
}
