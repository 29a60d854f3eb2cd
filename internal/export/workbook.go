package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	SheetWills      = "Wills"
	SheetBelongings = "Belongings"
	SheetLetters    = "Letters"
)

type sheet struct {
	name   string
	header []string
	widths []float64
	rows   [][]any
}

// WriteWorkbook writes wills, belongings and letters as an xlsx workbook,
// one sheet each, with a bold frozen header row.
func (b Bundle) WriteWorkbook(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6E6"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for _, s := range b.sheets() {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (b Bundle) sheets() []sheet {
	doc := b.Document

	wills := sheet{
		name:   SheetWills,
		header: []string{"ID", "Created", "Title", "Assets", "Beneficiaries", "Special Instructions"},
		widths: []float64{16, 26, 24, 40, 30, 40},
	}
	for _, w := range doc.Wills {
		wills.rows = append(wills.rows, []any{idCell(w.ID), w.CreatedAt, w.Title, w.Assets, w.Beneficiaries, w.Special})
	}

	belongings := sheet{
		name:   SheetBelongings,
		header: []string{"ID", "Created", "Name", "Category", "Location", "Recipient", "Description"},
		widths: []float64{16, 26, 24, 14, 24, 20, 40},
	}
	for _, item := range doc.Belongings {
		belongings.rows = append(belongings.rows, []any{
			idCell(item.ID), item.CreatedAt, item.Name, string(item.Category), item.Location, item.Recipient, item.Description,
		})
	}

	letters := sheet{
		name:   SheetLetters,
		header: []string{"ID", "Created", "Recipient", "Title", "Delivery", "Date", "Content"},
		widths: []float64{16, 26, 20, 24, 14, 12, 60},
	}
	for _, l := range doc.Letters {
		letters.rows = append(letters.rows, []any{
			idCell(l.ID), l.CreatedAt, l.Recipient, l.Title, string(l.Timing), string(l.Date), l.Content,
		})
	}

	return []sheet{wills, belongings, letters}
}

// idCell keeps millisecond IDs as text so spreadsheets don't render them in
// scientific notation.
func idCell(id int64) string {
	return strconv.FormatInt(id, 10)
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	for col, title := range s.header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.name, cell, title); err != nil {
			return fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(s.name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("set header style: %w", err)
		}
	}

	for i, width := range s.widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, name, name, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	for r, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("set row %d: %w", r+2, err)
		}
	}

	return f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
