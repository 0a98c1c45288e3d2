package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yigit/contribtrack/internal/app/models"
)

const (
	// ContentType is the MIME type of an .xlsx workbook
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Placeholder is written where a related name or email is missing
	Placeholder = "—"

	// TimestampLayout formats Submitted At
	TimestampLayout = "2006-01-02 15:04:05"

	baseSheetName = "Contributions"
	maxSheetName  = 31
)

// Header is the fixed column order of the export
var Header = []string{
	"Department",
	"Department Code",
	"HOD Name",
	"RP Email",
	"Submitted By",
	"Submitter Email",
	"Academy %",
	"Intensive %",
	"NIAT %",
	"Total %",
	"Cycle",
	"Submitted At",
	"Remarks",
}

var columnWidths = []float64{28, 16, 24, 30, 24, 30, 12, 12, 12, 12, 14, 20, 40}

// SheetName returns "Contributions" or "Contributions <cycle>", stripped of
// characters Excel rejects and cut to 31 characters
func SheetName(cycle string) string {
	name := baseSheetName
	if c := strings.TrimSpace(cycle); c != "" {
		name = baseSheetName + " " + c
	}

	name = strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', '?', '*', '[', ']', ':':
			return '-'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")

	runes := []rune(name)
	if len(runes) > maxSheetName {
		name = strings.TrimSpace(string(runes[:maxSheetName]))
	}
	return name
}

// FileName returns the attachment name for a cycle, "all" when none
func FileName(cycle string) string {
	c := strings.TrimSpace(cycle)
	if c == "" {
		c = "all"
	}
	c = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, c)
	return fmt.Sprintf("contributions_%s.xlsx", c)
}

// Row converts a populated contribution into one sheet row
func Row(c *models.Contribution) []interface{} {
	deptName, deptCode, hodName, hodEmail := Placeholder, Placeholder, Placeholder, Placeholder
	if c.Department != nil {
		deptName = orPlaceholder(c.Department.Name)
		deptCode = orPlaceholder(c.Department.Code)
		if c.Department.HOD != nil {
			hodName = orPlaceholder(c.Department.HOD.Name)
			hodEmail = orPlaceholder(c.Department.HOD.Email)
		}
	}

	submitter, submitterEmail := Placeholder, Placeholder
	if c.SubmittedBy != nil {
		submitter = orPlaceholder(c.SubmittedBy.Name)
		submitterEmail = orPlaceholder(c.SubmittedBy.Email)
	}

	submittedAt := ""
	if !c.SubmittedAt.IsZero() {
		submittedAt = c.SubmittedAt.Format(TimestampLayout)
	}

	return []interface{}{
		deptName,
		deptCode,
		hodName,
		hodEmail,
		submitter,
		submitterEmail,
		c.Academy,
		c.Intensive,
		c.Niat,
		c.Total(),
		orPlaceholder(c.Cycle),
		submittedAt,
		c.Remarks,
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// BuildWorkbook lays the contributions out on a single sheet with a bold,
// frozen header row. The caller owns the returned file and must Close it.
func BuildWorkbook(contributions []*models.Contribution, cycle string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := SheetName(cycle)

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, c := range contributions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := Row(c)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := styleSheet(f, sheet); err != nil {
		f.Close()
		return nil, err
	}

	_ = f.SetDocProps(&excelize.DocProperties{
		Title:   sheet,
		Creator: "contribtrack",
	})

	return f, nil
}

func styleSheet(f *excelize.File, sheet string) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, w := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}
	return nil
}

// WriteWorkbook renders the contributions as .xlsx bytes
func WriteWorkbook(contributions []*models.Contribution, cycle string) ([]byte, error) {
	f, err := BuildWorkbook(contributions, cycle)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
