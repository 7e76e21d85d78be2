// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/research-design/pkg/types"
)

const sheetName = "Methods"

// xlsxHeaders are the comparison sheet columns, one per ResearchMethod field.
var xlsxHeaders = []string{
	"ID", "Name", "Description", "Best for", "Not good for",
	"Timeframe", "Participants", "Cost", "Skills", "Deliverables",
}

// methodRow flattens a method into one spreadsheet row.
func methodRow(m types.ResearchMethod) []string {
	return []string{
		m.ID, m.Name, m.Description,
		strings.Join(m.BestFor, ", "), strings.Join(m.NotGoodFor, ", "),
		m.Timeframe, m.Participants, string(m.Cost),
		strings.Join(m.Skills, ", "), strings.Join(m.Deliverables, ", "),
	}
}

// WriteXLSX writes a method comparison sheet to path, one row per method in
// the given order.
func WriteXLSX(path string, ms []types.ResearchMethod) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("writing header %s: %w", h, err)
		}
	}

	for r, m := range ms {
		for c, v := range methodRow(m) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing %s: %w", m.ID, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
