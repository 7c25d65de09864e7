package application

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildExcelReport renders the snapshot as the familiar results grid: one
// row per opponent, an attacker and a defender column per own submission.
func BuildExcelReport(snap *Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Results"
	f.NewSheet(sheet)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheet, "A1", "Opponent")
	col := 2
	for _, subID := range snap.Roster.OurIDs {
		commit := snap.Roster.CommitByID[subID]
		if len(commit) > 6 {
			commit = commit[:6]
		}
		label := fmt.Sprintf("%d %s", subID, commit)
		if subID == snap.Roster.ActiveID {
			label += " [ACTIVE]"
		}

		atkCell, _ := excelize.CoordinatesToCellName(col, 1)
		defCell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, atkCell, label+" atk")
		f.SetCellValue(sheet, defCell, label+" def")
		col += 2
	}

	row := 2
	for _, opp := range snap.Opponents {
		name, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, name, fmt.Sprintf("%s (%d)", opp.TeamName, opp.SubmissionID))

		col = 2
		for _, subID := range snap.Roster.OurIDs {
			if cell, ok := snap.Index.ByAttacker[subID][opp.SubmissionID]; ok {
				target, _ := excelize.CoordinatesToCellName(col, row)
				f.SetCellValue(sheet, target, cell.Outcome.String())
			}
			if cell, ok := snap.Index.ByDefender[subID][opp.SubmissionID]; ok {
				target, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(sheet, target, cell.Outcome.String())
			}
			col += 2
		}
		row++
	}

	f.SetColWidth(sheet, "A", "A", 32)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
