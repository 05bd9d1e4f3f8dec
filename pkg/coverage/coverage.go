package coverage

import "github.com/arnavshah/shift-board-api/pkg/models"

// key identifies the sector/shift/role combination a request or slot targets
type key struct {
	sector string
	shift  string
	role   string
}

// approvedIndex counts approved requests per sector/shift/role
func approvedIndex(requests []models.Request) map[key]int {
	idx := make(map[key]int)
	for _, r := range requests {
		if r.Status != models.StatusApproved {
			continue
		}
		idx[key{r.Sector, r.Shift, r.Role}]++
	}
	return idx
}

// Compute derives one coverage row per slot, in slot order. Matching is exact,
// case-sensitive string equality on sector, shift and role.
func Compute(slots []models.Slot, requests []models.Request) []models.CoverageRow {
	idx := approvedIndex(requests)
	rows := make([]models.CoverageRow, 0, len(slots))
	for _, sl := range slots {
		approved := idx[key{sl.Sector, sl.Shift, sl.Role}]
		deficit := sl.Min - approved
		if deficit < 0 {
			deficit = 0
		}
		rows = append(rows, models.CoverageRow{
			SlotID:    sl.ID,
			Sector:    sl.Sector,
			Shift:     sl.Shift,
			Role:      sl.Role,
			Min:       sl.Min,
			Max:       sl.Max,
			Approved:  approved,
			Satisfied: approved >= sl.Min,
			Deficit:   deficit,
		})
	}
	return rows
}

// CanPublish reports whether at least one slot exists and every slot meets its minimum
func CanPublish(rows []models.CoverageRow) bool {
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if r.Approved < r.Min {
			return false
		}
	}
	return true
}

// Shortfalls returns the rows whose approved count is below the minimum
func Shortfalls(rows []models.CoverageRow) []models.CoverageRow {
	var out []models.CoverageRow
	for _, r := range rows {
		if r.Approved < r.Min {
			out = append(out, r)
		}
	}
	return out
}
