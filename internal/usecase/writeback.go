package usecase

import "github.com/yourusername/asset-sheet-service/internal/domain/entity"

// plannedWrite pairs a physical cell write with the row and field it came
// from, so a successful write can rebase that field's baseline.
type plannedWrite struct {
	Cell  entity.CellWrite
	Row   *entity.TableRow
	Field string
}

// PlanWriteBack translates the model's edits into sparse physical cell
// writes. Only mapped fields whose value differs from the load-time
// baseline are emitted; unmapped fields have no physical column and are
// never targeted. Each write is independent of the others.
func PlanWriteBack(model *entity.TableModel) []entity.CellWrite {
	plan := planWrites(model)
	out := make([]entity.CellWrite, 0, len(plan))
	for _, w := range plan {
		out = append(out, w.Cell)
	}
	return out
}

func planWrites(model *entity.TableModel) []plannedWrite {
	if model.IsEmpty() {
		return nil
	}

	var plan []plannedWrite
	for _, row := range model.Rows {
		for _, field := range model.Schema.Fields {
			col, mapped := model.Mapping[field.Name]
			if !mapped || !row.Changed(field.Name) {
				continue
			}
			v, _ := row.Value(field.Name)
			plan = append(plan, plannedWrite{
				Cell: entity.CellWrite{
					// +2: 1-based external addressing plus the header row.
					Row:   row.SourceRow + model.HeaderRow + 2,
					Col:   col + 1,
					Value: v.String(),
				},
				Row:   row,
				Field: field.Name,
			})
		}
	}
	return plan
}

// PhysicalRow lays canonical row values out in the sheet's physical column
// order, for appending. Unmapped physical columns stay blank. Callers must
// know the physical layout has not changed since load; that fragility is
// inherited from the source data model, not resolved here.
func PhysicalRow(model *entity.TableModel, row *entity.TableRow) []string {
	width := 0
	for _, col := range model.Mapping {
		if col+1 > width {
			width = col + 1
		}
	}

	values := make([]string, width)
	for _, field := range model.Schema.Fields {
		col, mapped := model.Mapping[field.Name]
		if !mapped {
			continue
		}
		if v, ok := row.Value(field.Name); ok {
			values[col] = v.String()
		}
	}
	return values
}
