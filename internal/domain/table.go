package domain

import "time"

// TableRow is a HealthRecord with its date parsed.
type TableRow struct {
	ID     int64     `json:"id"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Height float64   `json:"height"`
	BMI    float64   `json:"bmi"`
	Notes  string    `json:"notes"`
}

// Table is the tabular projection of a date-ordered series.
type Table struct {
	Rows []TableRow `json:"rows"`
}

// NewTable parses every record date. Any unparsable date fails the whole table.
func NewTable(series []HealthRecord) (Table, error) {
	rows := make([]TableRow, 0, len(series))
	for _, r := range series {
		t, err := r.Time()
		if err != nil {
			return Table{Rows: []TableRow{}}, err
		}
		rows = append(rows, TableRow{
			ID:     r.ID,
			Date:   t,
			Weight: r.Weight,
			Height: r.Height,
			BMI:    r.BMI,
			Notes:  r.Notes,
		})
	}
	return Table{Rows: rows}, nil
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }
