package postgres

import (
	"context"
	"database/sql"

	"slimtrack/internal/domain"
)

// Save inserts rec and sets rec.ID to the generated id.
func (d *DB) Save(ctx context.Context, rec *domain.HealthRecord) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO health_data(date, weight, height, bmi, notes) VALUES($1, $2, $3, $4, $5) RETURNING id;",
		rec.Date, rec.Weight, rec.Height, rec.BMI, sql.NullString{String: rec.Notes, Valid: rec.Notes != ""},
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	rec.ID = id
	return id, nil
}

// ListAll returns every record ordered by date, then id.
func (d *DB) ListAll(ctx context.Context) ([]domain.HealthRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, date, weight, height, bmi, COALESCE(notes, '') FROM health_data ORDER BY date, id;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.HealthRecord, 0)
	for rows.Next() {
		var r domain.HealthRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.Weight, &r.Height, &r.BMI, &r.Notes); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Delete removes the record with id and reports whether exactly one row went.
func (d *DB) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM health_data WHERE id=$1;", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
