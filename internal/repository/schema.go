package repository

import (
	"context"
	"fmt"

	"job-compass/internal/database"
)

var postingColumns = []string{
	"id", "title", "company", "location", "industry",
	"experience_level", "required_skills", "salary_range", "posted_at",
}

// EnsureSchema verifies the job_postings table carries every column the
// loader scans. Run once at startup so a schema drift fails loudly instead
// of surfacing as a scan error mid-refresh.
func EnsureSchema(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	rows, err := db.Query(ctx,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = 'public' AND table_name = 'job_postings'`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(existing) == 0 {
		return fmt.Errorf("schema mismatch: table job_postings not found")
	}
	for _, col := range postingColumns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column job_postings.%s", col)
		}
	}
	return nil
}
