package repository

import (
	"context"
	"database/sql"

	"job-compass/internal/corpus"
	"job-compass/internal/database"
)

type PostingRepository interface {
	ListPostings(ctx context.Context) ([]corpus.Posting, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

// ListPostings loads the full corpus in id order. The stable order matters:
// vocabulary is built first-seen over these rows, so the same table contents
// must always come back in the same sequence.
func (r *PostgresPostingRepository) ListPostings(ctx context.Context) ([]corpus.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id,
		        COALESCE(title, ''),
		        COALESCE(company, ''),
		        COALESCE(location, ''),
		        COALESCE(industry, ''),
		        COALESCE(experience_level, ''),
		        COALESCE(required_skills, ''),
		        COALESCE(salary_range, ''),
		        posted_at
		 FROM job_postings
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]corpus.Posting, 0)
	for rows.Next() {
		var p corpus.Posting
		var salaryRange string
		var postedAt sql.NullTime
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Company, &p.Location, &p.Industry,
			&p.ExperienceLevel, &p.SkillsText, &salaryRange, &postedAt,
		); err != nil {
			return nil, err
		}

		p.SalaryMin, p.SalaryMax, p.SalaryKnown = ParseSalaryRange(salaryRange)
		if postedAt.Valid {
			t := postedAt.Time
			p.PostedAt = &t
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
