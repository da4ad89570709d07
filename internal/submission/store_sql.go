package submission

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/pawsteady/pba-grader/internal/grading"
)

// SQLStore works against either supported driver; the `$n` placeholders are
// understood by both the pgx stdlib driver and modernc sqlite.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Put(sub Submission) error {
	aj, err := json.Marshal(sub.Answers)
	if err != nil {
		return err
	}
	rj, err := json.Marshal(sub.Results)
	if err != nil {
		return err
	}
	fj, err := json.Marshal(sub.Flagged)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO submissions (id,student_name,student_email,answers_json,results_json,verdict,flagged_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET results_json=EXCLUDED.results_json, verdict=EXCLUDED.verdict, flagged_json=EXCLUDED.flagged_json`,
		sub.ID, sub.StudentName, sub.StudentEmail, string(aj), string(rj), string(sub.Verdict), string(fj), sub.CreatedAt)
	return err
}

func (s *SQLStore) Get(id string) (Submission, error) {
	row := s.db.QueryRow(`SELECT id,student_name,student_email,answers_json,results_json,verdict,flagged_json,created_at
		FROM submissions WHERE id=$1`, id)
	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	return sub, nil
}

func (s *SQLStore) List(limit, offset int) ([]Submission, error) {
	rows, err := s.db.Query(`SELECT id,student_name,student_email,answers_json,results_json,verdict,flagged_json,created_at
		FROM submissions ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (Submission, error) {
	var sub Submission
	var verdict, aj, rj, fj string
	if err := row.Scan(&sub.ID, &sub.StudentName, &sub.StudentEmail, &aj, &rj, &verdict, &fj, &sub.CreatedAt); err != nil {
		return Submission{}, err
	}
	if err := json.Unmarshal([]byte(aj), &sub.Answers); err != nil {
		return Submission{}, err
	}
	if err := json.Unmarshal([]byte(rj), &sub.Results); err != nil {
		return Submission{}, err
	}
	if err := json.Unmarshal([]byte(fj), &sub.Flagged); err != nil {
		return Submission{}, err
	}
	sub.Verdict = grading.Verdict(verdict)
	return sub, nil
}
