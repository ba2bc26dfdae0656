package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/proposal/internal/db"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/google/uuid"
)

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a repo over a *sql.DB or a *sql.Tx.
func NewSQLiteSubmissionRepo(conn db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: conn}
}

const submissionColumns = `id, seq, input_json, created_at`

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = nowUTC()
	}

	payload, err := json.Marshal(s.Input)
	if err != nil {
		return fmt.Errorf("encoding submission input: %w", err)
	}

	var seq int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM submissions`).Scan(&seq); err != nil {
		return fmt.Errorf("allocating submission seq: %w", err)
	}

	in := s.Input
	query := `INSERT INTO submissions (id, seq, office, state, region, client_type, complexity, hours, start_date, end_date, input_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		seq,
		string(in.Office),
		string(in.State),
		string(in.Region),
		string(in.ClientType),
		int(in.Complexity),
		int(in.Hours),
		in.Dates.Start.Format(domain.DateLayout),
		in.Dates.End.Format(domain.DateLayout),
		string(payload),
		formatTimestamp(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}

	for i, f := range s.Features {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO submission_features (submission_id, position, column_name, value) VALUES (?, ?, ?, ?)`,
			s.ID, i, f.Column, f.Value)
		if err != nil {
			return fmt.Errorf("inserting feature %q: %w", f.Column, err)
		}
	}

	s.Seq = seq
	return nil
}

// List returns submissions in the order they were made.
func (r *SQLiteSubmissionRepo) List(ctx context.Context) ([]*domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+submissionColumns+` FROM submissions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Submission
	for rows.Next() {
		s, err := r.scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	rows.Close()

	for _, s := range out {
		if err := r.loadFeatures(ctx, s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLiteSubmissionRepo) scanSubmission(rows *sql.Rows) (*domain.Submission, error) {
	var s domain.Submission
	var payload, createdAt string

	if err := rows.Scan(&s.ID, &s.Seq, &payload, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &s.Input); err != nil {
		return nil, fmt.Errorf("decoding submission %s input: %w", s.ID, err)
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing submission %s created_at: %w", s.ID, err)
	}
	s.CreatedAt = t
	return &s, nil
}

func (r *SQLiteSubmissionRepo) loadFeatures(ctx context.Context, s *domain.Submission) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT column_name, value FROM submission_features WHERE submission_id = ? ORDER BY position`, s.ID)
	if err != nil {
		return fmt.Errorf("loading features for %s: %w", s.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.FeatureValue
		if err := rows.Scan(&f.Column, &f.Value); err != nil {
			return fmt.Errorf("scanning feature row: %w", err)
		}
		s.Features = append(s.Features, f)
	}
	return rows.Err()
}
