// Package results provides PostgreSQL persistence for evaluation run history.
package results

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mattbriggs/faqbench/internal/evaluation"
)

// Run statuses recorded for an evaluation run.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run represents a stored evaluation run record
type Run struct {
	ID           uuid.UUID  `json:"id"`
	Backend      string     `json:"backend"`
	Metric       string     `json:"metric"`
	Status       string     `json:"status"`
	AverageScore *float64   `json:"average_score,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the run history tables if they do not exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS evaluation_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			backend TEXT NOT NULL,
			metric TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'running',
			average_score DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS evaluation_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			run_id UUID NOT NULL REFERENCES evaluation_runs(id) ON DELETE CASCADE,
			position INT NOT NULL,
			question TEXT NOT NULL,
			expected_answer TEXT NOT NULL,
			retrieved_answer TEXT NOT NULL,
			score DOUBLE PRECISION NOT NULL,
			UNIQUE (run_id, position)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// CreateRun creates a new evaluation run record and returns its ID
func (s *Store) CreateRun(ctx context.Context, backend, metric string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO evaluation_runs (backend, metric, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		backend, metric,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// SaveResult stores a single per-question result for a run. Position is the
// question's index within the golden set, so stored rows preserve golden
// set order.
func (s *Store) SaveResult(ctx context.Context, runID uuid.UUID, position int, result evaluation.QuestionResult) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO evaluation_results (run_id, position, question, expected_answer, retrieved_answer, score)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (run_id, position) DO UPDATE
		 SET question = $3, expected_answer = $4, retrieved_answer = $5, score = $6`,
		runID, position, result.Question, result.ExpectedAnswer, result.RetrievedAnswer, result.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to save result %d: %w", position, err)
	}
	return nil
}

// SaveReport stores every per-question result from a report for a run
func (s *Store) SaveReport(ctx context.Context, runID uuid.UUID, report *evaluation.Report) error {
	for i, result := range report.Results {
		if err := s.SaveResult(ctx, runID, i, result); err != nil {
			return err
		}
	}
	return nil
}

// CompleteRun marks an evaluation run as completed with its average score
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, averageScore float64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE evaluation_runs
		 SET status = $1, average_score = $2, completed_at = NOW()
		 WHERE id = $3`,
		StatusCompleted, averageScore, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// FailRun marks an evaluation run as failed
func (s *Store) FailRun(ctx context.Context, runID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE evaluation_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		StatusFailed, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

// GetRun retrieves an evaluation run by ID. Returns nil when not found.
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := s.pool.QueryRow(ctx,
		`SELECT id, backend, metric, status, average_score, created_at, completed_at
		 FROM evaluation_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Backend, &run.Metric, &run.Status, &run.AverageScore, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent evaluation runs, newest first
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, backend, metric, status, average_score, created_at, completed_at
		 FROM evaluation_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Backend, &run.Metric, &run.Status, &run.AverageScore, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// GetResults retrieves the stored per-question results for a run in golden
// set order
func (s *Store) GetResults(ctx context.Context, runID uuid.UUID) ([]evaluation.QuestionResult, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT question, expected_answer, retrieved_answer, score
		 FROM evaluation_results WHERE run_id = $1 ORDER BY position ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	defer rows.Close()

	var questionResults []evaluation.QuestionResult
	for rows.Next() {
		var qr evaluation.QuestionResult
		if err := rows.Scan(&qr.Question, &qr.ExpectedAnswer, &qr.RetrievedAnswer, &qr.Score); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		questionResults = append(questionResults, qr)
	}
	return questionResults, nil
}
