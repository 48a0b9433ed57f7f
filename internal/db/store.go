package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

// Run statuses as stored in the archive.
const (
	StatusRunning = "running"
	StatusDone    = "done"
	StatusFailed  = "failed"
)

// ErrRunNotFound reports a run id absent from the archive.
var ErrRunNotFound = errors.New("run not found")

// timeLayout keeps a fixed-width fraction so created_at sorts
// chronologically as text. RFC3339Nano trims trailing zeros and does not.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store provides persistence for runs and steps.
type Store struct {
	db *sql.DB
}

// NewStore creates a store for run/step persistence.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// CreateRun inserts the run record in running state. The seed is stored as
// its int64 bit pattern; uint64 does not fit the driver's integer binding.
func (s *Store) CreateRun(ctx context.Context, runID string, seed uint64, steps int) error {
	createdAt := time.Now().UTC().Format(timeLayout)
	if _, err := s.db.ExecContext(ctx, `INSERT INTO runs(run_id, created_at, status, seed, steps)
		VALUES(?, ?, ?, ?, ?)`,
		runID, createdAt, StatusRunning, int64(seed), steps); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// AppendStep persists one step record for a run.
func (s *Store) AppendStep(ctx context.Context, runID string, rec model.StepRecord) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO steps(run_id, step_index, price, stock, price_discount, low_stock, buy, average_price, spent)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, rec.Step, rec.Price, rec.Stock, rec.PriceDiscount, rec.LowStock, rec.Buy, rec.AveragePrice, rec.Spent); err != nil {
		return fmt.Errorf("insert step: %w", err)
	}
	return nil
}

// Update contains the closing totals for a run record.
type Update struct {
	Status       string
	TotalSpent   float64
	UnitsBought  int
	FinalPrice   float64
	FinalStock   float64
	AveragePrice float64
}

// UpdateRun applies the closing update for a run.
func (s *Store) UpdateRun(ctx context.Context, runID string, update Update) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE runs SET status=?, total_spent=?, units_bought=?, final_price=?, final_stock=?, average_price=? WHERE run_id=?`,
		update.Status, update.TotalSpent, update.UnitsBought, update.FinalPrice, update.FinalStock, update.AveragePrice, runID); err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	return nil
}

// ArchiveRun stores a completed run, its steps, and its totals in one
// transaction. Batch mode uses it: replications finish in memory first, so
// either the whole run lands in the archive or none of it does.
func (s *Store) ArchiveRun(ctx context.Context, runID string, seed uint64, steps []model.StepRecord, update Update) error {
	createdAt := time.Now().UTC().Format(timeLayout)
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin archive run: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO runs(run_id, created_at, status, seed, steps, total_spent, units_bought, final_price, final_stock, average_price)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, createdAt, update.Status, int64(seed), len(steps), update.TotalSpent, update.UnitsBought, update.FinalPrice, update.FinalStock, update.AveragePrice); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}
	for _, rec := range steps {
		if _, err := tx.ExecContext(ctx, `INSERT INTO steps(run_id, step_index, price, stock, price_discount, low_stock, buy, average_price, spent)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, rec.Step, rec.Price, rec.Stock, rec.PriceDiscount, rec.LowStock, rec.Buy, rec.AveragePrice, rec.Spent); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert step %d: %w", rec.Step, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive run: %w", err)
	}
	return nil
}

// Recorder adapts the store to the simulation loop's recording interface,
// binding all step writes to one run id.
type Recorder struct {
	store *Store
	runID string
}

// Recorder returns a step recorder bound to runID.
func (s *Store) Recorder(runID string) *Recorder {
	return &Recorder{store: s, runID: runID}
}

// RecordStep persists one step record.
func (r *Recorder) RecordStep(ctx context.Context, rec model.StepRecord) error {
	return r.store.AppendStep(ctx, r.runID, rec)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (model.RunSummary, error) {
	var summary model.RunSummary
	var seed int64
	if err := row.Scan(&summary.RunID, &summary.CreatedAt, &summary.Status, &seed, &summary.Steps,
		&summary.TotalSpent, &summary.UnitsBought, &summary.FinalPrice, &summary.FinalStock, &summary.AveragePrice); err != nil {
		return model.RunSummary{}, err
	}
	summary.Seed = uint64(seed)
	return summary, nil
}

const runColumns = `run_id, created_at, status, seed, steps, total_spent, units_bought, final_price, final_stock, average_price`

// GetRun returns one archived run summary.
func (s *Store) GetRun(ctx context.Context, runID string) (model.RunSummary, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE run_id=?`, runID)
	summary, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RunSummary{}, fmt.Errorf("run %s: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return model.RunSummary{}, fmt.Errorf("read run: %w", err)
	}
	return summary, nil
}

// ListRuns returns all archived runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]model.RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, run_id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.RunSummary
	for rows.Next() {
		summary, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// RunSteps returns the step records of a run in step order.
func (s *Store) RunSteps(ctx context.Context, runID string) ([]model.StepRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT step_index, price, stock, price_discount, low_stock, buy, average_price, spent
		FROM steps WHERE run_id=? ORDER BY step_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.StepRecord
	for rows.Next() {
		var rec model.StepRecord
		if err := rows.Scan(&rec.Step, &rec.Price, &rec.Stock, &rec.PriceDiscount, &rec.LowStock,
			&rec.Buy, &rec.AveragePrice, &rec.Spent); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate steps: %w", err)
	}
	return out, nil
}

// RetentionPolicy controls archive cleanup.
type RetentionPolicy struct {
	KeepLast int
	KeepDays int
}

// PruneResult summarizes a prune operation.
type PruneResult struct {
	Considered int
	Kept       int
	Deleted    int
}

// PruneRuns deletes old archived runs. Runs still marked running are always
// kept, as are the KeepLast most recent and anything newer than KeepDays.
// Step rows go with their run via the cascading foreign key.
func (s *Store) PruneRuns(ctx context.Context, policy RetentionPolicy, dryRun bool) (PruneResult, error) {
	if policy.KeepLast <= 0 && policy.KeepDays <= 0 {
		return PruneResult{}, nil
	}
	cutoff := time.Time{}
	if policy.KeepDays > 0 {
		cutoff = time.Now().UTC().Add(-time.Duration(policy.KeepDays) * 24 * time.Hour)
	}
	rows, err := s.db.QueryContext(ctx, `SELECT run_id, created_at, status FROM runs ORDER BY created_at DESC, run_id`)
	if err != nil {
		return PruneResult{}, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type runRow struct {
		id        string
		createdAt time.Time
		status    string
		parseErr  error
	}
	var runs []runRow
	for rows.Next() {
		var id, createdAt, status string
		if err := rows.Scan(&id, &createdAt, &status); err != nil {
			return PruneResult{}, fmt.Errorf("scan run: %w", err)
		}
		parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt)
		runs = append(runs, runRow{id: id, createdAt: parsed, status: status, parseErr: parseErr})
	}
	if err := rows.Err(); err != nil {
		return PruneResult{}, fmt.Errorf("iterate runs: %w", err)
	}

	res := PruneResult{Considered: len(runs)}
	for idx, row := range runs {
		keep := false
		if row.status == StatusRunning {
			keep = true
		}
		if !keep && policy.KeepLast > 0 && idx < policy.KeepLast {
			keep = true
		}
		if !keep && policy.KeepDays > 0 {
			if row.parseErr != nil {
				keep = true
			} else if row.createdAt.After(cutoff) {
				keep = true
			}
		}
		if keep {
			res.Kept++
			continue
		}
		if dryRun {
			res.Deleted++
			continue
		}
		if _, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE run_id=?`, row.id); err != nil {
			return res, fmt.Errorf("delete run %s: %w", row.id, err)
		}
		res.Deleted++
	}
	return res, nil
}

// Purge removes every archived run and step.
func (s *Store) Purge(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM steps"); err != nil {
		return fmt.Errorf("clear steps table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("clear runs table: %w", err)
	}
	return nil
}
