package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"speechset/internal/dataset"
	"speechset/internal/paragraphs"
)

// ErrRunNotFound reports a run id with no stored run.
var ErrRunNotFound = errors.New("run not found")

// Run is the stored summary of one dataset build.
type Run struct {
	ID             string        `json:"id"`
	CreatedAt      time.Time     `json:"created_at"`
	DocumentsDir   string        `json:"documents_dir"`
	TargetLanguage string        `json:"target_language"`
	FilesRead      int           `json:"files_read"`
	FilesSkipped   int           `json:"files_skipped"`
	Paragraphs     int           `json:"paragraphs"`
	Positives      int           `json:"positives"`
	Duration       time.Duration `json:"duration"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// NewRun builds a run record from a build summary.
func NewRun(id, documentsDir, targetLanguage string, summary dataset.Summary) Run {
	return Run{
		ID:             id,
		CreatedAt:      time.Now().UTC(),
		DocumentsDir:   documentsDir,
		TargetLanguage: targetLanguage,
		FilesRead:      summary.FilesRead,
		FilesSkipped:   summary.FilesSkipped,
		Paragraphs:     summary.Paragraphs,
		Positives:      summary.Positives,
		Duration:       summary.Elapsed,
	}
}

// timeLayout keeps a fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = "id, created_at, documents_dir, target_language, files_read, files_skipped, paragraphs, positives, duration_ms"

// SaveRun writes the run, its paragraphs, and its skipped files in one
// transaction. Paragraph keys without text are stored with a NULL text.
func (s *Store) SaveRun(ctx context.Context, run Run, ds *dataset.Dataset, skips []dataset.Skip) error {
	if run.ID == "" {
		return errors.New("save run: id is required")
	}
	if ds == nil {
		ds = dataset.New()
	}
	return retryOnBusy(ctx, func() error {
		return s.saveRun(ctx, run, ds, skips)
	})
}

func (s *Store) saveRun(ctx context.Context, run Run, ds *dataset.Dataset, skips []dataset.Skip) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(timeLayout),
		run.DocumentsDir,
		run.TargetLanguage,
		run.FilesRead,
		run.FilesSkipped,
		run.Paragraphs,
		run.Positives,
		run.Duration.Milliseconds(),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO paragraphs (run_id, key, speech_id, paragraph, text, label) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare paragraph insert: %w", err)
	}
	defer stmt.Close()

	for _, key := range ds.Keys() {
		speechID, paragraph, err := paragraphs.SplitKey(key)
		if err != nil {
			return fmt.Errorf("insert paragraph: %w", err)
		}
		var text any
		if value, ok := ds.Texts[key]; ok {
			text = value
		}
		if _, err := stmt.ExecContext(ctx, run.ID, key, speechID, paragraph, text, boolToInt(ds.Labels[key])); err != nil {
			return fmt.Errorf("insert paragraph %q: %w", key, err)
		}
	}

	for _, skip := range skips {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO skips (run_id, file, reason, detail) VALUES (?, ?, ?, ?)`,
			run.ID, skip.File, string(skip.Reason), nullableString(skip.Detail),
		); err != nil {
			return fmt.Errorf("insert skip %q: %w", skip.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// ListRuns returns stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// GetRun fetches a run by id. A missing run yields ErrRunNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// LatestRun returns the most recently created run.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY created_at DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: no runs stored", ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// ListSkips returns the skipped files of a run in file order.
func (s *Store) ListSkips(ctx context.Context, runID string) ([]dataset.Skip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT file, reason, detail FROM skips WHERE run_id = ? ORDER BY file`, runID)
	if err != nil {
		return nil, fmt.Errorf("list skips: %w", err)
	}
	defer rows.Close()

	var skips []dataset.Skip
	for rows.Next() {
		var (
			skip   dataset.Skip
			reason string
			detail sql.NullString
		)
		if err := rows.Scan(&skip.File, &reason, &detail); err != nil {
			return nil, fmt.Errorf("scan skip: %w", err)
		}
		skip.Reason = dataset.SkipReason(reason)
		skip.Detail = detail.String
		skips = append(skips, skip)
	}
	return skips, rows.Err()
}

// DeleteRun removes a run and everything stored with it.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (Run, error) {
	var (
		run        Run
		createdRaw string
		durationMS int64
	)
	if err := scanner.Scan(
		&run.ID,
		&createdRaw,
		&run.DocumentsDir,
		&run.TargetLanguage,
		&run.FilesRead,
		&run.FilesSkipped,
		&run.Paragraphs,
		&run.Positives,
		&durationMS,
	); err != nil {
		return Run{}, err
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		run.CreatedAt = created
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return run, nil
}
