package store

import (
	"context"
	"database/sql"
	"fmt"

	"speechset/internal/dataset"
	"speechset/internal/split"
)

// LoadExamples returns the paragraphs of a run that have text, ordered by key.
func (s *Store) LoadExamples(ctx context.Context, runID string) ([]split.Example, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, text, label FROM paragraphs WHERE run_id = ? AND text IS NOT NULL ORDER BY key`, runID)
	if err != nil {
		return nil, fmt.Errorf("load examples: %w", err)
	}
	defer rows.Close()

	var examples []split.Example
	for rows.Next() {
		var (
			ex    split.Example
			label int
		)
		if err := rows.Scan(&ex.Key, &ex.Text, &label); err != nil {
			return nil, fmt.Errorf("scan example: %w", err)
		}
		ex.Label = label != 0
		examples = append(examples, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load examples: %w", err)
	}
	return examples, nil
}

// LoadDataset rebuilds both accumulators of a run, including labels whose
// paragraph had no text.
func (s *Store) LoadDataset(ctx context.Context, runID string) (*dataset.Dataset, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, text, label FROM paragraphs WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	defer rows.Close()

	ds := dataset.New()
	for rows.Next() {
		var (
			key   string
			text  sql.NullString
			label int
		)
		if err := rows.Scan(&key, &text, &label); err != nil {
			return nil, fmt.Errorf("scan paragraph: %w", err)
		}
		if text.Valid {
			ds.Texts[key] = text.String
		}
		ds.Labels[key] = label != 0
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return ds, nil
}
