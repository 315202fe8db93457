package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Check statuses recorded in the history table.
const (
	CheckStatusOK     = "ok"
	CheckStatusFailed = "failed"
)

// Store provides persistence for connectivity checks.
type Store struct {
	db *sql.DB
}

// NewStore creates a store for check persistence.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CheckRecord represents one recorded connectivity check.
type CheckRecord struct {
	ID         int64
	CreatedAt  string
	Status     string
	Model      string
	Prompt     string
	Response   string
	Error      string
	WallTimeMS int64
}

// RecordCheck inserts one check outcome and returns its row id. An empty
// CreatedAt defaults to now.
func (s *Store) RecordCheck(ctx context.Context, rec CheckRecord) (int64, error) {
	createdAt := rec.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO checks(created_at, status, model, prompt, response, error, wall_time_ms)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		createdAt, rec.Status, rec.Model, rec.Prompt, nullableString(rec.Response), nullableString(rec.Error), rec.WallTimeMS)
	if err != nil {
		return 0, fmt.Errorf("insert check: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read check id: %w", err)
	}
	return id, nil
}

// ListChecks returns up to limit checks, newest first. A non-positive
// limit returns all rows.
func (s *Store) ListChecks(ctx context.Context, limit int) ([]CheckRecord, error) {
	query := `SELECT id, created_at, status, model, prompt, COALESCE(response, ''), COALESCE(error, ''), wall_time_ms
		FROM checks ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var checks []CheckRecord
	for rows.Next() {
		var rec CheckRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Status, &rec.Model, &rec.Prompt, &rec.Response, &rec.Error, &rec.WallTimeMS); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		checks = append(checks, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return checks, nil
}

// RetentionPolicy controls check history cleanup.
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

// PruneChecks deletes old check rows per the retention policy.
func (s *Store) PruneChecks(ctx context.Context, policy RetentionPolicy, dryRun bool) (PruneResult, error) {
	if policy.KeepLast <= 0 && policy.KeepDays <= 0 {
		return PruneResult{}, nil
	}
	cutoff := time.Time{}
	if policy.KeepDays > 0 {
		cutoff = time.Now().UTC().Add(-time.Duration(policy.KeepDays) * 24 * time.Hour)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, created_at FROM checks ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return PruneResult{}, fmt.Errorf("list checks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type checkRow struct {
		id        int64
		createdAt time.Time
		parseErr  error
	}
	var checks []checkRow
	for rows.Next() {
		var id int64
		var createdAt string
		if err := rows.Scan(&id, &createdAt); err != nil {
			return PruneResult{}, fmt.Errorf("scan check: %w", err)
		}
		parsed, parseErr := time.Parse(time.RFC3339, createdAt)
		checks = append(checks, checkRow{id: id, createdAt: parsed, parseErr: parseErr})
	}
	if err := rows.Err(); err != nil {
		return PruneResult{}, fmt.Errorf("iterate checks: %w", err)
	}

	res := PruneResult{Considered: len(checks)}
	for idx, row := range checks {
		keep := false
		if policy.KeepLast > 0 && idx < policy.KeepLast {
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
		if _, err := s.db.ExecContext(ctx, `DELETE FROM checks WHERE id=?`, row.id); err != nil {
			return res, fmt.Errorf("delete check %d: %w", row.id, err)
		}
		res.Deleted++
	}
	return res, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
